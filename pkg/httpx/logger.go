package httpx

import "github.com/DerekDew/poe2-api-stub/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
