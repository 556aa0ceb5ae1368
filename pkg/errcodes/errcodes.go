package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	InvalidLimit  failure.ErrorCode = "InvalidLimit"  // limit query param out of [1, 500]
	InvalidSecret failure.ErrorCode = "InvalidSecret" // X-Alerts-Secret mismatch
)
