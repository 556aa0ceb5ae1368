package config

import (
	"strings"
	"time"
)

type HTTP struct {
	Port            int           `env:"PORT" envDefault:"8000"`
	CORSOrigins     string        `env:"CORS_ORIGINS" envDefault:"*"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ProbeAddress    string        `env:"PROBE_ADDRESS" envDefault:":8001"`
	MetricsAddress  string        `env:"METRICS_ADDRESS" envDefault:":9090"`
	VerboseLogging  bool          `env:"HTTP_VERBOSE_LOGGING" envDefault:"false"`
}

// Origins splits the comma-separated CORS list, dropping empty entries.
// An empty result means "allow any origin".
func (h HTTP) Origins() []string {
	var origins []string

	for _, origin := range strings.Split(h.CORSOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}

	if len(origins) == 0 {
		return []string{"*"}
	}

	return origins
}
