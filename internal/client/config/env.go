package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envOverlay is a DTO for the environment layer; variables are prefixed
// with USERDESK_, e.g. USERDESK_SERVER_BASE_URL.
type envOverlay struct {
	ServerBaseURL  string        `envconfig:"SERVER_BASE_URL"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT"`
	DatabasePath   string        `envconfig:"DATABASE_PATH"`
}

// parseEnv overlays Config with values from the environment. Unset
// variables leave the corresponding field untouched.
func parseEnv(cfg *Config) {
	var ec envOverlay
	if err := envconfig.Process("userdesk", &ec); err != nil {
		panic(err)
	}

	if ec.ServerBaseURL != "" {
		cfg.ServerBaseURL = ec.ServerBaseURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
}
