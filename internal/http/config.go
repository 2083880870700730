package http

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type HTTPServerConfig struct {
	Host      string
	PprofHost string
	Timeouts  struct {
		Read         time.Duration
		ReadHeader   time.Duration
		Write        time.Duration
		Idle         time.Duration
		ShutdownWait time.Duration
	}
}

// NewHTTPServerConfig reads the server settings from the environment, which
// the application config has already populated from config.env.
func NewHTTPServerConfig() (*HTTPServerConfig, error) {
	var errors []string
	cfg := &HTTPServerConfig{}

	cfg.Host = os.Getenv("HTTP_SERVER_HOST")
	if cfg.Host == "" {
		errors = append(errors, "HTTP_SERVER_HOST is required")
	}

	cfg.PprofHost = os.Getenv("HTTP_APP_PPROF_HOST")
	if cfg.PprofHost == "" {
		cfg.PprofHost = ":6060"
	}

	// login attempts block on the target site, so write timeouts need room
	// for LOGIN_REQUEST_TIMEOUT
	parseDuration := func(envVar string, def time.Duration) (time.Duration, error) {
		value := os.Getenv(envVar)
		if value == "" {
			return def, nil
		}
		duration, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("%s: invalid duration format: %w", envVar, err)
		}
		return duration, nil
	}

	durations := []struct {
		env string
		def time.Duration
		dst *time.Duration
	}{
		{"HTTP_APP_READ_TIMEOUT_DURATION", 10 * time.Second, &cfg.Timeouts.Read},
		{"HTTP_APP_READ_HEADER_TIMEOUT_DURATION", 5 * time.Second, &cfg.Timeouts.ReadHeader},
		{"HTTP_APP_WRITE_TIMEOUT_DURATION", 60 * time.Second, &cfg.Timeouts.Write},
		{"HTTP_APP_IDLE_TIMEOUT_DURATION", 120 * time.Second, &cfg.Timeouts.Idle},
		{"HTTP_APP_SHUTDOWN_TIMEOUT_DURATION", 15 * time.Second, &cfg.Timeouts.ShutdownWait},
	}
	for _, d := range durations {
		dur, err := parseDuration(d.env, d.def)
		if err != nil {
			errors = append(errors, err.Error())
			continue
		}
		*d.dst = dur
	}

	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return cfg, nil
}
