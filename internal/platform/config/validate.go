package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks the configuration for invalid values and returns all
// problems joined into a single error.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Storage.validate(),
		c.Event.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error
	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in [1, 65535], got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, fmt.Errorf("server.read_timeout must be positive, got %s", s.ReadTimeout))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, fmt.Errorf("server.write_timeout must be positive, got %s", s.WriteTimeout))
	}
	if s.IdleTimeout <= 0 {
		errs = append(errs, fmt.Errorf("server.idle_timeout must be positive, got %s", s.IdleTimeout))
	}
	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of debug|info|warn|error, got %q", l.Level))
	}
	switch l.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text, got %q", l.Format))
	}
	return errors.Join(errs...)
}

func (s *StorageConfig) validate() error {
	var errs []error
	switch s.Driver {
	case "postgres":
		if s.DSN == "" {
			errs = append(errs, errors.New("storage.dsn is required when storage.driver is postgres"))
		}
	case "memory":
	default:
		errs = append(errs, fmt.Errorf("storage.driver must be postgres or memory, got %q", s.Driver))
	}
	return errors.Join(errs...)
}

func (e *EventConfig) validate() error {
	var errs []error
	if e.BaseURL == "" {
		errs = append(errs, errors.New("event.base_url is required"))
	} else if u, err := url.Parse(e.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("event.base_url must be an absolute URL, got %q", e.BaseURL))
	}
	if e.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("event.timeout must be positive, got %s", e.Timeout))
	}
	if e.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("event.retry.max_attempts must be at least 1, got %d", e.Retry.MaxAttempts))
	}
	if e.Retry.InitialInterval <= 0 {
		errs = append(errs, fmt.Errorf("event.retry.initial_interval must be positive, got %s", e.Retry.InitialInterval))
	}
	if e.Retry.MaxInterval < e.Retry.InitialInterval {
		errs = append(errs, fmt.Errorf("event.retry.max_interval must be >= initial_interval, got %s < %s",
			e.Retry.MaxInterval, e.Retry.InitialInterval))
	}
	if e.Retry.Multiplier < 1 {
		errs = append(errs, fmt.Errorf("event.retry.multiplier must be >= 1, got %g", e.Retry.Multiplier))
	}
	if e.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("event.circuit_breaker.max_failures must be at least 1, got %d", e.CircuitBreaker.MaxFailures))
	}
	if e.CircuitBreaker.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("event.circuit_breaker.timeout must be positive, got %s", e.CircuitBreaker.Timeout))
	}
	if e.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("event.rate_limit.requests_per_second must not be negative, got %g", e.RateLimit.RequestsPerSecond))
	}
	if e.RateLimit.RequestsPerSecond > 0 && e.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("event.rate_limit.burst_size must be at least 1 when rate limiting is enabled, got %d", e.RateLimit.BurstSize))
	}
	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}
	var errs []error
	switch t.Exporter {
	case "stdout":
	case "otlp":
		if t.Endpoint == "" {
			errs = append(errs, errors.New("telemetry.endpoint is required when telemetry.exporter is otlp"))
		}
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be stdout or otlp, got %q", t.Exporter))
	}
	return errors.Join(errs...)
}
