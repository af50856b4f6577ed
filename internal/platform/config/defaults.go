package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values. These are loaded first
// and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"storage.driver": "postgres",
		"storage.dsn":    "",

		"event.base_url":                        "http://localhost:8081",
		"event.timeout":                         "30s",
		"event.retry.max_attempts":              defaultRetryMaxAttempts,
		"event.retry.initial_interval":          "100ms",
		"event.retry.max_interval":              "10s",
		"event.retry.multiplier":                defaultRetryMultiplier,
		"event.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"event.circuit_breaker.timeout":         "30s",
		"event.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"event.rate_limit.requests_per_second":  0.0,
		"event.rate_limit.burst_size":           1,

		"membership.enabled": true,

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",
	}
}
