package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeConfigDir materializes a config directory with the given YAML files.
func writeConfigDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

const minimalBase = `
server:
  port: 8080
storage:
  driver: memory
event:
  base_url: http://localhost:8081
`

func TestLoad(t *testing.T) {
	t.Run("layered precedence", func(t *testing.T) {
		dir := writeConfigDir(t, map[string]string{
			"base.yaml": minimalBase,
			"test.yaml": `
server:
  port: 9090
log:
  level: debug
  format: text
`,
		})

		cfg, err := Load("test", WithConfigDir(dir))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		// Profile overrides base.
		if cfg.Server.Port != 9090 {
			t.Errorf("Server.Port = %d, want profile override 9090", cfg.Server.Port)
		}
		if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
			t.Errorf("Log = %+v, want debug/text from profile", cfg.Log)
		}

		// Defaults fill what no file sets.
		if cfg.Server.ReadTimeout != 5*time.Second {
			t.Errorf("Server.ReadTimeout = %s, want default 5s", cfg.Server.ReadTimeout)
		}
		if cfg.Event.Retry.MaxAttempts != 3 {
			t.Errorf("Event.Retry.MaxAttempts = %d, want default 3", cfg.Event.Retry.MaxAttempts)
		}
		if !cfg.Membership.Enabled {
			t.Error("Membership.Enabled = false, want default true")
		}
	})

	t.Run("env vars override files", func(t *testing.T) {
		dir := writeConfigDir(t, map[string]string{
			"base.yaml": minimalBase,
			"test.yaml": "",
		})

		t.Setenv("APP_SERVER_PORT", "7777")
		t.Setenv("APP_SERVER_READ_TIMEOUT", "9s")
		t.Setenv("APP_EVENT_RETRY_MAX_ATTEMPTS", "5")

		cfg, err := Load("test", WithConfigDir(dir))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Server.Port != 7777 {
			t.Errorf("Server.Port = %d, want env override 7777", cfg.Server.Port)
		}
		// Underscore-bearing keys resolve through the reverse lookup.
		if cfg.Server.ReadTimeout != 9*time.Second {
			t.Errorf("Server.ReadTimeout = %s, want env override 9s", cfg.Server.ReadTimeout)
		}
		if cfg.Event.Retry.MaxAttempts != 5 {
			t.Errorf("Event.Retry.MaxAttempts = %d, want env override 5", cfg.Event.Retry.MaxAttempts)
		}
	})

	t.Run("missing profile file fails", func(t *testing.T) {
		dir := writeConfigDir(t, map[string]string{"base.yaml": minimalBase})

		_, err := Load("nonexistent", WithConfigDir(dir))
		if err == nil {
			t.Fatal("Load() = nil error for missing profile file")
		}
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		dir := writeConfigDir(t, map[string]string{
			"base.yaml": minimalBase,
			"test.yaml": `
storage:
  driver: cassandra
log:
  level: loud
`,
		})

		_, err := Load("test", WithConfigDir(dir))
		if err == nil {
			t.Fatal("Load() = nil error for invalid config")
		}
		if !strings.Contains(err.Error(), "storage.driver") {
			t.Errorf("error = %q, want mention of storage.driver", err)
		}
		if !strings.Contains(err.Error(), "log.level") {
			t.Errorf("error = %q, want mention of log.level", err)
		}
	})

	t.Run("postgres driver requires a dsn", func(t *testing.T) {
		dir := writeConfigDir(t, map[string]string{
			"base.yaml": minimalBase,
			"test.yaml": `
storage:
  driver: postgres
`,
		})

		_, err := Load("test", WithConfigDir(dir))
		if err == nil || !strings.Contains(err.Error(), "storage.dsn") {
			t.Fatalf("Load() error = %v, want storage.dsn requirement", err)
		}
	})
}

func TestLoad_ProfileValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		profile string
	}{
		{name: "empty", profile: ""},
		{name: "whitespace", profile: "   "},
		{name: "path separator", profile: "foo/bar"},
		{name: "backslash", profile: `foo\bar`},
		{name: "traversal", profile: ".."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Load(tt.profile); err == nil {
				t.Errorf("Load(%q) = nil error, want profile rejection", tt.profile)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := func() Config {
		return Config{
			Server: ServerConfig{
				Host:         "0.0.0.0",
				Port:         8080,
				ReadTimeout:  5 * time.Second,
				WriteTimeout: 10 * time.Second,
				IdleTimeout:  time.Minute,
			},
			Log:     LogConfig{Level: "info", Format: "json"},
			Storage: StorageConfig{Driver: "memory"},
			Event: EventConfig{
				BaseURL: "http://localhost:8081",
				Timeout: 30 * time.Second,
				Retry: RetryConfig{
					MaxAttempts:     3,
					InitialInterval: 100 * time.Millisecond,
					MaxInterval:     10 * time.Second,
					Multiplier:      2,
				},
				CircuitBreaker: CircuitBreakerConfig{
					MaxFailures:   5,
					Timeout:       30 * time.Second,
					HalfOpenLimit: 1,
				},
			},
		}
	}

	t.Run("valid config passes", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Validate() = %v, want nil", err)
		}
	})

	t.Run("relative event url fails", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.Event.BaseURL = "/events"
		if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "event.base_url") {
			t.Fatalf("Validate() = %v, want absolute-URL requirement", err)
		}
	})

	t.Run("retry interval ordering", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.Event.Retry.MaxInterval = 10 * time.Millisecond
		if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "max_interval") {
			t.Fatalf("Validate() = %v, want max_interval requirement", err)
		}
	})

	t.Run("rate limit burst required when enabled", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.Event.RateLimit.RequestsPerSecond = 50
		cfg.Event.RateLimit.BurstSize = 0
		if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "burst_size") {
			t.Fatalf("Validate() = %v, want burst_size requirement", err)
		}
	})

	t.Run("otlp exporter requires endpoint", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.Telemetry = TelemetryConfig{Enabled: true, Exporter: "otlp"}
		if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "telemetry.endpoint") {
			t.Fatalf("Validate() = %v, want telemetry.endpoint requirement", err)
		}
	})

	t.Run("disabled telemetry skips exporter checks", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.Telemetry = TelemetryConfig{Enabled: false, Exporter: "bogus"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Validate() = %v, want nil when telemetry disabled", err)
		}
	})
}
