// Package main is the entry point for the task service. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/eventplanr/task-service/internal/adapters/http"
	"github.com/eventplanr/task-service/internal/adapters/http/handlers"
	"github.com/eventplanr/task-service/internal/adapters/http/middleware"

	"github.com/eventplanr/task-service/internal/adapters/clients/eventclient"
	"github.com/eventplanr/task-service/internal/adapters/storage/memory"
	"github.com/eventplanr/task-service/internal/adapters/storage/postgres"
	"github.com/eventplanr/task-service/internal/app"
	"github.com/eventplanr/task-service/internal/platform/config"
	"github.com/eventplanr/task-service/internal/platform/health"
	"github.com/eventplanr/task-service/internal/platform/httpclient"
	"github.com/eventplanr/task-service/internal/platform/logging"
	"github.com/eventplanr/task-service/internal/platform/telemetry"
	"github.com/eventplanr/task-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	httpClient := do.MustInvoke[*httpclient.Client](injector)
	registry.Register(httpClient)
	if cfg.Storage.Driver == "postgres" {
		registry.Register(do.MustInvoke[*postgres.DB](injector))
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	if cfg.Storage.Driver == "postgres" {
		if db, derr := do.Invoke[*postgres.DB](injector); derr == nil {
			if err := db.Close(); err != nil {
				logger.Error("database close error", slog.Any("error", err))
			}
		}
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*postgres.DB, error) {
		return postgres.Open(cfg.Storage.DSN, logger)
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskStore, error) {
		if cfg.Storage.Driver == "memory" {
			return memory.NewTaskStore(), nil
		}
		db := do.MustInvoke[*postgres.DB](i)
		return postgres.NewTaskStore(db), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.EpicStore, error) {
		if cfg.Storage.Driver == "memory" {
			return memory.NewEpicStore(), nil
		}
		db := do.MustInvoke[*postgres.DB](i)
		return postgres.NewEpicStore(db), nil
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Event, "event-service", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.EventClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return eventclient.New(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.MembershipPolicy, error) {
		if !cfg.Membership.Enabled {
			return app.OpenMembershipPolicy{}, nil
		}
		events := do.MustInvoke[ports.EventClient](i)
		return app.NewTeamMembershipPolicy(events, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		tasks := do.MustInvoke[ports.TaskStore](i)
		policy := do.MustInvoke[ports.MembershipPolicy](i)
		return app.NewTaskService(tasks, policy, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.EpicService, error) {
		epics := do.MustInvoke[ports.EpicStore](i)
		tasks := do.MustInvoke[ports.TaskStore](i)
		policy := do.MustInvoke[ports.MembershipPolicy](i)
		return app.NewEpicService(epics, tasks, policy, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TaskHandler, error) {
		svc := do.MustInvoke[ports.TaskService](i)
		return handlers.NewTaskHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.EpicHandler, error) {
		svc := do.MustInvoke[ports.EpicService](i)
		return handlers.NewEpicHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		taskH := do.MustInvoke[*handlers.TaskHandler](i)
		epicH := do.MustInvoke[*handlers.EpicHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(taskH, epicH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Identity(),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
