// Package bootstrap loads configuration and wires the dependency graph shared
// by the demo program and the autoconfig CLI.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"os"

	"github.com/samber/do/v2"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	adapthttp "github.com/jsamuelsen11/solace-autoconfig/internal/adapters/http"
	"github.com/jsamuelsen11/solace-autoconfig/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/solace-autoconfig/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/solace-autoconfig/internal/adapters/clients/memory"
	"github.com/jsamuelsen11/solace-autoconfig/internal/adapters/clients/solace"
	"github.com/jsamuelsen11/solace-autoconfig/internal/adapters/clients/vcap"
	"github.com/jsamuelsen11/solace-autoconfig/internal/app"
	"github.com/jsamuelsen11/solace-autoconfig/internal/domain/settings"
	"github.com/jsamuelsen11/solace-autoconfig/internal/platform/cloud"
	"github.com/jsamuelsen11/solace-autoconfig/internal/platform/config"
	"github.com/jsamuelsen11/solace-autoconfig/internal/platform/health"
	"github.com/jsamuelsen11/solace-autoconfig/internal/platform/logging"
	"github.com/jsamuelsen11/solace-autoconfig/internal/platform/telemetry"
	"github.com/jsamuelsen11/solace-autoconfig/internal/ports"
)

// ProfileEnv names the variable selecting the configuration profile.
const ProfileEnv = "APP_PROFILE"

// Load reads the configuration for profile, falling back to $APP_PROFILE,
// and builds the logger it describes. Logs go to w.
func Load(profile string, w io.Writer, opts ...config.Option) (*config.Config, *slog.Logger, error) {
	if profile == "" {
		profile = os.Getenv(ProfileEnv)
	}
	if profile == "" {
		return nil, nil, fmt.Errorf("%s environment variable is required (e.g. local, cloud, prod)", ProfileEnv)
	}

	cfg, err := config.Load(profile, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, logging.New(cfg.Log.Level, cfg.Log.Format, w), nil
}

// Telemetry bundles OpenTelemetry provider lifecycle. The providers and
// Metrics are nil when telemetry is disabled.
type Telemetry struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	Metrics *telemetry.Metrics
}

// InitTelemetry registers the global tracer and meter providers described
// by cfg.
func InitTelemetry(ctx context.Context, cfg *config.TelemetryConfig) (*Telemetry, error) {
	if !cfg.Enabled {
		return &Telemetry{}, nil
	}

	tp, err := telemetry.InitTracer(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint)
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

	return &Telemetry{tracer: tp, meter: mp, Metrics: metrics}, nil
}

// Shutdown flushes both providers. Nil-safe.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if t.tracer != nil {
		if err := t.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if t.meter != nil {
		if err := t.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

// NewInjector registers every provider. Nothing is built until invoked:
// invoking settings.Resolved runs detection, discovery and resolution, and
// invoking ports.SessionFactory additionally picks the broker transport.
func NewInjector(cfg *config.Config, env cloud.Env, logger *slog.Logger, metrics *telemetry.Metrics) *do.RootScope {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, env)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)

	do.Provide(injector, func(i do.Injector) (*vcap.Discoverer, error) {
		return vcap.NewDiscoverer(do.MustInvoke[cloud.Env](i), cfg.Cloud.ServiceLabels, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (cloud.Detector, error) {
		disc := do.MustInvoke[*vcap.Discoverer](i)
		return cloud.New(cfg.Cloud.Detection, cfg.Cloud.ServiceLabels, disc.Count)
	})

	do.Provide(injector, func(i do.Injector) (ports.AutoConfigService, error) {
		detector, err := do.Invoke[cloud.Detector](i)
		if err != nil {
			return nil, err
		}
		opts := []app.Option{
			app.WithLabels(cfg.Cloud.ServiceLabels),
			app.WithStrategy(cfg.Cloud.Detection),
		}
		if metrics != nil {
			opts = append(opts, app.WithMetrics(metrics))
		}
		return app.NewAutoConfigService(
			detector,
			do.MustInvoke[cloud.Env](i),
			do.MustInvoke[*vcap.Discoverer](i),
			cfg.Solace.Local(),
			logger,
			opts...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (settings.Resolved, error) {
		svc, err := do.Invoke[ports.AutoConfigService](i)
		if err != nil {
			return settings.Resolved{}, err
		}
		return svc.Resolve(context.Background())
	})

	do.Provide(injector, func(i do.Injector) (ports.SessionFactory, error) {
		resolved, err := do.Invoke[settings.Resolved](i)
		if err != nil {
			return nil, err
		}
		return NewSessionFactory(&cfg.Broker, resolved, logger)
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		registry.Register(do.MustInvoke[*vcap.Discoverer](i))
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ConfigHandler, error) {
		svc, err := do.Invoke[ports.AutoConfigService](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewConfigHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		configH, err := do.Invoke[*handlers.ConfigHandler](i)
		if err != nil {
			return nil, err
		}
		return adapthttp.NewRouter(configH, do.MustInvoke[*handlers.HealthHandler](i),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler, err := do.Invoke[nethttp.Handler](i)
		if err != nil {
			return nil, err
		}
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})

	return injector
}

// NewSessionFactory returns the session factory for cfg.Transport.
func NewSessionFactory(cfg *config.BrokerConfig, resolved settings.Resolved, logger *slog.Logger) (ports.SessionFactory, error) {
	switch cfg.Transport {
	case config.TransportSolace, "":
		return solace.NewSessionFactory(resolved, cfg, logger), nil
	case config.TransportMemory:
		return memory.NewSessionFactory(resolved, logger), nil
	default:
		return nil, fmt.Errorf("unknown broker transport %q", cfg.Transport)
	}
}
