package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	adapthttp "github.com/jsamuelsen11/solace-autoconfig/internal/adapters/http"
	"github.com/jsamuelsen11/solace-autoconfig/internal/bootstrap"
	"github.com/jsamuelsen11/solace-autoconfig/internal/ports"
)

const otelShutdownTimeout = 5 * time.Second

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve bindings, resolved configuration and health over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts, cmd)
		},
	}
}

func runServe(ctx context.Context, opts *rootOptions, cmd *cobra.Command) error {
	s, err := opts.load(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	tel, err := bootstrap.InitTelemetry(ctx, &s.cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), otelShutdownTimeout)
		defer cancel()
		if err := tel.Shutdown(otelCtx); err != nil {
			s.logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := s.wire(tel.Metrics)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring server: %w", err)
	}

	// A failed resolution still serves: /api/v1/config reports the error and
	// readiness simply lacks a broker check.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	if factory, err := do.Invoke[ports.SessionFactory](injector); err != nil {
		s.logger.Warn("broker health check disabled", slog.Any("error", err))
	} else {
		registerBrokerCheck(ctx, registry, factory, s.logger)
	}

	return server.Run(ctx)
}

// registerBrokerCheck opens and closes one session so the factory's health
// reflects a real connection attempt, then registers it for readiness.
// Factories that do not report health are only exercised.
func registerBrokerCheck(ctx context.Context, registry ports.HealthRegistry, factory ports.SessionFactory, logger *slog.Logger) {
	sess, err := factory.Open(ctx)
	if err != nil {
		logger.WarnContext(ctx, "broker not reachable at startup", slog.Any("error", err))
	} else if cerr := sess.Close(ctx); cerr != nil {
		logger.WarnContext(ctx, "closing startup session", slog.Any("error", cerr))
	}

	if checker, ok := factory.(ports.HealthChecker); ok {
		registry.Register(checker)
	}
}
