// Package main is the demo program. It resolves the broker configuration
// from the environment, opens a session, publishes "Hello World" to
// tutorial/topic and waits for it to come back. It takes no flags; the
// profile comes from APP_PROFILE.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/solace-autoconfig/internal/app/demo"
	"github.com/jsamuelsen11/solace-autoconfig/internal/bootstrap"
	"github.com/jsamuelsen11/solace-autoconfig/internal/platform/cloud"
	"github.com/jsamuelsen11/solace-autoconfig/internal/ports"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, logger, err := bootstrap.Load("", os.Stderr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tel, err := bootstrap.InitTelemetry(ctx, &cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := tel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := bootstrap.NewInjector(cfg, cloud.OSEnv(), logger, tel.Metrics)

	// Resolution failures are fatal; the error names the missing binding.
	factory, err := do.Invoke[ports.SessionFactory](injector)
	if err != nil {
		return fmt.Errorf("resolving broker configuration: %w", err)
	}
	if c, ok := factory.(io.Closer); ok {
		defer func() { _ = c.Close() }()
	}

	demoCfg := demo.DefaultConfig()
	demoCfg.Transport = cfg.Broker.Transport

	res, err := demo.Run(ctx, factory, demoCfg, logger, tel.Metrics)
	if err != nil {
		return fmt.Errorf("running demo: %w", err)
	}

	if res.Received {
		logger.Info("demo complete", slog.String("message", res.Message), slog.Duration("elapsed", res.Elapsed))
	} else {
		logger.Info("demo complete without a reply", slog.Duration("waited", res.Elapsed))
	}
	return nil
}
