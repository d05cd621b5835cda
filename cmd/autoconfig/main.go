// Package main is the autoconfig CLI. It shows what the broker
// configuration resolves to in the current environment, lists discovered
// bindings and can serve the same views over HTTP.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/solace-autoconfig/internal/bootstrap"
	"github.com/jsamuelsen11/solace-autoconfig/internal/platform/cloud"
	"github.com/jsamuelsen11/solace-autoconfig/internal/platform/config"
	"github.com/jsamuelsen11/solace-autoconfig/internal/platform/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(cloud.OSEnv()).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// rootOptions holds the persistent flags.
type rootOptions struct {
	profile   string
	configDir string
	json      bool
	env       cloud.Env
}

func newRootCommand(env cloud.Env) *cobra.Command {
	opts := &rootOptions{env: env}

	cmd := &cobra.Command{
		Use:           "autoconfig",
		Short:         "Inspect broker configuration resolved from the environment",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.profile, "profile", "", "configuration profile (default $"+bootstrap.ProfileEnv+")")
	flags.StringVar(&opts.configDir, "config-dir", "configs", "directory holding base.yaml and profile files")
	flags.BoolVar(&opts.json, "json", false, "print JSON instead of YAML")

	cmd.AddCommand(
		newResolveCommand(opts),
		newBindingsCommand(opts),
		newServeCommand(opts),
	)
	return cmd
}

// session is the configuration a subcommand runs with.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	env    cloud.Env
}

// load reads configuration. Logs go to logs so stdout carries only command
// output.
func (o *rootOptions) load(logs io.Writer) (*session, error) {
	cfg, logger, err := bootstrap.Load(o.profile, logs, config.WithConfigDir(o.configDir))
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, logger: logger, env: o.env}, nil
}

func (s *session) wire(metrics *telemetry.Metrics) *do.RootScope {
	return bootstrap.NewInjector(s.cfg, s.env, s.logger, metrics)
}
