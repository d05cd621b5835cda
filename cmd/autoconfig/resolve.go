package main

import (
	"context"
	"fmt"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/solace-autoconfig/internal/adapters/http/dto"
	"github.com/jsamuelsen11/solace-autoconfig/internal/domain/settings"
	"github.com/jsamuelsen11/solace-autoconfig/internal/ports"
)

type resolveOutput struct {
	Config     dto.ConfigResponse `json:"config" yaml:"config"`
	Properties map[string]any     `json:"properties" yaml:"properties"`
}

func newResolveCommand(opts *rootOptions) *cobra.Command {
	var bindingID string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved configuration and broker client properties",
		Long: "Runs cloud detection, binding discovery and resolution exactly as the demo\n" +
			"program does, then prints the result. Passwords are masked.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			svc, err := do.Invoke[ports.AutoConfigService](s.wire(nil))
			if err != nil {
				return fmt.Errorf("wiring: %w", err)
			}

			resolve := svc.Resolve
			if bindingID != "" {
				resolve = func(ctx context.Context) (settings.Resolved, error) {
					return svc.ResolveByID(ctx, bindingID)
				}
			}
			resolved, err := resolve(cmd.Context())
			if err != nil {
				return fmt.Errorf("resolving broker configuration: %w", err)
			}

			return printValue(cmd.OutOrStdout(), resolveOutput{
				Config:     dto.ToConfigResponse(resolved),
				Properties: dto.ToPropertiesResponse(resolved).Properties,
			}, opts.json)
		},
	}

	cmd.Flags().StringVar(&bindingID, "binding", "", "resolve against the binding with this id instead of the first")
	return cmd
}
