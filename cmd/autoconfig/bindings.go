package main

import (
	"fmt"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/solace-autoconfig/internal/adapters/http/dto"
	"github.com/jsamuelsen11/solace-autoconfig/internal/ports"
)

func newBindingsCommand(opts *rootOptions) *cobra.Command {
	var legacy bool

	cmd := &cobra.Command{
		Use:   "bindings",
		Short: "List the broker bindings discovered in the environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			svc, err := do.Invoke[ports.AutoConfigService](s.wire(nil))
			if err != nil {
				return fmt.Errorf("wiring: %w", err)
			}

			records, err := svc.Bindings(cmd.Context())
			if err != nil {
				return fmt.Errorf("discovering bindings: %w", err)
			}

			if legacy {
				return printValue(cmd.OutOrStdout(), dto.ToLegacyBindingListResponse(records), opts.json)
			}
			return printValue(cmd.OutOrStdout(), dto.ToBindingListResponse(records), opts.json)
		},
	}

	cmd.Flags().BoolVar(&legacy, "legacy", false, "use the legacy messaging info field names")
	return cmd
}
