package ports

import (
	"context"

	"github.com/jsamuelsen11/solace-autoconfig/internal/domain/binding"
	"github.com/jsamuelsen11/solace-autoconfig/internal/domain/settings"
)

// AutoConfigService defines the service port for configuration resolution.
// Implemented by the application layer; called by inbound adapters (HTTP
// handlers, CLI commands, the demo program).
type AutoConfigService interface {
	// IsCloud reports whether the configured detector expects a cloud binding.
	IsCloud() bool

	// Bindings returns every discovered binding, unresolved and in discovery
	// order. Empty when the process is not running in cloud mode.
	Bindings(ctx context.Context) ([]binding.Record, error)

	// Binding returns the discovered binding with the given id.
	// Returns domain.ErrBindingNotFound if no binding has that id.
	Binding(ctx context.Context, id string) (binding.Record, error)

	// Resolve runs detect, discover and resolve against the first binding.
	// Returns domain.ErrBindingNotFound when cloud mode is detected but no
	// binding was discovered.
	Resolve(ctx context.Context) (settings.Resolved, error)

	// ResolveByID resolves against the binding with the given id.
	// Returns domain.ErrBindingNotFound if no binding has that id.
	ResolveByID(ctx context.Context, id string) (settings.Resolved, error)
}
