// Package resolver merges local broker settings with a discovered service
// binding. Connection fields are resolved independently: a non-empty binding
// value wins, anything else falls back to the local value. Fields with no
// binding counterpart always come from the local settings.
package resolver

import (
	"maps"

	"github.com/jsamuelsen11/solace-autoconfig/internal/domain"
	"github.com/jsamuelsen11/solace-autoconfig/internal/domain/binding"
	"github.com/jsamuelsen11/solace-autoconfig/internal/domain/settings"
)

// Resolve merges local with b. A nil b yields the local settings unchanged.
// The result shares no mutable state with either input.
func Resolve(local settings.Local, b *binding.Record) settings.Resolved {
	r := settings.Resolved{
		Host:                       local.Host,
		MsgVPN:                     local.MsgVPN,
		ClientUsername:             local.ClientUsername,
		ClientPassword:             local.ClientPassword,
		ClientName:                 local.ClientName,
		ConnectRetries:             local.ConnectRetries,
		ReconnectRetries:           local.ReconnectRetries,
		ConnectRetriesPerHost:      local.ConnectRetriesPerHost,
		ReconnectRetryWaitInMillis: local.ReconnectRetryWaitInMillis,
		MessageAckMode:             local.MessageAckMode,
		ReapplySubscriptions:       local.ReapplySubscriptions,
		Advanced:                   copyAdvanced(local.Advanced),
		Source:                     settings.SourceLocal,
	}
	if b == nil {
		return r
	}

	r.Source = settings.SourceCloud
	r.BindingID = b.ID
	r.Host = prefer(b.FirstHost(), local.Host)
	r.MsgVPN = prefer(b.Namespace, local.MsgVPN)
	// Username and password fall back independently of each other.
	r.ClientUsername = prefer(b.Username, local.ClientUsername)
	r.ClientPassword = prefer(b.Password, local.ClientPassword)
	return r
}

// ResolveFirst resolves against the first binding in discovery order when
// cloud is true. With cloud false the bindings are ignored. Cloud mode with no
// bindings is a *domain.BindingNotFoundError.
func ResolveFirst(local settings.Local, bindings []binding.Record, cloud bool) (settings.Resolved, error) {
	if !cloud {
		return Resolve(local, nil), nil
	}
	if len(bindings) == 0 {
		return settings.Resolved{}, &domain.BindingNotFoundError{}
	}
	first := bindings[0]
	return Resolve(local, &first), nil
}

// ResolveByID resolves against the binding with the given id.
func ResolveByID(local settings.Local, bindings []binding.Record, id string) (settings.Resolved, error) {
	b, ok := binding.Find(bindings, id)
	if !ok {
		return settings.Resolved{}, &domain.BindingNotFoundError{ID: id}
	}
	return Resolve(local, &b), nil
}

func prefer(cloud, local string) string {
	if cloud != "" {
		return cloud
	}
	return local
}

func copyAdvanced(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return maps.Clone(m)
}
