// Package solace adapts resolved broker settings to the Solace PubSub+ Go
// messaging API and provides a broker session over it.
package solace

import (
	"strings"

	"solace.dev/go/messaging/pkg/solace/config"

	"github.com/jsamuelsen11/solace-autoconfig/internal/domain/settings"
)

// PropertyPrefix is the namespace of every messaging service property.
const PropertyPrefix = "solace.messaging."

// ReapplySubscriptionsProperty asks the client to re-add subscriptions after
// a reconnect. Only set when enabled.
const ReapplySubscriptionsProperty config.ServiceProperty = PropertyPrefix + "service.reapply-subscriptions"

// Properties builds the messaging service property bag for r. Advanced
// entries are copied first under the messaging namespace; the explicit
// fields are applied afterwards and win on collision. The result is built
// fresh on every call.
func Properties(r settings.Resolved) config.ServicePropertyMap {
	props := make(config.ServicePropertyMap, len(r.Advanced)+10)

	for k, v := range r.Advanced {
		props[config.ServiceProperty(qualify(k))] = v
	}

	props[config.TransportLayerPropertyHost] = r.Host
	props[config.ServicePropertyVPNName] = r.MsgVPN
	props[config.AuthenticationPropertySchemeBasicUserName] = r.ClientUsername
	props[config.AuthenticationPropertySchemeBasicPassword] = r.ClientPassword
	if r.ClientName != "" {
		props[config.ClientPropertyName] = r.ClientName
	}
	props[config.TransportLayerPropertyConnectionRetries] = r.ConnectRetries
	props[config.TransportLayerPropertyReconnectionAttempts] = r.ReconnectRetries
	props[config.TransportLayerPropertyConnectionRetriesPerHost] = r.ConnectRetriesPerHost
	props[config.TransportLayerPropertyReconnectionAttemptsWaitInterval] = r.ReconnectRetryWaitInMillis
	if r.ReapplySubscriptions {
		props[ReapplySubscriptionsProperty] = true
	}

	return props
}

// Redact replaces every credential entry of props, the basic password and
// any advanced password, secret, token or private key, with a fixed marker.
// props is not modified.
func Redact(props config.ServicePropertyMap, marker string) config.ServicePropertyMap {
	out := props.GetConfiguration()
	for k, v := range out {
		if v == nil || v == "" || !settings.IsCredentialKey(string(k)) {
			continue
		}
		out[k] = marker
	}
	return out
}

// StringMap renders props with string keys, for display.
func StringMap(props config.ServicePropertyMap) map[string]any {
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[string(k)] = v
	}
	return out
}

func qualify(key string) string {
	if strings.HasPrefix(key, PropertyPrefix) {
		return key
	}
	return PropertyPrefix + key
}
