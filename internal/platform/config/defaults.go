package config

import (
	"slices"

	"github.com/jsamuelsen11/solace-autoconfig/internal/domain/settings"
	"github.com/jsamuelsen11/solace-autoconfig/internal/platform/cloud"
)

const (
	defaultServerPort = 8080

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "solace-autoconfig",

		"cloud.detection":      cloud.StrategyServicesArray,
		"cloud.service_labels": slices.Clone(cloud.DefaultLabels),

		"broker.transport":                       TransportSolace,
		"broker.connect_timeout":                 "10s",
		"broker.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"broker.circuit_breaker.timeout":         "30s",
		"broker.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"solace.host":                           settings.DefaultHost,
		"solace.msg_vpn":                        settings.DefaultMsgVPN,
		"solace.client_username":                settings.DefaultClientUsername,
		"solace.client_password":                "",
		"solace.client_name":                    "",
		"solace.connect_retries":                settings.DefaultConnectRetries,
		"solace.reconnect_retries":              settings.DefaultReconnectRetries,
		"solace.connect_retries_per_host":       settings.DefaultConnectRetriesPerHost,
		"solace.reconnect_retry_wait_in_millis": settings.DefaultReconnectRetryWaitInMillis,
		"solace.message_ack_mode":               string(settings.AckModeAuto),
		"solace.reapply_subscriptions":          false,
	}
}
