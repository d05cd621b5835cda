// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import (
	"maps"
	"time"

	"github.com/jsamuelsen11/solace-autoconfig/internal/domain/settings"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Cloud     CloudConfig     `koanf:"cloud"`
	Broker    BrokerConfig    `koanf:"broker"`
	Solace    SolaceConfig    `koanf:"solace"`
}

// ServerConfig holds HTTP server settings for the inspection endpoint.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// CloudConfig selects how the cloud platform is detected and which service
// labels identify broker bindings.
type CloudConfig struct {
	Detection     string   `koanf:"detection"`
	ServiceLabels []string `koanf:"service_labels"`
}

// BrokerConfig holds settings for the session transport.
type BrokerConfig struct {
	Transport      string               `koanf:"transport"`
	ConnectTimeout time.Duration        `koanf:"connect_timeout"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// SolaceConfig holds the local broker settings. Advanced is filled from the
// solace.advanced subtree with its keys kept flat.
type SolaceConfig struct {
	Host                       string            `koanf:"host"`
	MsgVPN                     string            `koanf:"msg_vpn"`
	ClientUsername             string            `koanf:"client_username"`
	ClientPassword             string            `koanf:"client_password" masq:"secret"`
	ClientName                 string            `koanf:"client_name"`
	ConnectRetries             int               `koanf:"connect_retries"`
	ReconnectRetries           int               `koanf:"reconnect_retries"`
	ConnectRetriesPerHost      int               `koanf:"connect_retries_per_host"`
	ReconnectRetryWaitInMillis int               `koanf:"reconnect_retry_wait_in_millis"`
	MessageAckMode             string            `koanf:"message_ack_mode"`
	ReapplySubscriptions       bool              `koanf:"reapply_subscriptions"`
	Advanced                   map[string]string `koanf:"-"`
}

// Local converts the section into domain local settings.
func (s *SolaceConfig) Local() settings.Local {
	advanced := make(map[string]string, len(s.Advanced))
	maps.Copy(advanced, s.Advanced)
	return settings.Local{
		Host:                       s.Host,
		MsgVPN:                     s.MsgVPN,
		ClientUsername:             s.ClientUsername,
		ClientPassword:             s.ClientPassword,
		ClientName:                 s.ClientName,
		ConnectRetries:             s.ConnectRetries,
		ReconnectRetries:           s.ReconnectRetries,
		ConnectRetriesPerHost:      s.ConnectRetriesPerHost,
		ReconnectRetryWaitInMillis: s.ReconnectRetryWaitInMillis,
		MessageAckMode:             settings.AckMode(s.MessageAckMode),
		ReapplySubscriptions:       s.ReapplySubscriptions,
		Advanced:                   advanced,
	}
}
