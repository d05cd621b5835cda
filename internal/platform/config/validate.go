package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jsamuelsen11/solace-autoconfig/internal/platform/cloud"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Cloud.validate(),
		c.Broker.validate(),
		c.Solace.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (c *CloudConfig) validate() error {
	var errs []error

	if !slices.Contains(cloud.Strategies(), c.Detection) {
		errs = append(errs, fmt.Errorf("cloud.detection must be one of: %s; got %q",
			strings.Join(cloud.Strategies(), ", "), c.Detection))
	}
	if len(c.ServiceLabels) == 0 {
		errs = append(errs, errors.New("cloud.service_labels must not be empty"))
	}
	for i, l := range c.ServiceLabels {
		if strings.TrimSpace(l) == "" {
			errs = append(errs, fmt.Errorf("cloud.service_labels[%d] must not be blank", i))
		}
	}

	return errors.Join(errs...)
}

func (b *BrokerConfig) validate() error {
	var errs []error

	switch b.Transport {
	case TransportSolace, TransportMemory:
		// Valid transports.
	default:
		errs = append(errs, fmt.Errorf("broker.transport must be one of: %s, %s; got %q",
			TransportSolace, TransportMemory, b.Transport))
	}
	if b.ConnectTimeout <= 0 {
		errs = append(errs, errors.New("broker.connect_timeout must be positive"))
	}
	if b.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("broker.circuit_breaker.max_failures must be >= 1, got %d",
			b.CircuitBreaker.MaxFailures))
	}

	return errors.Join(errs...)
}

func (s *SolaceConfig) validate() error {
	local := s.Local()
	if err := local.Validate(); err != nil {
		return fmt.Errorf("solace: %w", err)
	}
	return nil
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
