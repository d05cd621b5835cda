package solace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"
	"solace.dev/go/messaging"
	solaceapi "solace.dev/go/messaging/pkg/solace"
	"solace.dev/go/messaging/pkg/solace/config"

	"github.com/jsamuelsen11/solace-autoconfig/internal/domain"
	"github.com/jsamuelsen11/solace-autoconfig/internal/domain/settings"
	appconfig "github.com/jsamuelsen11/solace-autoconfig/internal/platform/config"
	"github.com/jsamuelsen11/solace-autoconfig/internal/ports"
)

var (
	_ ports.SessionFactory = (*SessionFactory)(nil)
	_ ports.HealthChecker  = (*SessionFactory)(nil)
)

// HealthName is the name the factory reports under in the health registry.
const HealthName = "broker"

// BuildFunc creates an unconnected messaging service from a property bag.
type BuildFunc func(props config.ServicePropertyMap) (solaceapi.MessagingService, error)

// Option configures a SessionFactory.
type Option func(*SessionFactory)

// WithBuildFunc replaces the messaging service builder.
func WithBuildFunc(fn BuildFunc) Option {
	return func(f *SessionFactory) {
		f.build = fn
	}
}

// SessionFactory opens sessions against a PubSub+ broker using a resolved
// configuration. Connection attempts pass through a circuit breaker; the
// messaging service itself owns reconnects once connected.
type SessionFactory struct {
	resolved       settings.Resolved
	connectTimeout time.Duration
	breaker        *gobreaker.CircuitBreaker[solaceapi.MessagingService]
	build          BuildFunc
	logger         *slog.Logger

	mu      sync.Mutex
	lastErr error // outcome of the most recent connection attempt
}

// NewSessionFactory returns a factory for r using the broker section of the
// service configuration.
func NewSessionFactory(r settings.Resolved, cfg *appconfig.BrokerConfig, logger *slog.Logger, opts ...Option) *SessionFactory {
	cb := gobreaker.NewCircuitBreaker[solaceapi.MessagingService](gobreaker.Settings{
		Name:        HealthName,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			// Configuration errors do not count against the broker.
			return err == nil || errors.Is(err, domain.ErrMissingCredential) || errors.Is(err, domain.ErrMalformedProperty)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	f := &SessionFactory{
		resolved:       r,
		connectTimeout: cfg.ConnectTimeout,
		breaker:        cb,
		build:          defaultBuild,
		logger:         logger,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Open builds a messaging service from the resolved configuration and
// connects it.
func (f *SessionFactory) Open(ctx context.Context) (ports.Session, error) {
	if f.resolved.ClientUsername == "" {
		return nil, &domain.MissingCredentialError{Field: "client_username"}
	}

	svc, err := f.breaker.Execute(func() (solaceapi.MessagingService, error) {
		return f.connect(ctx)
	})
	f.setLastErr(err)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("connecting to %s: %w: %w", f.resolved.Host, domain.ErrUnavailable, err)
		}
		return nil, err
	}

	f.logger.InfoContext(ctx, "connected to broker",
		slog.String("host", f.resolved.Host),
		slog.String("msg_vpn", f.resolved.MsgVPN),
		slog.String("source", string(f.resolved.Source)),
	)

	return newSession(svc, f.connectTimeout, f.logger), nil
}

func (f *SessionFactory) connect(ctx context.Context) (solaceapi.MessagingService, error) {
	props := Properties(f.resolved)
	f.logger.DebugContext(ctx, "building messaging service",
		slog.Any("properties", StringMap(Redact(props, settings.RedactedValue))),
	)

	svc, err := f.build(props)
	if err != nil {
		var invalid *solaceapi.InvalidConfigurationError
		if errors.As(err, &invalid) {
			return nil, &domain.MalformedPropertyError{Err: err}
		}
		return nil, fmt.Errorf("building messaging service: %w", err)
	}

	if f.connectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.connectTimeout)
		defer cancel()
	}

	select {
	case err := <-svc.ConnectAsync():
		if err != nil {
			return nil, fmt.Errorf("connecting to %s: %w", f.resolved.Host, err)
		}
		return svc, nil
	case <-ctx.Done():
		go func() {
			if err := svc.Disconnect(); err != nil {
				f.logger.Debug("disconnect after abandoned connect", slog.String("error", err.Error()))
			}
		}()
		return nil, fmt.Errorf("connecting to %s: %w", f.resolved.Host, ctx.Err())
	}
}

func (f *SessionFactory) Name() string {
	return HealthName
}

func (f *SessionFactory) setLastErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastErr = err
}

// HealthCheck reports broker availability from the circuit breaker state
// and the outcome of the last connection attempt. No network call is made;
// a factory that never opened a session reports healthy.
func (f *SessionFactory) HealthCheck(_ context.Context) error {
	state := f.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.lastErr != nil {
			return fmt.Errorf("%s: last connection attempt failed: %w", HealthName, f.lastErr)
		}
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", HealthName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", HealthName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", HealthName, state)
	}
}

func defaultBuild(props config.ServicePropertyMap) (solaceapi.MessagingService, error) {
	return messaging.NewMessagingServiceBuilder().FromConfigurationProvider(props).Build()
}

// toUint32 converts a non-negative int to uint32, clamping at the uint32
// maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if uint64(v) > uint64(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(v)
}
