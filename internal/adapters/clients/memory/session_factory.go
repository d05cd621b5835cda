// Package memory provides an in-process broker session over a watermill Go
// channel pub/sub. Sessions opened from the same factory share one bus, so a
// message published by any of them reaches every matching subscription.
package memory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/jsamuelsen11/solace-autoconfig/internal/domain/settings"
	"github.com/jsamuelsen11/solace-autoconfig/internal/ports"
)

var _ ports.SessionFactory = (*SessionFactory)(nil)

// SessionFactory opens sessions on a shared in-process bus.
type SessionFactory struct {
	resolved settings.Resolved
	bus      *gochannel.GoChannel
	logger   *slog.Logger
}

// NewSessionFactory returns a factory whose bus keeps published messages for
// subscribers that join later.
func NewSessionFactory(r settings.Resolved, logger *slog.Logger) *SessionFactory {
	bus := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 64,
		Persistent:          true,
	}, watermill.NewSlogLogger(logger.With(slog.String("component", "gochannel"))))

	return &SessionFactory{resolved: r, bus: bus, logger: logger}
}

// Open returns a new session on the bus. It never dials anything.
func (f *SessionFactory) Open(ctx context.Context) (ports.Session, error) {
	f.logger.InfoContext(ctx, "opened in-memory session",
		slog.String("host", f.resolved.Host),
		slog.String("msg_vpn", f.resolved.MsgVPN),
		slog.String("source", string(f.resolved.Source)),
	)

	subCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	return &Session{bus: f.bus, ctx: subCtx, cancel: cancel, logger: f.logger}, nil
}

// Close shuts the bus down. Open sessions stop receiving.
func (f *SessionFactory) Close() error {
	return f.bus.Close()
}

// Session is a view on the shared bus. Its subscriptions end on Close.
type Session struct {
	bus    *gochannel.GoChannel
	ctx    context.Context
	cancel context.CancelFunc
	logger *slog.Logger

	mu     sync.Mutex
	wg     sync.WaitGroup
	closed bool
}

var errSessionClosed = errors.New("session closed")

// Subscribe delivers every message on topic to handler until the session is
// closed.
func (s *Session) Subscribe(ctx context.Context, topic string, handler ports.MessageHandler) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errSessionClosed
	}

	msgs, err := s.bus.Subscribe(s.ctx, topic)
	if err != nil {
		return fmt.Errorf("subscribing to %s: %w", topic, err)
	}

	s.wg.Go(func() {
		for msg := range msgs {
			handler(ports.Message{Topic: topic, Payload: msg.Payload})
			msg.Ack()
		}
	})

	s.logger.DebugContext(ctx, "subscribed", slog.String("topic", topic))
	return nil
}

// Publish puts payload on topic.
func (s *Session) Publish(_ context.Context, topic string, payload []byte) error {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return errSessionClosed
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.bus.Publish(topic, msg); err != nil {
		return fmt.Errorf("publishing to %s: %w", topic, err)
	}
	return nil
}

// Close ends the session's subscriptions and waits for their handlers to
// return. The shared bus stays open.
func (s *Session) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
	s.logger.DebugContext(ctx, "session closed")
	return nil
}
