package solace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	solaceapi "solace.dev/go/messaging/pkg/solace"
	"solace.dev/go/messaging/pkg/solace/message"
	"solace.dev/go/messaging/pkg/solace/resource"

	"github.com/jsamuelsen11/solace-autoconfig/internal/ports"
)

var _ ports.Session = (*Session)(nil)

// terminateGrace bounds how long receivers and the publisher may drain on Close.
const terminateGrace = time.Second

// Session is a connected messaging service. Receivers and the persistent
// publisher are created on first use and terminated by Close.
//
// Subscriptions use direct receivers, which have no acknowledgement, so the
// resolved message ack mode is not applied here.
type Session struct {
	service        solaceapi.MessagingService
	newReceiver    func(topic string) (solaceapi.DirectMessageReceiver, error)
	publishTimeout time.Duration
	logger         *slog.Logger

	mu        sync.Mutex
	receivers []solaceapi.DirectMessageReceiver
	publisher solaceapi.PersistentMessagePublisher
	closed    bool
}

func newSession(svc solaceapi.MessagingService, publishTimeout time.Duration, logger *slog.Logger) *Session {
	s := &Session{
		service:        svc,
		publishTimeout: publishTimeout,
		logger:         logger,
	}
	s.newReceiver = s.directReceiver
	return s
}

func (s *Session) directReceiver(topic string) (solaceapi.DirectMessageReceiver, error) {
	return s.service.CreateDirectMessageReceiverBuilder().
		WithSubscriptions(resource.TopicSubscriptionOf(topic)).
		Build()
}

// Subscribe starts a direct receiver on topic.
func (s *Session) Subscribe(ctx context.Context, topic string, handler ports.MessageHandler) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errSessionClosed
	}

	receiver, err := s.newReceiver(topic)
	if err != nil {
		return fmt.Errorf("building receiver for %s: %w", topic, err)
	}
	if err := receiver.Start(); err != nil {
		return fmt.Errorf("starting receiver for %s: %w", topic, err)
	}

	err = receiver.ReceiveAsync(func(in message.InboundMessage) {
		payload, _ := in.GetPayloadAsBytes()
		handler(ports.Message{Topic: in.GetDestinationName(), Payload: payload})
	})
	if err != nil {
		_ = receiver.Terminate(0)
		return fmt.Errorf("registering handler for %s: %w", topic, err)
	}

	s.receivers = append(s.receivers, receiver)
	s.logger.DebugContext(ctx, "subscribed", slog.String("topic", topic))
	return nil
}

// Publish sends payload to topic as a persistent message and waits for the
// broker acknowledgement.
func (s *Session) Publish(ctx context.Context, topic string, payload []byte) error {
	publisher, err := s.persistentPublisher()
	if err != nil {
		return err
	}

	msg, err := s.service.MessageBuilder().BuildWithByteArrayPayload(payload)
	if err != nil {
		return fmt.Errorf("building message: %w", err)
	}

	timeout, err := ackTimeout(ctx, s.publishTimeout)
	if err != nil {
		return fmt.Errorf("publishing to %s: %w", topic, err)
	}
	if err := publisher.PublishAwaitAcknowledgement(msg, resource.TopicOf(topic), timeout, nil); err != nil {
		return fmt.Errorf("publishing to %s: %w", topic, err)
	}
	return nil
}

// ackTimeout bounds the acknowledgement wait by limit and by the context
// deadline, whichever is sooner. A non-positive limit means no limit.
func ackTimeout(ctx context.Context, limit time.Duration) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	deadline, ok := ctx.Deadline()
	if !ok {
		return limit, nil
	}
	remaining := time.Until(deadline)
	if remaining <= 0 {
		return 0, context.DeadlineExceeded
	}
	if limit > 0 {
		return min(limit, remaining), nil
	}
	return remaining, nil
}

func (s *Session) persistentPublisher() (solaceapi.PersistentMessagePublisher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, errSessionClosed
	}
	if s.publisher != nil {
		return s.publisher, nil
	}

	publisher, err := s.service.CreatePersistentMessagePublisherBuilder().Build()
	if err != nil {
		return nil, fmt.Errorf("building publisher: %w", err)
	}
	if err := publisher.Start(); err != nil {
		return nil, fmt.Errorf("starting publisher: %w", err)
	}
	s.publisher = publisher
	return publisher, nil
}

// Close terminates receivers and the publisher, then disconnects. Calling
// Close more than once is a no-op.
func (s *Session) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	for _, r := range s.receivers {
		if err := r.Terminate(terminateGrace); err != nil {
			errs = append(errs, fmt.Errorf("terminating receiver: %w", err))
		}
	}
	if s.publisher != nil {
		if err := s.publisher.Terminate(terminateGrace); err != nil {
			errs = append(errs, fmt.Errorf("terminating publisher: %w", err))
		}
	}
	if err := s.service.Disconnect(); err != nil {
		errs = append(errs, fmt.Errorf("disconnecting: %w", err))
	}

	s.logger.DebugContext(ctx, "session closed", slog.Int("receivers", len(s.receivers)))
	return errors.Join(errs...)
}

var errSessionClosed = errors.New("session closed")
