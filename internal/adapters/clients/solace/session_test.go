package solace

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	solaceapi "solace.dev/go/messaging/pkg/solace"
	"solace.dev/go/messaging/pkg/solace/message"

	"github.com/jsamuelsen11/solace-autoconfig/internal/ports"
)

type stubService struct {
	solaceapi.MessagingService
}

func (stubService) Disconnect() error { return nil }

type stubReceiver struct {
	solaceapi.DirectMessageReceiver

	handler    solaceapi.MessageHandler
	started    bool
	terminated bool
}

func (r *stubReceiver) Start() error {
	r.started = true
	return nil
}

func (r *stubReceiver) ReceiveAsync(callback solaceapi.MessageHandler) error {
	r.handler = callback
	return nil
}

func (r *stubReceiver) Terminate(time.Duration) error {
	r.terminated = true
	return nil
}

type stubInbound struct {
	message.InboundMessage

	topic   string
	payload []byte
}

func (m stubInbound) GetPayloadAsBytes() ([]byte, bool) { return m.payload, true }
func (m stubInbound) GetDestinationName() string        { return m.topic }

func TestSession_SubscribeUsesDirectReceiver(t *testing.T) {
	t.Parallel()

	recv := &stubReceiver{}
	var topics []string
	s := newSession(stubService{}, time.Second, slog.New(slog.DiscardHandler))
	s.newReceiver = func(topic string) (solaceapi.DirectMessageReceiver, error) {
		topics = append(topics, topic)
		return recv, nil
	}

	got := make(chan ports.Message, 1)
	if err := s.Subscribe(context.Background(), "tutorial/topic", func(m ports.Message) { got <- m }); err != nil {
		t.Fatalf("Subscribe() error: %v", err)
	}
	if len(topics) != 1 || topics[0] != "tutorial/topic" {
		t.Fatalf("receiver built for %v, want [tutorial/topic]", topics)
	}
	if !recv.started || recv.handler == nil {
		t.Fatal("receiver not started with a handler")
	}

	recv.handler(stubInbound{topic: "tutorial/topic", payload: []byte("Hello World")})
	m := <-got
	if m.Topic != "tutorial/topic" || string(m.Payload) != "Hello World" {
		t.Errorf("delivered %q on %q", m.Payload, m.Topic)
	}

	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if !recv.terminated {
		t.Error("Close() did not terminate the receiver")
	}
}

func TestSession_SubscribeBuildError(t *testing.T) {
	t.Parallel()

	buildErr := errors.New("no subscriptions")
	s := newSession(stubService{}, time.Second, slog.New(slog.DiscardHandler))
	s.newReceiver = func(string) (solaceapi.DirectMessageReceiver, error) { return nil, buildErr }

	if err := s.Subscribe(context.Background(), "t", func(ports.Message) {}); !errors.Is(err, buildErr) {
		t.Errorf("Subscribe() error = %v, want build error", err)
	}
}

func TestAckTimeout(t *testing.T) {
	t.Parallel()

	t.Run("no deadline uses limit", func(t *testing.T) {
		t.Parallel()
		got, err := ackTimeout(context.Background(), 3*time.Second)
		if err != nil || got != 3*time.Second {
			t.Errorf("ackTimeout() = %v, %v; want 3s", got, err)
		}
	})

	t.Run("longer deadline keeps limit", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithTimeout(context.Background(), time.Hour)
		defer cancel()
		got, err := ackTimeout(ctx, time.Second)
		if err != nil || got != time.Second {
			t.Errorf("ackTimeout() = %v, %v; want 1s", got, err)
		}
	})

	t.Run("sooner deadline wins", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()
		got, err := ackTimeout(ctx, time.Minute)
		if err != nil || got <= 0 || got > 200*time.Millisecond {
			t.Errorf("ackTimeout() = %v, %v; want (0, 200ms]", got, err)
		}
	})

	t.Run("expired deadline fails", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
		defer cancel()
		if _, err := ackTimeout(ctx, time.Minute); !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("ackTimeout() error = %v, want deadline exceeded", err)
		}
	})

	t.Run("canceled context fails", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := ackTimeout(ctx, time.Minute); !errors.Is(err, context.Canceled) {
			t.Errorf("ackTimeout() error = %v, want canceled", err)
		}
	})
}
