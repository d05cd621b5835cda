package ports

import (
	"context"

	"github.com/jsamuelsen11/solace-autoconfig/internal/domain/binding"
)

// BindingDiscoverer defines the client port for platform service discovery.
// Implemented by the VCAP adapter; called by the application layer.
type BindingDiscoverer interface {
	// Discover returns every broker binding visible to the process, in
	// discovery order. An environment without bindings yields an empty
	// slice and a nil error. Returns domain.ErrMalformedBinding when the
	// platform data cannot be decoded.
	Discover(ctx context.Context) ([]binding.Record, error)
}

// Message is a single message observed on a topic.
type Message struct {
	Topic   string
	Payload []byte
}

// MessageHandler receives messages delivered to a subscription. It is called
// from the transport's delivery goroutine.
type MessageHandler func(msg Message)

// Session is an open connection to a broker.
type Session interface {
	// Subscribe starts delivering messages published to topic to handler.
	Subscribe(ctx context.Context, topic string, handler MessageHandler) error

	// Publish sends payload to topic as a persistent message.
	Publish(ctx context.Context, topic string, payload []byte) error

	// Close stops all receivers and releases the connection.
	Close(ctx context.Context) error
}

// SessionFactory opens broker sessions from a resolved configuration.
// Implemented by the Solace and in-memory adapters.
type SessionFactory interface {
	// Open connects to the broker. Returns domain.ErrMissingCredential when
	// the configuration lacks a credential the broker requires. Other
	// broker errors are returned wrapped but otherwise unchanged.
	Open(ctx context.Context) (Session, error)
}
