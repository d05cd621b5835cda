// Package demo runs the publish/subscribe round trip used to show that a
// resolved configuration reaches a working broker session.
package demo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/solace-autoconfig/internal/platform/telemetry"
	"github.com/jsamuelsen11/solace-autoconfig/internal/ports"
)

// Fixed demo parameters.
const (
	Topic   = "tutorial/topic"
	Payload = "Hello World"
	Wait    = 10 * time.Second
)

// Config parameterizes a run. The zero value is not useful; start from
// DefaultConfig.
type Config struct {
	Topic   string
	Payload string
	Wait    time.Duration

	// Transport labels the message metrics; optional.
	Transport string
}

// DefaultConfig returns the fixed demo parameters.
func DefaultConfig() Config {
	return Config{Topic: Topic, Payload: Payload, Wait: Wait}
}

// Result describes a completed run. Received is false when the wait expired
// without a message.
type Result struct {
	Topic    string
	Sent     string
	Received bool
	Message  string
	Elapsed  time.Duration
}

// Run opens a session, subscribes to the topic, publishes one message to it
// and waits for the message to come back. A wait that expires is not an
// error. metrics may be nil.
func Run(ctx context.Context, factory ports.SessionFactory, cfg Config, logger *slog.Logger, metrics *telemetry.Metrics) (res Result, err error) {
	res = Result{Topic: cfg.Topic, Sent: cfg.Payload}

	sess, err := factory.Open(ctx)
	if err != nil {
		return res, fmt.Errorf("opening session: %w", err)
	}
	defer func() {
		if cerr := sess.Close(context.WithoutCancel(ctx)); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing session: %w", cerr))
		}
	}()

	kvs := []attribute.KeyValue{telemetry.AttrTopic.String(cfg.Topic)}
	if cfg.Transport != "" {
		kvs = append(kvs, telemetry.AttrTransport.String(cfg.Transport))
	}
	attrs := metric.WithAttributes(kvs...)
	received := make(chan ports.Message, 1)

	err = sess.Subscribe(ctx, cfg.Topic, func(msg ports.Message) {
		if metrics != nil {
			metrics.MessagesReceived.Add(ctx, 1, attrs)
		}
		select {
		case received <- msg:
		default:
		}
	})
	if err != nil {
		return res, fmt.Errorf("subscribing: %w", err)
	}
	logger.InfoContext(ctx, "subscribed", slog.String("topic", cfg.Topic))

	start := time.Now()
	if err := sess.Publish(ctx, cfg.Topic, []byte(cfg.Payload)); err != nil {
		return res, fmt.Errorf("publishing: %w", err)
	}
	if metrics != nil {
		metrics.MessagesPublished.Add(ctx, 1, attrs)
	}
	logger.InfoContext(ctx, "published", slog.String("topic", cfg.Topic), slog.String("payload", cfg.Payload))

	timer := time.NewTimer(cfg.Wait)
	defer timer.Stop()

	select {
	case msg := <-received:
		res.Received = true
		res.Message = string(msg.Payload)
		res.Elapsed = time.Since(start)
		logger.InfoContext(ctx, "received",
			slog.String("topic", msg.Topic),
			slog.String("payload", res.Message),
			slog.Duration("elapsed", res.Elapsed),
		)
	case <-timer.C:
		res.Elapsed = time.Since(start)
		logger.WarnContext(ctx, "no message received before timeout", slog.Duration("wait", cfg.Wait))
	case <-ctx.Done():
		return res, ctx.Err()
	}

	return res, nil
}
