package transport

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/transit/core/logger"
)

// Outbound sends messages to the queues named by their endpoint headers.
// Sends are non-blocking and always succeed for well-formed messages since
// queues are unbounded.
type Outbound struct {
	registry *Registry
	log      *slog.Logger
}

// OutboundOption configures an Outbound.
type OutboundOption func(*Outbound)

// WithOutboundLogger configures structured logging for send operations.
// Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging.
func WithOutboundLogger(log *slog.Logger) OutboundOption {
	return func(o *Outbound) {
		if log != nil {
			o.log = log
		}
	}
}

// NewOutbound creates an outbound channel backed by the given registry.
//
// Example:
//
//	out := transport.NewOutbound(registry)
//	err := out.Send(ctx, transport.NewMessage("orders", payload))
func NewOutbound(registry *Registry, opts ...OutboundOption) *Outbound {
	o := &Outbound{
		registry: registry,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Send wraps the message in a fresh envelope with delivery count 1 and
// appends it to the queue of the endpoint named in its headers. The enqueue
// is observable by any concurrent receiver on that endpoint as soon as Send
// returns.
//
// Returns ErrMissingEndpoint, before any queue mutation, when the endpoint
// header is absent or empty.
func (o *Outbound) Send(ctx context.Context, msg Message) error {
	endpoint := msg.Endpoint()
	if endpoint == "" {
		return fmt.Errorf("%w: message %s", ErrMissingEndpoint, msg.ID())
	}

	o.registry.GetOrCreateQueue(endpoint).push(newEnvelope(msg))

	o.log.DebugContext(ctx, "message sent",
		logger.Endpoint(endpoint),
		logger.MessageID(msg.ID()))

	return nil
}

// SendBatch sends the messages one at a time in input order. There is no
// atomicity across the batch: when header validation fails partway through,
// messages before the failing one remain enqueued and the error identifies
// the offending position.
func (o *Outbound) SendBatch(ctx context.Context, msgs ...Message) error {
	for i, msg := range msgs {
		if err := o.Send(ctx, msg); err != nil {
			return fmt.Errorf("batch message %d: %w", i, err)
		}
	}

	o.log.DebugContext(ctx, "batch sent", logger.BatchSize(len(msgs)))

	return nil
}
