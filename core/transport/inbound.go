package transport

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/dmitrymomot/transit/core/logger"
)

// DefaultReceiveTimeout bounds Receive when no explicit timeout is
// configured.
const DefaultReceiveTimeout = 60 * time.Second

// Inbound receives messages from a single endpoint's queue. Receive suspends
// only its calling goroutine; concurrent receives on the same or different
// endpoints proceed independently.
type Inbound struct {
	registry *Registry
	endpoint string
	queue    *Queue
	timeout  time.Duration
	policy   RetryPolicy
	clk      clock.Clock
	log      *slog.Logger
}

// InboundOption configures an Inbound.
type InboundOption func(*Inbound)

// WithReceiveTimeout sets how long Receive waits for a message before
// returning empty-handed. Default is DefaultReceiveTimeout.
func WithReceiveTimeout(timeout time.Duration) InboundOption {
	return func(in *Inbound) {
		if timeout > 0 {
			in.timeout = timeout
		}
	}
}

// WithRetryPolicy attaches a retry policy to transactions produced by this
// inbound channel. The zero policy keeps the default behavior: unlimited
// immediate requeue on failure.
func WithRetryPolicy(policy RetryPolicy) InboundOption {
	return func(in *Inbound) {
		in.policy = policy
	}
}

// WithClock substitutes the time source used for receive timeouts and
// requeue delays. Intended for tests with a mock clock.
func WithClock(clk clock.Clock) InboundOption {
	return func(in *Inbound) {
		if clk != nil {
			in.clk = clk
		}
	}
}

// WithInboundLogger configures structured logging for receive operations.
// Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging.
func WithInboundLogger(log *slog.Logger) InboundOption {
	return func(in *Inbound) {
		if log != nil {
			in.log = log
		}
	}
}

// NewInbound creates an inbound channel for the given endpoint, creating the
// endpoint's queue if it does not exist yet.
//
// Example:
//
//	in, err := transport.NewInbound(registry, "orders",
//	    transport.WithReceiveTimeout(5*time.Second),
//	)
func NewInbound(registry *Registry, endpoint string, opts ...InboundOption) (*Inbound, error) {
	if endpoint == "" {
		return nil, ErrEmptyEndpoint
	}

	in := &Inbound{
		registry: registry,
		endpoint: endpoint,
		queue:    registry.GetOrCreateQueue(endpoint),
		timeout:  DefaultReceiveTimeout,
		clk:      clock.New(),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(in)
	}

	// A delivery cap without a dead-letter endpoint would strand exhausted
	// envelopes on a queue no consumer can ever reach.
	if in.policy.MaxDeliveries > 0 && in.policy.DeadLetterEndpoint == "" {
		return nil, ErrMissingDeadLetterEndpoint
	}

	return in, nil
}

// Endpoint returns the endpoint this channel receives from.
func (in *Inbound) Endpoint() string {
	return in.endpoint
}

// Receive takes the next envelope from the endpoint's queue and returns a
// transaction bound to it. The caller must complete the transaction with
// exactly one Commit or Fail.
//
// Receive blocks until a message arrives, the configured timeout elapses, or
// the context is canceled. An elapsed timeout is a normal outcome and yields
// (nil, nil); cancellation yields the context's error.
func (in *Inbound) Receive(ctx context.Context) (*Transaction, error) {
	timer := in.clk.Timer(in.timeout)
	defer timer.Stop()

	for {
		if env, ok := in.queue.pop(); ok {
			in.log.DebugContext(ctx, "message received",
				logger.Endpoint(in.endpoint),
				logger.MessageID(env.Message().ID()),
				logger.DeliveryCount(env.DeliveryCount()))

			return newTransaction(in, env), nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
			return nil, nil
		case <-in.queue.ready():
			// Woken up; try the queue again. Another consumer may have taken
			// the envelope first, in which case we keep waiting.
		}
	}
}
