package transport

import (
	"strconv"
	"time"

	"github.com/dmitrymomot/transit/core/logger"
)

// RetryPolicy bounds redelivery for an inbound channel. It layers on top of
// the core behavior rather than replacing it: the zero value keeps unlimited
// immediate requeue, which is the transport's contract when no policy is
// attached.
//
// Example:
//
//	in, err := transport.NewInbound(registry, "orders",
//	    transport.WithRetryPolicy(transport.RetryPolicy{
//	        MaxDeliveries:      5,
//	        DeadLetterEndpoint: "orders.dead",
//	        RequeueDelay:       time.Second,
//	    }),
//	)
type RetryPolicy struct {
	// MaxDeliveries caps delivery attempts per message. Zero means unlimited.
	// When a failure would push the count past the cap, the message is
	// forwarded to DeadLetterEndpoint instead of being requeued. A non-zero
	// cap requires DeadLetterEndpoint to be set; NewInbound rejects the
	// policy with ErrMissingDeadLetterEndpoint otherwise.
	MaxDeliveries int

	// DeadLetterEndpoint receives messages that exhausted their deliveries.
	// Forwarded messages carry HeaderSourceEndpoint and HeaderDeliveryCount
	// so the origin and the final attempt count stay observable.
	DeadLetterEndpoint string

	// RequeueDelay postpones the requeue of a failed envelope. Zero requeues
	// immediately.
	RequeueDelay time.Duration
}

func (p RetryPolicy) exhausted(count int) bool {
	return p.MaxDeliveries > 0 && count > p.MaxDeliveries
}

// deadLetter forwards the envelope's message to the policy's dead-letter
// endpoint, annotated with its origin and final delivery count. The forwarded
// message starts a fresh delivery cycle on the dead-letter queue.
func (in *Inbound) deadLetter(env *Envelope, count int) {
	src := env.Message()

	headers := src.Headers()
	headers[HeaderEndpoint] = in.policy.DeadLetterEndpoint
	headers[HeaderSourceEndpoint] = in.endpoint
	headers[HeaderDeliveryCount] = strconv.Itoa(count)

	forwarded := Message{
		payload: src.Payload(),
		headers: headers,
	}

	in.registry.GetOrCreateQueue(in.policy.DeadLetterEndpoint).push(newEnvelope(forwarded))

	in.log.Debug("message dead-lettered",
		logger.Endpoint(in.endpoint),
		logger.MessageID(src.ID()),
		logger.DeliveryCount(count),
		logger.DeadLetterEndpoint(in.policy.DeadLetterEndpoint))
}
