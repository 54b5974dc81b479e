package transport

import "sync/atomic"

// Envelope wraps one message for queueing and tracks how many times it has
// been taken from a queue. The count starts at 1 when the message is sent and
// grows by exactly one per failed delivery, so a consumer reading
// DeliveryCount sees how many attempts the current delivery represents.
//
// The counter is atomic: a Fail-triggered increment can race with a reader
// that picked the envelope up after requeue, and neither side may observe a
// torn or lost update.
type Envelope struct {
	msg   Message
	count atomic.Int64
}

func newEnvelope(msg Message) *Envelope {
	e := &Envelope{msg: msg}
	e.count.Store(1)
	return e
}

// Message returns the wrapped message.
func (e *Envelope) Message() Message {
	return e.msg
}

// DeliveryCount returns the number of delivery attempts for this envelope,
// including the one in progress.
func (e *Envelope) DeliveryCount() int {
	return int(e.count.Load())
}

func (e *Envelope) incrementDeliveryCount() int {
	return int(e.count.Add(1))
}
