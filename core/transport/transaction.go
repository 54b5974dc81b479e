package transport

import (
	"sync/atomic"

	"github.com/dmitrymomot/transit/core/logger"
)

// Transaction is the one-shot handle a consumer uses to finalize a received
// message. Exactly one of Commit or Fail must be called; the envelope was
// already removed from the queue at receive time, so until then the message
// is invisible to other consumers.
//
// A second completion attempt returns ErrTransactionCompleted rather than
// silently double-requeueing.
type Transaction struct {
	inbound   *Inbound
	env       *Envelope
	completed atomic.Bool
}

func newTransaction(in *Inbound, env *Envelope) *Transaction {
	return &Transaction{
		inbound: in,
		env:     env,
	}
}

// Message returns the message under delivery.
func (tx *Transaction) Message() Message {
	return tx.env.Message()
}

// DeliveryCount returns how many times the message has been delivered,
// including the current attempt.
func (tx *Transaction) DeliveryCount() int {
	return tx.env.DeliveryCount()
}

// Commit marks the message as successfully processed. It never mutates queue
// state: the envelope left the queue at receive time and commit only closes
// out the delivery.
func (tx *Transaction) Commit() error {
	if !tx.completed.CompareAndSwap(false, true) {
		return ErrTransactionCompleted
	}

	tx.inbound.log.Debug("delivery committed",
		logger.Endpoint(tx.inbound.endpoint),
		logger.MessageID(tx.env.Message().ID()),
		logger.DeliveryCount(tx.env.DeliveryCount()))

	return nil
}

// Fail marks the delivery as failed. The envelope's delivery count is
// incremented and the same envelope is re-appended to the tail of its
// originating queue, making it eligible for redelivery to any consumer of
// the endpoint.
//
// When the inbound channel carries a retry policy, Fail instead forwards the
// message to the dead-letter endpoint once the delivery limit is exhausted,
// and honors the configured requeue delay otherwise. The core default is
// unlimited immediate requeue.
func (tx *Transaction) Fail() error {
	if !tx.completed.CompareAndSwap(false, true) {
		return ErrTransactionCompleted
	}

	count := tx.env.incrementDeliveryCount()
	in := tx.inbound

	if in.policy.exhausted(count) {
		in.deadLetter(tx.env, count)
		return nil
	}

	in.log.Debug("delivery failed, message requeued",
		logger.Endpoint(in.endpoint),
		logger.MessageID(tx.env.Message().ID()),
		logger.DeliveryCount(count),
		logger.Duration(in.policy.RequeueDelay))

	if in.policy.RequeueDelay > 0 {
		// Requeue after the delay without blocking the Fail caller. The
		// envelope is invisible to consumers until the delay elapses.
		go func() {
			in.clk.Sleep(in.policy.RequeueDelay)
			in.queue.push(tx.env)
		}()
		return nil
	}

	in.queue.push(tx.env)

	return nil
}
