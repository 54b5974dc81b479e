package transport

import "sync"

// Queue is an unbounded FIFO queue of envelopes, safe for concurrent use by
// any number of producers and consumers without external locking. Envelopes
// enter at the tail via push and leave from the head via pop, so enqueue
// order is preserved for messages entering through Send; a requeued envelope
// re-enters at the tail and loses its original position.
//
// Queues are created by a Registry and live as long as the registry does.
type Queue struct {
	mu    sync.Mutex
	items []*Envelope

	// signal carries at most one wake-up token. push deposits a token after
	// appending; pop re-arms it when items remain so that one consumer waking
	// up cannot strand another while the queue is non-empty.
	signal chan struct{}
}

func newQueue() *Queue {
	return &Queue{
		signal: make(chan struct{}, 1),
	}
}

// Len returns the number of envelopes currently queued.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *Queue) push(e *Envelope) {
	q.mu.Lock()
	q.items = append(q.items, e)
	q.mu.Unlock()

	q.wake()
}

// pop removes and returns the head envelope, reporting false when the queue
// is empty.
func (q *Queue) pop() (*Envelope, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return nil, false
	}

	e := q.items[0]
	q.items[0] = nil // release the reference for GC
	q.items = q.items[1:]

	if len(q.items) > 0 {
		q.wake()
	}

	return e, true
}

// ready returns a channel that receives a token when an envelope may be
// available. A wake-up is a hint, not a guarantee: the caller must pop again
// and go back to waiting if another consumer won the race.
func (q *Queue) ready() <-chan struct{} {
	return q.signal
}

func (q *Queue) wake() {
	select {
	case q.signal <- struct{}{}:
	default:
	}
}
