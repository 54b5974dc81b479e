package transport

import (
	"slices"
	"sync"
)

// Registry maps endpoint names to their queues. An endpoint's queue is
// created lazily on first use and is the same instance for every subsequent
// lookup for the registry's lifetime; the registry never removes entries.
//
// The registry is process-wide shared state by convention, but it is a plain
// value passed to transport constructors rather than a hidden global, so
// tests can run against isolated registries.
type Registry struct {
	mu     sync.RWMutex
	queues map[string]*Queue
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		queues: make(map[string]*Queue),
	}
}

// GetOrCreateQueue returns the queue for the given endpoint, creating it if
// this is the first time the endpoint is seen. Concurrent first access for
// the same endpoint resolves to a single queue instance.
func (r *Registry) GetOrCreateQueue(endpoint string) *Queue {
	r.mu.RLock()
	q, ok := r.queues[endpoint]
	r.mu.RUnlock()
	if ok {
		return q
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another goroutine may have created the queue between the two locks.
	if q, ok := r.queues[endpoint]; ok {
		return q
	}

	q = newQueue()
	r.queues[endpoint] = q
	return q
}

// Endpoints returns the names of all endpoints with a registered queue,
// sorted for deterministic iteration.
func (r *Registry) Endpoints() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	endpoints := make([]string, 0, len(r.queues))
	for name := range r.queues {
		endpoints = append(endpoints, name)
	}
	slices.Sort(endpoints)
	return endpoints
}

// Len returns the number of envelopes queued on the given endpoint, or zero
// when the endpoint has no queue yet. It does not create a queue.
func (r *Registry) Len(endpoint string) int {
	r.mu.RLock()
	q, ok := r.queues[endpoint]
	r.mu.RUnlock()
	if !ok {
		return 0
	}
	return q.Len()
}
