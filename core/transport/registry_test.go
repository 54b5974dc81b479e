package transport_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/transit/core/transport"
)

func TestRegistry_GetOrCreateQueue(t *testing.T) {
	t.Parallel()

	t.Run("same endpoint resolves to same queue", func(t *testing.T) {
		t.Parallel()

		registry := transport.NewRegistry()

		first := registry.GetOrCreateQueue("orders")
		second := registry.GetOrCreateQueue("orders")

		require.NotNil(t, first)
		assert.Same(t, first, second)
	})

	t.Run("distinct endpoints get distinct queues", func(t *testing.T) {
		t.Parallel()

		registry := transport.NewRegistry()

		assert.NotSame(t, registry.GetOrCreateQueue("orders"), registry.GetOrCreateQueue("billing"))
	})

	t.Run("concurrent first access yields one instance", func(t *testing.T) {
		t.Parallel()

		const goroutines = 100

		registry := transport.NewRegistry()

		var (
			start = make(chan struct{})
			wg    sync.WaitGroup
			mu    sync.Mutex
			seen  = make(map[*transport.Queue]struct{})
		)

		for range goroutines {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				q := registry.GetOrCreateQueue("orders")
				mu.Lock()
				seen[q] = struct{}{}
				mu.Unlock()
			}()
		}

		close(start)
		wg.Wait()

		assert.Len(t, seen, 1, "racing goroutines must observe a single queue instance")
	})
}

func TestRegistry_Introspection(t *testing.T) {
	t.Parallel()

	t.Run("endpoints are sorted", func(t *testing.T) {
		t.Parallel()

		registry := transport.NewRegistry()
		registry.GetOrCreateQueue("billing")
		registry.GetOrCreateQueue("orders")
		registry.GetOrCreateQueue("audit")

		assert.Equal(t, []string{"audit", "billing", "orders"}, registry.Endpoints())
	})

	t.Run("len reflects queue state without creating queues", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		registry := transport.NewRegistry()
		out := transport.NewOutbound(registry)

		assert.Zero(t, registry.Len("orders"))
		assert.Empty(t, registry.Endpoints())

		require.NoError(t, out.Send(ctx, transport.NewMessage("orders", nil)))
		require.NoError(t, out.Send(ctx, transport.NewMessage("orders", nil)))

		assert.Equal(t, 2, registry.Len("orders"))
		assert.Equal(t, []string{"orders"}, registry.Endpoints())
	})
}
