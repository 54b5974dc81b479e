package transport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/transit/core/transport"
)

func TestNewMessage(t *testing.T) {
	t.Parallel()

	t.Run("sets endpoint header", func(t *testing.T) {
		t.Parallel()

		msg := transport.NewMessage("orders", []byte("payload"))
		assert.Equal(t, "orders", msg.Endpoint())
		assert.Equal(t, []byte("payload"), msg.Payload())
	})

	t.Run("assigns unique message IDs", func(t *testing.T) {
		t.Parallel()

		first := transport.NewMessage("orders", nil)
		second := transport.NewMessage("orders", nil)

		require.NotEmpty(t, first.ID())
		require.NotEmpty(t, second.ID())
		assert.NotEqual(t, first.ID(), second.ID())
	})

	t.Run("empty endpoint leaves header unset", func(t *testing.T) {
		t.Parallel()

		msg := transport.NewMessage("", nil)
		assert.Empty(t, msg.Endpoint())

		_, ok := msg.Header(transport.HeaderEndpoint)
		assert.False(t, ok)
	})

	t.Run("applies custom headers", func(t *testing.T) {
		t.Parallel()

		msg := transport.NewMessage("orders", nil,
			transport.WithHeader("tenant", "acme"),
			transport.WithCorrelationID("corr-1"),
			transport.WithContentType("application/json"),
		)

		tenant, ok := msg.Header("tenant")
		require.True(t, ok)
		assert.Equal(t, "acme", tenant)

		corr, _ := msg.Header(transport.HeaderCorrelationID)
		assert.Equal(t, "corr-1", corr)

		ct, _ := msg.Header(transport.HeaderContentType)
		assert.Equal(t, "application/json", ct)
	})

	t.Run("copies headers in", func(t *testing.T) {
		t.Parallel()

		headers := map[string]string{"tenant": "acme"}
		msg := transport.NewMessage("orders", nil, transport.WithHeaders(headers))

		// Mutating the caller's map after construction must not leak into
		// the message.
		headers["tenant"] = "evil"

		tenant, _ := msg.Header("tenant")
		assert.Equal(t, "acme", tenant)
	})

	t.Run("copies headers out", func(t *testing.T) {
		t.Parallel()

		msg := transport.NewMessage("orders", nil)

		out := msg.Headers()
		out[transport.HeaderEndpoint] = "hijacked"

		assert.Equal(t, "orders", msg.Endpoint())
	})
}
