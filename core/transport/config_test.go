package transport_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/transit/core/transport"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := transport.DefaultConfig()

	assert.Equal(t, transport.DefaultReceiveTimeout, cfg.ReceiveTimeout)
	assert.Zero(t, cfg.MaxDeliveries)
	assert.Empty(t, cfg.DeadLetterEndpoint)
	assert.Zero(t, cfg.RequeueDelay)
}

func TestConfig_Options(t *testing.T) {
	t.Parallel()

	t.Run("default config yields timeout only", func(t *testing.T) {
		t.Parallel()

		opts := transport.DefaultConfig().Options()
		assert.Len(t, opts, 1)
	})

	t.Run("retry settings add a policy option", func(t *testing.T) {
		t.Parallel()

		cfg := transport.Config{
			ReceiveTimeout:     time.Second,
			MaxDeliveries:      3,
			DeadLetterEndpoint: "dead",
		}
		assert.Len(t, cfg.Options(), 2)
	})

	t.Run("options configure an inbound channel", func(t *testing.T) {
		t.Parallel()

		cfg := transport.Config{
			ReceiveTimeout:     time.Second,
			MaxDeliveries:      3,
			DeadLetterEndpoint: "orders.dead",
			RequeueDelay:       time.Millisecond,
		}

		in, err := transport.NewInbound(transport.NewRegistry(), "orders", cfg.Options()...)
		assert.NoError(t, err)
		assert.NotNil(t, in)
	})

	t.Run("delivery cap without dead-letter endpoint is rejected", func(t *testing.T) {
		t.Parallel()

		cfg := transport.Config{
			ReceiveTimeout: time.Second,
			MaxDeliveries:  1,
		}

		in, err := transport.NewInbound(transport.NewRegistry(), "orders", cfg.Options()...)
		assert.ErrorIs(t, err, transport.ErrMissingDeadLetterEndpoint)
		assert.Nil(t, in)
	})
}
