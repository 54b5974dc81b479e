package transport

import "time"

// Config holds environment-driven settings for inbound channels. Designed
// for env parsing via the config package.
//
// A config that caps deliveries must also name a dead-letter endpoint;
// NewInbound rejects the resulting policy with ErrMissingDeadLetterEndpoint
// otherwise, so a capped-but-unroutable setup fails at construction instead
// of silently dropping exhausted messages.
type Config struct {
	ReceiveTimeout     time.Duration `env:"TRANSPORT_RECEIVE_TIMEOUT" envDefault:"60s"`
	MaxDeliveries      int           `env:"TRANSPORT_MAX_DELIVERIES" envDefault:"0"`
	DeadLetterEndpoint string        `env:"TRANSPORT_DEAD_LETTER_ENDPOINT" envDefault:""`
	RequeueDelay       time.Duration `env:"TRANSPORT_REQUEUE_DELAY" envDefault:"0s"`
}

// DefaultConfig returns the transport's built-in defaults: a 60 second
// receive timeout and unlimited immediate requeue.
func DefaultConfig() Config {
	return Config{
		ReceiveTimeout: DefaultReceiveTimeout,
	}
}

// Options translates the config into inbound channel options.
//
// Example:
//
//	var cfg transport.Config
//	config.MustLoad(&cfg)
//	in, err := transport.NewInbound(registry, "orders", cfg.Options()...)
func (c Config) Options() []InboundOption {
	opts := []InboundOption{
		WithReceiveTimeout(c.ReceiveTimeout),
	}

	if c.MaxDeliveries > 0 || c.RequeueDelay > 0 {
		opts = append(opts, WithRetryPolicy(RetryPolicy{
			MaxDeliveries:      c.MaxDeliveries,
			DeadLetterEndpoint: c.DeadLetterEndpoint,
			RequeueDelay:       c.RequeueDelay,
		}))
	}

	return opts
}
