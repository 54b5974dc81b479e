package transport

import "errors"

var (
	// ErrMissingEndpoint is returned when a message is sent without a
	// destination endpoint header.
	ErrMissingEndpoint = errors.New("message has no endpoint header")

	// ErrEmptyEndpoint is returned when a transport component is constructed
	// with an empty endpoint name.
	ErrEmptyEndpoint = errors.New("endpoint name cannot be empty")

	// ErrTransactionCompleted is returned when Commit or Fail is called on a
	// transaction that has already been completed.
	ErrTransactionCompleted = errors.New("transaction already completed")

	// ErrMissingDeadLetterEndpoint is returned when a retry policy caps
	// deliveries without naming a dead-letter endpoint for exhausted
	// messages.
	ErrMissingDeadLetterEndpoint = errors.New("retry policy with delivery cap requires a dead-letter endpoint")
)
