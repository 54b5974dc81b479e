package transport

import (
	"maps"

	"github.com/google/uuid"
)

// Reserved header keys. The transport reads HeaderEndpoint to route a message
// and writes HeaderSourceEndpoint and HeaderDeliveryCount when forwarding to a
// dead-letter endpoint. All other headers pass through untouched.
const (
	// HeaderEndpoint names the destination endpoint. It is the only mandatory
	// header; sending a message without it fails with ErrMissingEndpoint.
	HeaderEndpoint = "endpoint"

	// HeaderMessageID carries a unique message identifier, assigned
	// automatically by NewMessage.
	HeaderMessageID = "message-id"

	// HeaderCorrelationID carries a caller-supplied correlation identifier.
	// The transport never interprets it.
	HeaderCorrelationID = "correlation-id"

	// HeaderContentType describes the payload encoding. The transport never
	// interprets it.
	HeaderContentType = "content-type"

	// HeaderSourceEndpoint records the endpoint a message was consumed from
	// before it was forwarded to a dead-letter endpoint.
	HeaderSourceEndpoint = "source-endpoint"

	// HeaderDeliveryCount records the delivery count a message had reached
	// when it was forwarded to a dead-letter endpoint.
	HeaderDeliveryCount = "delivery-count"
)

// Message is an immutable transport message: an opaque payload plus string
// headers. The transport routes on HeaderEndpoint and does not interpret the
// payload or any other header.
//
// Headers are copied in at construction and copied out by Headers, so a
// Message cannot be mutated after it is built. The payload byte slice is not
// copied; callers must not modify it after handing it to the transport.
type Message struct {
	payload []byte
	headers map[string]string
}

// MessageOption configures a Message during construction.
type MessageOption func(*Message)

// WithHeader sets a single header. Reserved headers may be overridden, which
// is occasionally useful in tests but rarely elsewhere.
func WithHeader(key, value string) MessageOption {
	return func(m *Message) {
		m.headers[key] = value
	}
}

// WithHeaders merges the given headers into the message. Keys already present
// are overwritten.
func WithHeaders(headers map[string]string) MessageOption {
	return func(m *Message) {
		maps.Copy(m.headers, headers)
	}
}

// WithCorrelationID sets the correlation identifier header.
func WithCorrelationID(id string) MessageOption {
	return func(m *Message) {
		if id != "" {
			m.headers[HeaderCorrelationID] = id
		}
	}
}

// WithContentType sets the content-type header.
func WithContentType(contentType string) MessageOption {
	return func(m *Message) {
		if contentType != "" {
			m.headers[HeaderContentType] = contentType
		}
	}
}

// NewMessage creates a message destined for the given endpoint. A unique
// message ID is assigned automatically and can be overridden with
// WithHeader(HeaderMessageID, ...) if deterministic IDs are needed.
//
// NewMessage does not validate the endpoint; validation happens at send time
// so that messages built from external input surface routing problems where
// they can be handled.
func NewMessage(endpoint string, payload []byte, opts ...MessageOption) Message {
	m := Message{
		payload: payload,
		headers: map[string]string{
			HeaderMessageID: uuid.New().String(),
		},
	}
	if endpoint != "" {
		m.headers[HeaderEndpoint] = endpoint
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// Payload returns the message payload. The returned slice aliases the
// message's internal storage and must be treated as read-only.
func (m Message) Payload() []byte {
	return m.payload
}

// Endpoint returns the destination endpoint, or an empty string when the
// endpoint header is missing.
func (m Message) Endpoint() string {
	return m.headers[HeaderEndpoint]
}

// ID returns the message identifier assigned at construction.
func (m Message) ID() string {
	return m.headers[HeaderMessageID]
}

// Header returns the value of the given header and whether it is set.
func (m Message) Header(key string) (string, bool) {
	v, ok := m.headers[key]
	return v, ok
}

// Headers returns a copy of all headers.
func (m Message) Headers() map[string]string {
	return maps.Clone(m.headers)
}
