// Package transport provides an in-process, broker-free message transport
// with named endpoints, at-least-once delivery, and retry by requeue. It is
// the delivery layer of a message bus: producers push messages to endpoint
// queues, consumers pull them back out and finalize each delivery through an
// explicit transaction.
//
// # Core Components
//
// Message is an immutable payload plus string headers. The destination
// endpoint travels in the HeaderEndpoint header; the transport does not
// interpret the payload or any other header.
//
// Registry maps endpoint names to queues. Queues are created lazily on first
// use and live for the registry's lifetime, so the same endpoint name always
// resolves to the same queue instance.
//
// Outbound sends messages to the queue named by their endpoint header.
// Sends never block: queues are unbounded.
//
// Inbound receives from a single endpoint. Receive blocks its calling
// goroutine until a message arrives or a timeout elapses, and hands back a
// Transaction for the delivery.
//
// Transaction finalizes one delivery. Commit closes out the delivery without
// touching the queue; Fail increments the envelope's delivery count and puts
// the same envelope back at the tail of its queue for redelivery.
//
// # Basic Usage
//
//	registry := transport.NewRegistry()
//	out := transport.NewOutbound(registry)
//
//	if err := out.Send(ctx, transport.NewMessage("orders", payload)); err != nil {
//	    return err
//	}
//
//	in, err := transport.NewInbound(registry, "orders",
//	    transport.WithReceiveTimeout(5*time.Second),
//	)
//	if err != nil {
//	    return err
//	}
//
//	tx, err := in.Receive(ctx)
//	if err != nil {
//	    return err
//	}
//	if tx == nil {
//	    return nil // timeout, nothing to do
//	}
//
//	if err := process(tx.Message()); err != nil {
//	    return tx.Fail() // requeued for another attempt
//	}
//	return tx.Commit()
//
// # Delivery Semantics
//
// Delivery is at-least-once. A received message is invisible to other
// consumers until its transaction fails, at which point the envelope returns
// to the tail of the queue with its delivery count incremented. Messages on
// a single endpoint are delivered in send order until retries occur; a
// requeued envelope goes behind anything enqueued in the meantime. There are
// no ordering guarantees across endpoints.
//
// By default failed messages are retried indefinitely with no backoff. A
// RetryPolicy attached via WithRetryPolicy bounds deliveries, redirects
// exhausted messages to a dead-letter endpoint, and can delay requeues:
//
//	in, err := transport.NewInbound(registry, "orders",
//	    transport.WithRetryPolicy(transport.RetryPolicy{
//	        MaxDeliveries:      5,
//	        DeadLetterEndpoint: "orders.dead",
//	        RequeueDelay:       time.Second,
//	    }),
//	)
//
// # Configuration
//
// Config carries the inbound settings as an env-taggable struct:
//
//	var cfg transport.Config
//	config.MustLoad(&cfg)
//	in, err := transport.NewInbound(registry, "orders", cfg.Options()...)
//
// # Scope
//
// The transport is strictly in-process: no persistence, no network, no
// serialization. Those concerns belong to the bus layers built on top of it.
package transport
