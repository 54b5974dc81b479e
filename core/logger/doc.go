// Package logger provides slog attribute helpers for the transit transport
// packages. The helpers produce consistently named attributes for the
// messaging domain (endpoints, message IDs, delivery counts) plus a few
// generic ones (errors, durations, components).
//
// All helpers are nil-safe: passing a nil error or an empty identifier
// yields an empty slog.Attr that handlers skip, so call sites never need
// explicit nil checks:
//
//	log.Info("message received",
//	    logger.Endpoint("orders"),
//	    logger.MessageID(msg.ID()),
//	    logger.DeliveryCount(tx.DeliveryCount()),
//	    logger.Error(err), // no-op when err is nil
//	)
//
// The package builds on the standard log/slog and carries no logger
// construction of its own; components accept a *slog.Logger via their
// options and default to a discard logger.
package logger
