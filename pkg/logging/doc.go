// Package logging provides a minimal logging facade for the chat control
// binding.
//
// The Logger interface wraps the subset of log/slog used by the library. It
// is intentionally small so applications can plug in their own
// implementation for testing, redaction, or integration with an existing
// logging system.
//
// # Implementations
//
//	logger := logging.New(nil)                  // slog.Default()
//	logger := logging.New(slog.New(handler))    // custom slog handler
//	logger := logging.NewZap(zap.NewExample())  // zap-backed
//	logger := logging.Nop()                     // discard everything
//
// # Redaction Support
//
// Several chat control properties carry credentials (passport tickets,
// registration cookies, profile blobs). Never log their values:
//
//	logger.Debug(ctx, "property set", "name", "PassportTicket", logging.Redacted("value"))
//	// Logs: value="[redacted]"
package logging
