// Package logger builds slog loggers for the service and keeps attribute
// names consistent across packages.
//
// New returns a *slog.Logger set up by WithEnvironment (format, level and
// service attributes) and ContextExtractor callbacks. Extractors run on every
// record logged through a *Context method, so the request id ends up on each
// line of a request.
//
//	log := logger.New(
//		logger.WithEnvironment("production", "intake"),
//		logger.WithContextExtractors(requestid.LogExtractor()),
//	)
//	log.ErrorContext(ctx, "persistence failed",
//		logger.Kind("contact"),
//		logger.Error(err),
//	)
//
// Error, RecordID, MessageID and RequestID return an empty slog.Attr for
// empty input, which slog drops, so callers never need a nil check.
package logger
