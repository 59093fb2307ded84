// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a client supplied X-Request-ID header when it is at
// most 128 characters of [a-zA-Z0-9_-], otherwise it generates a UUIDv7.
// The id is stored in the request context, echoed in the response header
// and, through LogExtractor, added to every log record written with that
// context. Stored submissions keep it so a record can be matched with its
// log lines.
//
//	log := logger.New(logger.WithContextExtractors(requestid.LogExtractor()))
//	router.Use(requestid.Middleware)
package requestid
