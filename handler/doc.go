// Package handler provides typed HTTP handlers that always answer with JSON.
//
// A HandlerFunc receives a request already bound into R and returns a
// Response. Wrap adapts it to http.HandlerFunc; binding, nil-response and
// rendering failures go to the ErrorHandler.
//
//	h := handler.Wrap(
//		func(ctx *handler.Context, raw submission.Raw) handler.Response {
//			return handler.JSON(http.StatusOK, pipeline.Process(ctx, kind, raw, meta))
//		},
//		handler.WithBinders(binder.Binder(0)),
//		handler.WithErrorHandler(handler.NewErrorHandler(log)),
//	)
//
// NewErrorHandler maps binder errors and HTTPError values onto status codes
// and writes a StatusBody. Anything else becomes a generic 500, so internal
// error text never reaches the client. Recoverer does the same for panics.
package handler
