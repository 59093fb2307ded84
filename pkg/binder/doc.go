// Package binder decodes HTTP request bodies.
//
// JSON reads at most a fixed number of bytes, rejects trailing data and
// checks the Content-Type. Binder adapts it to the handler bind signature.
// Decoding into a map keeps the payload untyped for later schema checks:
//
//	var raw map[string]any
//	err := binder.JSON(r, &raw, binder.DefaultMaxJSONSize)
//	switch {
//	case errors.Is(err, binder.ErrBodyTooLarge):
//		// 413
//	case err != nil:
//		// 400
//	}
//
// Errors wrap ErrFailedToParseJSON, ErrBodyTooLarge or
// ErrUnsupportedMediaType.
package binder
