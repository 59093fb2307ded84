// Package validator builds declarative rules whose failures are collected
// rather than short-circuited.
//
// Each helper returns a Rule: a Check func with translation-friendly error
// metadata. Apply evaluates all of them and returns ValidationErrors, which
// implements error.
//
//	err := validator.Apply(
//		validator.RequiredString("email", email),
//		validator.ValidEmail("email", email),
//		validator.MinLenString("message", message, 10),
//	)
//	for _, line := range validator.ExtractValidationErrors(err).Messages() {
//		// "message must be at least 10 characters long"
//	}
//
// Length rules count runes.
package validator
