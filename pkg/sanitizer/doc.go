// Package sanitizer provides helpers for cleaning untrusted text before it is
// stored or interpolated into messages.
//
// Helpers are small, stateless string transforms that can be chained with Apply
// and Compose. Fixpoint repeats a transform until the output stops changing,
// which makes chains built from removals idempotent.
//
// The two entry points most callers need are:
//
//   - StripDangerous removes '<', '>', "javascript:" protocols, inline event
//     handlers ("onclick="), null bytes and control characters, and
//     normalizes to NFC.
//   - UserText applies StripDangerous, trims, and truncates to a rune cap.
//
// Example:
//
//	clean := sanitizer.UserText("  <b onclick=x()>Hi</b>  ", 100)
//	// clean == "b x()Hi/b"
//
// These routines are a deterrent, not an escaping layer: values must still be
// bound as query parameters and escaped by the template engine.
package sanitizer
