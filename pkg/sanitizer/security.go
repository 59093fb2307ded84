package sanitizer

import (
	"regexp"
	"strings"
)

var (
	jsProtocol   = regexp.MustCompile(`(?i)javascript\s*:`)
	eventHandler = regexp.MustCompile(`(?i)\bon\w+\s*=`)
)

// RemoveAngleBrackets drops every literal '<' and '>' so no markup survives.
func RemoveAngleBrackets(s string) string {
	return RemoveChars(s, "<>")
}

// RemoveJavaScriptProtocols strips "javascript:" (case-insensitive, optional
// whitespace before the colon).
func RemoveJavaScriptProtocols(s string) string {
	return jsProtocol.ReplaceAllString(s, "")
}

// RemoveJavaScriptEvents strips inline event-handler openings such as
// "onclick=" or "onerror =", along with "javascript:" protocols.
func RemoveJavaScriptEvents(s string) string {
	return RemoveJavaScriptProtocols(eventHandler.ReplaceAllString(s, ""))
}

// RemoveNullBytes removes null bytes that could cause issues in C-based systems.
func RemoveNullBytes(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

// StripDangerous removes markup characters and script vectors until the string
// stops changing. A single pass is not enough: removing "javascript:" from
// "javajavascript:script:" produces a fresh "javascript:".
func StripDangerous(s string) string {
	return Fixpoint(s, Compose(
		RemoveNullBytes,
		RemoveControlChars,
		NormalizeUnicode,
		RemoveAngleBrackets,
		RemoveJavaScriptEvents,
	))
}

// UserText is the standard treatment for free-form user input: dangerous
// content stripped, whitespace trimmed, and length capped at maxLen runes.
// UserText(UserText(s, n), n) == UserText(s, n) for every s.
func UserText(s string, maxLen int) string {
	return Fixpoint(s, Compose(
		StripDangerous,
		Trim,
		MaxLengthFunc(maxLen),
		Trim,
	))
}
