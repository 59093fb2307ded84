package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	htmlTag       = regexp.MustCompile(`<[^>]*>`)
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// MaxLength truncates a string to at most maxLen runes.
// Truncation never splits a multi-byte character.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen])
}

// MaxLengthFunc returns MaxLength bound to maxLen, for use with Compose.
func MaxLengthFunc(maxLen int) func(string) string {
	return func(s string) string { return MaxLength(s, maxLen) }
}

// RemoveExtraWhitespace normalizes whitespace by replacing multiple consecutive
// whitespace characters with a single space and trimming.
func RemoveExtraWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// RemoveControlChars removes control characters from a string,
// keeping only printable characters and common whitespace.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// NormalizeUnicode converts s to Unicode normalization form C so visually
// identical input is stored and compared the same way.
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}

// StripHTML removes HTML tags and unescapes HTML entities.
func StripHTML(s string) string {
	return html.UnescapeString(htmlTag.ReplaceAllString(s, ""))
}

// RemoveChars removes all occurrences of the specified characters from a string.
func RemoveChars(s string, chars string) string {
	for _, char := range chars {
		s = strings.ReplaceAll(s, string(char), "")
	}
	return s
}
