package validator

import (
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"unicode/utf8"
)

// RequiredString fails for an empty or whitespace-only value.
func RequiredString(field, value string) Rule {
	return newRule(field, func() bool { return strings.TrimSpace(value) != "" },
		"required", "is required")
}

// MinLenString counts runes, so non-ASCII names are measured as users see them.
func MinLenString(field, value string, min int) Rule {
	return newRule(field, func() bool { return utf8.RuneCountInString(value) >= min },
		"min_length", fmt.Sprintf("must be at least %d characters long", min), "min", min)
}

func MaxLenString(field, value string, max int) Rule {
	return newRule(field, func() bool { return utf8.RuneCountInString(value) <= max },
		"max_length", fmt.Sprintf("must be at most %d characters long", max), "max", max)
}

// TypeString reports a field supplied with a non-string JSON value.
func TypeString(field string, ok bool) Rule {
	return newRule(field, constant(ok), "type_string", "must be a string")
}

// ValidEmail accepts a bare local@domain address whose domain has at least
// two non-empty labels. Display names and address lists fail.
func ValidEmail(field, value string) Rule {
	return newRule(field, func() bool { return IsEmail(strings.TrimSpace(value)) },
		"email", "must be a valid email address")
}

// IsEmail is the address grammar shared by ValidEmail and the mail senders.
func IsEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" {
		return false
	}
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	return !slices.Contains(labels, "")
}

// InListString is case sensitive.
func InListString(field, value string, allowed []string) Rule {
	return newRule(field, func() bool { return slices.Contains(allowed, value) },
		"in_list", "must be one of: "+strings.Join(allowed, ", "), "allowed", allowed)
}

func RequiredSlice[T any](field string, value []T) Rule {
	return newRule(field, func() bool { return len(value) > 0 }, "required", "is required")
}

func MaxLenSlice[T any](field string, value []T, max int) Rule {
	return newRule(field, func() bool { return len(value) <= max },
		"max_items", fmt.Sprintf("must contain at most %d items", max), "max", max)
}

// TypeStringSlice reports a list field that was not an array of strings.
func TypeStringSlice(field string, ok bool) Rule {
	return newRule(field, constant(ok), "type_string_list", "must be a list of strings")
}
