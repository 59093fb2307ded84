package submission

import "slices"

// Raw is a decoded request body: field name to untyped JSON value.
// It is never stored or emailed.
type Raw map[string]any

// Sanitized holds only descriptor fields, each a string or []string that
// went through the sanitizer. Values are copied on read.
type Sanitized struct {
	values map[string]any
}

// String returns a string field, or "" when absent.
func (s Sanitized) String(name string) string {
	v, _ := s.values[name].(string)
	return v
}

// List returns a copy of a list field, or nil when absent.
func (s Sanitized) List(name string) []string {
	v, _ := s.values[name].([]string)
	return slices.Clone(v)
}

// Has reports whether the field is present.
func (s Sanitized) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Len is the number of present fields.
func (s Sanitized) Len() int { return len(s.values) }

// Raw converts s back into a Raw payload.
func (s Sanitized) Raw() Raw {
	out := make(Raw, len(s.values))
	for k, v := range s.values {
		if list, ok := v.([]string); ok {
			out[k] = slices.Clone(list)
			continue
		}
		out[k] = v
	}
	return out
}
