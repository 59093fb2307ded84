package submission

import (
	"github.com/dmitrymomot/intake/pkg/sanitizer"
)

// Sanitize keeps only descriptor fields and cleans each one: dangerous
// substrings stripped, whitespace trimmed, length capped. List fields are
// cleaned element-wise and cut to MaxItems. Values that end up empty are
// dropped. Sanitize(d, Sanitize(d, x).Raw()) equals Sanitize(d, x).
func Sanitize(d Descriptor, raw Raw) Sanitized {
	out := make(map[string]any, len(d.Fields))
	for _, f := range d.Fields {
		v, ok := raw[f.Name]
		if !ok || v == nil {
			continue
		}

		if f.List {
			items, ok := toStrings(v)
			if !ok {
				continue
			}
			if cleaned := sanitizeList(items, f.Cap, f.MaxItems); len(cleaned) > 0 {
				out[f.Name] = cleaned
			}
			continue
		}

		s, ok := v.(string)
		if !ok {
			continue
		}
		if cleaned := sanitizer.UserText(s, f.Cap); cleaned != "" {
			out[f.Name] = cleaned
		}
	}
	return Sanitized{values: out}
}

func sanitizeList(items []string, itemCap, maxItems int) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if maxItems > 0 && len(out) == maxItems {
			break
		}
		if cleaned := sanitizer.UserText(item, itemCap); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}
