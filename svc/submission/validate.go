package submission

import (
	"strings"

	"github.com/dmitrymomot/intake/pkg/validator"
)

// Validate checks raw against the descriptor and returns every problem at
// once as validator.ValidationErrors, or nil. Unknown keys are ignored.
func Validate(d Descriptor, raw Raw) error {
	var rules []validator.Rule
	for _, f := range d.Fields {
		if f.List {
			rules = append(rules, listRules(f, raw[f.Name])...)
			continue
		}
		rules = append(rules, stringRules(f, raw[f.Name])...)
	}
	return validator.Apply(rules...)
}

func stringRules(f FieldSpec, v any) []validator.Rule {
	if v == nil {
		if f.Required {
			return []validator.Rule{validator.RequiredString(f.Name, "")}
		}
		return nil
	}

	s, ok := v.(string)
	if !ok {
		return []validator.Rule{validator.TypeString(f.Name, false)}
	}
	s = strings.TrimSpace(s)

	if s == "" {
		if f.Required {
			return []validator.Rule{validator.RequiredString(f.Name, s)}
		}
		return nil
	}

	var rules []validator.Rule
	if f.Min > 0 {
		rules = append(rules, validator.MinLenString(f.Name, s, f.Min))
	}
	if f.Max > 0 {
		rules = append(rules, validator.MaxLenString(f.Name, s, f.Max))
	}
	if f.Email {
		rules = append(rules, validator.ValidEmail(f.Name, s))
	}
	if len(f.OneOf) > 0 {
		rules = append(rules, validator.InListString(f.Name, s, f.OneOf))
	}
	return rules
}

func listRules(f FieldSpec, v any) []validator.Rule {
	if v == nil {
		if f.Required {
			return []validator.Rule{validator.RequiredSlice(f.Name, []string(nil))}
		}
		return nil
	}

	items, ok := toStrings(v)
	if !ok {
		return []validator.Rule{validator.TypeStringSlice(f.Name, false)}
	}

	var rules []validator.Rule
	if f.Required {
		rules = append(rules, validator.RequiredSlice(f.Name, items))
	}
	if f.MaxItems > 0 {
		rules = append(rules, validator.MaxLenSlice(f.Name, items, f.MaxItems))
	}
	return rules
}

// toStrings accepts []string or a JSON array whose elements are all strings.
func toStrings(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		return list, true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}
