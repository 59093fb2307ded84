package validator

// Rule pairs a check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply runs every rule and returns all failures as ValidationErrors, or
// nil. It never stops at the first failure.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, r := range rules {
		if !r.Check() {
			errs = append(errs, r.Error)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// newRule builds a Rule. params are key/value pairs copied into
// TranslationValues next to "field".
func newRule(field string, check func() bool, key, message string, params ...any) Rule {
	values := map[string]any{"field": field}
	for i := 0; i+1 < len(params); i += 2 {
		if k, ok := params[i].(string); ok {
			values[k] = params[i+1]
		}
	}
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:             field,
			Message:           message,
			TranslationKey:    "validation." + key,
			TranslationValues: values,
		},
	}
}

func constant(ok bool) func() bool {
	return func() bool { return ok }
}
