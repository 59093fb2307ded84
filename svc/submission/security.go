package submission

import (
	"errors"
	"regexp"
)

// ErrSecurityRejected is returned when any value in a payload matches the denylist.
var ErrSecurityRejected = errors.New("submission rejected by security filter")

type denyPattern struct {
	name string
	re   *regexp.Regexp
}

// SQL patterns require statement shapes rather than keywords so that
// ordinary prose ("select one from the list", "delete from our CRM") passes.
var denylist = []denyPattern{
	{"script_tag", regexp.MustCompile(`(?i)<\s*/?\s*script`)},
	{"javascript_uri", regexp.MustCompile(`(?i)javascript\s*:`)},
	{"event_handler", regexp.MustCompile(`(?i)\bon\w+\s*=`)},
	{"sql_union_select", regexp.MustCompile(`(?i)\bunion\s+(all\s+)?select\b`)},
	{"sql_select_star", regexp.MustCompile(`(?i)\bselect\s+\*\s+from\b`)},
	{"sql_select_where", regexp.MustCompile(`(?i)\bselect\s+[\w.,\s]+?\s+from\s+\w+\s+where\b`)},
	{"sql_insert", regexp.MustCompile(`(?i)\binsert\s+into\s+\w+\s*(\(|values\b|select\b)`)},
	{"sql_update", regexp.MustCompile(`(?i)\bupdate\s+\w+\s+set\s+\w+\s*=`)},
	{"sql_delete", regexp.MustCompile(`(?i)\bdelete\s+from\s+\w+\s*(where\b|;|$)`)},
	{"sql_drop", regexp.MustCompile(`(?i)\bdrop\s+(table|database|schema)\b`)},
}

// Rejection names the pattern that matched. It is for logs only and
// never reaches the client.
type Rejection struct {
	Field   string
	Pattern string
}

func (r *Rejection) Error() string {
	return ErrSecurityRejected.Error() + ": " + r.Pattern + " in " + r.Field
}

func (r *Rejection) Unwrap() error { return ErrSecurityRejected }

// Screen scans every string in raw, including unknown keys, list elements
// and nested objects. The first match rejects the whole payload.
func Screen(raw Raw) error {
	for key, v := range raw {
		if rej := screenValue(key, v); rej != nil {
			return rej
		}
	}
	return nil
}

func screenValue(field string, v any) *Rejection {
	switch val := v.(type) {
	case string:
		for _, p := range denylist {
			if p.re.MatchString(val) {
				return &Rejection{Field: field, Pattern: p.name}
			}
		}
	case []string:
		for _, item := range val {
			if rej := screenValue(field, item); rej != nil {
				return rej
			}
		}
	case []any:
		for _, item := range val {
			if rej := screenValue(field, item); rej != nil {
				return rej
			}
		}
	case map[string]any:
		for k, item := range val {
			if rej := screenValue(field+"."+k, item); rej != nil {
				return rej
			}
		}
	}
	return nil
}
