package submission_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intake/svc/submission"
)

func TestScreen(t *testing.T) {
	t.Parallel()

	rejected := []struct {
		name    string
		raw     submission.Raw
		pattern string
	}{
		{"script tag", submission.Raw{"message": "<SCRIPT>x</SCRIPT>"}, "script_tag"},
		{"closing script tag", submission.Raw{"message": "</ script>"}, "script_tag"},
		{"javascript uri", submission.Raw{"portfolioUrl": "JavaScript :alert(1)"}, "javascript_uri"},
		{"event handler", submission.Raw{"name": `x" onerror="alert(1)`}, "event_handler"},
		{"union select", submission.Raw{"name": "' UNION ALL SELECT password"}, "sql_union_select"},
		{"select star", submission.Raw{"message": "select * from users"}, "sql_select_star"},
		{"insert", submission.Raw{"message": "insert into users values (1)"}, "sql_insert"},
		{"update", submission.Raw{"message": "update users set admin = 1"}, "sql_update"},
		{"delete", submission.Raw{"message": "delete from users where 1=1"}, "sql_delete"},
		{"drop", submission.Raw{"message": "1; DROP TABLE users"}, "sql_drop"},
		{"list element", submission.Raw{"skills": []any{"go", "<script>"}}, "script_tag"},
		{"nested object", submission.Raw{"meta": map[string]any{"x": "javascript:void(0)"}}, "javascript_uri"},
		// The handler pattern is word-based, so key=value prose starting with "on" is refused too.
		{"on-prefixed assignment", submission.Raw{"message": "online=yes"}, "event_handler"},
		{"on-prefixed assignment with spaces", submission.Raw{"message": "only = 1"}, "event_handler"},
	}
	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := submission.Screen(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, submission.ErrSecurityRejected)

			var rej *submission.Rejection
			require.True(t, errors.As(err, &rej))
			assert.Equal(t, tt.pattern, rej.Pattern)
		})
	}

	allowed := []string{
		"Please select one from the list you sent.",
		"We want to delete from our CRM any stale leads.",
		"Can you update me on the timeline; thanks!",
		"I drop by the office on Mondays.",
		"Online store, about 10 products",
		"Script writing for our videos",
		"Online, only on weekends",
		"Budget is on hold = pending approval",
	}
	for _, text := range allowed {
		t.Run("allows "+text, func(t *testing.T) {
			t.Parallel()
			assert.NoError(t, submission.Screen(submission.Raw{"message": text}))
		})
	}

	t.Run("non string values are ignored", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, submission.Screen(submission.Raw{"count": 3.0, "ok": true, "nothing": nil}))
	})
}
