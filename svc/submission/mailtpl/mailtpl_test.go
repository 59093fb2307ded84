package mailtpl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intake/svc/submission"
	"github.com/dmitrymomot/intake/svc/submission/mailtpl"
)

func notice(t *testing.T, kind submission.Kind, raw submission.Raw) submission.Notice {
	t.Helper()
	d, ok := submission.Lookup(kind)
	require.True(t, ok)
	s := submission.Sanitize(d, raw)
	var derived submission.Derived
	if d.Derive != nil {
		derived = d.Derive(s)
	}
	return submission.Notice{
		Kind:           kind,
		Descriptor:     d,
		Submission:     s,
		Derived:        derived,
		RecordID:       "rec-123",
		OperatorEmail:  "team@example.com",
		SubmitterName:  s.String(d.SubmitterName),
		SubmitterEmail: s.String(d.SubmitterEmail),
	}
}

func TestOperatorNotification(t *testing.T) {
	t.Parallel()

	tpl := mailtpl.New("Acme")

	t.Run("contact summary", func(t *testing.T) {
		t.Parallel()

		n := notice(t, submission.KindContact, submission.Raw{
			"name":    "Jane & Co",
			"email":   "jane@example.com",
			"message": "Tom said \"hi\" & left",
		})
		out, err := tpl.OperatorNotification(context.Background(), n)
		require.NoError(t, err)

		assert.Equal(t, "New contact message from Jane & Co", out.Subject)
		assert.Contains(t, out.HTML, "Jane &amp; Co")
		assert.Contains(t, out.HTML, "Tom said &#34;hi&#34; &amp; left")
		assert.Contains(t, out.HTML, `href="mailto:jane@example.com?subject=Re%3A%20your%20contact%20message"`)
		assert.Contains(t, out.HTML, "Reply to Jane &amp; Co")
		assert.Contains(t, out.HTML, "Reference: rec-123")
		assert.NotContains(t, out.HTML, "Company")

		assert.Contains(t, out.Text, "Message: Tom said \"hi\" & left")
		assert.Contains(t, out.Text, "Reply to Jane & Co: mailto:jane@example.com")
	})

	t.Run("project request includes estimate and labels", func(t *testing.T) {
		t.Parallel()

		n := notice(t, submission.KindProjectRequest, submission.Raw{
			"contactName":  "Sam",
			"contactEmail": "sam@example.com",
			"projectType":  "computer_vision",
			"industry":     "Retail",
			"budget":       "50k",
			"timeline":     "Q3",
			"features":     []any{"detection", "tracking"},
		})
		out, err := tpl.OperatorNotification(context.Background(), n)
		require.NoError(t, err)

		assert.Equal(t, "New project request from Sam", out.Subject)
		assert.Contains(t, out.HTML, "Computer Vision")
		assert.Contains(t, out.HTML, "detection, tracking")
		assert.Contains(t, out.Text, "Estimated cost: $42,000")
	})

	t.Run("subject is a single line", func(t *testing.T) {
		t.Parallel()

		n := notice(t, submission.KindContact, submission.Raw{"name": "Eve\r\nBcc: x@y.z", "email": "eve@example.com"})
		out, err := tpl.OperatorNotification(context.Background(), n)
		require.NoError(t, err)
		assert.Equal(t, "New contact message from Eve Bcc: x@y.z", out.Subject)
	})
}

func TestSubmitterConfirmation(t *testing.T) {
	t.Parallel()

	tpl := mailtpl.New("Acme")

	tests := []struct {
		name     string
		kind     submission.Kind
		raw      submission.Raw
		subject  string
		contains []string
		absent   []string
	}{
		{
			name:     "contact",
			kind:     submission.KindContact,
			raw:      submission.Raw{"name": "Jane", "email": "jane@example.com"},
			subject:  "Thanks for contacting Acme",
			contains: []string{"Hi Jane", "within 24 hours", "team@example.com", "The Acme team"},
			absent:   []string{"estimate", "reference"},
		},
		{
			name:     "project request",
			kind:     submission.KindProjectRequest,
			raw:      submission.Raw{"contactName": "Sam", "contactEmail": "sam@example.com", "projectType": "chatbot", "features": []any{"a", "b"}},
			subject:  "We received your project request",
			contains: []string{"Hi Sam", "within 48 hours", "$18,000"},
			absent:   []string{"reference"},
		},
		{
			name:     "job application",
			kind:     submission.KindJobApplication,
			raw:      submission.Raw{"fullName": "Alex", "email": "alex@example.com"},
			subject:  "Thank you for applying to Acme",
			contains: []string{"Hi Alex", "within 5-7 business days", "application reference is", "rec-123"},
			absent:   []string{"estimate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := tpl.SubmitterConfirmation(context.Background(), notice(t, tt.kind, tt.raw))
			require.NoError(t, err)

			assert.Equal(t, tt.subject, out.Subject)
			for _, s := range tt.contains {
				assert.Contains(t, out.HTML, s)
				assert.Contains(t, out.Text, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, out.Text, s)
			}
		})
	}
}

func TestProjectTypeLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Chatbot", mailtpl.ProjectTypeLabel("chatbot"))
	assert.Equal(t, "Computer Vision", mailtpl.ProjectTypeLabel("computer_vision"))
	assert.Equal(t, "NLP", mailtpl.ProjectTypeLabel("nlp"))
}

func TestNew_DefaultBrand(t *testing.T) {
	t.Parallel()

	out, err := mailtpl.New(" ").SubmitterConfirmation(context.Background(), submission.Notice{
		Kind:          submission.KindContact,
		SubmitterName: "Jane",
	})
	require.NoError(t, err)
	assert.Contains(t, out.Text, "The Intake team")
}
