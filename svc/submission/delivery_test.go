package submission_test

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intake/pkg/email"
	"github.com/dmitrymomot/intake/svc/submission"
	"github.com/dmitrymomot/intake/svc/submission/mailtpl"
)

type storedMessage struct {
	SendTo  string `json:"send_to"`
	ReplyTo string `json:"reply_to"`
	Tag     string `json:"tag"`
}

func readOutbox(t *testing.T, dir string) map[string]storedMessage {
	t.Helper()
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	require.NoError(t, err)

	out := make(map[string]storedMessage, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		require.NoError(t, err)
		var msg storedMessage
		require.NoError(t, json.Unmarshal(data, &msg))
		out[msg.Tag] = msg
	}
	return out
}

func TestPipeline_DeliversToEveryAcceptedAddress(t *testing.T) {
	t.Parallel()

	addresses := []string{
		"o'brien@example.com",
		"a!b@example.com",
		"jo@exämple.com",
		"jo@example.c",
		"first.last+tag@sub.example.co.uk",
	}
	for _, addr := range addresses {
		t.Run(addr, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			p, err := submission.New(submission.Options{
				Sender:        email.NewDevSender(dir),
				Templates:     mailtpl.New("Intake"),
				OperatorEmail: operatorEmail,
			})
			require.NoError(t, err)

			raw := validContact()
			raw["email"] = addr
			res := p.Process(context.Background(), submission.KindContact, raw, submission.Metadata{})

			require.Equal(t, http.StatusOK, res.Status, res.Errors)
			require.NotNil(t, res.Data)
			assert.True(t, res.Data.AdminNotified, res.Notifications)
			assert.True(t, res.Data.UserConfirmed, res.Notifications)

			outbox := readOutbox(t, dir)
			require.Len(t, outbox, 2)
			assert.Equal(t, operatorEmail, outbox["contact-operator"].SendTo)
			assert.Equal(t, addr, outbox["contact-operator"].ReplyTo)
			assert.Equal(t, addr, outbox["contact-confirmation"].SendTo)
			assert.Equal(t, operatorEmail, outbox["contact-confirmation"].ReplyTo)
		})
	}

	t.Run("unusable reply-to is dropped, not fatal", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		p, err := submission.New(submission.Options{
			Sender:        email.NewDevSender(dir),
			Templates:     mailtpl.New("Intake"),
			OperatorEmail: "Team <team@example.com>",
		})
		require.NoError(t, err)

		res := p.Process(context.Background(), submission.KindContact, validContact(), submission.Metadata{})

		require.Equal(t, http.StatusOK, res.Status)
		assert.False(t, res.Data.AdminNotified)
		assert.True(t, res.Data.UserConfirmed)
		assert.Contains(t, res.Notifications[0].Reason, "SendTo must be a valid email address")

		outbox := readOutbox(t, dir)
		require.Len(t, outbox, 1)
		assert.Equal(t, "jane@example.com", outbox["contact-confirmation"].SendTo)
		assert.Empty(t, outbox["contact-confirmation"].ReplyTo)
	})
}
