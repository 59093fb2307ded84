package email

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// DevSender writes every message to dir as one JSON file instead of
// delivering it. It backs MAIL_DRIVER=dev and the end-to-end tests.
type DevSender struct {
	dir string
	now func() time.Time
}

// NewDevSender returns a DevSender for dir. The directory is created on
// Verify or on the first send.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir, now: time.Now}
}

// devMessage is the on-disk form of one message.
type devMessage struct {
	MessageID string    `json:"message_id"`
	SentAt    time.Time `json:"sent_at"`
	SendTo    string    `json:"send_to"`
	ReplyTo   string    `json:"reply_to,omitempty"`
	Subject   string    `json:"subject"`
	Tag       string    `json:"tag,omitempty"`
	HTML      string    `json:"html,omitempty"`
	Text      string    `json:"text,omitempty"`
}

// Verify checks that dir exists, or can be created, and accepts files.
func (d *DevSender) Verify(context.Context) error {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return errors.Join(ErrTransportUnavailable, err)
	}
	probe, err := os.CreateTemp(d.dir, ".verify-*")
	if err != nil {
		return errors.Join(ErrTransportUnavailable, err)
	}
	_ = probe.Close()
	_ = os.Remove(probe.Name())
	return nil
}

// SendEmail stores params and returns the generated message id.
func (d *DevSender) SendEmail(ctx context.Context, params SendEmailParams) (string, error) {
	if err := params.Validate(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", errors.Join(ErrFailedToSendEmail, err)
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", errors.Join(ErrFailedToSendEmail, err)
	}

	msg := devMessage{
		MessageID: uuid.NewString(),
		SentAt:    d.now().UTC(),
		SendTo:    params.SendTo,
		ReplyTo:   params.ReplyTo,
		Subject:   params.Subject,
		Tag:       params.Tag,
		HTML:      params.BodyHTML,
		Text:      params.BodyText,
	}

	label := params.Tag
	if label == "" {
		label = params.Subject
	}
	name := fmt.Sprintf("%s_%s_%s.json", msg.SentAt.Format("20060102T150405"), fileLabel(label), msg.MessageID[:8])

	f, err := os.OpenFile(filepath.Join(d.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", errors.Join(ErrFailedToSendEmail, err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := errors.Join(enc.Encode(msg), f.Close()); err != nil {
		return "", errors.Join(ErrFailedToSendEmail, err)
	}
	return msg.MessageID, nil
}

// fileLabel lowercases s and keeps [a-z0-9-_], turning spaces into '_'.
func fileLabel(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r == ' ':
			b.WriteByte('_')
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_'):
			b.WriteRune(r)
		}
		if b.Len() >= 60 {
			break
		}
	}
	if b.Len() == 0 {
		return "email"
	}
	return b.String()
}
