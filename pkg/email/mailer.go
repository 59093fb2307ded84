package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrymomot/intake/pkg/validator"
)

// EmailSender represents an interface for sending emails.
// Implementations are created once per process and must be safe for concurrent use.
type EmailSender interface {
	// Verify checks that the transport is reachable and accepts our credentials.
	// A failure is reported as ErrTransportUnavailable.
	Verify(ctx context.Context) error
	// SendEmail delivers one message and returns the transport's message identifier.
	SendEmail(ctx context.Context, params SendEmailParams) (string, error)
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	SendTo   string `json:"send_to"`            // Email address of the recipient
	ReplyTo  string `json:"reply_to,omitempty"` // Optional reply-to address
	Subject  string `json:"subject"`            // Subject of the email
	BodyHTML string `json:"body_html"`          // HTML body of the email
	BodyText string `json:"body_text"`          // Plain-text fallback body
	Tag      string `json:"tag,omitempty"`      // Optional
}

// Validate reports the first problem with params wrapped in ErrInvalidParams.
func (p SendEmailParams) Validate() error {
	switch {
	case strings.TrimSpace(p.SendTo) == "":
		return fmt.Errorf("%w: SendTo is required", ErrInvalidParams)
	case !validator.IsEmail(p.SendTo):
		return fmt.Errorf("%w: SendTo must be a valid email address", ErrInvalidParams)
	case p.ReplyTo != "" && !validator.IsEmail(p.ReplyTo):
		return fmt.Errorf("%w: ReplyTo must be a valid email address", ErrInvalidParams)
	case strings.TrimSpace(p.Subject) == "":
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	case strings.ContainsAny(p.Subject, "\r\n"):
		return fmt.Errorf("%w: Subject must be a single line", ErrInvalidParams)
	case strings.TrimSpace(p.BodyHTML) == "" && strings.TrimSpace(p.BodyText) == "":
		return fmt.Errorf("%w: BodyHTML or BodyText is required", ErrInvalidParams)
	}
	return nil
}

// New builds the EmailSender selected by cfg.Driver.
func New(cfg Config) (EmailSender, error) {
	switch cfg.Driver {
	case DriverSMTP, "":
		return NewSMTPClient(cfg)
	case DriverPostmark:
		return NewPostmarkClient(cfg)
	case DriverDev:
		return NewDevSender(cfg.DevOutputDir), nil
	default:
		return nil, fmt.Errorf("%w: unknown driver %q", ErrInvalidConfig, cfg.Driver)
	}
}

func validateSender(cfg Config) error {
	if cfg.SenderEmail == "" {
		return fmt.Errorf("%w: SenderEmail is required", ErrInvalidConfig)
	}
	if !validator.IsEmail(cfg.SenderEmail) {
		return fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}
	return nil
}
