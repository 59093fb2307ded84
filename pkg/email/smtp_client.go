package email

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/wneessen/go-mail"
)

type smtpClient struct {
	// go-mail clients hold one connection; sends are serialized on it.
	mu     sync.Mutex
	client *mail.Client
	config Config
}

// NewSMTPClient creates an SMTP-backed email sender.
// Port 465 uses implicit TLS; any other port upgrades with STARTTLS when the
// server offers it. Authentication is enabled only when SMTPUser is set.
func NewSMTPClient(cfg Config) (EmailSender, error) {
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("%w: SMTPHost is required", ErrInvalidConfig)
	}
	if cfg.SMTPPort <= 0 || cfg.SMTPPort > 65535 {
		return nil, fmt.Errorf("%w: SMTPPort must be between 1 and 65535", ErrInvalidConfig)
	}
	if err := validateSender(cfg); err != nil {
		return nil, err
	}

	opts := []mail.Option{mail.WithPort(cfg.SMTPPort)}
	if cfg.SMTPTimeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.SMTPTimeout))
	}
	if cfg.SMTPPort == 465 {
		opts = append(opts, mail.WithSSLPort(false))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if cfg.SMTPUser != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPUser),
			mail.WithPassword(cfg.SMTPPass),
		)
	}

	client, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	return &smtpClient{client: client, config: cfg}, nil
}

// Verify opens a connection, completes the greeting and authentication, and closes it.
func (c *smtpClient) Verify(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.client.DialWithContext(ctx); err != nil {
		return errors.Join(ErrTransportUnavailable, err)
	}
	if err := c.client.Close(); err != nil {
		return errors.Join(ErrTransportUnavailable, err)
	}
	return nil
}

// SendEmail builds a multipart/alternative message and delivers it.
// The returned identifier is the generated Message-ID header.
func (c *smtpClient) SendEmail(ctx context.Context, params SendEmailParams) (string, error) {
	if err := params.Validate(); err != nil {
		return "", err
	}

	msg, err := c.buildMessage(params)
	if err != nil {
		return "", errors.Join(ErrFailedToSendEmail, err)
	}

	c.mu.Lock()
	err = c.client.DialAndSendWithContext(ctx, msg)
	c.mu.Unlock()
	if err != nil {
		return "", errors.Join(ErrFailedToSendEmail, err)
	}

	var id string
	if ids := msg.GetGenHeader(mail.HeaderMessageID); len(ids) > 0 {
		id = strings.Trim(ids[0], "<>")
	}
	return id, nil
}

func (c *smtpClient) buildMessage(params SendEmailParams) (*mail.Msg, error) {
	msg := mail.NewMsg()

	var err error
	if c.config.SenderName != "" {
		err = msg.FromFormat(c.config.SenderName, c.config.SenderEmail)
	} else {
		err = msg.From(c.config.SenderEmail)
	}
	if err != nil {
		return nil, fmt.Errorf("set from: %w", err)
	}
	if err := msg.To(params.SendTo); err != nil {
		return nil, fmt.Errorf("set to: %w", err)
	}
	if params.ReplyTo != "" {
		if err := msg.ReplyTo(params.ReplyTo); err != nil {
			return nil, fmt.Errorf("set reply-to: %w", err)
		}
	}

	msg.Subject(params.Subject)
	msg.SetMessageID()
	msg.SetDate()

	switch {
	case params.BodyText != "" && params.BodyHTML != "":
		msg.SetBodyString(mail.TypeTextPlain, params.BodyText)
		msg.AddAlternativeString(mail.TypeTextHTML, params.BodyHTML)
	case params.BodyHTML != "":
		msg.SetBodyString(mail.TypeTextHTML, params.BodyHTML)
	default:
		msg.SetBodyString(mail.TypeTextPlain, params.BodyText)
	}

	return msg, nil
}
