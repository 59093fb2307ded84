// Package email provides a provider-agnostic interface for sending transactional
// emails, with SMTP, Postmark and on-disk development transports.
//
// # Architecture
//
// EmailSender has two operations. Verify checks that the transport is reachable
// and accepts the configured credentials; SendEmail delivers one message and
// returns the identifier the transport assigned to it. Implementations:
//   - NewSMTPClient: SMTP with STARTTLS (or implicit TLS on port 465), using
//     github.com/wneessen/go-mail. One timeout bounds connect, greeting and
//     socket reads.
//   - NewPostmarkClient: Postmark transactional API; Verify resolves the server
//     bound to the server token.
//   - NewDevSender: writes .html, .txt and .json files to a directory.
//
// New selects an implementation from Config.Driver.
//
// # Usage
//
//	sender, err := email.New(cfg)
//	if err != nil {
//	    return err
//	}
//	if err := sender.Verify(ctx); err != nil {
//	    // errors.Is(err, email.ErrTransportUnavailable)
//	}
//	id, err := sender.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   "user@example.com",
//	    ReplyTo:  "team@example.com",
//	    Subject:  "Welcome!",
//	    BodyHTML: html,
//	    BodyText: text,
//	})
//
// HTML bodies are usually produced with the templates subpackage, which renders a
// templ.Component to a string.
//
// # Error Handling
//
//   - ErrInvalidConfig: configuration validation failed
//   - ErrInvalidParams: SendEmailParams validation failed
//   - ErrTransportUnavailable: Verify could not reach or authenticate
//   - ErrFailedToSendEmail: delivery failed
package email
