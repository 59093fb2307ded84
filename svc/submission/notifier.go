package submission

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/intake/pkg/email"
	"github.com/dmitrymomot/intake/pkg/validator"
)

// ErrRenderFailed wraps template errors.
var ErrRenderFailed = errors.New("failed to render notification")

// Notice is the template input for one submission.
type Notice struct {
	Kind           Kind
	Descriptor     Descriptor
	Submission     Sanitized
	Derived        Derived
	RecordID       string
	OperatorEmail  string
	SubmitterName  string
	SubmitterEmail string
}

// Rendered is one message ready to send.
type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

// Templates renders the two messages sent for every submission.
type Templates interface {
	OperatorNotification(ctx context.Context, n Notice) (Rendered, error)
	SubmitterConfirmation(ctx context.Context, n Notice) (Rendered, error)
}

type dispatcher struct {
	sender    email.EmailSender
	templates Templates
	operator  string
}

// verify reports whether mail can be sent at all.
func (d dispatcher) verify(ctx context.Context) error {
	if err := d.sender.Verify(ctx); err != nil {
		if errors.Is(err, email.ErrTransportUnavailable) {
			return err
		}
		return errors.Join(email.ErrTransportUnavailable, err)
	}
	return nil
}

// dispatch renders and sends both messages concurrently. A failure on one
// side never blocks or cancels the other. Outcomes are operator first.
func (d dispatcher) dispatch(ctx context.Context, n Notice) []NotificationOutcome {
	outcomes := []NotificationOutcome{
		{Recipient: RecipientOperator},
		{Recipient: RecipientSubmitter},
	}

	var g errgroup.Group
	g.Go(func() error {
		d.send(ctx, &outcomes[0], func() (Rendered, error) {
			return d.templates.OperatorNotification(ctx, n)
		}, email.SendEmailParams{
			SendTo:  d.operator,
			ReplyTo: replyTo(n.SubmitterEmail),
			Tag:     string(n.Kind) + "-operator",
		})
		return nil
	})
	g.Go(func() error {
		d.send(ctx, &outcomes[1], func() (Rendered, error) {
			return d.templates.SubmitterConfirmation(ctx, n)
		}, email.SendEmailParams{
			SendTo:  n.SubmitterEmail,
			ReplyTo: replyTo(d.operator),
			Tag:     string(n.Kind) + "-confirmation",
		})
		return nil
	})
	_ = g.Wait()

	return outcomes
}

// replyTo drops an address the senders would refuse, so a bad reply-to
// never costs the message itself.
func replyTo(addr string) string {
	if !validator.IsEmail(addr) {
		return ""
	}
	return addr
}

func (d dispatcher) send(ctx context.Context, out *NotificationOutcome, render func() (Rendered, error), params email.SendEmailParams) {
	msg, err := render()
	if err != nil {
		out.Reason = errors.Join(ErrRenderFailed, err).Error()
		return
	}
	params.Subject = msg.Subject
	params.BodyHTML = msg.HTML
	params.BodyText = msg.Text

	id, err := d.sender.SendEmail(ctx, params)
	if err != nil {
		out.Reason = fmt.Sprintf("send to %s: %v", out.Recipient, err)
		return
	}
	out.Sent = true
	out.MessageID = id
}
