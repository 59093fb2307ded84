// Package submission implements the lead capture pipeline shared by the
// contact, project request and job application forms.
//
// Every kind is described by a Descriptor: its fields, validation bounds,
// sanitizer caps, storage table and the fields used to address the
// confirmation email. A Pipeline runs a Raw payload through
//
//	Validate -> Screen -> Sanitize -> Store.Insert -> Verify -> send both
//
// and assembles a Result with an HTTP status and a client message.
// Validation and security failures stop the pipeline before any side
// effect. Persistence is best effort. A mail transport that fails
// verification aborts with 500 and no sends. The operator notification and
// the submitter confirmation are sent concurrently and independently; a
// failure of either is reported in Result.Data but the submission is still
// accepted.
//
// Basic usage:
//
//	p, err := submission.New(submission.Options{
//	    Store:         pgstore.New(pool),
//	    Sender:        sender,
//	    Templates:     mailtpl.New("Acme"),
//	    OperatorEmail: "team@example.com",
//	    Logger:        log,
//	})
//	if err != nil {
//	    return err
//	}
//	res := p.Process(ctx, submission.KindContact, raw, submission.Metadata{ClientIP: ip})
package submission
