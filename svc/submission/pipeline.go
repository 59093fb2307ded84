package submission

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/intake/pkg/email"
	"github.com/dmitrymomot/intake/pkg/logger"
	"github.com/dmitrymomot/intake/pkg/validator"
)

var (
	ErrNoSender        = errors.New("submission: mail sender is required")
	ErrNoTemplates     = errors.New("submission: templates are required")
	ErrNoOperatorEmail = errors.New("submission: operator email is required")
)

// Options configures a Pipeline. Store, Logger and Metrics are optional.
type Options struct {
	Store         Store
	Sender        email.EmailSender
	Templates     Templates
	OperatorEmail string
	Logger        *slog.Logger
	Metrics       *Metrics
	Debug         bool
}

// Pipeline processes submissions of every kind.
type Pipeline struct {
	store    Store
	mail     dispatcher
	operator string
	log      *slog.Logger
	metrics  *Metrics
	debug    bool
}

// New validates opts and returns a ready Pipeline.
func New(opts Options) (*Pipeline, error) {
	if opts.Sender == nil {
		return nil, ErrNoSender
	}
	if opts.Templates == nil {
		return nil, ErrNoTemplates
	}
	if opts.OperatorEmail == "" {
		return nil, ErrNoOperatorEmail
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	return &Pipeline{
		store: opts.Store,
		mail: dispatcher{
			sender:    opts.Sender,
			templates: opts.Templates,
			operator:  opts.OperatorEmail,
		},
		operator: opts.OperatorEmail,
		log:      log.With(logger.Component("submission")),
		metrics:  opts.Metrics,
		debug:    opts.Debug,
	}, nil
}

// Process runs one submission through validation, screening, sanitizing,
// persistence and both notifications. It always returns a Result.
//
// Once the input is accepted the remaining steps run to completion even if
// ctx is canceled, so a client disconnect cannot leave a stored record
// without its notification.
func (p *Pipeline) Process(ctx context.Context, kind Kind, raw Raw, meta Metadata) Result {
	start := time.Now()
	log := p.log.With(logger.Kind(string(kind)))

	d, ok := Lookup(kind)
	if !ok {
		log.DebugContext(ctx, "unknown submission kind")
		return unknownKindResult()
	}

	if err := Validate(d, raw); err != nil {
		msgs := validator.ExtractValidationErrors(err).Messages()
		if len(msgs) == 0 {
			msgs = []string{err.Error()}
		}
		log.DebugContext(ctx, "submission failed validation", slog.Any("errors", msgs))
		p.metrics.observeSubmission(kind, OutcomeInvalid, time.Since(start))
		return validationResult(msgs)
	}

	if err := Screen(raw); err != nil {
		attrs := []any{logger.RemoteIP(meta.ClientIP)}
		var rej *Rejection
		if errors.As(err, &rej) {
			attrs = append(attrs, slog.String("field", rej.Field), slog.String("pattern", rej.Pattern))
		}
		log.WarnContext(ctx, "submission rejected by security filter", attrs...)
		p.metrics.observeSubmission(kind, OutcomeRejected, time.Since(start))
		res := securityResult()
		p.withDebug(&res, err.Error())
		return res
	}

	clean := Sanitize(d, raw)
	var derived Derived
	if d.Derive != nil {
		derived = d.Derive(clean)
	}

	ctx = context.WithoutCancel(ctx)
	var debug []string

	data := ResultData{EstimatedCost: derived.EstimatedCost}
	id, err := p.persist(ctx, d, clean, derived, meta)
	if err != nil {
		log.ErrorContext(ctx, "failed to persist submission", logger.Error(err))
		debug = append(debug, err.Error())
	}
	data.SubmissionSaved = err == nil && p.store != nil
	if data.SubmissionSaved && kind == KindJobApplication {
		data.ApplicationID = id
	}

	if err := p.mail.verify(ctx); err != nil {
		log.ErrorContext(ctx, "mail transport verification failed", logger.Error(err))
		p.metrics.observeSubmission(kind, OutcomeUnavailable, time.Since(start))
		res := transportResult(p.operator, data)
		p.withDebug(&res, append(debug, err.Error())...)
		return res
	}

	outcomes := p.mail.dispatch(ctx, Notice{
		Kind:           kind,
		Descriptor:     d,
		Submission:     clean,
		Derived:        derived,
		RecordID:       id,
		OperatorEmail:  p.operator,
		SubmitterName:  clean.String(d.SubmitterName),
		SubmitterEmail: clean.String(d.SubmitterEmail),
	})
	for _, o := range outcomes {
		p.metrics.observeSend(kind, o)
		if o.Sent {
			log.InfoContext(ctx, "notification sent",
				logger.Recipient(string(o.Recipient)), logger.MessageID(o.MessageID))
			continue
		}
		log.ErrorContext(ctx, "failed to send notification",
			logger.Recipient(string(o.Recipient)), slog.String("reason", o.Reason))
		debug = append(debug, o.Reason)
	}

	res := assemble(kind, p.operator, data, outcomes)
	outcome := OutcomeAccepted
	if !res.Data.AdminNotified || !res.Data.UserConfirmed {
		outcome = OutcomePartial
	}
	p.metrics.observeSubmission(kind, outcome, time.Since(start))
	log.InfoContext(ctx, "submission processed",
		slog.String("outcome", outcome),
		slog.Bool("saved", data.SubmissionSaved),
		logger.RecordID(id),
		logger.Duration(time.Since(start)))

	p.withDebug(&res, debug...)
	return res
}

// persist stores the submission. A nil store is not an error; it simply
// means nothing is saved.
func (p *Pipeline) persist(ctx context.Context, d Descriptor, s Sanitized, derived Derived, meta Metadata) (string, error) {
	if p.store == nil {
		return "", nil
	}
	id, err := p.store.Insert(ctx, NewRecord(d, s, derived, meta))
	p.metrics.observePersist(d.Kind, err == nil)
	if err != nil {
		if errors.Is(err, ErrFailedToInsert) {
			return "", err
		}
		return "", errors.Join(ErrFailedToInsert, err)
	}
	return id, nil
}

func (p *Pipeline) withDebug(res *Result, details ...string) {
	if !p.debug || len(details) == 0 {
		return
	}
	res.Debug = strings.Join(details, "; ")
}
