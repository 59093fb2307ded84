package mailtpl

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/intake/svc/submission"
)

const maxSubject = 200

// Templates renders the operator notification and the submitter
// confirmation for every submission kind.
type Templates struct {
	brand string
}

// New returns Templates that sign messages with brand.
func New(brand string) *Templates {
	if brand = strings.TrimSpace(brand); brand == "" {
		brand = "Intake"
	}
	return &Templates{brand: brand}
}

var _ submission.Templates = (*Templates)(nil)

// OperatorNotification summarizes a submission for the operator mailbox.
func (t *Templates) OperatorNotification(ctx context.Context, n submission.Notice) (submission.Rendered, error) {
	rows := summaryRows(n)
	reply := replyLink(n)
	data := operatorData{
		Title:     operatorTitle(n.Kind),
		Submitter: n.SubmitterName,
		Rows:      rows,
		ReplyURL:  reply,
		RecordID:  n.RecordID,
	}

	html, err := renderHTML(ctx, operatorHTML(data))
	if err != nil {
		return submission.Rendered{}, err
	}
	return submission.Rendered{
		Subject: subject(fmt.Sprintf("New %s from %s", kindNoun(n.Kind), n.SubmitterName)),
		HTML:    html,
		Text:    operatorText(data),
	}, nil
}

// SubmitterConfirmation thanks the submitter and sets expectations.
func (t *Templates) SubmitterConfirmation(ctx context.Context, n submission.Notice) (submission.Rendered, error) {
	data := confirmationData{
		Brand:        t.brand,
		Name:         n.SubmitterName,
		Noun:         kindNoun(n.Kind),
		ResponseTime: submission.ResponseTime(n.Kind),
		NextSteps:    nextSteps(n.Kind),
		Operator:     n.OperatorEmail,
	}
	if n.Derived.EstimatedCost != nil {
		data.Estimate = formatUSD(*n.Derived.EstimatedCost)
	}
	if n.Kind == submission.KindJobApplication {
		data.Reference = n.RecordID
	}

	html, err := renderHTML(ctx, confirmationHTML(data))
	if err != nil {
		return submission.Rendered{}, err
	}
	return submission.Rendered{
		Subject: subject(confirmationSubject(n.Kind, t.brand)),
		HTML:    html,
		Text:    confirmationText(data),
	}, nil
}

// row is one labeled value of the summary table.
type row struct {
	Label string
	Value string
}

func summaryRows(n submission.Notice) []row {
	var rows []row
	for _, f := range n.Descriptor.Fields {
		if !n.Submission.Has(f.Name) {
			continue
		}
		value := n.Submission.String(f.Name)
		switch {
		case f.List:
			value = strings.Join(n.Submission.List(f.Name), ", ")
		case f.Name == "projectType":
			value = ProjectTypeLabel(value)
		}
		rows = append(rows, row{Label: f.Label, Value: value})
	}
	if n.Derived.EstimatedCost != nil {
		rows = append(rows, row{Label: "Estimated cost", Value: formatUSD(*n.Derived.EstimatedCost)})
	}
	return rows
}

// replyLink is a mailto URL addressed to the submitter.
func replyLink(n submission.Notice) string {
	if n.SubmitterEmail == "" {
		return ""
	}
	q := url.Values{"subject": {"Re: your " + kindNoun(n.Kind)}}
	u := url.URL{Scheme: "mailto", Opaque: n.SubmitterEmail, RawQuery: strings.ReplaceAll(q.Encode(), "+", "%20")}
	return u.String()
}

var acronyms = map[string]string{"nlp": "NLP"}

// ProjectTypeLabel turns a project type value such as "computer_vision"
// into "Computer Vision".
func ProjectTypeLabel(projectType string) string {
	if label, ok := acronyms[projectType]; ok {
		return label
	}
	return cases.Title(language.English).String(strings.ReplaceAll(projectType, "_", " "))
}

func formatUSD(amount int) string {
	return message.NewPrinter(language.English).Sprintf("$%d", amount)
}

// subject collapses whitespace, including newlines, and caps the length.
func subject(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > maxSubject {
		s = string(r[:maxSubject])
	}
	return s
}

func kindNoun(kind submission.Kind) string {
	switch kind {
	case submission.KindProjectRequest:
		return "project request"
	case submission.KindJobApplication:
		return "job application"
	default:
		return "contact message"
	}
}

func operatorTitle(kind submission.Kind) string {
	return cases.Title(language.English).String("new " + kindNoun(kind))
}

func confirmationSubject(kind submission.Kind, brand string) string {
	switch kind {
	case submission.KindProjectRequest:
		return "We received your project request"
	case submission.KindJobApplication:
		return "Thank you for applying to " + brand
	default:
		return "Thanks for contacting " + brand
	}
}

func nextSteps(kind submission.Kind) []string {
	switch kind {
	case submission.KindProjectRequest:
		return []string{
			"We review your requirements and goals.",
			"We schedule a call to discuss scope and timeline.",
			"You receive a detailed proposal.",
		}
	case submission.KindJobApplication:
		return []string{
			"Our team reviews your application.",
			"If there is a match, we invite you to an interview.",
		}
	default:
		return []string{
			"A member of our team reads your message.",
			"We reply to the email address you provided.",
		}
	}
}
