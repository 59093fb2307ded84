package mailtpl

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

type operatorData struct {
	Title     string
	Submitter string
	Rows      []row
	ReplyURL  string
	RecordID  string
}

type confirmationData struct {
	Brand        string
	Name         string
	Noun         string
	ResponseTime string
	NextSteps    []string
	Estimate     string
	Reference    string
	Operator     string
}

func renderHTML(ctx context.Context, c templ.Component) (string, error) {
	var b strings.Builder
	if err := c.Render(ctx, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// htmlWriter keeps the first write error so components read top to bottom.
type htmlWriter struct {
	w   io.Writer
	err error
}

// raw writes trusted markup.
func (h *htmlWriter) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

// text writes escaped user content.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func layout(title string, body func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`)
		h.text(title)
		h.raw(`</title></head><body style="font-family:Arial,sans-serif;color:#1f2937;line-height:1.5">`)
		body(h)
		h.raw(`</body></html>`)
		return h.err
	})
}

func operatorHTML(d operatorData) templ.Component {
	return layout(d.Title, func(h *htmlWriter) {
		h.raw(`<h2>`)
		h.text(d.Title)
		h.raw(`</h2><table cellpadding="6" style="border-collapse:collapse">`)
		for _, r := range d.Rows {
			h.raw(`<tr><th align="left" valign="top" style="border-bottom:1px solid #e5e7eb">`)
			h.text(r.Label)
			h.raw(`</th><td style="border-bottom:1px solid #e5e7eb;white-space:pre-wrap">`)
			h.text(r.Value)
			h.raw(`</td></tr>`)
		}
		h.raw(`</table>`)
		if d.RecordID != "" {
			h.raw(`<p style="color:#6b7280">Reference: `)
			h.text(d.RecordID)
			h.raw(`</p>`)
		}
		if d.ReplyURL != "" {
			h.raw(`<p><a href="`)
			h.text(d.ReplyURL)
			h.raw(`">Reply to `)
			h.text(d.Submitter)
			h.raw(`</a></p>`)
		}
	})
}

func confirmationHTML(d confirmationData) templ.Component {
	return layout("Thank you", func(h *htmlWriter) {
		h.raw(`<p>Hi `)
		h.text(d.Name)
		h.raw(`,</p><p>Thank you for your `)
		h.text(d.Noun)
		h.raw(`. We have received it and will get back to you within `)
		h.text(d.ResponseTime)
		h.raw(`.</p>`)
		if d.Estimate != "" {
			h.raw(`<p>Based on the details you shared, the preliminary estimate is <strong>`)
			h.text(d.Estimate)
			h.raw(`</strong>. Final pricing depends on the agreed scope.</p>`)
		}
		if d.Reference != "" {
			h.raw(`<p>Your application reference is <strong>`)
			h.text(d.Reference)
			h.raw(`</strong>.</p>`)
		}
		h.raw(`<p>What happens next:</p><ol>`)
		for _, step := range d.NextSteps {
			h.raw(`<li>`)
			h.text(step)
			h.raw(`</li>`)
		}
		h.raw(`</ol><p>If you have anything to add, reply to this email or write to `)
		h.text(d.Operator)
		h.raw(`.</p><p>The `)
		h.text(d.Brand)
		h.raw(` team</p>`)
	})
}
