package mailtpl

import (
	"fmt"
	"strings"
)

func operatorText(d operatorData) string {
	var b strings.Builder
	b.WriteString(d.Title + "\n\n")
	for _, r := range d.Rows {
		fmt.Fprintf(&b, "%s: %s\n", r.Label, r.Value)
	}
	if d.RecordID != "" {
		fmt.Fprintf(&b, "\nReference: %s\n", d.RecordID)
	}
	if d.ReplyURL != "" {
		fmt.Fprintf(&b, "\nReply to %s: %s\n", d.Submitter, d.ReplyURL)
	}
	return b.String()
}

func confirmationText(d confirmationData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", d.Name)
	fmt.Fprintf(&b, "Thank you for your %s. We have received it and will get back to you within %s.\n\n", d.Noun, d.ResponseTime)
	if d.Estimate != "" {
		fmt.Fprintf(&b, "Based on the details you shared, the preliminary estimate is %s. Final pricing depends on the agreed scope.\n\n", d.Estimate)
	}
	if d.Reference != "" {
		fmt.Fprintf(&b, "Your application reference is %s.\n\n", d.Reference)
	}
	b.WriteString("What happens next:\n")
	for i, step := range d.NextSteps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	fmt.Fprintf(&b, "\nIf you have anything to add, reply to this email or write to %s.\n\nThe %s team\n", d.Operator, d.Brand)
	return b.String()
}
