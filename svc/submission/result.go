package submission

import (
	"fmt"
	"net/http"
)

const (
	msgValidationFailed = "Please correct the highlighted fields and try again."
	msgSecurityRejected = "Invalid characters detected in submission."
	msgUnknownKind      = "Unknown submission type."
	msgTransportDown    = "Our email service is temporarily unavailable. Please contact us directly at %s"
	msgConfirmationLost = "Your submission was received, but we could not send your confirmation email. It may not arrive."
	msgOperatorLost     = "Your submission was received, but our team may not have been notified. If you don't hear from us, please contact us directly at %s"
)

var successMessages = map[Kind]string{
	KindContact:        "Thank you for reaching out! We'll get back to you within 24 hours.",
	KindProjectRequest: "Thank you for your project request! We'll review it and get back to you within 48 hours.",
	KindJobApplication: "Thank you for applying! We'll review your application and get back to you within 5-7 business days.",
}

// ResponseTime is the reply window promised to the submitter of kind.
func ResponseTime(kind Kind) string {
	switch kind {
	case KindProjectRequest:
		return "48 hours"
	case KindJobApplication:
		return "5-7 business days"
	default:
		return "24 hours"
	}
}

func validationResult(errs []string) Result {
	return Result{
		Status:  http.StatusBadRequest,
		Message: msgValidationFailed,
		Errors:  errs,
	}
}

func securityResult() Result {
	return Result{
		Status:  http.StatusBadRequest,
		Message: msgSecurityRejected,
	}
}

func unknownKindResult() Result {
	return Result{
		Status:  http.StatusNotFound,
		Message: msgUnknownKind,
	}
}

func transportResult(operator string, data ResultData) Result {
	return Result{
		Status:  http.StatusInternalServerError,
		Message: fmt.Sprintf(msgTransportDown, operator),
		Data:    &data,
	}
}

// assemble builds the final result once both sends were attempted.
// The submission was accepted, so Success holds even on partial delivery.
func assemble(kind Kind, operator string, data ResultData, outcomes []NotificationOutcome) Result {
	for _, o := range outcomes {
		switch o.Recipient {
		case RecipientOperator:
			data.AdminNotified = o.Sent
		case RecipientSubmitter:
			data.UserConfirmed = o.Sent
		}
	}

	msg := successMessages[kind]
	switch {
	case !data.AdminNotified:
		msg = fmt.Sprintf(msgOperatorLost, operator)
	case !data.UserConfirmed:
		msg = msgConfirmationLost
	}

	return Result{
		Status:        http.StatusOK,
		Success:       true,
		Message:       msg,
		Data:          &data,
		Notifications: outcomes,
	}
}
