package submission

// Recipient names the two parties notified for every submission.
type Recipient string

const (
	RecipientOperator  Recipient = "operator"
	RecipientSubmitter Recipient = "submitter"
)

// NotificationOutcome is the result of one send attempt.
type NotificationOutcome struct {
	Recipient Recipient
	Sent      bool
	MessageID string
	Reason    string // internal failure detail, only exposed in debug mode
}

// ResultData lists which side effects actually happened.
type ResultData struct {
	SubmissionSaved bool   `json:"submissionSaved"`
	AdminNotified   bool   `json:"adminNotified"`
	UserConfirmed   bool   `json:"userConfirmed"`
	EstimatedCost   *int   `json:"estimatedCost,omitempty"`
	ApplicationID   string `json:"applicationId,omitempty"`
}

// Result is everything the caller learns about one submission.
type Result struct {
	Status        int
	Success       bool
	Message       string
	Errors        []string
	Data          *ResultData
	Notifications []NotificationOutcome
	Debug         string
}
