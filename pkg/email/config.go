package email

import "time"

// Driver selects the transport behind EmailSender.
type Driver string

const (
	DriverSMTP     Driver = "smtp"
	DriverPostmark Driver = "postmark"
	DriverDev      Driver = "dev"
)

// Config holds email service configuration.
// Only the fields of the selected Driver are required; SenderEmail is always
// required because it establishes the sender identity of every outbound email.
type Config struct {
	Driver      Driver `env:"MAIL_DRIVER" envDefault:"smtp"`
	SenderEmail string `env:"MAIL_FROM,required"`
	SenderName  string `env:"MAIL_FROM_NAME"`

	SMTPHost    string        `env:"SMTP_HOST"`
	SMTPPort    int           `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser    string        `env:"SMTP_USER"`
	SMTPPass    string        `env:"SMTP_PASS"`
	SMTPTimeout time.Duration `env:"SMTP_TIMEOUT" envDefault:"30s"` // connect, greeting and socket timeout

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	DevOutputDir string `env:"MAIL_DEV_DIR" envDefault:"./tmp/emails"`
}
