package mailer

import "fmt"

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// HTML is optional; Text is the fallback body.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject,omitempty"`
	Text    string `json:"text,omitempty"`
	HTML    string `json:"html,omitempty"`
}

// WelcomeJob builds the welcome email sent after registration.
func WelcomeJob(to, name string) EmailJob {
	return EmailJob{
		To:      to,
		Subject: "Welcome to Pulseboard",
		Text: fmt.Sprintf(
			"Hi %s,\n\nYour account is ready. Follow a few clubs to fill your event feed.\n\n— Pulseboard",
			name,
		),
	}
}
