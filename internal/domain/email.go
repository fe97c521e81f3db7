package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// DeadlineReminder is one urgent entry in a reminder digest.
type DeadlineReminder struct {
	Name           string
	Location       string
	SubmissionDate Date
	Countdown      Countdown
}

// ReminderService sends the digest of urgent submission deadlines.
type ReminderService interface {
	// SendDigest emails the urgent upcoming deadlines to the configured
	// recipient. It returns the number of deadlines included; zero means
	// no email was sent.
	SendDigest(ctx context.Context) (int, error)
}
