package common

import "context"

// EmailService sends one email through the configured outbound relay
type EmailService interface {
	SendEmail(to, subject, body string) error
}

// MessageNotifier dispatches the notification emails for one
// buyer-to-seller message (seller notification + buyer confirmation).
type MessageNotifier interface {
	NotifyMessage(ctx context.Context, payload MessageEmailPayload) error
}
