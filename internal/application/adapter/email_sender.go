package adapter

import (
	"context"
)

// EmailMessage is a rendered email addressed to one recipient.
type EmailMessage struct {
	To      string
	Subject string
	HTML    string
	Text    string
	// Tags are attached to the provider message, e.g. kind=monthly_report.
	Tags map[string]string
}

// EmailReceipt identifies a message accepted by the provider.
type EmailReceipt struct {
	MessageID string
}

// EmailSender delivers rendered emails through an external provider.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) (*EmailReceipt, error)
}
