// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendDigestInput represents the input for sending a digest email.
type SendDigestInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendDigestResult represents the result of sending a digest email.
type SendDigestResult struct {
	ResendID string
}

// DigestSender defines the interface for sending digest emails via an
// external provider.
type DigestSender interface {
	// Send sends a digest email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendDigestInput) (*SendDigestResult, error)
}
