// Package email provides digest email sending functionality via Resend.
package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/habit-tracker/backend/internal/application/adapter"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// ResendClient implements the adapter.DigestSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// Send sends a digest email via Resend.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendDigestInput) (*adapter.SendDigestResult, error) {
	from := fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{input.To},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	}

	resp, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		// Check if it's a permanent error (don't retry)
		if isPermanentError(err) {
			return nil, domainerror.NewDigestError(
				domainerror.ErrCodePermanentDigestFailure,
				"permanent digest failure",
				err,
			)
		}
		// Temporary error (can retry)
		return nil, domainerror.NewDigestError(
			domainerror.ErrCodeTemporaryDigestFailure,
			"temporary digest failure",
			err,
		)
	}

	return &adapter.SendDigestResult{
		ResendID: resp.Id,
	}, nil
}

// isPermanentError checks if the error is a permanent error that should not be retried.
// Permanent errors include: 401 (Unauthorized), 403 (Forbidden), 422 (Validation Error)
// Temporary errors include: 429 (Rate Limit), 5xx (Server Errors)
func isPermanentError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()

	permanentPatterns := []string{
		"401",
		"403",
		"422",
		"unauthorized",
		"forbidden",
		"validation",
		"invalid",
		"bad request",
	}

	for _, pattern := range permanentPatterns {
		if strings.Contains(strings.ToLower(errStr), pattern) {
			return true
		}
	}

	return false
}

// MockDigestSender is a mock implementation for testing.
type MockDigestSender struct {
	SentDigests []adapter.SendDigestInput
	ShouldFail  bool
	FailError   error
	IsPermanent bool
}

// NewMockDigestSender creates a new mock digest sender.
func NewMockDigestSender() *MockDigestSender {
	return &MockDigestSender{
		SentDigests: make([]adapter.SendDigestInput, 0),
	}
}

// Send implements the adapter.DigestSender interface for testing.
func (m *MockDigestSender) Send(ctx context.Context, input adapter.SendDigestInput) (*adapter.SendDigestResult, error) {
	if m.ShouldFail {
		if m.IsPermanent {
			return nil, domainerror.NewDigestError(
				domainerror.ErrCodePermanentDigestFailure,
				"mock permanent failure",
				m.FailError,
			)
		}
		return nil, domainerror.NewDigestError(
			domainerror.ErrCodeTemporaryDigestFailure,
			"mock temporary failure",
			m.FailError,
		)
	}

	m.SentDigests = append(m.SentDigests, input)

	return &adapter.SendDigestResult{
		ResendID: fmt.Sprintf("mock-%d", len(m.SentDigests)),
	}, nil
}

// SetFailure configures the mock to fail with the given error.
func (m *MockDigestSender) SetFailure(err error, permanent bool) {
	m.ShouldFail = true
	m.FailError = err
	m.IsPermanent = permanent
}

// Reset clears all sent digests and failure configuration.
func (m *MockDigestSender) Reset() {
	m.SentDigests = make([]adapter.SendDigestInput, 0)
	m.ShouldFail = false
	m.FailError = nil
	m.IsPermanent = false
}

// Ensure implementations satisfy interfaces.
var (
	_ adapter.DigestSender = (*ResendClient)(nil)
	_ adapter.DigestSender = (*MockDigestSender)(nil)
)
