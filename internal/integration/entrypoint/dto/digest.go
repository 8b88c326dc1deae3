package dto

import (
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// QueueDigestRequest represents the request body for queueing a weekly digest.
type QueueDigestRequest struct {
	RecipientEmail string `json:"recipient_email"`
	RecipientName  string `json:"recipient_name"`
}

// DigestJobResponse represents a queued digest job in API responses.
type DigestJobResponse struct {
	ID             string `json:"id"`
	RecipientEmail string `json:"recipient_email"`
	Subject        string `json:"subject"`
	Status         string `json:"status"`
	Attempts       int    `json:"attempts"`
	ScheduledAt    string `json:"scheduled_at"`
}

// ToDigestJobResponse converts a domain DigestJob entity to a DigestJobResponse DTO.
func ToDigestJobResponse(job *entity.DigestJob) DigestJobResponse {
	return DigestJobResponse{
		ID:             job.ID.String(),
		RecipientEmail: job.RecipientEmail,
		Subject:        job.Subject,
		Status:         string(job.Status),
		Attempts:       job.Attempts,
		ScheduledAt:    job.ScheduledAt.Format(time.RFC3339),
	}
}
