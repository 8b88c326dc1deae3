// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// DigestQueueRepository defines the interface for digest queue persistence operations.
type DigestQueueRepository interface {
	// Create adds a new digest job to the queue.
	Create(ctx context.Context, job *entity.DigestJob) error

	// GetPendingJobs retrieves jobs ready to be processed, ordered by scheduled time.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.DigestJob, error)

	// Update saves changes to a digest job.
	Update(ctx context.Context, job *entity.DigestJob) error

	// GetByID retrieves a specific job by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DigestJob, error)
}
