// Package kvstore implements the repository interfaces over Redis.
package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// digestQueueRepository implements adapter.DigestQueueRepository over the
// key-value store. The whole queue lives under one key as a JSON array,
// mirroring the habit and project collections.
type digestQueueRepository struct {
	store *Store
}

// NewDigestQueueRepository creates a new key-value digest queue repository instance.
func NewDigestQueueRepository(store *Store) adapter.DigestQueueRepository {
	return &digestQueueRepository{
		store: store,
	}
}

func (r *digestQueueRepository) load(ctx context.Context) ([]*entity.DigestJob, error) {
	raw, found, err := r.store.get(ctx, digestsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read digest queue: %w", err)
	}
	if !found {
		return []*entity.DigestJob{}, nil
	}

	var jobs []*entity.DigestJob
	if err := json.Unmarshal(raw, &jobs); err != nil {
		return nil, fmt.Errorf("failed to decode digest queue: %w", err)
	}
	return jobs, nil
}

func (r *digestQueueRepository) save(ctx context.Context, jobs []*entity.DigestJob) error {
	raw, err := json.Marshal(jobs)
	if err != nil {
		return fmt.Errorf("failed to encode digest queue: %w", err)
	}
	if err := r.store.set(ctx, digestsKey, raw); err != nil {
		return fmt.Errorf("failed to write digest queue: %w", err)
	}
	return nil
}

// Create adds a new digest job to the queue.
func (r *digestQueueRepository) Create(ctx context.Context, job *entity.DigestJob) error {
	jobs, err := r.load(ctx)
	if err != nil {
		return domainerror.NewDigestError(
			domainerror.ErrCodeDigestQueueFailed,
			"failed to create digest job",
			err,
		)
	}
	jobs = append(jobs, job)
	if err := r.save(ctx, jobs); err != nil {
		return domainerror.NewDigestError(
			domainerror.ErrCodeDigestQueueFailed,
			"failed to create digest job",
			err,
		)
	}
	return nil
}

// GetPendingJobs retrieves jobs ready to be processed, ordered by scheduled time.
func (r *digestQueueRepository) GetPendingJobs(ctx context.Context, limit int) ([]*entity.DigestJob, error) {
	jobs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	pending := make([]*entity.DigestJob, 0, limit)
	for _, job := range jobs {
		if job.Status == entity.DigestStatusPending && !job.ScheduledAt.After(now) {
			pending = append(pending, job)
			if len(pending) == limit {
				break
			}
		}
	}
	return pending, nil
}

// Update rebuilds the queue with the one matching job replaced.
func (r *digestQueueRepository) Update(ctx context.Context, job *entity.DigestJob) error {
	jobs, err := r.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range jobs {
		if existing.ID == job.ID {
			jobs[i] = job
			replaced = true
			break
		}
	}
	if !replaced {
		return domainerror.ErrDigestJobNotFound
	}
	return r.save(ctx, jobs)
}

// GetByID retrieves a specific job by its ID.
func (r *digestQueueRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DigestJob, error) {
	jobs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, job := range jobs {
		if job.ID == id {
			return job, nil
		}
	}
	return nil, domainerror.ErrDigestJobNotFound
}
