// Package email provides digest email sending functionality.
package email

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/email/templates"
)

// memDigestQueue is an in-memory DigestQueueRepository for worker tests.
type memDigestQueue struct {
	jobs []*entity.DigestJob
}

func (q *memDigestQueue) Create(_ context.Context, job *entity.DigestJob) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *memDigestQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.DigestJob, error) {
	pending := make([]*entity.DigestJob, 0)
	for _, job := range q.jobs {
		if job.Status == entity.DigestStatusPending && len(pending) < limit {
			pending = append(pending, job)
		}
	}
	return pending, nil
}

func (q *memDigestQueue) Update(_ context.Context, job *entity.DigestJob) error {
	for i, j := range q.jobs {
		if j.ID == job.ID {
			q.jobs[i] = job
			return nil
		}
	}
	return domainerror.ErrDigestJobNotFound
}

func (q *memDigestQueue) GetByID(_ context.Context, id uuid.UUID) (*entity.DigestJob, error) {
	for _, j := range q.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, domainerror.ErrDigestJobNotFound
}

func newWeeklyJob() *entity.DigestJob {
	return entity.NewDigestJob(entity.TemplateWeeklyDigest, "user@example.com", "Sam", "Your weekly summary", map[string]interface{}{
		"week_start": "2026-03-02",
		"week_end":   "2026-03-08",
		"habits": []map[string]interface{}{
			{"name": "Read", "count": 5},
			{"name": "Run", "count": 2},
		},
		"total_completions": 7,
		"projects_total":    3,
		"projects_done":     1,
		"avg_progress":      50,
	})
}

func newTestWorker(t *testing.T, queue *memDigestQueue, sender *MockDigestSender) *Worker {
	t.Helper()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}
	return NewWorker(queue, sender, renderer, DefaultWorkerConfig())
}

func TestWorker_ProcessNow(t *testing.T) {
	ctx := context.Background()

	t.Run("sends a pending digest and marks it sent", func(t *testing.T) {
		queue := &memDigestQueue{}
		sender := NewMockDigestSender()
		job := newWeeklyJob()
		queue.jobs = append(queue.jobs, job)

		worker := newTestWorker(t, queue, sender)
		worker.ProcessNow(ctx)

		if len(sender.SentDigests) != 1 {
			t.Fatalf("expected 1 sent digest, got %d", len(sender.SentDigests))
		}
		sent := sender.SentDigests[0]
		if sent.To != "user@example.com" {
			t.Errorf("expected recipient user@example.com, got %s", sent.To)
		}
		if !strings.Contains(sent.HTML, "Read") || !strings.Contains(sent.HTML, "Run") {
			t.Error("expected rendered HTML to include habit rows")
		}
		if !strings.Contains(sent.Text, "Read") {
			t.Error("expected rendered text to include habit rows")
		}

		if job.Status != entity.DigestStatusSent {
			t.Errorf("expected job status sent, got %s", job.Status)
		}
		if job.ResendID == "" {
			t.Error("expected a resend id on the sent job")
		}
	})

	t.Run("temporary failure reschedules the job", func(t *testing.T) {
		queue := &memDigestQueue{}
		sender := NewMockDigestSender()
		sender.SetFailure(errors.New("rate limited"), false)
		job := newWeeklyJob()
		queue.jobs = append(queue.jobs, job)

		worker := newTestWorker(t, queue, sender)
		worker.ProcessNow(ctx)

		if job.Status != entity.DigestStatusPending {
			t.Errorf("expected job back to pending for retry, got %s", job.Status)
		}
		if job.Attempts != 1 {
			t.Errorf("expected 1 attempt, got %d", job.Attempts)
		}
		if job.LastError == "" {
			t.Error("expected last error to be recorded")
		}
	})

	t.Run("permanent failure fails the job immediately", func(t *testing.T) {
		queue := &memDigestQueue{}
		sender := NewMockDigestSender()
		sender.SetFailure(errors.New("invalid recipient"), true)
		job := newWeeklyJob()
		queue.jobs = append(queue.jobs, job)

		worker := newTestWorker(t, queue, sender)
		worker.ProcessNow(ctx)

		if job.Status != entity.DigestStatusFailed {
			t.Errorf("expected job status failed, got %s", job.Status)
		}
	})

	t.Run("exhausted retries fail the job", func(t *testing.T) {
		queue := &memDigestQueue{}
		sender := NewMockDigestSender()
		sender.SetFailure(errors.New("still down"), false)
		job := newWeeklyJob()
		queue.jobs = append(queue.jobs, job)

		worker := newTestWorker(t, queue, sender)
		for i := 0; i < job.MaxAttempts; i++ {
			// Pull the job regardless of its retry schedule
			job.Status = entity.DigestStatusPending
			worker.ProcessNow(ctx)
		}

		if job.Status != entity.DigestStatusFailed {
			t.Errorf("expected job status failed after %d attempts, got %s", job.MaxAttempts, job.Status)
		}
		if job.Attempts != job.MaxAttempts {
			t.Errorf("expected %d attempts, got %d", job.MaxAttempts, job.Attempts)
		}
	})

	t.Run("unknown template type is a permanent failure", func(t *testing.T) {
		queue := &memDigestQueue{}
		sender := NewMockDigestSender()
		job := entity.NewDigestJob("mystery_template", "user@example.com", "Sam", "?", map[string]interface{}{})
		queue.jobs = append(queue.jobs, job)

		worker := newTestWorker(t, queue, sender)
		worker.ProcessNow(ctx)

		if job.Status != entity.DigestStatusFailed {
			t.Errorf("expected job status failed, got %s", job.Status)
		}
		if len(sender.SentDigests) != 0 {
			t.Errorf("expected no sends, got %d", len(sender.SentDigests))
		}
	})
}
