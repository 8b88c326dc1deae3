// Package digest contains weekly summary digest use cases.
package digest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/usecase/stats"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

type fixedClock struct {
	instant time.Time
}

func (c fixedClock) Now() time.Time {
	return c.instant
}

type memHabitRepo struct {
	habits []*entity.Habit
}

func (r *memHabitRepo) Create(_ context.Context, habit *entity.Habit) error {
	r.habits = append(r.habits, habit)
	return nil
}

func (r *memHabitRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Habit, error) {
	for _, h := range r.habits {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, domainerror.ErrHabitNotFound
}

func (r *memHabitRepo) FindAll(_ context.Context) ([]*entity.Habit, error) {
	return r.habits, nil
}

func (r *memHabitRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.habits)), nil
}

func (r *memHabitRepo) Update(_ context.Context, _ *entity.Habit) error {
	return nil
}

func (r *memHabitRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

type memProjectRepo struct {
	projects []*entity.Project
}

func (r *memProjectRepo) Create(_ context.Context, project *entity.Project) error {
	r.projects = append(r.projects, project)
	return nil
}

func (r *memProjectRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Project, error) {
	for _, p := range r.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domainerror.ErrProjectNotFound
}

func (r *memProjectRepo) FindAll(_ context.Context) ([]*entity.Project, error) {
	return r.projects, nil
}

func (r *memProjectRepo) Update(_ context.Context, _ *entity.Project) error {
	return nil
}

func (r *memProjectRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

type memDigestQueue struct {
	jobs []*entity.DigestJob
}

func (q *memDigestQueue) Create(_ context.Context, job *entity.DigestJob) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *memDigestQueue) GetPendingJobs(_ context.Context, _ int) ([]*entity.DigestJob, error) {
	return q.jobs, nil
}

func (q *memDigestQueue) Update(_ context.Context, _ *entity.DigestJob) error {
	return nil
}

func (q *memDigestQueue) GetByID(_ context.Context, id uuid.UUID) (*entity.DigestJob, error) {
	for _, j := range q.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, domainerror.ErrDigestJobNotFound
}

func TestQueueDigest(t *testing.T) {
	// Wednesday, March 4th 2026; the containing week is Mar 2 - Mar 8
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	newUseCase := func(habitRepo *memHabitRepo, projectRepo *memProjectRepo, queue *memDigestQueue) *QueueDigestUseCase {
		clock := fixedClock{now}
		return NewQueueDigestUseCase(
			queue,
			stats.NewGetHabitStatsUseCase(habitRepo, clock),
			stats.NewGetProjectStatsUseCase(projectRepo),
		)
	}

	t.Run("assembles the week summary into the job", func(t *testing.T) {
		habitRepo := &memHabitRepo{}
		h := entity.NewHabit("Read", "Learning", 0, created)
		h.Completions = entity.NewDateSet("2026-03-02", "2026-03-03")
		habitRepo.habits = append(habitRepo.habits, h)

		projectRepo := &memProjectRepo{}
		done := entity.NewProject("Done", "", created)
		done.SetProgress(100, now)
		open := entity.NewProject("Open", "", created)
		projectRepo.projects = append(projectRepo.projects, done, open)

		queue := &memDigestQueue{}
		uc := newUseCase(habitRepo, projectRepo, queue)

		output, err := uc.Execute(context.Background(), QueueDigestInput{
			RecipientEmail: "user@example.com",
			RecipientName:  "Sam",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		job := output.Job
		if job.TemplateType != entity.TemplateWeeklyDigest {
			t.Errorf("expected weekly digest template, got %s", job.TemplateType)
		}
		if job.Status != entity.DigestStatusPending {
			t.Errorf("expected pending status, got %s", job.Status)
		}
		if got := job.TemplateData["week_start"]; got != "2026-03-02" {
			t.Errorf("expected week start 2026-03-02, got %v", got)
		}
		if got := job.TemplateData["week_end"]; got != "2026-03-08" {
			t.Errorf("expected week end 2026-03-08, got %v", got)
		}
		if got := job.TemplateData["total_completions"]; got != 2 {
			t.Errorf("expected 2 total completions, got %v", got)
		}
		if got := job.TemplateData["projects_total"]; got != 2 {
			t.Errorf("expected 2 total projects, got %v", got)
		}
		if got := job.TemplateData["projects_done"]; got != 1 {
			t.Errorf("expected 1 done project, got %v", got)
		}
		if len(queue.jobs) != 1 {
			t.Errorf("expected 1 queued job, got %d", len(queue.jobs))
		}
	})

	t.Run("blank recipient is rejected", func(t *testing.T) {
		uc := newUseCase(&memHabitRepo{}, &memProjectRepo{}, &memDigestQueue{})

		_, err := uc.Execute(context.Background(), QueueDigestInput{RecipientEmail: "  "})
		var digestErr *domainerror.DigestError
		if !errors.As(err, &digestErr) || digestErr.Code != domainerror.ErrCodeDigestRecipientRequired {
			t.Errorf("expected recipient required error, got %v", err)
		}
	})
}
