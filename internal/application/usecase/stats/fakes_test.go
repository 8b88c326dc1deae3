package stats

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// fixedClock pins the aggregation window for deterministic assertions.
type fixedClock struct {
	instant time.Time
}

func (c fixedClock) Now() time.Time {
	return c.instant
}

// memHabitRepo is an in-memory HabitRepository keeping insertion order.
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
	return nil, domainerror.NewHabitError(domainerror.ErrCodeHabitNotFound, "habit not found", domainerror.ErrHabitNotFound)
}

func (r *memHabitRepo) FindAll(_ context.Context) ([]*entity.Habit, error) {
	return r.habits, nil
}

func (r *memHabitRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.habits)), nil
}

func (r *memHabitRepo) Update(_ context.Context, habit *entity.Habit) error {
	for i, h := range r.habits {
		if h.ID == habit.ID {
			r.habits[i] = habit
			return nil
		}
	}
	return domainerror.NewHabitError(domainerror.ErrCodeHabitNotFound, "habit not found", domainerror.ErrHabitNotFound)
}

func (r *memHabitRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, h := range r.habits {
		if h.ID == id {
			r.habits = append(r.habits[:i], r.habits[i+1:]...)
			return nil
		}
	}
	return domainerror.NewHabitError(domainerror.ErrCodeHabitNotFound, "habit not found", domainerror.ErrHabitNotFound)
}

// memProjectRepo is an in-memory ProjectRepository keeping insertion order.
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
	return nil, domainerror.NewProjectError(domainerror.ErrCodeProjectNotFound, "project not found", domainerror.ErrProjectNotFound)
}

func (r *memProjectRepo) FindAll(_ context.Context) ([]*entity.Project, error) {
	return r.projects, nil
}

func (r *memProjectRepo) Update(_ context.Context, project *entity.Project) error {
	for i, p := range r.projects {
		if p.ID == project.ID {
			r.projects[i] = project
			return nil
		}
	}
	return domainerror.NewProjectError(domainerror.ErrCodeProjectNotFound, "project not found", domainerror.ErrProjectNotFound)
}

func (r *memProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, p := range r.projects {
		if p.ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}
	return domainerror.NewProjectError(domainerror.ErrCodeProjectNotFound, "project not found", domainerror.ErrProjectNotFound)
}

// habitWithCompletions builds a habit with the given completion keys.
func habitWithCompletions(name, category string, index int, keys ...string) *entity.Habit {
	h := entity.NewHabit(name, category, index, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	h.Completions = entity.NewDateSet(keys...)
	return h
}
