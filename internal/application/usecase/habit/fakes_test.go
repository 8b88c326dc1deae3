// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// fixedClock pins time for deterministic date keys.
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
	return nil, domainerror.ErrHabitNotFound
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
	return domainerror.ErrHabitNotFound
}

func (r *memHabitRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, h := range r.habits {
		if h.ID == id {
			r.habits = append(r.habits[:i], r.habits[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrHabitNotFound
}
