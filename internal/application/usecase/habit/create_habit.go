// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"fmt"
	"strings"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// MaxHabitNameLength is the maximum allowed length for habit names.
const MaxHabitNameLength = 100

// CreateHabitInput represents the input for habit creation.
type CreateHabitInput struct {
	Name     string
	Category string // Optional, defaults to entity.DefaultHabitCategory
}

// CreateHabitOutput represents the output of habit creation.
type CreateHabitOutput struct {
	Habit *entity.Habit
}

// CreateHabitUseCase handles habit creation logic.
type CreateHabitUseCase struct {
	habitRepo adapter.HabitRepository
	clock     adapter.Clock
}

// NewCreateHabitUseCase creates a new CreateHabitUseCase instance.
func NewCreateHabitUseCase(habitRepo adapter.HabitRepository, clock adapter.Clock) *CreateHabitUseCase {
	return &CreateHabitUseCase{
		habitRepo: habitRepo,
		clock:     clock,
	}
}

// Execute performs the habit creation. A blank or whitespace-only name is a
// silent no-op: no entity is created and no error is surfaced, matching the
// input boundary's contract. Callers detect the no-op by a nil output.
func (uc *CreateHabitUseCase) Execute(ctx context.Context, input CreateHabitInput) (*CreateHabitOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, nil
	}

	if len(name) > MaxHabitNameLength {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeHabitNameTooLong,
			fmt.Sprintf("habit name must not exceed %d characters", MaxHabitNameLength),
			domainerror.ErrHabitNameTooLong,
		)
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = entity.DefaultHabitCategory
	}

	// The palette color is chosen by the habit's creation index.
	count, err := uc.habitRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count habits: %w", err)
	}

	habit := entity.NewHabit(name, category, int(count), uc.clock.Now())

	if err := uc.habitRepo.Create(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return &CreateHabitOutput{
		Habit: habit,
	}, nil
}
