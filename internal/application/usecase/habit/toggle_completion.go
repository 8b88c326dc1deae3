// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// ToggleCompletionInput represents the input for toggling today's completion.
type ToggleCompletionInput struct {
	HabitID uuid.UUID
}

// ToggleCompletionOutput represents the output of toggling a completion.
type ToggleCompletionOutput struct {
	Habit     *entity.Habit
	DateKey   string
	Completed bool // state after the flip
}

// ToggleCompletionUseCase flips a habit's completion mark for today. This
// is a flip, not a "mark done": if today's key is present it is removed,
// otherwise it is added, so two invocations restore the prior state.
type ToggleCompletionUseCase struct {
	habitRepo adapter.HabitRepository
	clock     adapter.Clock
}

// NewToggleCompletionUseCase creates a new ToggleCompletionUseCase instance.
func NewToggleCompletionUseCase(habitRepo adapter.HabitRepository, clock adapter.Clock) *ToggleCompletionUseCase {
	return &ToggleCompletionUseCase{
		habitRepo: habitRepo,
		clock:     clock,
	}
}

// Execute performs the completion toggle for today.
func (uc *ToggleCompletionUseCase) Execute(ctx context.Context, input ToggleCompletionInput) (*ToggleCompletionOutput, error) {
	habit, err := uc.habitRepo.FindByID(ctx, input.HabitID)
	if err != nil {
		if errors.Is(err, domainerror.ErrHabitNotFound) {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeHabitNotFound,
				"habit not found",
				domainerror.ErrHabitNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find habit: %w", err)
	}

	key := uc.clock.Now().Format(entity.DateKeyLayout)
	completed := habit.ToggleCompletion(key)

	if err := uc.habitRepo.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	return &ToggleCompletionOutput{
		Habit:     habit,
		DateKey:   key,
		Completed: completed,
	}, nil
}
