// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// UpdateHabitInput represents the input for habit update.
type UpdateHabitInput struct {
	HabitID  uuid.UUID
	Name     *string // Optional; blank values are ignored
	Category *string // Optional; blank values reset to the default category
}

// UpdateHabitOutput represents the output of habit update.
type UpdateHabitOutput struct {
	Habit *entity.Habit
}

// UpdateHabitUseCase handles habit update logic. Completions and color are
// immutable through this path; only display fields change.
type UpdateHabitUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewUpdateHabitUseCase creates a new UpdateHabitUseCase instance.
func NewUpdateHabitUseCase(habitRepo adapter.HabitRepository) *UpdateHabitUseCase {
	return &UpdateHabitUseCase{
		habitRepo: habitRepo,
	}
}

// Execute performs the habit update.
func (uc *UpdateHabitUseCase) Execute(ctx context.Context, input UpdateHabitInput) (*UpdateHabitOutput, error) {
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

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name != "" {
			if len(name) > MaxHabitNameLength {
				return nil, domainerror.NewHabitError(
					domainerror.ErrCodeHabitNameTooLong,
					fmt.Sprintf("habit name must not exceed %d characters", MaxHabitNameLength),
					domainerror.ErrHabitNameTooLong,
				)
			}
			habit.Name = name
		}
	}

	if input.Category != nil {
		category := strings.TrimSpace(*input.Category)
		if category == "" {
			category = entity.DefaultHabitCategory
		}
		habit.Category = category
	}

	if err := uc.habitRepo.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	return &UpdateHabitOutput{
		Habit: habit,
	}, nil
}
