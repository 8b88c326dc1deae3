// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// DeleteHabitInput represents the input for habit deletion.
type DeleteHabitInput struct {
	HabitID uuid.UUID
}

// DeleteHabitUseCase handles habit deletion logic.
type DeleteHabitUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewDeleteHabitUseCase creates a new DeleteHabitUseCase instance.
func NewDeleteHabitUseCase(habitRepo adapter.HabitRepository) *DeleteHabitUseCase {
	return &DeleteHabitUseCase{
		habitRepo: habitRepo,
	}
}

// Execute performs the habit deletion.
func (uc *DeleteHabitUseCase) Execute(ctx context.Context, input DeleteHabitInput) error {
	if _, err := uc.habitRepo.FindByID(ctx, input.HabitID); err != nil {
		if errors.Is(err, domainerror.ErrHabitNotFound) {
			return domainerror.NewHabitError(
				domainerror.ErrCodeHabitNotFound,
				"habit not found",
				domainerror.ErrHabitNotFound,
			)
		}
		return fmt.Errorf("failed to find habit: %w", err)
	}

	if err := uc.habitRepo.Delete(ctx, input.HabitID); err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}

	return nil
}
