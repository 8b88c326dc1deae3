// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"fmt"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ListHabitsOutput represents the output of listing habits.
type ListHabitsOutput struct {
	Habits []*entity.Habit
}

// ListHabitsUseCase handles habit listing logic.
type ListHabitsUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewListHabitsUseCase creates a new ListHabitsUseCase instance.
func NewListHabitsUseCase(habitRepo adapter.HabitRepository) *ListHabitsUseCase {
	return &ListHabitsUseCase{
		habitRepo: habitRepo,
	}
}

// Execute retrieves all habits in insertion order.
func (uc *ListHabitsUseCase) Execute(ctx context.Context) (*ListHabitsOutput, error) {
	habits, err := uc.habitRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	return &ListHabitsOutput{
		Habits: habits,
	}, nil
}
