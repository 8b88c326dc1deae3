// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// HabitRepository defines the interface for habit persistence operations.
type HabitRepository interface {
	// Create adds a new habit to the collection.
	Create(ctx context.Context, habit *entity.Habit) error

	// FindByID retrieves a habit by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)

	// FindAll retrieves all habits in insertion order.
	FindAll(ctx context.Context) ([]*entity.Habit, error)

	// Count returns the number of habits currently in the collection. Used
	// to assign the round-robin palette color at creation time.
	Count(ctx context.Context) (int64, error)

	// Update replaces the stored habit matching the entity's ID.
	Update(ctx context.Context, habit *entity.Habit) error

	// Delete removes a habit from the collection.
	Delete(ctx context.Context, id uuid.UUID) error
}
