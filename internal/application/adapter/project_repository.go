// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ProjectRepository defines the interface for project persistence operations.
type ProjectRepository interface {
	// Create adds a new project to the collection.
	Create(ctx context.Context, project *entity.Project) error

	// FindByID retrieves a project by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// FindAll retrieves all projects in insertion order.
	FindAll(ctx context.Context) ([]*entity.Project, error)

	// Update replaces the stored project matching the entity's ID.
	Update(ctx context.Context, project *entity.Project) error

	// Delete removes a project from the collection.
	Delete(ctx context.Context, id uuid.UUID) error
}
