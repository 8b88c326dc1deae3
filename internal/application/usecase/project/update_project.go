// Package project contains project-related use cases.
package project

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

// UpdateProjectInput represents the input for project update. Progress is
// not updatable through this path; it flows through UpdateProgressUseCase
// so status derivation and end-date stamping stay in one place.
type UpdateProjectInput struct {
	ProjectID   uuid.UUID
	Name        *string       // Optional; blank values are ignored
	Description *string       // Optional
	Tasks       *[]entity.Task // Optional; replaced wholesale, treated as opaque
}

// UpdateProjectOutput represents the output of project update.
type UpdateProjectOutput struct {
	Project *entity.Project
}

// UpdateProjectUseCase handles project display-field updates.
type UpdateProjectUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewUpdateProjectUseCase creates a new UpdateProjectUseCase instance.
func NewUpdateProjectUseCase(projectRepo adapter.ProjectRepository) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo: projectRepo,
	}
}

// Execute performs the project update.
func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	project, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		if errors.Is(err, domainerror.ErrProjectNotFound) {
			return nil, domainerror.NewProjectError(
				domainerror.ErrCodeProjectNotFound,
				"project not found",
				domainerror.ErrProjectNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name != "" {
			project.Name = name
		}
	}

	if input.Description != nil {
		project.Description = strings.TrimSpace(*input.Description)
	}

	if input.Tasks != nil {
		project.Tasks = *input.Tasks
	}

	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return &UpdateProjectOutput{
		Project: project,
	}, nil
}
