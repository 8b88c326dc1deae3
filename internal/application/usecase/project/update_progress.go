// Package project contains project-related use cases.
package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// UpdateProgressInput represents the input for a progress update. The
// progress value is range-clamped by the input control and is not
// re-validated here.
type UpdateProgressInput struct {
	ProjectID uuid.UUID
	Progress  int
}

// UpdateProgressOutput represents the output of a progress update.
type UpdateProgressOutput struct {
	Project *entity.Project
}

// UpdateProgressUseCase sets a project's progress. Progress is the sole
// driver of status: 0 maps to not-started, 1..99 to in-progress, 100 to
// completed. Every call that sets progress to 100 stamps the end date,
// including when the project already was at 100; dropping below 100 leaves
// a previously stamped end date in place.
type UpdateProgressUseCase struct {
	projectRepo adapter.ProjectRepository
	clock       adapter.Clock
}

// NewUpdateProgressUseCase creates a new UpdateProgressUseCase instance.
func NewUpdateProgressUseCase(projectRepo adapter.ProjectRepository, clock adapter.Clock) *UpdateProgressUseCase {
	return &UpdateProgressUseCase{
		projectRepo: projectRepo,
		clock:       clock,
	}
}

// Execute performs the progress update.
func (uc *UpdateProgressUseCase) Execute(ctx context.Context, input UpdateProgressInput) (*UpdateProgressOutput, error) {
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

	project.SetProgress(input.Progress, uc.clock.Now())

	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return &UpdateProgressOutput{
		Project: project,
	}, nil
}
