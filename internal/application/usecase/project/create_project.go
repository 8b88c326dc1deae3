// Package project contains project-related use cases.
package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CreateProjectInput represents the input for project creation.
type CreateProjectInput struct {
	Name        string
	Description string
}

// CreateProjectOutput represents the output of project creation.
type CreateProjectOutput struct {
	Project *entity.Project
}

// CreateProjectUseCase handles project creation logic.
type CreateProjectUseCase struct {
	projectRepo adapter.ProjectRepository
	clock       adapter.Clock
}

// NewCreateProjectUseCase creates a new CreateProjectUseCase instance.
func NewCreateProjectUseCase(projectRepo adapter.ProjectRepository, clock adapter.Clock) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: projectRepo,
		clock:       clock,
	}
}

// Execute performs the project creation. A blank or whitespace-only name is
// a silent no-op: no entity is created and no error is surfaced. Callers
// detect the no-op by a nil output.
func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, nil
	}

	project := entity.NewProject(name, strings.TrimSpace(input.Description), uc.clock.Now())

	if err := uc.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return &CreateProjectOutput{
		Project: project,
	}, nil
}
