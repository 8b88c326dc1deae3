// Package project contains project-related use cases.
package project

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// fixedClock pins time for deterministic start and end dates.
type fixedClock struct {
	instant time.Time
}

func (c fixedClock) Now() time.Time {
	return c.instant
}

// memProjectRepo is an in-memory ProjectRepository keeping insertion order.
type memProjectRepo struct {
	projects []*entity.Project
}

func (r *memProjectRepo) Create(_ context.Context, project *entity.Project) error {
	r.projects = append(r.projects, project)
	return nil
}

func (r *memProjectRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Project, error) {
	for _, p := range r.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domainerror.ErrProjectNotFound
}

func (r *memProjectRepo) FindAll(_ context.Context) ([]*entity.Project, error) {
	return r.projects, nil
}

func (r *memProjectRepo) Update(_ context.Context, project *entity.Project) error {
	for i, p := range r.projects {
		if p.ID == project.ID {
			r.projects[i] = project
			return nil
		}
	}
	return domainerror.ErrProjectNotFound
}

func (r *memProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, p := range r.projects {
		if p.ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrProjectNotFound
}
