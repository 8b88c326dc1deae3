// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus represents the lifecycle stage of a project. It is always
// derived from progress and never stored as an independent source of truth.
type ProjectStatus string

const (
	ProjectStatusNotStarted ProjectStatus = "not-started"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// StatusForProgress derives the project status from a progress value.
// Out-of-range values are not rejected here; range enforcement belongs to
// the input boundary.
func StatusForProgress(progress int) ProjectStatus {
	switch {
	case progress <= 0:
		return ProjectStatusNotStarted
	case progress >= 100:
		return ProjectStatusCompleted
	default:
		return ProjectStatusInProgress
	}
}

// Task is a project subtask. Tasks are carried on the project as opaque
// data and are never consumed by the aggregation engine.
type Task struct {
	Name        string     `json:"name"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Project represents a tracked project in the Habit Tracker system.
type Project struct {
	ID          uuid.UUID
	Name        string
	Description string
	Progress    int
	StartDate   time.Time
	EndDate     *time.Time
	Tasks       []Task
}

// NewProject creates a new Project entity.
func NewProject(name, description string, now time.Time) *Project {
	return &Project{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Progress:    0,
		StartDate:   now,
		Tasks:       []Task{},
	}
}

// Status derives the current status from progress.
func (p *Project) Status() ProjectStatus {
	return StatusForProgress(p.Progress)
}

// SetProgress updates the progress value. Reaching 100 stamps the end date
// with the given instant; this happens on every call that sets progress to
// 100, including when it already was 100. Dropping below 100 leaves a
// previously stamped end date untouched.
func (p *Project) SetProgress(progress int, now time.Time) {
	p.Progress = progress
	if progress >= 100 {
		end := now
		p.EndDate = &end
	}
}
