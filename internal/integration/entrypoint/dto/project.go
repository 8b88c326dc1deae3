// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CreateProjectRequest represents the request body for project creation.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateProjectRequest represents the request body for project update.
type UpdateProjectRequest struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Tasks       *[]TaskPayload `json:"tasks"`
}

// UpdateProgressRequest represents the request body for a progress update.
// The slider control clamps the value to [0,100] before it gets here.
type UpdateProgressRequest struct {
	Progress int `json:"progress"`
}

// TaskPayload represents a project subtask in requests and responses.
type TaskPayload struct {
	Name        string  `json:"name"`
	Completed   bool    `json:"completed"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

// ProjectResponse represents a project in API responses. Status is derived
// from progress at response time.
type ProjectResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      string        `json:"status"`
	Progress    int           `json:"progress"`
	StartDate   string        `json:"start_date"`
	EndDate     *string       `json:"end_date,omitempty"`
	Tasks       []TaskPayload `json:"tasks"`
}

// ProjectListResponse represents the response for listing projects.
type ProjectListResponse struct {
	Data []ProjectResponse `json:"data"`
}

// ToProjectResponse converts a domain Project entity to a ProjectResponse DTO.
func ToProjectResponse(project *entity.Project) ProjectResponse {
	var endDate *string
	if project.EndDate != nil {
		s := project.EndDate.Format(time.RFC3339)
		endDate = &s
	}

	tasks := make([]TaskPayload, len(project.Tasks))
	for i, task := range project.Tasks {
		tasks[i] = TaskPayload{
			Name:      task.Name,
			Completed: task.Completed,
		}
		if task.CompletedAt != nil {
			s := task.CompletedAt.Format(time.RFC3339)
			tasks[i].CompletedAt = &s
		}
	}

	return ProjectResponse{
		ID:          project.ID.String(),
		Name:        project.Name,
		Description: project.Description,
		Status:      string(project.Status()),
		Progress:    project.Progress,
		StartDate:   project.StartDate.Format(time.RFC3339),
		EndDate:     endDate,
		Tasks:       tasks,
	}
}

// ToProjectListResponse converts domain Project entities to a ProjectListResponse DTO.
func ToProjectListResponse(projects []*entity.Project) ProjectListResponse {
	data := make([]ProjectResponse, len(projects))
	for i, project := range projects {
		data[i] = ToProjectResponse(project)
	}
	return ProjectListResponse{Data: data}
}

// TasksFromPayload converts task payloads to domain tasks.
func TasksFromPayload(payloads []TaskPayload) []entity.Task {
	tasks := make([]entity.Task, len(payloads))
	for i, payload := range payloads {
		tasks[i] = entity.Task{
			Name:      payload.Name,
			Completed: payload.Completed,
		}
		if payload.CompletedAt != nil {
			if t, err := time.Parse(time.RFC3339, *payload.CompletedAt); err == nil {
				tasks[i].CompletedAt = &t
			}
		}
	}
	return tasks
}
