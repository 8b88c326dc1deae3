// Package model defines database models for persistence layer.
package model

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ProjectModel represents the projects table in the database. Status is
// intentionally absent: it is derived from progress on every read, never
// stored, so the two can not diverge. Tasks are an opaque JSON payload.
type ProjectModel struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Seq         int64        `gorm:"autoIncrement;uniqueIndex"`
	Name        string       `gorm:"type:varchar(100);not null"`
	Description string       `gorm:"type:text"`
	Progress    int          `gorm:"not null;default:0"`
	StartDate   time.Time    `gorm:"not null"`
	EndDate     sql.NullTime `gorm:"type:timestamptz"`
	Tasks       string       `gorm:"type:text;not null;default:'[]'"`
}

// TableName returns the table name for the ProjectModel.
func (ProjectModel) TableName() string {
	return "projects"
}

// ToEntity converts a ProjectModel to a domain Project entity.
func (m *ProjectModel) ToEntity() *entity.Project {
	var tasks []entity.Task
	if m.Tasks != "" {
		if err := json.Unmarshal([]byte(m.Tasks), &tasks); err != nil {
			slog.Warn("Failed to unmarshal project tasks", "error", err, "id", m.ID)
		}
	}
	if tasks == nil {
		tasks = []entity.Task{}
	}

	var endDate *time.Time
	if m.EndDate.Valid {
		endDate = &m.EndDate.Time
	}

	return &entity.Project{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Progress:    m.Progress,
		StartDate:   m.StartDate,
		EndDate:     endDate,
		Tasks:       tasks,
	}
}

// ProjectFromEntity creates a ProjectModel from a domain Project entity.
func ProjectFromEntity(project *entity.Project) *ProjectModel {
	tasksJSON, err := json.Marshal(project.Tasks)
	if err != nil {
		slog.Error("Failed to marshal project tasks", "error", err, "project_id", project.ID)
		tasksJSON = []byte("[]")
	}

	var endDate sql.NullTime
	if project.EndDate != nil {
		endDate = sql.NullTime{Time: *project.EndDate, Valid: true}
	}

	return &ProjectModel{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Progress:    project.Progress,
		StartDate:   project.StartDate,
		EndDate:     endDate,
		Tasks:       string(tasksJSON),
	}
}
