// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// HabitModel represents the habits table in the database. The completion
// set is stored as a JSON array of YYYY-MM-DD keys; the seq column carries
// insertion order so listings are stable even when rows share a timestamp.
type HabitModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq         int64     `gorm:"autoIncrement;uniqueIndex"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Category    string    `gorm:"type:varchar(50);not null;default:'General'"`
	Color       string    `gorm:"type:varchar(7);not null"`
	Completions string    `gorm:"type:text;not null;default:'[]'"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the HabitModel.
func (HabitModel) TableName() string {
	return "habits"
}

// ToEntity converts a HabitModel to a domain Habit entity.
func (m *HabitModel) ToEntity() *entity.Habit {
	var completions entity.DateSet
	if m.Completions != "" {
		if err := json.Unmarshal([]byte(m.Completions), &completions); err != nil {
			slog.Warn("Failed to unmarshal habit completions", "error", err, "id", m.ID)
		}
	}
	if completions == nil {
		completions = make(entity.DateSet)
	}

	return &entity.Habit{
		ID:          m.ID,
		Name:        m.Name,
		Category:    m.Category,
		Color:       m.Color,
		Completions: completions,
		CreatedAt:   m.CreatedAt,
	}
}

// HabitFromEntity creates a HabitModel from a domain Habit entity.
func HabitFromEntity(habit *entity.Habit) *HabitModel {
	completionsJSON, err := json.Marshal(habit.Completions)
	if err != nil {
		slog.Error("Failed to marshal habit completions", "error", err, "habit_id", habit.ID)
		completionsJSON = []byte("[]")
	}

	return &HabitModel{
		ID:          habit.ID,
		Name:        habit.Name,
		Category:    habit.Category,
		Color:       habit.Color,
		Completions: string(completionsJSON),
		CreatedAt:   habit.CreatedAt,
	}
}
