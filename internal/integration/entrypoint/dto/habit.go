// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CreateHabitRequest represents the request body for habit creation.
type CreateHabitRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// UpdateHabitRequest represents the request body for habit update.
type UpdateHabitRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
}

// HabitResponse represents a habit in API responses. Completions are the
// sorted calendar-date keys the habit was marked done on.
type HabitResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Color       string   `json:"color"`
	Completions []string `json:"completions"`
	CreatedAt   string   `json:"created_at"`
}

// HabitListResponse represents the response for listing habits.
type HabitListResponse struct {
	Data []HabitResponse `json:"data"`
}

// ToggleCompletionResponse represents the response of a completion toggle.
type ToggleCompletionResponse struct {
	Data ToggleCompletionData `json:"data"`
}

// ToggleCompletionData represents the data section of a toggle response.
type ToggleCompletionData struct {
	Habit     HabitResponse `json:"habit"`
	Date      string        `json:"date"`
	Completed bool          `json:"completed"`
}

// ToHabitResponse converts a domain Habit entity to a HabitResponse DTO.
func ToHabitResponse(habit *entity.Habit) HabitResponse {
	return HabitResponse{
		ID:          habit.ID.String(),
		Name:        habit.Name,
		Category:    habit.Category,
		Color:       habit.Color,
		Completions: habit.Completions.Keys(),
		CreatedAt:   habit.CreatedAt.Format(time.RFC3339),
	}
}

// ToHabitListResponse converts domain Habit entities to a HabitListResponse DTO.
func ToHabitListResponse(habits []*entity.Habit) HabitListResponse {
	data := make([]HabitResponse, len(habits))
	for i, habit := range habits {
		data[i] = ToHabitResponse(habit)
	}
	return HabitListResponse{Data: data}
}
