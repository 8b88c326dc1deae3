// Package stats contains the temporal aggregation engine.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
)

// GetHabitStatsInput represents the input for getting per-habit stats.
type GetHabitStatsInput struct {
	Granularity Granularity
}

// HabitStatItem represents one habit's completion count within the window.
type HabitStatItem struct {
	HabitID         uuid.UUID
	Name            string
	Color           string
	CompletionCount int
}

// StatsPeriod represents the resolved window of a stats query.
type StatsPeriod struct {
	StartDate   time.Time
	EndDate     time.Time
	Granularity Granularity
}

// GetHabitStatsOutput represents the output of getting per-habit stats.
type GetHabitStatsOutput struct {
	Period StatsPeriod
	Stats  []HabitStatItem
}

// GetHabitStatsUseCase counts each habit's completions inside the resolved
// time window. Habits are reported in insertion order and zero-count
// habits are kept.
type GetHabitStatsUseCase struct {
	habitRepo adapter.HabitRepository
	clock     adapter.Clock
}

// NewGetHabitStatsUseCase creates a new GetHabitStatsUseCase instance.
func NewGetHabitStatsUseCase(habitRepo adapter.HabitRepository, clock adapter.Clock) *GetHabitStatsUseCase {
	return &GetHabitStatsUseCase{
		habitRepo: habitRepo,
		clock:     clock,
	}
}

// Execute computes completion counts per habit for the given granularity.
func (uc *GetHabitStatsUseCase) Execute(ctx context.Context, input GetHabitStatsInput) (*GetHabitStatsOutput, error) {
	granularity, err := ParseGranularity(string(input.Granularity))
	if err != nil {
		return nil, err
	}

	habits, err := uc.habitRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	start, end := PeriodBounds(uc.clock.Now(), granularity)

	items := make([]HabitStatItem, 0, len(habits))
	for _, habit := range habits {
		count := 0
		for _, key := range habit.Completions.Keys() {
			in, err := DateKeyInPeriod(key, start, end)
			if err != nil {
				return nil, err
			}
			if in {
				count++
			}
		}
		items = append(items, HabitStatItem{
			HabitID:         habit.ID,
			Name:            habit.Name,
			Color:           habit.Color,
			CompletionCount: count,
		})
	}

	return &GetHabitStatsOutput{
		Period: StatsPeriod{
			StartDate:   start,
			EndDate:     end,
			Granularity: granularity,
		},
		Stats: items,
	}, nil
}
