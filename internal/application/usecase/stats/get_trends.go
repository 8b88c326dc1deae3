// Package stats contains the temporal aggregation engine.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// GetTrendsInput represents the input for getting the completion trend series.
type GetTrendsInput struct {
	Granularity Granularity
}

// TrendPoint represents a single day bucket in the trend series.
type TrendPoint struct {
	Date        time.Time
	Label       string
	Completions int
}

// GetTrendsOutput represents the output of getting the trend series.
type GetTrendsOutput struct {
	Granularity Granularity
	Points      []TrendPoint
}

// GetTrendsUseCase builds the daily bucketed completion series over a
// fixed lookback span ending today. The series is dense: exactly one point
// per day of the span, with zero-completion days included, so chart
// rendering never has gaps.
type GetTrendsUseCase struct {
	habitRepo adapter.HabitRepository
	clock     adapter.Clock
}

// NewGetTrendsUseCase creates a new GetTrendsUseCase instance.
func NewGetTrendsUseCase(habitRepo adapter.HabitRepository, clock adapter.Clock) *GetTrendsUseCase {
	return &GetTrendsUseCase{
		habitRepo: habitRepo,
		clock:     clock,
	}
}

// Execute builds the trend series for the given granularity.
func (uc *GetTrendsUseCase) Execute(ctx context.Context, input GetTrendsInput) (*GetTrendsOutput, error) {
	granularity, err := ParseGranularity(string(input.Granularity))
	if err != nil {
		return nil, err
	}

	habits, err := uc.habitRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	now := uc.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	span := LookbackDays(granularity)

	points := make([]TrendPoint, 0, span)
	for i := span - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		key := day.Format(entity.DateKeyLayout)

		total := 0
		for _, habit := range habits {
			if habit.Completions.Has(key) {
				total++
			}
		}

		points = append(points, TrendPoint{
			Date:        day,
			Label:       DayLabel(day, granularity),
			Completions: total,
		})
	}

	return &GetTrendsOutput{
		Granularity: granularity,
		Points:      points,
	}, nil
}
