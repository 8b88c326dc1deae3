// Package stats contains the temporal aggregation engine.
package stats

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/habit-tracker/backend/internal/application/adapter"
)

// GetCategoryBreakdownInput represents the input for getting the category breakdown.
type GetCategoryBreakdownInput struct {
	Granularity Granularity
}

// CategoryBreakdownItem represents one category's share of window completions.
type CategoryBreakdownItem struct {
	Category    string
	Completions int
	Percentage  float64
}

// GetCategoryBreakdownOutput represents the output of getting the category breakdown.
type GetCategoryBreakdownOutput struct {
	Period           StatsPeriod
	TotalCompletions int
	Categories       []CategoryBreakdownItem
}

// GetCategoryBreakdownUseCase sums completion counts per habit category
// within the resolved window. Categories with a zero total are omitted and
// output follows first-seen category order across the habit collection.
type GetCategoryBreakdownUseCase struct {
	habitRepo adapter.HabitRepository
	clock     adapter.Clock
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(habitRepo adapter.HabitRepository, clock adapter.Clock) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		habitRepo: habitRepo,
		clock:     clock,
	}
}

// Execute computes the per-category completion breakdown for the given granularity.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	granularity, err := ParseGranularity(string(input.Granularity))
	if err != nil {
		return nil, err
	}

	habits, err := uc.habitRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	start, end := PeriodBounds(uc.clock.Now(), granularity)

	var order []string
	totals := make(map[string]int)
	windowTotal := 0

	for _, habit := range habits {
		if _, seen := totals[habit.Category]; !seen {
			order = append(order, habit.Category)
			totals[habit.Category] = 0
		}
		for _, key := range habit.Completions.Keys() {
			in, err := DateKeyInPeriod(key, start, end)
			if err != nil {
				return nil, err
			}
			if in {
				totals[habit.Category]++
				windowTotal++
			}
		}
	}

	categories := make([]CategoryBreakdownItem, 0, len(order))
	for _, name := range order {
		count := totals[name]
		if count == 0 {
			continue
		}

		var percentage float64
		if windowTotal > 0 {
			pct := decimal.NewFromInt(int64(count)).
				Mul(decimal.NewFromInt(100)).
				Div(decimal.NewFromInt(int64(windowTotal)))
			percentage, _ = pct.Round(2).Float64()
		}

		categories = append(categories, CategoryBreakdownItem{
			Category:    name,
			Completions: count,
			Percentage:  percentage,
		})
	}

	return &GetCategoryBreakdownOutput{
		Period: StatsPeriod{
			StartDate:   start,
			EndDate:     end,
			Granularity: granularity,
		},
		TotalCompletions: windowTotal,
		Categories:       categories,
	}, nil
}
