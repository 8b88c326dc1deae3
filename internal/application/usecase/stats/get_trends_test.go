package stats

import (
	"context"
	"testing"
	"time"
)

func TestGetTrends(t *testing.T) {
	now := time.Date(2026, 3, 4, 18, 0, 0, 0, time.UTC)

	t.Run("series length follows the granularity span", func(t *testing.T) {
		uc := NewGetTrendsUseCase(&memHabitRepo{}, fixedClock{now})

		tests := []struct {
			granularity Granularity
			want        int
		}{
			{GranularityDay, 1},
			{GranularityWeek, 7},
			{GranularityMonth, 30},
			{GranularityYear, 365},
		}
		for _, tt := range tests {
			output, err := uc.Execute(context.Background(), GetTrendsInput{Granularity: tt.granularity})
			if err != nil {
				t.Fatalf("unexpected error for %s: %v", tt.granularity, err)
			}
			if len(output.Points) != tt.want {
				t.Errorf("expected %d points for %s, got %d", tt.want, tt.granularity, len(output.Points))
			}
		}
	})

	t.Run("series ends today and ascends day by day", func(t *testing.T) {
		uc := NewGetTrendsUseCase(&memHabitRepo{}, fixedClock{now})

		output, err := uc.Execute(context.Background(), GetTrendsInput{Granularity: GranularityWeek})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		today := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
		last := output.Points[len(output.Points)-1]
		if !last.Date.Equal(today) {
			t.Errorf("expected last point %v, got %v", today, last.Date)
		}
		for i := 1; i < len(output.Points); i++ {
			prev := output.Points[i-1].Date
			if !output.Points[i].Date.Equal(prev.AddDate(0, 0, 1)) {
				t.Errorf("expected consecutive days, got %v after %v", output.Points[i].Date, prev)
			}
		}
	})

	t.Run("counts habits completed per day including zero days", func(t *testing.T) {
		repo := &memHabitRepo{}
		repo.habits = append(repo.habits,
			habitWithCompletions("Read", "Learning", 0, "2026-03-03", "2026-03-04"),
			habitWithCompletions("Run", "Health", 1, "2026-03-04"),
		)
		uc := NewGetTrendsUseCase(repo, fixedClock{now})

		output, err := uc.Execute(context.Background(), GetTrendsInput{Granularity: GranularityWeek})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Feb 26 through Mar 4
		wantCounts := []int{0, 0, 0, 0, 0, 1, 2}
		for i, want := range wantCounts {
			if output.Points[i].Completions != want {
				t.Errorf("expected point %d completions %d, got %d", i, want, output.Points[i].Completions)
			}
		}
	})

	t.Run("a habit counts at most once per day", func(t *testing.T) {
		repo := &memHabitRepo{}
		repo.habits = append(repo.habits,
			habitWithCompletions("Read", "Learning", 0, "2026-03-04"),
		)
		uc := NewGetTrendsUseCase(repo, fixedClock{now})

		output, err := uc.Execute(context.Background(), GetTrendsInput{Granularity: GranularityDay})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Points[0].Completions != 1 {
			t.Errorf("expected 1 completion, got %d", output.Points[0].Completions)
		}
	})

	t.Run("labels use month abbreviation for year granularity", func(t *testing.T) {
		uc := NewGetTrendsUseCase(&memHabitRepo{}, fixedClock{now})

		output, err := uc.Execute(context.Background(), GetTrendsInput{Granularity: GranularityYear})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		last := output.Points[len(output.Points)-1]
		if last.Label != "Mar" {
			t.Errorf("expected label Mar, got %s", last.Label)
		}

		output, err = uc.Execute(context.Background(), GetTrendsInput{Granularity: GranularityWeek})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		last = output.Points[len(output.Points)-1]
		if last.Label != "Mar 4" {
			t.Errorf("expected label Mar 4, got %s", last.Label)
		}
	})
}
