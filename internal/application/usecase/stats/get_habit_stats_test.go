package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

func TestGetHabitStats(t *testing.T) {
	// Thursday, January 1st 2026; the containing week is Dec 29 - Jan 4
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("counts only completions inside the window", func(t *testing.T) {
		repo := &memHabitRepo{}
		repo.habits = append(repo.habits,
			habitWithCompletions("Read", "Learning", 0,
				"2026-01-01", "2026-01-02", "2026-01-03"),
		)
		uc := NewGetHabitStatsUseCase(repo, fixedClock{now})

		// A week window starting Monday Dec 29 ends Sunday Jan 4, so all
		// three keys land inside; shrink to day to cut it down to one.
		output, err := uc.Execute(context.Background(), GetHabitStatsInput{Granularity: GranularityDay})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := output.Stats[0].CompletionCount; got != 1 {
			t.Errorf("expected 1 completion in the day window, got %d", got)
		}

		output, err = uc.Execute(context.Background(), GetHabitStatsInput{Granularity: GranularityWeek})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := output.Stats[0].CompletionCount; got != 3 {
			t.Errorf("expected 3 completions in the week window, got %d", got)
		}
	})

	t.Run("keeps zero-count habits in insertion order", func(t *testing.T) {
		repo := &memHabitRepo{}
		repo.habits = append(repo.habits,
			habitWithCompletions("Read", "Learning", 0, "2026-01-01"),
			habitWithCompletions("Run", "Health", 1),
			habitWithCompletions("Write", "Learning", 2, "2025-06-15"),
		)
		uc := NewGetHabitStatsUseCase(repo, fixedClock{now})

		output, err := uc.Execute(context.Background(), GetHabitStatsInput{Granularity: GranularityWeek})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Stats) != 3 {
			t.Fatalf("expected 3 stat items, got %d", len(output.Stats))
		}
		wantNames := []string{"Read", "Run", "Write"}
		wantCounts := []int{1, 0, 0}
		for i, item := range output.Stats {
			if item.Name != wantNames[i] {
				t.Errorf("expected item %d to be %s, got %s", i, wantNames[i], item.Name)
			}
			if item.CompletionCount != wantCounts[i] {
				t.Errorf("expected %s count %d, got %d", item.Name, wantCounts[i], item.CompletionCount)
			}
		}
	})

	t.Run("carries the habit color through", func(t *testing.T) {
		repo := &memHabitRepo{}
		h := habitWithCompletions("Read", "Learning", 3)
		repo.habits = append(repo.habits, h)
		uc := NewGetHabitStatsUseCase(repo, fixedClock{now})

		output, err := uc.Execute(context.Background(), GetHabitStatsInput{Granularity: GranularityMonth})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Stats[0].Color != entity.HabitColorForIndex(3) {
			t.Errorf("expected color %s, got %s", entity.HabitColorForIndex(3), output.Stats[0].Color)
		}
	})

	t.Run("reports the resolved period", func(t *testing.T) {
		uc := NewGetHabitStatsUseCase(&memHabitRepo{}, fixedClock{now})

		output, err := uc.Execute(context.Background(), GetHabitStatsInput{Granularity: GranularityWeek})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantStart := time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)
		if !output.Period.StartDate.Equal(wantStart) {
			t.Errorf("expected period start %v, got %v", wantStart, output.Period.StartDate)
		}
		if !output.Period.EndDate.Equal(wantEnd) {
			t.Errorf("expected period end %v, got %v", wantEnd, output.Period.EndDate)
		}
	})

	t.Run("rejects an invalid granularity", func(t *testing.T) {
		uc := NewGetHabitStatsUseCase(&memHabitRepo{}, fixedClock{now})

		_, err := uc.Execute(context.Background(), GetHabitStatsInput{Granularity: "fortnight"})
		var statsErr *domainerror.StatsError
		if !errors.As(err, &statsErr) || statsErr.Code != domainerror.ErrCodeInvalidGranularity {
			t.Errorf("expected invalid granularity error, got %v", err)
		}
	})

	t.Run("a malformed stored key aborts the pass", func(t *testing.T) {
		repo := &memHabitRepo{}
		repo.habits = append(repo.habits,
			habitWithCompletions("Read", "Learning", 0, "2026-01-01", "garbage"),
		)
		uc := NewGetHabitStatsUseCase(repo, fixedClock{now})

		_, err := uc.Execute(context.Background(), GetHabitStatsInput{Granularity: GranularityWeek})
		var statsErr *domainerror.StatsError
		if !errors.As(err, &statsErr) || statsErr.Code != domainerror.ErrCodeInvalidDateKey {
			t.Errorf("expected invalid date key error, got %v", err)
		}
	})
}
