// Package stats contains the temporal aggregation engine: pure
// transformations from raw habit and project collections into
// time-windowed derived metrics.
package stats

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

func TestParseGranularity(t *testing.T) {
	t.Run("accepts the four selectors", func(t *testing.T) {
		for _, s := range []string{"day", "week", "month", "year"} {
			g, err := ParseGranularity(s)
			if err != nil {
				t.Errorf("expected %s to parse, got error: %v", s, err)
			}
			if string(g) != s {
				t.Errorf("expected granularity %s, got %s", s, g)
			}
		}
	})

	t.Run("rejects unknown selectors", func(t *testing.T) {
		for _, s := range []string{"", "hour", "Week", "weekly"} {
			_, err := ParseGranularity(s)
			if err == nil {
				t.Errorf("expected %q to be rejected", s)
				continue
			}
			var statsErr *domainerror.StatsError
			if !errors.As(err, &statsErr) || statsErr.Code != domainerror.ErrCodeInvalidGranularity {
				t.Errorf("expected invalid granularity error for %q, got %v", s, err)
			}
		}
	})
}

func TestLookbackDays(t *testing.T) {
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
		if got := LookbackDays(tt.granularity); got != tt.want {
			t.Errorf("expected %d days for %s, got %d", tt.want, tt.granularity, got)
		}
	}
}

func TestPeriodBounds(t *testing.T) {
	// A Wednesday mid-afternoon
	now := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)

	t.Run("day collapses to today", func(t *testing.T) {
		start, end := PeriodBounds(now, GranularityDay)
		today := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
		if !start.Equal(today) || !end.Equal(today) {
			t.Errorf("expected [%v, %v], got [%v, %v]", today, today, start, end)
		}
	})

	t.Run("week runs Monday through Sunday", func(t *testing.T) {
		start, end := PeriodBounds(now, GranularityWeek)
		monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		sunday := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
		if !start.Equal(monday) {
			t.Errorf("expected week start %v, got %v", monday, start)
		}
		if !end.Equal(sunday) {
			t.Errorf("expected week end %v, got %v", sunday, end)
		}
	})

	t.Run("sunday belongs to the week that started the previous monday", func(t *testing.T) {
		sundayNow := time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)
		start, _ := PeriodBounds(sundayNow, GranularityWeek)
		monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		if !start.Equal(monday) {
			t.Errorf("expected week start %v, got %v", monday, start)
		}
	})

	t.Run("month runs first through last calendar day", func(t *testing.T) {
		start, end := PeriodBounds(now, GranularityMonth)
		first := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		last := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
		if !start.Equal(first) || !end.Equal(last) {
			t.Errorf("expected [%v, %v], got [%v, %v]", first, last, start, end)
		}
	})

	t.Run("february end accounts for short months", func(t *testing.T) {
		febNow := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
		_, end := PeriodBounds(febNow, GranularityMonth)
		want := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
		if !end.Equal(want) {
			t.Errorf("expected month end %v, got %v", want, end)
		}
	})

	t.Run("year runs january first through december thirty-first", func(t *testing.T) {
		start, end := PeriodBounds(now, GranularityYear)
		jan1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		dec31 := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
		if !start.Equal(jan1) || !end.Equal(dec31) {
			t.Errorf("expected [%v, %v], got [%v, %v]", jan1, dec31, start, end)
		}
	})

	t.Run("bounds are truncated to midnight", func(t *testing.T) {
		for _, g := range []Granularity{GranularityDay, GranularityWeek, GranularityMonth, GranularityYear} {
			start, end := PeriodBounds(now, g)
			for _, b := range []time.Time{start, end} {
				h, m, s := b.Clock()
				if h != 0 || m != 0 || s != 0 {
					t.Errorf("expected midnight bound for %s, got %v", g, b)
				}
			}
		}
	})
}

func TestDateKeyInPeriod(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		key  string
		want bool
	}{
		{"start boundary is inclusive", "2026-03-02", true},
		{"end boundary is inclusive", "2026-03-08", true},
		{"interior day is in", "2026-03-05", true},
		{"day before start is out", "2026-03-01", false},
		{"day after end is out", "2026-03-09", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DateKeyInPeriod(tt.key, start, end)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v for key %s, got %v", tt.want, tt.key, got)
			}
		})
	}

	t.Run("malformed key is an error", func(t *testing.T) {
		for _, key := range []string{"not-a-date", "2026-13-01", "03/05/2026", ""} {
			_, err := DateKeyInPeriod(key, start, end)
			if err == nil {
				t.Errorf("expected error for key %q", key)
				continue
			}
			var statsErr *domainerror.StatsError
			if !errors.As(err, &statsErr) || statsErr.Code != domainerror.ErrCodeInvalidDateKey {
				t.Errorf("expected invalid date key error for %q, got %v", key, err)
			}
		}
	})

	t.Run("membership ignores the bounds' location", func(t *testing.T) {
		// Bounds in a UTC+14 location; key membership still compares at
		// day precision on the key strings.
		loc := time.FixedZone("UTC+14", 14*3600)
		lstart := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)
		lend := time.Date(2026, 3, 8, 0, 0, 0, 0, loc)

		got, err := DateKeyInPeriod("2026-03-02", lstart, lend)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got {
			t.Error("expected key on the start day to be a member")
		}
	})
}

func TestDayLabel(t *testing.T) {
	date := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	t.Run("year labels compress to the month", func(t *testing.T) {
		if got := DayLabel(date, GranularityYear); got != "Mar" {
			t.Errorf("expected Mar, got %s", got)
		}
	})

	t.Run("other granularities include the day", func(t *testing.T) {
		for _, g := range []Granularity{GranularityDay, GranularityWeek, GranularityMonth} {
			if got := DayLabel(date, g); got != "Mar 4" {
				t.Errorf("expected Mar 4 for %s, got %s", g, got)
			}
		}
	})
}
