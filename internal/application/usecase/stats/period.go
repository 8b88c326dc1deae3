// Package stats contains the temporal aggregation engine: pure
// transformations from raw habit and project collections into
// time-windowed derived metrics.
package stats

import (
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// Granularity represents the selected aggregation window size.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// lookbackDays maps a granularity to the trend series span in days.
var lookbackDays = map[Granularity]int{
	GranularityDay:   1,
	GranularityWeek:  7,
	GranularityMonth: 30,
	GranularityYear:  365,
}

// ParseGranularity validates a granularity selector string.
func ParseGranularity(s string) (Granularity, error) {
	g := Granularity(s)
	if _, ok := lookbackDays[g]; !ok {
		return "", domainerror.NewStatsError(
			domainerror.ErrCodeInvalidGranularity,
			"granularity must be: day, week, month, or year",
			domainerror.ErrInvalidGranularity,
		)
	}
	return g, nil
}

// LookbackDays returns the trend series span for the given granularity.
func LookbackDays(g Granularity) int {
	return lookbackDays[g]
}

// PeriodBounds returns the inclusive [start, end] calendar interval
// containing the given instant for the given granularity. Both bounds are
// truncated to midnight; date keys are compared at day precision. The
// result is recomputed on every call since "now" moves between calls.
func PeriodBounds(now time.Time, g Granularity) (start, end time.Time) {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	switch g {
	case GranularityWeek:
		start = weekStart(today)
		end = start.AddDate(0, 0, 6)
	case GranularityMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 1, -1)
	case GranularityYear:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
		end = time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, loc)
	default:
		// day: the interval collapses to today
		start = today
		end = today
	}
	return start, end
}

// weekStart returns the Monday of the week containing the given date.
func weekStart(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	daysFromMonday := weekday - 1
	return time.Date(date.Year(), date.Month(), date.Day()-daysFromMonday, 0, 0, 0, 0, date.Location())
}

// ParseDateKey parses a YYYY-MM-DD completion key. A malformed key aborts
// the aggregation pass that encountered it; no best-effort skip is made.
func ParseDateKey(key string) (time.Time, error) {
	d, err := time.Parse(entity.DateKeyLayout, key)
	if err != nil {
		return time.Time{}, domainerror.NewStatsError(
			domainerror.ErrCodeInvalidDateKey,
			"completion date key is not a valid YYYY-MM-DD date",
			err,
		)
	}
	return d, nil
}

// DateKeyInPeriod reports whether the given date key falls within
// [start, end] inclusive. The comparison happens at day precision on the
// key strings themselves, which sort chronologically, so the bounds'
// location never skews membership.
func DateKeyInPeriod(key string, start, end time.Time) (bool, error) {
	if _, err := ParseDateKey(key); err != nil {
		return false, err
	}
	startKey := start.Format(entity.DateKeyLayout)
	endKey := end.Format(entity.DateKeyLayout)
	return key >= startKey && key <= endKey, nil
}

// DayLabel generates the short display label for a trend bucket. Year
// granularity compresses to the abbreviated month name, so labels repeat
// across days of the same month; every other granularity uses abbreviated
// month plus day.
func DayLabel(date time.Time, g Granularity) string {
	if g == GranularityYear {
		return date.Format("Jan")
	}
	return date.Format("Jan 2")
}
