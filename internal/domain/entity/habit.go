// Package entity defines the core business entities for the domain layer.
package entity

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
)

// DateKeyLayout is the calendar-date key format used for completion marks.
const DateKeyLayout = "2006-01-02"

// DefaultHabitCategory is assigned when no category is supplied.
const DefaultHabitCategory = "General"

// habitPalette is the fixed color palette for habits. Colors are assigned
// round-robin by creation index.
var habitPalette = []string{
	"#6366F1", // indigo
	"#10B981", // emerald
	"#F59E0B", // amber
	"#EF4444", // red
	"#8B5CF6", // violet
	"#06B6D4", // cyan
	"#EC4899", // pink
	"#84CC16", // lime
}

// HabitColorForIndex returns the palette color for the given creation index.
func HabitColorForIndex(index int) string {
	if index < 0 {
		index = -index
	}
	return habitPalette[index%len(habitPalette)]
}

// DateSet is a set of calendar-date keys (YYYY-MM-DD). Presence is boolean:
// a date is either in the set or not, so multiple completions on the same
// day are not representable. The JSON form is a sorted array of keys.
type DateSet map[string]struct{}

// NewDateSet creates a DateSet from the given keys.
func NewDateSet(keys ...string) DateSet {
	s := make(DateSet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether the set contains the given date key.
func (s DateSet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Toggle flips the presence of the given date key and reports whether the
// key is present after the flip. Two toggles restore the original set.
func (s DateSet) Toggle(key string) bool {
	if _, ok := s[key]; ok {
		delete(s, key)
		return false
	}
	s[key] = struct{}{}
	return true
}

// Len returns the number of keys in the set.
func (s DateSet) Len() int {
	return len(s)
}

// Keys returns the date keys in ascending order.
func (s DateSet) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy of the set.
func (s DateSet) Clone() DateSet {
	c := make(DateSet, len(s))
	for k := range s {
		c[k] = struct{}{}
	}
	return c
}

// MarshalJSON encodes the set as a sorted array of date keys.
func (s DateSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Keys())
}

// UnmarshalJSON decodes an array of date keys, dropping duplicates.
func (s *DateSet) UnmarshalJSON(data []byte) error {
	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	*s = NewDateSet(keys...)
	return nil
}

// Habit represents a recurring habit in the Habit Tracker system.
type Habit struct {
	ID          uuid.UUID
	Name        string
	Category    string
	Color       string
	Completions DateSet
	CreatedAt   time.Time
}

// NewHabit creates a new Habit entity. The color is assigned round-robin
// from the fixed palette by creation index. Defaulting of the category is
// the Application layer's responsibility.
func NewHabit(name, category string, creationIndex int, now time.Time) *Habit {
	return &Habit{
		ID:          uuid.New(),
		Name:        name,
		Category:    category,
		Color:       HabitColorForIndex(creationIndex),
		Completions: make(DateSet),
		CreatedAt:   now,
	}
}

// ToggleCompletion flips the completion mark for the given date key and
// reports whether the habit is completed for that date after the flip.
func (h *Habit) ToggleCompletion(key string) bool {
	if h.Completions == nil {
		h.Completions = make(DateSet)
	}
	return h.Completions.Toggle(key)
}
