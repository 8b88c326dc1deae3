// Package entity defines the core business entities for the domain layer.
package entity

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestDateSet_Toggle(t *testing.T) {
	t.Run("adds an absent key", func(t *testing.T) {
		s := NewDateSet()
		if !s.Toggle("2026-03-01") {
			t.Error("expected toggle of absent key to report present")
		}
		if !s.Has("2026-03-01") {
			t.Error("expected key to be present after toggle")
		}
	})

	t.Run("removes a present key", func(t *testing.T) {
		s := NewDateSet("2026-03-01")
		if s.Toggle("2026-03-01") {
			t.Error("expected toggle of present key to report absent")
		}
		if s.Has("2026-03-01") {
			t.Error("expected key to be absent after toggle")
		}
	})

	t.Run("two toggles restore the original set", func(t *testing.T) {
		s := NewDateSet("2026-01-01", "2026-01-02")
		s.Toggle("2026-01-03")
		s.Toggle("2026-01-03")
		want := []string{"2026-01-01", "2026-01-02"}
		if got := s.Keys(); !reflect.DeepEqual(got, want) {
			t.Errorf("expected keys %v, got %v", want, got)
		}
	})
}

func TestDateSet_Keys(t *testing.T) {
	s := NewDateSet("2026-02-10", "2025-12-31", "2026-01-01")
	want := []string{"2025-12-31", "2026-01-01", "2026-02-10"}
	if got := s.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected sorted keys %v, got %v", want, got)
	}
}

func TestDateSet_JSON(t *testing.T) {
	t.Run("marshals as a sorted array", func(t *testing.T) {
		s := NewDateSet("2026-03-02", "2026-03-01")
		data, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `["2026-03-01","2026-03-02"]`
		if string(data) != want {
			t.Errorf("expected %s, got %s", want, string(data))
		}
	})

	t.Run("unmarshals dropping duplicates", func(t *testing.T) {
		var s DateSet
		if err := json.Unmarshal([]byte(`["2026-03-01","2026-03-01","2026-03-02"]`), &s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Len() != 2 {
			t.Errorf("expected 2 keys, got %d", s.Len())
		}
	})

	t.Run("empty set marshals as an empty array", func(t *testing.T) {
		data, err := json.Marshal(NewDateSet())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != "[]" {
			t.Errorf("expected [], got %s", string(data))
		}
	})
}

func TestDateSet_Clone(t *testing.T) {
	s := NewDateSet("2026-03-01")
	c := s.Clone()
	c.Toggle("2026-03-02")

	if s.Has("2026-03-02") {
		t.Error("expected clone mutation to leave the original untouched")
	}
}

func TestHabitColorForIndex(t *testing.T) {
	t.Run("wraps around the palette", func(t *testing.T) {
		if HabitColorForIndex(0) != HabitColorForIndex(8) {
			t.Error("expected index 8 to wrap to the first palette color")
		}
		if HabitColorForIndex(3) != HabitColorForIndex(11) {
			t.Error("expected index 11 to wrap to the fourth palette color")
		}
	})

	t.Run("first color is indigo", func(t *testing.T) {
		if got := HabitColorForIndex(0); got != "#6366F1" {
			t.Errorf("expected #6366F1, got %s", got)
		}
	})
}

func TestNewHabit(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	habit := NewHabit("Read", "Learning", 2, now)

	if habit.ID == uuid.Nil {
		t.Error("expected a non-zero habit ID")
	}
	if habit.Name != "Read" {
		t.Errorf("expected name Read, got %s", habit.Name)
	}
	if habit.Color != HabitColorForIndex(2) {
		t.Errorf("expected color for index 2, got %s", habit.Color)
	}
	if habit.Completions.Len() != 0 {
		t.Error("expected a new habit to start with no completions")
	}
	if !habit.CreatedAt.Equal(now) {
		t.Errorf("expected created at %v, got %v", now, habit.CreatedAt)
	}
}

func TestHabit_ToggleCompletion(t *testing.T) {
	habit := NewHabit("Run", DefaultHabitCategory, 0, time.Now())

	if !habit.ToggleCompletion("2026-03-01") {
		t.Error("expected first toggle to mark the date completed")
	}
	if habit.ToggleCompletion("2026-03-01") {
		t.Error("expected second toggle to clear the date")
	}

	t.Run("initializes a nil completion set", func(t *testing.T) {
		h := &Habit{}
		if !h.ToggleCompletion("2026-03-01") {
			t.Error("expected toggle on nil set to mark the date completed")
		}
	})
}
