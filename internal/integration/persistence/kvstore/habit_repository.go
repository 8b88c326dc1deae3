// Package kvstore implements the repository interfaces over Redis.
package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// habitRecord is the serialized form of a habit inside the habits array.
type habitRecord struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Category    string         `json:"category"`
	Color       string         `json:"color"`
	Completions entity.DateSet `json:"completions"`
	CreatedAt   time.Time      `json:"created_at"`
}

func habitRecordFromEntity(habit *entity.Habit) habitRecord {
	return habitRecord{
		ID:          habit.ID,
		Name:        habit.Name,
		Category:    habit.Category,
		Color:       habit.Color,
		Completions: habit.Completions,
		CreatedAt:   habit.CreatedAt,
	}
}

func (r habitRecord) toEntity() *entity.Habit {
	completions := r.Completions
	if completions == nil {
		completions = make(entity.DateSet)
	}
	return &entity.Habit{
		ID:          r.ID,
		Name:        r.Name,
		Category:    r.Category,
		Color:       r.Color,
		Completions: completions,
		CreatedAt:   r.CreatedAt,
	}
}

// habitRepository implements adapter.HabitRepository over the key-value store.
type habitRepository struct {
	store *Store
}

// NewHabitRepository creates a new key-value habit repository instance.
func NewHabitRepository(store *Store) adapter.HabitRepository {
	return &habitRepository{
		store: store,
	}
}

// load reads the full habits array. An absent key yields an empty slice.
func (r *habitRepository) load(ctx context.Context) ([]habitRecord, error) {
	raw, found, err := r.store.get(ctx, habitsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read habits: %w", err)
	}
	if !found {
		return []habitRecord{}, nil
	}

	var records []habitRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode habits: %w", err)
	}
	return records, nil
}

// save rewrites the full habits array.
func (r *habitRepository) save(ctx context.Context, records []habitRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode habits: %w", err)
	}
	if err := r.store.set(ctx, habitsKey, raw); err != nil {
		return fmt.Errorf("failed to write habits: %w", err)
	}
	return nil
}

// Create appends a new habit and rewrites the collection.
func (r *habitRepository) Create(ctx context.Context, habit *entity.Habit) error {
	records, err := r.load(ctx)
	if err != nil {
		return err
	}
	records = append(records, habitRecordFromEntity(habit))
	return r.save(ctx, records)
}

// FindByID retrieves a habit by its ID.
func (r *habitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if record.ID == id {
			return record.toEntity(), nil
		}
	}
	return nil, domainerror.ErrHabitNotFound
}

// FindAll retrieves all habits in array (insertion) order.
func (r *habitRepository) FindAll(ctx context.Context) ([]*entity.Habit, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	habits := make([]*entity.Habit, len(records))
	for i, record := range records {
		habits[i] = record.toEntity()
	}
	return habits, nil
}

// Count returns the number of habits in the collection.
func (r *habitRepository) Count(ctx context.Context) (int64, error) {
	records, err := r.load(ctx)
	if err != nil {
		return 0, err
	}
	return int64(len(records)), nil
}

// Update rebuilds the collection with the one matching habit replaced.
func (r *habitRepository) Update(ctx context.Context, habit *entity.Habit) error {
	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i, record := range records {
		if record.ID == habit.ID {
			records[i] = habitRecordFromEntity(habit)
			replaced = true
			break
		}
	}
	if !replaced {
		return domainerror.ErrHabitNotFound
	}
	return r.save(ctx, records)
}

// Delete rebuilds the collection with the matching habit filtered out.
func (r *habitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, record := range records {
		if record.ID != id {
			kept = append(kept, record)
		}
	}
	return r.save(ctx, kept)
}
