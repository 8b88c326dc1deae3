// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// habitRepository implements the adapter.HabitRepository interface.
type habitRepository struct {
	db *gorm.DB
}

// NewHabitRepository creates a new habit repository instance.
func NewHabitRepository(db *gorm.DB) adapter.HabitRepository {
	return &habitRepository{
		db: db,
	}
}

// Create adds a new habit to the database.
func (r *habitRepository) Create(ctx context.Context, habit *entity.Habit) error {
	habitModel := model.HabitFromEntity(habit)
	result := r.db.WithContext(ctx).Create(habitModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a habit by its ID.
func (r *habitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	var habitModel model.HabitModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&habitModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrHabitNotFound
		}
		return nil, result.Error
	}
	return habitModel.ToEntity(), nil
}

// FindAll retrieves all habits in insertion order.
func (r *habitRepository) FindAll(ctx context.Context) ([]*entity.Habit, error) {
	var habitModels []model.HabitModel
	result := r.db.WithContext(ctx).
		Order("seq ASC").
		Find(&habitModels)
	if result.Error != nil {
		return nil, result.Error
	}

	habits := make([]*entity.Habit, len(habitModels))
	for i, hm := range habitModels {
		habits[i] = hm.ToEntity()
	}
	return habits, nil
}

// Count returns the number of habits in the collection.
func (r *habitRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.HabitModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Update replaces the stored habit's mutable fields. The seq and created_at
// columns are left alone so insertion order survives updates.
func (r *habitRepository) Update(ctx context.Context, habit *entity.Habit) error {
	habitModel := model.HabitFromEntity(habit)
	result := r.db.WithContext(ctx).
		Model(&model.HabitModel{}).
		Where("id = ?", habit.ID).
		Updates(map[string]interface{}{
			"name":        habitModel.Name,
			"category":    habitModel.Category,
			"color":       habitModel.Color,
			"completions": habitModel.Completions,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrHabitNotFound
	}
	return nil
}

// Delete removes a habit from the database.
func (r *habitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.HabitModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
