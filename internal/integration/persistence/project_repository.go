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

// projectRepository implements the adapter.ProjectRepository interface.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance.
func NewProjectRepository(db *gorm.DB) adapter.ProjectRepository {
	return &projectRepository{
		db: db,
	}
}

// Create adds a new project to the database.
func (r *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	projectModel := model.ProjectFromEntity(project)
	result := r.db.WithContext(ctx).Create(projectModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a project by its ID.
func (r *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var projectModel model.ProjectModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&projectModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProjectNotFound
		}
		return nil, result.Error
	}
	return projectModel.ToEntity(), nil
}

// FindAll retrieves all projects in insertion order.
func (r *projectRepository) FindAll(ctx context.Context) ([]*entity.Project, error) {
	var projectModels []model.ProjectModel
	result := r.db.WithContext(ctx).
		Order("seq ASC").
		Find(&projectModels)
	if result.Error != nil {
		return nil, result.Error
	}

	projects := make([]*entity.Project, len(projectModels))
	for i, pm := range projectModels {
		projects[i] = pm.ToEntity()
	}
	return projects, nil
}

// Update replaces the stored project's mutable fields. The seq and
// start_date columns are left alone so insertion order and the creation
// timestamp survive updates.
func (r *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	projectModel := model.ProjectFromEntity(project)
	result := r.db.WithContext(ctx).
		Model(&model.ProjectModel{}).
		Where("id = ?", project.ID).
		Updates(map[string]interface{}{
			"name":        projectModel.Name,
			"description": projectModel.Description,
			"progress":    projectModel.Progress,
			"end_date":    projectModel.EndDate,
			"tasks":       projectModel.Tasks,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrProjectNotFound
	}
	return nil
}

// Delete removes a project from the database.
func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ProjectModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
