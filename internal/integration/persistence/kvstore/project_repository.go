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

// projectRecord is the serialized form of a project inside the projects
// array. Status is written for consumers of the raw payload but is derived
// from progress on load; the stored value is never trusted.
type projectRecord struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      string        `json:"status"`
	Progress    int           `json:"progress"`
	StartDate   time.Time     `json:"start_date"`
	EndDate     *time.Time    `json:"end_date,omitempty"`
	Tasks       []entity.Task `json:"tasks"`
}

func projectRecordFromEntity(project *entity.Project) projectRecord {
	tasks := project.Tasks
	if tasks == nil {
		tasks = []entity.Task{}
	}
	return projectRecord{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Status:      string(project.Status()),
		Progress:    project.Progress,
		StartDate:   project.StartDate,
		EndDate:     project.EndDate,
		Tasks:       tasks,
	}
}

func (r projectRecord) toEntity() *entity.Project {
	tasks := r.Tasks
	if tasks == nil {
		tasks = []entity.Task{}
	}
	return &entity.Project{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Progress:    r.Progress,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Tasks:       tasks,
	}
}

// projectRepository implements adapter.ProjectRepository over the key-value store.
type projectRepository struct {
	store *Store
}

// NewProjectRepository creates a new key-value project repository instance.
func NewProjectRepository(store *Store) adapter.ProjectRepository {
	return &projectRepository{
		store: store,
	}
}

// load reads the full projects array. An absent key yields an empty slice.
func (r *projectRepository) load(ctx context.Context) ([]projectRecord, error) {
	raw, found, err := r.store.get(ctx, projectsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}
	if !found {
		return []projectRecord{}, nil
	}

	var records []projectRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %w", err)
	}
	return records, nil
}

// save rewrites the full projects array.
func (r *projectRepository) save(ctx context.Context, records []projectRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode projects: %w", err)
	}
	if err := r.store.set(ctx, projectsKey, raw); err != nil {
		return fmt.Errorf("failed to write projects: %w", err)
	}
	return nil
}

// Create appends a new project and rewrites the collection.
func (r *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	records, err := r.load(ctx)
	if err != nil {
		return err
	}
	records = append(records, projectRecordFromEntity(project))
	return r.save(ctx, records)
}

// FindByID retrieves a project by its ID.
func (r *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if record.ID == id {
			return record.toEntity(), nil
		}
	}
	return nil, domainerror.ErrProjectNotFound
}

// FindAll retrieves all projects in array (insertion) order.
func (r *projectRepository) FindAll(ctx context.Context) ([]*entity.Project, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	projects := make([]*entity.Project, len(records))
	for i, record := range records {
		projects[i] = record.toEntity()
	}
	return projects, nil
}

// Update rebuilds the collection with the one matching project replaced.
func (r *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i, record := range records {
		if record.ID == project.ID {
			records[i] = projectRecordFromEntity(project)
			replaced = true
			break
		}
	}
	if !replaced {
		return domainerror.ErrProjectNotFound
	}
	return r.save(ctx, records)
}

// Delete rebuilds the collection with the matching project filtered out.
func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
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
