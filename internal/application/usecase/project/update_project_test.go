package project

import (
	"context"
	"testing"
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

func TestUpdateProject(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	newRepoWithProject := func() (*memProjectRepo, *entity.Project) {
		repo := &memProjectRepo{}
		p := entity.NewProject("Garden", "Backyard overhaul", now)
		p.SetProgress(40, now)
		repo.projects = append(repo.projects, p)
		return repo, p
	}

	t.Run("replaces tasks wholesale", func(t *testing.T) {
		repo, p := newRepoWithProject()
		p.Tasks = []entity.Task{{Name: "Old task"}}
		uc := NewUpdateProjectUseCase(repo)

		tasks := []entity.Task{
			{Name: "Buy soil", Completed: true},
			{Name: "Plant seeds"},
		}
		output, err := uc.Execute(context.Background(), UpdateProjectInput{ProjectID: p.ID, Tasks: &tasks})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Project.Tasks) != 2 {
			t.Fatalf("expected 2 tasks, got %d", len(output.Project.Tasks))
		}
		if output.Project.Tasks[0].Name != "Buy soil" {
			t.Errorf("expected first task Buy soil, got %s", output.Project.Tasks[0].Name)
		}
	})

	t.Run("progress is untouched by this path", func(t *testing.T) {
		repo, p := newRepoWithProject()
		uc := NewUpdateProjectUseCase(repo)

		name := "Garden v2"
		output, err := uc.Execute(context.Background(), UpdateProjectInput{ProjectID: p.ID, Name: &name})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Project.Progress != 40 {
			t.Errorf("expected progress to remain 40, got %d", output.Project.Progress)
		}
		if output.Project.Name != "Garden v2" {
			t.Errorf("expected updated name, got %s", output.Project.Name)
		}
	})

	t.Run("blank name is ignored", func(t *testing.T) {
		repo, p := newRepoWithProject()
		uc := NewUpdateProjectUseCase(repo)

		blank := " "
		output, err := uc.Execute(context.Background(), UpdateProjectInput{ProjectID: p.ID, Name: &blank})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Project.Name != "Garden" {
			t.Errorf("expected name to remain Garden, got %s", output.Project.Name)
		}
	})
}
