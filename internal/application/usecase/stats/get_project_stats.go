// Package stats contains the temporal aggregation engine.
package stats

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// GetProjectStatsOutput represents the aggregated project summary.
type GetProjectStatsOutput struct {
	Total       int
	NotStarted  int
	InProgress  int
	Completed   int
	AvgProgress int
}

// GetProjectStatsUseCase counts projects per derived status and averages
// their progress. An empty collection yields an all-zero summary.
type GetProjectStatsUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewGetProjectStatsUseCase creates a new GetProjectStatsUseCase instance.
func NewGetProjectStatsUseCase(projectRepo adapter.ProjectRepository) *GetProjectStatsUseCase {
	return &GetProjectStatsUseCase{
		projectRepo: projectRepo,
	}
}

// Execute computes the project summary across all projects.
func (uc *GetProjectStatsUseCase) Execute(ctx context.Context) (*GetProjectStatsOutput, error) {
	projects, err := uc.projectRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	output := &GetProjectStatsOutput{Total: len(projects)}
	if len(projects) == 0 {
		return output, nil
	}

	progresses := make([]decimal.Decimal, 0, len(projects))
	for _, project := range projects {
		switch project.Status() {
		case entity.ProjectStatusNotStarted:
			output.NotStarted++
		case entity.ProjectStatusInProgress:
			output.InProgress++
		case entity.ProjectStatusCompleted:
			output.Completed++
		}
		progresses = append(progresses, decimal.NewFromInt(int64(project.Progress)))
	}

	avg := decimal.Avg(progresses[0], progresses[1:]...)
	output.AvgProgress = int(avg.Round(0).IntPart())

	return output, nil
}
