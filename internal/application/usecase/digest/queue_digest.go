// Package digest contains weekly summary digest use cases.
package digest

import (
	"context"
	"fmt"
	"strings"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/application/usecase/stats"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// QueueDigestInput represents the input for queueing a weekly digest email.
type QueueDigestInput struct {
	RecipientEmail string
	RecipientName  string
}

// QueueDigestOutput represents the output of queueing a digest.
type QueueDigestOutput struct {
	Job *entity.DigestJob
}

// QueueDigestUseCase assembles the current week's summary from the
// aggregation engine and enqueues it as a digest email job. The actual
// send happens asynchronously in the digest worker.
type QueueDigestUseCase struct {
	digestQueue  adapter.DigestQueueRepository
	habitStats   *stats.GetHabitStatsUseCase
	projectStats *stats.GetProjectStatsUseCase
}

// NewQueueDigestUseCase creates a new QueueDigestUseCase instance.
func NewQueueDigestUseCase(
	digestQueue adapter.DigestQueueRepository,
	habitStats *stats.GetHabitStatsUseCase,
	projectStats *stats.GetProjectStatsUseCase,
) *QueueDigestUseCase {
	return &QueueDigestUseCase{
		digestQueue:  digestQueue,
		habitStats:   habitStats,
		projectStats: projectStats,
	}
}

// Execute assembles and enqueues the weekly digest.
func (uc *QueueDigestUseCase) Execute(ctx context.Context, input QueueDigestInput) (*QueueDigestOutput, error) {
	recipient := strings.TrimSpace(input.RecipientEmail)
	if recipient == "" {
		return nil, domainerror.NewDigestError(
			domainerror.ErrCodeDigestRecipientRequired,
			"recipient email is required",
			domainerror.ErrDigestRecipientRequired,
		)
	}

	habitOutput, err := uc.habitStats.Execute(ctx, stats.GetHabitStatsInput{Granularity: stats.GranularityWeek})
	if err != nil {
		return nil, fmt.Errorf("failed to assemble habit summary: %w", err)
	}

	projectOutput, err := uc.projectStats.Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble project summary: %w", err)
	}

	habitRows := make([]map[string]interface{}, 0, len(habitOutput.Stats))
	totalCompletions := 0
	for _, item := range habitOutput.Stats {
		habitRows = append(habitRows, map[string]interface{}{
			"name":  item.Name,
			"count": item.CompletionCount,
		})
		totalCompletions += item.CompletionCount
	}

	data := map[string]interface{}{
		"week_start":        habitOutput.Period.StartDate.Format(entity.DateKeyLayout),
		"week_end":          habitOutput.Period.EndDate.Format(entity.DateKeyLayout),
		"habits":            habitRows,
		"total_completions": totalCompletions,
		"projects_total":    projectOutput.Total,
		"projects_done":     projectOutput.Completed,
		"avg_progress":      projectOutput.AvgProgress,
	}

	subject := fmt.Sprintf("Your week in review (%s - %s)",
		habitOutput.Period.StartDate.Format("Jan 2"),
		habitOutput.Period.EndDate.Format("Jan 2"),
	)

	job := entity.NewDigestJob(entity.TemplateWeeklyDigest, recipient, strings.TrimSpace(input.RecipientName), subject, data)

	if err := uc.digestQueue.Create(ctx, job); err != nil {
		return nil, domainerror.NewDigestError(
			domainerror.ErrCodeDigestQueueFailed,
			"failed to queue digest",
			err,
		)
	}

	return &QueueDigestOutput{
		Job: job,
	}, nil
}
