// Package email provides digest email sending functionality.
package email

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/email/templates"
)

// Worker processes the digest queue and sends emails.
type Worker struct {
	queue        adapter.DigestQueueRepository
	sender       adapter.DigestSender
	renderer     *templates.Renderer
	pollInterval time.Duration
	batchSize    int
}

// WorkerConfig holds configuration for the digest worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
	}
}

// NewWorker creates a new digest worker.
func NewWorker(queue adapter.DigestQueueRepository, sender adapter.DigestSender, renderer *templates.Renderer, config WorkerConfig) *Worker {
	return &Worker{
		queue:        queue,
		sender:       sender,
		renderer:     renderer,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Digest worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Process immediately on start, then on ticker
	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Digest worker shutting down")
			return
		case <-ticker.C:
			w.processBatch(ctx)
		}
	}
}

// processBatch fetches and processes a batch of pending digests.
func (w *Worker) processBatch(ctx context.Context) {
	jobs, err := w.queue.GetPendingJobs(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to get pending digest jobs", "error", err)
		return
	}

	if len(jobs) == 0 {
		return
	}

	slog.Debug("Processing digest batch", "count", len(jobs))

	for _, job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
			w.processJob(ctx, job)
		}
	}
}

// processJob processes a single digest job.
func (w *Worker) processJob(ctx context.Context, job *entity.DigestJob) {
	logger := slog.With(
		"job_id", job.ID,
		"template", job.TemplateType,
		"recipient", job.RecipientEmail,
	)

	// Mark as processing
	job.MarkProcessing()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as processing", "error", err)
		return
	}

	// Render template
	html, text, err := w.renderTemplate(job)
	if err != nil {
		logger.Error("Failed to render digest template", "error", err)
		w.handleFailure(ctx, job, err, true) // Template errors are permanent
		return
	}

	// Send email
	result, err := w.sender.Send(ctx, adapter.SendDigestInput{
		To:      job.RecipientEmail,
		Name:    job.RecipientName,
		Subject: job.Subject,
		HTML:    html,
		Text:    text,
	})

	if err != nil {
		logger.Error("Failed to send digest", "error", err)

		// Check if it's a permanent error
		var digestErr *domainerror.DigestError
		isPermanent := errors.As(err, &digestErr) && digestErr.Code == domainerror.ErrCodePermanentDigestFailure

		w.handleFailure(ctx, job, err, isPermanent)
		return
	}

	// Mark as sent
	job.MarkSent(result.ResendID)
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as sent", "error", err)
		return
	}

	logger.Info("Digest sent successfully", "resend_id", result.ResendID)
}

// renderTemplate renders the appropriate template for the job.
func (w *Worker) renderTemplate(job *entity.DigestJob) (html string, text string, err error) {
	templateName := string(job.TemplateType)

	var data interface{}
	switch job.TemplateType {
	case entity.TemplateWeeklyDigest:
		data = templates.WeeklyDigestData{
			RecipientName:    job.RecipientName,
			WeekStart:        getString(job.TemplateData, "week_start"),
			WeekEnd:          getString(job.TemplateData, "week_end"),
			Habits:           getHabitRows(job.TemplateData),
			TotalCompletions: getInt(job.TemplateData, "total_completions"),
			ProjectsTotal:    getInt(job.TemplateData, "projects_total"),
			ProjectsDone:     getInt(job.TemplateData, "projects_done"),
			AvgProgress:      getInt(job.TemplateData, "avg_progress"),
		}
	default:
		return "", "", domainerror.NewDigestError(
			domainerror.ErrCodeInvalidTemplate,
			"unknown template type",
			domainerror.ErrInvalidTemplate,
		)
	}

	return w.renderer.Render(templateName, data)
}

// handleFailure handles a failed digest job.
func (w *Worker) handleFailure(ctx context.Context, job *entity.DigestJob, err error, permanent bool) {
	job.MarkFailed(err, permanent)

	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		slog.Error("Failed to update job after failure",
			"job_id", job.ID,
			"error", updateErr,
		)
	}

	if job.Status == entity.DigestStatusFailed {
		slog.Warn("Digest job permanently failed",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
	} else {
		slog.Info("Digest job scheduled for retry",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"scheduled_at", job.ScheduledAt,
		)
	}
}

// getString safely extracts a string from a map.
func getString(data map[string]interface{}, key string) string {
	if v, ok := data[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// getInt safely extracts an integer from a map. JSON round-trips store
// numbers as float64, so both forms are accepted.
func getInt(data map[string]interface{}, key string) int {
	switch v := data[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

// getHabitRows extracts the habit summary rows from template data.
func getHabitRows(data map[string]interface{}) []templates.HabitSummaryRow {
	raw, ok := data["habits"].([]map[string]interface{})
	if !ok {
		// After a JSON round-trip the slice elements decode as interface{}.
		generic, ok := data["habits"].([]interface{})
		if !ok {
			return nil
		}
		raw = make([]map[string]interface{}, 0, len(generic))
		for _, item := range generic {
			if m, ok := item.(map[string]interface{}); ok {
				raw = append(raw, m)
			}
		}
	}

	rows := make([]templates.HabitSummaryRow, 0, len(raw))
	for _, m := range raw {
		rows = append(rows, templates.HabitSummaryRow{
			Name:  getString(m, "name"),
			Count: getInt(m, "count"),
		})
	}
	return rows
}

// ProcessNow processes all pending digests immediately (useful for testing).
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}
