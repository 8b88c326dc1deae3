// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"github.com/habit-tracker/backend/config"
	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/application/usecase/digest"
	"github.com/habit-tracker/backend/internal/application/usecase/habit"
	"github.com/habit-tracker/backend/internal/application/usecase/project"
	"github.com/habit-tracker/backend/internal/application/usecase/stats"
	"github.com/habit-tracker/backend/internal/infra/db"
	"github.com/habit-tracker/backend/internal/infra/server/router"
	"github.com/habit-tracker/backend/internal/integration/adapters"
	"github.com/habit-tracker/backend/internal/integration/email"
	"github.com/habit-tracker/backend/internal/integration/email/templates"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/habit-tracker/backend/internal/integration/persistence"
	"github.com/habit-tracker/backend/internal/integration/persistence/kvstore"
)

// Storage bundles the repositories and health check of whichever backend
// the STORAGE_DRIVER setting selected.
type Storage struct {
	HabitRepo   adapter.HabitRepository
	ProjectRepo adapter.ProjectRepository
	DigestQueue adapter.DigestQueueRepository
	HealthCheck func() bool
}

// NewPostgresStorage builds the storage bundle over a GORM connection.
func NewPostgresStorage(database *db.Database) *Storage {
	gormDB := database.DB()
	return &Storage{
		HabitRepo:   persistence.NewHabitRepository(gormDB),
		ProjectRepo: persistence.NewProjectRepository(gormDB),
		DigestQueue: persistence.NewDigestQueueRepository(gormDB),
		HealthCheck: database.HealthCheck,
	}
}

// NewRedisStorage builds the storage bundle over a Redis connection.
func NewRedisStorage(conn *db.RedisConnection) *Storage {
	store := kvstore.NewStore(conn.Client())
	return &Storage{
		HabitRepo:   kvstore.NewHabitRepository(store),
		ProjectRepo: kvstore.NewProjectRepository(store),
		DigestQueue: kvstore.NewDigestQueueRepository(store),
		HealthCheck: conn.HealthCheck,
	}
}

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	Storage      *Storage
	Router       *router.Router
	DigestWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, storage *Storage) (*Injector, error) {
	clock := adapters.NewSystemClock()

	// Create habit use cases
	listHabitsUseCase := habit.NewListHabitsUseCase(storage.HabitRepo)
	createHabitUseCase := habit.NewCreateHabitUseCase(storage.HabitRepo, clock)
	updateHabitUseCase := habit.NewUpdateHabitUseCase(storage.HabitRepo)
	deleteHabitUseCase := habit.NewDeleteHabitUseCase(storage.HabitRepo)
	toggleCompletionUseCase := habit.NewToggleCompletionUseCase(storage.HabitRepo, clock)

	// Create project use cases
	listProjectsUseCase := project.NewListProjectsUseCase(storage.ProjectRepo)
	createProjectUseCase := project.NewCreateProjectUseCase(storage.ProjectRepo, clock)
	updateProjectUseCase := project.NewUpdateProjectUseCase(storage.ProjectRepo)
	updateProgressUseCase := project.NewUpdateProgressUseCase(storage.ProjectRepo, clock)
	deleteProjectUseCase := project.NewDeleteProjectUseCase(storage.ProjectRepo)

	// Create stats use cases
	habitStatsUseCase := stats.NewGetHabitStatsUseCase(storage.HabitRepo, clock)
	trendsUseCase := stats.NewGetTrendsUseCase(storage.HabitRepo, clock)
	categoriesUseCase := stats.NewGetCategoryBreakdownUseCase(storage.HabitRepo, clock)
	projectStatsUseCase := stats.NewGetProjectStatsUseCase(storage.ProjectRepo)

	// Create digest use case and worker
	queueDigestUseCase := digest.NewQueueDigestUseCase(storage.DigestQueue, habitStatsUseCase, projectStatsUseCase)

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load digest templates: %w", err)
	}
	sender := email.NewResendClient(cfg.Digest.ResendAPIKey, cfg.Digest.FromName, cfg.Digest.FromEmail)
	digestWorker := email.NewWorker(storage.DigestQueue, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Digest.PollInterval,
		BatchSize:    cfg.Digest.BatchSize,
	})

	// Create controllers
	healthController := controller.NewHealthController(storage.HealthCheck)
	habitController := controller.NewHabitController(
		listHabitsUseCase,
		createHabitUseCase,
		updateHabitUseCase,
		deleteHabitUseCase,
		toggleCompletionUseCase,
	)
	projectController := controller.NewProjectController(
		listProjectsUseCase,
		createProjectUseCase,
		updateProjectUseCase,
		updateProgressUseCase,
		deleteProjectUseCase,
	)
	statsController := controller.NewStatsController(
		habitStatsUseCase,
		trendsUseCase,
		categoriesUseCase,
		projectStatsUseCase,
	)
	digestController := controller.NewDigestController(queueDigestUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var writeRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		writeRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		writeRateLimiter = middleware.NewRateLimiter()
	}

	// Create router
	r := router.NewRouter(healthController, habitController, projectController, statsController, digestController, writeRateLimiter)

	return &Injector{
		Config:       cfg,
		Storage:      storage,
		Router:       r,
		DigestWorker: digestWorker,
	}, nil
}
