// Package steps provides step definitions for the BDD integration suite.
//
// Each scenario gets a fresh HTTP server wired with real use cases over
// the storage driver selected by STORAGE_DRIVER: an in-memory SQLite
// database by default, or an embedded Redis when set to "redis".
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/application/usecase/digest"
	"github.com/habit-tracker/backend/internal/application/usecase/habit"
	"github.com/habit-tracker/backend/internal/application/usecase/project"
	"github.com/habit-tracker/backend/internal/application/usecase/stats"
	"github.com/habit-tracker/backend/internal/infra/server/router"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/habit-tracker/backend/internal/integration/persistence"
	"github.com/habit-tracker/backend/internal/integration/persistence/kvstore"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
	"github.com/habit-tracker/backend/test/integration/mock"
)

// testContext holds the per-scenario state.
type testContext struct {
	server  *httptest.Server
	client  *http.Client
	headers map[string]string

	response *response

	clock       *mock.Clock
	db          *mock.Db
	habitRepo   adapter.HabitRepository
	projectRepo adapter.ProjectRepository
	digestQueue adapter.DigestQueueRepository

	lastHabitID   uuid.UUID
	lastProjectID uuid.UUID
}

type response struct {
	status int
	body   any
}

// InitializeTestSuite sets up process-wide state before any scenario runs.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb("habit_tracker", map[string]any{
			"habits":       &model.HabitModel{},
			"projects":     &model.ProjectModel{},
			"digest_queue": &model.DigestQueueModel{},
		}),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		if err := test.before(); err != nil {
			return ctx, err
		}
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if test.server != nil {
			test.server.Close()
			test.server = nil
		}
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the current date is "([^"]*)"$`, test.theCurrentDateIs)

	// Seeding steps
	ctx.Given(`^a habit exists with name "([^"]*)" in category "([^"]*)"$`, test.aHabitExistsWithNameInCategory)
	ctx.Given(`^the habit "([^"]*)" is completed on "([^"]*)"$`, test.theHabitIsCompletedOn)
	ctx.Given(`^a project exists with name "([^"]*)" at (\d+)% progress$`, test.aProjectExistsWithNameAtProgress)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should not exist$`, test.theResponseFieldShouldNotExist)

	// Storage assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

// before resets state and rebuilds the server for the next scenario.
func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.lastHabitID = uuid.Nil
	t.lastProjectID = uuid.Nil
	t.clock = mock.NewClock()

	if err := t.db.ClearDB(); err != nil {
		return err
	}
	if os.Getenv("STORAGE_DRIVER") == "redis" {
		if err := mock.ClearRedis(mock.NewRedis()); err != nil {
			return err
		}
	}

	t.startServer()
	return nil
}

// startServer wires the full stack over the selected storage driver and
// serves it from an in-process test server.
func (t *testContext) startServer() {
	if os.Getenv("STORAGE_DRIVER") == "redis" {
		store := kvstore.NewStore(mock.NewRedis())
		t.habitRepo = kvstore.NewHabitRepository(store)
		t.projectRepo = kvstore.NewProjectRepository(store)
		t.digestQueue = kvstore.NewDigestQueueRepository(store)
	} else {
		t.habitRepo = persistence.NewHabitRepository(t.db.DbConn)
		t.projectRepo = persistence.NewProjectRepository(t.db.DbConn)
		t.digestQueue = persistence.NewDigestQueueRepository(t.db.DbConn)
	}

	listHabitsUseCase := habit.NewListHabitsUseCase(t.habitRepo)
	createHabitUseCase := habit.NewCreateHabitUseCase(t.habitRepo, t.clock)
	updateHabitUseCase := habit.NewUpdateHabitUseCase(t.habitRepo)
	deleteHabitUseCase := habit.NewDeleteHabitUseCase(t.habitRepo)
	toggleCompletionUseCase := habit.NewToggleCompletionUseCase(t.habitRepo, t.clock)

	listProjectsUseCase := project.NewListProjectsUseCase(t.projectRepo)
	createProjectUseCase := project.NewCreateProjectUseCase(t.projectRepo, t.clock)
	updateProjectUseCase := project.NewUpdateProjectUseCase(t.projectRepo)
	updateProgressUseCase := project.NewUpdateProgressUseCase(t.projectRepo, t.clock)
	deleteProjectUseCase := project.NewDeleteProjectUseCase(t.projectRepo)

	habitStatsUseCase := stats.NewGetHabitStatsUseCase(t.habitRepo, t.clock)
	trendsUseCase := stats.NewGetTrendsUseCase(t.habitRepo, t.clock)
	categoriesUseCase := stats.NewGetCategoryBreakdownUseCase(t.habitRepo, t.clock)
	projectStatsUseCase := stats.NewGetProjectStatsUseCase(t.projectRepo)

	queueDigestUseCase := digest.NewQueueDigestUseCase(t.digestQueue, habitStatsUseCase, projectStatsUseCase)

	healthController := controller.NewHealthController(func() bool { return true })
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

	writeRateLimiter := middleware.NewRateLimiterWithConfig(1000, time.Minute)

	r := router.NewRouter(healthController, habitController, projectController, statsController, digestController, writeRateLimiter)
	engine := r.Setup("test")

	t.server = httptest.NewServer(engine)
}

func (t *testContext) theAPIServerIsRunning() error {
	if t.server == nil {
		t.startServer()
	}
	return nil
}
