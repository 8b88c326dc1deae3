// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	habitController   *controller.HabitController
	projectController *controller.ProjectController
	statsController   *controller.StatsController
	digestController  *controller.DigestController
	writeRateLimiter  *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	habitController *controller.HabitController,
	projectController *controller.ProjectController,
	statsController *controller.StatsController,
	digestController *controller.DigestController,
	writeRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:  healthController,
		habitController:   habitController,
		projectController: projectController,
		statsController:   statsController,
		digestController:  digestController,
		writeRateLimiter:  writeRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Mutating routes sit
// behind the write rate limiter; read routes do not.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		var limit gin.HandlerFunc
		if r.writeRateLimiter != nil {
			limit = r.writeRateLimiter.Middleware()
		} else {
			limit = func(c *gin.Context) { c.Next() }
		}

		if r.habitController != nil {
			habits := v1.Group("/habits")
			{
				habits.GET("", r.habitController.List)
				habits.POST("", limit, r.habitController.Create)
				habits.PATCH("/:id", limit, r.habitController.Update)
				habits.DELETE("/:id", limit, r.habitController.Delete)
				habits.POST("/:id/toggle", limit, r.habitController.Toggle)
			}
		}

		if r.projectController != nil {
			projects := v1.Group("/projects")
			{
				projects.GET("", r.projectController.List)
				projects.POST("", limit, r.projectController.Create)
				projects.PATCH("/:id", limit, r.projectController.Update)
				projects.PATCH("/:id/progress", limit, r.projectController.UpdateProgress)
				projects.DELETE("/:id", limit, r.projectController.Delete)
			}
		}

		if r.statsController != nil {
			stats := v1.Group("/stats")
			{
				stats.GET("/habits", r.statsController.HabitStats)
				stats.GET("/trends", r.statsController.Trends)
				stats.GET("/categories", r.statsController.Categories)
				stats.GET("/projects", r.statsController.ProjectStats)
			}
		}

		if r.digestController != nil {
			digests := v1.Group("/digests")
			{
				digests.POST("", limit, r.digestController.Queue)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
