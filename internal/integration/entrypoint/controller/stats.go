package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/application/usecase/stats"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
)

// StatsController handles aggregation endpoints. All habit-scoped queries
// take a granularity query parameter that resolves to a calendar window
// around the current moment.
type StatsController struct {
	habitStatsUseCase   *stats.GetHabitStatsUseCase
	trendsUseCase       *stats.GetTrendsUseCase
	categoriesUseCase   *stats.GetCategoryBreakdownUseCase
	projectStatsUseCase *stats.GetProjectStatsUseCase
}

// NewStatsController creates a new stats controller instance.
func NewStatsController(
	habitStatsUseCase *stats.GetHabitStatsUseCase,
	trendsUseCase *stats.GetTrendsUseCase,
	categoriesUseCase *stats.GetCategoryBreakdownUseCase,
	projectStatsUseCase *stats.GetProjectStatsUseCase,
) *StatsController {
	return &StatsController{
		habitStatsUseCase:   habitStatsUseCase,
		trendsUseCase:       trendsUseCase,
		categoriesUseCase:   categoriesUseCase,
		projectStatsUseCase: projectStatsUseCase,
	}
}

// HabitStats handles GET /stats/habits requests.
func (c *StatsController) HabitStats(ctx *gin.Context) {
	granularity, ok := c.parseGranularity(ctx)
	if !ok {
		return
	}

	output, err := c.habitStatsUseCase.Execute(ctx.Request.Context(), stats.GetHabitStatsInput{
		Granularity: granularity,
	})
	if err != nil {
		c.handleStatsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHabitStatsResponse(output))
}

// Trends handles GET /stats/trends requests.
func (c *StatsController) Trends(ctx *gin.Context) {
	granularity, ok := c.parseGranularity(ctx)
	if !ok {
		return
	}

	output, err := c.trendsUseCase.Execute(ctx.Request.Context(), stats.GetTrendsInput{
		Granularity: granularity,
	})
	if err != nil {
		c.handleStatsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrendsResponse(output))
}

// Categories handles GET /stats/categories requests.
func (c *StatsController) Categories(ctx *gin.Context) {
	granularity, ok := c.parseGranularity(ctx)
	if !ok {
		return
	}

	output, err := c.categoriesUseCase.Execute(ctx.Request.Context(), stats.GetCategoryBreakdownInput{
		Granularity: granularity,
	})
	if err != nil {
		c.handleStatsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}

// ProjectStats handles GET /stats/projects requests.
func (c *StatsController) ProjectStats(ctx *gin.Context) {
	output, err := c.projectStatsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleStatsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectStatsResponse(output))
}

// parseGranularity reads and validates the granularity query parameter,
// defaulting to week. It writes the error response itself when invalid.
func (c *StatsController) parseGranularity(ctx *gin.Context) (stats.Granularity, bool) {
	raw := ctx.DefaultQuery("granularity", string(stats.GranularityWeek))
	granularity, err := stats.ParseGranularity(raw)
	if err != nil {
		c.handleStatsError(ctx, err)
		return "", false
	}
	return granularity, true
}

// handleStatsError handles stats errors and returns appropriate HTTP responses.
func (c *StatsController) handleStatsError(ctx *gin.Context, err error) {
	var statsErr *domainerror.StatsError
	if errors.As(err, &statsErr) {
		statusCode := c.getStatusCodeForStatsError(statsErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: statsErr.Message,
			Code:  string(statsErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForStatsError maps stats error codes to HTTP status codes.
// A malformed stored date key is a data integrity failure, not a client
// mistake, so it surfaces as a server error.
func (c *StatsController) getStatusCodeForStatsError(code domainerror.StatsErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidGranularity:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidDateKey:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
