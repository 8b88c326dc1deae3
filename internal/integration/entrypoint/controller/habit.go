// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/usecase/habit"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
)

// HabitController handles habit endpoints.
type HabitController struct {
	listUseCase   *habit.ListHabitsUseCase
	createUseCase *habit.CreateHabitUseCase
	updateUseCase *habit.UpdateHabitUseCase
	deleteUseCase *habit.DeleteHabitUseCase
	toggleUseCase *habit.ToggleCompletionUseCase
}

// NewHabitController creates a new habit controller instance.
func NewHabitController(
	listUseCase *habit.ListHabitsUseCase,
	createUseCase *habit.CreateHabitUseCase,
	updateUseCase *habit.UpdateHabitUseCase,
	deleteUseCase *habit.DeleteHabitUseCase,
	toggleUseCase *habit.ToggleCompletionUseCase,
) *HabitController {
	return &HabitController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		toggleUseCase: toggleUseCase,
	}
}

// List handles GET /habits requests.
func (c *HabitController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve habits",
		})
		return
	}

	response := dto.ToHabitListResponse(output.Habits)
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /habits requests.
func (c *HabitController) Create(ctx *gin.Context) {
	// Parse request body
	var req dto.CreateHabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), habit.CreateHabitInput{
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	// A blank name is accepted and silently ignored
	if output == nil {
		ctx.Status(http.StatusNoContent)
		return
	}

	response := dto.ToHabitResponse(output.Habit)
	ctx.JSON(http.StatusCreated, response)
}

// Update handles PATCH /habits/:id requests.
func (c *HabitController) Update(ctx *gin.Context) {
	habitID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID format",
			Code:  string(domainerror.ErrCodeInvalidHabitID),
		})
		return
	}

	var req dto.UpdateHabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), habit.UpdateHabitInput{
		HabitID:  habitID,
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	response := dto.ToHabitResponse(output.Habit)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /habits/:id requests.
func (c *HabitController) Delete(ctx *gin.Context) {
	habitID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID format",
			Code:  string(domainerror.ErrCodeInvalidHabitID),
		})
		return
	}

	err = c.deleteUseCase.Execute(ctx.Request.Context(), habit.DeleteHabitInput{HabitID: habitID})
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Toggle handles POST /habits/:id/toggle requests. It flips today's
// completion mark for the habit.
func (c *HabitController) Toggle(ctx *gin.Context) {
	habitID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID format",
			Code:  string(domainerror.ErrCodeInvalidHabitID),
		})
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), habit.ToggleCompletionInput{HabitID: habitID})
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	response := dto.ToggleCompletionResponse{
		Data: dto.ToggleCompletionData{
			Habit:     dto.ToHabitResponse(output.Habit),
			Date:      output.DateKey,
			Completed: output.Completed,
		},
	}
	ctx.JSON(http.StatusOK, response)
}

// handleHabitError handles habit errors and returns appropriate HTTP responses.
func (c *HabitController) handleHabitError(ctx *gin.Context, err error) {
	var habitErr *domainerror.HabitError
	if errors.As(err, &habitErr) {
		statusCode := c.getStatusCodeForHabitError(habitErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: habitErr.Message,
			Code:  string(habitErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForHabitError maps habit error codes to HTTP status codes.
func (c *HabitController) getStatusCodeForHabitError(code domainerror.HabitErrorCode) int {
	switch code {
	case domainerror.ErrCodeHabitNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeHabitNameTooLong,
		domainerror.ErrCodeInvalidHabitID:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
