package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/usecase/project"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
)

// ProjectController handles project endpoints.
type ProjectController struct {
	listUseCase     *project.ListProjectsUseCase
	createUseCase   *project.CreateProjectUseCase
	updateUseCase   *project.UpdateProjectUseCase
	progressUseCase *project.UpdateProgressUseCase
	deleteUseCase   *project.DeleteProjectUseCase
}

// NewProjectController creates a new project controller instance.
func NewProjectController(
	listUseCase *project.ListProjectsUseCase,
	createUseCase *project.CreateProjectUseCase,
	updateUseCase *project.UpdateProjectUseCase,
	progressUseCase *project.UpdateProgressUseCase,
	deleteUseCase *project.DeleteProjectUseCase,
) *ProjectController {
	return &ProjectController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		updateUseCase:   updateUseCase,
		progressUseCase: progressUseCase,
		deleteUseCase:   deleteUseCase,
	}
}

// List handles GET /projects requests.
func (c *ProjectController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve projects",
		})
		return
	}

	response := dto.ToProjectListResponse(output.Projects)
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /projects requests.
func (c *ProjectController) Create(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), project.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		c.handleProjectError(ctx, err)
		return
	}

	// A blank name is accepted and silently ignored
	if output == nil {
		ctx.Status(http.StatusNoContent)
		return
	}

	response := dto.ToProjectResponse(output.Project)
	ctx.JSON(http.StatusCreated, response)
}

// Update handles PATCH /projects/:id requests. Progress is excluded from
// this path; it moves only through the progress endpoint.
func (c *ProjectController) Update(ctx *gin.Context) {
	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid project ID format",
			Code:  string(domainerror.ErrCodeInvalidProjectID),
		})
		return
	}

	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	input := project.UpdateProjectInput{
		ProjectID:   projectID,
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Tasks != nil {
		tasks := dto.TasksFromPayload(*req.Tasks)
		input.Tasks = &tasks
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProjectError(ctx, err)
		return
	}

	response := dto.ToProjectResponse(output.Project)
	ctx.JSON(http.StatusOK, response)
}

// UpdateProgress handles PATCH /projects/:id/progress requests.
func (c *ProjectController) UpdateProgress(ctx *gin.Context) {
	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid project ID format",
			Code:  string(domainerror.ErrCodeInvalidProjectID),
		})
		return
	}

	var req dto.UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	output, err := c.progressUseCase.Execute(ctx.Request.Context(), project.UpdateProgressInput{
		ProjectID: projectID,
		Progress:  req.Progress,
	})
	if err != nil {
		c.handleProjectError(ctx, err)
		return
	}

	response := dto.ToProjectResponse(output.Project)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /projects/:id requests.
func (c *ProjectController) Delete(ctx *gin.Context) {
	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid project ID format",
			Code:  string(domainerror.ErrCodeInvalidProjectID),
		})
		return
	}

	err = c.deleteUseCase.Execute(ctx.Request.Context(), project.DeleteProjectInput{ProjectID: projectID})
	if err != nil {
		c.handleProjectError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleProjectError handles project errors and returns appropriate HTTP responses.
func (c *ProjectController) handleProjectError(ctx *gin.Context, err error) {
	var projectErr *domainerror.ProjectError
	if errors.As(err, &projectErr) {
		statusCode := c.getStatusCodeForProjectError(projectErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: projectErr.Message,
			Code:  string(projectErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForProjectError maps project error codes to HTTP status codes.
func (c *ProjectController) getStatusCodeForProjectError(code domainerror.ProjectErrorCode) int {
	switch code {
	case domainerror.ErrCodeProjectNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidProjectID:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
