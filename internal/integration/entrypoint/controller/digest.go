package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/application/usecase/digest"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
)

// DigestController handles weekly digest endpoints.
type DigestController struct {
	queueUseCase *digest.QueueDigestUseCase
}

// NewDigestController creates a new digest controller instance.
func NewDigestController(queueUseCase *digest.QueueDigestUseCase) *DigestController {
	return &DigestController{queueUseCase: queueUseCase}
}

// Queue handles POST /digests requests. The digest is assembled from the
// current week's stats and sent asynchronously by the worker.
func (c *DigestController) Queue(ctx *gin.Context) {
	var req dto.QueueDigestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidRequest),
		})
		return
	}

	output, err := c.queueUseCase.Execute(ctx.Request.Context(), digest.QueueDigestInput{
		RecipientEmail: req.RecipientEmail,
		RecipientName:  req.RecipientName,
	})
	if err != nil {
		c.handleDigestError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.ToDigestJobResponse(output.Job))
}

// handleDigestError handles digest errors and returns appropriate HTTP responses.
func (c *DigestController) handleDigestError(ctx *gin.Context, err error) {
	var digestErr *domainerror.DigestError
	if errors.As(err, &digestErr) {
		statusCode := c.getStatusCodeForDigestError(digestErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: digestErr.Message,
			Code:  string(digestErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForDigestError maps digest error codes to HTTP status codes.
func (c *DigestController) getStatusCodeForDigestError(code domainerror.DigestErrorCode) int {
	switch code {
	case domainerror.ErrCodeDigestRecipientRequired:
		return http.StatusBadRequest
	case domainerror.ErrCodeDigestJobNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
