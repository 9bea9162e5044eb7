package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/contas/backend/internal/domain/shared"
	"github.com/contas/backend/internal/infrastructure/logger"
	"github.com/contas/backend/internal/interfaces/http/dto"
	"github.com/contas/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a 200 response with the bare payload
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the appropriate status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, middleware.GetRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// ValidationError sends a 422 validation error response with details
func (h *BaseHandler) ValidationError(c *gin.Context, details []dto.ValidationDetail) {
	c.JSON(http.StatusUnprocessableEntity, dto.NewValidationErrorResponse(details, middleware.GetRequestID(c)))
}

// BindJSON decodes and validates the request body into req. On failure it
// writes the error response and returns false.
func (h *BaseHandler) BindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var maxBytesErr *http.MaxBytesError
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &maxBytesErr):
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeRequestTooLarge, "Request body exceeds maximum allowed size")
	case errors.As(err, &validationErrs):
		c.JSON(http.StatusUnprocessableEntity, middleware.FormatValidationErrors(validationErrs, middleware.GetRequestID(c)))
	default:
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Success: false,
			Error: &dto.ErrorInfo{
				Code:      dto.ErrCodeInvalidJSON,
				Message:   "Request body is not valid JSON",
				RequestID: middleware.GetRequestID(c),
				Details:   []dto.ValidationDetail{{Message: err.Error()}},
			},
		})
	}
	return false
}

// HandleDomainError converts domain errors to HTTP responses. It reports
// whether err was a domain error.
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) bool {
	var domainErr *shared.DomainError
	if !errors.As(err, &domainErr) {
		return false
	}

	code := dto.NormalizeErrorCode(domainErr.Code)
	h.Error(c, dto.GetHTTPStatus(code), code, domainErr.Message)
	return true
}

// HandleError answers domain errors with their mapped status and anything
// else with a logged 500
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	if h.HandleDomainError(c, err) {
		return
	}

	logger.GetGinLogger(c).Error("Unexpected error", zap.Error(err))
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, "An unexpected error occurred")
}

// parseID reads the :id path parameter. On failure it writes a 400 and
// returns false.
func (h *BaseHandler) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, strconv.IntSize)
	if err != nil {
		h.BadRequest(c, "Invalid id: "+c.Param("id"))
		return 0, false
	}
	return uint(id), true
}
