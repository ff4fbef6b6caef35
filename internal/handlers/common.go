package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/surveyhub/quiz-service/internal/services"
	"github.com/surveyhub/quiz-service/internal/utils"
)

// ===== COMMON RESPONSE STRUCTURES =====

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string      `json:"message"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// ListResponse wraps collection results with their total count
type ListResponse struct {
	Count   int64       `json:"count"`
	Results interface{} `json:"results"`
}

// Machine-readable error kinds surfaced in the Code field.
const (
	CodeValidationFailed       = "validation_failed"
	CodeAuthorizationDenied    = "authorization_denied"
	CodeNotFound               = "not_found"
	CodeConflictDuplicateAnswer = "conflict_duplicate_answer"
	CodeConflict               = "conflict"
	CodeServerError            = "server_error"
)

// ===== BASE HANDLER STRUCT =====

// BaseHandler provides common logging and error mapping for all handlers
type BaseHandler struct {
	logger utils.Logger
}

// NewBaseHandler creates a new base handler with logging capability
func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// LogRequest logs incoming HTTP requests with context information
func (h *BaseHandler) LogRequest(c *gin.Context, message string, additionalFields ...interface{}) {
	fields := []interface{}{
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"remote_addr", c.ClientIP(),
	}
	fields = append(fields, additionalFields...)
	h.logger.Info(message, fields...)
}

// parseIDParam extracts a positive integer path parameter; responds 400 and
// returns 0 when it is malformed.
func (h *BaseHandler) parseIDParam(c *gin.Context, name string) uint {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid id parameter",
			Code:    CodeValidationFailed,
			Details: raw,
		})
		return 0
	}
	return uint(id)
}

// handleServiceError maps service-layer errors onto the HTTP error surface.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors services.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Code:    CodeValidationFailed,
			Details: validationErrors,
		})
		return
	}

	var permissionError *services.PermissionError
	if errors.As(err, &permissionError) {
		c.JSON(http.StatusForbidden, ErrorResponse{
			Message: "Access denied",
			Code:    CodeAuthorizationDenied,
			Details: map[string]interface{}{
				"resource": permissionError.Resource,
				"action":   permissionError.Action,
				"reason":   permissionError.Reason,
			},
		})
		return
	}

	switch {
	case services.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: err.Error(),
			Code:    CodeNotFound,
		})
	case errors.Is(err, services.ErrAnswerAlreadyExists):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: err.Error(),
			Code:    CodeConflictDuplicateAnswer,
		})
	case services.IsConflict(err):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: err.Error(),
			Code:    CodeConflict,
		})
	case services.IsForbidden(err):
		c.JSON(http.StatusForbidden, ErrorResponse{
			Message: err.Error(),
			Code:    CodeAuthorizationDenied,
		})
	case services.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: err.Error(),
			Code:    CodeValidationFailed,
		})
	default:
		h.logger.LogError(err, "Unhandled service error",
			"method", c.Request.Method,
			"path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
			Code:    CodeServerError,
		})
	}
}
