package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/surveyhub/quiz-service/internal/services"
	"github.com/surveyhub/quiz-service/internal/utils"
)

// ReportHandler serves the per-user answer projection
type ReportHandler struct {
	BaseHandler
	services services.ServiceManager
}

func NewReportHandler(sm services.ServiceManager, logger utils.Logger) *ReportHandler {
	return &ReportHandler{
		BaseHandler: NewBaseHandler(logger),
		services:    sm,
	}
}

// UserAnswers handles GET /quizuseranswer/?user={id}
func (h *ReportHandler) UserAnswers(c *gin.Context) {
	raw := c.Query("user")
	if raw == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Missing required query parameter: user",
			Code:    CodeValidationFailed,
		})
		return
	}

	userID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid user parameter",
			Code:    CodeValidationFailed,
			Details: raw,
		})
		return
	}

	quizzes, err := h.services.Report().GetUserAnswers(c.Request.Context(), uint(userID))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, quizzes)
}
