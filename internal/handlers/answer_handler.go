package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/surveyhub/quiz-service/internal/middleware"
	"github.com/surveyhub/quiz-service/internal/repositories"
	"github.com/surveyhub/quiz-service/internal/services"
	"github.com/surveyhub/quiz-service/internal/utils"
)

// AnswerHandler handles answer submission and retrieval. Answers are
// write-once; there are no update or delete routes.
type AnswerHandler struct {
	BaseHandler
	services services.ServiceManager
}

func NewAnswerHandler(sm services.ServiceManager, logger utils.Logger) *AnswerHandler {
	return &AnswerHandler{
		BaseHandler: NewBaseHandler(logger),
		services:    sm,
	}
}

// Create handles POST /answer/
func (h *AnswerHandler) Create(c *gin.Context) {
	var req services.CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Code:    CodeValidationFailed,
			Details: err.Error(),
		})
		return
	}

	actor := middleware.ActorFromContext(c)
	answer, err := h.services.Answer().Create(c.Request.Context(), &req, actor)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Answer submitted", "answer_id", answer.ID, "question_id", answer.QuestionID)
	c.JSON(http.StatusCreated, answer)
}

// Get handles GET /answer/{id}/
func (h *AnswerHandler) Get(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	answer, err := h.services.Answer().GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, answer)
}

// List handles GET /answer/
func (h *AnswerHandler) List(c *gin.Context) {
	var filters repositories.AnswerFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid query parameters",
			Code:    CodeValidationFailed,
			Details: err.Error(),
		})
		return
	}

	answers, total, err := h.services.Answer().List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{Count: total, Results: answers})
}
