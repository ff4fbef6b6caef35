package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/surveyhub/quiz-service/internal/middleware"
	"github.com/surveyhub/quiz-service/internal/repositories"
	"github.com/surveyhub/quiz-service/internal/services"
	"github.com/surveyhub/quiz-service/internal/utils"
)

// QuestionHandler handles question CRUD
type QuestionHandler struct {
	BaseHandler
	services services.ServiceManager
}

func NewQuestionHandler(sm services.ServiceManager, logger utils.Logger) *QuestionHandler {
	return &QuestionHandler{
		BaseHandler: NewBaseHandler(logger),
		services:    sm,
	}
}

// Create handles POST /question/
func (h *QuestionHandler) Create(c *gin.Context) {
	var req services.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Code:    CodeValidationFailed,
			Details: err.Error(),
		})
		return
	}

	actor := middleware.ActorFromContext(c)
	question, err := h.services.Question().Create(c.Request.Context(), &req, actor)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Question created", "question_id", question.ID, "quiz_id", question.QuizID)
	c.JSON(http.StatusCreated, question)
}

// Get handles GET /question/{id}/
func (h *QuestionHandler) Get(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	question, err := h.services.Question().GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}

// List handles GET /question/
func (h *QuestionHandler) List(c *gin.Context) {
	var filters repositories.QuestionFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid query parameters",
			Code:    CodeValidationFailed,
			Details: err.Error(),
		})
		return
	}

	questions, total, err := h.services.Question().List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{Count: total, Results: questions})
}

// Update handles PUT and PATCH /question/{id}/
func (h *QuestionHandler) Update(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req services.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Code:    CodeValidationFailed,
			Details: err.Error(),
		})
		return
	}

	actor := middleware.ActorFromContext(c)
	question, err := h.services.Question().Update(c.Request.Context(), id, &req, actor)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Question updated", "question_id", id)
	c.JSON(http.StatusOK, question)
}

// Delete handles DELETE /question/{id}/
func (h *QuestionHandler) Delete(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	actor := middleware.ActorFromContext(c)
	if err := h.services.Question().Delete(c.Request.Context(), id, actor); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Question deleted", "question_id", id)
	c.Status(http.StatusNoContent)
}
