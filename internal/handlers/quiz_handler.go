package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/surveyhub/quiz-service/internal/middleware"
	"github.com/surveyhub/quiz-service/internal/repositories"
	"github.com/surveyhub/quiz-service/internal/services"
	"github.com/surveyhub/quiz-service/internal/utils"
)

// QuizHandler handles quiz CRUD and the xlsx export endpoint
type QuizHandler struct {
	BaseHandler
	services services.ServiceManager
}

func NewQuizHandler(sm services.ServiceManager, logger utils.Logger) *QuizHandler {
	return &QuizHandler{
		BaseHandler: NewBaseHandler(logger),
		services:    sm,
	}
}

// Create handles POST /quiz/
func (h *QuizHandler) Create(c *gin.Context) {
	var req services.CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Code:    CodeValidationFailed,
			Details: err.Error(),
		})
		return
	}

	actor := middleware.ActorFromContext(c)
	quiz, err := h.services.Quiz().Create(c.Request.Context(), &req, actor)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Quiz created", "quiz_id", quiz.ID)
	c.JSON(http.StatusCreated, quiz)
}

// Get handles GET /quiz/{id}/
func (h *QuizHandler) Get(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	actor := middleware.ActorFromContext(c)
	quiz, err := h.services.Quiz().GetByID(c.Request.Context(), id, actor)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

// List handles GET /quiz/
func (h *QuizHandler) List(c *gin.Context) {
	var filters repositories.QuizFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid query parameters",
			Code:    CodeValidationFailed,
			Details: err.Error(),
		})
		return
	}

	actor := middleware.ActorFromContext(c)
	quizzes, total, err := h.services.Quiz().List(c.Request.Context(), filters, actor)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{Count: total, Results: quizzes})
}

// Update handles PUT and PATCH /quiz/{id}/
func (h *QuizHandler) Update(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req services.UpdateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Code:    CodeValidationFailed,
			Details: err.Error(),
		})
		return
	}

	actor := middleware.ActorFromContext(c)
	quiz, err := h.services.Quiz().Update(c.Request.Context(), id, &req, actor)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Quiz updated", "quiz_id", id)
	c.JSON(http.StatusOK, quiz)
}

// Delete handles DELETE /quiz/{id}/
func (h *QuizHandler) Delete(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	actor := middleware.ActorFromContext(c)
	if err := h.services.Quiz().Delete(c.Request.Context(), id, actor); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Quiz deleted", "quiz_id", id)
	c.Status(http.StatusNoContent)
}

// Export handles GET /quiz/{id}/export/
func (h *QuizHandler) Export(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	actor := middleware.ActorFromContext(c)
	content, err := h.services.Export().ExportQuizAnswers(c.Request.Context(), id, actor)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("quiz_%d_answers.xlsx", id)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		content)
}
