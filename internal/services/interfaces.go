package services

import (
	"context"

	"github.com/surveyhub/quiz-service/internal/models"
	"github.com/surveyhub/quiz-service/internal/repositories"
)

// ===== REQUEST STRUCTURES =====

type CreateQuizRequest struct {
	Title       string `json:"title" validate:"required"`
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Description string `json:"description"`
}

// UpdateQuizRequest covers both full and partial updates; nil fields are left
// untouched. A supplied start date is always rejected.
type UpdateQuizRequest struct {
	Title       *string `json:"title"`
	StartDate   *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Description *string `json:"description"`
}

type AnswerOptionPayload struct {
	Name string `json:"name" validate:"required"`
}

type CreateQuestionRequest struct {
	Text          string                `json:"text" validate:"required"`
	Type          models.QuestionType   `json:"type" validate:"omitempty,question_type"`
	Quiz          uint                  `json:"quiz" validate:"required"`
	AnswerOptions []AnswerOptionPayload `json:"answer_options" validate:"dive"`
}

// UpdateQuestionRequest appends newly supplied options to choice questions;
// the question type itself is immutable.
type UpdateQuestionRequest struct {
	Text          *string               `json:"text"`
	AnswerOptions []AnswerOptionPayload `json:"answer_options" validate:"dive"`
}

type SelectedOptionPayload struct {
	AnswerOption uint `json:"answer_option" validate:"required"`
}

type CreateAnswerRequest struct {
	Question        uint                    `json:"question" validate:"required"`
	Text            *string                 `json:"text"`
	SelectedOptions []SelectedOptionPayload `json:"selected_options" validate:"dive"`
}

// ===== SERVICE INTERFACES =====

type QuizService interface {
	Create(ctx context.Context, req *CreateQuizRequest, actor models.Actor) (*models.Quiz, error)
	GetByID(ctx context.Context, id uint, actor models.Actor) (*models.Quiz, error)
	List(ctx context.Context, filters repositories.QuizFilters, actor models.Actor) ([]*models.Quiz, int64, error)
	Update(ctx context.Context, id uint, req *UpdateQuizRequest, actor models.Actor) (*models.Quiz, error)
	Delete(ctx context.Context, id uint, actor models.Actor) error
}

type QuestionService interface {
	Create(ctx context.Context, req *CreateQuestionRequest, actor models.Actor) (*models.Question, error)
	GetByID(ctx context.Context, id uint) (*models.Question, error)
	List(ctx context.Context, filters repositories.QuestionFilters) ([]*models.Question, int64, error)
	Update(ctx context.Context, id uint, req *UpdateQuestionRequest, actor models.Actor) (*models.Question, error)
	Delete(ctx context.Context, id uint, actor models.Actor) error
}

type AnswerService interface {
	Create(ctx context.Context, req *CreateAnswerRequest, actor models.Actor) (*models.Answer, error)
	GetByID(ctx context.Context, id uint) (*models.Answer, error)
	List(ctx context.Context, filters repositories.AnswerFilters) ([]*models.Answer, int64, error)
}

type ReportService interface {
	// GetUserAnswers returns the user-scoped quiz/question/answer projection.
	GetUserAnswers(ctx context.Context, userID uint) ([]*models.Quiz, error)
}

type ExportService interface {
	// ExportQuizAnswers renders all answers of a quiz as an xlsx workbook.
	ExportQuizAnswers(ctx context.Context, quizID uint, actor models.Actor) ([]byte, error)
}
