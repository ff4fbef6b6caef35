package repositories

import (
	"context"

	"github.com/surveyhub/quiz-service/internal/models"
)

// QuizRepository interface for quiz-specific operations
type QuizRepository interface {
	Create(ctx context.Context, quiz *models.Quiz) error
	GetByID(ctx context.Context, id uint) (*models.Quiz, error)
	GetByIDWithDetails(ctx context.Context, id uint) (*models.Quiz, error) // Include questions and their options
	Update(ctx context.Context, quiz *models.Quiz) error
	Delete(ctx context.Context, id uint) error

	// Query operations
	List(ctx context.Context, filters QuizFilters) ([]*models.Quiz, int64, error)

	// GetAnsweredByUser builds the user-scoped projection: quizzes having at
	// least one question answered by the user, each question carrying only
	// that user's answers, ordered by quiz id ascending.
	GetAnsweredByUser(ctx context.Context, userID uint) ([]*models.Quiz, error)
}
