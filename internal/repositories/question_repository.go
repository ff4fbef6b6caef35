package repositories

import (
	"context"

	"github.com/surveyhub/quiz-service/internal/models"
)

// QuestionRepository interface for question-specific operations
type QuestionRepository interface {
	// Create persists the question together with any attached answer
	// options in one transaction.
	Create(ctx context.Context, question *models.Question) error
	GetByID(ctx context.Context, id uint) (*models.Question, error) // Includes answer options
	Update(ctx context.Context, question *models.Question) error
	Delete(ctx context.Context, id uint) error

	// AddOptions bulk-inserts one answer option row per name for the question.
	AddOptions(ctx context.Context, questionID uint, names []string) error

	// Query operations
	List(ctx context.Context, filters QuestionFilters) ([]*models.Question, int64, error)
}
