package repositories

import (
	"context"

	"github.com/surveyhub/quiz-service/internal/models"
)

// AnswerRepository interface for answer-specific operations. Answers expose
// no update or delete path.
type AnswerRepository interface {
	// Create persists the answer and bulk-inserts its selected options in
	// one transaction.
	Create(ctx context.Context, answer *models.Answer) error
	GetByID(ctx context.Context, id uint) (*models.Answer, error)

	// Query operations
	List(ctx context.Context, filters AnswerFilters) ([]*models.Answer, int64, error)

	// ExistsForUser reports whether the user already answered the question.
	ExistsForUser(ctx context.Context, userID, questionID uint) (bool, error)
}
