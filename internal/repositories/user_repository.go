package repositories

import (
	"context"

	"github.com/surveyhub/quiz-service/internal/models"
)

// UserRepository resolves token subjects to local user rows.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
}
