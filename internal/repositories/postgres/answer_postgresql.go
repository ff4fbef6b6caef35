package postgres

import (
	"context"
	"fmt"

	"github.com/surveyhub/quiz-service/internal/models"
	"github.com/surveyhub/quiz-service/internal/repositories"
	"gorm.io/gorm"
)

type AnswerPostgreSQL struct {
	db *gorm.DB
}

func NewAnswerPostgreSQL(db *gorm.DB) repositories.AnswerRepository {
	return &AnswerPostgreSQL{db: db}
}

// Create persists the answer; attached selected options are bulk-inserted in
// the same transaction via the association. A concurrent duplicate submission
// surfaces as gorm.ErrDuplicatedKey from the (user_id, question_id) unique
// index.
func (a *AnswerPostgreSQL) Create(ctx context.Context, answer *models.Answer) error {
	if err := a.db.WithContext(ctx).Create(answer).Error; err != nil {
		if repositories.IsDuplicateKeyError(err) {
			return err
		}
		return fmt.Errorf("failed to create answer: %w", err)
	}
	return nil
}

// GetByID retrieves an answer with its selected options
func (a *AnswerPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Answer, error) {
	var answer models.Answer
	err := a.db.WithContext(ctx).
		Preload("SelectedOptions").
		First(&answer, id).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

// List retrieves answers matching the exact-match filters
func (a *AnswerPostgreSQL) List(ctx context.Context, filters repositories.AnswerFilters) ([]*models.Answer, int64, error) {
	query := a.db.WithContext(ctx).Model(&models.Answer{})

	if filters.Text != nil {
		query = query.Where("text = ?", *filters.Text)
	}
	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.QuestionID != nil {
		query = query.Where("question_id = ?", *filters.QuestionID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count answers: %w", err)
	}

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var answers []*models.Answer
	err := query.
		Preload("SelectedOptions").
		Order("id ASC").
		Find(&answers).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list answers: %w", err)
	}

	return answers, total, nil
}

// ExistsForUser reports whether the user already answered the question
func (a *AnswerPostgreSQL) ExistsForUser(ctx context.Context, userID, questionID uint) (bool, error) {
	var count int64
	err := a.db.WithContext(ctx).
		Model(&models.Answer{}).
		Where("user_id = ? AND question_id = ?", userID, questionID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check existing answer: %w", err)
	}
	return count > 0, nil
}
