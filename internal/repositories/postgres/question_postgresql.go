package postgres

import (
	"context"
	"fmt"

	"github.com/surveyhub/quiz-service/internal/models"
	"github.com/surveyhub/quiz-service/internal/repositories"
	"gorm.io/gorm"
)

type QuestionPostgreSQL struct {
	db *gorm.DB
}

func NewQuestionPostgreSQL(db *gorm.DB) repositories.QuestionRepository {
	return &QuestionPostgreSQL{db: db}
}

// Create creates a question; attached answer options are inserted in the same
// transaction via the association.
func (q *QuestionPostgreSQL) Create(ctx context.Context, question *models.Question) error {
	if err := q.db.WithContext(ctx).Create(question).Error; err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// GetByID retrieves a question with its answer options
func (q *QuestionPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	err := q.db.WithContext(ctx).
		Preload("AnswerOptions").
		First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// Update persists question field changes without touching associations
func (q *QuestionPostgreSQL) Update(ctx context.Context, question *models.Question) error {
	err := q.db.WithContext(ctx).
		Omit("AnswerOptions", "Answers").
		Save(question).Error
	if err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}
	return nil
}

// Delete removes a question; options, answers and selected options cascade.
func (q *QuestionPostgreSQL) Delete(ctx context.Context, id uint) error {
	result := q.db.WithContext(ctx).Delete(&models.Question{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete question: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddOptions bulk-inserts one option row per name
func (q *QuestionPostgreSQL) AddOptions(ctx context.Context, questionID uint, names []string) error {
	if len(names) == 0 {
		return nil
	}

	options := make([]models.AnswerOption, 0, len(names))
	for _, name := range names {
		options = append(options, models.AnswerOption{Name: name, QuestionID: questionID})
	}

	if err := q.db.WithContext(ctx).Create(&options).Error; err != nil {
		return fmt.Errorf("failed to add answer options: %w", err)
	}
	return nil
}

// List retrieves questions matching the exact-match filters
func (q *QuestionPostgreSQL) List(ctx context.Context, filters repositories.QuestionFilters) ([]*models.Question, int64, error) {
	query := q.db.WithContext(ctx).Model(&models.Question{})

	if filters.Text != nil {
		query = query.Where("text = ?", *filters.Text)
	}
	if filters.Type != nil {
		query = query.Where("type = ?", *filters.Type)
	}
	if filters.QuizID != nil {
		query = query.Where("quiz_id = ?", *filters.QuizID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count questions: %w", err)
	}

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var questions []*models.Question
	err := query.
		Preload("AnswerOptions").
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list questions: %w", err)
	}

	return questions, total, nil
}
