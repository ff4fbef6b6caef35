package postgres

import (
	"context"
	"fmt"

	"github.com/surveyhub/quiz-service/internal/models"
	"github.com/surveyhub/quiz-service/internal/repositories"
	"gorm.io/gorm"
)

type QuizPostgreSQL struct {
	db *gorm.DB
}

func NewQuizPostgreSQL(db *gorm.DB) repositories.QuizRepository {
	return &QuizPostgreSQL{db: db}
}

// Create creates a new quiz
func (q *QuizPostgreSQL) Create(ctx context.Context, quiz *models.Quiz) error {
	if err := q.db.WithContext(ctx).Create(quiz).Error; err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}
	return nil
}

// GetByID retrieves a quiz by ID
func (q *QuizPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := q.db.WithContext(ctx).First(&quiz, id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// GetByIDWithDetails retrieves a quiz with its questions and their options
func (q *QuizPostgreSQL) GetByIDWithDetails(ctx context.Context, id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := q.db.WithContext(ctx).
		Preload("Questions").
		Preload("Questions.AnswerOptions").
		First(&quiz, id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// Update persists quiz field changes
func (q *QuizPostgreSQL) Update(ctx context.Context, quiz *models.Quiz) error {
	if err := q.db.WithContext(ctx).Save(quiz).Error; err != nil {
		return fmt.Errorf("failed to update quiz: %w", err)
	}
	return nil
}

// Delete removes a quiz; questions, options and answers cascade at the
// storage level.
func (q *QuizPostgreSQL) Delete(ctx context.Context, id uint) error {
	result := q.db.WithContext(ctx).Delete(&models.Quiz{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete quiz: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List retrieves quizzes matching the exact-match filters
func (q *QuizPostgreSQL) List(ctx context.Context, filters repositories.QuizFilters) ([]*models.Quiz, int64, error) {
	query := q.db.WithContext(ctx).Model(&models.Quiz{})
	query = q.applyFilters(query, filters)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count quizzes: %w", err)
	}

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var quizzes []*models.Quiz
	err := query.
		Preload("Questions").
		Preload("Questions.AnswerOptions").
		Order("id ASC").
		Find(&quizzes).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list quizzes: %w", err)
	}

	return quizzes, total, nil
}

// GetAnsweredByUser selects quizzes having questions with at least one answer
// from the user, attaching only the qualifying questions and only that user's
// answers to each of them.
func (q *QuizPostgreSQL) GetAnsweredByUser(ctx context.Context, userID uint) ([]*models.Quiz, error) {
	answeredQuestions := q.db.Table("questions").
		Select("questions.quiz_id").
		Joins("JOIN answers ON answers.question_id = questions.id").
		Where("answers.user_id = ?", userID)

	var quizzes []*models.Quiz
	err := q.db.WithContext(ctx).
		Where("id IN (?)", answeredQuestions).
		Preload("Questions", "id IN (SELECT question_id FROM answers WHERE user_id = ?)", userID).
		Preload("Questions.AnswerOptions").
		Preload("Questions.Answers", "user_id = ?", userID).
		Preload("Questions.Answers.SelectedOptions").
		Order("id ASC").
		Find(&quizzes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build user answer projection: %w", err)
	}

	return quizzes, nil
}

func (q *QuizPostgreSQL) applyFilters(query *gorm.DB, filters repositories.QuizFilters) *gorm.DB {
	if filters.Title != nil {
		query = query.Where("title = ?", *filters.Title)
	}
	if filters.StartDate != nil {
		query = query.Where("start_date = ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("end_date = ?", *filters.EndDate)
	}
	if filters.Description != nil {
		query = query.Where("description = ?", *filters.Description)
	}
	if filters.EndsAfter != nil {
		query = query.Where("end_date > ?", *filters.EndsAfter)
	}
	return query
}
