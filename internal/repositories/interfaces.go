package repositories

import (
	"errors"

	"github.com/surveyhub/quiz-service/internal/models"
	"gorm.io/gorm"
)

// ===== SHARED FILTER STRUCTS =====

// Filters are exact-match over model fields; nil means "no constraint".

type QuizFilters struct {
	Title       *string `form:"title"`
	StartDate   *string `form:"start_date"`
	EndDate     *string `form:"end_date"`
	Description *string `form:"description"`

	// EndsAfter restricts results to quizzes whose end date is strictly
	// after the given day. Applied for non-staff readers, never bound
	// from the query string.
	EndsAfter *string `form:"-"`

	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

type QuestionFilters struct {
	Text   *string              `form:"text"`
	Type   *models.QuestionType `form:"type"`
	QuizID *uint                `form:"quiz"`

	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

type AnswerFilters struct {
	Text       *string `form:"text"`
	UserID     *uint   `form:"user"`
	QuestionID *uint   `form:"question"`

	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// ===== AGGREGATE REPOSITORY =====

type Repository interface {
	Quiz() QuizRepository
	Question() QuestionRepository
	Answer() AnswerRepository
	User() UserRepository
}

// ===== ERROR HELPERS =====

func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func IsDuplicateKeyError(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
