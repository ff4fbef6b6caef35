package postgres

import (
	"github.com/surveyhub/quiz-service/internal/repositories"
	"gorm.io/gorm"
)

type repository struct {
	quiz     repositories.QuizRepository
	question repositories.QuestionRepository
	answer   repositories.AnswerRepository
	user     repositories.UserRepository
}

// NewRepository wires the gorm-backed implementations behind the aggregate
// repository contract.
func NewRepository(db *gorm.DB) repositories.Repository {
	return &repository{
		quiz:     NewQuizPostgreSQL(db),
		question: NewQuestionPostgreSQL(db),
		answer:   NewAnswerPostgreSQL(db),
		user:     NewUserPostgreSQL(db),
	}
}

func (r *repository) Quiz() repositories.QuizRepository         { return r.quiz }
func (r *repository) Question() repositories.QuestionRepository { return r.question }
func (r *repository) Answer() repositories.AnswerRepository     { return r.answer }
func (r *repository) User() repositories.UserRepository         { return r.user }
