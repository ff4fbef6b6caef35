package models

import "time"

type QuestionType string

const (
	QuestionText           QuestionType = "TEXT"
	QuestionSingleOption   QuestionType = "SINGLE_ANSWER_OPTION"
	QuestionMultipleOption QuestionType = "MULTIPLE_ANSWER_OPTION"
)

// HasOptions reports whether the question type carries answer options.
func (t QuestionType) HasOptions() bool {
	return t == QuestionSingleOption || t == QuestionMultipleOption
}

type Question struct {
	ID     uint         `json:"id" gorm:"primaryKey"`
	Text   string       `json:"text" gorm:"type:text;not null" validate:"required"`
	Type   QuestionType `json:"type" gorm:"size:30;default:TEXT;index" validate:"omitempty,question_type"`
	QuizID uint         `json:"quiz" gorm:"not null;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	AnswerOptions []AnswerOption `json:"answer_options" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	Answers       []Answer       `json:"answers,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

func (Question) TableName() string {
	return "questions"
}

// AnswerOption is one selectable choice of a choice-based question.
// Option names are unique within a question.
type AnswerOption struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Name       string `json:"name" gorm:"not null;uniqueIndex:idx_options_question_name" validate:"required"`
	QuestionID uint   `json:"question_id" gorm:"not null;index;uniqueIndex:idx_options_question_name"`
}

func (AnswerOption) TableName() string {
	return "answer_options"
}
