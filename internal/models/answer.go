package models

import "time"

// Answer is one actor's response to one question. UserID is nil for anonymous
// actors. The composite unique index closes the check-then-act race on
// duplicate submissions for the same (user, question) pair; Postgres treats
// NULL user_id as distinct, so anonymous answers are not constrained by it.
type Answer struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	Text       *string `json:"text" gorm:"type:text"`
	UserID     *uint   `json:"user" gorm:"uniqueIndex:idx_answers_user_question"`
	QuestionID uint    `json:"question" gorm:"not null;index;uniqueIndex:idx_answers_user_question"`

	CreatedAt time.Time `json:"created_at"`

	// Relations
	SelectedOptions []SelectedOption `json:"selected_options" gorm:"foreignKey:AnswerID;constraint:OnDelete:CASCADE"`
}

func (Answer) TableName() string {
	return "answers"
}

// SelectedOption records which answer option an answer chose. The referenced
// option must belong to the same question as the answer; the service layer
// validates that before insert.
type SelectedOption struct {
	ID             uint `json:"id" gorm:"primaryKey"`
	AnswerID       uint `json:"-" gorm:"not null;index"`
	AnswerOptionID uint `json:"answer_option" gorm:"not null"`
}

func (SelectedOption) TableName() string {
	return "selected_options"
}
