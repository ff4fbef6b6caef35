package models

import (
	"time"

	"gorm.io/datatypes"
)

// Quiz is a survey with an active date range. Questions are cascade-deleted
// with their quiz. StartDate is immutable after creation; the service layer
// enforces that together with the date-range rules.

type Quiz struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"not null" validate:"required"`
	StartDate   datatypes.Date `json:"start_date" gorm:"not null"`
	EndDate     datatypes.Date `json:"end_date" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Questions []Question `json:"questions" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
