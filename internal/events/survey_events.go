package events

import (
	"time"

	"github.com/ThreeDotsLabs/watermill"
)

// EventType represents different types of survey domain events
type EventType string

const (
	// Quiz events
	EventQuizCreated EventType = "quiz.created"
	EventQuizDeleted EventType = "quiz.deleted"

	// Answer events
	EventAnswerSubmitted EventType = "answer.submitted"
)

// SurveyEvent is the base event structure for all survey domain events
type SurveyEvent struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Data      interface{} `json:"data"`
}

// Event payloads

type QuizCreatedEvent struct {
	QuizID    uint   `json:"quiz_id"`
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type QuizDeletedEvent struct {
	QuizID uint `json:"quiz_id"`
}

type AnswerSubmittedEvent struct {
	AnswerID        uint   `json:"answer_id"`
	QuestionID      uint   `json:"question_id"`
	UserID          *uint  `json:"user_id,omitempty"`
	SelectedOptions []uint `json:"selected_options,omitempty"`
}

func newSurveyEvent(eventType EventType, data interface{}) *SurveyEvent {
	return &SurveyEvent{
		ID:        watermill.NewUUID(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    "quiz-service",
		Version:   "1.0",
		Data:      data,
	}
}

func NewQuizCreatedEvent(data QuizCreatedEvent) *SurveyEvent {
	return newSurveyEvent(EventQuizCreated, data)
}

func NewQuizDeletedEvent(data QuizDeletedEvent) *SurveyEvent {
	return newSurveyEvent(EventQuizDeleted, data)
}

func NewAnswerSubmittedEvent(data AnswerSubmittedEvent) *SurveyEvent {
	return newSurveyEvent(EventAnswerSubmitted, data)
}
