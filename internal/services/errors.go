package services

import (
	"errors"
	"fmt"

	apperrors "github.com/surveyhub/quiz-service/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrForbidden        = errors.New("forbidden - insufficient permissions")
	ErrValidationFailed = errors.New("validation failed")
	ErrConflict         = errors.New("resource conflict")

	// Quiz specific errors
	ErrQuizNotFound           = errors.New("quiz not found")
	ErrQuizStartDateImmutable = errors.New("quiz start date cannot be changed after creation")
	ErrQuizStartDateInPast    = errors.New("quiz start date cannot be before the current date")
	ErrQuizDatesOutOfOrder    = errors.New("quiz end date cannot be before its start date")

	// Question specific errors
	ErrQuestionNotFound = errors.New("question not found")

	// Answer specific errors
	ErrAnswerNotFound      = errors.New("answer not found")
	ErrAnswerAlreadyExists = errors.New("user has already answered this question")

	// User errors
	ErrUserNotFound = errors.New("user not found")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

type PermissionError struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
	Reason   string `json:"reason"`
}

func (pe *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: cannot %s %s - %s", pe.Action, pe.Resource, pe.Reason)
}

func NewPermissionError(resource, action, reason string) *PermissionError {
	return &PermissionError{
		Resource: resource,
		Action:   action,
		Reason:   reason,
	}
}

// ===== ERROR CLASSIFIERS =====

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrQuizNotFound) ||
		errors.Is(err, ErrQuestionNotFound) ||
		errors.Is(err, ErrAnswerNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsForbidden checks if error represents an authorization failure
func IsForbidden(err error) bool {
	if errors.Is(err, ErrForbidden) {
		return true
	}
	var pe *PermissionError
	return errors.As(err, &pe)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) ||
		errors.Is(err, ErrQuizStartDateImmutable) ||
		errors.Is(err, ErrQuizStartDateInPast) ||
		errors.Is(err, ErrQuizDatesOutOfOrder) {
		return true
	}
	var ve ValidationErrors
	return errors.As(err, &ve)
}

// IsConflict checks if error represents a resource conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrAnswerAlreadyExists)
}
