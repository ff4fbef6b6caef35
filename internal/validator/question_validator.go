package validator

import (
	"fmt"
	"sort"

	apperrors "github.com/surveyhub/quiz-service/internal/errors"
	"github.com/surveyhub/quiz-service/internal/models"
)

// Rule identifiers reported in validation error payloads.
const (
	RuleOptionsRequired   = "options_required"
	RuleDuplicateOptions  = "duplicate_options"
	RuleConflictingOption = "conflicting_options"
)

// QuestionValidator enforces the type-dependent option rules for questions.
type QuestionValidator struct{}

// NewQuestionValidator creates a new question validator
func NewQuestionValidator() *QuestionValidator {
	return &QuestionValidator{}
}

// ValidateOptions checks a submitted option-name list against the question
// type. TEXT questions ignore options entirely (the composition layer discards
// them before persisting), so any list is accepted here. Choice questions need
// a non-empty list with no duplicate names.
func (v *QuestionValidator) ValidateOptions(questionType models.QuestionType, names []string) error {
	if !questionType.HasOptions() {
		return nil
	}

	if len(names) == 0 {
		return apperrors.ValidationErrors{
			*apperrors.NewValidationErrorWithRule(
				"answer_options",
				fmt.Sprintf("is required for %s questions and must not be empty", questionType),
				RuleOptionsRequired,
				nil,
			),
		}
	}

	if duplicates := duplicateNames(names); len(duplicates) > 0 {
		return apperrors.ValidationErrors{
			*apperrors.NewValidationErrorWithRule(
				"answer_options",
				fmt.Sprintf("contains duplicate option names: %v", duplicates),
				RuleDuplicateOptions,
				duplicates,
			),
		}
	}

	return nil
}

// ValidateAgainstExisting rejects newly supplied option names that collide
// with the question's current options. Collisions are a conflict, never a
// silent merge.
func (v *QuestionValidator) ValidateAgainstExisting(names []string, existing []models.AnswerOption) error {
	known := make(map[string]bool, len(existing))
	for _, option := range existing {
		known[option.Name] = true
	}

	var conflicting []string
	for _, name := range names {
		if known[name] {
			conflicting = append(conflicting, name)
		}
	}
	if len(conflicting) == 0 {
		return nil
	}

	sort.Strings(conflicting)
	return apperrors.ValidationErrors{
		*apperrors.NewValidationErrorWithRule(
			"answer_options",
			fmt.Sprintf("question already has options named: %v", conflicting),
			RuleConflictingOption,
			conflicting,
		),
	}
}

func duplicateNames(names []string) []string {
	seen := make(map[string]int, len(names))
	for _, name := range names {
		seen[name]++
	}

	var duplicates []string
	for name, count := range seen {
		if count > 1 {
			duplicates = append(duplicates, name)
		}
	}
	sort.Strings(duplicates)
	return duplicates
}
