package validator

import (
	"fmt"
	"sort"

	apperrors "github.com/surveyhub/quiz-service/internal/errors"
	"github.com/surveyhub/quiz-service/internal/models"
)

const (
	RuleTextRequired     = "text_required"
	RuleSingleSelection  = "single_selection_required"
	RuleSelectionMissing = "selection_required"
	RuleForeignOption    = "foreign_answer_option"
)

// AnswerValidator enforces the type-dependent shape rules for answers.
type AnswerValidator struct{}

// NewAnswerValidator creates a new answer validator
func NewAnswerValidator() *AnswerValidator {
	return &AnswerValidator{}
}

// ValidateShape checks the submitted answer against the question's type:
//   - TEXT: free text is the payload and must be present; selections are
//     discarded by the composition layer, so they are not checked here.
//   - SINGLE_ANSWER_OPTION: exactly one selected option.
//   - MULTIPLE_ANSWER_OPTION: at least one selected option.
func (v *AnswerValidator) ValidateShape(questionType models.QuestionType, text *string, selectionCount int) error {
	switch questionType {
	case models.QuestionText:
		if text == nil || *text == "" {
			return apperrors.ValidationErrors{
				*apperrors.NewValidationErrorWithRule(
					"text",
					"is required for TEXT questions",
					RuleTextRequired,
					nil,
				),
			}
		}
	case models.QuestionSingleOption:
		if selectionCount != 1 {
			return apperrors.ValidationErrors{
				*apperrors.NewValidationErrorWithRule(
					"selected_options",
					"exactly one selected option is required for SINGLE_ANSWER_OPTION questions",
					RuleSingleSelection,
					selectionCount,
				),
			}
		}
	case models.QuestionMultipleOption:
		if selectionCount < 1 {
			return apperrors.ValidationErrors{
				*apperrors.NewValidationErrorWithRule(
					"selected_options",
					"at least one selected option is required for MULTIPLE_ANSWER_OPTION questions",
					RuleSelectionMissing,
					selectionCount,
				),
			}
		}
	}
	return nil
}

// ValidateSelections checks that every selected option id belongs to the
// target question's option set, reporting the foreign ids otherwise.
func (v *AnswerValidator) ValidateSelections(selections []uint, options []models.AnswerOption) error {
	known := make(map[uint]bool, len(options))
	for _, option := range options {
		known[option.ID] = true
	}

	var foreign []uint
	for _, id := range selections {
		if !known[id] {
			foreign = append(foreign, id)
		}
	}
	if len(foreign) == 0 {
		return nil
	}

	sort.Slice(foreign, func(i, j int) bool { return foreign[i] < foreign[j] })
	return apperrors.ValidationErrors{
		*apperrors.NewValidationErrorWithRule(
			"selected_options",
			fmt.Sprintf("selected options do not belong to the question: %v", foreign),
			RuleForeignOption,
			foreign,
		),
	}
}
