package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/surveyhub/quiz-service/internal/errors"
	"github.com/surveyhub/quiz-service/internal/models"
)

func TestValidateOptions_TextQuestionIgnoresOptions(t *testing.T) {
	v := NewQuestionValidator()

	assert.NoError(t, v.ValidateOptions(models.QuestionText, nil))
	assert.NoError(t, v.ValidateOptions(models.QuestionText, []string{"A", "A"}))
}

func TestValidateOptions_ChoiceQuestionRequiresOptions(t *testing.T) {
	v := NewQuestionValidator()

	for _, questionType := range []models.QuestionType{models.QuestionSingleOption, models.QuestionMultipleOption} {
		err := v.ValidateOptions(questionType, nil)
		require.Error(t, err)

		var verrs apperrors.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		require.Len(t, verrs, 1)
		assert.Equal(t, RuleOptionsRequired, verrs[0].Rule)
		assert.Equal(t, "answer_options", verrs[0].Field)
	}
}

func TestValidateOptions_RejectsDuplicateNames(t *testing.T) {
	v := NewQuestionValidator()

	err := v.ValidateOptions(models.QuestionSingleOption, []string{"A", "B", "A"})
	require.Error(t, err)

	var verrs apperrors.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, RuleDuplicateOptions, verrs[0].Rule)
	assert.Equal(t, []string{"A"}, verrs[0].Value)
}

func TestValidateOptions_AcceptsUniqueNames(t *testing.T) {
	v := NewQuestionValidator()

	assert.NoError(t, v.ValidateOptions(models.QuestionSingleOption, []string{"A", "B", "C"}))
	assert.NoError(t, v.ValidateOptions(models.QuestionMultipleOption, []string{"yes", "no"}))
}

func TestValidateAgainstExisting_RejectsCollisions(t *testing.T) {
	v := NewQuestionValidator()
	existing := []models.AnswerOption{
		{ID: 1, Name: "red"},
		{ID: 2, Name: "green"},
	}

	err := v.ValidateAgainstExisting([]string{"green", "blue", "red"}, existing)
	require.Error(t, err)

	var verrs apperrors.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, RuleConflictingOption, verrs[0].Rule)
	assert.Equal(t, []string{"green", "red"}, verrs[0].Value)
}

func TestValidateAgainstExisting_AcceptsFreshNames(t *testing.T) {
	v := NewQuestionValidator()
	existing := []models.AnswerOption{{ID: 1, Name: "red"}}

	assert.NoError(t, v.ValidateAgainstExisting([]string{"blue", "yellow"}, existing))
	assert.NoError(t, v.ValidateAgainstExisting(nil, existing))
}
