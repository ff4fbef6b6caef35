package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/surveyhub/quiz-service/internal/errors"
	"github.com/surveyhub/quiz-service/internal/models"
)

func strPtr(s string) *string { return &s }

func TestValidateShape_TextQuestion(t *testing.T) {
	v := NewAnswerValidator()

	assert.NoError(t, v.ValidateShape(models.QuestionText, strPtr("something"), 0))

	for _, text := range []*string{nil, strPtr("")} {
		err := v.ValidateShape(models.QuestionText, text, 0)
		require.Error(t, err)

		var verrs apperrors.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, RuleTextRequired, verrs[0].Rule)
	}
}

func TestValidateShape_SingleOptionQuestion(t *testing.T) {
	v := NewAnswerValidator()

	assert.NoError(t, v.ValidateShape(models.QuestionSingleOption, nil, 1))

	for _, count := range []int{0, 2, 5} {
		err := v.ValidateShape(models.QuestionSingleOption, nil, count)
		require.Error(t, err, "selection count %d must be rejected", count)

		var verrs apperrors.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, RuleSingleSelection, verrs[0].Rule)
	}
}

func TestValidateShape_MultipleOptionQuestion(t *testing.T) {
	v := NewAnswerValidator()

	assert.NoError(t, v.ValidateShape(models.QuestionMultipleOption, nil, 1))
	assert.NoError(t, v.ValidateShape(models.QuestionMultipleOption, nil, 3))

	err := v.ValidateShape(models.QuestionMultipleOption, nil, 0)
	require.Error(t, err)

	var verrs apperrors.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, RuleSelectionMissing, verrs[0].Rule)
}

func TestValidateSelections_RejectsForeignOptions(t *testing.T) {
	v := NewAnswerValidator()
	options := []models.AnswerOption{
		{ID: 10, Name: "A"},
		{ID: 11, Name: "B"},
	}

	err := v.ValidateSelections([]uint{11, 99, 42}, options)
	require.Error(t, err)

	var verrs apperrors.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, RuleForeignOption, verrs[0].Rule)
	assert.Equal(t, []uint{42, 99}, verrs[0].Value)
}

func TestValidateSelections_AcceptsOwnOptions(t *testing.T) {
	v := NewAnswerValidator()
	options := []models.AnswerOption{
		{ID: 10, Name: "A"},
		{ID: 11, Name: "B"},
	}

	assert.NoError(t, v.ValidateSelections([]uint{10, 11}, options))
	assert.NoError(t, v.ValidateSelections(nil, options))
}
