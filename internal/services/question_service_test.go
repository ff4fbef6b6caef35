package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/surveyhub/quiz-service/internal/models"
)

func newQuestionService(repo *mockRepository) QuestionService {
	return NewQuestionService(repo, testLogger(), newTestValidator())
}

func TestQuestionCreate_TextQuestionDiscardsOptions(t *testing.T) {
	repo := newMockRepository()
	svc := newQuestionService(repo)

	repo.quiz.On("GetByID", mock.Anything, uint(1)).Return(&models.Quiz{ID: 1}, nil)
	repo.question.On("Create", mock.Anything, mock.AnythingOfType("*models.Question")).Return(nil)

	question, err := svc.Create(context.Background(), &CreateQuestionRequest{
		Text:          "t",
		Type:          models.QuestionText,
		Quiz:          1,
		AnswerOptions: []AnswerOptionPayload{{Name: "A"}, {Name: "B"}},
	}, staffActor())

	require.NoError(t, err)
	assert.Empty(t, question.AnswerOptions)
}

func TestQuestionCreate_DefaultsToTextType(t *testing.T) {
	repo := newMockRepository()
	svc := newQuestionService(repo)

	repo.quiz.On("GetByID", mock.Anything, uint(1)).Return(&models.Quiz{ID: 1}, nil)
	repo.question.On("Create", mock.Anything, mock.AnythingOfType("*models.Question")).Return(nil)

	question, err := svc.Create(context.Background(), &CreateQuestionRequest{
		Text: "something",
		Quiz: 1,
	}, staffActor())

	require.NoError(t, err)
	assert.Equal(t, models.QuestionText, question.Type)
}

func TestQuestionCreate_ChoiceQuestionRequiresOptions(t *testing.T) {
	repo := newMockRepository()
	svc := newQuestionService(repo)

	_, err := svc.Create(context.Background(), &CreateQuestionRequest{
		Text: "t",
		Type: models.QuestionSingleOption,
		Quiz: 1,
	}, staffActor())

	require.Error(t, err)
	assert.True(t, IsValidation(err))
	repo.question.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestQuestionCreate_RejectsDuplicateOptionNames(t *testing.T) {
	repo := newMockRepository()
	svc := newQuestionService(repo)

	_, err := svc.Create(context.Background(), &CreateQuestionRequest{
		Text:          "t",
		Type:          models.QuestionSingleOption,
		Quiz:          1,
		AnswerOptions: []AnswerOptionPayload{{Name: "A"}, {Name: "A"}},
	}, staffActor())

	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestQuestionCreate_PersistsOptionsWithQuestion(t *testing.T) {
	repo := newMockRepository()
	svc := newQuestionService(repo)

	repo.quiz.On("GetByID", mock.Anything, uint(1)).Return(&models.Quiz{ID: 1}, nil)
	repo.question.On("Create", mock.Anything, mock.MatchedBy(func(q *models.Question) bool {
		return len(q.AnswerOptions) == 3
	})).Return(nil)

	question, err := svc.Create(context.Background(), &CreateQuestionRequest{
		Text:          "t",
		Type:          models.QuestionMultipleOption,
		Quiz:          1,
		AnswerOptions: []AnswerOptionPayload{{Name: "option#1"}, {Name: "option#2"}, {Name: "option#3"}},
	}, staffActor())

	require.NoError(t, err)
	assert.Len(t, question.AnswerOptions, 3)
	repo.question.AssertExpectations(t)
}

func TestQuestionCreate_RequiresStaff(t *testing.T) {
	repo := newMockRepository()
	svc := newQuestionService(repo)

	_, err := svc.Create(context.Background(), &CreateQuestionRequest{
		Text: "t",
		Quiz: 1,
	}, models.Actor{})

	require.Error(t, err)
	assert.True(t, IsForbidden(err))
}

func TestQuestionCreate_UnknownQuizRejected(t *testing.T) {
	repo := newMockRepository()
	svc := newQuestionService(repo)

	repo.quiz.On("GetByID", mock.Anything, uint(42)).Return(nil, errRecordNotFound())

	_, err := svc.Create(context.Background(), &CreateQuestionRequest{
		Text: "t",
		Quiz: 42,
	}, staffActor())

	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestQuestionUpdate_RejectsCollidingOptionNames(t *testing.T) {
	repo := newMockRepository()
	svc := newQuestionService(repo)

	existing := &models.Question{
		ID:   5,
		Text: "t",
		Type: models.QuestionSingleOption,
		AnswerOptions: []models.AnswerOption{
			{ID: 1, Name: "A", QuestionID: 5},
			{ID: 2, Name: "B", QuestionID: 5},
		},
	}
	repo.question.On("GetByID", mock.Anything, uint(5)).Return(existing, nil)

	_, err := svc.Update(context.Background(), 5, &UpdateQuestionRequest{
		AnswerOptions: []AnswerOptionPayload{{Name: "A"}, {Name: "C"}},
	}, staffActor())

	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "answer_options")
	repo.question.AssertNotCalled(t, "AddOptions", mock.Anything, mock.Anything, mock.Anything)
}

func TestQuestionUpdate_AppendsFreshOptions(t *testing.T) {
	repo := newMockRepository()
	svc := newQuestionService(repo)

	existing := &models.Question{
		ID:   5,
		Text: "t",
		Type: models.QuestionMultipleOption,
		AnswerOptions: []models.AnswerOption{
			{ID: 1, Name: "A", QuestionID: 5},
		},
	}
	updated := &models.Question{
		ID:   5,
		Text: "t",
		Type: models.QuestionMultipleOption,
		AnswerOptions: []models.AnswerOption{
			{ID: 1, Name: "A", QuestionID: 5},
			{ID: 2, Name: "B", QuestionID: 5},
		},
	}
	repo.question.On("GetByID", mock.Anything, uint(5)).Return(existing, nil).Once()
	repo.question.On("AddOptions", mock.Anything, uint(5), []string{"B"}).Return(nil)
	repo.question.On("GetByID", mock.Anything, uint(5)).Return(updated, nil).Once()

	result, err := svc.Update(context.Background(), 5, &UpdateQuestionRequest{
		AnswerOptions: []AnswerOptionPayload{{Name: "B"}},
	}, staffActor())

	require.NoError(t, err)
	assert.Len(t, result.AnswerOptions, 2)
	repo.question.AssertExpectations(t)
}

func TestQuestionDelete_RequiresStaff(t *testing.T) {
	repo := newMockRepository()
	svc := newQuestionService(repo)

	err := svc.Delete(context.Background(), 5, userActor(2))
	require.Error(t, err)
	assert.True(t, IsForbidden(err))
	repo.question.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
