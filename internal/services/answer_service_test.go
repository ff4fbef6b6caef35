package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/surveyhub/quiz-service/internal/events"
	"github.com/surveyhub/quiz-service/internal/models"
)

func newAnswerService(repo *mockRepository, publisher *events.MockEventPublisher) AnswerService {
	return NewAnswerService(repo, testLogger(), newTestValidator(), publisher)
}

func textQuestion(id uint) *models.Question {
	return &models.Question{ID: id, Text: "q", Type: models.QuestionText, QuizID: 1}
}

func choiceQuestion(id uint, questionType models.QuestionType, optionIDs ...uint) *models.Question {
	q := &models.Question{ID: id, Text: "q", Type: questionType, QuizID: 1}
	for _, optionID := range optionIDs {
		q.AnswerOptions = append(q.AnswerOptions, models.AnswerOption{ID: optionID, QuestionID: id, Name: "opt"})
	}
	return q
}

func TestAnswerCreate_AnonymousTextAnswer(t *testing.T) {
	repo := newMockRepository()
	publisher := testPublisher(t)
	svc := newAnswerService(repo, publisher)

	repo.question.On("GetByID", mock.Anything, uint(5)).Return(textQuestion(5), nil)
	repo.answer.On("Create", mock.Anything, mock.AnythingOfType("*models.Answer")).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Answer).ID = 77
	}).Return(nil)

	text := "something"
	answer, err := svc.Create(context.Background(), &CreateAnswerRequest{Question: 5, Text: &text}, models.Actor{})

	require.NoError(t, err)
	assert.Nil(t, answer.UserID)
	require.NotNil(t, answer.Text)
	assert.Equal(t, "something", *answer.Text)

	// Anonymous actors skip the duplicate check entirely.
	repo.answer.AssertNotCalled(t, "ExistsForUser", mock.Anything, mock.Anything, mock.Anything)

	// A submitted answer produces one event.
	require.Len(t, publisher.GetPublishedEvents(), 1)
	assert.Equal(t, events.EventAnswerSubmitted, publisher.GetPublishedEvents()[0].Type)
}

func TestAnswerCreate_DuplicateRejected(t *testing.T) {
	repo := newMockRepository()
	svc := newAnswerService(repo, testPublisher(t))

	repo.question.On("GetByID", mock.Anything, uint(5)).Return(textQuestion(5), nil)
	repo.answer.On("ExistsForUser", mock.Anything, uint(9), uint(5)).Return(true, nil)

	text := "again"
	_, err := svc.Create(context.Background(), &CreateAnswerRequest{Question: 5, Text: &text}, userActor(9))

	assert.ErrorIs(t, err, ErrAnswerAlreadyExists)
	assert.True(t, IsConflict(err))
	repo.answer.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAnswerCreate_TextQuestionDiscardsSelections(t *testing.T) {
	repo := newMockRepository()
	svc := newAnswerService(repo, testPublisher(t))

	repo.question.On("GetByID", mock.Anything, uint(5)).Return(textQuestion(5), nil)
	repo.answer.On("Create", mock.Anything, mock.AnythingOfType("*models.Answer")).Return(nil)

	text := "free text"
	answer, err := svc.Create(context.Background(), &CreateAnswerRequest{
		Question:        5,
		Text:            &text,
		SelectedOptions: []SelectedOptionPayload{{AnswerOption: 1}, {AnswerOption: 2}},
	}, models.Actor{})

	require.NoError(t, err)
	assert.Empty(t, answer.SelectedOptions)
	require.NotNil(t, answer.Text)
}

func TestAnswerCreate_SingleOptionShape(t *testing.T) {
	repo := newMockRepository()
	svc := newAnswerService(repo, testPublisher(t))

	question := choiceQuestion(5, models.QuestionSingleOption, 10, 11, 12)
	repo.question.On("GetByID", mock.Anything, uint(5)).Return(question, nil)
	repo.answer.On("Create", mock.Anything, mock.AnythingOfType("*models.Answer")).Return(nil)

	// Exactly one selection succeeds.
	answer, err := svc.Create(context.Background(), &CreateAnswerRequest{
		Question:        5,
		SelectedOptions: []SelectedOptionPayload{{AnswerOption: 11}},
	}, models.Actor{})
	require.NoError(t, err)
	require.Len(t, answer.SelectedOptions, 1)
	assert.Equal(t, uint(11), answer.SelectedOptions[0].AnswerOptionID)

	// Zero and two selections are both rejected.
	for _, selections := range [][]SelectedOptionPayload{
		nil,
		{{AnswerOption: 10}, {AnswerOption: 11}},
	} {
		_, err := svc.Create(context.Background(), &CreateAnswerRequest{
			Question:        5,
			SelectedOptions: selections,
		}, models.Actor{})
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	}
}

func TestAnswerCreate_MultipleOptionShape(t *testing.T) {
	repo := newMockRepository()
	svc := newAnswerService(repo, testPublisher(t))

	question := choiceQuestion(5, models.QuestionMultipleOption, 10, 11, 12)
	repo.question.On("GetByID", mock.Anything, uint(5)).Return(question, nil)
	repo.answer.On("Create", mock.Anything, mock.AnythingOfType("*models.Answer")).Return(nil)

	_, err := svc.Create(context.Background(), &CreateAnswerRequest{Question: 5}, models.Actor{})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	answer, err := svc.Create(context.Background(), &CreateAnswerRequest{
		Question:        5,
		SelectedOptions: []SelectedOptionPayload{{AnswerOption: 10}, {AnswerOption: 12}},
	}, models.Actor{})
	require.NoError(t, err)
	assert.Len(t, answer.SelectedOptions, 2)
}

func TestAnswerCreate_ForeignOptionRejected(t *testing.T) {
	repo := newMockRepository()
	svc := newAnswerService(repo, testPublisher(t))

	question := choiceQuestion(5, models.QuestionSingleOption, 10, 11)
	repo.question.On("GetByID", mock.Anything, uint(5)).Return(question, nil)

	_, err := svc.Create(context.Background(), &CreateAnswerRequest{
		Question:        5,
		SelectedOptions: []SelectedOptionPayload{{AnswerOption: 99}},
	}, models.Actor{})

	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "selected_options")
	repo.answer.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAnswerCreate_SelectionsTakePrecedenceOverText(t *testing.T) {
	repo := newMockRepository()
	svc := newAnswerService(repo, testPublisher(t))

	question := choiceQuestion(5, models.QuestionSingleOption, 10)
	repo.question.On("GetByID", mock.Anything, uint(5)).Return(question, nil)
	repo.answer.On("ExistsForUser", mock.Anything, uint(3), uint(5)).Return(false, nil)
	repo.answer.On("Create", mock.Anything, mock.AnythingOfType("*models.Answer")).Return(nil)

	text := "ignored"
	answer, err := svc.Create(context.Background(), &CreateAnswerRequest{
		Question:        5,
		Text:            &text,
		SelectedOptions: []SelectedOptionPayload{{AnswerOption: 10}},
	}, userActor(3))

	require.NoError(t, err)
	assert.Nil(t, answer.Text)
	require.NotNil(t, answer.UserID)
	assert.Equal(t, uint(3), *answer.UserID)
}

func TestAnswerCreate_UnknownQuestionRejected(t *testing.T) {
	repo := newMockRepository()
	svc := newAnswerService(repo, testPublisher(t))

	repo.question.On("GetByID", mock.Anything, uint(404)).Return(nil, errRecordNotFound())

	text := "x"
	_, err := svc.Create(context.Background(), &CreateAnswerRequest{Question: 404, Text: &text}, models.Actor{})

	require.Error(t, err)
	assert.True(t, IsValidation(err))
}
