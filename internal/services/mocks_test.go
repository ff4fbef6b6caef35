package services

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/surveyhub/quiz-service/internal/cache"
	"github.com/surveyhub/quiz-service/internal/events"
	"github.com/surveyhub/quiz-service/internal/models"
	"github.com/surveyhub/quiz-service/internal/repositories"
	"github.com/surveyhub/quiz-service/internal/validator"
	"gorm.io/gorm"
)

// MockQuizRepository is a mock implementation of QuizRepository
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) Create(ctx context.Context, quiz *models.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *MockQuizRepository) GetByID(ctx context.Context, id uint) (*models.Quiz, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Quiz), args.Error(1)
}

func (m *MockQuizRepository) GetByIDWithDetails(ctx context.Context, id uint) (*models.Quiz, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Quiz), args.Error(1)
}

func (m *MockQuizRepository) Update(ctx context.Context, quiz *models.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *MockQuizRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuizRepository) List(ctx context.Context, filters repositories.QuizFilters) ([]*models.Quiz, int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]*models.Quiz), args.Get(1).(int64), args.Error(2)
}

func (m *MockQuizRepository) GetAnsweredByUser(ctx context.Context, userID uint) ([]*models.Quiz, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*models.Quiz), args.Error(1)
}

// MockQuestionRepository is a mock implementation of QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(ctx context.Context, question *models.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Question), args.Error(1)
}

func (m *MockQuestionRepository) Update(ctx context.Context, question *models.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuestionRepository) AddOptions(ctx context.Context, questionID uint, names []string) error {
	args := m.Called(ctx, questionID, names)
	return args.Error(0)
}

func (m *MockQuestionRepository) List(ctx context.Context, filters repositories.QuestionFilters) ([]*models.Question, int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]*models.Question), args.Get(1).(int64), args.Error(2)
}

// MockAnswerRepository is a mock implementation of AnswerRepository
type MockAnswerRepository struct {
	mock.Mock
}

func (m *MockAnswerRepository) Create(ctx context.Context, answer *models.Answer) error {
	args := m.Called(ctx, answer)
	return args.Error(0)
}

func (m *MockAnswerRepository) GetByID(ctx context.Context, id uint) (*models.Answer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Answer), args.Error(1)
}

func (m *MockAnswerRepository) List(ctx context.Context, filters repositories.AnswerFilters) ([]*models.Answer, int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]*models.Answer), args.Get(1).(int64), args.Error(2)
}

func (m *MockAnswerRepository) ExistsForUser(ctx context.Context, userID, questionID uint) (bool, error) {
	args := m.Called(ctx, userID, questionID)
	return args.Bool(0), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// mockRepository bundles the entity mocks behind the aggregate contract
type mockRepository struct {
	quiz     *MockQuizRepository
	question *MockQuestionRepository
	answer   *MockAnswerRepository
	user     *MockUserRepository
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		quiz:     new(MockQuizRepository),
		question: new(MockQuestionRepository),
		answer:   new(MockAnswerRepository),
		user:     new(MockUserRepository),
	}
}

func (r *mockRepository) Quiz() repositories.QuizRepository         { return r.quiz }
func (r *mockRepository) Question() repositories.QuestionRepository { return r.question }
func (r *mockRepository) Answer() repositories.AnswerRepository     { return r.answer }
func (r *mockRepository) User() repositories.UserRepository         { return r.user }

// Shared test fixtures

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testPublisher(t *testing.T) *events.MockEventPublisher {
	t.Helper()
	return events.NewMockEventPublisher(testLogger())
}

func staffActor() models.Actor {
	id := uint(1)
	return models.Actor{UserID: &id, IsStaff: true}
}

func userActor(id uint) models.Actor {
	return models.Actor{UserID: &id}
}

func newTestValidator() *validator.Validator {
	return validator.New()
}

func errRecordNotFound() error {
	return gorm.ErrRecordNotFound
}

var _ cache.CacheService = cache.NoopCache{}
