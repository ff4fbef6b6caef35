package services

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "github.com/surveyhub/quiz-service/internal/errors"
	"github.com/surveyhub/quiz-service/internal/models"
	"github.com/surveyhub/quiz-service/internal/repositories"
	"github.com/surveyhub/quiz-service/internal/validator"
)

type questionService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewQuestionService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator) QuestionService {
	return &questionService{
		repo:      repo,
		logger:    logger,
		validator: v,
	}
}

func (s *questionService) Create(ctx context.Context, req *CreateQuestionRequest, actor models.Actor) (*models.Question, error) {
	if !actor.IsStaff {
		return nil, NewPermissionError("question", "create", "staff role required")
	}

	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, apperrors.ToValidationErrors(err)
	}

	questionType := req.Type
	if questionType == "" {
		questionType = models.QuestionText
	}

	names := optionNames(req.AnswerOptions)
	if err := s.validator.Question().ValidateOptions(questionType, names); err != nil {
		return nil, err
	}

	// The quiz reference comes from the payload, so a dangling id is a
	// validation failure rather than a 404.
	if _, err := s.repo.Quiz().GetByID(ctx, req.Quiz); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, apperrors.ValidationErrors{
				*apperrors.NewValidationError("quiz", "referenced quiz does not exist", req.Quiz),
			}
		}
		return nil, fmt.Errorf("failed to resolve quiz: %w", err)
	}

	question := &models.Question{
		Text:   req.Text,
		Type:   questionType,
		QuizID: req.Quiz,
	}
	// TEXT questions discard any submitted options.
	if questionType.HasOptions() {
		for _, name := range names {
			question.AnswerOptions = append(question.AnswerOptions, models.AnswerOption{Name: name})
		}
	}

	if err := s.repo.Question().Create(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	s.logger.Info("Question created", "question_id", question.ID, "quiz_id", question.QuizID, "type", question.Type)
	return question, nil
}

func (s *questionService) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	question, err := s.repo.Question().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return question, nil
}

func (s *questionService) List(ctx context.Context, filters repositories.QuestionFilters) ([]*models.Question, int64, error) {
	return s.repo.Question().List(ctx, filters)
}

func (s *questionService) Update(ctx context.Context, id uint, req *UpdateQuestionRequest, actor models.Actor) (*models.Question, error) {
	if !actor.IsStaff {
		return nil, NewPermissionError("question", "update", "staff role required")
	}

	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, apperrors.ToValidationErrors(err)
	}

	question, err := s.repo.Question().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	names := optionNames(req.AnswerOptions)
	if question.Type.HasOptions() && len(names) > 0 {
		if err := s.validator.Question().ValidateOptions(question.Type, names); err != nil {
			return nil, err
		}
		if err := s.validator.Question().ValidateAgainstExisting(names, question.AnswerOptions); err != nil {
			return nil, err
		}
	}

	if req.Text != nil {
		question.Text = *req.Text
		if err := s.repo.Question().Update(ctx, question); err != nil {
			return nil, fmt.Errorf("failed to update question: %w", err)
		}
	}

	// New options are appended, never merged over existing ones. TEXT
	// questions discard submitted options.
	if question.Type.HasOptions() && len(names) > 0 {
		if err := s.repo.Question().AddOptions(ctx, question.ID, names); err != nil {
			return nil, fmt.Errorf("failed to add answer options: %w", err)
		}
	}

	updated, err := s.repo.Question().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload question: %w", err)
	}

	s.logger.Info("Question updated", "question_id", id)
	return updated, nil
}

func (s *questionService) Delete(ctx context.Context, id uint, actor models.Actor) error {
	if !actor.IsStaff {
		return NewPermissionError("question", "delete", "staff role required")
	}

	if err := s.repo.Question().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrQuestionNotFound
		}
		return fmt.Errorf("failed to delete question: %w", err)
	}

	s.logger.Info("Question deleted", "question_id", id)
	return nil
}

func optionNames(options []AnswerOptionPayload) []string {
	if len(options) == 0 {
		return nil
	}
	names := make([]string, 0, len(options))
	for _, option := range options {
		names = append(names, option.Name)
	}
	return names
}
