package services

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "github.com/surveyhub/quiz-service/internal/errors"
	"github.com/surveyhub/quiz-service/internal/events"
	"github.com/surveyhub/quiz-service/internal/models"
	"github.com/surveyhub/quiz-service/internal/repositories"
	"github.com/surveyhub/quiz-service/internal/validator"
)

type answerService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewAnswerService(
	repo repositories.Repository,
	logger *slog.Logger,
	v *validator.Validator,
	publisher events.EventPublisher,
) AnswerService {
	return &answerService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: publisher,
	}
}

// Create composes and persists an answer for the acting identity. All rules
// are checked before any row is written; the answer and its selected options
// go in as one transaction.
func (s *answerService) Create(ctx context.Context, req *CreateAnswerRequest, actor models.Actor) (*models.Answer, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, apperrors.ToValidationErrors(err)
	}

	question, err := s.repo.Question().GetByID(ctx, req.Question)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, apperrors.ValidationErrors{
				*apperrors.NewValidationError("question", "referenced question does not exist", req.Question),
			}
		}
		return nil, fmt.Errorf("failed to resolve question: %w", err)
	}

	// Authenticated actors answer each question at most once. The composite
	// unique index backs this check up under concurrent submissions.
	if actor.Authenticated() {
		exists, err := s.repo.Answer().ExistsForUser(ctx, *actor.UserID, question.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing answer: %w", err)
		}
		if exists {
			return nil, ErrAnswerAlreadyExists
		}
	}

	selections := selectedOptionIDs(req.SelectedOptions)
	text := req.Text

	// TEXT questions discard submitted selections before shape checking.
	if question.Type == models.QuestionText {
		selections = nil
	}

	if err := s.validator.Answer().ValidateShape(question.Type, text, len(selections)); err != nil {
		return nil, err
	}
	if len(selections) > 0 {
		if err := s.validator.Answer().ValidateSelections(selections, question.AnswerOptions); err != nil {
			return nil, err
		}
		// An option-based answer takes precedence over free text.
		text = nil
	}

	answer := &models.Answer{
		Text:       text,
		UserID:     actor.UserID,
		QuestionID: question.ID,
	}
	for _, optionID := range selections {
		answer.SelectedOptions = append(answer.SelectedOptions, models.SelectedOption{AnswerOptionID: optionID})
	}

	if err := s.repo.Answer().Create(ctx, answer); err != nil {
		if repositories.IsDuplicateKeyError(err) {
			return nil, ErrAnswerAlreadyExists
		}
		return nil, fmt.Errorf("failed to create answer: %w", err)
	}

	s.publish(ctx, events.NewAnswerSubmittedEvent(events.AnswerSubmittedEvent{
		AnswerID:        answer.ID,
		QuestionID:      answer.QuestionID,
		UserID:          answer.UserID,
		SelectedOptions: selections,
	}))

	s.logger.Info("Answer submitted",
		"answer_id", answer.ID,
		"question_id", answer.QuestionID,
		"anonymous", answer.UserID == nil)
	return answer, nil
}

func (s *answerService) GetByID(ctx context.Context, id uint) (*models.Answer, error) {
	answer, err := s.repo.Answer().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrAnswerNotFound
		}
		return nil, fmt.Errorf("failed to get answer: %w", err)
	}
	return answer, nil
}

func (s *answerService) List(ctx context.Context, filters repositories.AnswerFilters) ([]*models.Answer, int64, error) {
	return s.repo.Answer().List(ctx, filters)
}

func (s *answerService) publish(ctx context.Context, event *events.SurveyEvent) {
	if err := s.publisher.PublishSurveyEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish event", "event_type", event.Type, "error", err)
	}
}

func selectedOptionIDs(options []SelectedOptionPayload) []uint {
	if len(options) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(options))
	for _, option := range options {
		ids = append(ids, option.AnswerOption)
	}
	return ids
}
