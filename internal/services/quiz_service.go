package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/surveyhub/quiz-service/internal/cache"
	apperrors "github.com/surveyhub/quiz-service/internal/errors"
	"github.com/surveyhub/quiz-service/internal/events"
	"github.com/surveyhub/quiz-service/internal/models"
	"github.com/surveyhub/quiz-service/internal/repositories"
	"github.com/surveyhub/quiz-service/internal/validator"
	"gorm.io/datatypes"
)

const (
	dateLayout = "2006-01-02"

	publicQuizListKey = "quizzes:public"
	publicQuizListTTL = time.Minute
)

type quizService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	cache     cache.CacheService
	publisher events.EventPublisher
}

func NewQuizService(
	repo repositories.Repository,
	logger *slog.Logger,
	v *validator.Validator,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
) QuizService {
	return &quizService{
		repo:      repo,
		logger:    logger,
		validator: v,
		cache:     cacheService,
		publisher: publisher,
	}
}

// cachedQuizList is the cache entry for the public quiz listing.
type cachedQuizList struct {
	Quizzes []*models.Quiz `json:"quizzes"`
	Total   int64          `json:"total"`
}

func (s *quizService) Create(ctx context.Context, req *CreateQuizRequest, actor models.Actor) (*models.Quiz, error) {
	if !actor.IsStaff {
		return nil, NewPermissionError("quiz", "create", "staff role required")
	}

	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, apperrors.ToValidationErrors(err)
	}

	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if startDate.Before(today()) {
		return nil, ErrQuizStartDateInPast
	}

	quiz := &models.Quiz{
		Title:       req.Title,
		StartDate:   datatypes.Date(startDate),
		EndDate:     datatypes.Date(endDate),
		Description: req.Description,
	}
	if err := s.repo.Quiz().Create(ctx, quiz); err != nil {
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}

	s.invalidatePublicList(ctx)
	s.publish(ctx, events.NewQuizCreatedEvent(events.QuizCreatedEvent{
		QuizID:    quiz.ID,
		Title:     quiz.Title,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}))

	s.logger.Info("Quiz created", "quiz_id", quiz.ID, "title", quiz.Title)
	return quiz, nil
}

func (s *quizService) GetByID(ctx context.Context, id uint, actor models.Actor) (*models.Quiz, error) {
	quiz, err := s.repo.Quiz().GetByIDWithDetails(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}

	// Ended quizzes are invisible to non-staff readers.
	if !actor.IsStaff && !time.Time(quiz.EndDate).After(today()) {
		return nil, ErrQuizNotFound
	}

	return quiz, nil
}

func (s *quizService) List(ctx context.Context, filters repositories.QuizFilters, actor models.Actor) ([]*models.Quiz, int64, error) {
	if !actor.IsStaff {
		endsAfter := today().Format(dateLayout)
		filters.EndsAfter = &endsAfter

		if unfiltered(filters) {
			var cached cachedQuizList
			if err := s.cache.Get(ctx, publicQuizListKey, &cached); err == nil {
				return cached.Quizzes, cached.Total, nil
			}
		}
	}

	quizzes, total, err := s.repo.Quiz().List(ctx, filters)
	if err != nil {
		return nil, 0, err
	}

	if !actor.IsStaff && unfiltered(filters) {
		if err := s.cache.Set(ctx, publicQuizListKey, cachedQuizList{Quizzes: quizzes, Total: total}, publicQuizListTTL); err != nil {
			s.logger.Warn("failed to cache public quiz list", "error", err)
		}
	}

	return quizzes, total, nil
}

func (s *quizService) Update(ctx context.Context, id uint, req *UpdateQuizRequest, actor models.Actor) (*models.Quiz, error) {
	if !actor.IsStaff {
		return nil, NewPermissionError("quiz", "update", "staff role required")
	}

	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, apperrors.ToValidationErrors(err)
	}
	if req.StartDate != nil {
		return nil, ErrQuizStartDateImmutable
	}

	quiz, err := s.repo.Quiz().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}

	if req.Title != nil {
		quiz.Title = *req.Title
	}
	if req.Description != nil {
		quiz.Description = *req.Description
	}
	if req.EndDate != nil {
		endDate, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			return nil, ErrValidationFailed
		}
		if endDate.Before(time.Time(quiz.StartDate)) {
			return nil, ErrQuizDatesOutOfOrder
		}
		quiz.EndDate = datatypes.Date(endDate)
	}

	if err := s.repo.Quiz().Update(ctx, quiz); err != nil {
		return nil, fmt.Errorf("failed to update quiz: %w", err)
	}

	s.invalidatePublicList(ctx)
	s.logger.Info("Quiz updated", "quiz_id", quiz.ID)
	return quiz, nil
}

func (s *quizService) Delete(ctx context.Context, id uint, actor models.Actor) error {
	if !actor.IsStaff {
		return NewPermissionError("quiz", "delete", "staff role required")
	}

	if err := s.repo.Quiz().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrQuizNotFound
		}
		return fmt.Errorf("failed to delete quiz: %w", err)
	}

	s.invalidatePublicList(ctx)
	s.publish(ctx, events.NewQuizDeletedEvent(events.QuizDeletedEvent{QuizID: id}))

	s.logger.Info("Quiz deleted", "quiz_id", id)
	return nil
}

func (s *quizService) invalidatePublicList(ctx context.Context) {
	if err := s.cache.Delete(ctx, publicQuizListKey); err != nil {
		s.logger.Warn("failed to invalidate public quiz list cache", "error", err)
	}
}

// publish is best-effort: event delivery failures never fail the request.
func (s *quizService) publish(ctx context.Context, event *events.SurveyEvent) {
	if err := s.publisher.PublishSurveyEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish event", "event_type", event.Type, "error", err)
	}
}

func parseDateRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, ErrValidationFailed
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, ErrValidationFailed
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, ErrQuizDatesOutOfOrder
	}
	return startDate, endDate, nil
}

func today() time.Time {
	year, month, day := time.Now().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func unfiltered(f repositories.QuizFilters) bool {
	return f.Title == nil && f.StartDate == nil && f.EndDate == nil &&
		f.Description == nil && f.Limit == 0 && f.Offset == 0
}
