package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/surveyhub/quiz-service/internal/models"
	"github.com/surveyhub/quiz-service/internal/repositories"
)

type reportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewReportService(repo repositories.Repository, logger *slog.Logger) ReportService {
	return &reportService{
		repo:   repo,
		logger: logger,
	}
}

// GetUserAnswers returns quizzes the user has answered, with each quiz
// carrying only the questions that user answered and each question only that
// user's answers, ordered by quiz id.
func (s *reportService) GetUserAnswers(ctx context.Context, userID uint) ([]*models.Quiz, error) {
	quizzes, err := s.repo.Quiz().GetAnsweredByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user answers: %w", err)
	}
	return quizzes, nil
}
