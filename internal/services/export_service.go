package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/surveyhub/quiz-service/internal/models"
	"github.com/surveyhub/quiz-service/internal/repositories"
	"github.com/xuri/excelize/v2"
)

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{
		repo:   repo,
		logger: logger,
	}
}

// ExportQuizAnswers renders every answer of a quiz as one row of an xlsx
// workbook, with selected option names resolved to text.
func (s *exportService) ExportQuizAnswers(ctx context.Context, quizID uint, actor models.Actor) ([]byte, error) {
	if !actor.IsStaff {
		return nil, NewPermissionError("quiz", "export", "staff role required")
	}

	quiz, err := s.repo.Quiz().GetByIDWithDetails(ctx, quizID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}

	f := excelize.NewFile()
	sheetName := "Answers"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Question", "Question Type", "User", "Text", "Selected Options"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	rowIndex := 2
	for _, question := range quiz.Questions {
		answers, _, err := s.repo.Answer().List(ctx, repositories.AnswerFilters{QuestionID: &question.ID})
		if err != nil {
			return nil, fmt.Errorf("failed to load answers for question %d: %w", question.ID, err)
		}

		optionNames := make(map[uint]string, len(question.AnswerOptions))
		for _, option := range question.AnswerOptions {
			optionNames[option.ID] = option.Name
		}

		for _, answer := range answers {
			row := answerToRow(question, answer, optionNames)
			for colIndex, value := range row {
				cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex)
				f.SetCellValue(sheetName, cell, value)
			}
			rowIndex++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	s.logger.Info("Quiz answers exported", "quiz_id", quizID, "rows", rowIndex-2)
	return buf.Bytes(), nil
}

func answerToRow(question models.Question, answer *models.Answer, optionNames map[uint]string) []interface{} {
	user := "anonymous"
	if answer.UserID != nil {
		user = fmt.Sprintf("%d", *answer.UserID)
	}

	text := ""
	if answer.Text != nil {
		text = *answer.Text
	}

	var selected []string
	for _, option := range answer.SelectedOptions {
		selected = append(selected, optionNames[option.AnswerOptionID])
	}

	return []interface{}{
		question.Text,
		string(question.Type),
		user,
		text,
		strings.Join(selected, ", "),
	}
}
