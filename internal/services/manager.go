package services

import (
	"log/slog"

	"github.com/surveyhub/quiz-service/internal/cache"
	"github.com/surveyhub/quiz-service/internal/events"
	"github.com/surveyhub/quiz-service/internal/repositories"
	"github.com/surveyhub/quiz-service/internal/validator"
)

// ServiceManager bundles all services for handler wiring
type ServiceManager interface {
	Quiz() QuizService
	Question() QuestionService
	Answer() AnswerService
	Report() ReportService
	Export() ExportService
}

type serviceManager struct {
	quiz     QuizService
	question QuestionService
	answer   AnswerService
	report   ReportService
	export   ExportService
}

func NewServiceManager(
	repo repositories.Repository,
	logger *slog.Logger,
	v *validator.Validator,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
) ServiceManager {
	return &serviceManager{
		quiz:     NewQuizService(repo, logger, v, cacheService, publisher),
		question: NewQuestionService(repo, logger, v),
		answer:   NewAnswerService(repo, logger, v, publisher),
		report:   NewReportService(repo, logger),
		export:   NewExportService(repo, logger),
	}
}

func (m *serviceManager) Quiz() QuizService         { return m.quiz }
func (m *serviceManager) Question() QuestionService { return m.question }
func (m *serviceManager) Answer() AnswerService     { return m.answer }
func (m *serviceManager) Report() ReportService     { return m.report }
func (m *serviceManager) Export() ExportService     { return m.export }
