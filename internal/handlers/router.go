package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/surveyhub/quiz-service/internal/middleware"
	"github.com/surveyhub/quiz-service/internal/services"
	"github.com/surveyhub/quiz-service/internal/utils"
)

type HandlerManager struct {
	quizHandler     *QuizHandler
	questionHandler *QuestionHandler
	answerHandler   *AnswerHandler
	reportHandler   *ReportHandler
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		quizHandler:     NewQuizHandler(serviceManager, logger),
		questionHandler: NewQuestionHandler(serviceManager, logger),
		answerHandler:   NewAnswerHandler(serviceManager, logger),
		reportHandler:   NewReportHandler(serviceManager, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Quiz routes
	quizzes := router.Group("/quiz")
	{
		quizzes.GET("", hm.quizHandler.List)
		quizzes.GET("/:id", hm.quizHandler.Get)

		quizzes.POST("", middleware.RequireStaff(), hm.quizHandler.Create)
		quizzes.PUT("/:id", middleware.RequireStaff(), hm.quizHandler.Update)
		quizzes.PATCH("/:id", middleware.RequireStaff(), hm.quizHandler.Update)
		quizzes.DELETE("/:id", middleware.RequireStaff(), hm.quizHandler.Delete)
		quizzes.GET("/:id/export", middleware.RequireStaff(), hm.quizHandler.Export)
	}

	// Question routes
	questions := router.Group("/question")
	{
		questions.GET("", hm.questionHandler.List)
		questions.GET("/:id", hm.questionHandler.Get)

		questions.POST("", middleware.RequireStaff(), hm.questionHandler.Create)
		questions.PUT("/:id", middleware.RequireStaff(), hm.questionHandler.Update)
		questions.PATCH("/:id", middleware.RequireStaff(), hm.questionHandler.Update)
		questions.DELETE("/:id", middleware.RequireStaff(), hm.questionHandler.Delete)
	}

	// Answer routes: open submission, no update or delete
	answers := router.Group("/answer")
	{
		answers.POST("", hm.answerHandler.Create)
		answers.GET("", hm.answerHandler.List)
		answers.GET("/:id", hm.answerHandler.Get)
	}

	// Per-user answer projection
	router.GET("/quizuseranswer", hm.reportHandler.UserAnswers)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "quiz-service",
		})
	})
}
