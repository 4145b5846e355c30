package quizRoutes

import (
	quizControllers "lms/controllers/quiz"
	"lms/middleware"
	quizValidators "lms/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

func SetupQuizRoutes(app *fiber.App) {
	// Public reads; submissions need a session
	quizGroup := app.Group("/api/quizzes")
	quizGroup.Get("/", quizControllers.GetAllQuizzes)
	quizGroup.Get("/:id", quizControllers.GetQuizDetails)
	quizGroup.Get("/:id/leaderboard", quizControllers.GetLeaderboard)
	quizGroup.Post("/:id/submit", middleware.JWTMiddleware, quizValidators.SubmitQuiz(), quizControllers.SubmitQuiz)

	app.Get("/api/attempts", middleware.JWTMiddleware, quizControllers.GetMyAttempts)

	// Admin quiz management
	adminGroup := app.Group("/api/admin/quizzes")
	adminGroup.Post("/", middleware.JWTMiddleware, quizValidators.CreateQuiz(), quizControllers.AdminCreateQuiz)
	adminGroup.Put("/:id", middleware.JWTMiddleware, quizValidators.UpdateQuiz(), quizControllers.AdminUpdateQuiz)
	adminGroup.Post("/:id/publish", middleware.JWTMiddleware, quizControllers.AdminPublishQuiz)
	adminGroup.Post("/:id/close", middleware.JWTMiddleware, quizControllers.AdminCloseQuiz)
	adminGroup.Delete("/:id", middleware.JWTMiddleware, quizControllers.AdminDeleteQuiz)

	app.Get("/api/admin/attempts", middleware.JWTMiddleware, quizControllers.AdminListAttempts)
}
