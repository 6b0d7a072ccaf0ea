package handler

import (
	"quiz-forge/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the API on app.
func RegisterRoutes(app *fiber.App, documents *DocumentHandler, quizzes *QuizHandler, vm *middleware.ValidationMiddleware) {
	app.Get("/healthz", Health)

	api := app.Group("/api")
	api.Post("/documents", documents.Upload)
	api.Post("/quizzes/validate", quizzes.ValidateQuiz)

	sessions := api.Group("/sessions")
	sessions.Post("/:id/quiz", vm.ValidateSessionID(), quizzes.GenerateQuiz)
	sessions.Get("/:id/quiz", vm.ValidateSessionID(), quizzes.GetQuiz)
	sessions.Get("/:id/quiz/export", vm.ValidateSessionID(), quizzes.ExportQuiz)
}
