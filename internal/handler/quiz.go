package handler

import (
	"fmt"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/export"
	"quiz-forge/internal/middleware"
	"quiz-forge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service  service.QuizService
	exporter *export.Exporter
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, exporter *export.Exporter) *QuizHandler {
	if exporter == nil {
		exporter = export.NewExporter()
	}
	return &QuizHandler{
		service:  service,
		exporter: exporter,
	}
}

func sessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.SessionIDKey).(string); ok {
		return id
	}
	return c.Params("id")
}

// GenerateQuiz godoc
// @Summary Generate a quiz
// @Description Generates multiple choice and true/false questions from the session's document. Replaces the session's previous quiz.
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.GenerateQuizRequest true "Generation parameters"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /sessions/{id}/quiz [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	id := sessionID(c)
	session, err := h.service.GenerateQuiz(c.UserContext(), id, &req)
	if err != nil {
		return err
	}

	return c.JSON(dto.QuizResponse{
		SessionID: session.ID,
		Quiz:      session.LastQuiz,
	})
}

// GetQuiz godoc
// @Summary Get the last generated quiz
// @Tags quiz
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/quiz [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	id := sessionID(c)
	quiz, err := h.service.GetQuiz(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.QuizResponse{SessionID: id, Quiz: quiz})
}

// ExportQuiz godoc
// @Summary Download the last generated quiz
// @Tags quiz
// @Produce json,text/csv,text/plain,text/html,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Session ID"
// @Param format query string false "json, csv, txt, html or xlsx" default(json)
// @Success 200 {file} file
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/quiz/export [get]
func (h *QuizHandler) ExportQuiz(c *fiber.Ctx) error {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		return err
	}

	quiz, err := h.service.GetQuiz(c.UserContext(), sessionID(c))
	if err != nil {
		return err
	}

	doc, err := h.exporter.Export(quiz, format)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
	return c.Send(doc.Body)
}

// ValidateQuiz godoc
// @Summary Validate a quiz document
// @Description Checks the structure of a quiz and reports the first problem found
// @Tags quiz
// @Accept json
// @Produce json
// @Param quiz body dto.ValidateQuizRequest true "Quiz to validate"
// @Success 200 {object} dto.ValidateQuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /quizzes/validate [post]
func (h *QuizHandler) ValidateQuiz(c *fiber.Ctx) error {
	var req dto.ValidateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if err := h.service.ValidateQuiz(req.ToDraft()); err != nil {
		return err
	}
	return c.JSON(dto.ValidateQuizResponse{Valid: true})
}

// Health reports liveness. It is mounted outside /api.
func Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "ok"})
}
