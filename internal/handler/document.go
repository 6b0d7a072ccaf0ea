package handler

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/logger"
	"quiz-forge/internal/service"
	"quiz-forge/internal/textproc"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PreviewLength is the number of characters echoed back after an upload.
const PreviewLength = 2000

// DocumentHandler handles document uploads
type DocumentHandler struct {
	service service.QuizService
	tempDir string
}

// NewDocumentHandler creates a new DocumentHandler instance. Uploads are
// spooled to tempDir, or the OS temp directory when it is empty.
func NewDocumentHandler(service service.QuizService, tempDir string) *DocumentHandler {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &DocumentHandler{
		service: service,
		tempDir: tempDir,
	}
}

// Upload godoc
// @Summary Upload a document
// @Description Extracts and normalizes the text of a PDF or plain-text document and opens a session for it
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF or TXT document"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 415 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /documents [post]
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return domain.NewInvalidInputError("multipart field 'file' is required")
	}

	// The random name keeps concurrent uploads of the same file apart.
	path := filepath.Join(h.tempDir, uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveFile(file, path); err != nil {
		return domain.NewInternalError("Failed to store upload", err)
	}
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logger.Get().Warn("Failed to remove temporary upload", zap.String("path", path), zap.Error(err))
		}
	}()

	session, err := h.service.ProcessDocument(c.UserContext(), path, file.Header.Get(fiber.HeaderContentType), file.Filename)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.DocumentResponse{
		SessionID:  session.ID,
		SourceName: session.SourceName,
		TextLength: utf8.RuneCountInString(session.NormalizedText),
		Preview:    textproc.Preview(session.NormalizedText, PreviewLength),
	})
}
