package extractor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/logger"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

const (
	MimePDF  = "application/pdf"
	MimeText = "text/plain"
)

// DocumentExtractor implements domain.TextExtractor for PDF and plain-text files.
type DocumentExtractor struct{}

// NewDocumentExtractor creates a new DocumentExtractor.
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// Extract implements domain.TextExtractor
func (e *DocumentExtractor) Extract(ctx context.Context, path string, mimeType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch detectKind(path, mimeType) {
	case MimePDF:
		return extractPDF(path)
	case MimeText:
		return extractText(path)
	default:
		return "", domain.NewUnsupportedFileTypeError(mimeType)
	}
}

// detectKind trusts the declared MIME type first and the extension second.
func detectKind(path, mimeType string) string {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.Index(mimeType, ";"); i != -1 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	ext := strings.ToLower(filepath.Ext(path))

	switch {
	case mimeType == MimePDF || ext == ".pdf":
		return MimePDF
	case mimeType == MimeText || ext == ".txt":
		return MimeText
	default:
		return ""
	}
}

func extractPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", domain.NewExtractionError("Failed to process PDF", err)
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			logger.Get().Warn("Skipping unreadable PDF page", zap.String("path", path), zap.Int("page", i), zap.Error(err))
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}

	if len(pages) == 0 {
		return "", domain.NewExtractionError("No text content could be extracted from the PDF", nil)
	}
	return strings.Join(pages, "\n\n"), nil
}

func extractText(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", domain.NewExtractionError("Failed to process text file", err)
	}
	if strings.TrimSpace(string(content)) == "" {
		return "", domain.NewExtractionError("The text file appears to be empty", nil)
	}
	return string(content), nil
}

// Validate implements domain.TextExtractor
func (e *DocumentExtractor) Validate(path string, maxBytes int64) error {
	return ValidateFile(path, maxBytes)
}

// ValidateFile rejects missing, empty and oversized uploads.
func ValidateFile(path string, maxBytes int64) error {
	info, err := os.Stat(path)
	if err != nil {
		return domain.NewExtractionError("File does not exist", err)
	}
	if info.Size() == 0 {
		return domain.NewExtractionError("File is empty", nil)
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		return domain.NewInvalidInputError(fmt.Sprintf("File size (%.1f MB) exceeds maximum allowed size (%.0f MB)",
			float64(info.Size())/1024/1024, float64(maxBytes)/1024/1024))
	}
	return nil
}

var _ domain.TextExtractor = (*DocumentExtractor)(nil)
