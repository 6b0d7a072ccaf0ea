// Package export renders a generated quiz into downloadable documents.
package export

import (
	"fmt"
	"strings"
	"time"

	"quiz-forge/internal/domain"
)

// Format is a supported export format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatText Format = "txt"
	FormatHTML Format = "html"
	FormatXLSX Format = "xlsx"
)

// Document is a rendered export ready to be served or written to disk.
type Document struct {
	Body        []byte
	ContentType string
	Filename    string
}

// ParseFormat accepts a format name case-insensitively; "text" is an alias of txt.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatCSV, FormatText, FormatHTML, FormatXLSX:
		return f, nil
	case "text":
		return FormatText, nil
	case "":
		return FormatJSON, nil
	default:
		return "", domain.NewInvalidInputError(fmt.Sprintf("unsupported export format %q", s))
	}
}

// Exporter renders quizzes. now stamps printable documents.
type Exporter struct {
	now func() time.Time
}

// NewExporter creates an Exporter.
func NewExporter() *Exporter {
	return &Exporter{now: time.Now}
}

// Export renders quiz in the requested format.
func (e *Exporter) Export(quiz *domain.QuizResult, format Format) (*Document, error) {
	if quiz == nil {
		return nil, domain.NewInvalidInputError("no quiz to export")
	}

	var (
		body []byte
		err  error
		doc  = &Document{Filename: "quiz." + string(format)}
	)
	switch format {
	case FormatJSON:
		body, err = JSON(quiz)
		doc.ContentType = "application/json"
	case FormatCSV:
		body, err = CSV(quiz)
		doc.ContentType = "text/csv"
	case FormatText:
		body = []byte(Text(quiz))
		doc.ContentType = "text/plain; charset=utf-8"
	case FormatHTML:
		body, err = HTML(quiz, e.now())
		doc.ContentType = "text/html; charset=utf-8"
	case FormatXLSX:
		body, err = XLSX(quiz)
		doc.ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return nil, domain.NewInvalidInputError(fmt.Sprintf("unsupported export format %q", format))
	}
	if err != nil {
		return nil, domain.NewInternalError(fmt.Sprintf("Failed to export quiz as %s", format), err)
	}
	doc.Body = body
	return doc, nil
}

// explanationOr returns the explanation or the display placeholder.
func explanationOr(explanation string) string {
	if explanation == "" {
		return domain.NoExplanationPlaceholder
	}
	return explanation
}

func boolLabel(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// optionLabel returns A, B, C, ... for the zero-based index.
func optionLabel(i int) string {
	return string(rune('A' + i))
}
