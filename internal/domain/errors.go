package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal        ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput    ErrorCode = "INVALID_INPUT"
	CodeSessionNotFound ErrorCode = "SESSION_NOT_FOUND"
	CodeQuizNotFound    ErrorCode = "QUIZ_NOT_FOUND"

	// Pipeline errors
	CodeUnsupportedFileType ErrorCode = "UNSUPPORTED_FILE_TYPE"
	CodeExtractionFailure   ErrorCode = "EXTRACTION_FAILURE"
	CodeContentTooShort     ErrorCode = "CONTENT_TOO_SHORT"
	CodeGenerationFailure   ErrorCode = "GENERATION_FAILURE"
	CodeValidation          ErrorCode = "VALIDATION_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches any DomainError carrying the same code, so callers can write
// errors.Is(err, domain.ErrContentTooShort).
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithContext attaches a detail that is rendered in HTTP error bodies.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// Sentinels for errors.Is checks.
var (
	ErrUnsupportedFileType = &DomainError{Code: CodeUnsupportedFileType}
	ErrExtractionFailure   = &DomainError{Code: CodeExtractionFailure}
	ErrContentTooShort     = &DomainError{Code: CodeContentTooShort}
	ErrGenerationFailure   = &DomainError{Code: CodeGenerationFailure}
	ErrValidation          = &DomainError{Code: CodeValidation}
	ErrInvalidInput        = &DomainError{Code: CodeInvalidInput}
	ErrSessionNotFound     = &DomainError{Code: CodeSessionNotFound}
	ErrQuizNotFound        = &DomainError{Code: CodeQuizNotFound}
)

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewUnsupportedFileTypeError(fileType string) *DomainError {
	return NewError(CodeUnsupportedFileType, fmt.Sprintf("Unsupported file type: %s", fileType), nil)
}

func NewExtractionError(message string, err error) *DomainError {
	return NewError(CodeExtractionFailure, message, err)
}

func NewContentTooShortError(length, minimum int) *DomainError {
	return NewError(CodeContentTooShort,
		fmt.Sprintf("The extracted text is too short to generate meaningful questions (minimum %d characters required)", minimum), nil).
		WithContext("length", length)
}

func NewGenerationError(kind QuestionKind, err error) *DomainError {
	label := "multiple choice"
	if kind == KindTrueFalse {
		label = "true/false"
	}
	return NewError(CodeGenerationFailure, fmt.Sprintf("Failed to generate %s questions", label), err)
}

func NewValidationError(reason string) *DomainError {
	return NewError(CodeValidation, reason, nil)
}

func NewSessionNotFoundError(sessionID string) *DomainError {
	return NewError(CodeSessionNotFound, fmt.Sprintf("Session not found: %s", sessionID), nil)
}

func NewQuizNotFoundError(sessionID string) *DomainError {
	return NewError(CodeQuizNotFound, fmt.Sprintf("No quiz has been generated for session %s", sessionID), nil)
}
