package dto

import "quiz-forge/internal/domain"

// DocumentResponse is returned after a document has been uploaded and processed
// @Description Processed document information
type DocumentResponse struct {
	SessionID  string `json:"session_id"`
	SourceName string `json:"source_name"`
	TextLength int    `json:"text_length"` // characters after normalization
	Preview    string `json:"preview"`
}

// GenerateQuizRequest represents a quiz generation request
// @Description Request body for generating a quiz from a processed document
type GenerateQuizRequest struct {
	NumMCQ     int    `json:"num_mcq" example:"5"`
	NumTF      int    `json:"num_tf" example:"5"`
	Difficulty string `json:"difficulty" example:"Medium"` // Easy, Medium or Hard
}

// QuizResponse wraps a generated quiz with the session it belongs to
// @Description Generated quiz
type QuizResponse struct {
	SessionID string             `json:"session_id"`
	Quiz      *domain.QuizResult `json:"quiz"`
}

// ValidateQuizRequest carries a quiz to check, as loosely typed records
// @Description Quiz document to validate
type ValidateQuizRequest struct {
	MultipleChoice []domain.QuestionRecord `json:"multiple_choice"`
	TrueFalse      []domain.QuestionRecord `json:"true_false"`
}

// ValidateQuizResponse reports a successful validation
type ValidateQuizResponse struct {
	Valid bool `json:"valid"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status string `json:"status"`
}

// ToDraft converts the request body into a draft for validation.
func (r *ValidateQuizRequest) ToDraft() *domain.QuizDraft {
	return &domain.QuizDraft{MultipleChoice: r.MultipleChoice, TrueFalse: r.TrueFalse}
}
