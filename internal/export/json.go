package export

import (
	"encoding/json"

	"quiz-forge/internal/domain"
)

// JSON mirrors the QuizResult shape with two-space indentation.
func JSON(quiz *domain.QuizResult) ([]byte, error) {
	out := *quiz
	if out.MultipleChoice == nil {
		out.MultipleChoice = []domain.MultipleChoiceQuestion{}
	}
	if out.TrueFalse == nil {
		out.TrueFalse = []domain.TrueFalseQuestion{}
	}
	return json.MarshalIndent(out, "", "  ")
}
