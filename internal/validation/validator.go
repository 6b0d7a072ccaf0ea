package validation

import (
	"fmt"
	"reflect"
	"strings"

	"quiz-forge/internal/domain"
)

const (
	// RequiredOptions is the exact option count of a multiple-choice question.
	RequiredOptions = 4
	// MinQuestionCount and MaxQuestionCount bound a generation request per kind.
	MinQuestionCount = 1
	MaxQuestionCount = 50
)

// Validator provides quiz and request validation functionality
type Validator struct {
	minCount int
	maxCount int
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{minCount: MinQuestionCount, maxCount: MaxQuestionCount}
}

// NewValidatorWithLimits creates a validator with custom per-kind count limits.
func NewValidatorWithLimits(minCount, maxCount int) *Validator {
	if minCount < 1 {
		minCount = MinQuestionCount
	}
	if maxCount < minCount {
		maxCount = minCount
	}
	return &Validator{minCount: minCount, maxCount: maxCount}
}

// ValidateQuiz checks the shape of a parsed quiz and reports the first problem
// found. It never modifies the draft.
func (v *Validator) ValidateQuiz(draft *domain.QuizDraft) error {
	if draft == nil || draft.MultipleChoice == nil {
		return domain.NewValidationError("Missing required key: multiple_choice")
	}
	if draft.TrueFalse == nil {
		return domain.NewValidationError("Missing required key: true_false")
	}

	for i, mcq := range draft.MultipleChoice {
		if err := validateMultipleChoice(mcq); err != nil {
			return err.WithContext("question_type", "multiple_choice").WithContext("index", i)
		}
	}
	for i, tf := range draft.TrueFalse {
		if err := validateTrueFalse(tf); err != nil {
			return err.WithContext("question_type", "true_false").WithContext("index", i)
		}
	}
	return nil
}

func validateMultipleChoice(rec domain.QuestionRecord) *domain.DomainError {
	for _, key := range []string{"question", "options", "correct_answer"} {
		if !rec.Has(key) {
			return domain.NewValidationError(fmt.Sprintf("Missing required key in MCQ: %s", key))
		}
	}

	options, ok := asList(rec["options"])
	if !ok {
		return domain.NewValidationError("Multiple choice options must be a list")
	}
	if len(options) != RequiredOptions {
		return domain.NewValidationError(fmt.Sprintf("Multiple choice questions must have exactly %d options", RequiredOptions))
	}

	answer := rec["correct_answer"]
	for _, opt := range options {
		if reflect.DeepEqual(opt, answer) {
			return nil
		}
	}
	return domain.NewValidationError("Correct answer must be one of the provided options")
}

func validateTrueFalse(rec domain.QuestionRecord) *domain.DomainError {
	for _, key := range []string{"question", "correct_answer"} {
		if !rec.Has(key) {
			return domain.NewValidationError(fmt.Sprintf("Missing required key in T/F: %s", key))
		}
	}
	if _, ok := rec["correct_answer"].(bool); !ok {
		return domain.NewValidationError("True/false correct_answer must be a boolean")
	}
	return nil
}

func asList(v any) ([]any, bool) {
	switch list := v.(type) {
	case []any:
		return list, true
	case []string:
		out := make([]any, len(list))
		for i, s := range list {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}

// ValidateGenerateRequest checks the requested counts and difficulty label and
// returns the parsed difficulty.
func (v *Validator) ValidateGenerateRequest(numMCQ, numTF int, difficulty string) (domain.Difficulty, error) {
	if numMCQ < v.minCount || numMCQ > v.maxCount {
		return "", domain.NewInvalidInputError(fmt.Sprintf("num_mcq must be between %d and %d", v.minCount, v.maxCount)).
			WithContext("num_mcq", numMCQ)
	}
	if numTF < v.minCount || numTF > v.maxCount {
		return "", domain.NewInvalidInputError(fmt.Sprintf("num_tf must be between %d and %d", v.minCount, v.maxCount)).
			WithContext("num_tf", numTF)
	}
	if strings.TrimSpace(difficulty) == "" {
		return domain.DifficultyMedium, nil
	}
	return domain.ParseDifficulty(difficulty)
}

// ValidateSessionID checks the session identifier format (a ULID).
func (v *Validator) ValidateSessionID(id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.NewInvalidInputError("session id is required")
	}
	if !isValidULID(id) {
		return domain.NewInvalidInputError(fmt.Sprintf("invalid session id: %s", id))
	}
	return nil
}
