package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Difficulty is the difficulty label embedded into generation prompts.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ParseDifficulty accepts a difficulty label case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", NewInvalidInputError(fmt.Sprintf("unknown difficulty %q (expected Easy, Medium or Hard)", s))
	}
}

// QuestionKind selects the prompt template and the fallback extractor.
type QuestionKind string

const (
	KindMultipleChoice QuestionKind = "mcq"
	KindTrueFalse      QuestionKind = "tf"
)

// NoExplanationFallback is stored by the fallback extractor when the reply carries
// no usable explanation.
const NoExplanationFallback = "No explanation available"

// NoExplanationPlaceholder is shown by exporters when a question has no explanation.
const NoExplanationPlaceholder = "No explanation provided"

// MultipleChoiceQuestion has exactly four options, one of which is the correct answer.
type MultipleChoiceQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// TrueFalseQuestion is a statement with a boolean answer.
type TrueFalseQuestion struct {
	Question      string `json:"question"`
	CorrectAnswer bool   `json:"correct_answer"`
	Explanation   string `json:"explanation,omitempty"`
}

// QuizMetadata describes how a quiz was requested.
type QuizMetadata struct {
	Difficulty     Difficulty `json:"difficulty"`
	TotalQuestions int        `json:"total_questions"`
	SourceLength   int        `json:"source_length"`
}

// QuizResult is the validated output of one generation request. Either sequence may
// hold fewer questions than requested.
type QuizResult struct {
	MultipleChoice []MultipleChoiceQuestion `json:"multiple_choice"`
	TrueFalse      []TrueFalseQuestion      `json:"true_false"`
	Metadata       QuizMetadata             `json:"metadata"`
}

// QuestionCount returns the number of questions actually generated.
func (q *QuizResult) QuestionCount() int {
	return len(q.MultipleChoice) + len(q.TrueFalse)
}

// QuestionRecord is one loosely typed question object as returned by the model
// or by the fallback extractor. Field presence and value types are only checked
// by validation.
type QuestionRecord map[string]any

// QuizDraft groups parsed records before validation. A nil slice means the
// corresponding key was absent.
type QuizDraft struct {
	MultipleChoice []QuestionRecord `json:"multiple_choice"`
	TrueFalse      []QuestionRecord `json:"true_false"`
	Metadata       QuizMetadata     `json:"metadata"`
}

// ToResult converts a draft into a typed quiz. Scalar options and answers are
// rendered as text, and a true/false answer given as "true" or "false" is
// parsed. A value that cannot be represented in the typed quiz is reported as a
// validation error instead of being dropped.
func (d *QuizDraft) ToResult() (*QuizResult, error) {
	result := &QuizResult{
		MultipleChoice: make([]MultipleChoiceQuestion, 0, len(d.MultipleChoice)),
		TrueFalse:      make([]TrueFalseQuestion, 0, len(d.TrueFalse)),
		Metadata:       d.Metadata,
	}
	for i, rec := range d.MultipleChoice {
		q, err := rec.toMultipleChoice()
		if err != nil {
			return nil, err.WithContext("question_type", "multiple_choice").WithContext("index", i)
		}
		result.MultipleChoice = append(result.MultipleChoice, q)
	}
	for i, rec := range d.TrueFalse {
		q, err := rec.toTrueFalse()
		if err != nil {
			return nil, err.WithContext("question_type", "true_false").WithContext("index", i)
		}
		result.TrueFalse = append(result.TrueFalse, q)
	}
	return result, nil
}

func (r QuestionRecord) toMultipleChoice() (MultipleChoiceQuestion, *DomainError) {
	var q MultipleChoiceQuestion
	var ok bool
	if q.Question, ok = scalarText(r["question"]); !ok {
		return q, NewValidationError("MCQ question must be text")
	}
	if r.Has("options") && r["options"] != nil {
		if q.Options, ok = r.Texts("options"); !ok {
			return q, NewValidationError("Multiple choice options must be a list of plain values")
		}
	}
	if q.CorrectAnswer, ok = scalarText(r["correct_answer"]); !ok {
		return q, NewValidationError("MCQ correct_answer must be a plain value")
	}
	if q.Explanation, ok = scalarText(r["explanation"]); !ok {
		return q, NewValidationError("MCQ explanation must be text")
	}
	return q, nil
}

func (r QuestionRecord) toTrueFalse() (TrueFalseQuestion, *DomainError) {
	var q TrueFalseQuestion
	var ok bool
	if q.Question, ok = scalarText(r["question"]); !ok {
		return q, NewValidationError("T/F question must be text")
	}
	switch v := r["correct_answer"].(type) {
	case bool:
		q.CorrectAnswer = v
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return q, NewValidationError(fmt.Sprintf("True/false correct_answer %q is not a boolean", v))
		}
		q.CorrectAnswer = b
	default:
		return q, NewValidationError("True/false correct_answer must be a boolean")
	}
	if q.Explanation, ok = scalarText(r["explanation"]); !ok {
		return q, NewValidationError("T/F explanation must be text")
	}
	return q, nil
}

// Has reports whether the record carries the key at all.
func (r QuestionRecord) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// String returns the value at key when it is a string.
func (r QuestionRecord) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// Texts returns the list at key with every item rendered as text. It reports
// false when the value is not a list or holds a nested list or object.
func (r QuestionRecord) Texts(key string) ([]string, bool) {
	switch v := r[key].(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := scalarText(item)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

// scalarText renders a decoded JSON scalar as text. Numbers use their shortest
// decimal form so 4 becomes "4". Absent or null values render as "".
func scalarText(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", true
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case int:
		return strconv.Itoa(x), true
	case json.Number:
		return x.String(), true
	default:
		return "", false
	}
}
