// Package parser recovers question records from free-form model replies.
//
// Replies are expected to contain a JSON object with a "questions" array, but
// models wrap it in prose, markdown fences or emit slightly broken JSON. The
// parser extracts the outermost braces, repairs whitespace and decodes it; when
// that fails it scans the reply line by line instead. It never returns an error.
package parser

import (
	"encoding/json"
	"errors"
	"strings"

	"quiz-forge/internal/domain"
)

// MaxFallbackQuestions caps how many records the line scanner may return.
const MaxFallbackQuestions = 5

// Source tells which strategy produced a Result.
type Source int

const (
	SourceJSON Source = iota
	SourceFallback
)

func (s Source) String() string {
	if s == SourceFallback {
		return "fallback"
	}
	return "json"
}

// Result is the outcome of parsing one reply.
type Result struct {
	Questions []domain.QuestionRecord
	Source    Source
	// Err explains why the JSON strategy was abandoned. Nil for SourceJSON.
	Err error
}

// ErrNoJSONObject is reported in Result.Err when the reply holds no braces.
var ErrNoJSONObject = errors.New("no JSON object found in reply")

// questionsKey is matched exactly; encoding/json struct tags would also accept
// "Questions" or "QUESTIONS".
const questionsKey = "questions"

// Parse extracts question records of the given kind from a raw reply.
func Parse(raw string, kind domain.QuestionKind) Result {
	reply := strings.TrimSpace(raw)

	payload, ok := extractJSONObject(reply)
	if !ok {
		return fallback(reply, kind, ErrNoJSONObject)
	}

	questions, err := decodeQuestions(payload)
	if err != nil {
		return fallback(reply, kind, err)
	}
	return Result{Questions: questions, Source: SourceJSON}
}

// extractJSONObject returns the text between the first '{' and the last '}'
// with newlines and tabs flattened and whitespace runs collapsed.
func extractJSONObject(reply string) (string, bool) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}

	payload := reply[start : end+1]
	payload = strings.ReplaceAll(payload, "\n", " ")
	payload = strings.ReplaceAll(payload, "\t", " ")
	return strings.Join(strings.Fields(payload), " "), true
}

func decodeQuestions(payload string) ([]domain.QuestionRecord, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		return nil, err
	}
	raw, ok := envelope[questionsKey]
	if !ok {
		return []domain.QuestionRecord{}, nil
	}

	var questions []domain.QuestionRecord
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, err
	}
	if questions == nil {
		return []domain.QuestionRecord{}, nil
	}
	return questions, nil
}

func fallback(reply string, kind domain.QuestionKind, cause error) Result {
	var questions []domain.QuestionRecord
	if kind == domain.KindTrueFalse {
		questions = scanTrueFalse(reply)
	} else {
		questions = scanMultipleChoice(reply)
	}
	if len(questions) > MaxFallbackQuestions {
		questions = questions[:MaxFallbackQuestions]
	}
	return Result{Questions: questions, Source: SourceFallback, Err: cause}
}
