package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{in: "Easy", want: DifficultyEasy},
		{in: "medium", want: DifficultyMedium},
		{in: " HARD ", want: DifficultyHard},
		{in: "extreme", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDifficulty(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuizDraft_ToResult(t *testing.T) {
	draft := &QuizDraft{
		MultipleChoice: []QuestionRecord{
			{
				"question":       "Capital of France?",
				"options":        []any{"Paris", "Rome", "Berlin", "Madrid"},
				"correct_answer": "Paris",
			},
		},
		TrueFalse: []QuestionRecord{
			{"question": "Paris is in France.", "correct_answer": true, "explanation": "Geography"},
			{"question": "Rome is in Spain.", "correct_answer": false},
		},
		Metadata: QuizMetadata{Difficulty: DifficultyEasy, TotalQuestions: 4, SourceLength: 321},
	}

	res, err := draft.ToResult()
	require.NoError(t, err)

	require.Len(t, res.MultipleChoice, 1)
	assert.Equal(t, MultipleChoiceQuestion{
		Question:      "Capital of France?",
		Options:       []string{"Paris", "Rome", "Berlin", "Madrid"},
		CorrectAnswer: "Paris",
	}, res.MultipleChoice[0])
	require.Len(t, res.TrueFalse, 2)
	assert.True(t, res.TrueFalse[0].CorrectAnswer)
	assert.Equal(t, "Geography", res.TrueFalse[0].Explanation)
	assert.False(t, res.TrueFalse[1].CorrectAnswer)
	assert.Empty(t, res.TrueFalse[1].Explanation, "placeholders are applied at export time only")
	assert.Equal(t, draft.Metadata, res.Metadata)
	assert.Equal(t, 3, res.QuestionCount())
}

func TestQuizDraft_ToResult_ScalarValues(t *testing.T) {
	draft := &QuizDraft{
		MultipleChoice: []QuestionRecord{
			{"question": "What is 2+2?", "options": []any{3.0, 4.0, 5.0, 6.0}, "correct_answer": 4.0},
			{"question": "Pi to two places?", "options": []any{"3.14", 3.15, true, nil}, "correct_answer": "3.14"},
		},
		TrueFalse: []QuestionRecord{
			{"question": "Water is wet.", "correct_answer": "true"},
			{"question": "Fire is cold.", "correct_answer": " False "},
		},
	}

	res, err := draft.ToResult()
	require.NoError(t, err)

	assert.Equal(t, []string{"3", "4", "5", "6"}, res.MultipleChoice[0].Options)
	assert.Equal(t, "4", res.MultipleChoice[0].CorrectAnswer)
	assert.Contains(t, res.MultipleChoice[0].Options, res.MultipleChoice[0].CorrectAnswer)
	assert.Equal(t, []string{"3.14", "3.15", "true", ""}, res.MultipleChoice[1].Options)
	assert.True(t, res.TrueFalse[0].CorrectAnswer)
	assert.False(t, res.TrueFalse[1].CorrectAnswer)
}

func TestQuizDraft_ToResult_RejectsUnrepresentableValues(t *testing.T) {
	tests := []struct {
		name  string
		draft *QuizDraft
		msg   string
	}{
		{
			name: "nested option",
			draft: &QuizDraft{MultipleChoice: []QuestionRecord{
				{"question": "Q", "options": []any{"a", []any{"b"}, "c", "d"}, "correct_answer": "a"},
			}},
			msg: "Multiple choice options must be a list of plain values",
		},
		{
			name: "object answer",
			draft: &QuizDraft{MultipleChoice: []QuestionRecord{
				{"question": "Q", "options": []any{"a", "b", "c", "d"}, "correct_answer": map[string]any{"x": 1.0}},
			}},
			msg: "MCQ correct_answer must be a plain value",
		},
		{
			name: "unparseable tf answer",
			draft: &QuizDraft{TrueFalse: []QuestionRecord{
				{"question": "Q", "correct_answer": "maybe"},
			}},
			msg: `True/false correct_answer "maybe" is not a boolean`,
		},
		{
			name: "numeric tf answer",
			draft: &QuizDraft{TrueFalse: []QuestionRecord{
				{"question": "Q", "correct_answer": 1.0},
			}},
			msg: "True/false correct_answer must be a boolean",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.draft.ToResult()
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, ErrValidation))
			assert.EqualError(t, err, tt.msg)
		})
	}
}

func TestQuestionRecord_Accessors(t *testing.T) {
	rec := QuestionRecord{
		"question": "q",
		"mixed":    []any{"a", 1.0},
		"nested":   []any{"a", map[string]any{}},
		"typed":    []string{"x", "y"},
		"number":   2.0,
	}
	assert.True(t, rec.Has("question"))
	assert.False(t, rec.Has("missing"))
	assert.Equal(t, "q", rec.String("question"))
	assert.Equal(t, "", rec.String("number"))

	texts, ok := rec.Texts("mixed")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "1"}, texts)
	texts, ok = rec.Texts("typed")
	assert.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, texts)
	_, ok = rec.Texts("nested")
	assert.False(t, ok)
	_, ok = rec.Texts("question")
	assert.False(t, ok)
}

func TestSession_WithQuiz(t *testing.T) {
	s := NewSession("01HGZ8VNRYXS8QKNJV5GRWPWDQ", "notes.txt", "text")
	first := &QuizResult{Metadata: QuizMetadata{TotalQuestions: 2}}
	second := &QuizResult{Metadata: QuizMetadata{TotalQuestions: 4}}

	s1 := s.WithQuiz(first)
	s2 := s1.WithQuiz(second)

	assert.Nil(t, s.LastQuiz, "original session must not be mutated")
	assert.Same(t, first, s1.LastQuiz)
	assert.Same(t, second, s2.LastQuiz)
	assert.Equal(t, s.ID, s2.ID)
	assert.False(t, s2.UpdatedAt.Before(s.UpdatedAt))
}

func TestDomainError_Is(t *testing.T) {
	err := NewContentTooShortError(42, 100)
	wrapped := fmt.Errorf("processing: %w", err)

	assert.True(t, errors.Is(wrapped, ErrContentTooShort))
	assert.False(t, errors.Is(wrapped, ErrValidation))
	assert.Equal(t, 42, err.Context["length"])

	cause := errors.New("quota exceeded")
	genErr := NewGenerationError(KindTrueFalse, cause)
	assert.True(t, errors.Is(genErr, cause))
	assert.Equal(t, "Failed to generate true/false questions: quota exceeded", genErr.Error())
	assert.Equal(t, "Failed to generate multiple choice questions", NewGenerationError(KindMultipleChoice, nil).Error())
}
