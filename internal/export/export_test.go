package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"quiz-forge/internal/domain"
)

func sampleQuiz() *domain.QuizResult {
	return &domain.QuizResult{
		MultipleChoice: []domain.MultipleChoiceQuestion{
			{
				Question:      "What is 2+2?",
				Options:       []string{"3", "4", "5", "6"},
				CorrectAnswer: "4",
				Explanation:   "Basic arithmetic",
			},
			{
				Question:      "Which tag is <b>?",
				Options:       []string{"bold", "italic", "break", "body"},
				CorrectAnswer: "bold",
			},
		},
		TrueFalse: []domain.TrueFalseQuestion{
			{Question: "The sky is blue.", CorrectAnswer: true, Explanation: "Rayleigh scattering"},
			{Question: "Fire is cold.", CorrectAnswer: false},
		},
		Metadata: domain.QuizMetadata{Difficulty: domain.DifficultyMedium, TotalQuestions: 4, SourceLength: 1200},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"CSV", FormatCSV, false},
		{"txt", FormatText, false},
		{"text", FormatText, false},
		{" html ", FormatHTML, false},
		{"xlsx", FormatXLSX, false},
		{"", FormatJSON, false},
		{"docx", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSON_MirrorsQuizShape(t *testing.T) {
	body, err := JSON(sampleQuiz())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Contains(t, decoded, "multiple_choice")
	assert.Contains(t, decoded, "true_false")
	meta := decoded["metadata"].(map[string]any)
	assert.Equal(t, "Medium", meta["difficulty"])
	assert.EqualValues(t, 4, meta["total_questions"])
	assert.EqualValues(t, 1200, meta["source_length"])
}

func TestJSON_EmptyListsAreArrays(t *testing.T) {
	body, err := JSON(&domain.QuizResult{})
	require.NoError(t, err)
	assert.Contains(t, string(body), `"multiple_choice": []`)
	assert.Contains(t, string(body), `"true_false": []`)
}

func TestCSV_Layout(t *testing.T) {
	body, err := CSV(sampleQuiz())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)

	assert.Equal(t, []string{
		"Question_Number", "Type", "Question",
		"Option_A", "Option_B", "Option_C", "Option_D",
		"Correct_Answer", "Explanation",
	}, records[0])
	assert.Equal(t, []string{"MC1", "Multiple Choice", "What is 2+2?", "3", "4", "5", "6", "4", "Basic arithmetic"}, records[1])
	assert.Equal(t, "", records[2][8], "csv keeps a missing explanation blank")
	assert.Equal(t, []string{"TF1", "True/False", "The sky is blue.", "True", "False", "", "", "True", "Rayleigh scattering"}, records[3])
	assert.Equal(t, "False", records[4][7])
}

func TestCSV_ShortOptionsLeaveBlankColumns(t *testing.T) {
	quiz := &domain.QuizResult{MultipleChoice: []domain.MultipleChoiceQuestion{
		{Question: "Q?", Options: []string{"a", "b"}, CorrectAnswer: "a"},
	}}
	body, err := CSV(quiz)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"MC1", "Multiple Choice", "Q?", "a", "b", "", "", "a", ""}, records[1])
}

func TestText_Transcript(t *testing.T) {
	out := Text(sampleQuiz())
	lines := strings.Split(out, "\n")

	assert.Equal(t, "AI GENERATED QUIZ", lines[0])
	assert.Equal(t, strings.Repeat("=", 50), lines[1])
	assert.Contains(t, lines, "Question 1: What is 2+2?")
	assert.Contains(t, lines, "B. 4 [CORRECT]")
	assert.Contains(t, lines, "A. 3")
	assert.Contains(t, lines, "Explanation: Basic arithmetic")
	assert.Contains(t, lines, "Explanation: No explanation provided")
	assert.Contains(t, lines, "TRUE/FALSE QUESTIONS")
	assert.Contains(t, lines, "Answer: True")
	assert.Contains(t, lines, "Answer: False")
}

func TestHTML_EscapesAndMarks(t *testing.T) {
	at := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
	body, err := HTML(sampleQuiz(), at)
	require.NoError(t, err)
	page := string(body)

	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, "Generated on March 05, 2024 at 02:30 PM")
	assert.Contains(t, page, `<div class="correct">B. 4</div>`)
	assert.Contains(t, page, "<div>A. 3</div>")
	assert.Contains(t, page, "Which tag is &lt;b&gt;?")
	assert.NotContains(t, page, "Which tag is <b>?")
	assert.Contains(t, page, "No explanation provided")
	assert.Contains(t, page, "Answer: False")
}

func TestXLSX_Rows(t *testing.T) {
	body, err := XLSX(sampleQuiz())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, tableHeader, rows[0])
	assert.Equal(t, "MC1", rows[1][0])
	assert.Equal(t, "4", rows[1][7])
	assert.Equal(t, "TF2", rows[4][0])
	assert.Equal(t, "False", rows[4][7])
}

func TestExporter_Export(t *testing.T) {
	e := NewExporter()
	e.now = func() time.Time { return time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC) }

	tests := []struct {
		format      Format
		contentType string
	}{
		{FormatJSON, "application/json"},
		{FormatCSV, "text/csv"},
		{FormatText, "text/plain; charset=utf-8"},
		{FormatHTML, "text/html; charset=utf-8"},
		{FormatXLSX, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			doc, err := e.Export(sampleQuiz(), tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.contentType, doc.ContentType)
			assert.Equal(t, "quiz."+string(tt.format), doc.Filename)
			assert.NotEmpty(t, doc.Body)
		})
	}
}

func TestExporter_Errors(t *testing.T) {
	e := NewExporter()

	_, err := e.Export(nil, FormatJSON)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.Export(sampleQuiz(), Format("pdf"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
