package export

import (
	"bytes"
	"encoding/csv"

	"quiz-forge/internal/domain"
)

// CSV writes a header row followed by one row per question.
func CSV(quiz *domain.QuizResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(tableHeader); err != nil {
		return nil, err
	}
	if err := w.WriteAll(tableRows(quiz)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
