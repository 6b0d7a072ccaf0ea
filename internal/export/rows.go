package export

import (
	"fmt"

	"quiz-forge/internal/domain"
)

// tableHeader is shared by the CSV and XLSX exports.
var tableHeader = []string{
	"Question_Number", "Type", "Question",
	"Option_A", "Option_B", "Option_C", "Option_D",
	"Correct_Answer", "Explanation",
}

// tableRows flattens a quiz into one row per question. Options beyond the
// fourth are not exported; missing ones are blank.
func tableRows(quiz *domain.QuizResult) [][]string {
	rows := make([][]string, 0, quiz.QuestionCount())
	for i, q := range quiz.MultipleChoice {
		row := []string{fmt.Sprintf("MC%d", i+1), "Multiple Choice", q.Question, "", "", "", "", q.CorrectAnswer, q.Explanation}
		for j := 0; j < 4 && j < len(q.Options); j++ {
			row[3+j] = q.Options[j]
		}
		rows = append(rows, row)
	}
	for i, q := range quiz.TrueFalse {
		rows = append(rows, []string{
			fmt.Sprintf("TF%d", i+1), "True/False", q.Question,
			"True", "False", "", "",
			boolLabel(q.CorrectAnswer), q.Explanation,
		})
	}
	return rows
}
