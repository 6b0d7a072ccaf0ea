package export

import (
	"fmt"
	"strings"

	"quiz-forge/internal/domain"
)

// Text renders a plain transcript with the correct options marked.
func Text(quiz *domain.QuizResult) string {
	var out []string
	add := func(lines ...string) { out = append(out, lines...) }

	add("AI GENERATED QUIZ", strings.Repeat("=", 50), "")

	add("MULTIPLE CHOICE QUESTIONS", strings.Repeat("-", 30), "")
	for i, q := range quiz.MultipleChoice {
		add(fmt.Sprintf("Question %d: %s", i+1, q.Question), "")
		for j, opt := range q.Options {
			marker := ""
			if opt == q.CorrectAnswer {
				marker = " [CORRECT]"
			}
			add(fmt.Sprintf("%s. %s%s", optionLabel(j), opt, marker))
		}
		add("", "Explanation: "+explanationOr(q.Explanation), "", strings.Repeat("-", 30), "")
	}

	add("TRUE/FALSE QUESTIONS", strings.Repeat("-", 20), "")
	for i, q := range quiz.TrueFalse {
		add(fmt.Sprintf("Question %d: %s", i+1, q.Question), "")
		add("Answer: "+boolLabel(q.CorrectAnswer), "")
		add("Explanation: "+explanationOr(q.Explanation), "", strings.Repeat("-", 20), "")
	}

	return strings.Join(out, "\n")
}
