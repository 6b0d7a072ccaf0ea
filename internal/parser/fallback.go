package parser

import (
	"strings"

	"quiz-forge/internal/domain"
)

var optionPrefixes = []string{"A.", "B.", "C.", "D.", "1.", "2.", "3.", "4."}

const maxOptions = 4

// scanMultipleChoice treats "Question..." lines and lines ending in '?' as
// question starts and lettered or numbered lines as options. A question is kept
// only if at least one option followed it; the first option is assumed correct.
func scanMultipleChoice(reply string) []domain.QuestionRecord {
	questions := []domain.QuestionRecord{}
	var current string
	var options []string

	flush := func() {
		if current == "" || len(options) == 0 {
			return
		}
		if len(options) > maxOptions {
			options = options[:maxOptions]
		}
		questions = append(questions, domain.QuestionRecord{
			"question":       current,
			"options":        options,
			"correct_answer": options[0],
			"explanation":    domain.NoExplanationFallback,
		})
	}

	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Question") || strings.HasSuffix(line, "?"):
			flush()
			current = line
			options = nil
		case line != "" && hasOptionPrefix(line):
			options = append(options, optionText(line))
		}
	}
	flush()

	return questions
}

func hasOptionPrefix(line string) bool {
	for _, p := range optionPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

func optionText(line string) string {
	if len(line) > 2 {
		return strings.TrimSpace(line[2:])
	}
	return line
}

// scanTrueFalse keeps every line that looks like a statement about truth.
// It cannot tell the answer, so every record defaults to true.
func scanTrueFalse(reply string) []domain.QuestionRecord {
	questions := []domain.QuestionRecord{}
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasSuffix(line, "?") || strings.Contains(line, "True") || strings.Contains(line, "False") {
			questions = append(questions, domain.QuestionRecord{
				"question":       line,
				"correct_answer": true,
				"explanation":    domain.NoExplanationFallback,
			})
		}
	}
	return questions
}
