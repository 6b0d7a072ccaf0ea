package export

import (
	"bytes"
	"html/template"
	"time"

	"quiz-forge/internal/domain"
)

var printTemplate = template.Must(template.New("print").Funcs(template.FuncMap{
	"inc":         func(i int) int { return i + 1 },
	"label":       optionLabel,
	"boolLabel":   boolLabel,
	"explanation": explanationOr,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Quiz - Print Version</title>
<style>
body { font-family: Arial, sans-serif; margin: 20px; line-height: 1.6; color: #333; }
.header { text-align: center; border-bottom: 3px solid #dc2626; padding-bottom: 20px; margin-bottom: 30px; }
.question-section { margin-bottom: 40px; }
.question { background: #f9f9f9; padding: 15px; border-left: 4px solid #dc2626; margin-bottom: 20px; border-radius: 5px; }
.question-title { font-weight: bold; margin-bottom: 10px; color: #dc2626; }
.options { margin: 10px 0; }
.correct { background: #dcfce7; font-weight: bold; color: #15803d; }
.explanation { background: #eff6ff; padding: 10px; margin-top: 10px; border-radius: 3px; font-style: italic; }
@media print { body { margin: 0; } }
</style>
</head>
<body>
<div class="header">
<h1>AI Generated Quiz</h1>
<p>Generated on {{.GeneratedAt}}</p>
</div>
<div class="question-section">
<h2>Multiple Choice Questions</h2>
{{range $i, $q := .Quiz.MultipleChoice}}<div class="question">
<div class="question-title">Question {{inc $i}}: {{$q.Question}}</div>
<div class="options">
{{range $j, $opt := $q.Options}}<div{{if eq $opt $q.CorrectAnswer}} class="correct"{{end}}>{{label $j}}. {{$opt}}</div>
{{end}}</div>
<div class="explanation"><strong>Explanation:</strong> {{explanation $q.Explanation}}</div>
</div>
{{end}}</div>
<div class="question-section">
<h2>True/False Questions</h2>
{{range $i, $q := .Quiz.TrueFalse}}<div class="question">
<div class="question-title">Question {{inc $i}}: {{$q.Question}}</div>
<div class="options correct">Answer: {{boolLabel $q.CorrectAnswer}}</div>
<div class="explanation"><strong>Explanation:</strong> {{explanation $q.Explanation}}</div>
</div>
{{end}}</div>
</body>
</html>
`))

// HTML renders a standalone printable page. All question text is escaped.
func HTML(quiz *domain.QuizResult, generatedAt time.Time) ([]byte, error) {
	var buf bytes.Buffer
	err := printTemplate.Execute(&buf, struct {
		Quiz        *domain.QuizResult
		GeneratedAt string
	}{
		Quiz:        quiz,
		GeneratedAt: generatedAt.Format("January 02, 2006 at 03:04 PM"),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
