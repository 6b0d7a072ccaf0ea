package prompt

import (
	"fmt"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/textproc"
)

// MaxPromptText is the number of source characters embedded in a prompt.
const MaxPromptText = 4000

const mcqTemplate = `Based on the following text content, generate exactly %d multiple choice questions at %s difficulty level.

Requirements:
- Each question should have exactly 4 options (A, B, C, D)
- Only one option should be correct
- Include an explanation for why the correct answer is right
- Questions should test comprehension, not just memorization
- Avoid questions that can be answered without reading the text
- Make sure all questions are directly answerable from the provided content

Text content:
%s

Response format (JSON only):
{
    "questions": [
        {
            "question": "Question text here?",
            "options": ["Option A", "Option B", "Option C", "Option D"],
            "correct_answer": "Option B",
            "explanation": "Explanation of why this is correct"
        }
    ]
}`

const tfTemplate = `Based on the following text content, generate exactly %d true/false questions at %s difficulty level.

Requirements:
- Questions should be clearly true or false based on the content
- Include an explanation for the correct answer
- Mix of true and false answers (roughly 50/50)
- Questions should test understanding, not just factual recall
- Avoid ambiguous statements
- Make sure all questions are directly answerable from the provided content

Text content:
%s

Response format (JSON only):
{
    "questions": [
        {
            "question": "Statement to evaluate as true or false",
            "correct_answer": true,
            "explanation": "Explanation of why this is true/false"
        }
    ]
}`

// BuildMCQPrompt renders the multiple-choice prompt for already normalized text.
func BuildMCQPrompt(text string, count int, difficulty domain.Difficulty) string {
	return fmt.Sprintf(mcqTemplate, count, difficulty, textproc.Truncate(text, MaxPromptText))
}

// BuildTFPrompt renders the true/false prompt for already normalized text.
func BuildTFPrompt(text string, count int, difficulty domain.Difficulty) string {
	return fmt.Sprintf(tfTemplate, count, difficulty, textproc.Truncate(text, MaxPromptText))
}

// Build dispatches on kind.
func Build(kind domain.QuestionKind, text string, count int, difficulty domain.Difficulty) string {
	if kind == domain.KindTrueFalse {
		return BuildTFPrompt(text, count, difficulty)
	}
	return BuildMCQPrompt(text, count, difficulty)
}
