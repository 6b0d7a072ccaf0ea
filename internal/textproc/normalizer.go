package textproc

import (
	"strings"
	"unicode/utf8"

	"quiz-forge/internal/domain"
)

const (
	// MinContentLength is the minimum number of characters a document must keep
	// after cleanup to be worth prompting on.
	MinContentLength = 100
	// MaxContentLength bounds what is sent to the model.
	MaxContentLength = 8000
	// TruncationSuffix marks text cut at MaxContentLength.
	TruncationSuffix = "..."
)

// Normalize collapses whitespace, enforces the minimum length and truncates
// overly long text. Lengths are counted in characters, not bytes.
func Normalize(raw string) (string, error) {
	text := strings.Join(strings.Fields(raw), " ")

	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}

	text = strings.TrimSpace(text)
	if n := utf8.RuneCountInString(text); n < MinContentLength {
		return "", domain.NewContentTooShortError(n, MinContentLength)
	}

	if utf8.RuneCountInString(text) > MaxContentLength {
		text = Truncate(text, MaxContentLength) + TruncationSuffix
	}
	return text, nil
}

// Truncate returns at most the first n characters of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// Preview shortens text for display, appending TruncationSuffix when cut.
func Preview(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return Truncate(s, n) + TruncationSuffix
}
