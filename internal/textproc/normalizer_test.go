package textproc

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"quiz-forge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	raw := "  Photosynthesis\tconverts light\n\n\n\nenergy   into chemical energy.  " + strings.Repeat("word ", 30)

	got, err := Normalize(raw)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "Photosynthesis converts light energy into chemical energy. word"))
	assert.NotContains(t, got, "\n")
	assert.NotContains(t, got, "\t")
	assert.NotContains(t, got, "  ")
	assert.Equal(t, strings.TrimSpace(got), got)
}

func TestNormalize_TooShort(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "whitespace only", raw: " \n\t\n "},
		{name: "99 characters", raw: strings.Repeat("a", 99)},
		{name: "short after collapse", raw: strings.Repeat("a   \n\n", 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrContentTooShort))
		})
	}
}

func TestNormalize_ExactMinimum(t *testing.T) {
	raw := strings.Repeat("b", MinContentLength)
	got, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestNormalize_Truncates(t *testing.T) {
	raw := strings.Repeat("x", MaxContentLength+500)

	got, err := Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, MaxContentLength+len(TruncationSuffix), utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, TruncationSuffix))
	assert.Equal(t, strings.Repeat("x", MaxContentLength), strings.TrimSuffix(got, TruncationSuffix))
}

func TestNormalize_NoTruncationAtLimit(t *testing.T) {
	raw := strings.Repeat("y", MaxContentLength)
	got, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestNormalize_CountsCharactersNotBytes(t *testing.T) {
	// 60 two-byte characters: 120 bytes but only 60 characters.
	_, err := Normalize(strings.Repeat("é", 60))
	assert.True(t, errors.Is(err, domain.ErrContentTooShort))

	got, err := Normalize(strings.Repeat("é", MaxContentLength+1))
	require.NoError(t, err)
	assert.Equal(t, MaxContentLength+len(TruncationSuffix), utf8.RuneCountInString(got))
	assert.True(t, utf8.ValidString(got))
}

func TestTruncateAndPreview(t *testing.T) {
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "日本", Truncate("日本語", 2))

	assert.Equal(t, "abc", Preview("abc", 3))
	assert.Equal(t, "ab...", Preview("abc", 2))
}
