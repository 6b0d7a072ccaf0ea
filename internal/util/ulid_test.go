package util

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewULID(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)

	seen := make(map[string]bool)
	prev := ""
	for i := 0; i < 100; i++ {
		id := NewULID()
		assert.Regexp(t, pattern, id)
		assert.False(t, seen[id], "duplicate ULID %s", id)
		assert.Greater(t, id, prev)
		seen[id] = true
		prev = id
	}
}
