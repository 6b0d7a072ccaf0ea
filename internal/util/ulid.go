package util

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. ulid.Make draws from a process-wide
// monotonic entropy source, so IDs created in the same millisecond still sort.
func NewULID() string {
	return ulid.Make().String()
}
