package validation

import "regexp"

var ulidPattern = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	return ulidPattern.MatchString(s)
}
