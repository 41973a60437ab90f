package identity

import (
	"regexp"
	"strings"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// ValidUsername reports whether candidate is an acceptable username: non-empty
// after trimming surrounding whitespace and composed only of ASCII letters and
// digits. There is no length bound, and uniqueness is the store's concern.
func ValidUsername(candidate string) bool {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return false
	}
	return usernamePattern.MatchString(trimmed)
}
