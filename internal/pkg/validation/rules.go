package validation

import (
	"regexp"
	"strconv"
	"strings"
)

// EmailPattern requires a local part, an @, a domain and a TLD, with no
// whitespace anywhere.
var EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

// CompiledPatterns caches compiled regex patterns.
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// IsValidEmail reports whether the value matches the email pattern.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// ParseID converts a raw identifier to a strictly positive int64.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// IsValidID reports whether an already-numeric identifier is usable.
func IsValidID(id int64) bool {
	return id > 0
}

// IsNonEmpty reports whether the value has content after trimming.
func IsNonEmpty(value string) bool {
	return strings.TrimSpace(value) != ""
}
