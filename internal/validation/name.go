// Package validation provides input validation for the setup command,
// with rule-specific messages so the prompt loop can tell the user
// exactly which rule was violated.
package validation

import (
	"regexp"
	"strings"

	"github.com/kindling-dev/kindling/internal/errors"
)

// namePattern is the full character class allowed in project names.
var namePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidateProjectName checks a project name against the template naming
// rules: non-empty, entirely lowercase letters, digits and hyphens, and
// no leading or trailing hyphen. Each rule fails with its own message.
func ValidateProjectName(name string) error {
	if name == "" {
		return errors.NewValidationError(errors.ErrCodeInvalidName,
			"project name cannot be empty")
	}

	if !namePattern.MatchString(name) {
		return errors.NewValidationError(errors.ErrCodeInvalidName,
			"project name may only contain lowercase letters, digits, and hyphens")
	}

	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") {
		return errors.NewValidationError(errors.ErrCodeInvalidName,
			"project name cannot start or end with a hyphen")
	}

	return nil
}

// SuggestProjectName derives a valid candidate from an invalid input,
// for use in validation error hints. Returns "" when nothing usable
// remains after normalization.
func SuggestProjectName(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")

	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}

	candidate := strings.Trim(b.String(), "-")
	if ValidateProjectName(candidate) != nil {
		return ""
	}

	return candidate
}
