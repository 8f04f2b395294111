package errors

import (
	"strings"
	"unicode"
)

// ValidateVariable validates a variable name from a constraint file.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
//
// Constraint semantics impose nothing on variable spelling; these rules only
// keep file contents printable in tables, logs, and DOT output.
func ValidateVariable(name string) error {
	if name == "" {
		return New(ErrCodeInvalidConstraint, "variable name cannot be empty")
	}
	if len(name) > 256 {
		return New(ErrCodeInvalidConstraint, "variable name too long (max 256 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConstraint, "variable name contains control characters")
		}
	}
	return nil
}

// ValidateToken validates a token literal from a constraint file.
// The rules match ValidateVariable.
func ValidateToken(tok string) error {
	if tok == "" {
		return New(ErrCodeInvalidConstraint, "token cannot be empty")
	}
	if len(tok) > 256 {
		return New(ErrCodeInvalidConstraint, "token too long (max 256 characters)")
	}
	for _, r := range tok {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConstraint, "token contains control characters")
		}
	}
	return nil
}

// ValidateOutputPath validates a user-supplied output path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "path cannot be blank")
	}

	return nil
}
