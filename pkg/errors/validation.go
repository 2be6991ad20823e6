package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// idRegex matches valid element identifiers: an alphanumeric start followed
// by alphanumerics, dots, underscores, or hyphens.
var idRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateID validates a shape, connector, or annotation identifier.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters or whitespace
//   - Maximum length of 128 characters
//   - Restricted charset (alphanumerics plus . _ -)
//
// Identifiers are used as map keys and appear in error messages and SVG
// output, so the charset is kept safe for both.
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "identifier cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidInput, "identifier too long (max 128 characters)")
	}

	if !idRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid identifier: %q", id)
	}

	return nil
}

// ValidateOutputPath validates a destination path for exported artifacts.
// It rejects paths that cannot name a regular file. Existence of the parent
// directory is not checked here; a missing directory surfaces as a fatal
// export I/O error at write time.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not end in a path separator
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path must name a file, not a directory")
	}

	return nil
}

// ValidateSpecPath validates a diagram spec file path supplied on the
// command line.
func ValidateSpecPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "spec path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "spec path contains invalid characters")
		}
	}

	return nil
}
