package errors

import (
	"strings"
	"unicode"
)

// ValidateOutputPath validates an output file path for safety.
// It rejects empty paths, control characters, and path traversal sequences.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidInput, "output path cannot contain path traversal sequences (..)")
	}

	return nil
}

// ValidateRegionName validates a region display name.
// Names end up verbatim in SVG text nodes and DOT identifiers, so control
// characters are rejected up front.
func ValidateRegionName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "region name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "region name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "region name contains invalid control characters")
		}
	}

	return nil
}
