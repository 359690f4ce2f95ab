package errors

import (
	"strings"
	"unicode"
)

// ValidateEventID validates an event identifier for safety and correctness.
// Event IDs end up as cache keys, file names, and database keys, so the
// rules are intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateEventID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "event ID cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidInput, "event ID too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "event ID contains invalid control characters")
		}
	}

	if strings.ContainsAny(id, "/\\") || strings.Contains(id, "..") {
		return New(ErrCodeInvalidInput, "event ID cannot contain path sequences")
	}

	return nil
}

// ValidatePlaceID validates a place identifier supplied by an external
// system. Identifiers are opaque, so only structural safety is checked.
func ValidatePlaceID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "place ID cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidInput, "place ID too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "place ID contains invalid characters")
		}
	}

	return nil
}

// ValidateVenueFilename validates a venue configuration filename.
// It ensures the filename is a simple basename without path components.
func ValidateVenueFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidConfig, "venue filename cannot be empty")
	}

	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidConfig, "venue filename cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidConfig, "venue filename cannot be a hidden file")
	}

	return nil
}
