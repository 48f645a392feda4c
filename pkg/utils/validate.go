package utils

import (
	"encoding/base64"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// ValidationError represents a validation error on a single input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateText checks that text is non-empty after trimming and within the
// given rune bound. The bound is a hard contract: oversize input is rejected,
// not truncated.
func ValidateText(field, text string, maxRunes int) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Field: field, Message: "Text is required"}
	}
	if utf8.RuneCountInString(text) > maxRunes {
		return &ValidationError{Field: field, Message: "Text is too long"}
	}
	return nil
}

// ValidateHexColor checks for a #rgb or #rrggbb color value.
func ValidateHexColor(field, color string) error {
	if !hexColorRegex.MatchString(strings.TrimSpace(color)) {
		return &ValidationError{Field: field, Message: "Invalid color value"}
	}
	return nil
}

// ValidateImageDataURI checks that s looks like a base64 image data URI and
// that its decoded payload stays under maxBytes.
func ValidateImageDataURI(field, s string, maxBytes int) error {
	if !strings.HasPrefix(s, "data:image/") {
		return &ValidationError{Field: field, Message: "Image must be a data URI"}
	}
	idx := strings.Index(s, ";base64,")
	if idx < 0 {
		return &ValidationError{Field: field, Message: "Image must be base64-encoded"}
	}
	payload := s[idx+len(";base64,"):]
	if payload == "" {
		return &ValidationError{Field: field, Message: "Image payload is empty"}
	}
	if base64.StdEncoding.DecodedLen(len(payload)) > maxBytes {
		return &ValidationError{Field: field, Message: "Image is too large"}
	}
	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		return &ValidationError{Field: field, Message: "Image payload is not valid base64"}
	}
	return nil
}
