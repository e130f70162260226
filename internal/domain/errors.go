package domain

import (
	"errors"
	"fmt"
)

var (
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrPropertyNotFound  = errors.New("property not found")
	ErrThreadNotFound    = errors.New("thread not found")
	ErrThreadEmpty       = errors.New("no messages found in thread")
	ErrDocumentNotFound  = errors.New("knowledge document not found")
	ErrSettingsNotFound  = errors.New("workspace settings not found")

	// ErrInvalidInput marks caller mistakes that map to a 400 response.
	ErrInvalidInput = errors.New("invalid input")
)

// Invalid wraps ErrInvalidInput with a caller-facing detail message.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
