// internal/domain/homework/errors.go
package homework

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrStateNotFound is returned by a StateRepository that holds no saved state yet.
var ErrStateNotFound = errors.New("polling state not found")

// Abbreviate shortens s to at most limit runes, marking the cut with "…".
func Abbreviate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-1]) + "…"
}

// RemoteAPIError reports a failed request to the status API: either a non-200
// response (StatusCode, Reason and Body are set) or a transport failure (Err is set).
type RemoteAPIError struct {
	StatusCode int
	Reason     string
	Body       string
	Err        error
}

func (e *RemoteAPIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("status API request failed: %v", e.Err)
	}
	return fmt.Sprintf("status API responded with code %d (%s): %s", e.StatusCode, e.Reason, e.Body)
}

func (e *RemoteAPIError) Unwrap() error {
	return e.Err
}

// ShapeKind tells which structural check of the response failed.
type ShapeKind string

const (
	ShapeNotMapping ShapeKind = "not a mapping"
	ShapeMissingKey ShapeKind = "missing key"
	ShapeWrongType  ShapeKind = "wrong element type"
)

// ShapeError reports a response body that does not match the documented shape.
type ShapeError struct {
	Kind ShapeKind
	Key  string
	Got  string // Go type that was found instead, when relevant
}

func (e *ShapeError) Error() string {
	switch e.Kind {
	case ShapeMissingKey:
		return fmt.Sprintf("malformed response: %s %q", e.Kind, e.Key)
	case ShapeNotMapping:
		return fmt.Sprintf("malformed response: %s (got %s)", e.Kind, e.Got)
	default:
		return fmt.Sprintf("malformed response: %s for %q (got %s)", e.Kind, e.Key, e.Got)
	}
}

// UnknownStatusError is returned when a homework record has no name, no status,
// or a status outside the verdict table.
type UnknownStatusError struct {
	Field  string
	Status string
}

func (e *UnknownStatusError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("homework record has no %q", e.Field)
	}
	return fmt.Sprintf("unknown homework status %q", e.Status)
}

// NotificationError wraps a failure of the messaging client.
type NotificationError struct {
	ChatID int64
	Err    error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("failed to send message to chat %d: %v", e.ChatID, e.Err)
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}
