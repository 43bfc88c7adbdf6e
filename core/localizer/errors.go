package localizer

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidContent is returned when a content map reaching resolution has no entries.
	ErrInvalidContent = errors.New("localizer: content map has no entries")

	// ErrUnsupportedType is returned when the root is not a pointer to a struct.
	ErrUnsupportedType = errors.New("localizer: root must be a non-nil pointer to a struct")
)

// MemberError reports a field that could not be resolved.
// Other fields of the same traversal are still processed.
type MemberError struct {
	Type  reflect.Type
	Field string
	Err   error
}

// Error implements the error interface.
func (e *MemberError) Error() string {
	return fmt.Sprintf("localizer: %s.%s: %v", e.Type, e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *MemberError) Unwrap() error {
	return e.Err
}
