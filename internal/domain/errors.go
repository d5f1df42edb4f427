package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotFound is the sentinel for lookups that miss. Registry Get/Update
// return it directly; NotFoundError matches it through errors.Is so callers
// can test either way.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a structurally invalid request. It is always
// raised before any store mutation.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// NotFoundError reports a dangling reference during order composition,
// naming the entity kind and the id that failed to resolve.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func NewNotFoundError(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}
