package ddd

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument a value object was constructed from an invalid raw value
	ErrInvalidArgument = errors.New("invalid argument")
)

// ArgumentError describes why a raw value was rejected.
type ArgumentError struct {
	// Name of the value being constructed, e.g. "email".
	Name string
	// Value is the rejected raw input.
	Value string
	// Reason is the failed rule's message.
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("ddd: invalid %s %q: %s", e.Name, e.Value, e.Reason)
}

// Is matches ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
