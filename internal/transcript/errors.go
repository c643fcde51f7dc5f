package transcript

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is reported when structured content cannot be
// deserialized into the expected shape.
var ErrMalformedInput = errors.New("malformed input")

// MalformedInputError describes why structured content was rejected.
// It matches ErrMalformedInput with errors.Is.
type MalformedInputError struct {
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrMalformedInput, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrMalformedInput, e.Reason)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

func malformed(reason string, err error) error {
	return &MalformedInputError{Reason: reason, Err: err}
}
