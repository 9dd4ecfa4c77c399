package errors

import (
	"errors"
	"fmt"
)

// InputNotFoundError represents an input file that does not exist.
type InputNotFoundError struct {
	Path string
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("unable to find %q, make sure to specify the proper path with -i", e.Path)
}

// NewInputNotFoundError creates an InputNotFoundError for path.
func NewInputNotFoundError(path string) *InputNotFoundError {
	return &InputNotFoundError{Path: path}
}

// IsInputNotFoundError reports whether err is an InputNotFoundError (even when wrapped).
func IsInputNotFoundError(err error) bool {
	var notFound *InputNotFoundError
	return errors.As(err, &notFound)
}
