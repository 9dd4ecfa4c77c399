package errors

import (
	stdErrors "errors"
	"fmt"
	"strings"
)

// MissingColumnError reports an input file lacking columns the export needs,
// usually because of a wrong delimiter or an export made without images.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("unable to find columns %s: wrong delimiter, or images not exported?", strings.Join(e.Columns, ", "))
}

// NewMissingColumnError creates a MissingColumnError for the given columns.
func NewMissingColumnError(columns ...string) *MissingColumnError {
	return &MissingColumnError{Columns: columns}
}

// IsMissingColumnError checks if error is a MissingColumnError
func IsMissingColumnError(err error) bool {
	var colErr *MissingColumnError
	return stdErrors.As(err, &colErr)
}
