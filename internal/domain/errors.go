package domain

import (
	"errors"
	"fmt"
)

// Fatal run errors. Every one of them aborts the run; nothing is retried.
var (
	ErrNoInputFileFound = errors.New("no input csv file found")
	ErrMalformedInput   = errors.New("malformed input")
	ErrMissingColumn    = errors.New("missing required column")
	ErrWriteFailure     = errors.New("write output")
)

// MissingColumnError reports the first required column absent from the header.
type MissingColumnError struct {
	Name string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMissingColumn, e.Name)
}

// Unwrap lets errors.Is match ErrMissingColumn.
func (e *MissingColumnError) Unwrap() error {
	return ErrMissingColumn
}
