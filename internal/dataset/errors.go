package dataset

import (
	"errors"
	"fmt"
)

// ErrEmpty indicates the input parsed to zero rows or zero columns.
var ErrEmpty = errors.New("dataset is empty (no rows or no columns)")

// NotFoundError indicates the input path does not exist or is unreadable.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("input file not found: %s: %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ParseError indicates a malformed row or an unreadable record.
type ParseError struct {
	Row int // 1-based data row index
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse row %d: %v", e.Row, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
