package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrNoData is returned when the input holds no numeric rows.
	ErrNoData = errors.New("grid: no data")

	// ErrNotNumeric is returned when a token cannot be parsed as a float32.
	ErrNotNumeric = errors.New("grid: non-numeric token")

	// ErrRaggedRow is returned when a row's width differs from the first row.
	ErrRaggedRow = errors.New("grid: row width differs from first row")

	// ErrBadShape is returned when a matrix is built with non-positive
	// dimensions or a data slice of the wrong length.
	ErrBadShape = errors.New("grid: invalid shape")
)

// LoadError reports a failure to load a matrix from a file.
// Line is 1-based and zero when the failure is not tied to a line.
type LoadError struct {
	Path string
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("loading %s: line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
