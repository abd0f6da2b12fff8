package ingest

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoValidQuestions is returned when a well-headed table produced zero
	// usable rows.
	ErrNoValidQuestions = errors.New("no valid questions found")

	// ErrInvalidJSON is returned when the JSON input does not parse at all.
	ErrInvalidJSON = errors.New("invalid JSON format")

	// ErrBadShape is returned when parsed JSON is neither an object nor an
	// array.
	ErrBadShape = errors.New("must be an array of questions or a single question object")
)

// MissingColumnsError reports every required header column absent from a
// delimited table, in one error.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "missing required column(s): " + strings.Join(e.Columns, ", ")
}

// ValidationError reports an invalid element in a JSON question batch by its
// zero-based index.
type ValidationError struct {
	Index int
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("question at index %d: %s %s", e.Index, e.Field, e.Msg)
}
