//nolint:revive // Package name intentionally matches stdlib for domain clarity
package errors

import (
	"fmt"
	"time"

	"github.com/abatilo/taskmgr/internal/task"
)

// DeadlineInPastError indicates a parsed deadline is already behind the clock.
type DeadlineInPastError struct {
	Deadline time.Time
}

func (e DeadlineInPastError) Error() string {
	return fmt.Sprintf("The deadline %s has already passed", task.FormatTimestamp(e.Deadline))
}

// FieldCountError indicates a line does not have 3, 4 or 5 comma-separated fields.
type FieldCountError struct {
	Count int
}

func (e FieldCountError) Error() string {
	return fmt.Sprintf("could not parse line: expected 3 to 5 fields, got %d", e.Count)
}

// MalformedTimestampError indicates a deadline field is not a local date-time.
type MalformedTimestampError struct {
	Value string
}

func (e MalformedTimestampError) Error() string {
	return fmt.Sprintf("could not parse line: invalid deadline %q", e.Value)
}

// MalformedIntegerError indicates a priority field is not an integer.
type MalformedIntegerError struct {
	Value string
}

func (e MalformedIntegerError) Error() string {
	return fmt.Sprintf("could not parse line: invalid priority %q", e.Value)
}

// UnparseableFieldError indicates the fourth field is neither a priority nor a deadline.
type UnparseableFieldError struct {
	Value string
}

func (e UnparseableFieldError) Error() string {
	return fmt.Sprintf("could not parse line: %q is neither a priority nor a deadline", e.Value)
}

// LineError attaches an input line number and category to a parse failure.
type LineError struct {
	Line     int
	Category string
	Err      error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e LineError) Unwrap() error {
	return e.Err
}

// InvalidFormatError indicates an unknown output format was requested.
type InvalidFormatError struct {
	Value string
}

func (e InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format: %s (valid: human, json, yaml)", e.Value)
}
