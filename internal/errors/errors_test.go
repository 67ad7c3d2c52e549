//nolint:testpackage // Tests require internal access for thorough testing
package errors

import (
	stderrors "errors"
	"testing"
	"time"
)

func TestDeadlineInPastError(t *testing.T) {
	tests := []struct {
		name string
		err  DeadlineInPastError
		want string
	}{
		{
			name: "whole seconds",
			err:  DeadlineInPastError{Deadline: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
			want: "The deadline 2020-01-01T00:00:00 has already passed",
		},
		{
			name: "fractional seconds",
			err:  DeadlineInPastError{Deadline: time.Date(2020, 1, 1, 9, 5, 3, 500000000, time.UTC)},
			want: "The deadline 2020-01-01T09:05:03.5 has already passed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("DeadlineInPastError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFieldCountError(t *testing.T) {
	err := FieldCountError{Count: 1}
	want := "could not parse line: expected 3 to 5 fields, got 1"
	if got := err.Error(); got != want {
		t.Errorf("FieldCountError.Error() = %q, want %q", got, want)
	}
}

func TestUnparseableFieldError(t *testing.T) {
	err := UnparseableFieldError{Value: "soon"}
	want := `could not parse line: "soon" is neither a priority nor a deadline`
	if got := err.Error(); got != want {
		t.Errorf("UnparseableFieldError.Error() = %q, want %q", got, want)
	}
}

func TestLineErrorUnwrap(t *testing.T) {
	inner := DeadlineInPastError{Deadline: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	err := error(LineError{Line: 4, Category: "work", Err: inner})

	want := "line 4: The deadline 2020-01-01T00:00:00 has already passed"
	if got := err.Error(); got != want {
		t.Errorf("LineError.Error() = %q, want %q", got, want)
	}

	var past DeadlineInPastError
	if !stderrors.As(err, &past) {
		t.Fatal("errors.As should find DeadlineInPastError")
	}
	if !past.Deadline.Equal(inner.Deadline) {
		t.Errorf("Deadline = %v, want %v", past.Deadline, inner.Deadline)
	}
}

func TestInvalidFormatError(t *testing.T) {
	err := InvalidFormatError{Value: "xml"}
	want := "invalid format: xml (valid: human, json, yaml)"
	if got := err.Error(); got != want {
		t.Errorf("InvalidFormatError.Error() = %q, want %q", got, want)
	}
}
