package tripinput

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUngroupable is returned when a token list cannot be split into
	// complete tuples.
	ErrUngroupable = errors.New("cannot group arguments into trips")
	// ErrInvalidCostFlag is returned for an unrecognized cost flag token.
	ErrInvalidCostFlag = errors.New("invalid cost flag")
	// ErrInvalidDate is returned for a date string that does not parse.
	ErrInvalidDate = errors.New("invalid date")
	// ErrStartAfterEnd is returned when a trip ends before it starts.
	ErrStartAfterEnd = errors.New("start date is after end date")
)

// Field names used in FieldError.
const (
	FieldCost  = "cost"
	FieldStart = "start"
	FieldEnd   = "end"
	FieldDates = "dates"
)

// FieldError describes a single invalid field of a single trip.
type FieldError struct {
	Trip   int    // zero-based position in the batch
	Source string // where the trip came from, if known
	Field  string
	Value  string
	Err    error
}

func (e *FieldError) Error() string {
	where := fmt.Sprintf("trip %d", e.Trip+1)
	if e.Source != "" {
		where = fmt.Sprintf("%s (%s)", where, e.Source)
	}
	return fmt.Sprintf("%s: %s %q: %v", where, e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ValidationError aggregates every FieldError found in a rejected batch.
type ValidationError struct {
	Fields []*FieldError
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d invalid field(s):", len(e.Fields))
	for _, f := range e.Fields {
		sb.WriteString("\n  ")
		sb.WriteString(f.Error())
	}
	return sb.String()
}

// Unwrap exposes the individual field errors to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Fields))
	for i, f := range e.Fields {
		errs[i] = f
	}
	return errs
}
