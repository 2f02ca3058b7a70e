package tripinput

import (
	"fmt"
	"time"

	"github.com/vk/perdiem/internal/trip"
)

// Tuple is one trip as supplied by the user, before validation.
type Tuple struct {
	Cost   string
	Start  string
	End    string
	Source string
}

// Validator checks raw trip tuples. The zero value parses dates in
// time.Local.
type Validator struct {
	Location *time.Location
}

// Tuples groups a flat token list into unvalidated tuples. The source of
// each tuple is labelled with the index of its cost flag, counted from
// offset.
func Tuples(tokens []string, offset int) ([]Tuple, error) {
	groups, err := Group(tokens, TupleSize)
	if err != nil {
		return nil, err
	}
	tuples := make([]Tuple, len(groups))
	for i, g := range groups {
		tuples[i] = Tuple{
			Cost:   g[costIndex],
			Start:  g[startIndex],
			End:    g[endIndex],
			Source: fmt.Sprintf("args[%d]", offset+i*TupleSize),
		}
	}
	return tuples, nil
}

// ParseTokens groups a flat token list into tuples and validates them.
func (v Validator) ParseTokens(tokens []string) ([]trip.Raw, error) {
	tuples, err := Tuples(tokens, 0)
	if err != nil {
		return nil, err
	}
	return v.Validate(tuples)
}

// Validate checks every tuple and converts the batch to trip.Raw values.
// Cost flag and date problems are reported independently; if any tuple is
// invalid the whole batch is rejected with a *ValidationError.
func (v Validator) Validate(tuples []Tuple) ([]trip.Raw, error) {
	var fieldErrs []*FieldError
	raws := make([]trip.Raw, 0, len(tuples))

	for i, tp := range tuples {
		fail := func(field, value string, err error) {
			fieldErrs = append(fieldErrs, &FieldError{Trip: i, Source: tp.Source, Field: field, Value: value, Err: err})
		}

		tier, costErr := ParseCostFlag(tp.Cost)
		if costErr != nil {
			fail(FieldCost, tp.Cost, costErr)
		}
		start, startErr := ParseDate(tp.Start, v.Location)
		if startErr != nil {
			fail(FieldStart, tp.Start, startErr)
		}
		end, endErr := ParseDate(tp.End, v.Location)
		if endErr != nil {
			fail(FieldEnd, tp.End, endErr)
		}
		if startErr == nil && endErr == nil && start.After(end) {
			fail(FieldDates, tp.Start+" > "+tp.End, ErrStartAfterEnd)
		}

		raws = append(raws, trip.Raw{Tier: tier, Start: start, End: end, Source: tp.Source})
	}

	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}
	return raws, nil
}
