package trip

import (
	"fmt"
	"time"
)

// Tier is the cost-tier classification of a trip location.
type Tier int

const (
	HighCost Tier = iota
	LowCost
)

// String implements fmt.Stringer.
func (t Tier) String() string {
	switch t {
	case LowCost:
		return "low"
	case HighCost:
		return "high"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// Raw is a single validated input tuple, ready to be built into a Trip.
type Raw struct {
	Tier  Tier
	Start time.Time
	End   time.Time
	// Source names where the tuple came from, e.g. `args[2]`. Used only in
	// log messages.
	Source string
}

// Trip is one continuous reimbursable period. It is a value type and is
// never mutated after Build returns it.
type Trip struct {
	Start              time.Time
	End                time.Time
	Tier               Tier
	AdjacentToPrevious bool
	AdjacentToNext     bool
	Source             string
}

// Span returns the number of whole days between the trip's start and end.
// A trip that starts and ends on the same day has a span of 0.
func (t Trip) Span() int {
	return DayDifference(t.Start, t.End)
}
