package reimburse

import (
	"github.com/vk/perdiem/internal/trip"
)

// LineItem is the cost breakdown of a single trip.
type LineItem struct {
	Index              int
	Tier               trip.Tier
	Start              string
	End                string
	Span               int
	AdjacentToPrevious bool
	AdjacentToNext     bool
	StartCharge        int
	FullDays           int
	FullDayRate        int
	FullDayCharge      int
	EndCharge          int
	Subtotal           int
}

// Report is the full result of a calculation.
type Report struct {
	Total int
	Trips []LineItem
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithRates overrides the default rates. Tiers missing from rt keep their
// default rates.
func WithRates(rt RateTable) Option {
	return func(c *Calculator) {
		c.rates = DefaultRates().Merge(rt)
	}
}

// Calculator computes reimbursement totals. It holds no state besides its
// rate table and is safe for concurrent use.
type Calculator struct {
	rates RateTable
}

// New creates a Calculator using the default rates unless overridden.
func New(opts ...Option) *Calculator {
	c := &Calculator{rates: DefaultRates()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Total computes the reimbursement for trips at the default rates.
func Total(trips []trip.Trip) int {
	return New().Calculate(trips)
}

// Calculate returns the total reimbursement for the ordered batch of trips.
func (c *Calculator) Calculate(trips []trip.Trip) int {
	total := 0
	for i, t := range trips {
		total += c.lineItem(i, t).Subtotal
	}
	return total
}

// Breakdown returns the per-trip cost lines together with their total.
func (c *Calculator) Breakdown(trips []trip.Trip) Report {
	report := Report{Trips: make([]LineItem, 0, len(trips))}
	for i, t := range trips {
		item := c.lineItem(i, t)
		report.Trips = append(report.Trips, item)
		report.Total += item.Subtotal
	}
	return report
}

// lineItem applies the day-classification rules to one trip.
//
// The start date is a travel day when a multi-day trip does not continue
// the previous trip, or when a single-day trip touches neither neighbour.
// Days strictly between start and end are full days. The end date of a
// multi-day trip is a travel day unless the next trip continues it.
func (c *Calculator) lineItem(index int, t trip.Trip) LineItem {
	r := c.rates[t.Tier]
	span := t.Span()
	multiDay := span > 0

	item := LineItem{
		Index:              index,
		Tier:               t.Tier,
		Start:              t.Start.Format(dateLayout),
		End:                t.End.Format(dateLayout),
		Span:               span,
		AdjacentToPrevious: t.AdjacentToPrevious,
		AdjacentToNext:     t.AdjacentToNext,
	}

	isolated := !t.AdjacentToPrevious && !t.AdjacentToNext
	if (multiDay && !t.AdjacentToPrevious) || (!multiDay && isolated) {
		item.StartCharge = r.Travel
	}

	if multiDay {
		item.FullDays = span - 1
		item.FullDayRate = r.Full
		item.FullDayCharge = r.Full * item.FullDays
		if !t.AdjacentToNext {
			item.EndCharge = r.Travel
		}
	}

	item.Subtotal = item.StartCharge + item.FullDayCharge + item.EndCharge
	return item
}

const dateLayout = "2006-01-02"
