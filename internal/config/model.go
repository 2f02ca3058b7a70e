package config

import (
	"github.com/vk/perdiem/internal/reimburse"
	"github.com/vk/perdiem/internal/tripinput"
)

// Batch is everything a trips file contributes to a run.
type Batch struct {
	// Tuples are the trips in declaration order, not yet validated.
	Tuples []tripinput.Tuple
	// Rates holds the tiers overridden by the file. Tiers it does not
	// mention keep their default rates.
	Rates reimburse.RateTable
}

// NewBatch returns an empty batch with an initialized rate table.
func NewBatch() *Batch {
	return &Batch{Rates: reimburse.RateTable{}}
}
