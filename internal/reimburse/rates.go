package reimburse

import (
	"fmt"

	"github.com/vk/perdiem/internal/trip"
)

// Default per-diem amounts.
const (
	LowCostTravelDay  = 45
	LowCostFullDay    = 75
	HighCostTravelDay = 55
	HighCostFullDay   = 85
)

// Rates is the pair of per-diem amounts for one cost tier.
type Rates struct {
	Travel int
	Full   int
}

// RateTable maps each cost tier to its rates.
type RateTable map[trip.Tier]Rates

// DefaultRates returns a fresh copy of the standard rate table.
func DefaultRates() RateTable {
	return RateTable{
		trip.LowCost:  {Travel: LowCostTravelDay, Full: LowCostFullDay},
		trip.HighCost: {Travel: HighCostTravelDay, Full: HighCostFullDay},
	}
}

// Validate checks that the table covers every tier with non-negative amounts.
func (rt RateTable) Validate() error {
	for _, tier := range []trip.Tier{trip.LowCost, trip.HighCost} {
		r, ok := rt[tier]
		if !ok {
			return fmt.Errorf("%w: no rates for %s-cost tier", ErrInvalidRates, tier)
		}
		if r.Travel < 0 || r.Full < 0 {
			return fmt.Errorf("%w: %s-cost rates must not be negative (travel=%d, full=%d)", ErrInvalidRates, tier, r.Travel, r.Full)
		}
	}
	return nil
}

// Merge returns a copy of rt with the entries of overrides applied on top.
func (rt RateTable) Merge(overrides RateTable) RateTable {
	out := make(RateTable, len(rt)+len(overrides))
	for k, v := range rt {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}
