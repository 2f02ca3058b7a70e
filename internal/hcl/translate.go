package hcl

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/perdiem/internal/reimburse"
	"github.com/vk/perdiem/internal/trip"
	"github.com/vk/perdiem/internal/tripinput"
)

// costWords maps the file-only spellings of a cost tier to their
// command-line flag.
var costWords = map[string]string{
	"low":  "--low",
	"high": "--high",
}

// translateTrip converts a trip block into an unvalidated tuple.
func translateTrip(file string, b *TripBlock) tripinput.Tuple {
	cost := b.Cost
	if flag, ok := costWords[strings.ToLower(strings.TrimSpace(cost))]; ok {
		cost = flag
	}
	return tripinput.Tuple{
		Cost:   cost,
		Start:  b.Start,
		End:    b.End,
		Source: fmt.Sprintf("%s:trip %q", filepath.Base(file), b.Name),
	}
}

// translateRates converts a rates block into a tier and its amounts.
func translateRates(ctx context.Context, b *RatesBlock) (trip.Tier, reimburse.Rates, error) {
	var tier trip.Tier
	switch strings.ToLower(b.Tier) {
	case "low":
		tier = trip.LowCost
	case "high":
		tier = trip.HighCost
	default:
		return 0, reimburse.Rates{}, fmt.Errorf("unknown rates tier %q: must be \"low\" or \"high\"", b.Tier)
	}

	travel, err := decodeAmount(ctx, b.Travel, "travel")
	if err != nil {
		return 0, reimburse.Rates{}, fmt.Errorf("in rates %q: %w", b.Tier, err)
	}
	full, err := decodeAmount(ctx, b.Full, "full")
	if err != nil {
		return 0, reimburse.Rates{}, fmt.Errorf("in rates %q: %w", b.Tier, err)
	}
	return tier, reimburse.Rates{Travel: travel, Full: full}, nil
}
