package tripinput

import (
	"fmt"
	"strings"

	"github.com/vk/perdiem/internal/trip"
)

// costFlags lists every recognized cost flag token.
var costFlags = map[string]trip.Tier{
	"-l":     trip.LowCost,
	"-lc":    trip.LowCost,
	"--low":  trip.LowCost,
	"-h":     trip.HighCost,
	"-hc":    trip.HighCost,
	"--high": trip.HighCost,
}

// CostFlags returns the recognized cost flag tokens in display order.
func CostFlags() []string {
	return []string{"-l", "-lc", "--low", "-h", "-hc", "--high"}
}

// IsCostFlag reports whether tok is a recognized cost flag.
func IsCostFlag(tok string) bool {
	_, ok := costFlags[tok]
	return ok
}

// ParseCostFlag maps a cost flag token to its tier.
func ParseCostFlag(tok string) (trip.Tier, error) {
	tier, ok := costFlags[tok]
	if !ok {
		return trip.HighCost, fmt.Errorf("%w: must be one of %s", ErrInvalidCostFlag, strings.Join(CostFlags(), ", "))
	}
	return tier, nil
}
