package trip

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// DayDifference returns the number of whole days from a to b, rounded to
// the nearest integer. Rounding absorbs the 23 and 25 hour days produced by
// daylight-saving transitions. The result is negative when b is before a.
func DayDifference(a, b time.Time) int {
	return int(math.Round(float64(b.Sub(a)) / float64(day)))
}

// adjacent reports whether a trip starting on start continues a trip
// ending on end, i.e. the two share their boundary day.
func adjacent(end, start time.Time) bool {
	return DayDifference(end, start) == 0
}
