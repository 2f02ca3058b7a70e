package reimburse

import "errors"

// ErrInvalidRates is returned when a custom rate table is incomplete or
// contains negative amounts.
var ErrInvalidRates = errors.New("invalid rate table")
