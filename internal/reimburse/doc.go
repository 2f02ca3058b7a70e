// Package reimburse implements the per-diem cost calculation over an
// ordered batch of trips. It classifies every day of every trip as a
// travel day or a full day and sums the matching rates.
//
// The calculation has no error conditions: callers are expected to hand it
// trips produced by trip.Build from validated input.
package reimburse
