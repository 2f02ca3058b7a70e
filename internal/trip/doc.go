// Package trip defines the Trip record and the Trip Builder, which turns an
// ordered batch of validated raw tuples into Trips annotated with their
// adjacency to the neighbouring trips in the batch.
//
// All day arithmetic goes through DayDifference so that adjacency detection
// and span lengths agree on what a "day" is.
package trip
