package trip

// Build converts an ordered batch of raw tuples into Trips, annotating each
// with whether it directly continues the previous trip or is directly
// continued by the next one. The input slice is not modified and the
// output preserves its order.
func Build(raws []Raw) []Trip {
	trips := make([]Trip, len(raws))
	last := len(raws) - 1

	for i, r := range raws {
		trips[i] = Trip{
			Start:              r.Start,
			End:                r.End,
			Tier:               r.Tier,
			Source:             r.Source,
			AdjacentToPrevious: i > 0 && adjacent(raws[i-1].End, r.Start),
			AdjacentToNext:     i < last && adjacent(r.End, raws[i+1].Start),
		}
	}

	return trips
}
