package tripinput

import "fmt"

// TupleSize is the number of tokens describing one trip: cost flag, start
// date and end date.
const TupleSize = 3

// Tuple positions.
const (
	costIndex = iota
	startIndex
	endIndex
)

// Group splits tokens into consecutive groups of size elements. It rejects
// an empty list and a list whose length is not a multiple of size. The
// returned groups share no memory with tokens.
func Group(tokens []string, size int) ([][]string, error) {
	if size <= 0 {
		panic("tripinput: group size must be positive")
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: no arguments given", ErrUngroupable)
	}
	if len(tokens)%size != 0 {
		return nil, fmt.Errorf("%w: got %d argument(s), expected a multiple of %d", ErrUngroupable, len(tokens), size)
	}

	groups := make([][]string, 0, len(tokens)/size)
	for i := 0; i < len(tokens); i += size {
		group := make([]string, size)
		copy(group, tokens[i:i+size])
		groups = append(groups, group)
	}
	return groups, nil
}
