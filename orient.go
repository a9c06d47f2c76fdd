package parallel

import "slices"

// followsReference reports whether order already runs in the direction of
// ref, the node list of the reference way.
//
// On a closed path the start node appears at both ends of order, so when
// the reference way touches the start its direction is read from its
// second (or second to last) node instead of from the repeated endpoint.
func followsReference(order, ref []int, closed bool) bool {
	first, last := ref[0], ref[len(ref)-1]
	if !closed {
		return slices.Index(order, first) < slices.Index(order, last)
	}

	start, n := order[0], len(order)
	switch {
	case first == start && last == start:
		// The reference way is the whole loop.
		return order[1] == ref[1]
	case last == start:
		return order[n-2] == ref[len(ref)-2]
	case first == start:
		return order[1] == ref[1]
	default:
		return slices.Index(order, first) < slices.Index(order, last)
	}
}
