package eqint

import "sort"

// boundSide marks which side of a Bound an event comes from. Lower-side
// events are ordered before upper-side events when their values tie, so
// that the rate rises before it falls at a shared breakpoint.
type boundSide int

const (
	lowerSide boundSide = iota
	upperSide
)

// event is one present side of one bound, ready for sweeping.
type event struct {
	value int
	side  boundSide
}

// solutionTable is the piecewise-linear inverse of h(x) = sum(clip(x, l_i, u_i)),
// stored as parallel arrays keyed by budget breakpoint. keys is
// non-decreasing: it is strictly increasing except where a region of rate 0
// lies between two breakpoints, which gives equal keys (lookup takes the
// last of them). xs[k]/rates[k] give the water level and local rate for the
// half-open region [keys[k], keys[k+1]).
type solutionTable struct {
	keys  []int
	xs    []int
	rates []int
}

// flattenEvents collects one event per present bound side and sorts them
// ascending by value, breaking ties with lower-side events first.
func flattenEvents(bounds Bounds) []event {
	events := make([]event, 0, 2*len(bounds))
	for _, b := range bounds {
		if b.Lower != nil {
			events = append(events, event{value: *b.Lower, side: lowerSide})
		}
		if b.Upper != nil {
			events = append(events, event{value: *b.Upper, side: upperSide})
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].value != events[j].value {
			return events[i].value < events[j].value
		}
		return events[i].side == lowerSide && events[j].side == upperSide
	})
	return events
}

// buildTable sweeps the flattened events once to get the rate at every
// distinct breakpoint, then maps each breakpoint to the budget at which its
// region begins.
func buildTable(bounds Bounds) solutionTable {
	events := flattenEvents(bounds)
	if len(events) == 0 {
		return solutionTable{}
	}

	nLowerUnbounded := countUnbounded(bounds, lowerSide)

	// sweep: rate starts at the number of slots already active at x = -inf
	// (those with no lower bound), and budgetLowerSum accumulates the sum
	// of lower bounds crossed so far.
	rate := nLowerUnbounded
	budgetLowerSum := 0

	type breakpoint struct {
		x    int
		rate int
	}
	var sweep []breakpoint
	indexOf := make(map[int]int, len(events))

	for _, e := range events {
		switch e.side {
		case lowerSide:
			rate++
			budgetLowerSum += e.value
		case upperSide:
			rate--
		}

		if i, seen := indexOf[e.value]; seen {
			// same value appeared in more than one event: keep only the
			// final rate, which coalesces naturally since lowers were
			// processed before uppers at a shared breakpoint.
			sweep[i].rate = rate
		} else {
			indexOf[e.value] = len(sweep)
			sweep = append(sweep, breakpoint{x: e.value, rate: rate})
		}
	}

	keys := make([]int, len(sweep))
	xs := make([]int, len(sweep))
	rates := make([]int, len(sweep))

	prevX, prevRate, budget := 0, nLowerUnbounded, budgetLowerSum
	for i, bp := range sweep {
		budget += (bp.x - prevX) * prevRate
		keys[i] = budget
		xs[i] = bp.x
		rates[i] = bp.rate
		prevX, prevRate = bp.x, bp.rate
	}

	return solutionTable{keys: keys, xs: xs, rates: rates}
}

func countUnbounded(bounds Bounds, side boundSide) int {
	n := 0
	for _, b := range bounds {
		switch side {
		case lowerSide:
			if b.Lower == nil {
				n++
			}
		case upperSide:
			if b.Upper == nil {
				n++
			}
		}
	}
	return n
}

func (t solutionTable) empty() bool {
	return len(t.keys) == 0
}
