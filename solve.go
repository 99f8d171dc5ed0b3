package eqint

import "sort"

// continuousSolution is the water level and local rate found for a budget;
// rate is the number of non-binding slots at x. The integer distributor
// works from the clipped allocations alone and does not use rate.
type continuousSolution struct {
	x    float64
	rate int
}

// solveX locates the budget's region in the table and computes the
// (possibly non-integer) water level. It is the only place feasibility is
// checked, so InsufficientBudgetError/ExcessBudgetError always originate
// here.
func (a *Allocator) solveX(budget int) (continuousSolution, error) {
	if a.table.empty() {
		// fully unbounded: every slot shares the budget evenly, with no
		// rate-changing breakpoints to look up.
		return continuousSolution{x: float64(budget) / float64(a.n), rate: a.n}, nil
	}

	if a.lowerBound != nil && budget < *a.lowerBound {
		return continuousSolution{}, InsufficientBudgetError{Budget: budget, LowerBound: *a.lowerBound}
	}
	if a.upperBound != nil && budget > *a.upperBound {
		return continuousSolution{}, ExcessBudgetError{Budget: budget, UpperBound: *a.upperBound}
	}

	keys := a.table.keys

	// bisect_right(keys, budget) - 1: the largest region whose key does not
	// exceed budget.
	k := sort.Search(len(keys), func(i int) bool { return keys[i] > budget }) - 1

	var x float64
	var rate int
	var anchor int

	if k < 0 {
		// budget sits left of the first breakpoint. lowerBound being absent
		// is guaranteed here (otherwise the feasibility gate above would
		// have rejected it), so the region extends leftward at the
		// lower-unbounded rate.
		x = float64(a.table.xs[0])
		rate = a.nLowerUnbounded
		anchor = keys[0]
	} else {
		// interior region, or the last region extending rightward (whose
		// rate is always nUpperUnbounded by construction of the table).
		x = float64(a.table.xs[k])
		rate = a.table.rates[k]
		anchor = keys[k]
	}

	if rate == 0 {
		// degenerate region: a single feasible budget, every slot pinned.
		return continuousSolution{x: x, rate: rate}, nil
	}

	xStar := x + float64(budget-anchor)/float64(rate)
	return continuousSolution{x: xStar, rate: rate}, nil
}
