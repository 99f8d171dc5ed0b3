package eqint

import "gonum.org/v1/gonum/stat"

// ContinuousVariance reports the variance of the continuous (unrounded)
// solution for budget about the unconstrained mean B/n. A fully unbounded
// problem has variance 0 (every slot gets exactly B/n); introducing binding
// bounds can only push this up, since bound-pinned slots are held away from
// the mean. This gives callers a cheap way to sanity-check that a solve
// behaves like the water-filling optimum (the quantity spec invariant 5
// is ultimately about) without standing up a general convex solver.
func (a *Allocator) ContinuousVariance(budget int) (float64, error) {
	allocations, err := a.SolveContinuous(budget)
	if err != nil {
		return 0, err
	}
	mean := float64(budget) / float64(a.n)
	return stat.MomentAbout(2, allocations, nil, mean), nil
}
