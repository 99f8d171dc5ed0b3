package eqint

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// driftTolerance bounds the floating-point slop the integer distributor
// will absorb when classifying a continuous allocation as "exactly on an
// integer" before flooring it.
const driftTolerance = 1e-9

// evaluateContinuous clips the water level x to each slot's bounds,
// producing the (possibly non-integer) bounded allocation vector.
func (a *Allocator) evaluateContinuous(x float64) []float64 {
	allocations := make([]float64, a.n)
	for i, b := range a.bounds {
		switch {
		case b.Lower != nil && x < float64(*b.Lower):
			allocations[i] = float64(*b.Lower)
		case b.Upper != nil && x > float64(*b.Upper):
			allocations[i] = float64(*b.Upper)
		default:
			allocations[i] = x
		}
	}
	return allocations
}

// snapToInteger rounds v to the nearest integer when it is within
// driftTolerance of one, absorbing the floating-point drift that x* can
// accumulate from the division in solveX. Values genuinely away from an
// integer (the common case when rate > 1) pass through unchanged.
func snapToInteger(v float64) float64 {
	r := math.Round(v)
	if floats.EqualWithinAbsOrRel(v, r, driftTolerance, driftTolerance) {
		return r
	}
	return v
}

// distributeIntegers floors every continuous allocation and hands the
// remaining (budget - sum-of-floors) units to the slots with the largest
// fractional part, largest first. Slots already pinned at an integer bound
// have a zero fractional part, so they are never touched until every
// non-binding slot has been considered - this is what keeps the rounding
// equitable.
func distributeIntegers(allocations []float64, budget int) []int {
	n := len(allocations)
	floored := make([]int, n)
	fracs := make([]float64, n)

	sum := 0
	for i, v := range allocations {
		v = snapToInteger(v)
		f := math.Floor(v)
		floored[i] = int(f)
		fracs[i] = v - f
		sum += floored[i]
	}

	deficit := budget - sum

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return fracs[order[i]] > fracs[order[j]]
	})

	for k := 0; k < deficit; k++ {
		floored[order[k]]++
	}

	return floored
}
