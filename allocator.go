package eqint

// Allocator solves the most-equitable allocation of a budget of integers
// under per-slot bounds. It is built once from a bound sequence and is
// immutable afterwards: the solution table is computed during New and
// never mutated, so Solve/SolveContinuous are pure functions of
// (allocator, budget) and safe to call concurrently from any number of
// goroutines sharing one Allocator.
type Allocator struct {
	bounds Bounds
	n      int

	nLowerUnbounded int
	nUpperUnbounded int

	lowerBound *int
	upperBound *int

	table solutionTable
}

// New validates bounds and precomputes the allocator's solution table. It
// returns a ConstraintError if any bound has both sides present with
// lower > upper, or if bounds is empty.
func New(bounds Bounds) (*Allocator, error) {
	if err := validate(bounds); err != nil {
		return nil, err
	}

	owned := make(Bounds, len(bounds))
	copy(owned, bounds)

	nLowerUnbounded := countUnbounded(owned, lowerSide)
	nUpperUnbounded := countUnbounded(owned, upperSide)

	var lowerBound, upperBound *int
	if nLowerUnbounded == 0 {
		sum := 0
		for _, b := range owned {
			sum += *b.Lower
		}
		lowerBound = &sum
	}
	if nUpperUnbounded == 0 {
		sum := 0
		for _, b := range owned {
			sum += *b.Upper
		}
		upperBound = &sum
	}

	return &Allocator{
		bounds:          owned,
		n:               len(owned),
		nLowerUnbounded: nLowerUnbounded,
		nUpperUnbounded: nUpperUnbounded,
		lowerBound:      lowerBound,
		upperBound:      upperBound,
		table:           buildTable(owned),
	}, nil
}

// Len returns the number of allocation slots.
func (a *Allocator) Len() int {
	return a.n
}

// LowerBound returns the sum of all lower bounds, or nil if any slot has no
// lower bound.
func (a *Allocator) LowerBound() *int {
	return copyIntPtr(a.lowerBound)
}

// UpperBound returns the sum of all upper bounds, or nil if any slot has no
// upper bound.
func (a *Allocator) UpperBound() *int {
	return copyIntPtr(a.upperBound)
}

// IsFullyUnbounded reports whether every slot has neither a lower nor an
// upper bound.
func (a *Allocator) IsFullyUnbounded() bool {
	return a.table.empty()
}

// Equal reports whether two allocators were built from elementwise-equal
// bound sequences. The comparison is on the original bounds, not on the
// derived solution table.
func (a *Allocator) Equal(other *Allocator) bool {
	if other == nil {
		return false
	}
	return a.bounds.Equal(other.bounds)
}

// Solve returns the most-equitable integer allocation of budget across the
// allocator's slots, in input order. It returns InsufficientBudgetError or
// ExcessBudgetError if budget falls outside the feasible range.
func (a *Allocator) Solve(budget int) ([]int, error) {
	res, err := a.solveX(budget)
	if err != nil {
		return nil, err
	}
	allocations := a.evaluateContinuous(res.x)
	return distributeIntegers(allocations, budget), nil
}

// SolveContinuous returns the raw water-filling solution without integer
// rounding: the continuous optimum that minimizes the sum of squared
// deviations from the mean, subject to the bounds.
func (a *Allocator) SolveContinuous(budget int) ([]float64, error) {
	res, err := a.solveX(budget)
	if err != nil {
		return nil, err
	}
	return a.evaluateContinuous(res.x), nil
}

func copyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
