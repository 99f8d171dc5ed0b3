package eqint

import "fmt"

// solverError is an unexported marker shared by every error this package
// returns. Being unexported, it lets code inside this package group on "any
// eqint error" with errors.As(err, &someSolverError), without encoding an
// actual inheritance relationship between the three kinds; callers outside
// the package discriminate on the three concrete types.
type solverError interface {
	error
	solverError()
}

// ConstraintError is returned by New when the bound sequence itself is
// ill-formed: some bound has both sides present with lower > upper, or the
// sequence is empty.
type ConstraintError struct {
	// Index of the offending bound, or -1 when the error is not
	// attributable to a single bound (e.g. an empty bound sequence).
	Index  int
	Reason string
}

func (e ConstraintError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("eqint: invalid bounds: %s", e.Reason)
	}
	return fmt.Sprintf("eqint: bound %d is invalid: %s", e.Index, e.Reason)
}

func (ConstraintError) solverError() {}

// InsufficientBudgetError is returned by Solve/SolveContinuous when the
// requested budget is smaller than the sum of all lower bounds.
type InsufficientBudgetError struct {
	Budget     int
	LowerBound int
}

func (e InsufficientBudgetError) Error() string {
	return fmt.Sprintf("eqint: budget %d is below the feasible lower bound %d", e.Budget, e.LowerBound)
}

func (InsufficientBudgetError) solverError() {}

// ExcessBudgetError is returned by Solve/SolveContinuous when the requested
// budget exceeds the sum of all upper bounds.
type ExcessBudgetError struct {
	Budget     int
	UpperBound int
}

func (e ExcessBudgetError) Error() string {
	return fmt.Sprintf("eqint: budget %d exceeds the feasible upper bound %d", e.Budget, e.UpperBound)
}

func (ExcessBudgetError) solverError() {}
