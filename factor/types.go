// Package factor defines the probability-table types shared by every
// inference package: Value, Row, Evidence and the immutable Factor.
//
// A Factor is a dense table: an ordered scope of variable names plus one
// Row per assignment. Construction validates shape once (New); every
// operation afterwards returns a fresh Factor and never mutates its
// operands, so factors can be shared freely across goroutines.
package factor

import "errors"

// Sentinel errors returned by factor constructors and operations.
var (
	// ErrNilFactor indicates that a nil *Factor was passed as an operand.
	ErrNilFactor = errors.New("factor: factor is nil")

	// ErrEmptyScope indicates an empty scope, either at construction or
	// because summing out the last variable would leave one.
	ErrEmptyScope = errors.New("factor: scope must not be empty")

	// ErrEmptyVariable indicates an empty variable name inside a scope.
	ErrEmptyVariable = errors.New("factor: variable name must not be empty")

	// ErrDuplicateVariable indicates that a scope names a variable twice.
	ErrDuplicateVariable = errors.New("factor: duplicate variable in scope")

	// ErrArityMismatch indicates that a row's value count differs from the
	// scope length.
	ErrArityMismatch = errors.New("factor: row arity does not match scope")

	// ErrNilValue indicates a nil value inside a row.
	ErrNilValue = errors.New("factor: nil value in row")

	// ErrBadWeight indicates a negative, NaN or infinite row weight.
	ErrBadWeight = errors.New("factor: row weight must be finite and non-negative")

	// ErrVariableNotInScope indicates an operation on a variable the factor
	// does not carry.
	ErrVariableNotInScope = errors.New("factor: variable not in scope")

	// ErrScopePermutation indicates a Reorder target that is not a
	// permutation of the factor's scope.
	ErrScopePermutation = errors.New("factor: target scope is not a permutation of the factor scope")

	// ErrZeroTotal indicates normalization of a table whose weights sum to
	// zero (including the empty table). Callers that restricted by evidence
	// first should treat this as impossible evidence.
	ErrZeroTotal = errors.New("factor: weights sum to zero")

	// ErrNoFactors indicates that JoinAll was called with no operands.
	ErrNoFactors = errors.New("factor: no factors to join")
)

// Value is one discrete domain value.
//
// Values are compared with Go equality, so the dynamic type matters:
// int(3), float64(3) and "3" are three distinct values. The YAML codec and
// the CLI only ever produce bool, int, float64 and string; any comparable
// type works through the Go API. Nil values are rejected at construction.
type Value = any

// Row is one table entry: an assignment of Values, positionally aligned
// with the owning factor's scope, and its non-negative weight.
type Row struct {
	Values []Value // one value per scope variable, same order as the scope
	Weight float64 // finite, ≥ 0; probabilities and unnormalized masses alike
}

// Evidence maps variable names to their observed values.
type Evidence map[string]Value

// Factor is an immutable labeled probability table.
//
// The scope is an ordered list of unique variable names; rows hold one
// weight per assignment. Factors are constructed with New and never
// mutated afterwards: every operation (Restrict, Join, SumOut, Normalize,
// Reorder, Sorted, WithName) returns a new Factor.
type Factor struct {
	name  string   // display name, e.g. "P(Alarm | Burglary, Earthquake)"
	scope []string // ordered unique variable names
	rows  []Row    // dense table body
}
