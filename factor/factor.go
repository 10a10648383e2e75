// Construction and accessors for Factor.
//
// New validates shape exactly once; accessors hand out copies so the
// table behind a *Factor can never be mutated from outside the package.

package factor

import (
	"fmt"
	"math"
)

// New builds a factor from a display name, an ordered scope and its rows.
//
// Validation (in order):
//  1. The scope must be non-empty (ErrEmptyScope).
//  2. Scope names must be non-empty and unique (ErrEmptyVariable,
//     ErrDuplicateVariable).
//  3. Every row must carry exactly len(scope) values (ErrArityMismatch),
//     none of them nil (ErrNilValue).
//  4. Every weight must be finite and non-negative (ErrBadWeight).
//
// The scope and rows are deep-copied; the caller keeps ownership of its
// slices. An empty row set is valid (the all-zero table); Normalize is the
// only operation that rejects it.
func New(name string, scope []string, rows []Row) (*Factor, error) {
	// 1) Scope must exist.
	if len(scope) == 0 {
		return nil, ErrEmptyScope
	}

	// 2) Scope names must be non-empty and unique.
	seen := make(map[string]struct{}, len(scope))
	var v string
	for _, v = range scope {
		if v == "" {
			return nil, ErrEmptyVariable
		}
		if _, dup := seen[v]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVariable, v)
		}
		seen[v] = struct{}{}
	}

	// 3) Copy and validate rows.
	body := make([]Row, len(rows))
	for i, r := range rows {
		if len(r.Values) != len(scope) {
			return nil, fmt.Errorf("%w: row %d has %d values, scope has %d", ErrArityMismatch, i, len(r.Values), len(scope))
		}
		if math.IsNaN(r.Weight) || math.IsInf(r.Weight, 0) || r.Weight < 0 {
			return nil, fmt.Errorf("%w: row %d weight %v", ErrBadWeight, i, r.Weight)
		}
		vals := make([]Value, len(r.Values))
		for j, val := range r.Values {
			if val == nil {
				return nil, fmt.Errorf("%w: row %d column %d", ErrNilValue, i, j)
			}
			vals[j] = val
		}
		body[i] = Row{Values: vals, Weight: r.Weight}
	}

	return &Factor{
		name:  name,
		scope: append([]string(nil), scope...),
		rows:  body,
	}, nil
}

// Name returns the factor's display name ("" for anonymous intermediates).
func (f *Factor) Name() string { return f.name }

// WithName returns a copy of the factor under a new display name.
// The table body is shared; factors are immutable, so sharing is safe.
func (f *Factor) WithName(name string) *Factor {
	return &Factor{name: name, scope: f.scope, rows: f.rows}
}

// Scope returns a copy of the ordered variable names.
func (f *Factor) Scope() []string {
	return append([]string(nil), f.scope...)
}

// Len returns the number of rows.
func (f *Factor) Len() int { return len(f.rows) }

// Rows returns a deep copy of the table body.
func (f *Factor) Rows() []Row {
	out := make([]Row, len(f.rows))
	for i, r := range f.rows {
		out[i] = Row{
			Values: append([]Value(nil), r.Values...),
			Weight: r.Weight,
		}
	}

	return out
}

// Weight returns the weight stored for the given assignment and true when
// the assignment is present. The values are matched positionally against
// the scope with Go equality.
func (f *Factor) Weight(values ...Value) (float64, bool) {
	if len(values) != len(f.scope) {
		return 0, false
	}
	want := rowKey(values)
	for _, r := range f.rows {
		if rowKey(r.Values) == want {
			return r.Weight, true
		}
	}

	return 0, false
}

// Equal reports whether a and b carry the same scope in the same order and
// the same multiset of rows, with weights compared under the absolute
// tolerance tol. Display names are ignored.
func Equal(a, b *Factor, tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.scope) != len(b.scope) || len(a.rows) != len(b.rows) {
		return false
	}
	for i := range a.scope {
		if a.scope[i] != b.scope[i] {
			return false
		}
	}

	// Align both bodies under the canonical row order, then compare
	// assignments exactly and weights within tol.
	ra := a.Sorted().rows
	rb := b.Sorted().rows
	for i := range ra {
		if rowKey(ra[i].Values) != rowKey(rb[i].Values) {
			return false
		}
		if math.Abs(ra[i].Weight-rb[i].Weight) > tol {
			return false
		}
	}

	return true
}
