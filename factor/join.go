// Pointwise product of factors.
//
// Disjoint scopes multiply out as a Cartesian product. Overlapping scopes
// are matched with a hash equi-join: the right operand is indexed once by
// its shared-variable assignments, then the left rows stream through the
// index. Row order is left-major either way, so joins are deterministic.

package factor

import "strings"

// Join returns the pointwise product of f and other.
//
// The result scope is the order-preserving union: f's variables first,
// then other's unseen ones. Rows agreeing on every shared variable merge
// into one row whose weight is the product of the operand weights; rows
// with no partner on the other side disappear. With no shared variables
// every pair of rows merges.
//
// Join is commutative and associative in content; only scope order and row
// order depend on operand order. Use Reorder and Sorted to compare results
// across different bracketings.
//
// Complexity: O(|f|·|other|) for disjoint scopes, O(|f|+|other|+matches)
// otherwise.
func (f *Factor) Join(other *Factor) (*Factor, error) {
	if f == nil || other == nil {
		return nil, ErrNilFactor
	}

	// 1) Split other's scope into shared and carried variables.
	shared := intersectScopes(f.scope, other.scope)
	scope := unionScopes(f.scope, other.scope)

	// 2) Disjoint scopes: plain Cartesian product.
	if len(shared) == 0 {
		return f.cross(other, scope), nil
	}

	// 3) Overlapping scopes: hash equi-join on the shared assignment.
	return f.equiJoin(other, shared, scope), nil
}

// JoinAll folds Join over the factors left to right.
// Returns ErrNoFactors for an empty argument list; a single factor is
// returned as is.
func JoinAll(factors ...*Factor) (*Factor, error) {
	if len(factors) == 0 {
		return nil, ErrNoFactors
	}
	out := factors[0]
	if out == nil {
		return nil, ErrNilFactor
	}
	var err error
	for _, f := range factors[1:] {
		if out, err = out.Join(f); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// cross multiplies two factors with disjoint scopes, left-major.
func (f *Factor) cross(other *Factor, scope []string) *Factor {
	rows := make([]Row, 0, len(f.rows)*len(other.rows))
	var vals []Value
	for _, lr := range f.rows {
		for _, rr := range other.rows {
			vals = make([]Value, 0, len(scope))
			vals = append(vals, lr.Values...)
			vals = append(vals, rr.Values...)
			rows = append(rows, Row{Values: vals, Weight: lr.Weight * rr.Weight})
		}
	}

	return &Factor{name: joinName(f.name, other.name), scope: scope, rows: rows}
}

// equiJoin matches rows that agree on the shared variables.
//
// The index is built over the right operand, keyed by the deterministic
// encoding of its shared-variable sub-tuple; left rows then probe it in
// their own order, which keeps the output order independent of map
// iteration.
func (f *Factor) equiJoin(other *Factor, shared, scope []string) *Factor {
	lpos := positionsOf(f.scope, shared)
	rpos := positionsOf(other.scope, shared)

	// Right columns that are not shared travel into the result.
	carry := make([]int, 0, len(other.scope)-len(shared))
	for i, v := range other.scope {
		if !containsVar(shared, v) {
			carry = append(carry, i)
		}
	}

	// 1) Index the right rows by their shared assignment.
	index := make(map[string][]int, len(other.rows))
	var b strings.Builder
	var key string
	for i, rr := range other.rows {
		b.Reset()
		for _, p := range rpos {
			valueKey(&b, rr.Values[p])
		}
		key = b.String()
		index[key] = append(index[key], i)
	}

	// 2) Probe with the left rows, left-major output order.
	rows := make([]Row, 0, len(f.rows))
	var vals []Value
	for _, lr := range f.rows {
		b.Reset()
		for _, p := range lpos {
			valueKey(&b, lr.Values[p])
		}
		for _, ri := range index[b.String()] {
			rr := other.rows[ri]
			vals = make([]Value, 0, len(scope))
			vals = append(vals, lr.Values...)
			for _, p := range carry {
				vals = append(vals, rr.Values[p])
			}
			rows = append(rows, Row{Values: vals, Weight: lr.Weight * rr.Weight})
		}
	}

	return &Factor{name: joinName(f.name, other.name), scope: scope, rows: rows}
}

// joinName keeps a display name only when both operands agree on it;
// intermediates otherwise stay anonymous until the caller renames them.
func joinName(a, b string) string {
	if a == b {
		return a
	}

	return ""
}
