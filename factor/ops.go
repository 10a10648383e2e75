// Pure table transforms: Restrict, SumOut, Normalize, Reorder, Sorted.
//
// Every method returns a fresh *Factor and leaves the receiver untouched.
// Row slices of unchanged columns are shared between input and output;
// sharing is safe because factors are never mutated after construction.

package factor

import "fmt"

// Restrict drops every row incompatible with the evidence and returns the
// remaining table. Restricted variables stay in the scope (their column
// then holds a single value), so later joins still align on them.
//
// Evidence for variables outside the scope is ignored. Values are matched
// with Go equality, so the dynamic type matters: evidence int(1) never
// matches a stored float64(1). The result may be empty; restricting with
// no applicable evidence returns the receiver itself.
func (f *Factor) Restrict(ev Evidence) *Factor {
	// 1) Pin the evidence variables that actually occur in the scope,
	//    walking the scope (not the map) for deterministic order.
	type pin struct {
		pos int
		val Value
	}
	pins := make([]pin, 0, len(ev))
	for i, v := range f.scope {
		if val, ok := ev[v]; ok {
			pins = append(pins, pin{pos: i, val: val})
		}
	}
	if len(pins) == 0 {
		return f
	}

	// 2) Keep the rows matching every pinned value.
	kept := make([]Row, 0, len(f.rows))
	var match bool
	for _, r := range f.rows {
		match = true
		for _, p := range pins {
			if r.Values[p.pos] != p.val {
				match = false
				break
			}
		}
		if match {
			kept = append(kept, r)
		}
	}

	return &Factor{name: f.name, scope: f.scope, rows: kept}
}

// SumOut marginalizes one variable away: rows are grouped by the remaining
// assignment and their weights summed. Group order follows the first
// occurrence of each remaining assignment, so the result is deterministic.
//
// Returns ErrVariableNotInScope when the factor does not carry variable,
// and ErrEmptyScope when variable is the only one left (a factor's scope
// is never empty).
func (f *Factor) SumOut(variable string) (*Factor, error) {
	if f == nil {
		return nil, ErrNilFactor
	}
	pos := indexOf(f.scope, variable)
	if pos < 0 {
		return nil, fmt.Errorf("sum out %q: %w", variable, ErrVariableNotInScope)
	}
	if len(f.scope) == 1 {
		return nil, fmt.Errorf("sum out %q would empty the scope: %w", variable, ErrEmptyScope)
	}

	// 1) The remaining scope drops exactly the summed variable.
	rest := make([]string, 0, len(f.scope)-1)
	restPos := make([]int, 0, len(f.scope)-1)
	for i, v := range f.scope {
		if i != pos {
			rest = append(rest, v)
			restPos = append(restPos, i)
		}
	}

	// 2) Group rows by the remaining assignment and accumulate weights.
	index := make(map[string]int, len(f.rows))
	out := make([]Row, 0, len(f.rows))
	var key string
	for _, r := range f.rows {
		key = subKey(r.Values, restPos)
		if at, ok := index[key]; ok {
			out[at].Weight += r.Weight
			continue
		}
		vals := make([]Value, len(restPos))
		for j, p := range restPos {
			vals[j] = r.Values[p]
		}
		index[key] = len(out)
		out = append(out, Row{Values: vals, Weight: r.Weight})
	}

	return &Factor{name: f.name, scope: rest, rows: out}, nil
}

// Normalize scales all weights so they sum to one.
//
// A table whose weights sum to zero, the empty table included, cannot be
// normalized and yields ErrZeroTotal. After an evidence restriction that
// means the evidence was impossible under the model.
func (f *Factor) Normalize() (*Factor, error) {
	if f == nil {
		return nil, ErrNilFactor
	}

	// 1) Total mass.
	var total float64
	for _, r := range f.rows {
		total += r.Weight
	}
	if total == 0 {
		return nil, fmt.Errorf("normalize %q: %w", f.name, ErrZeroTotal)
	}

	// 2) Scale every row.
	out := make([]Row, len(f.rows))
	for i, r := range f.rows {
		out[i] = Row{Values: r.Values, Weight: r.Weight / total}
	}

	return &Factor{name: f.name, scope: f.scope, rows: out}, nil
}

// Reorder returns the factor with its scope permuted into the given order.
// The target must name exactly the factor's variables, each once;
// otherwise ErrScopePermutation. Row values are permuted to match.
func (f *Factor) Reorder(scope []string) (*Factor, error) {
	if f == nil {
		return nil, ErrNilFactor
	}
	if len(scope) != len(f.scope) {
		return nil, fmt.Errorf("%d variables, factor has %d: %w", len(scope), len(f.scope), ErrScopePermutation)
	}

	// 1) Resolve the permutation: perm[j] = current position of scope[j].
	perm := make([]int, len(scope))
	used := make([]bool, len(f.scope))
	identity := true
	var p int
	for j, v := range scope {
		p = indexOf(f.scope, v)
		if p < 0 || used[p] {
			return nil, fmt.Errorf("variable %q: %w", v, ErrScopePermutation)
		}
		used[p] = true
		perm[j] = p
		if p != j {
			identity = false
		}
	}
	if identity {
		return f, nil
	}

	// 2) Permute every row into the new column order.
	rows := make([]Row, len(f.rows))
	for i, r := range f.rows {
		vals := make([]Value, len(perm))
		for j, p := range perm {
			vals[j] = r.Values[p]
		}
		rows[i] = Row{Values: vals, Weight: r.Weight}
	}

	return &Factor{
		name:  f.name,
		scope: append([]string(nil), scope...),
		rows:  rows,
	}, nil
}

// Sorted returns the factor with rows in the canonical order: assignments
// compared column by column under the canonical value order (bools before
// numbers before strings, each ascending). Scope order is unchanged;
// combine with Reorder for a fully canonical table.
func (f *Factor) Sorted() *Factor {
	rows := append([]Row(nil), f.rows...)
	sortRows(rows)

	return &Factor{name: f.name, scope: f.scope, rows: rows}
}
