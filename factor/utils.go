// Internal helpers: deterministic value encoding, the canonical value
// order, display formatting and ordered-scope set operations.

package factor

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// keySep terminates each encoded value so adjacent encodings never blur
// into one another inside a composite key.
const keySep = 0x1f

// valueKey appends a type-tagged encoding of v to b. Distinct Go values
// always encode distinctly for the supported domain types, so composite
// keys built from it behave exactly like Go equality on the value tuples.
func valueKey(b *strings.Builder, v Value) {
	switch x := v.(type) {
	case bool:
		b.WriteString("b:")
		b.WriteString(strconv.FormatBool(x))
	case int:
		b.WriteString("i:")
		b.WriteString(strconv.Itoa(x))
	case int64:
		b.WriteString("i64:")
		b.WriteString(strconv.FormatInt(x, 10))
	case float64:
		b.WriteString("f:")
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	case string:
		b.WriteString("s:")
		b.WriteString(x)
	default:
		// Rare types carry their type name, so cross-type collisions
		// remain impossible.
		fmt.Fprintf(b, "x:%T=%v", x, x)
	}
	b.WriteByte(keySep)
}

// rowKey encodes a full assignment as one composite key.
func rowKey(values []Value) string {
	var b strings.Builder
	for _, v := range values {
		valueKey(&b, v)
	}

	return b.String()
}

// subKey encodes the assignment restricted to the given positions.
func subKey(values []Value, positions []int) string {
	var b strings.Builder
	for _, p := range positions {
		valueKey(&b, values[p])
	}

	return b.String()
}

// typeRank buckets values for the canonical order: bools sort before
// numbers, numbers before strings, strings before everything else.
func typeRank(v Value) int {
	switch v.(type) {
	case bool:
		return 0
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return 1
	case string:
		return 2
	default:
		return 3
	}
}

// asFloat widens any numeric value to float64 for ordering purposes.
func asFloat(v Value) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}

// compareValues orders two values under the canonical order:
// false < true < numbers ascending < strings lexical < other by rendered
// text. Numbers of different Go types compare numerically; exact numeric
// ties fall back to the type name so the order stays total.
func compareValues(a, b Value) int {
	ra, rb := typeRank(a), typeRank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}

		return 1
	}

	switch ra {
	case 0:
		ab, bb := a.(bool), b.(bool)
		switch {
		case ab == bb:
			return 0
		case !ab:
			return -1
		default:
			return 1
		}
	case 1:
		af, _ := asFloat(a)
		bf, _ := asFloat(b)
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return strings.Compare(fmt.Sprintf("%T", a), fmt.Sprintf("%T", b))
		}
	case 2:
		return strings.Compare(a.(string), b.(string))
	default:
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

// compareRows orders rows by their assignments under compareValues, with
// the weight as a final tie-break so the order is total on sane tables.
func compareRows(a, b Row) int {
	n := len(a.Values)
	if len(b.Values) < n {
		n = len(b.Values)
	}
	for k := 0; k < n; k++ {
		if c := compareValues(a.Values[k], b.Values[k]); c != 0 {
			return c
		}
	}
	switch {
	case len(a.Values) != len(b.Values):
		return len(a.Values) - len(b.Values)
	case a.Weight < b.Weight:
		return -1
	case a.Weight > b.Weight:
		return 1
	default:
		return 0
	}
}

// sortRows orders a row slice in place under compareRows.
func sortRows(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		return compareRows(rows[i], rows[j]) < 0
	})
}

// formatWeight renders a weight with up to six significant digits.
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', 6, 64)
}

// formatValue renders one value for table output.
func formatValue(v Value) string {
	switch x := v.(type) {
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

// indexOf returns the position of v in scope, or -1.
func indexOf(scope []string, v string) int {
	for i, s := range scope {
		if s == v {
			return i
		}
	}

	return -1
}

// containsVar reports whether scope names v.
func containsVar(scope []string, v string) bool {
	return indexOf(scope, v) >= 0
}

// intersectScopes returns the variables present in both scopes, in the
// order of the first.
func intersectScopes(a, b []string) []string {
	out := make([]string, 0, len(a))
	var v string
	for _, v = range a {
		if containsVar(b, v) {
			out = append(out, v)
		}
	}

	return out
}

// unionScopes returns the order-preserving union: all of a, then the
// variables of b not already present.
func unionScopes(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	var v string
	for _, v = range b {
		if !containsVar(a, v) {
			out = append(out, v)
		}
	}

	return out
}

// positionsOf maps each variable in vars to its position in scope.
// Callers guarantee membership.
func positionsOf(scope, vars []string) []int {
	out := make([]int, len(vars))
	for i, v := range vars {
		out[i] = indexOf(scope, v)
	}

	return out
}
