package factor_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bayes/factor"
)

// mustNew wraps factor.New for terse table literals.
func mustNew(t *testing.T, name string, scope []string, rows []factor.Row) *factor.Factor {
	t.Helper()
	f, err := factor.New(name, scope, rows)
	require.NoError(t, err)

	return f
}

// canonical reorders the scope lexically and sorts the rows, so joins
// computed in different operand orders become directly comparable.
func canonical(t *testing.T, f *factor.Factor) *factor.Factor {
	t.Helper()
	scope := f.Scope()
	sort.Strings(scope)
	out, err := f.Reorder(scope)
	require.NoError(t, err)

	return out.Sorted()
}

// priorA is P(A) and condBA is P(B | A); together they make a tiny chain.
func priorA(t *testing.T) *factor.Factor {
	return mustNew(t, "P(A)", []string{"A"}, []factor.Row{
		{Values: []factor.Value{true}, Weight: 0.3},
		{Values: []factor.Value{false}, Weight: 0.7},
	})
}

func condBA(t *testing.T) *factor.Factor {
	return mustNew(t, "P(B | A)", []string{"A", "B"}, []factor.Row{
		{Values: []factor.Value{true, true}, Weight: 0.9},
		{Values: []factor.Value{true, false}, Weight: 0.1},
		{Values: []factor.Value{false, true}, Weight: 0.2},
		{Values: []factor.Value{false, false}, Weight: 0.8},
	})
}

// TestJoin_DisjointScopes multiplies out the Cartesian product.
func TestJoin_DisjointScopes(t *testing.T) {
	a := priorA(t)
	b := mustNew(t, "P(C)", []string{"C"}, []factor.Row{
		{Values: []factor.Value{true}, Weight: 0.2},
		{Values: []factor.Value{false}, Weight: 0.8},
	})

	got, err := a.Join(b)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "C"}, got.Scope())
	assert.Equal(t, 4, got.Len())

	w, ok := got.Weight(true, true)
	assert.True(t, ok)
	assert.InDelta(t, 0.06, w, 1e-12)

	w, ok = got.Weight(false, false)
	assert.True(t, ok)
	assert.InDelta(t, 0.56, w, 1e-12)
}

// TestJoin_SharedVariable matches rows on the shared assignment.
func TestJoin_SharedVariable(t *testing.T) {
	got, err := priorA(t).Join(condBA(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, got.Scope())
	assert.Equal(t, 4, got.Len())

	// P(A=true) * P(B=true | A=true) = 0.3 * 0.9
	w, ok := got.Weight(true, true)
	assert.True(t, ok)
	assert.InDelta(t, 0.27, w, 1e-12)

	// P(A=false) * P(B=false | A=false) = 0.7 * 0.8
	w, ok = got.Weight(false, false)
	assert.True(t, ok)
	assert.InDelta(t, 0.56, w, 1e-12)
}

// TestJoin_NoMatches yields the valid empty table when shared domains are
// disjoint.
func TestJoin_NoMatches(t *testing.T) {
	left := mustNew(t, "", []string{"A"}, []factor.Row{
		{Values: []factor.Value{1}, Weight: 1},
		{Values: []factor.Value{2}, Weight: 1},
	})
	right := mustNew(t, "", []string{"A", "B"}, []factor.Row{
		{Values: []factor.Value{3, true}, Weight: 1},
	})

	got, err := left.Join(right)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
	assert.Equal(t, []string{"A", "B"}, got.Scope())
}

// TestJoin_Commutative compares both operand orders after canonicalizing.
func TestJoin_Commutative(t *testing.T) {
	a, b := priorA(t), condBA(t)

	ab, err := a.Join(b)
	require.NoError(t, err)
	ba, err := b.Join(a)
	require.NoError(t, err)

	assert.True(t, factor.Equal(canonical(t, ab), canonical(t, ba), 1e-12))
}

// TestJoin_Associative compares both bracketings after canonicalizing.
func TestJoin_Associative(t *testing.T) {
	a := priorA(t)
	b := condBA(t)
	c := mustNew(t, "P(C | B)", []string{"B", "C"}, []factor.Row{
		{Values: []factor.Value{true, true}, Weight: 0.5},
		{Values: []factor.Value{true, false}, Weight: 0.5},
		{Values: []factor.Value{false, true}, Weight: 0.4},
		{Values: []factor.Value{false, false}, Weight: 0.6},
	})

	ab, err := a.Join(b)
	require.NoError(t, err)
	left, err := ab.Join(c)
	require.NoError(t, err)

	bc, err := b.Join(c)
	require.NoError(t, err)
	right, err := a.Join(bc)
	require.NoError(t, err)

	assert.True(t, factor.Equal(canonical(t, left), canonical(t, right), 1e-12))
}

// TestJoin_NilOperand rejects nil factors.
func TestJoin_NilOperand(t *testing.T) {
	a := priorA(t)
	_, err := a.Join(nil)
	assert.ErrorIs(t, err, factor.ErrNilFactor)
}

// TestJoin_PreservesMass keeps total mass multiplicative: joining two
// normalized independent tables stays normalized.
func TestJoin_PreservesMass(t *testing.T) {
	a := priorA(t)
	b := mustNew(t, "", []string{"Z"}, []factor.Row{
		{Values: []factor.Value{"on"}, Weight: 0.25},
		{Values: []factor.Value{"off"}, Weight: 0.75},
	})

	got, err := a.Join(b)
	require.NoError(t, err)

	var total float64
	for _, r := range got.Rows() {
		total += r.Weight
	}
	assert.InDelta(t, 1.0, total, 1e-12)
}

// TestJoinAll folds left and matches the chained result.
func TestJoinAll(t *testing.T) {
	a, b := priorA(t), condBA(t)

	_, err := factor.JoinAll()
	assert.ErrorIs(t, err, factor.ErrNoFactors)

	single, err := factor.JoinAll(a)
	require.NoError(t, err)
	assert.True(t, factor.Equal(a, single, 0))

	chained, err := a.Join(b)
	require.NoError(t, err)
	folded, err := factor.JoinAll(a, b)
	require.NoError(t, err)
	assert.True(t, factor.Equal(chained, folded, 0))
}

// TestJoin_NamePropagation keeps a name only when both operands agree.
func TestJoin_NamePropagation(t *testing.T) {
	a, b := priorA(t), condBA(t)

	mixed, err := a.Join(b)
	require.NoError(t, err)
	assert.Equal(t, "", mixed.Name())

	same, err := a.Join(priorA(t).Restrict(factor.Evidence{"A": true}))
	require.NoError(t, err)
	assert.Equal(t, "P(A)", same.Name())
}
