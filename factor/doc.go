// Package factor implements labeled probability tables and the pointwise
// operations exact inference is built from: restriction by evidence,
// pointwise product (join), marginalization (sum-out), normalization and
// deterministic reordering.
//
// What:
//
//   - Factor: an immutable table over an ordered scope of variable names.
//     Each Row pairs one assignment (one Value per scope variable) with a
//     non-negative weight. A conditional probability table, a joint
//     distribution and an unnormalized elimination intermediate are all
//     just factors.
//   - Restrict: drop rows incompatible with observed evidence. Restricted
//     variables stay in the scope, so downstream joins still line up.
//   - Join: pointwise product of two factors. Disjoint scopes multiply out
//     as a Cartesian product; overlapping scopes are matched with a hash
//     equi-join over the shared variables.
//   - SumOut: marginalize one variable away by summing weights over the
//     remaining assignment.
//   - Normalize: scale weights so they sum to one.
//   - Reorder / Sorted: canonicalize scope order and row order so equal
//     tables render and compare identically.
//
// Why:
//   - Variable elimination is nothing but a disciplined sequence of these
//     five operations; keeping them pure makes every engine step replayable
//   - Deterministic row and scope order give reproducible output, diffable
//     logs and stable tests
//
// Key Types:
//
//   - Value:    one discrete domain value (bool, int, float64 or string in
//     all shipped codecs; any comparable type works)
//   - Row:      one assignment plus its weight
//   - Evidence: observed variable→value assignments
//   - Factor:   the table itself; construct with New, never mutate
//
// Complexity (n = rows, k = scope size):
//
//	– Restrict:   O(n·e) for e pinned variables
//	– Join:       O(n₁·n₂) worst case (Cartesian); O(n₁+n₂+m) with m matches
//	   for overlapping scopes via the hash index
//	– SumOut:     O(n·k)
//	– Normalize:  O(n)
//	– Sorted:     O(n log n · k)
//
// Errors (sentinel):
//
//	– ErrNilFactor          nil *Factor operand
//	– ErrEmptyScope         scope empty, or sum-out would empty it
//	– ErrEmptyVariable      empty variable name in a scope
//	– ErrDuplicateVariable  scope names a variable twice
//	– ErrArityMismatch      row length differs from scope length
//	– ErrNilValue           nil value inside a row
//	– ErrBadWeight          negative, NaN or infinite weight
//	– ErrVariableNotInScope sum-out of an absent variable
//	– ErrScopePermutation   reorder target is not a permutation of the scope
//	– ErrZeroTotal          normalization of an all-zero (or empty) table
//	– ErrNoFactors          JoinAll called with no operands
//
// Example usage:
//
//	coin, _ := factor.New("P(Coin)", []string{"Coin"}, []factor.Row{
//	    {Values: []factor.Value{"heads"}, Weight: 0.5},
//	    {Values: []factor.Value{"tails"}, Weight: 0.5},
//	})
//	joint, _ := coin.Join(other)
//	posterior, _ := joint.SumOut("Coin")
package factor
