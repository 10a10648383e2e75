// Package infer answers exact probability queries over a discrete
// Bayesian network by variable elimination.
//
// What:
//
//   - Engine: owns a network.Network plus one conditional probability
//     table (CPT) per variable. Tables are registered positionally
//     (SetCPT, values ordered sorted-parents-then-node) or with explicit
//     labels (SetCPTLabeled, any order of the same variables).
//   - Prepare: freezes the store. Registration after Prepare fails with
//     ErrPrepared; Prepare itself is idempotent and runs automatically on
//     the first query.
//   - Eliminate: the engine proper. Prunes to the relevant subgraph
//     (query, evidence and their ancestors), restricts every table by the
//     evidence, then joins and sums out the hidden variables one by one,
//     and normalizes the remainder into a posterior.
//   - Query: the façade most callers want. Validates the request, runs
//     Eliminate, then relabels and canonicalizes the posterior: scope
//     sorted lexically, rows sorted by assignment, name "P(q1, q2)".
//
// Why:
//   - Relevance pruning keeps the classic blow-up at bay: variables the
//     query cannot see are never joined at all (barren nodes cost nothing)
//   - A deterministic elimination order makes posteriors reproducible to
//     the bit, run after run
//
// Elimination order:
//
//	Hidden variables are eliminated in lexical order by default.
//	WithOrderHeuristic(OrderMinDegree) switches to a greedy min-degree
//	order over the factor interaction graph, which joins smaller tables
//	first on networks with wide fan-in. The numeric posterior is the same
//	either way; only intermediate table sizes differ.
//
// Errors (sentinel):
//
//	– ErrNilNetwork       Engine built around a nil network
//	– ErrUnknownVariable  query, evidence or CPT names a variable the
//	   network does not carry
//	– ErrLabelMismatch    labeled CPT scope is not a permutation of
//	   sorted(parents)+node
//	– ErrMissingTable     a variable relevant to the query has no CPT
//	– ErrEmptyQuery       query with no variables
//	– ErrVariableConflict a variable appears in both query and evidence
//	– ErrPrepared         registration after the store froze
//	– ErrBadHeuristic     WithOrderHeuristic panics with this for values
//	   outside the defined constants
//
// Impossible evidence (all weights eliminated) surfaces as an error
// wrapping factor.ErrZeroTotal.
//
// Example usage:
//
//	net, _ := network.New(
//	    network.Edges([]string{"Burglary", "Earthquake"}, []string{"Alarm"}),
//	    network.Edge("Alarm", "JohnCalls"),
//	    network.Edge("Alarm", "MaryCalls"),
//	)
//	eng := infer.New(net)
//	_ = eng.SetCPT("Burglary", []factor.Row{
//	    {Values: []factor.Value{true}, Weight: 0.001},
//	    {Values: []factor.Value{false}, Weight: 0.999},
//	})
//	// ... remaining tables ...
//	posterior, err := eng.Query(
//	    []string{"Burglary"},
//	    factor.Evidence{"JohnCalls": true, "MaryCalls": true},
//	)
package infer
