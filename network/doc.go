// Package network builds and interrogates the directed acyclic structure
// of a Bayesian network: which variables exist, who their parents are, and
// in which order they can be processed.
//
// What:
//
//   - Item: one structure declaration. Node declares a standalone
//     variable, Edge one parent→child dependency, Edges the Cartesian
//     expansion of a parent list times a child list.
//   - New: folds the items into an immutable Network, deduplicating edges,
//     sorting every adjacency list lexically and fixing the topological
//     order up front. Cycles, self-loops included, fail construction with
//     ErrCyclicGraph; nothing half-built escapes.
//   - Ancestors: the transitive parent closure, computed iteratively with
//     a worklist and memoized on the network, so repeated relevance checks
//     against the same structure cost one map lookup.
//   - DOT: a Graphviz rendering for humans.
//
// Why:
//   - Exact inference prunes by ancestry and eliminates in a fixed order;
//     both need a structure that answers Parents, Order and Ancestors
//     deterministically
//   - Immutability after New is what makes the memo cache and concurrent
//     queries safe without further locking
//
// Determinism:
//
//	Nodes, Parents, Children and Ancestors are lexically sorted. Order is
//	Kahn's algorithm with a lexical min-heap frontier, so among all valid
//	topological orders the lexically smallest one is returned, every time.
//
// Complexity:
//
//	– New:       O(V log V + E log E) for sorting, O(V + E) for Kahn
//	– Ancestors: O(V + E) first call per variable, O(1) amortized after
//	– Others:    O(V) copies at most
//
// Errors (sentinel):
//
//	– ErrEmptyVariable  an item names an empty variable
//	– ErrCyclicGraph    the declared structure contains a cycle
//
// Example usage:
//
//	net, err := network.New(
//	    network.Edges([]string{"Burglary", "Earthquake"}, []string{"Alarm"}),
//	    network.Edge("Alarm", "JohnCalls"),
//	    network.Edge("Alarm", "MaryCalls"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(net.Order()) // [Burglary Earthquake Alarm JohnCalls MaryCalls]
package network
