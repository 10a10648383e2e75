// Elimination-order heuristics.
//
// The order in which hidden variables are summed out never changes the
// posterior, only the size of the intermediate factors. OrderLexical is
// the reproducible default; OrderMinDegree greedily picks the variable
// with the fewest neighbors in the interaction graph, simulating the
// fill-in each elimination causes.

package infer

import (
	"sort"

	"github.com/katalvlaran/bayes/factor"
)

// orderHidden returns the hidden variables in elimination order. The
// input slice is not modified.
func orderHidden(hidden []string, pool []*factor.Factor, h OrderHeuristic) []string {
	switch h {
	case OrderMinDegree:
		return minDegreeOrder(hidden, pool)
	default:
		out := make([]string, len(hidden))
		copy(out, hidden)
		sort.Strings(out)

		return out
	}
}

// minDegreeOrder runs the greedy min-degree heuristic over the
// interaction graph: variables are adjacent when they share a factor
// scope. Eliminating a variable connects its remaining neighbors
// pairwise before it is removed. Ties break lexically, so the order is
// deterministic.
func minDegreeOrder(hidden []string, pool []*factor.Factor) []string {
	// 1) Build the interaction graph over every scope variable. Query and
	//    evidence variables participate as neighbors but are never picked.
	adj := make(map[string]map[string]struct{})
	touch := func(v string) map[string]struct{} {
		if _, ok := adj[v]; !ok {
			adj[v] = make(map[string]struct{})
		}

		return adj[v]
	}
	var scope []string
	for _, f := range pool {
		scope = f.Scope()
		for i, a := range scope {
			touch(a)
			for _, b := range scope[i+1:] {
				adj[a][b] = struct{}{}
				touch(b)[a] = struct{}{}
			}
		}
	}

	remaining := make([]string, len(hidden))
	copy(remaining, hidden)
	sort.Strings(remaining)

	out := make([]string, 0, len(hidden))
	for len(remaining) > 0 {
		// 2) Pick the remaining hidden variable with the smallest degree.
		//    remaining is sorted, so the first minimum wins ties lexically.
		best, bestAt := remaining[0], 0
		var v string
		var at int
		for at, v = range remaining {
			if len(adj[v]) < len(adj[best]) {
				best, bestAt = v, at
			}
		}
		out = append(out, best)
		remaining = append(remaining[:bestAt], remaining[bestAt+1:]...)

		// 3) Fill in: the product of best's factors links all its
		//    neighbors, then best leaves the graph.
		neighbors := adj[best]
		for a := range neighbors {
			for b := range neighbors {
				if a != b {
					adj[a][b] = struct{}{}
				}
			}
			delete(adj[a], best)
		}
		delete(adj, best)
	}

	return out
}
