// Transitive parent closures with a network-lifetime memo.

package network

import "sort"

// Ancestors returns every variable from which v is reachable along
// directed edges: parents, their parents, and so on, in lexical order.
// Unknown variables yield an empty result.
//
// The closure is computed once per variable with an iterative worklist
// and memoized for the life of the network. Ancestors is safe to call
// from concurrent goroutines.
func (n *Network) Ancestors(v string) []string {
	if !n.HasNode(v) {
		return nil
	}

	// 1) Fast path: the memo already holds the closure.
	n.mu.RLock()
	cached, ok := n.ancestors[v]
	n.mu.RUnlock()
	if ok {
		return append([]string(nil), cached...)
	}

	// 2) Walk parents with an explicit worklist. Adjacency is immutable,
	//    so no lock is held while walking.
	seen := make(map[string]struct{})
	work := append([]string(nil), n.parents[v]...)
	var u string
	for len(work) > 0 {
		u = work[len(work)-1]
		work = work[:len(work)-1]
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		work = append(work, n.parents[u]...)
	}

	out := make([]string, 0, len(seen))
	for u = range seen {
		out = append(out, u)
	}
	sort.Strings(out)

	// 3) Publish to the memo. A concurrent duplicate compute stores the
	//    same slice content, so last-writer-wins is harmless.
	n.mu.Lock()
	n.ancestors[v] = out
	n.mu.Unlock()

	return append([]string(nil), out...)
}
