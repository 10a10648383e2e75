// Topological ordering via Kahn's algorithm.
//
// The frontier of ready variables is a lexical min-heap, so among all
// valid topological orders the lexically smallest is produced.

package network

import (
	"container/heap"
	"fmt"
	"sort"
)

// topologicalOrder sorts nodes so every parent precedes its children.
// Returns ErrCyclicGraph, naming the stuck variables, when no such order
// exists.
func topologicalOrder(nodes []string, parents, children map[string][]string) ([]string, error) {
	// 1) In-degrees; the parent lists are already deduplicated.
	indeg := make(map[string]int, len(nodes))
	var v string
	for _, v = range nodes {
		indeg[v] = len(parents[v])
	}

	// 2) Seed the frontier with all roots.
	frontier := make(nameHeap, 0, len(nodes))
	for _, v = range nodes {
		if indeg[v] == 0 {
			frontier = append(frontier, v)
		}
	}
	heap.Init(&frontier)

	// 3) Pop the lexically smallest ready variable, release its children.
	order := make([]string, 0, len(nodes))
	var c string
	for frontier.Len() > 0 {
		v = heap.Pop(&frontier).(string)
		order = append(order, v)
		for _, c = range children[v] {
			indeg[c]--
			if indeg[c] == 0 {
				heap.Push(&frontier, c)
			}
		}
	}

	// 4) Variables never released sit on a cycle (or behind one).
	if len(order) != len(nodes) {
		stuck := make([]string, 0, len(nodes)-len(order))
		for _, v = range nodes {
			if indeg[v] > 0 {
				stuck = append(stuck, v)
			}
		}
		sort.Strings(stuck)

		return nil, fmt.Errorf("%w: involving %v", ErrCyclicGraph, stuck)
	}

	return order, nil
}

// nameHeap is a lexical min-heap of variable names.
type nameHeap []string

// Len returns the number of names in the heap.
func (h nameHeap) Len() int { return len(h) }

// Less orders names lexically, smallest on top.
func (h nameHeap) Less(i, j int) bool { return h[i] < h[j] }

// Swap swaps two names.
func (h nameHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a name; called by heap.Push.
func (h *nameHeap) Push(x interface{}) { *h = append(*h, x.(string)) }

// Pop removes and returns the last name; called by heap.Pop.
func (h *nameHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
