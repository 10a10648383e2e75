// Variable elimination.
//
// Eliminate is a straight pipeline: prune to the relevant subgraph,
// restrict every table by the evidence, sum out the hidden variables one
// by one, join what is left, project away the pinned evidence columns and
// normalize. Every step is deterministic: node sets iterate in the
// network's fixed topological order and hidden variables in the order the
// configured heuristic yields.

package infer

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/bayes/factor"
)

// Eliminate computes the unnormalized-then-normalized posterior of the
// query variables given the evidence. The result scope contains exactly
// the query variables; scope order and row order follow the elimination
// itself (use Query for the lexically canonical form).
//
// Preconditions and validation (in order):
//  1. The engine must hold a network (ErrNilNetwork).
//  2. The query must name at least one variable (ErrEmptyQuery).
//  3. Query and evidence variables must exist (ErrUnknownVariable).
//  4. Every relevant variable must have a CPT (ErrMissingTable).
//
// Evidence incompatible with the model eliminates all probability mass
// and surfaces as an error wrapping factor.ErrZeroTotal.
//
// Complexity: exponential in the treewidth of the relevant subgraph in
// the worst case; the heuristic order only shapes the intermediates.
func (e *Engine) Eliminate(query []string, ev factor.Evidence) (*factor.Factor, error) {
	if err := e.Prepare(); err != nil {
		return nil, err
	}
	if len(query) == 0 {
		return nil, ErrEmptyQuery
	}

	// 1) Validate the request against the structure. Evidence keys are
	//    visited in sorted order so the first error is deterministic.
	var q string
	for _, q = range query {
		if !e.net.HasNode(q) {
			return nil, fmt.Errorf("%w: %q in query", ErrUnknownVariable, q)
		}
	}
	evKeys := make([]string, 0, len(ev))
	for v := range ev {
		evKeys = append(evKeys, v)
	}
	sort.Strings(evKeys)
	var v string
	for _, v = range evKeys {
		if !e.net.HasNode(v) {
			return nil, fmt.Errorf("%w: %q in evidence", ErrUnknownVariable, v)
		}
	}

	// 2) Relevance pruning: the query, the evidence and every ancestor of
	//    either. Anything else cannot influence the posterior and is never
	//    touched (barren variables cost nothing).
	relevant := make(map[string]struct{}, len(query)+len(evKeys))
	mark := func(name string) {
		relevant[name] = struct{}{}
		for _, a := range e.net.Ancestors(name) {
			relevant[a] = struct{}{}
		}
	}
	for _, q = range query {
		mark(q)
	}
	for _, v = range evKeys {
		mark(v)
	}

	r := &runner{
		engine:  e,
		query:   query,
		ev:      ev,
		inQuery: make(map[string]struct{}, len(query)),
		inEv:    make(map[string]struct{}, len(evKeys)),
	}
	for _, q = range query {
		r.inQuery[q] = struct{}{}
	}
	for _, v = range evKeys {
		r.inEv[v] = struct{}{}
	}

	// 3) Collect the relevant tables in topological order and restrict
	//    them by the evidence up front.
	if err := r.collect(relevant); err != nil {
		return nil, err
	}

	// 4) Sum out the hidden variables in heuristic order.
	if err := r.eliminateHidden(); err != nil {
		return nil, err
	}

	// 5) Join the survivors, project away pinned evidence columns and
	//    normalize into the posterior.
	posterior, err := r.finish()
	if err != nil {
		return nil, fmt.Errorf("eliminate %v: %w", query, err)
	}

	return posterior, nil
}

// runner holds the mutable state of one elimination.
type runner struct {
	engine  *Engine
	query   []string
	ev      factor.Evidence
	inQuery map[string]struct{}
	inEv    map[string]struct{}

	relevant []string         // relevant variables, topological order
	factors  []*factor.Factor // current factor pool
}

// collect resolves the relevant variables into evidence-restricted
// tables. Missing tables fail here, naming the variable.
func (r *runner) collect(relevant map[string]struct{}) error {
	r.relevant = make([]string, 0, len(relevant))
	r.factors = make([]*factor.Factor, 0, len(relevant))
	var node string
	for _, node = range r.engine.net.Order() {
		if _, ok := relevant[node]; !ok {
			continue
		}
		r.relevant = append(r.relevant, node)

		r.engine.mu.RLock()
		table, ok := r.engine.tables[node]
		r.engine.mu.RUnlock()
		if !ok {
			return fmt.Errorf("%w: %q is relevant to the query", ErrMissingTable, node)
		}
		r.factors = append(r.factors, table.Restrict(r.ev))
	}

	return nil
}

// eliminateHidden sums out every relevant variable that is neither
// queried nor observed. For each hidden variable: join all factors whose
// scope carries it, sum it out of the product, put the result back.
func (r *runner) eliminateHidden() error {
	hidden := make([]string, 0, len(r.relevant))
	var v string
	for _, v = range r.relevant {
		if _, ok := r.inQuery[v]; ok {
			continue
		}
		if _, ok := r.inEv[v]; ok {
			continue
		}
		hidden = append(hidden, v)
	}
	hidden = orderHidden(hidden, r.factors, r.engine.opts.Heuristic)

	var joined, summed *factor.Factor
	var err error
	for _, v = range hidden {
		bucket, rest := r.split(v)
		if joined, err = factor.JoinAll(bucket...); err != nil {
			return fmt.Errorf("eliminating %q: %w", v, err)
		}
		if summed, err = joined.SumOut(v); err != nil {
			return fmt.Errorf("eliminating %q: %w", v, err)
		}
		r.factors = append(rest, summed)
	}

	return nil
}

// split partitions the pool into factors that carry v and the rest,
// preserving pool order on both sides.
func (r *runner) split(v string) (bucket, rest []*factor.Factor) {
	bucket = make([]*factor.Factor, 0, len(r.factors))
	rest = make([]*factor.Factor, 0, len(r.factors))
	var f *factor.Factor
	for _, f = range r.factors {
		if scopeHas(f, v) {
			bucket = append(bucket, f)
		} else {
			rest = append(rest, f)
		}
	}

	return bucket, rest
}

// finish joins the remaining factors, sums out everything that is not a
// query variable (after restriction an evidence column holds one value,
// so this is a pure projection) and normalizes.
func (r *runner) finish() (*factor.Factor, error) {
	result, err := factor.JoinAll(r.factors...)
	if err != nil {
		return nil, err
	}

	var v string
	for _, v = range result.Scope() {
		if _, ok := r.inQuery[v]; ok {
			continue
		}
		if result, err = result.SumOut(v); err != nil {
			return nil, err
		}
	}

	return result.Normalize()
}

// scopeHas reports whether the factor's scope carries v.
func scopeHas(f *factor.Factor, v string) bool {
	for _, s := range f.Scope() {
		if s == v {
			return true
		}
	}

	return false
}
