package infer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/bayes/factor"
)

// Query answers P(query | evidence) in canonical form: the scope is
// lexically sorted, rows are sorted by assignment, and the factor is
// named "P(q1, q2)" after the sorted query variables. Duplicate query
// variables collapse to one occurrence.
//
// Query is the front door for callers; Eliminate exposes the same
// computation with the raw elimination-order scope for callers that
// need it.
//
// Errors: ErrEmptyQuery, ErrVariableConflict when a variable is both
// queried and observed, plus everything Eliminate returns.
func (e *Engine) Query(query []string, ev factor.Evidence) (*factor.Factor, error) {
	if len(query) == 0 {
		return nil, ErrEmptyQuery
	}

	// 1) Canonicalize the request: sorted, duplicate-free query variables.
	vars := make([]string, len(query))
	copy(vars, query)
	sort.Strings(vars)
	uniq := vars[:1]
	var v string
	for _, v = range vars[1:] {
		if v != uniq[len(uniq)-1] {
			uniq = append(uniq, v)
		}
	}
	vars = uniq

	// 2) A variable cannot be asked about and pinned at the same time.
	for _, v = range vars {
		if _, ok := ev[v]; ok {
			return nil, fmt.Errorf("%w: %q is both queried and observed", ErrVariableConflict, v)
		}
	}

	posterior, err := e.Eliminate(vars, ev)
	if err != nil {
		return nil, err
	}

	// 3) Canonical presentation: lexical scope, sorted rows, query name.
	if posterior, err = posterior.Reorder(vars); err != nil {
		return nil, err
	}

	return posterior.Sorted().WithName(queryName(vars)), nil
}

// queryName renders the canonical posterior name, "P(A, B)" for the
// sorted query variables A and B.
func queryName(vars []string) string {
	return "P(" + strings.Join(vars, ", ") + ")"
}
