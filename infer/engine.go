// Engine construction and the CPT store.
//
// Tables land in canonical form at registration: scope reordered to
// sorted(parents) followed by the node, display name "P(node | p1, p2)".
// Prepare then freezes the store and fixes a canonical row order, so
// every later query reads the same deterministic tables.

package infer

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/katalvlaran/bayes/factor"
	"github.com/katalvlaran/bayes/network"
)

// Engine owns a network structure and one CPT per variable, and answers
// posterior queries over them by variable elimination.
//
// Lifecycle: register tables with SetCPT or SetCPTLabeled, then query.
// The first query (or an explicit Prepare) freezes the store; later
// registrations fail with ErrPrepared. A prepared engine is safe for
// concurrent queries.
type Engine struct {
	net  *network.Network
	opts Options

	mu       sync.RWMutex
	tables   map[string]*factor.Factor // node → canonical CPT
	prepared bool
}

// New builds an engine over the given structure. The network must be
// non-nil; options default to DefaultOptions.
func New(net *network.Network, opts ...Option) *Engine {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return &Engine{
		net:    net,
		opts:   cfg,
		tables: make(map[string]*factor.Factor),
	}
}

// SetCPT registers the conditional probability table of node in
// positional form: each row's values are ordered by the canonical scope,
// the node's parents sorted lexically and the node itself last.
//
//	Parents(Alarm) = [Burglary, Earthquake]
//	SetCPT("Alarm", ...) rows are (Burglary, Earthquake, Alarm) triples.
//
// Errors: ErrNilNetwork, ErrUnknownVariable for a node outside the
// structure, ErrPrepared after the store froze, and the factor package's
// validation errors for malformed rows. Registering a node twice replaces
// its table.
func (e *Engine) SetCPT(node string, rows []factor.Row) error {
	scope, err := e.canonicalScope(node)
	if err != nil {
		return err
	}
	f, err := factor.New(tableName(node, e.net.Parents(node)), scope, rows)
	if err != nil {
		return fmt.Errorf("CPT %q: %w", node, err)
	}

	return e.store(node, f)
}

// SetCPTLabeled registers a CPT whose rows are ordered by an explicit
// scope instead of the positional contract. The labels must be a
// permutation of the canonical scope, checked eagerly: anything else is
// ErrLabelMismatch. The table is reordered into canonical form before it
// is stored, so both registration forms are indistinguishable afterwards.
func (e *Engine) SetCPTLabeled(node string, scope []string, rows []factor.Row) error {
	canonical, err := e.canonicalScope(node)
	if err != nil {
		return err
	}
	if !samePermutation(scope, canonical) {
		return fmt.Errorf("%w: node %q got %v, want a permutation of %v",
			ErrLabelMismatch, node, scope, canonical)
	}

	f, err := factor.New(tableName(node, e.net.Parents(node)), scope, rows)
	if err != nil {
		return fmt.Errorf("CPT %q: %w", node, err)
	}
	f, err = f.Reorder(canonical)
	if err != nil {
		return fmt.Errorf("CPT %q: %w", node, err)
	}

	return e.store(node, f)
}

// CPT returns the canonical table registered for node.
// ErrUnknownVariable for strangers, ErrMissingTable when nothing was
// registered yet.
func (e *Engine) CPT(node string) (*factor.Factor, error) {
	if e.net == nil {
		return nil, ErrNilNetwork
	}
	if !e.net.HasNode(node) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, node)
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	f, ok := e.tables[node]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingTable, node)
	}

	return f, nil
}

// Network returns the structure the engine was built over.
func (e *Engine) Network() *network.Network { return e.net }

// Prepare freezes the store and fixes the canonical row order of every
// registered table. Prepare is idempotent and runs implicitly before the
// first query; an explicit call merely moves the work forward.
//
// Prepare does not require completeness: variables without tables only
// fail queries they are relevant to, with ErrMissingTable.
func (e *Engine) Prepare() error {
	if e.net == nil {
		return ErrNilNetwork
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.prepared {
		return nil
	}
	for node, f := range e.tables {
		e.tables[node] = f.Sorted()
	}
	e.prepared = true

	return nil
}

// store validates the frozen flag and saves a canonical table.
func (e *Engine) store(node string, f *factor.Factor) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.prepared {
		return fmt.Errorf("CPT %q: %w", node, ErrPrepared)
	}
	e.tables[node] = f

	return nil
}

// canonicalScope resolves sorted(parents) + node for a structure member.
func (e *Engine) canonicalScope(node string) ([]string, error) {
	if e.net == nil {
		return nil, ErrNilNetwork
	}
	if !e.net.HasNode(node) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, node)
	}
	parents := e.net.Parents(node) // already sorted
	scope := make([]string, 0, len(parents)+1)
	scope = append(scope, parents...)
	scope = append(scope, node)

	return scope, nil
}

// tableName renders the canonical display name of a CPT:
// "P(node | p1, p2)" with sorted parents, "P(node)" for roots.
func tableName(node string, parents []string) string {
	if len(parents) == 0 {
		return fmt.Sprintf("P(%s)", node)
	}

	return fmt.Sprintf("P(%s | %s)", node, strings.Join(parents, ", "))
}

// samePermutation reports whether a and b contain the same names,
// regardless of order, each exactly once.
func samePermutation(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}

	return true
}
