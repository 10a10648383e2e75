// Package infer defines the engine's sentinel errors and configuration
// options.
package infer

import "errors"

// Sentinel errors returned by the inference engine.
var (
	// ErrNilNetwork indicates that New was given a nil *network.Network.
	ErrNilNetwork = errors.New("infer: network is nil")

	// ErrUnknownVariable indicates a variable the network does not carry,
	// in a CPT registration, a query or the evidence.
	ErrUnknownVariable = errors.New("infer: unknown variable")

	// ErrLabelMismatch indicates that a labeled CPT names a different
	// variable set than the canonical sorted(parents)+node scope.
	ErrLabelMismatch = errors.New("infer: CPT labels do not match parents plus node")

	// ErrMissingTable indicates that a variable relevant to the query has
	// no registered CPT.
	ErrMissingTable = errors.New("infer: no CPT registered for variable")

	// ErrEmptyQuery indicates a query with no variables.
	ErrEmptyQuery = errors.New("infer: query must name at least one variable")

	// ErrVariableConflict indicates a variable present in both the query
	// and the evidence.
	ErrVariableConflict = errors.New("infer: variable appears in both query and evidence")

	// ErrPrepared indicates a CPT registration after the store froze.
	ErrPrepared = errors.New("infer: engine already prepared, tables are frozen")

	// ErrBadHeuristic indicates an OrderHeuristic value outside the
	// defined constants.
	ErrBadHeuristic = errors.New("infer: unknown order heuristic")
)

// OrderHeuristic selects how the engine orders hidden variables for
// elimination. Every heuristic yields the same numeric posterior; they
// differ only in intermediate table sizes.
type OrderHeuristic int

const (
	// OrderLexical eliminates hidden variables in lexical name order.
	// Default: fully predictable, good enough for small networks.
	OrderLexical OrderHeuristic = iota

	// OrderMinDegree greedily eliminates the variable with the fewest
	// neighbors in the factor interaction graph, ties broken lexically.
	OrderMinDegree
)

// String names the heuristic for logs and errors.
func (h OrderHeuristic) String() string {
	switch h {
	case OrderLexical:
		return "lexical"
	case OrderMinDegree:
		return "min-degree"
	default:
		return "unknown"
	}
}

// Options configures an Engine.
//
// Heuristic – elimination order for hidden variables (OrderLexical or
// OrderMinDegree).
type Options struct {
	Heuristic OrderHeuristic
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithOrderHeuristic selects the elimination-order heuristic.
// Values outside the defined constants panic with ErrBadHeuristic.
func WithOrderHeuristic(h OrderHeuristic) Option {
	return func(o *Options) {
		if h != OrderLexical && h != OrderMinDegree {
			panic(ErrBadHeuristic.Error())
		}
		o.Heuristic = h
	}
}

// DefaultOptions returns the engine defaults: lexical elimination order.
func DefaultOptions() Options {
	return Options{Heuristic: OrderLexical}
}
