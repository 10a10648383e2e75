// Package bayes is your in-memory toolkit for building discrete Bayesian
// networks and answering exact probability queries over them.
//
// 🚀 What is bayes?
//
//	A deterministic, thread-safe library for exact inference that brings together:
//		• Structure building: declare edges, fan-out lists, standalone variables
//		• Factors: labeled probability tables with restrict / join / sum-out / normalize
//		• Variable elimination: relevance pruning, evidence restriction, posterior tables
//		• Network definitions: YAML documents with a tiny structure grammar
//		• Tooling: a CLI (bayesq) to query, inspect and render networks
//
// ✨ Why choose bayes?
//
//   - Exact answers – no sampling, no approximation, reproducible to the bit
//   - Deterministic – lexical tie-breaks everywhere, stable row and scope order
//   - Honest errors – cycles, label mismatches and impossible evidence all
//     surface as sentinel errors, never as silent NaNs
//   - Pure Go core – the inference packages carry no service baggage
//
// Under the hood, everything is organized under four subpackages:
//
//	network/ — DAG structure: items, topological order, ancestor closures, DOT export
//	factor/  — probability tables: Restrict, Join, SumOut, Normalize, pretty printing
//	infer/   — CPT store, elimination engine and the Query façade
//	netdef/  — YAML network definitions and the structure-item grammar
//
// Quick ASCII example:
//
//	    Burglary   Earthquake
//	          \     /
//	           Alarm
//	          /     \
//	    JohnCalls   MaryCalls
//
//	the classic alarm network: two causes, one alarm, two phone calls.
//
// Ask it P(Burglary | JohnCalls=true, MaryCalls=true) and variable
// elimination answers ≈ 0.284 exactly, every run, in microseconds.
//
// Dive into examples/ for a runnable walkthrough and cmd/bayesq for the CLI.
//
//	go get github.com/katalvlaran/bayes
package bayes
