// Command bayesq answers exact-inference queries over YAML network
// definitions.
package main

import (
	"fmt"
	"strconv"
	"strings"

	docopt "github.com/docopt/docopt-go"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/bayes/factor"
	"github.com/katalvlaran/bayes/infer"
	"github.com/katalvlaran/bayes/netdef"
)

const usage = `bayesq answers exact-inference queries over YAML network definitions.

Usage:
  bayesq query <network.yaml> <variable>... [-e <assign>]... [--min-degree] [-v]
  bayesq show <network.yaml> [<variable>...] [-v]
  bayesq graph <network.yaml> [-v]

Options:
  -e <assign>, --evidence <assign>  Observed assignment, Var=value. Values are
                                    typed like YAML scalars: true/false,
                                    integers, decimals, anything else a string.
  --min-degree                      Use the greedy min-degree elimination order
                                    instead of the lexical default.
  -v, --verbose                     Debug logging.

Examples:
  bayesq query alarm.yaml Burglary -e JohnCalls=true -e MaryCalls=true
  bayesq show alarm.yaml Alarm
  bayesq graph alarm.yaml | dot -Tsvg > alarm.svg
`

type options struct {
	Query     bool     `docopt:"query"`
	Show      bool     `docopt:"show"`
	Graph     bool     `docopt:"graph"`
	File      string   `docopt:"<network.yaml>"`
	Variables []string `docopt:"<variable>"`
	Evidence  []string `docopt:"--evidence"`
	MinDegree bool     `docopt:"--min-degree"`
	Verbose   bool     `docopt:"--verbose"`
}

func parseArgs() *options {
	parsed, err := docopt.ParseDoc(usage)
	if err != nil {
		log.Fatalf("Error parsing command-line arguments: %v", err)
	}
	var opts options
	if err = parsed.Bind(&opts); err != nil {
		log.Fatalf("Error binding command-line arguments: %v\nfrom: %+v", err, parsed)
	}

	return &opts
}

func main() {
	opts := parseArgs()
	if opts.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if err := run(opts); err != nil {
		log.WithError(err).Fatal("bayesq failed")
	}
}

func run(opts *options) error {
	var engineOpts []infer.Option
	if opts.MinDegree {
		engineOpts = append(engineOpts, infer.WithOrderHeuristic(infer.OrderMinDegree))
	}

	eng, err := netdef.LoadPath(opts.File, engineOpts...)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"file":      opts.File,
		"variables": len(eng.Network().Nodes()),
	}).Debug("definition loaded")

	switch {
	case opts.Query:
		return runQuery(eng, opts)
	case opts.Show:
		return runShow(eng, opts.Variables)
	default:
		fmt.Print(eng.Network().DOT())
	}

	return nil
}

// runQuery computes and prints the posterior table for the query
// variables given the -e assignments.
func runQuery(eng *infer.Engine, opts *options) error {
	ev := make(factor.Evidence, len(opts.Evidence))
	var assign string
	for _, assign = range opts.Evidence {
		name, value, err := parseAssign(assign)
		if err != nil {
			return err
		}
		ev[name] = value
	}
	log.WithFields(log.Fields{
		"query":    opts.Variables,
		"evidence": ev,
	}).Debug("running query")

	post, err := eng.Query(opts.Variables, ev)
	if err != nil {
		return err
	}
	fmt.Print(post)

	return nil
}

// runShow prints the canonical CPTs of the named variables, or of every
// variable when none are named.
func runShow(eng *infer.Engine, names []string) error {
	if len(names) == 0 {
		names = eng.Network().Nodes() // sorted
	}
	for i, name := range names {
		cpt, err := eng.CPT(name)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(cpt)
	}

	return nil
}

// parseAssign splits one Var=value argument and types the literal the
// way YAML would.
func parseAssign(s string) (string, factor.Value, error) {
	name, raw, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return "", nil, fmt.Errorf("evidence %q: want Var=value", s)
	}

	return name, parseLiteral(raw), nil
}

// parseLiteral types a scalar: bool, int, float64, else string.
func parseLiteral(s string) factor.Value {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}

	return s
}
