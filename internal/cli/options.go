// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"rnamotif/internal/version"
)

// Input kinds for --from.
const (
	FromAuto  = "auto"
	FromDBN   = "dbn"
	FromBPSEQ = "bpseq"
)

// Motif selectors accepted by --motifs.
var knownMotifs = map[string]bool{
	"strands": true, "stems": true, "hairpins": true, "pseudoknots": true,
}

// Options holds all CLI flags and arguments.
type Options struct {
	// Inline input
	Sequence  string
	Structure string

	// File input ('-' for stdin)
	Input string
	From  string // auto | dbn | bpseq

	// Output
	Output string // bpseq | json | jsonl | tsv
	Motifs []string

	// Logging
	LogLevel string
	LogJSON  bool
	Quiet    bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: RNA secondary structure conversion and motif extraction

Converts between dot-bracket and BPSEQ notation and reports stems,
hairpins and pseudoknots.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var motifs string

	fs.StringVar(&opt.Sequence, "sequence", "", "nucleotide sequence (with --structure) [*]")
	fs.StringVar(&opt.Structure, "structure", "", "dot-bracket structure string (with --sequence) [*]")
	fs.StringVar(&opt.Input, "input", "", "input file, .dbn or .bpseq, '-' for stdin [*]")
	fs.StringVar(&opt.From, "from", FromAuto, "input kind: auto|dbn|bpseq")

	fs.StringVar(&opt.Output, "output", "tsv", "output format: bpseq|json|jsonl|tsv")
	fs.StringVar(&motifs, "motifs", "stems,hairpins,pseudoknots",
		"comma list of strands,stems,hairpins,pseudoknots")

	fs.StringVar(&opt.LogLevel, "log-level", "info", "log level: debug|info|warn|error")
	fs.BoolVar(&opt.LogJSON, "log-json", false, "log as JSON lines instead of console text")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-error diagnostics")

	fs.BoolVar(&opt.Version, "version", false, "print version and exit")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if fs.NArg() > 0 {
		return opt, fmt.Errorf("unexpected positional arguments: %v", fs.Args())
	}

	for _, m := range strings.Split(motifs, ",") {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		if !knownMotifs[m] {
			return opt, fmt.Errorf("unknown motif selector %q", m)
		}
		opt.Motifs = append(opt.Motifs, m)
	}

	if opt.Version {
		return opt, nil
	}
	return opt, opt.validate()
}

func (o Options) validate() error {
	inline := o.Sequence != "" || o.Structure != ""
	if inline {
		if o.Input != "" {
			return errors.New("--input cannot be combined with --sequence/--structure")
		}
		if o.Sequence == "" || o.Structure == "" {
			return errors.New("--sequence and --structure must be given together")
		}
		if len(o.Sequence) != len(o.Structure) {
			return fmt.Errorf("sequence length %d != structure length %d",
				len(o.Sequence), len(o.Structure))
		}
	} else if o.Input == "" {
		return errors.New("need --input or --sequence/--structure")
	}
	switch o.From {
	case FromAuto, FromDBN, FromBPSEQ:
	default:
		return fmt.Errorf("unknown --from %q", o.From)
	}
	switch o.Output {
	case "bpseq", "json", "jsonl", "tsv":
	default:
		return fmt.Errorf("unknown --output %q", o.Output)
	}
	return nil
}

// Wants reports whether a motif selector was requested.
func (o Options) Wants(kind string) bool {
	for _, m := range o.Motifs {
		if m == kind {
			return true
		}
	}
	return false
}
