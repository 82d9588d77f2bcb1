// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"rnamotif/internal/cli"
	"rnamotif/internal/logging"
	"rnamotif/internal/version"
	"rnamotif/internal/writers"

	"rnamotif-core/bpseq"
	"rnamotif-core/dbn"
	"rnamotif-core/dotbracket"
	"rnamotif-core/motif"
)

// RunContext parses argv, runs the conversion/extraction pipeline, and
// writes results to stdout. Exit codes: 0 ok, 1 runtime failure,
// 2 usage error, 3 output flush failure.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("rnamotif")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "rnamotif version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	level := opts.LogLevel
	if opts.Quiet {
		level = "error"
	}
	log := logging.New(stderr, level, !opts.LogJSON)

	reports, err := collect(parent, opts, log)
	if err != nil {
		log.Error().Err(err).Msg("pipeline failed")
		return 1
	}
	for _, r := range reports {
		if err := writers.Write(opts.Output, outw, r); err != nil {
			if writers.IsBrokenPipe(err) {
				return 0
			}
			log.Error().Err(err).Str("format", opts.Output).Msg("write failed")
			return 1
		}
	}
	return flushCode(outw, stderr, 0)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}

// collect gathers input structures, builds their BPSEQ representation,
// and extracts the requested motifs.
func collect(ctx context.Context, opts cli.Options, log zerolog.Logger) ([]writers.Report, error) {
	var reports []writers.Report

	addRecord := func(rec dbn.Record) error {
		pairs, err := dotbracket.Parse(rec.Structure)
		if err != nil {
			return err
		}
		b, err := bpseq.FromPairs(rec.Sequence, pairs)
		if err != nil {
			return err
		}
		reports = append(reports, makeReport(rec.ID, b, opts))
		return nil
	}

	if opts.Input == "" {
		err := addRecord(dbn.Record{Sequence: opts.Sequence, Structure: opts.Structure})
		return reports, err
	}

	from := opts.From
	if from == cli.FromAuto {
		if strings.Contains(opts.Input, ".bpseq") {
			from = cli.FromBPSEQ
		} else {
			from = cli.FromDBN
		}
	}

	switch from {
	case cli.FromBPSEQ:
		rc, err := dbn.Open(opts.Input)
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		warn := func(line int, text string) {
			log.Warn().Int("line", line).Str("text", text).
				Msg("skipping BPSEQ line without 3 columns")
		}
		b, err := bpseq.Parse(rc, warn)
		if err != nil {
			return nil, err
		}
		// The loader is tolerant; extraction is not. Motif scans index
		// entries positionally, so a loaded file must form a valid
		// 1..N table before extraction runs.
		if err := b.Validate(); err != nil {
			return nil, err
		}
		reports = append(reports, makeReport(opts.Input, b, opts))
		return reports, nil

	default:
		rc, err := dbn.Open(opts.Input)
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		err = dbn.ReadAllCtx(ctx, rc, addRecord)
		return reports, err
	}
}

func makeReport(id string, b bpseq.BPSEQ, opts cli.Options) writers.Report {
	var ms []motif.Motif
	if opts.Wants("strands") {
		for _, s := range motif.Strands(b) {
			ms = append(ms, s)
		}
	}
	if opts.Wants("stems") {
		for _, s := range motif.Stems(b) {
			ms = append(ms, s)
		}
	}
	if opts.Wants("hairpins") {
		for _, h := range motif.Hairpins(b) {
			ms = append(ms, h)
		}
	}
	if opts.Wants("pseudoknots") {
		for _, p := range motif.Pseudoknots(b) {
			ms = append(ms, p)
		}
	}
	return writers.Report{ID: id, BPSEQ: b, Motifs: ms}
}
