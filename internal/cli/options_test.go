package cli

import (
	"io"
	"testing"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("rnamotif")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParseInline(t *testing.T) {
	opt, err := parse(t, "--sequence", "GAAACC", "--structure", "((..))")
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}
	if opt.Sequence != "GAAACC" || opt.Structure != "((..))" {
		t.Fatalf("unexpected options: %+v", opt)
	}
	if !opt.Wants("stems") || !opt.Wants("pseudoknots") || opt.Wants("strands") {
		t.Fatalf("default motif selection wrong: %v", opt.Motifs)
	}
}

func TestParseLengthMismatch(t *testing.T) {
	if _, err := parse(t, "--sequence", "GAAACC", "--structure", "((.))"); err == nil {
		t.Fatal("want error for unequal lengths")
	}
}

func TestParseRequiresInput(t *testing.T) {
	if _, err := parse(t); err == nil {
		t.Fatal("want error when no input is given")
	}
	if _, err := parse(t, "--sequence", "GAAACC"); err == nil {
		t.Fatal("want error for sequence without structure")
	}
	if _, err := parse(t, "--input", "x.dbn", "--sequence", "G", "--structure", "."); err == nil {
		t.Fatal("want error for conflicting inputs")
	}
}

func TestParseMotifSelectors(t *testing.T) {
	opt, err := parse(t, "--input", "x.dbn", "--motifs", "strands,stems")
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}
	if !opt.Wants("strands") || !opt.Wants("stems") || opt.Wants("hairpins") {
		t.Fatalf("motif selection wrong: %v", opt.Motifs)
	}
	if _, err := parse(t, "--input", "x.dbn", "--motifs", "loops"); err == nil {
		t.Fatal("want error for unknown selector")
	}
}

func TestParseRejectsUnknownFormat(t *testing.T) {
	if _, err := parse(t, "--input", "x.dbn", "--output", "xml"); err == nil {
		t.Fatal("want error for unknown output format")
	}
	if _, err := parse(t, "--input", "x.dbn", "--from", "fr3d"); err == nil {
		t.Fatal("want error for unknown input kind")
	}
}

func TestParseVersionSkipsValidation(t *testing.T) {
	opt, err := parse(t, "--version")
	if err != nil || !opt.Version {
		t.Fatalf("version parse: %+v %v", opt, err)
	}
}
