package writers

import (
	"bytes"
	"strings"
	"testing"

	"rnamotif-core/bpseq"
	"rnamotif-core/dotbracket"
	"rnamotif-core/motif"
)

func sampleReport(t *testing.T) Report {
	t.Helper()
	pairs, err := dotbracket.Parse("((..))")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	b, err := bpseq.FromPairs("GAAACC", pairs)
	if err != nil {
		t.Fatalf("FromPairs failed: %v", err)
	}
	var ms []motif.Motif
	for _, s := range motif.Stems(b) {
		ms = append(ms, s)
	}
	for _, h := range motif.Hairpins(b) {
		ms = append(ms, h)
	}
	return Report{ID: "rna1", BPSEQ: b, Motifs: ms}
}

func TestWriteBPSEQ(t *testing.T) {
	var buf bytes.Buffer
	if err := Write("bpseq", &buf, sampleReport(t)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	want := "1 G 6\n2 A 5\n3 A 0\n4 A 0\n5 C 2\n6 C 1\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	if err := Write("tsv", &buf, sampleReport(t)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "kind\tbegin\tend") {
		t.Fatalf("missing header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "stem\t1\t2\t2\tGA\t6\t5\trna1") {
		t.Fatalf("stem row wrong: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "hairpin\t2\t5\t4\tAAAC") {
		t.Fatalf("hairpin row wrong: %q", lines[2])
	}
}

func TestWriteJSONTagged(t *testing.T) {
	var buf bytes.Buffer
	if err := Write("json", &buf, sampleReport(t)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	out := buf.String()
	for _, tag := range []string{`"stem"`, `"hairpin"`, `"strand1"`, `"rna1"`} {
		if !strings.Contains(out, tag) {
			t.Fatalf("json output missing %s:\n%s", tag, out)
		}
	}
}

func TestWriteJSONL(t *testing.T) {
	var buf bytes.Buffer
	if err := Write("jsonl", &buf, sampleReport(t)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], `"kind":"stem"`) {
		t.Fatalf("first row: %q", lines[0])
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write("xml", &buf, Report{}); err == nil {
		t.Fatal("want error for unregistered format")
	}
}

func TestToAPIMotifPseudoknot(t *testing.T) {
	pk := motif.Pseudoknot{
		Stem1: motif.Stem{Strand1: motif.Strand{Begin: 1, End: 2, Sequence: "GG"}, Strand2: motif.Strand{Begin: 10, End: 9, Sequence: "CC"}},
		Stem2: motif.Stem{Strand1: motif.Strand{Begin: 5, End: 6, Sequence: "GG"}, Strand2: motif.Strand{Begin: 14, End: 13, Sequence: "CC"}},
	}
	row := ToAPIMotif(pk, "x")
	if row.Kind != "pseudoknot" || row.Begin != 1 || row.End != 10 || row.PartnerBegin != 5 || row.PartnerEnd != 14 {
		t.Fatalf("row = %+v", row)
	}
}
