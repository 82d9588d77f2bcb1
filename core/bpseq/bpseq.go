// core/bpseq/bpseq.go
package bpseq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"rnamotif-core/dotbracket"
)

var (
	// ErrInconsistentPairing reports a pair endpoint that is out of range
	// or a residue claimed by more than one pair.
	ErrInconsistentPairing = errors.New("bpseq: inconsistent pairing")

	// ErrIncompletePartnerLink reports an entry whose partner does not
	// point back at it.
	ErrIncompletePartnerLink = errors.New("bpseq: incomplete partner link")
)

// Entry is one residue: its 1-based index, base letter, and the index of
// its paired residue (0 when unpaired).
type Entry struct {
	Index   int
	Base    byte
	Partner int
}

// BPSEQ is an ordered list of per-residue entries. Equality is
// position-wise; entry order is part of the value.
type BPSEQ struct {
	Entries []Entry
}

// WarnFunc receives non-fatal diagnostics from tolerant parsing.
// line is 1-based; text is the offending line.
type WarnFunc func(line int, text string)

// FromPairs builds a validated BPSEQ over sequence, pairing residues as
// listed. Every index from 1..len(sequence) gets exactly one entry.
func FromPairs(sequence string, pairs []dotbracket.Pair) (BPSEQ, error) {
	n := len(sequence)
	partner := make([]int, n+1)
	for _, p := range pairs {
		if p.I < 1 || p.I > n || p.J < 1 || p.J > n {
			return BPSEQ{}, fmt.Errorf("%w: pair (%d,%d) outside 1..%d", ErrInconsistentPairing, p.I, p.J, n)
		}
		if p.I == p.J {
			return BPSEQ{}, fmt.Errorf("%w: residue %d paired with itself", ErrInconsistentPairing, p.I)
		}
		if partner[p.I] != 0 {
			return BPSEQ{}, fmt.Errorf("%w: residue %d paired twice", ErrInconsistentPairing, p.I)
		}
		if partner[p.J] != 0 {
			return BPSEQ{}, fmt.Errorf("%w: residue %d paired twice", ErrInconsistentPairing, p.J)
		}
		partner[p.I] = p.J
		partner[p.J] = p.I
	}

	entries := make([]Entry, n)
	for i := 1; i <= n; i++ {
		entries[i-1] = Entry{Index: i, Base: sequence[i-1], Partner: partner[i]}
	}
	b := BPSEQ{Entries: entries}
	if err := b.Validate(); err != nil {
		return BPSEQ{}, err
	}
	return b, nil
}

// Parse reads BPSEQ text: one "index base partner" triple per line.
// Lines that do not split into exactly three fields are skipped and
// reported through warn (may be nil). Entries are kept in file order;
// callers needing sorted entries must sort explicitly.
func Parse(r io.Reader, warn WarnFunc) (BPSEQ, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		f := strings.Fields(line)
		if len(f) != 3 {
			if warn != nil {
				warn(ln, line)
			}
			continue
		}
		idx, err := strconv.Atoi(f[0])
		if err != nil {
			return BPSEQ{}, fmt.Errorf("bpseq: line %d: bad index %q: %v", ln, f[0], err)
		}
		if len(f[1]) != 1 {
			return BPSEQ{}, fmt.Errorf("bpseq: line %d: bad base %q", ln, f[1])
		}
		prt, err := strconv.Atoi(f[2])
		if err != nil {
			return BPSEQ{}, fmt.Errorf("bpseq: line %d: bad partner %q: %v", ln, f[2], err)
		}
		entries = append(entries, Entry{Index: idx, Base: f[1][0], Partner: prt})
	}
	if err := sc.Err(); err != nil {
		return BPSEQ{}, fmt.Errorf("bpseq scan: %w", err)
	}
	return BPSEQ{Entries: entries}, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(text string, warn WarnFunc) (BPSEQ, error) {
	return Parse(strings.NewReader(text), warn)
}

// Validate checks that entries run 1..N with no gaps and that every
// declared partner points back reciprocally.
func (b BPSEQ) Validate() error {
	n := len(b.Entries)
	for i, e := range b.Entries {
		if e.Index != i+1 {
			return fmt.Errorf("%w: entry %d has index %d", ErrIncompletePartnerLink, i+1, e.Index)
		}
		if e.Partner == 0 {
			continue
		}
		if e.Partner < 1 || e.Partner > n {
			return fmt.Errorf("%w: residue %d points to %d outside 1..%d", ErrIncompletePartnerLink, e.Index, e.Partner, n)
		}
		if back := b.Entries[e.Partner-1].Partner; back != e.Index {
			return fmt.Errorf("%w: residue %d points to %d but %d points to %d", ErrIncompletePartnerLink, e.Index, e.Partner, e.Partner, back)
		}
	}
	return nil
}

// String renders one "index base partner" line per entry in stored
// order, with no trailing newline.
func (b BPSEQ) String() string {
	var sb strings.Builder
	for i, e := range b.Entries {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%d %c %d", e.Index, e.Base, e.Partner)
	}
	return sb.String()
}

// Equal reports position-wise equality of the two entry lists.
func (b BPSEQ) Equal(other BPSEQ) bool {
	if len(b.Entries) != len(other.Entries) {
		return false
	}
	for i := range b.Entries {
		if b.Entries[i] != other.Entries[i] {
			return false
		}
	}
	return true
}

// Sequence returns the concatenated base letters in stored order.
func (b BPSEQ) Sequence() string {
	var sb strings.Builder
	sb.Grow(len(b.Entries))
	for _, e := range b.Entries {
		sb.WriteByte(e.Base)
	}
	return sb.String()
}
