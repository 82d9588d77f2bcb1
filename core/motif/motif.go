// core/motif/motif.go

// Package motif extracts secondary-structure motifs (strands, stems,
// hairpins, pseudoknots) from a BPSEQ structure. All extraction is pure:
// each call rescans the BPSEQ and returns fresh values.
package motif

import "fmt"

// Motif is the closed set of extractable structure elements. It exists
// for the tagged codec; concrete values are plain comparable structs.
type Motif interface {
	motifKind() string
}

// Strand is a maximal contiguous run of paired residues. Begin < End
// for the 5'→3' direction; a stem's second strand is stored end-swapped
// (Begin > End) to represent the 3'→5' reading. Equality is strict on
// all three fields, so direction matters.
type Strand struct {
	Begin    int
	End      int
	Sequence string
}

// Hairpin is a strand whose first and last residues pair with each
// other and whose interior is entirely unpaired.
type Hairpin struct {
	Strand
}

// Stem is two anti-parallel strands of equal length: Strand1 runs 5'→3'
// and Strand2 3'→5', with Strand1.Begin+k paired to Strand2.Begin-k.
type Stem struct {
	Strand1 Strand
	Strand2 Strand
}

// Pseudoknot is two stems whose pairing intervals cross.
type Pseudoknot struct {
	Stem1 Stem
	Stem2 Stem
}

func (Strand) motifKind() string     { return "strand" }
func (Hairpin) motifKind() string    { return "hairpin" }
func (Stem) motifKind() string       { return "stem" }
func (Pseudoknot) motifKind() string { return "pseudoknot" }

func (s Strand) String() string {
	return fmt.Sprintf("%4d %s %4d", s.Begin, s.Sequence, s.End)
}

// Len returns the number of residues on one side of the strand,
// regardless of direction.
func (s Strand) Len() int {
	if s.Begin > s.End {
		return s.Begin - s.End + 1
	}
	return s.End - s.Begin + 1
}

// reversed returns the strand read in the opposite direction.
func (s Strand) reversed() Strand {
	b := []byte(s.Sequence)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return Strand{Begin: s.End, End: s.Begin, Sequence: string(b)}
}

// span returns the stem's pairing interval: the outermost 5' residue
// and its partner, normalized so lo < hi.
func (st Stem) span() (lo, hi int) {
	lo, hi = st.Strand1.Begin, st.Strand2.Begin
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

// FormsPseudoknotWith reports whether the two stems' pairing intervals
// cross: partial overlap, neither nested nor disjoint. For spans (i,j)
// and (k,l) that is i < k < j < l or k < i < l < j.
func (st Stem) FormsPseudoknotWith(other Stem) bool {
	i, j := st.span()
	k, l := other.span()
	return (i < k && k < j && j < l) || (k < i && i < l && l < j)
}
