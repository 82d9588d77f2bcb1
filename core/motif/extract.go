// core/motif/extract.go
package motif

import "rnamotif-core/bpseq"

// Strands segments b into maximal anti-parallel runs of paired
// residues, scanning left to right. A run continues from residue p to
// p+1 only while p+1 is paired and its partner is exactly one less than
// p's partner. Runs of length 1 are never emitted: an isolated pair has
// no helical continuation and is not a motif.
func Strands(b bpseq.BPSEQ) []Strand {
	var out []Strand
	var begin int
	frag := make([]byte, 0, 16)

	for i, e := range b.Entries {
		if e.Partner != 0 {
			if len(frag) == 0 {
				begin = e.Index
			}
			frag = append(frag, e.Base)
		}

		cut := i == len(b.Entries)-1
		if !cut {
			next := b.Entries[i+1]
			cut = next.Partner == 0 || next.Partner != e.Partner-1
		}
		if cut {
			if len(frag) > 1 {
				out = append(out, Strand{Begin: begin, End: e.Index, Sequence: string(frag)})
			}
			frag = frag[:0]
		}
	}
	return out
}

// Stems pairs each 5'→3' strand with its complement: the strand whose
// End is the partner of the first strand's Begin. The complement is
// returned end-swapped with its sequence reversed (the 3'→5' reading).
// Each stem appears once, with the smaller-Begin strand as Strand1.
func Stems(b bpseq.BPSEQ) []Stem {
	strands := Strands(b)
	var out []Stem
	for _, s := range strands {
		e := b.Entries[s.Begin-1]
		if e.Partner <= e.Index {
			// Closing half of a helix; its stem was emitted when the
			// opening half came around.
			continue
		}
		for _, c := range strands {
			if c.End == e.Partner {
				out = append(out, Stem{Strand1: s, Strand2: c.reversed()})
				break
			}
		}
	}
	return out
}

// Hairpins finds maximal runs of unpaired residues whose flanking
// residues pair with each other, and returns each loop including both
// closing residues.
func Hairpins(b bpseq.BPSEQ) []Hairpin {
	var out []Hairpin
	n := len(b.Entries)

	i := 0
	for i < n {
		if b.Entries[i].Partner != 0 {
			i++
			continue
		}
		j := i
		for j < n && b.Entries[j].Partner == 0 {
			j++
		}
		// Unpaired run spans entries [i, j). Needs a paired residue on
		// both sides, and those two residues must pair with each other.
		if i > 0 && j < n {
			opening := b.Entries[i-1]
			closing := b.Entries[j]
			if opening.Partner == closing.Index {
				frag := make([]byte, 0, closing.Index-opening.Index+1)
				for k := opening.Index - 1; k < closing.Index; k++ {
					frag = append(frag, b.Entries[k].Base)
				}
				out = append(out, Hairpin{Strand{Begin: opening.Index, End: closing.Index, Sequence: string(frag)}})
			}
		}
		i = j
	}
	return out
}

// Pseudoknots tests every unordered pair of stems, in stem-list order,
// for the crossing relation.
func Pseudoknots(b bpseq.BPSEQ) []Pseudoknot {
	stems := Stems(b)
	var out []Pseudoknot
	for i := 0; i < len(stems); i++ {
		for j := i + 1; j < len(stems); j++ {
			if stems[i].FormsPseudoknotWith(stems[j]) {
				out = append(out, Pseudoknot{Stem1: stems[i], Stem2: stems[j]})
			}
		}
	}
	return out
}
