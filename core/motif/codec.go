// core/motif/codec.go
package motif

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrBadTag reports a motif object with zero or multiple discriminator
// keys, or a tag where a different motif kind was required.
var ErrBadTag = errors.New("motif: bad discriminator tag")

// Wire format: every motif is an object with exactly one discriminator
// key naming its kind. Nested strands inside stems, and stems inside
// pseudoknots, are tagged the same way:
//
//	{"strand": {"begin": 1, "end": 2, "sequence": "GG"}}
//	{"stem": {"strand1": {"strand": …}, "strand2": {"strand": …}}}
//	{"pseudoknot": {"stem1": {"stem": …}, "stem2": {"stem": …}}}

type strandBody struct {
	Begin    int    `json:"begin"`
	End      int    `json:"end"`
	Sequence string `json:"sequence"`
}

type stemBody struct {
	Strand1 tagged `json:"strand1"`
	Strand2 tagged `json:"strand2"`
}

type pseudoknotBody struct {
	Stem1 tagged `json:"stem1"`
	Stem2 tagged `json:"stem2"`
}

// tagged is the one-discriminator envelope.
type tagged struct {
	Strand     *strandBody     `json:"strand,omitempty"`
	Hairpin    *strandBody     `json:"hairpin,omitempty"`
	Stem       *stemBody       `json:"stem,omitempty"`
	Pseudoknot *pseudoknotBody `json:"pseudoknot,omitempty"`
}

func (t tagged) kinds() int {
	n := 0
	if t.Strand != nil {
		n++
	}
	if t.Hairpin != nil {
		n++
	}
	if t.Stem != nil {
		n++
	}
	if t.Pseudoknot != nil {
		n++
	}
	return n
}

func encode(m Motif) tagged {
	switch v := m.(type) {
	case Strand:
		return tagged{Strand: &strandBody{v.Begin, v.End, v.Sequence}}
	case Hairpin:
		return tagged{Hairpin: &strandBody{v.Begin, v.End, v.Sequence}}
	case Stem:
		s1 := encode(v.Strand1)
		s2 := encode(v.Strand2)
		return tagged{Stem: &stemBody{Strand1: s1, Strand2: s2}}
	case Pseudoknot:
		k1 := encode(v.Stem1)
		k2 := encode(v.Stem2)
		return tagged{Pseudoknot: &pseudoknotBody{Stem1: k1, Stem2: k2}}
	default:
		// Motif is a closed set; the type switch above is exhaustive.
		panic(fmt.Sprintf("motif: unknown kind %T", m))
	}
}

func decode(t tagged) (Motif, error) {
	if t.kinds() != 1 {
		return nil, fmt.Errorf("%w: want exactly one of strand/hairpin/stem/pseudoknot", ErrBadTag)
	}
	switch {
	case t.Strand != nil:
		return Strand{Begin: t.Strand.Begin, End: t.Strand.End, Sequence: t.Strand.Sequence}, nil
	case t.Hairpin != nil:
		return Hairpin{Strand{Begin: t.Hairpin.Begin, End: t.Hairpin.End, Sequence: t.Hairpin.Sequence}}, nil
	case t.Stem != nil:
		return decodeStem(*t.Stem)
	default:
		s1, err := decodeInnerStem(t.Pseudoknot.Stem1)
		if err != nil {
			return nil, err
		}
		s2, err := decodeInnerStem(t.Pseudoknot.Stem2)
		if err != nil {
			return nil, err
		}
		return Pseudoknot{Stem1: s1, Stem2: s2}, nil
	}
}

func decodeInnerStem(t tagged) (Stem, error) {
	if t.kinds() != 1 || t.Stem == nil {
		return Stem{}, fmt.Errorf("%w: pseudoknot field must hold a tagged stem", ErrBadTag)
	}
	return decodeStem(*t.Stem)
}

func decodeStem(body stemBody) (Stem, error) {
	s1, err := decodeStrand(body.Strand1)
	if err != nil {
		return Stem{}, err
	}
	s2, err := decodeStrand(body.Strand2)
	if err != nil {
		return Stem{}, err
	}
	return Stem{Strand1: s1, Strand2: s2}, nil
}

func decodeStrand(t tagged) (Strand, error) {
	if t.kinds() != 1 || t.Strand == nil {
		return Strand{}, fmt.Errorf("%w: stem field must hold a tagged strand", ErrBadTag)
	}
	return Strand{Begin: t.Strand.Begin, End: t.Strand.End, Sequence: t.Strand.Sequence}, nil
}

// EncodeMotifs writes ms as a JSON array of tagged motif objects.
func EncodeMotifs(w io.Writer, ms []Motif) error {
	arr := make([]tagged, len(ms))
	for i, m := range ms {
		arr[i] = encode(m)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(arr)
}

// DecodeMotifs reads a JSON array of tagged motif objects. Decoded
// values compare equal to extractor output for equal structures.
func DecodeMotifs(r io.Reader) ([]Motif, error) {
	var arr []tagged
	dec := json.NewDecoder(r)
	if err := dec.Decode(&arr); err != nil {
		return nil, fmt.Errorf("motif: decode: %w", err)
	}
	ms := make([]Motif, 0, len(arr))
	for i, t := range arr {
		m, err := decode(t)
		if err != nil {
			return nil, fmt.Errorf("motif: element %d: %w", i, err)
		}
		ms = append(ms, m)
	}
	return ms, nil
}

// MarshalJSON emits the tagged form so motifs embed naturally in other
// documents.
func (s Strand) MarshalJSON() ([]byte, error)     { return json.Marshal(encode(s)) }
func (h Hairpin) MarshalJSON() ([]byte, error)    { return json.Marshal(encode(h)) }
func (st Stem) MarshalJSON() ([]byte, error)      { return json.Marshal(encode(st)) }
func (p Pseudoknot) MarshalJSON() ([]byte, error) { return json.Marshal(encode(p)) }
