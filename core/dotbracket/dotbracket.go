// core/dotbracket/dotbracket.go
package dotbracket

import (
	"errors"
	"fmt"
)

// ErrMalformedStructure reports an unbalanced or invalid dot-bracket string.
var ErrMalformedStructure = errors.New("dotbracket: malformed structure")

// Pair links two 1-based residue indices. I is always the opening
// (lower) index as emitted by Parse.
type Pair struct {
	I int
	J int
}

// The four independent bracket families. Brackets of different families
// may interleave freely (that is how pseudoknots are written); within a
// family matching is strict LIFO.
var opens = map[byte]int{'(': 0, '[': 1, '{': 2, '<': 3}
var closes = map[byte]int{')': 0, ']': 1, '}': 2, '>': 3}
var openSym = [4]byte{'(', '[', '{', '<'}

// Parse converts a dot-bracket structure string into base pairs.
// Indices are 1-based. On any malformed input no partial pair set is
// returned.
func Parse(structure string) ([]Pair, error) {
	var stacks [4][]int
	pairs := make([]Pair, 0, len(structure)/2)

	for i := 0; i < len(structure); i++ {
		c := structure[i]
		if c == '.' {
			continue
		}
		if fam, ok := opens[c]; ok {
			stacks[fam] = append(stacks[fam], i+1)
			continue
		}
		fam, ok := closes[c]
		if !ok {
			return nil, fmt.Errorf("%w: invalid symbol %q at position %d", ErrMalformedStructure, c, i+1)
		}
		st := stacks[fam]
		if len(st) == 0 {
			return nil, fmt.Errorf("%w: unmatched %q at position %d", ErrMalformedStructure, c, i+1)
		}
		open := st[len(st)-1]
		stacks[fam] = st[:len(st)-1]
		pairs = append(pairs, Pair{I: open, J: i + 1})
	}

	for fam, st := range stacks {
		if len(st) > 0 {
			return nil, fmt.Errorf("%w: unmatched %q at position %d", ErrMalformedStructure, openSym[fam], st[len(st)-1])
		}
	}
	return pairs, nil
}
