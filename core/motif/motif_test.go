package motif

import "testing"

func stemSpanning(begin, end int) Stem {
	return Stem{
		Strand1: Strand{Begin: begin, End: begin + 1, Sequence: "GG"},
		Strand2: Strand{Begin: end, End: end - 1, Sequence: "CC"},
	}
}

func TestFormsPseudoknotWith(t *testing.T) {
	cases := []struct {
		name string
		a, b Stem
		want bool
	}{
		{"crossing", stemSpanning(1, 10), stemSpanning(5, 15), true},
		{"nested", stemSpanning(1, 20), stemSpanning(5, 10), false},
		{"disjoint", stemSpanning(1, 5), stemSpanning(10, 15), false},
	}
	for _, c := range cases {
		if got := c.a.FormsPseudoknotWith(c.b); got != c.want {
			t.Fatalf("%s: got %v, want %v", c.name, got, c.want)
		}
		// The relation is symmetric.
		if got := c.b.FormsPseudoknotWith(c.a); got != c.want {
			t.Fatalf("%s (swapped): got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestStrandLenAndReverse(t *testing.T) {
	s := Strand{Begin: 3, End: 6, Sequence: "GGAA"}
	if s.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", s.Len())
	}
	r := s.reversed()
	if r.Begin != 6 || r.End != 3 || r.Sequence != "AAGG" {
		t.Fatalf("reversed() = %v", r)
	}
	if r.Len() != 4 {
		t.Fatalf("reversed Len() = %d, want 4", r.Len())
	}
}

func TestStrandEqualityIsDirectional(t *testing.T) {
	fwd := Strand{Begin: 3, End: 6, Sequence: "GGAA"}
	if fwd == fwd.reversed() {
		t.Fatal("opposite directions must not compare equal")
	}
}
