package kmer

import (
	"math/rand"
	"testing"
)

func TestCounterComp(t *testing.T) {
	a := Index{"a": 23, "b": 2, "c": 15}
	b := Index{"a": 5, "b": 7, "c": 3}
	if got := IntersectUnique(a, b); got != 3 {
		t.Errorf("unique: want 3, got %d", got)
	}
	if got := IntersectRedundant(a, b); got != 10 {
		t.Errorf("redundant: want 10, got %d", got)
	}
	if got := Compare(a, b); got != (Intersection{Unique: 3, Redundant: 10}) {
		t.Errorf("compare: got %+v", got)
	}
}

func TestIntersectPartialOverlap(t *testing.T) {
	a := Index{"AC": 4, "CG": 1, "GT": 9}
	b := Index{"CG": 6, "GT": 2, "TT": 5, "AA": 1}
	if got := Compare(a, b); got != (Intersection{Unique: 2, Redundant: 3}) {
		t.Fatalf("got %+v", got)
	}
}

func TestIntersectEmpty(t *testing.T) {
	full := Index{"AC": 3}
	for _, pair := range [][2]Index{{Index{}, full}, {full, Index{}}, {nil, full}, {nil, nil}} {
		if u, r := IntersectUnique(pair[0], pair[1]), IntersectRedundant(pair[0], pair[1]); u != 0 || r != 0 {
			t.Fatalf("empty side: got unique=%d redundant=%d", u, r)
		}
	}
}

func TestIntersectDoesNotMutate(t *testing.T) {
	a := Index{"AC": 3, "GG": 1}
	b := Index{"AC": 1, "TT": 2}
	_ = Compare(a, b)
	_ = IntersectRedundant(a, b)
	if len(a) != 2 || a["AC"] != 3 || len(b) != 2 || b["AC"] != 1 {
		t.Fatalf("inputs mutated: a=%v b=%v", a, b)
	}
}

func randomIndex(r *rand.Rand, n int) Index {
	const alpha = "ACGT"
	idx := make(Index)
	for i := 0; i < n; i++ {
		w := []byte{alpha[r.Intn(4)], alpha[r.Intn(4)], alpha[r.Intn(4)]}
		idx[string(w)] += uint32(r.Intn(5) + 1)
	}
	return idx
}

func TestIntersectProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		a, b := randomIndex(r, r.Intn(40)), randomIndex(r, r.Intn(40))

		if IntersectUnique(a, b) != IntersectUnique(b, a) {
			t.Fatalf("unique not symmetric: %v %v", a, b)
		}
		ab, ba := IntersectRedundant(a, b), IntersectRedundant(b, a)
		if ab != ba {
			t.Fatalf("redundant not symmetric: %d vs %d", ab, ba)
		}
		sa, sb := Summarize(a), Summarize(b)
		if ab > sa.Redundant || ab > sb.Redundant {
			t.Fatalf("redundant intersection %d exceeds totals %d/%d", ab, sa.Redundant, sb.Redundant)
		}
		u := IntersectUnique(a, b)
		if u > sa.Unique || u > sb.Unique || uint64(u) > ab {
			t.Fatalf("unique intersection %d out of bounds (%+v, %+v, %d)", u, sa, sb, ab)
		}
		if c := Compare(a, b); c.Unique != u || c.Redundant != ab {
			t.Fatalf("Compare %+v disagrees with (%d, %d)", c, u, ab)
		}
	}
}

func TestSelfIntersectionIsIdentity(t *testing.T) {
	idx, _ := Extractor{K: 2}.Kmers([]byte("AATTAAGGAACC"))
	s := Summarize(idx)
	if c := Compare(idx, idx); c.Unique != s.Unique || c.Redundant != s.Redundant {
		t.Fatalf("self compare %+v != stats %+v", c, s)
	}
}
