package kmer

// Intersection holds both overlap measures between two indexes.
type Intersection struct {
	Unique    int    // keys present in both
	Redundant uint64 // sum over shared keys of the smaller count
}

// IntersectUnique returns the number of k-mers present in both a and b.
func IntersectUnique(a, b Index) int {
	small, large := ordered(a, b)
	n := 0
	for k := range small {
		if _, ok := large[k]; ok {
			n++
		}
	}
	return n
}

// IntersectRedundant returns the multiset intersection size of a and b:
// the sum over shared k-mers of min(a[k], b[k]).
func IntersectRedundant(a, b Index) uint64 {
	small, large := ordered(a, b)
	var n uint64
	for k, c := range small {
		if d, ok := large[k]; ok {
			n += uint64(min32(c, d))
		}
	}
	return n
}

// Compare computes both intersection measures in a single pass.
func Compare(a, b Index) Intersection {
	small, large := ordered(a, b)
	var in Intersection
	for k, c := range small {
		if d, ok := large[k]; ok {
			in.Unique++
			in.Redundant += uint64(min32(c, d))
		}
	}
	return in
}

func ordered(a, b Index) (small, large Index) {
	if len(a) <= len(b) {
		return a, b
	}
	return b, a
}

func min32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}
