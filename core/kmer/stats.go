package kmer

// Stats summarizes an Index.
type Stats struct {
	Unique    int    // distinct k-mers
	Redundant uint64 // total occurrences
}

// Summarize returns the unique and redundant k-mer counts of idx.
func Summarize(idx Index) Stats {
	s := Stats{Unique: len(idx)}
	for _, c := range idx {
		s.Redundant += uint64(c)
	}
	return s
}
