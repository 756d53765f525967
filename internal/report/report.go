// Package report holds the outcome of comparing two k-mer indexes, ready
// for rendering.
package report

import "kmercmp-core/kmer"

// File is the per-input part of a report.
type File struct {
	Path  string
	Stats kmer.Stats
	Info  kmer.BuildInfo
}

// Report is a finished target-versus-reference comparison.
type Report struct {
	K         int
	Prefix    string
	Target    File
	Reference File
	Shared    kmer.Intersection
}

// Files returns the inputs in report order: target first.
func (r Report) Files() []File { return []File{r.Target, r.Reference} }

// SharedUniquePct is the share of f's distinct k-mers found in the other input.
func (r Report) SharedUniquePct(f File) float64 {
	return Percent(uint64(r.Shared.Unique), uint64(f.Stats.Unique))
}

// SharedRedundantPct is the share of f's k-mer occurrences matched in the
// other input.
func (r Report) SharedRedundantPct(f File) float64 {
	return Percent(r.Shared.Redundant, f.Stats.Redundant)
}

// Percent returns 100*part/total, or 0 when total is 0.
func Percent(part, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(part) / float64(total)
}
