// Package kmer counts prefix-filtered k-mers in sequence reads and compares
// the resulting count tables.
//
// An Index maps each k-mer to its number of occurrences. Overlapping windows
// are counted with multiplicity and no reverse-complement folding is done:
// "ACGT" and its reverse complement are distinct keys.
package kmer
