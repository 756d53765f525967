package kmer

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned for a non-positive k-mer size.
	ErrInvalidK = errors.New("k must be > 0")
	// ErrShortRecord is returned under ShortError for sequences shorter than k.
	ErrShortRecord = errors.New("sequence shorter than k")
)

// ShortPolicy decides what happens to sequences shorter than k.
type ShortPolicy int

const (
	// ShortSkip makes short sequences contribute nothing.
	ShortSkip ShortPolicy = iota
	// ShortError rejects short sequences with ErrShortRecord.
	ShortError
)

func (p ShortPolicy) String() string {
	switch p {
	case ShortSkip:
		return "skip"
	case ShortError:
		return "error"
	}
	return fmt.Sprintf("ShortPolicy(%d)", int(p))
}

// ParseShortPolicy maps "skip" and "error" to their policy.
func ParseShortPolicy(s string) (ShortPolicy, error) {
	switch s {
	case "skip", "":
		return ShortSkip, nil
	case "error":
		return ShortError, nil
	}
	return ShortSkip, fmt.Errorf("invalid short-record policy %q (want skip|error)", s)
}

// Extractor gathers the overlapping k-mers of a sequence that start with
// Prefix.
type Extractor struct {
	K      int
	Prefix string
	Short  ShortPolicy
}

// Validate reports whether the extractor can be used.
func (e Extractor) Validate() error {
	if e.K <= 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidK, e.K)
	}
	return nil
}

// Extract counts every window seq[i:i+K] that starts with Prefix into idx.
// A sequence shorter than K adds nothing, or returns ErrShortRecord under
// ShortError. Extract assumes e has been validated.
func (e Extractor) Extract(seq []byte, idx Index) error {
	n := len(seq)
	if n < e.K {
		if e.Short == ShortError {
			return fmt.Errorf("%w: length %d < k=%d", ErrShortRecord, n, e.K)
		}
		return nil
	}
	prefix := []byte(e.Prefix)
	for i := 0; i <= n-e.K; i++ {
		w := seq[i : i+e.K]
		if bytes.HasPrefix(w, prefix) {
			idx.add(w)
		}
	}
	return nil
}

// Kmers is a convenience wrapper returning a fresh Index for one sequence.
func (e Extractor) Kmers(seq []byte) (Index, error) {
	idx := make(Index)
	if err := e.Extract(seq, idx); err != nil {
		return nil, err
	}
	return idx, nil
}
