package kmer

import (
	"errors"
	"fmt"
	"io"
	"math"

	"kmercmp-core/fastq"
)

// Index maps a k-mer to its occurrence count.
type Index map[string]uint32

// add increments the count for w, saturating at math.MaxUint32.
func (idx Index) add(w []byte) {
	if c := idx[string(w)]; c < math.MaxUint32 {
		idx[string(w)] = c + 1
	}
}

// RecordReader yields records until io.EOF. *fastq.Reader satisfies it.
type RecordReader interface {
	Read() (fastq.Record, error)
}

// BuildInfo describes what happened to the records of one build.
type BuildInfo struct {
	Records int // records read, including skipped ones
	Skipped int // malformed or failing Record.Check
	Short   int // well-formed records shorter than k
}

// Builder folds an Extractor over a record stream.
type Builder struct {
	Extractor

	// OnSkip, if set, is called for every record dropped by the
	// well-formedness filter. id is empty when the header was unreadable.
	OnSkip func(id string, reason error)
}

// Build consumes r to the end and returns the accumulated index.
//
// Records that fail to decode or fail Record.Check are skipped and counted
// in BuildInfo.Skipped; they never cause an error. Read errors other than
// fastq.ErrMalformed abort the build.
func (b Builder) Build(r RecordReader) (Index, BuildInfo, error) {
	var info BuildInfo
	if err := b.Validate(); err != nil {
		return nil, info, err
	}
	idx := make(Index)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return idx, info, nil
		}
		if err != nil && !errors.Is(err, fastq.ErrMalformed) {
			return nil, info, err
		}
		info.Records++

		if err == nil {
			err = rec.Check()
		}
		if err != nil {
			info.Skipped++
			if b.OnSkip != nil {
				b.OnSkip(rec.ID, err)
			}
			continue
		}

		if len(rec.Seq) < b.K {
			info.Short++
		}
		if err := b.Extract(rec.Seq, idx); err != nil {
			return nil, info, fmt.Errorf("record %s: %w", rec.ID, err)
		}
	}
}

// Build counts the prefix-filtered k-mers of every well-formed record in r
// with the default short-record policy.
func Build(r RecordReader, k int, prefix string) (Index, error) {
	idx, _, err := Builder{Extractor: Extractor{K: k, Prefix: prefix}}.Build(r)
	return idx, err
}
