// internal/compare/compare.go
package compare

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"kmercmp-core/fastq"
	"kmercmp-core/kmer"
	"kmercmp/internal/logging"
	"kmercmp/internal/progress"
	"kmercmp/internal/report"
)

// Config controls one comparison run.
type Config struct {
	Extractor kmer.Extractor
	Progress  io.Writer    // nil disables progress bars
	Logger    *slog.Logger // nil discards logs
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return logging.Discard()
	}
	return c.Logger
}

// Run builds the k-mer index of target and then of reference, summarizes
// both and intersects them. Inputs are read one after the other, each
// exactly once. Nothing is returned unless every step succeeds.
func Run(cfg Config, target, reference string) (report.Report, error) {
	if err := cfg.Extractor.Validate(); err != nil {
		return report.Report{}, err
	}
	tIdx, tInfo, err := BuildFile(cfg, target)
	if err != nil {
		return report.Report{}, err
	}
	rIdx, rInfo, err := BuildFile(cfg, reference)
	if err != nil {
		return report.Report{}, err
	}

	return report.Report{
		K:         cfg.Extractor.K,
		Prefix:    cfg.Extractor.Prefix,
		Target:    report.File{Path: target, Stats: kmer.Summarize(tIdx), Info: tInfo},
		Reference: report.File{Path: reference, Stats: kmer.Summarize(rIdx), Info: rInfo},
		Shared:    kmer.Compare(tIdx, rIdx),
	}, nil
}

// BuildFile opens path ("-" for stdin, gzip detected automatically) and
// builds its index. The file is closed before BuildFile returns.
func BuildFile(cfg Config, path string) (kmer.Index, kmer.BuildInfo, error) {
	log := cfg.logger()

	raw, size, err := fastq.OpenRaw(path)
	if err != nil {
		return nil, kmer.BuildInfo{}, err
	}
	if cfg.Progress != nil {
		raw = progress.Wrap(raw, size, filepath.Base(path), cfg.Progress)
	}
	rc, err := fastq.Decompress(raw, fastq.HasGzipSuffix(path))
	if err != nil {
		return nil, kmer.BuildInfo{}, fmt.Errorf("%s: %w", path, err)
	}
	defer func() { _ = rc.Close() }()

	b := kmer.Builder{
		Extractor: cfg.Extractor,
		OnSkip: func(id string, reason error) {
			log.Debug("skipping record", "file", path, "id", id, "reason", reason)
		},
	}
	idx, info, err := b.Build(fastq.NewReader(rc))
	if err != nil {
		return nil, info, fmt.Errorf("%s: %w", path, err)
	}

	log.Info("indexed",
		"file", path,
		"records", info.Records,
		"skipped", info.Skipped,
		"short", info.Short,
		"unique", len(idx),
	)
	if info.Skipped > 0 {
		log.Warn("skipped malformed records", "file", path, "count", info.Skipped)
	}
	return idx, info, nil
}
