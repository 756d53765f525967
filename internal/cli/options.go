// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"kmercmp-core/kmer"
	"kmercmp/internal/config"
	"kmercmp/internal/logging"
	"kmercmp/internal/output"
	"kmercmp/internal/writers"
)

// Defaults carried over from the original ripkmer tool.
const (
	DefaultK      = 16
	DefaultPrefix = "ATCG"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Inputs
	Target    string
	Reference string

	// K-mers
	K            int
	Prefix       string
	ShortRecords string // skip | error

	// Output
	Output string // text | json
	Header bool   // true unless --no-header

	// Misc
	Progress   bool
	Quiet      bool
	LogLevel   string
	ConfigFile string

	noHeader bool
}

// UsageError marks a configuration problem detected before any input is
// read.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// Usagef returns a *UsageError with a formatted message.
func Usagef(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// Register wires all flags onto fs.
func Register(fs *pflag.FlagSet, o *Options) {
	fs.IntVarP(&o.K, "kmer-size", "k", DefaultK, "k-mer length")
	fs.StringVarP(&o.Prefix, "prefix", "p", DefaultPrefix, `only count k-mers starting with this sequence ("" = all)`)
	fs.StringVar(&o.ShortRecords, "short-records", "skip", "reads shorter than k: skip | error")

	fs.StringVarP(&o.Output, "output", "o", output.FormatText, "output: "+strings.Join(writers.Formats(), " | "))
	fs.BoolVar(&o.noHeader, "no-header", false, "suppress header line (text)")

	fs.BoolVar(&o.Progress, "progress", true, "show read progress on stderr when it is a terminal")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "suppress progress and non-error logs")
	fs.StringVar(&o.LogLevel, "log-level", "warn", "log level: debug | info | warn | error")
	fs.StringVar(&o.ConfigFile, "config", "", "YAML file with default settings")
}

// Resolve applies, in increasing precedence, the config file, positional
// k/prefix and explicitly set flags, then validates the result.
// args are the positionals: target, reference, [k], [prefix].
func Resolve(fs *pflag.FlagSet, o *Options, args []string) error {
	if len(args) < 2 {
		return Usagef("need a target and a reference FASTQ file")
	}
	if len(args) > 4 {
		return Usagef("too many arguments (want target reference [k] [prefix])")
	}
	o.Target, o.Reference = args[0], args[1]

	if o.ConfigFile != "" {
		f, err := config.Load(o.ConfigFile)
		if err != nil {
			return &UsageError{Err: err}
		}
		applyConfig(fs, o, f)
	}

	if len(args) >= 3 {
		if fs.Changed("kmer-size") {
			return Usagef("k given both as argument and --kmer-size")
		}
		k, err := strconv.Atoi(args[2])
		if err != nil {
			return Usagef("invalid k %q: must be an integer", args[2])
		}
		o.K = k
	}
	if len(args) == 4 {
		if fs.Changed("prefix") {
			return Usagef("prefix given both as argument and --prefix")
		}
		o.Prefix = args[3]
	}

	o.Header = !o.noHeader
	return Validate(o)
}

func applyConfig(fs *pflag.FlagSet, o *Options, f config.File) {
	if f.KmerSize > 0 && !fs.Changed("kmer-size") {
		o.K = f.KmerSize
	}
	if f.Prefix != nil && !fs.Changed("prefix") {
		o.Prefix = *f.Prefix
	}
	if f.ShortRecords != "" && !fs.Changed("short-records") {
		o.ShortRecords = f.ShortRecords
	}
	if f.Output != "" && !fs.Changed("output") {
		o.Output = f.Output
	}
	if f.NoHeader != nil && !fs.Changed("no-header") {
		o.noHeader = *f.NoHeader
	}
	if f.Progress != nil && !fs.Changed("progress") {
		o.Progress = *f.Progress
	}
	if f.LogLevel != "" && !fs.Changed("log-level") {
		o.LogLevel = f.LogLevel
	}
}

// Validate applies the CLI invariants.
func Validate(o *Options) error {
	if o.Target == "" || o.Reference == "" {
		return Usagef("both a target and a reference file are required")
	}
	if o.Target == "-" && o.Reference == "-" {
		return Usagef("only one input can be read from stdin")
	}
	if o.K <= 0 {
		return &UsageError{Err: fmt.Errorf("--kmer-size: %w (got %d)", kmer.ErrInvalidK, o.K)}
	}
	if _, err := kmer.ParseShortPolicy(o.ShortRecords); err != nil {
		return &UsageError{Err: err}
	}
	if formats := writers.Formats(); !slices.Contains(formats, o.Output) {
		return Usagef("invalid --output %q (want one of: %s)", o.Output, strings.Join(formats, ", "))
	}
	if !logging.ValidLevel(o.LogLevel) {
		return Usagef("invalid --log-level %q", o.LogLevel)
	}
	return nil
}

// Extractor builds the k-mer extractor described by validated options.
func (o Options) Extractor() kmer.Extractor {
	policy, _ := kmer.ParseShortPolicy(o.ShortRecords)
	return kmer.Extractor{K: o.K, Prefix: o.Prefix, Short: policy}
}

// IsUsage reports whether err is a configuration error.
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}
