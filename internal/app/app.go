// internal/app/app.go
package app

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"kmercmp/internal/cli"
	"kmercmp/internal/compare"
	"kmercmp/internal/logging"
	"kmercmp/internal/progress"
	"kmercmp/internal/version"
	"kmercmp/internal/writers"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitUsage = 2
	ExitRun   = 3
)

const longHelp = `kmercmp counts the k-mers starting with a prefix in two FASTQ files and
reports how much of each file's k-mer content is found in the other.

Inputs may be plain or gzip-compressed; "-" reads one of them from stdin.
The optional positionals k and prefix are equivalent to --kmer-size and
--prefix.`

const examples = `  kmercmp sample.fastq reference.fastq
  kmercmp sample.fastq.gz reference.fastq 21 ACGT
  kmercmp -k 12 -p "" -o json sample.fastq reference.fastq`

// NewCommand returns the root command. The report goes to stdout; logs,
// progress and errors go to stderr.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts cli.Options

	cmd := &cobra.Command{
		Use:           "kmercmp [flags] <target.fastq> <reference.fastq> [k] [prefix]",
		Short:         "Compare prefix-filtered k-mer content of two FASTQ files",
		Long:          longHelp,
		Example:       examples,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.RangeArgs(2, 4)(cmd, args); err != nil {
				return &cli.UsageError{Err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.Resolve(cmd.Flags(), &opts, args); err != nil {
				return err
			}
			return run(opts, stdout, stderr)
		},
	}
	cmd.SetVersionTemplate("kmercmp version {{.Version}}\n")
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &cli.UsageError{Err: err}
	})
	cli.Register(cmd.Flags(), &opts)
	return cmd
}

func run(opts cli.Options, stdout, stderr io.Writer) error {
	level := opts.LogLevel
	if opts.Quiet {
		level = "error"
	}
	log := logging.New(stderr, level)

	ex := opts.Extractor()
	if len(ex.Prefix) > ex.K {
		log.Warn("prefix is longer than k; no k-mer can match", "prefix", ex.Prefix, "k", ex.K)
	}

	cfg := compare.Config{Extractor: ex, Logger: log}
	if opts.Progress && !opts.Quiet && progress.IsTerminal(stderr) {
		cfg.Progress = stderr
	}

	rep, err := compare.Run(cfg, opts.Target, opts.Reference)
	if err != nil {
		return err
	}
	return writers.Write(opts.Output, stdout, rep, writers.Options{Header: opts.Header})
}

// Run executes kmercmp with argv (without the program name) and returns the
// process exit code.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	cmd := NewCommand(outw, stderr)
	cmd.SetArgs(argv)
	err := cmd.Execute()

	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return ExitRun
	}

	switch {
	case err == nil:
		return ExitOK
	case writers.IsBrokenPipe(err):
		return ExitOK
	case cli.IsUsage(err):
		_, _ = fmt.Fprintf(stderr, "error: %v\nRun 'kmercmp --help' for usage.\n", err)
		return ExitUsage
	default:
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitRun
	}
}
