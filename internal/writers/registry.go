// internal/writers/registry.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"syscall"

	"kmercmp/internal/output"
	"kmercmp/internal/report"
)

// Options are the presentation switches shared by all formats.
type Options struct {
	Header bool // text only
}

// WriteFunc renders a report in one format.
type WriteFunc func(w io.Writer, r report.Report, o Options) error

// ReportWriters maps format name to its writer.
var ReportWriters = map[string]WriteFunc{}

func init() {
	Register(output.FormatText, func(w io.Writer, r report.Report, o Options) error {
		return output.WriteText(w, r, o.Header)
	})
	Register(output.FormatJSON, func(w io.Writer, r report.Report, _ Options) error {
		return output.WriteJSON(w, r)
	})
}

// Register adds or replaces (last wins) the writer for format.
func Register(format string, fn WriteFunc) { ReportWriters[format] = fn }

// Formats returns the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(ReportWriters))
	for f := range ReportWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, r report.Report, o Options) error {
	fn, ok := ReportWriters[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, r, o)
}

// IsBrokenPipe reports whether err comes from writing to a closed pipe,
// e.g. when the report is piped into `head`.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
