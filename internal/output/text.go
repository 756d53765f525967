// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"kmercmp/internal/report"
)

// FormatRowTSV returns one report row (no trailing newline):
// path, unique, redundant, shared-unique %, shared-redundant %.
func FormatRowTSV(r report.Report, f report.File) string {
	return fmt.Sprintf("%s\t%d\t%d\t%.2f%%\t%.2f%%",
		f.Path, f.Stats.Unique, f.Stats.Redundant,
		r.SharedUniquePct(f), r.SharedRedundantPct(f),
	)
}

// WriteText prints the optional header and one row per input.
func WriteText(w io.Writer, r report.Report, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader(r.K)); err != nil {
			return err
		}
	}
	for _, f := range r.Files() {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r, f)); err != nil {
			return err
		}
	}
	return nil
}
