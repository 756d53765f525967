// internal/output/json.go
package output

import (
	"encoding/json"
	"io"
	"math"

	"kmercmp/internal/report"
	"kmercmp/pkg/api"
)

// ToAPIReport converts a domain Report to the stable wire schema (v1).
func ToAPIReport(r report.Report) api.ReportV1 {
	return api.ReportV1{
		K:               r.K,
		Prefix:          r.Prefix,
		SharedUnique:    r.Shared.Unique,
		SharedRedundant: r.Shared.Redundant,
		Files: []api.FileReportV1{
			toAPIFile(r, r.Target, RoleTarget),
			toAPIFile(r, r.Reference, RoleReference),
		},
	}
}

func toAPIFile(r report.Report, f report.File, role string) api.FileReportV1 {
	return api.FileReportV1{
		Path:                  f.Path,
		Role:                  role,
		Unique:                f.Stats.Unique,
		Redundant:             f.Stats.Redundant,
		IntersectionUniquePct: round2(r.SharedUniquePct(f)),
		IntersectionPct:       round2(r.SharedRedundantPct(f)),
		Records:               f.Info.Records,
		Skipped:               f.Info.Skipped,
		Short:                 f.Info.Short,
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// WriteJSON writes the report as a single indented JSON document.
func WriteJSON(w io.Writer, r report.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPIReport(r))
}
