// pkg/api/report_v1.go
package api

// ReportV1 is the stable JSON schema for a comparison report.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	K               int            `json:"k"`
	Prefix          string         `json:"prefix"`
	SharedUnique    int            `json:"shared_unique"`
	SharedRedundant uint64         `json:"shared_redundant"`
	Files           []FileReportV1 `json:"files"`
}

// FileReportV1 describes one input. Percentages are of this file's own
// totals and are 0 for an empty index.
type FileReportV1 struct {
	Path                  string  `json:"path"`
	Role                  string  `json:"role"` // "target" | "reference"
	Unique                int     `json:"unique"`
	Redundant             uint64  `json:"redundant"`
	IntersectionUniquePct float64 `json:"intersection_unique_pct"`
	IntersectionPct       float64 `json:"intersection_pct"`
	Records               int     `json:"records"`
	Skipped               int     `json:"skipped,omitempty"`
	Short                 int     `json:"short,omitempty"`
}
