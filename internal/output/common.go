package output

import "fmt"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Roles of the two inputs, in report order.
const (
	RoleTarget    = "target"
	RoleReference = "reference"
)

// TSVHeader returns the header row of the text report for k-mers of size k.
func TSVHeader(k int) string {
	return fmt.Sprintf("(%d-mers)\tUnique\tRedundant\tIntersection_unique\tIntersection", k)
}
