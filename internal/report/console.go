package report

import (
	"fmt"
	"io"
	"strings"

	"csvqc/internal/quality"
)

// ConsoleSummary prints the completion banner with the headline counts and
// the report location.
func ConsoleSummary(w io.Writer, res *quality.Result, outPath string) {
	line := strings.Repeat("=", 50)
	fmt.Fprintln(w)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "DATA QUALITY CHECK COMPLETE")
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "Total rows: %d\n", res.TotalRows)
	fmt.Fprintf(w, "Total columns: %d\n", res.TotalColumns)
	fmt.Fprintf(w, "Missing value issues: %d\n", len(res.MissingValues))
	fmt.Fprintf(w, "Duplicate rows: %d\n", res.Duplicates.Rows)
	fmt.Fprintf(w, "Outlier columns: %d\n", len(res.Outliers))
	fmt.Fprintf(w, "\nFull report: %s\n", outPath)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w)
}
