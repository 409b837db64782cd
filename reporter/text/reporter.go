package text

import (
	"fmt"
	"io"

	"github.com/rowhound/rowhound/detector"
	"github.com/rowhound/rowhound/scanner"
)

// Reporter renders a scan report as human-readable text.
type Reporter struct {
	w           io.Writer
	summaryOnly bool
	showDetails bool
}

// NewReporter creates a new text reporter writing to w.
func NewReporter(w io.Writer, summaryOnly, showDetails bool) *Reporter {
	return &Reporter{
		w:           w,
		summaryOnly: summaryOnly,
		showDetails: showDetails,
	}
}

// Report writes the report: per-file findings with a legend, or per-file
// counts when summary-only is set.
func (r *Reporter) Report(report *scanner.Report) error {
	if len(report.Files) == 0 {
		_, err := fmt.Fprintln(r.w, "no migration-risk patterns found")
		return err
	}

	if r.summaryOnly {
		return r.writeSummary(report)
	}
	return r.writeDetails(report)
}

func (r *Reporter) writeSummary(report *scanner.Report) error {
	fmt.Fprintf(r.w, "found %d patterns in %d files\n",
		report.TotalFindings(), len(report.Files))
	for _, path := range report.Paths() {
		fmt.Fprintf(r.w, "  %s: %d patterns\n", path, len(report.Files[path]))
	}
	return nil
}

func (r *Reporter) writeDetails(report *scanner.Report) error {
	fmt.Fprintf(r.w, "found %d potential issues in %d files:\n\n",
		report.TotalFindings(), len(report.Files))

	for _, path := range report.Paths() {
		fmt.Fprintf(r.w, "%s:\n", path)
		for _, f := range report.Files[path] {
			fmt.Fprintf(r.w, "  [%s] line %d: %s (%s)\n",
				Severity(f.Category), f.Line, f.Category, f.Comparison)
			if r.showDetails {
				fmt.Fprintf(r.w, "      code: %s\n", f.Code)
				fmt.Fprintf(r.w, "      arg:  %s\n", f.Arg)
			}
		}
		fmt.Fprintln(r.w)
	}

	r.writeLegend()
	return nil
}

func (r *Reporter) writeLegend() {
	fmt.Fprintln(r.w, "summary:")
	fmt.Fprintf(r.w, "  [high] %s: Query in in_() - needs .scalar_subquery()\n", detector.CategoryDirectQuery)
	fmt.Fprintf(r.w, "  [high] %s: Row object in comparison - needs .scalar() or [0]\n", detector.CategoryRowResult)
	fmt.Fprintf(r.w, "  [warn] %s / %s: name suggests a query, needs investigation\n", detector.CategoryQueryVariable, detector.CategoryQueryAttribute)
	fmt.Fprintf(r.w, "  [low]  %s / %s: name suggests a Row object\n", detector.CategoryRowVariable, detector.CategoryRowAttribute)
	fmt.Fprintf(r.w, "  [info] %s: already has a subquery guard - check for warnings\n", detector.CategorySubqueryGuarded)
}

// Severity maps a category to the confidence tag shown in text output.
func Severity(c detector.Category) string {
	switch c {
	case detector.CategoryDirectQuery, detector.CategoryRowResult:
		return "high"
	case detector.CategoryQueryVariable, detector.CategoryQueryAttribute:
		return "warn"
	case detector.CategoryRowVariable, detector.CategoryRowAttribute:
		return "low"
	case detector.CategorySubqueryGuarded:
		return "info"
	default:
		return "unknown"
	}
}
