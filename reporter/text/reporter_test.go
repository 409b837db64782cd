package text

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rowhound/rowhound/detector"
	"github.com/rowhound/rowhound/scanner"
)

func sampleReport() *scanner.Report {
	report := scanner.NewReport()
	report.Files["app/models.py"] = []detector.Finding{
		{
			Line:       12,
			Code:       "a.in_(session.query(X).filter(Y))",
			Category:   detector.CategoryDirectQuery,
			Arg:        "session.query(X).filter(Y)",
			Comparison: detector.MarkerMembership,
		},
		{
			Line:       40,
			Code:       "x == some_row",
			Category:   detector.CategoryRowVariable,
			Arg:        "some_row",
			Comparison: "==",
		},
	}
	report.Files["app/views.py"] = []detector.Finding{
		{
			Line:       7,
			Code:       "a.in_(my_query)",
			Category:   detector.CategoryQueryVariable,
			Arg:        "my_query",
			Comparison: detector.MarkerMembership,
		},
	}
	return report
}

func TestReporter_Report(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := NewReporter(&buf, false, true)

	if err := r.Report(sampleReport()); err != nil {
		t.Fatalf("Report() error = %v, want nil", err)
	}
	out := buf.String()

	for _, want := range []string{
		"found 3 potential issues in 2 files:",
		"app/models.py:",
		"app/views.py:",
		"[high] line 12: direct-query-in-clause (in_or_notin_)",
		"[low]  ", // legend severity column
		"code: a.in_(session.query(X).filter(Y))",
		"arg:  session.query(X).filter(Y)",
		"summary:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Sorted path order.
	if strings.Index(out, "app/models.py") > strings.Index(out, "app/views.py") {
		t.Error("paths not in sorted order")
	}
}

func TestReporter_NoDetails(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := NewReporter(&buf, false, false)

	if err := r.Report(sampleReport()); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "code:") {
		t.Error("output contains code snippets with details disabled")
	}
}

func TestReporter_SummaryOnly(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := NewReporter(&buf, true, true)

	if err := r.Report(sampleReport()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.Contains(out, "found 3 patterns in 2 files") {
		t.Errorf("summary header missing:\n%s", out)
	}
	if !strings.Contains(out, "app/models.py: 2 patterns") {
		t.Errorf("per-file count missing:\n%s", out)
	}
	if strings.Contains(out, "line 12") {
		t.Error("summary-only output contains individual findings")
	}
}

func TestReporter_EmptyReport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := NewReporter(&buf, false, true)

	if err := r.Report(scanner.NewReport()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "no migration-risk patterns found") {
		t.Errorf("empty-report message missing:\n%s", buf.String())
	}
}

func TestSeverity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category detector.Category
		want     string
	}{
		{detector.CategoryDirectQuery, "high"},
		{detector.CategoryRowResult, "high"},
		{detector.CategoryQueryVariable, "warn"},
		{detector.CategoryQueryAttribute, "warn"},
		{detector.CategoryRowVariable, "low"},
		{detector.CategoryRowAttribute, "low"},
		{detector.CategorySubqueryGuarded, "info"},
		{detector.Category("bogus"), "unknown"},
	}

	for _, tt := range tests {
		if got := Severity(tt.category); got != tt.want {
			t.Errorf("Severity(%q) = %q, want %q", tt.category, got, tt.want)
		}
	}
}
