package scanner

import (
	"sort"

	"github.com/rowhound/rowhound/detector"
)

// Report maps file paths to their findings. Only files with at least one
// finding are present. Errors carries per-file failures that did not stop
// the scan. A Report is read-only once the scan that built it returns.
type Report struct {
	Files  map[string][]detector.Finding
	Errors []*ParseError
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{Files: make(map[string][]detector.Finding)}
}

// Paths returns the file paths present in the report, sorted, so output
// is deterministic for a given filesystem state.
func (r *Report) Paths() []string {
	paths := make([]string, 0, len(r.Files))
	for path := range r.Files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// TotalFindings returns the finding count across all files.
func (r *Report) TotalFindings() int {
	total := 0
	for _, findings := range r.Files {
		total += len(findings)
	}
	return total
}

func (r *Report) add(path string, findings []detector.Finding) {
	if len(findings) > 0 {
		r.Files[path] = findings
	}
}

func (r *Report) sortErrors() {
	sort.Slice(r.Errors, func(i, j int) bool {
		return r.Errors[i].Path < r.Errors[j].Path
	})
}
