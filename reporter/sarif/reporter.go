package sarif

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/rowhound/rowhound/detector"
	"github.com/rowhound/rowhound/scanner"
)

// Version of rowhound (exported for build-time injection)
var Version = "0.1.0"

// Reporter builds and outputs SARIF documents from a scan report.
type Reporter struct {
	writer  io.Writer
	version string
}

// NewReporter creates a SARIF reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{
		writer:  w,
		version: Version, // Capture version at creation time
	}
}

// Report converts the scan report to SARIF and writes it out.
func (r *Reporter) Report(report *scanner.Report) error {
	doc := r.buildDocument(report)
	return r.writeDocument(doc)
}

// buildDocument creates a SARIF document from the scan report
func (r *Reporter) buildDocument(report *scanner.Report) *Document {
	return &Document{
		Version: "2.1.0",
		Schema:  "https://docs.oasis-open.org/sarif/sarif/v2.1.0/errata01/os/schemas/sarif-schema-2.1.0.json",
		Runs: []Run{
			{
				Tool:              r.buildTool(),
				Results:           r.buildResults(report),
				AutomationDetails: &AutomationDetails{ID: "rowhound/scan"},
			},
		},
	}
}

// buildTool creates tool descriptor
func (r *Reporter) buildTool() Tool {
	version := r.version
	if version == "" {
		version = "dev"
	}

	return Tool{
		Driver: Driver{
			Name:            "rowhound",
			FullName:        "Rowhound SQLAlchemy Migration Scanner",
			InformationURI:  "https://github.com/rowhound/rowhound",
			Version:         version,
			SemanticVersion: version,
			Rules:           BuildRules(),
		},
	}
}

// buildResults converts findings to SARIF results in sorted-path order so
// repeated scans produce byte-identical documents.
func (r *Reporter) buildResults(report *scanner.Report) []Result {
	results := make([]Result, 0, report.TotalFindings())
	for _, path := range report.Paths() {
		for _, f := range report.Files[path] {
			results = append(results, r.buildResult(path, f))
		}
	}
	return results
}

// buildResult converts a single finding to a SARIF result
func (r *Reporter) buildResult(path string, f detector.Finding) Result {
	uri := filepath.ToSlash(path)

	return Result{
		RuleID: string(f.Category),
		Message: Message{
			Text: fmt.Sprintf("%s (%s): %s", f.Category, f.Comparison, f.Code),
		},
		Locations: []Location{
			{
				PhysicalLocation: PhysicalLocation{
					ArtifactLocation: ArtifactLocation{
						URI:       uri,
						URIBaseID: "%SRCROOT%",
					},
					Region: Region{
						StartLine: f.Line,
						Snippet:   &Snippet{Text: f.Code},
					},
				},
			},
		},
		Level:               Level(f.Category),
		PartialFingerprints: r.buildFingerprints(uri, f.Line, string(f.Category)),
	}
}

// buildFingerprints generates stable fingerprints for result matching
func (r *Reporter) buildFingerprints(filePath string, line int, ruleID string) map[string]string {
	// Same issue at the same location gets the same fingerprint
	fingerprint := fmt.Sprintf("%s:%d:%s", filePath, line, ruleID)
	hash := sha256.Sum256([]byte(fingerprint))
	primaryLocationHash := fmt.Sprintf("%x", hash[:16]) // Use first 16 bytes

	return map[string]string{
		"primaryLocationLineHash": primaryLocationHash,
	}
}

// Level maps a category to the SARIF severity level. Findings are
// advisory, so even the structural matches report as warnings.
func Level(c detector.Category) string {
	switch c {
	case detector.CategoryDirectQuery, detector.CategoryRowResult:
		return "warning"
	default:
		return "note"
	}
}

// writeDocument serializes and writes SARIF JSON
func (r *Reporter) writeDocument(doc *Document) error {
	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ") // Pretty print
	return encoder.Encode(doc)
}
