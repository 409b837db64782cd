package reporter

import (
	"fmt"
	"io"
	"os"

	"github.com/rowhound/rowhound/reporter/sarif"
	"github.com/rowhound/rowhound/reporter/text"
	"github.com/rowhound/rowhound/scanner"
)

// Format specifies the output format
type Format string

const (
	FormatText  Format = "text"
	FormatSARIF Format = "sarif"
)

// Reporter is the interface that all reporters must implement
type Reporter interface {
	Report(report *scanner.Report) error
}

// Config configures the reporter
type Config struct {
	Format      Format
	SummaryOnly bool // text: per-file counts only
	ShowDetails bool // text: include code and argument snippets
	Writer      io.Writer
}

// New creates a reporter based on the given configuration
func New(config Config) (Reporter, error) {
	w := config.Writer
	if w == nil {
		w = os.Stdout
	}

	switch config.Format {
	case FormatText, "":
		return text.NewReporter(w, config.SummaryOnly, config.ShowDetails), nil
	case FormatSARIF:
		return sarif.NewReporter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", config.Format)
	}
}
