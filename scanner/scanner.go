package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rowhound/rowhound/detector"
	"github.com/rowhound/rowhound/pyast"
)

// DefaultExtensions returns the extension filter used when none is
// configured.
func DefaultExtensions() map[string]bool {
	return map[string]bool{".py": true}
}

// Scanner drives parse-and-classify over files and directory trees. The
// per-file work is independent, so directory scans run on a bounded
// worker pool.
type Scanner struct {
	rules      *detector.Ruleset
	extensions map[string]bool
	workers    int
	log        *slog.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithRuleset replaces the default classification rules.
func WithRuleset(rules *detector.Ruleset) Option {
	return func(s *Scanner) {
		if rules != nil {
			s.rules = rules
		}
	}
}

// WithExtensions replaces the extension filter for directory scans.
func WithExtensions(exts []string) Option {
	return func(s *Scanner) {
		if len(exts) == 0 {
			return
		}
		set := make(map[string]bool, len(exts))
		for _, ext := range exts {
			if ext != "" {
				set[ext] = true
			}
		}
		s.extensions = set
	}
}

// WithWorkers bounds the number of concurrent file scans. Zero or
// negative means one worker per CPU.
func WithWorkers(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithLogger sets the diagnostic sink. Scans never touch process-global
// logging state; the default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(s *Scanner) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a Scanner with the default rules, the .py extension filter
// and one worker per CPU.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		rules:      detector.DefaultRuleset(),
		extensions: DefaultExtensions(),
		workers:    runtime.NumCPU(),
		log:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScanFile parses one file and returns its findings in traversal order.
// A file that fails to read or parse yields no findings and a
// *ParseError; it never panics on unusual expression shapes.
func (s *Scanner) ScanFile(ctx context.Context, path string) ([]detector.Finding, error) {
	tree, err := pyast.ParseFile(ctx, path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	visitor := detector.NewVisitor(s.rules)
	visitor.Walk(tree)
	return visitor.Findings(), nil
}

// ScanPath scans either a single file or a whole directory tree.
func (s *Scanner) ScanPath(ctx context.Context, path string) (*Report, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewReport(), fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return NewReport(), err
	}
	if info.IsDir() {
		return s.ScanDirectory(ctx, path)
	}

	report := NewReport()
	findings, err := s.ScanFile(ctx, path)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			s.log.Warn("skipping file", "path", path, "error", parseErr.Err)
			report.Errors = append(report.Errors, parseErr)
			return report, nil
		}
		return report, err
	}
	report.add(path, findings)
	return report, nil
}

// ScanDirectory recursively scans every regular file under root whose
// extension is registered and aggregates per-file findings. A missing or
// non-directory root yields an empty report and an error; a file that
// fails to parse is skipped and recorded in Report.Errors.
func (s *Scanner) ScanDirectory(ctx context.Context, root string) (*Report, error) {
	report := NewReport()

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return report, fmt.Errorf("%w: %s", ErrNotFound, root)
		}
		return report, err
	}
	if !info.IsDir() {
		return report, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	paths, err := s.collectFiles(root)
	if err != nil {
		return report, err
	}
	s.log.Debug("scanning directory", "root", root, "files", len(paths), "workers", s.workers)

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, path := range paths {
		path := path // capture range variable
		g.Go(func() error {
			findings, err := s.ScanFile(ctx, path)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				var parseErr *ParseError
				if errors.As(err, &parseErr) {
					s.log.Warn("skipping file", "path", path, "error", parseErr.Err)
					report.Errors = append(report.Errors, parseErr)
					return nil
				}
				return err
			}
			report.add(path, findings)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return report, err
	}
	report.sortErrors()
	return report, nil
}

// collectFiles enumerates matching regular files under root in sorted
// order. Enumeration order is not contractual but must be deterministic.
func (s *Scanner) collectFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if s.extensions[filepath.Ext(path)] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
