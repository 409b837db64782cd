package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/rowhound/rowhound/config"
	"github.com/rowhound/rowhound/reporter"
	"github.com/rowhound/rowhound/scanner"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("rowhound", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)

	var (
		format      = flags.String("format", "text", "output format: text or sarif")
		configPath  = flags.String("config", "", "path to configuration file (default .rowhound.yaml)")
		extensions  = flags.String("extensions", "", "comma-separated file extensions to scan (default .py)")
		summaryOnly = flags.Bool("summary-only", false, "show only per-file pattern counts")
		noDetails   = flags.Bool("no-details", false, "hide code and argument snippets")
		workers     = flags.Int("workers", 0, "parallel file scans (0 = number of CPUs)")
		verbose     = flags.Bool("v", false, "enable debug logging")
	)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: rowhound [flags] <file-or-directory>")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return 2
	}
	root := flags.Arg(0)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rowhound: %v\n", err)
		return 2
	}

	opts := []scanner.Option{
		scanner.WithRuleset(cfg.Ruleset()),
		scanner.WithLogger(log),
	}
	if exts := splitExtensions(*extensions); len(exts) > 0 {
		opts = append(opts, scanner.WithExtensions(exts))
	} else if len(cfg.Extensions) > 0 {
		opts = append(opts, scanner.WithExtensions(cfg.Extensions))
	}
	if *workers > 0 {
		opts = append(opts, scanner.WithWorkers(*workers))
	} else if cfg.Workers > 0 {
		opts = append(opts, scanner.WithWorkers(cfg.Workers))
	}

	s := scanner.New(opts...)
	report, err := s.ScanPath(context.Background(), root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rowhound: %v\n", err)
		return 2
	}

	for _, scanErr := range report.Errors {
		fmt.Fprintf(os.Stderr, "rowhound: skipped: %v\n", scanErr)
	}

	rep, err := reporter.New(reporter.Config{
		Format:      reporter.Format(*format),
		SummaryOnly: *summaryOnly,
		ShowDetails: !*noDetails,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "rowhound: %v\n", err)
		return 2
	}
	if err := rep.Report(report); err != nil {
		fmt.Fprintf(os.Stderr, "rowhound: %v\n", err)
		return 2
	}

	if report.TotalFindings() > 0 {
		return 1
	}
	return 0
}

func splitExtensions(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, ext := range strings.Split(s, ",") {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
