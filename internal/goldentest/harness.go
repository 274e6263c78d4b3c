package goldentest

import (
	"fmt"
	"io"
	"regexp"
)

// Config holds the configuration for a test run.
type Config struct {
	TestPaths   []string
	NamePattern string // Go regex pattern to filter test names
	Output      io.Writer
	ErrOutput   io.Writer
}

func matchesFilter(cfg Config, name string) (bool, error) {
	if cfg.NamePattern == "" {
		return true, nil
	}
	return regexp.MatchString(cfg.NamePattern, name)
}

// List prints every matching case name, one per line. Returns 0 on
// success, 1 on error.
func List(cfg Config) int {
	cases, err := CollectCases(cfg.TestPaths)
	if err != nil {
		fmt.Fprintf(cfg.ErrOutput, "error: %v\n", err)
		return 1
	}
	if len(cases) == 0 {
		fmt.Fprintln(cfg.ErrOutput, "error: no test files found")
		return 1
	}
	for _, c := range cases {
		matches, err := matchesFilter(cfg, c.Name)
		if err != nil {
			fmt.Fprintf(cfg.ErrOutput, "error: invalid pattern: %v\n", err)
			return 1
		}
		if matches {
			fmt.Fprintln(cfg.Output, c.Name)
		}
	}
	return 0
}

// Run executes every matching case and reports pass/fail. Returns 0 if
// every case passed, 1 otherwise.
func Run(cfg Config) int {
	cases, err := CollectCases(cfg.TestPaths)
	if err != nil {
		fmt.Fprintf(cfg.ErrOutput, "error: %v\n", err)
		return 1
	}
	if len(cases) == 0 {
		fmt.Fprintln(cfg.ErrOutput, "error: no test files found")
		return 1
	}

	var filtered []Case
	for _, c := range cases {
		matches, err := matchesFilter(cfg, c.Name)
		if err != nil {
			fmt.Fprintf(cfg.ErrOutput, "error: invalid pattern: %v\n", err)
			return 1
		}
		if matches {
			filtered = append(filtered, c)
		}
	}

	runner := NewRunner()
	reporter := NewReporter(cfg.Output)
	results := runner.RunAll(filtered)
	for _, result := range results {
		reporter.ReportResult(result)
	}

	summary := Summarize(results)
	reporter.ReportSummary(summary)

	if summary.Failed > 0 {
		return 1
	}
	return 0
}
