package goldentest

import (
	"fmt"
	"io"
)

// Reporter prints Results as they come in, plus a final summary.
type Reporter struct {
	Out io.Writer
}

// NewReporter creates a reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{Out: out}
}

// ReportResult prints the outcome of a single case.
func (r *Reporter) ReportResult(result Result) {
	if result.Passed {
		fmt.Fprintf(r.Out, "PASS: %s\n", result.Case.Name)
		return
	}
	fmt.Fprintf(r.Out, "FAIL: %s\n", result.Case.Name)
	for _, failure := range result.Failures {
		fmt.Fprintf(r.Out, "  %s\n", failure)
	}
}

// ReportSummary prints the final tally.
func (r *Reporter) ReportSummary(summary Summary) {
	fmt.Fprintf(r.Out, "\n%d tests, %d passed, %d failed\n", summary.Total, summary.Passed, summary.Failed)
}
