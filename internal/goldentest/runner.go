package goldentest

import (
	"fmt"
	"strings"

	"github.com/picol-lang/picol"
)

// Result holds the outcome of running a single Case.
type Result struct {
	Case     Case
	Passed   bool
	GotCode  picol.Code
	GotResult string
	GotStdout string
	Failures []string
}

// Runner executes Cases against a fresh Interp per case.
type Runner struct{}

// NewRunner creates a Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// RunAll runs every case and returns its results in order.
func (r *Runner) RunAll(cases []Case) []Result {
	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		results = append(results, r.RunOne(c))
	}
	return results
}

// RunOne evaluates one Case's script in a fresh interpreter and compares
// the outcome against its expectations.
func (r *Runner) RunOne(c Case) Result {
	res := Result{Case: c, Passed: true}

	interp := picol.New()
	var stdout strings.Builder
	interp.Stdout = &stdout

	code := interp.Eval(c.Script)
	res.GotCode = code
	res.GotResult = interp.Result
	res.GotStdout = stdout.String()

	if res.GotCode != c.WantCode {
		res.Passed = false
		res.Failures = append(res.Failures,
			fmt.Sprintf("return mismatch: expected %s, got %s", c.WantCode, res.GotCode))
	}
	if c.WantResult != res.GotResult {
		res.Passed = false
		res.Failures = append(res.Failures,
			fmt.Sprintf("result mismatch:\n  expected: %q\n  actual:   %q", c.WantResult, res.GotResult))
	}
	if c.stdoutSet && c.WantStdout != res.GotStdout {
		res.Passed = false
		res.Failures = append(res.Failures,
			fmt.Sprintf("stdout mismatch:\n  expected: %q\n  actual:   %q", c.WantStdout, res.GotStdout))
	}
	return res
}

// Summary holds aggregate statistics about a test run.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// Summarize calculates summary statistics from a set of results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}
