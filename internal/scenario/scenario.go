// Package scenario runs short Hexen source snippets through the full
// lexer/parser/analyzer pipeline and checks the diagnostic codes that
// come out against an expected set. It is the Go-level analogue of
// the teacher's script-level test runner: a Scenario stands in for a
// TestCase, and a Runner drives a batch of them through one or more
// Reporters instead of a Sentra VM.
package scenario

import (
	"fmt"
	"time"

	"github.com/kr/pretty"

	"hexen/internal/analyzer"
	"hexen/internal/diagnostics"
	"hexen/internal/lexer"
	"hexen/internal/parser"
)

// Scenario is one semantic-analysis fixture: a snippet of Hexen source
// and the diagnostic codes a correct analyzer run must produce, in any
// order. A nil or empty Want means the snippet must analyze clean.
type Scenario struct {
	Name   string
	Source string
	Want   []diagnostics.Code
}

// Result is one Scenario's outcome.
type Result struct {
	Scenario string
	Passed   bool
	Want     []diagnostics.Code
	Got      []diagnostics.Code
	Detail   string // populated on failure: a human-readable diff
	Duration time.Duration
}

// Stats summarizes a Runner.Run call the way the teacher's TestStats
// summarized a suite.
type Stats struct {
	Total     int
	Passed    int
	Failed    int
	TotalTime time.Duration
}

// Reporter receives a Runner's results as they're produced. Grounded
// on the teacher's TestReporter interface, narrowed to the one
// granularity scenario running actually needs: no suites, no
// before/after hooks, just results and a summary.
type Reporter interface {
	ScenarioPassed(Result)
	ScenarioFailed(Result)
	Summary(Stats)
}

// Runner executes a batch of Scenarios against a fresh analyzer.New()
// each time, so one scenario's symbol table never leaks into another.
type Runner struct {
	Scenarios []Scenario
	Reporter  Reporter
}

func (r *Runner) Run() Stats {
	start := time.Now()
	stats := Stats{Total: len(r.Scenarios)}

	for _, s := range r.Scenarios {
		result := runOne(s)
		if result.Passed {
			stats.Passed++
			if r.Reporter != nil {
				r.Reporter.ScenarioPassed(result)
			}
		} else {
			stats.Failed++
			if r.Reporter != nil {
				r.Reporter.ScenarioFailed(result)
			}
		}
	}

	stats.TotalTime = time.Since(start)
	if r.Reporter != nil {
		r.Reporter.Summary(stats)
	}
	return stats
}

func runOne(s Scenario) Result {
	start := time.Now()

	scan := lexer.NewScanner(s.Source)
	tokens := scan.ScanTokens()

	p := parser.NewParser(tokens)
	prog := p.Parse()

	var got []diagnostics.Code
	if len(scan.Errors) > 0 || len(p.Errors) > 0 {
		got = []diagnostics.Code{diagnostics.InternalError}
	} else {
		a := analyzer.New()
		for _, d := range a.Analyze(prog) {
			got = append(got, d.Code)
		}
	}

	passed := sameCodes(s.Want, got)
	result := Result{
		Scenario: s.Name,
		Passed:   passed,
		Want:     s.Want,
		Got:      got,
		Duration: time.Since(start),
	}
	if !passed {
		result.Detail = diffCodes(s.Want, got)
	}
	return result
}

// sameCodes compares two code multisets ignoring order.
func sameCodes(want, got []diagnostics.Code) bool {
	if len(want) != len(got) {
		return false
	}
	remaining := make([]diagnostics.Code, len(got))
	copy(remaining, got)
	for _, w := range want {
		found := -1
		for i, g := range remaining {
			if g == w {
				found = i
				break
			}
		}
		if found == -1 {
			return false
		}
		remaining = append(remaining[:found], remaining[found+1:]...)
	}
	return true
}

// diffCodes renders a %#v-style diff of the two multisets via kr/pretty
// so a failing scenario's output lines up the same way a failed
// assertion would in the teacher's own test output.
func diffCodes(want, got []diagnostics.Code) string {
	return fmt.Sprintf("want %# v, got %# v", pretty.Formatter(want), pretty.Formatter(got))
}
