package scenario

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"

	"hexen/internal/diagnostics"
)

// TextReporter prints one line per scenario plus a final summary,
// colored with ANSI escapes when Color is set.
type TextReporter struct {
	Color bool
}

func (r *TextReporter) ScenarioPassed(res Result) {
	fmt.Printf("%s %s (%v)\n", r.symbol("✓", 32), res.Scenario, res.Duration)
}

func (r *TextReporter) ScenarioFailed(res Result) {
	fmt.Printf("%s %s (%v)\n", r.symbol("✗", 31), res.Scenario, res.Duration)
	fmt.Printf("    %s\n", res.Detail)
}

func (r *TextReporter) Summary(stats Stats) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Total: %d  Passed: %d  Failed: %d  Time: %v\n",
		stats.Total, stats.Passed, stats.Failed, stats.TotalTime)
	if stats.Failed == 0 {
		fmt.Println(r.colorize("all scenarios passed", 32))
	} else {
		fmt.Println(r.colorize("some scenarios failed", 31))
	}
}

func (r *TextReporter) symbol(sym string, color int) string {
	return r.colorize(sym, color)
}

func (r *TextReporter) colorize(s string, color int) string {
	if !r.Color {
		return s
	}
	return fmt.Sprintf("\033[%dm%s\033[0m", color, s)
}

// JSONReporter accumulates results and emits one JSON document at
// Summary time, the shape a CI job would consume.
type JSONReporter struct {
	results []jsonResult
}

type jsonResult struct {
	Scenario string   `json:"scenario"`
	Passed   bool     `json:"passed"`
	Want     []string `json:"want"`
	Got      []string `json:"got"`
	Detail   string   `json:"detail,omitempty"`
}

type jsonSummary struct {
	Results []jsonResult `json:"results"`
	Total   int          `json:"total"`
	Passed  int          `json:"passed"`
	Failed  int          `json:"failed"`
}

func (r *JSONReporter) ScenarioPassed(res Result) { r.results = append(r.results, toJSONResult(res)) }
func (r *JSONReporter) ScenarioFailed(res Result) { r.results = append(r.results, toJSONResult(res)) }

func (r *JSONReporter) Summary(stats Stats) {
	summary := jsonSummary{
		Results: r.results,
		Total:   stats.Total,
		Passed:  stats.Passed,
		Failed:  stats.Failed,
	}
	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		fmt.Printf("error generating JSON output: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

func toJSONResult(res Result) jsonResult {
	return jsonResult{
		Scenario: res.Scenario,
		Passed:   res.Passed,
		Want:     codeStrings(res.Want),
		Got:      codeStrings(res.Got),
		Detail:   res.Detail,
	}
}

func codeStrings(codes []diagnostics.Code) []string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = string(c)
	}
	return out
}

// JUnitReporter emits JUnit XML, the format CI dashboards outside the
// Go ecosystem tend to expect.
type JUnitReporter struct {
	cases []junitTestCase
}

type junitTestSuites struct {
	XMLName xml.Name        `xml:"testsuites"`
	Suite   junitTestSuite  `xml:"testsuite"`
}

type junitTestSuite struct {
	XMLName  xml.Name         `xml:"testsuite"`
	Name     string           `xml:"name,attr"`
	Tests    int              `xml:"tests,attr"`
	Failures int              `xml:"failures,attr"`
	Cases    []junitTestCase  `xml:"testcase"`
}

type junitTestCase struct {
	XMLName xml.Name      `xml:"testcase"`
	Name    string        `xml:"name,attr"`
	Failure *junitFailure `xml:"failure,omitempty"`
}

type junitFailure struct {
	Message string `xml:"message,attr"`
}

func (r *JUnitReporter) ScenarioPassed(res Result) {
	r.cases = append(r.cases, junitTestCase{Name: res.Scenario})
}

func (r *JUnitReporter) ScenarioFailed(res Result) {
	r.cases = append(r.cases, junitTestCase{
		Name:    res.Scenario,
		Failure: &junitFailure{Message: res.Detail},
	})
}

func (r *JUnitReporter) Summary(stats Stats) {
	suites := junitTestSuites{
		Suite: junitTestSuite{
			Name:     "hexen-semcheck",
			Tests:    stats.Total,
			Failures: stats.Failed,
			Cases:    r.cases,
		},
	}
	out, err := xml.MarshalIndent(suites, "", "  ")
	if err != nil {
		fmt.Printf("error generating JUnit XML output: %v\n", err)
		return
	}
	fmt.Println(xml.Header + string(out))
}
