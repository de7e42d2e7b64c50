// cmd/hexen-semcheck/main.go
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"hexen/internal/analyzer"
	"hexen/internal/diagnostics"
	"hexen/internal/lexer"
	"hexen/internal/parser"
)

const usage = `hexen-semcheck - run Hexen's semantic analyzer over a source file

Usage:
  hexen-semcheck [-json] <file.hxn>

Flags:
  -json   emit a JSON object (run ID plus a diagnostics array) instead of human-readable text
`

func main() {
	os.Exit(run(os.Args[1:]))
}

// run implements the command and returns an exit code rather than
// calling os.Exit directly, so the testscript harness can invoke it
// in-process.
func run(args []string) int {
	jsonOutput := false
	var filename string
	for _, arg := range args {
		if arg == "-json" {
			jsonOutput = true
			continue
		}
		filename = arg
	}

	if filename == "" {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}

	source, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %v\n", filename, err)
		return 2
	}

	scanner := lexer.NewScanner(string(source))
	tokens := scanner.ScanTokens()
	if len(scanner.Errors) > 0 {
		for _, e := range scanner.Errors {
			fmt.Fprintf(os.Stderr, "%s: lexer error: %s\n", filename, e)
		}
		return 1
	}

	p := parser.NewParser(tokens)
	prog := p.Parse()
	if len(p.Errors) > 0 {
		for _, e := range p.Errors {
			fmt.Fprintf(os.Stderr, "%s: syntax error: %v\n", filename, e)
		}
		return 1
	}

	a := analyzer.New()
	diags := a.Analyze(prog)

	if jsonOutput {
		emitJSON(a.RunID(), diags)
	} else {
		emitText(filename, diags)
	}

	if diags.HasErrors() {
		return 1
	}
	return 0
}

func emitText(filename string, diags diagnostics.List) {
	color := isatty.IsTerminal(os.Stdout.Fd())
	if len(diags) == 0 {
		if color {
			fmt.Printf("\033[32m%s: no diagnostics\033[0m\n", filename)
		} else {
			fmt.Printf("%s: no diagnostics\n", filename)
		}
		return
	}
	for _, d := range diags {
		fmt.Println(d.Error())
	}
	fmt.Fprintf(os.Stderr, "\n%s: %d diagnostic(s)\n", filename, len(diags))
}

type jsonDiagnostic struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

type jsonReport struct {
	RunID       string           `json:"run_id"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
}

func emitJSON(runID string, diags diagnostics.List) {
	out := jsonReport{RunID: runID, Diagnostics: make([]jsonDiagnostic, len(diags))}
	for i, d := range diags {
		out.Diagnostics[i] = jsonDiagnostic{
			Code:    string(d.Code),
			Message: d.Message,
			Hint:    d.Hint,
			Line:    d.Pos.Line,
			Column:  d.Pos.Column,
		}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(out)
}
