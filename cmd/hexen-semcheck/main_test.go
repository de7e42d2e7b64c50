package main

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// TestMain lets `go test` re-exec this binary as the `hexen-semcheck`
// command inside each testscript run, the standard go-internal
// pattern for testing a CLI end-to-end without a separate build step.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"hexen-semcheck": mainExit,
	}))
}

func mainExit() int {
	return run(os.Args[1:])
}
