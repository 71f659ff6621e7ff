package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/dbforge-tools/sprocdiff/internal/cli"
	"github.com/dbforge-tools/sprocdiff/pkg/sprocdiff"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(sprocdiff.ExitPanic)
		}
	}()

	if os.Getenv("SPROCDIFF_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(sprocdiff.ExitCodeForError(err))
	}
}
