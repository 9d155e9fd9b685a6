// Command wisp runs a source file through the interpreter and prints its
// output to standard out and its diagnostics to standard error. Grounded on the teacher's
// cmd/grotsky/main.go entry point, adapted to the Result-returning
// internal.Run surface and colorized per SPEC_FULL.md §2.2.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/labstack/gommon/color"

	"github.com/mliezun/wisp/internal"
)

func main() {
	trace := flag.Bool("trace", false, "log evaluator call sites through the structured logger")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: wisp [-trace] /path/to/source.wisp")
		os.Exit(1)
	}

	source, err := ioutil.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var result internal.Result
	if *trace {
		result = internal.RunTraced(string(source))
	} else {
		result = internal.Run(string(source))
	}

	for _, line := range result.Output {
		fmt.Println(line)
	}

	for _, diagnostic := range result.Errors {
		printDiagnostic(diagnostic)
	}

	if !result.Succeeded {
		os.Exit(1)
	}
}

func printDiagnostic(d internal.Diagnostic) {
	msg := d.Error()
	switch d.Phase {
	case internal.Lexical:
		fmt.Fprintln(os.Stderr, color.Yellow(msg))
	case internal.Syntax:
		fmt.Fprintln(os.Stderr, color.Magenta(msg))
	default:
		fmt.Fprintln(os.Stderr, color.Red(msg))
	}
}
