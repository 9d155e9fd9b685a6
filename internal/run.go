package internal

import "github.com/sirupsen/logrus"

// Result is the embedding surface's return value (SPEC_FULL.md §6): whether
// the run succeeded, every diagnostic raised, and every line written by a
// print statement.
type Result struct {
	Succeeded bool
	Errors    []Diagnostic
	Output    []string
}

// Run wires Lexer → Parser → Resolver → Evaluator into the four-phase
// pipeline described in SPEC_FULL.md §2, stopping at the first phase that
// reports an error. Grounded on the teacher's internal/interp.go
// RunSourceWithPrinter wiring, trimmed of module-import support (not part
// of this language).
func Run(source string) Result {
	return run(source, false)
}

// RunTraced is Run with the evaluator's call-site trace logging enabled
// (SPEC_FULL.md §2.2).
func RunTraced(source string) Result {
	return run(source, true)
}

func run(source string, trace bool) Result {
	reporter := NewReporter()
	result := func(succeeded bool) Result {
		return Result{Succeeded: succeeded, Errors: reporter.Diagnostics(), Output: reporter.Output()}
	}

	lexer := NewLexer(source, reporter)
	tokens := lexer.Scan()
	if reporter.HasErrors() {
		return result(false)
	}

	p := newParser(tokens, reporter)
	statements := p.Parse()
	if reporter.HasErrors() {
		return result(false)
	}

	interp := NewInterpreter(reporter)
	interp.Trace = trace
	if trace {
		// Call sites are logged at Debug level, below the logger's default.
		reporter.Log.SetLevel(logrus.DebugLevel)
	}

	res := newResolver(interp, reporter)
	res.resolveStmts(statements)
	if reporter.HasErrors() {
		return result(false)
	}

	return result(interp.Interpret(statements))
}
