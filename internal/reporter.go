package internal

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Phase identifies which pipeline stage raised a Diagnostic.
type Phase int

const (
	// Lexical diagnostics come from the Lexer.
	Lexical Phase = iota
	// Syntax diagnostics come from the Parser.
	Syntax
	// Runtime diagnostics come from the Resolver (static errors are tagged
	// Runtime by convention, see SPEC_FULL.md §9) and the Evaluator.
	Runtime
)

func (p Phase) String() string {
	switch p {
	case Lexical:
		return "Lexical"
	case Syntax:
		return "Syntax"
	case Runtime:
		return "Runtime"
	default:
		return "Unknown"
	}
}

// Diagnostic is a single reported error, pinned to a source location.
type Diagnostic struct {
	Phase   Phase
	Message string
	Line    int
	Column  int
	Lexeme  string
}

// Error renders the diagnostic in the public format described by
// SPEC_FULL.md §6: "[<Phase> Error] on line <L> at column <C>: <message>",
// plus an "(at '<lexeme>')" suffix when a lexeme is attached.
func (d Diagnostic) Error() string {
	msg := fmt.Sprintf("[%s Error] on line %d at column %d: %s", d.Phase, d.Line, d.Column, d.Message)
	if d.Lexeme != "" {
		msg += fmt.Sprintf(" (at '%s')", d.Lexeme)
	}
	return msg
}

// Reporter collects diagnostics and output lines across a single run of
// the pipeline. It is shared by the Lexer, Parser, Resolver and Evaluator.
type Reporter struct {
	diagnostics []Diagnostic
	output      []string

	// Log receives a structured mirror of every diagnostic. Defaults to
	// logrus's standard logger; tests may swap it for a silent one.
	Log *logrus.Logger
}

// NewReporter returns a Reporter with a logrus logger wired in.
func NewReporter() *Reporter {
	return &Reporter{Log: logrus.StandardLogger()}
}

func (r *Reporter) report(d Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
	if r.Log == nil {
		return
	}
	fields := logrus.Fields{
		"phase":  d.Phase.String(),
		"line":   d.Line,
		"column": d.Column,
	}
	if d.Lexeme != "" {
		fields["lexeme"] = d.Lexeme
	}
	entry := r.Log.WithFields(fields)
	if d.Phase == Runtime {
		entry.Error(d.Message)
	} else {
		entry.Warn(d.Message)
	}
}

// ReportLexical records a lexical-phase diagnostic.
func (r *Reporter) ReportLexical(line, column int, message string) {
	r.report(Diagnostic{Phase: Lexical, Message: message, Line: line, Column: column})
}

// ReportSyntax records a syntax-phase diagnostic, optionally pinned to a token.
func (r *Reporter) ReportSyntax(tok Token, message string) {
	r.report(Diagnostic{Phase: Syntax, Message: message, Line: tok.Line, Column: tok.Column, Lexeme: tok.Lexeme})
}

// ReportRuntime records a runtime-phase diagnostic (also used for resolver
// static errors, which are tagged Runtime per SPEC_FULL.md §9).
func (r *Reporter) ReportRuntime(tok Token, message string) {
	r.report(Diagnostic{Phase: Runtime, Message: message, Line: tok.Line, Column: tok.Column, Lexeme: tok.Lexeme})
}

// HasErrors reports whether any diagnostic has been recorded.
func (r *Reporter) HasErrors() bool {
	return len(r.diagnostics) > 0
}

// Diagnostics returns every diagnostic recorded so far.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diagnostics
}

// Print appends a line to the output log, the sink for the language's
// print statement.
func (r *Reporter) Print(line string) {
	r.output = append(r.output, line)
}

// Output returns every line printed so far.
func (r *Reporter) Output() []string {
	return r.output
}
