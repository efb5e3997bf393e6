// Package diagnostics provides the evaluator's stack-trace and error
// facility: locations, frames, and the ReturnState control-flow sum type.
package diagnostics

import "fmt"

// SourceLocation is either a file position or a static builtin label.
type SourceLocation struct {
	// File is empty for inline/REPL input.
	File   string
	Line   int
	Column int

	// Builtin, when non-empty, overrides File/Line/Column: the location is
	// a static label such as "new" or "do" rather than a source position.
	Builtin string
}

// AtBuiltin returns a location for a label not tied to any source file.
func AtBuiltin(label string) SourceLocation {
	return SourceLocation{Builtin: label}
}

// AtSource returns a location tied to a file position. file may be empty.
func AtSource(file string, line, column int) SourceLocation {
	return SourceLocation{File: file, Line: line, Column: column}
}

func (l SourceLocation) String() string {
	if l.Builtin != "" {
		return l.Builtin
	}
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}
