// Package diag implements the error taxonomy and diagnostic formatting
// for the basis compiler front end.
//
// Every stage surfaces its error to the top-level driver with a source
// location; no stage attempts recovery beyond the combinator engine's
// own backtracking, which is a success mechanism, not an error-recovery
// one.
package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/basis-lang/basis/internal/token"
)

// OptionError reports malformed or missing command-line options.
type OptionError struct {
	Message string
}

func (e *OptionError) Error() string { return e.Message }

// FileOpenError reports that the input file could not be opened.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("cannot open %s: %v", e.Path, e.Err)
}

func (e *FileOpenError) Unwrap() error { return e.Err }

// LexError reports a malformed token.
type LexError struct {
	Pos     token.Position
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at line %d column %d", e.Message, e.Pos.Line, e.Pos.Column)
}

// ParseError reports that the top-level grammar combinator failed. It
// carries the furthest position any combinator reached, which is the
// only information the driver needs to format its diagnostic.
type ParseError struct {
	// Furthest is the token the parser failed furthest into, or nil if
	// the furthest position was end-of-input.
	Furthest *token.Token
}

func (e *ParseError) Error() string {
	if e.Furthest == nil {
		return "Unexpected end of input"
	}
	msg := fmt.Sprintf("Syntax error at (%s) unexpected token: %s", e.Furthest.Pos, e.Furthest.Text)
	if e.Furthest.Bound != nil {
		msg += fmt.Sprintf(" -> (%s) %s", e.Furthest.Bound.Pos, e.Furthest.Bound.Text)
	}
	return msg
}

// BuildError is reserved for downstream stages; the AST builder itself
// is purely structural and never produces one.
type BuildError struct {
	Message string
}

func (e *BuildError) Error() string { return e.Message }

// Report pairs an error with the source text and file name it came
// from, so the CLI can render a source line and a caret under the
// offending column.
type Report struct {
	File    string
	Source  string
	Pos     token.Position
	Message string
}

// NewReport builds a Report from any of this package's position-carrying
// error types. Errors with no position (e.g. OptionError) render without
// a source excerpt.
func NewReport(file, source string, err error) Report {
	r := Report{File: file, Source: source, Message: err.Error()}
	switch e := err.(type) {
	case *LexError:
		r.Pos = e.Pos
	case *ParseError:
		if e.Furthest != nil {
			r.Pos = e.Furthest.Pos
		}
	}
	return r
}

// Format renders the report with a source line and caret, optionally in
// color, using github.com/fatih/color.
func (r Report) Format(useColor bool) string {
	var sb strings.Builder

	bold := color.New(color.Bold)
	red := color.New(color.FgRed, color.Bold)
	if !useColor {
		bold.DisableColor()
		red.DisableColor()
	}

	if r.File != "" {
		sb.WriteString(bold.Sprintf("%s: ", r.File))
	}
	sb.WriteString(r.Message)
	sb.WriteString("\n")

	if r.Pos.Line == 0 {
		return sb.String()
	}
	line := sourceLine(r.Source, r.Pos.Line)
	if line == "" {
		return sb.String()
	}
	prefix := fmt.Sprintf("%4d | ", r.Pos.Line)
	sb.WriteString(prefix)
	sb.WriteString(line)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", len(prefix)+r.Pos.Column-1))
	sb.WriteString(red.Sprint("^"))
	sb.WriteString("\n")
	return sb.String()
}

func sourceLine(source string, line int) string {
	n := 1
	start := 0
	for i := 0; i < len(source); i++ {
		if n == line {
			end := strings.IndexByte(source[i:], '\n')
			if end < 0 {
				return source[i:]
			}
			return source[i : i+end]
		}
		if source[i] == '\n' {
			n++
			start = i + 1
		}
	}
	if n == line {
		return source[start:]
	}
	return ""
}
