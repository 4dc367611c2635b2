package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pgfjr/tex2mml/core/types"
	"github.com/pgfjr/tex2mml/runtime/lexer"
	"github.com/pgfjr/tex2mml/runtime/tables"
)

// ConvertError reports why a formula could not be converted. Position is
// the 0-based byte offset of the offending input.
type ConvertError struct {
	Position   int
	Kind       types.ErrorKind
	Message    string
	Control    string // Offending control sequence, with its backslash
	Suggestion string // "did you mean" hint for unknown control names
	Input      string // Formula the error refers to
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Message, e.Position)
}

// Code returns the stable numeric error code.
func (e *ConvertError) Code() int {
	return e.Kind.Code()
}

// LineColumn returns the 1-based line and column of Position. Columns
// count runes.
func (e *ConvertError) LineColumn() (int, int) {
	pos := min(max(e.Position, 0), len(e.Input))
	line := 1 + strings.Count(e.Input[:pos], "\n")
	lineStart := strings.LastIndexByte(e.Input[:pos], '\n') + 1
	return line, utf8.RuneCountInString(e.Input[lineStart:pos]) + 1
}

// newConvertError builds the error for kind at offset of input.
func newConvertError(input string, offset int, kind types.ErrorKind) *ConvertError {
	err := &ConvertError{
		Position: offset,
		Kind:     kind,
		Message:  tables.Message(kind),
		Input:    input,
	}

	if kind == types.KindUndefinedControlSequence || kind == types.KindControlNameTooLong {
		if name := controlNameAt(input, offset); name != "" {
			err.Control = name
			err.Message += ": " + name
			if match, ok := tables.Suggest(name[1:]); ok && kind == types.KindUndefinedControlSequence {
				err.Suggestion = fmt.Sprintf("did you mean '\\%s'?", match)
			}
		}
	}
	return err
}

// controlNameAt returns the control sequence starting at offset: a
// backslash and either a run of letters and digits or one character.
func controlNameAt(input string, offset int) string {
	if offset < 0 || offset >= len(input) || input[offset] != '\\' {
		return ""
	}
	i := offset + 1
	if i >= len(input) {
		return `\`
	}
	if !lexer.IsLetter(input[i]) {
		_, size := utf8.DecodeRuneInString(input[i:])
		return input[offset : i+size]
	}
	for i < len(input) && (lexer.IsLetter(input[i]) || lexer.IsDigit(input[i])) {
		i++
	}
	return input[offset:i]
}

// ANSI color codes used by ErrorFormatter
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorBlue   = "\033[34m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
)

// ErrorFormatter renders a ConvertError with a source snippet.
type ErrorFormatter struct {
	Source   string // Formula text; defaults to the error's Input
	Filename string // Optional prefix for the location
	Compact  bool   // One-line header instead of the detailed layout
	Color    bool
}

// Format returns the rendered error.
//
// Compact:
//
//	formula.tex:1:1: Undefined control sequence: \badname
//	 1 | \badname
//	   | ^ UNDEFINED_CONTROL_SEQUENCE
//	   did you mean '\bar'?
//
// Detailed:
//
//	Error: Undefined control sequence: \badname
//	  --> formula.tex:1:1
//	   |
//	 1 | \badname
//	   | ^ UNDEFINED_CONTROL_SEQUENCE
//	   |
//	   = Suggestion: did you mean '\bar'?
func (f ErrorFormatter) Format(err *ConvertError) string {
	source := f.Source
	if source == "" {
		source = err.Input
	}
	located := *err
	located.Input = source
	line, column := located.LineColumn()

	location := fmt.Sprintf("%d:%d", line, column)
	if f.Filename != "" {
		location = f.Filename + ":" + location
	}

	var b strings.Builder
	if f.Compact {
		fmt.Fprintf(&b, "%s: %s\n", location, f.paint(err.Message, colorBold))
		f.writeSnippet(&b, source, line, column, err.Kind)
		if err.Suggestion != "" {
			fmt.Fprintf(&b, "   %s\n", f.paint(err.Suggestion, colorYellow))
		}
		return b.String()
	}

	fmt.Fprintf(&b, "%s %s\n", f.paint("Error:", colorRed+colorBold), err.Message)
	fmt.Fprintf(&b, "  %s %s\n", f.paint("-->", colorBlue), location)
	fmt.Fprintf(&b, "   %s\n", f.paint("|", colorBlue))
	f.writeSnippet(&b, source, line, column, err.Kind)
	if err.Suggestion != "" {
		fmt.Fprintf(&b, "   %s\n", f.paint("|", colorBlue))
		fmt.Fprintf(&b, "   %s Suggestion: %s\n", f.paint("=", colorBlue), err.Suggestion)
	}
	return b.String()
}

func (f ErrorFormatter) writeSnippet(b *strings.Builder, source string, line, column int, kind types.ErrorKind) {
	lines := strings.Split(source, "\n")
	if line < 1 || line > len(lines) {
		return
	}
	text := strings.TrimRight(lines[line-1], "\r")
	fmt.Fprintf(b, "%s %s\n", f.paint(fmt.Sprintf("%2d |", line), colorBlue), text)
	fmt.Fprintf(b, "   %s %s%s\n",
		f.paint("|", colorBlue),
		strings.Repeat(" ", column-1),
		f.paint("^ "+kind.String(), colorRed))
}

func (f ErrorFormatter) paint(text, color string) string {
	if !f.Color {
		return text
	}
	return color + text + colorReset
}
