package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pgfjr/tex2mml/core/types"
)

func TestErrorFormatterCompact(t *testing.T) {
	source := "a+b\n\\sqr{x}\n"
	err := newConvertError(source, 4, types.KindUndefinedControlSequence)

	formatter := ErrorFormatter{
		Filename: "formula.tex",
		Compact:  true,
		Color:    false,
	}

	output := formatter.Format(err)

	// Expected format:
	// formula.tex:2:1: Undefined control sequence: \sqr
	//  2 | \sqr{x}
	//    | ^ UNDEFINED_CONTROL_SEQUENCE
	//    did you mean '\sqrt'?

	expectedLines := []string{
		`formula.tex:2:1: Undefined control sequence: \sqr`,
		` 2 | \sqr{x}`,
		`   | ^ UNDEFINED_CONTROL_SEQUENCE`,
		`   did you mean '\sqrt'?`,
	}
	assert.Equal(t, expectedLines, strings.Split(strings.TrimRight(output, "\n"), "\n"))
}

func TestErrorFormatterDetailed(t *testing.T) {
	err := newConvertError("x^2_3", 3, types.KindUseSubscriptFirst)

	formatter := ErrorFormatter{Compact: false, Color: false}
	output := formatter.Format(err)

	expectedLines := []string{
		"Error: Use subscript first as the element is <msubsup>",
		"  --> 1:4",
		"   |",
		" 1 | x^2_3",
		"   |    ^ USE_SUBSCRIPT_FIRST",
	}
	assert.Equal(t, expectedLines, strings.Split(strings.TrimRight(output, "\n"), "\n"))
}

func TestErrorFormatterSuggestion(t *testing.T) {
	err := newConvertError(`\fracc{1}{2}`, 0, types.KindUndefinedControlSequence)

	output := ErrorFormatter{}.Format(err)
	assert.Contains(t, output, "   |\n   = Suggestion: did you mean '\\frac'?")
}

func TestErrorFormatterColor(t *testing.T) {
	err := newConvertError("}", 0, types.KindMoreRBraceThanLBrace)

	plain := ErrorFormatter{}.Format(err)
	colored := ErrorFormatter{Color: true}.Format(err)

	assert.NotContains(t, plain, "\033[")
	assert.Contains(t, colored, "\033[")
	assert.Contains(t, colored, "more '}' than '{'")
}

func TestConvertErrorLocation(t *testing.T) {
	tests := []struct {
		input    string
		position int
		line     int
		column   int
	}{
		{"abc", 0, 1, 1},
		{"abc", 2, 1, 3},
		{"a\nbc", 3, 2, 2},
		{"αβ\\x", 4, 1, 3}, // columns count runes
		{"abc", 10, 1, 4},  // clamped to the input
	}

	for _, tt := range tests {
		err := &ConvertError{Position: tt.position, Input: tt.input}
		line, column := err.LineColumn()
		assert.Equal(t, tt.line, line, "line for %q@%d", tt.input, tt.position)
		assert.Equal(t, tt.column, column, "column for %q@%d", tt.input, tt.position)
	}
}

func TestControlNameAt(t *testing.T) {
	tests := []struct {
		input  string
		offset int
		want   string
	}{
		{`\badname x`, 0, `\badname`},
		{`\abc12+`, 0, `\abc12`},
		{`x\1`, 1, `\1`},
		{`x\`, 1, `\`},
		{`\~`, 0, `\~`},
		{`abc`, 0, ""},
		{`abc`, 9, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, controlNameAt(tt.input, tt.offset), "%q@%d", tt.input, tt.offset)
	}
}

func TestConvertErrorString(t *testing.T) {
	err := newConvertError("}", 0, types.KindMoreRBraceThanLBrace)
	assert.Equal(t, "Syntax error: more '}' than '{' at offset 0", err.Error())
	assert.Equal(t, int(types.KindMoreRBraceThanLBrace), err.Code())
	assert.Empty(t, err.Control)
}
