package lexer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgfjr/tex2mml/core/types"
)

func TestMathModeTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:  "letters and digits",
			input: "x2",
			expected: []tokenExpectation{
				{LETTER, "x", 0},
				{DIGIT, "2", 1},
				{EOF, "", 2},
			},
		},
		{
			name:  "structural characters",
			input: "{a}^_&]",
			expected: []tokenExpectation{
				{LBRACE, "{", 0},
				{LETTER, "a", 1},
				{RBRACE, "}", 2},
				{SUPERSCRIPT, "^", 3},
				{SUBSCRIPT, "_", 4},
				{COLUMN_SEP, "&", 5},
				{RBRACKET, "]", 6},
				{EOF, "", 7},
			},
		},
		{
			name:  "whitespace is skipped",
			input: "  a \t+\n b ",
			expected: []tokenExpectation{
				{LETTER, "a", 2},
				{SYMBOL, "+", 5},
				{LETTER, "b", 8},
				{EOF, "", 10},
			},
		},
		{
			name:  "control name",
			input: `\frac12`,
			expected: []tokenExpectation{
				{CONTROL_NAME, "frac", 0},
				{DIGIT, "1", 5},
				{DIGIT, "2", 6},
				{EOF, "", 7},
			},
		},
		{
			name:  "control symbols and row separator",
			input: `\{ \, \\`,
			expected: []tokenExpectation{
				{CONTROL_SYMBOL, `\{`, 0},
				{CONTROL_SYMBOL, `\,`, 3},
				{ROW_SEP, `\\`, 6},
				{EOF, "", 8},
			},
		},
		{
			name:  "escaped space",
			input: `a\ b`,
			expected: []tokenExpectation{
				{LETTER, "a", 0},
				{CONTROL_SYMBOL, `\ `, 1},
				{LETTER, "b", 3},
				{EOF, "", 4},
			},
		},
		{
			name:  "prime and dollar are lookahead",
			input: "f'$",
			expected: []tokenExpectation{
				{LETTER, "f", 0},
				{PRIME, "'", 1},
				{INLINE_MATH, "$", 2},
				{EOF, "", 3},
			},
		},
		{
			name:  "non-ascii rune is one symbol",
			input: "a≤b",
			expected: []tokenExpectation{
				{LETTER, "a", 0},
				{SYMBOL, "≤", 1},
				{LETTER, "b", 4},
				{EOF, "", 5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.input, SkipAll, tt.expected)
		})
	}
}

func TestWhitespaceModes(t *testing.T) {
	t.Run("skip once collapses runs", func(t *testing.T) {
		assertTokens(t, "a   b", SkipOnce, []tokenExpectation{
			{LETTER, "a", 0},
			{WHITESPACE, " ", 1},
			{LETTER, "b", 4},
			{EOF, "", 5},
		})
	})

	t.Run("skip once keeps space after symbols", func(t *testing.T) {
		assertTokens(t, "+ b", SkipOnce, []tokenExpectation{
			{SYMBOL, "+", 0},
			{WHITESPACE, " ", 1},
			{LETTER, "b", 2},
			{EOF, "", 3},
		})
	})

	t.Run("no skip reports every byte", func(t *testing.T) {
		assertTokens(t, "a  b", NoSkip, []tokenExpectation{
			{LETTER, "a", 0},
			{WHITESPACE, " ", 1},
			{WHITESPACE, " ", 2},
			{LETTER, "b", 3},
			{EOF, "", 4},
		})
	})

	t.Run("control word swallows following spaces", func(t *testing.T) {
		assertTokens(t, `\alpha  b`, SkipOnce, []tokenExpectation{
			{CONTROL_NAME, "alpha", 0},
			{LETTER, "b", 8},
			{EOF, "", 9},
		})
	})
}

func TestControlNameNext(t *testing.T) {
	tests := []struct {
		input string
		next  byte
		pos   int
	}{
		{`\abc123`, '1', 4},
		{`\abc 123`, ' ', 5},
		{`\abc`, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(tt.input)
			tok, err := l.Next(SkipAll)
			require.NoError(t, err)
			assert.Equal(t, CONTROL_NAME, tok.Type)
			assert.Equal(t, "abc", tok.Text)
			assert.Equal(t, tt.next, tok.Next)
			assert.Equal(t, tt.pos, l.Pos())
		})
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		kind   types.ErrorKind
		offset int
	}{
		{"escaped digit", `x\1`, types.KindUndefinedControlSequence, 1},
		{"unknown escape", `\~`, types.KindUndefinedControlSequence, 0},
		{"trailing backslash", `ab\`, types.KindUndefinedControlSequence, 2},
		{"name too long", `\` + strings.Repeat("a", MaxControlName+1), types.KindControlNameTooLong, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.input).Tokenize(SkipAll)
			require.Error(t, err)

			var lexErr *Error
			require.True(t, errors.As(err, &lexErr))
			assert.Equal(t, tt.kind, lexErr.Kind)
			assert.Equal(t, tt.offset, lexErr.Offset)
		})
	}
}

func TestMaxLengthControlName(t *testing.T) {
	name := strings.Repeat("a", MaxControlName)
	tok, err := New(`\` + name).Next(SkipAll)
	require.NoError(t, err)
	assert.Equal(t, name, tok.Text)
}

func TestLogicalEnd(t *testing.T) {
	l := New("ab  ", WithEnd(2))
	tokens, err := l.Tokenize(SkipOnce)
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, EOF, tokens[2].Type)
	assert.Equal(t, byte(0), l.PeekAt(0))
}

func TestFollowedBy(t *testing.T) {
	t.Run("matches and skips", func(t *testing.T) {
		l := New(`\limits  ^2`)
		assert.True(t, l.FollowedBy(`\limits`, SkipAll))
		assert.Equal(t, byte('^'), l.Peek())
	})

	t.Run("rejects longer name", func(t *testing.T) {
		l := New(`\limitsx`)
		assert.False(t, l.FollowedBy(`\limits`, SkipAll))
		assert.Equal(t, 0, l.Pos())
	})

	t.Run("no skip only tests", func(t *testing.T) {
		l := New(`\end{matrix}`)
		assert.True(t, l.FollowedBy(`\end`, NoSkip))
		assert.Equal(t, 0, l.Pos())
	})

	t.Run("pattern at end of input", func(t *testing.T) {
		l := New(`\nolimits`)
		assert.True(t, l.FollowedBy(`\nolimits`, SkipAll))
		assert.True(t, l.AtEnd())
	})
}

func TestCursorPrimitives(t *testing.T) {
	l := New("a  ^b")
	assert.Equal(t, byte('a'), l.Peek())
	l.SkipChar()
	assert.Equal(t, 3, l.Pos())
	assert.True(t, l.ScriptNext())
	l.Advance(10)
	assert.True(t, l.AtEnd())
	assert.Equal(t, byte(0), l.Peek())

	l.SetPos(1)
	assert.Equal(t, byte(' '), l.Peek())
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, `CONTROL_NAME("frac")@0`, Token{Type: CONTROL_NAME, Text: "frac"}.String())
	assert.Equal(t, "EOF@3", Token{Type: EOF, Offset: 3}.String())
	assert.Equal(t, "skip-once", SkipOnce.String())
}
