package lexer

import "fmt"

// TokenType represents the lexical classes of TeX math input
type TokenType int

const (
	// Special tokens
	EOF TokenType = iota

	// Lookahead tokens: the engine consumes the run itself
	LETTER // a-z, A-Z
	DIGIT  // 0-9

	SYMBOL     // + - = ( ) | and other punctuation, or a non-ASCII rune
	WHITESPACE // only produced outside SkipAll mode

	// Grouping
	LBRACE   // {
	RBRACE   // }
	RBRACKET // ] - closes an optional argument

	// Scripts
	SUPERSCRIPT // ^
	SUBSCRIPT   // _
	PRIME       // ' - not advanced, runs are consumed by the engine

	// Tabular separators
	COLUMN_SEP // &
	ROW_SEP    // \\

	// Control sequences
	CONTROL_SYMBOL // \{ \, \; and the other escapable characters
	CONTROL_NAME   // \frac, \alpha, ...

	INLINE_MATH // $ - not advanced
)

// Token represents a lexical token
type Token struct {
	Type TokenType
	// Text is the lexeme. Control names carry the name without the
	// backslash; control symbols carry both characters.
	Text string
	// Offset is the 0-based byte offset of the token start.
	Offset int
	// Next is the byte immediately following a control name or symbol,
	// before any whitespace skipping. Zero at end of input.
	Next byte
}

// String returns a compact representation for debugging
func (t Token) String() string {
	if t.Text == "" {
		return fmt.Sprintf("%s@%d", t.Type, t.Offset)
	}
	return fmt.Sprintf("%s(%q)@%d", t.Type, t.Text, t.Offset)
}

// String returns a string representation of the token type
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case LETTER:
		return "LETTER"
	case DIGIT:
		return "DIGIT"
	case SYMBOL:
		return "SYMBOL"
	case WHITESPACE:
		return "WHITESPACE"
	case LBRACE:
		return "LBRACE"
	case RBRACE:
		return "RBRACE"
	case RBRACKET:
		return "RBRACKET"
	case SUPERSCRIPT:
		return "SUPERSCRIPT"
	case SUBSCRIPT:
		return "SUBSCRIPT"
	case PRIME:
		return "PRIME"
	case COLUMN_SEP:
		return "COLUMN_SEP"
	case ROW_SEP:
		return "ROW_SEP"
	case CONTROL_SYMBOL:
		return "CONTROL_SYMBOL"
	case CONTROL_NAME:
		return "CONTROL_NAME"
	case INLINE_MATH:
		return "INLINE_MATH"
	default:
		return "UNKNOWN"
	}
}

// Mode selects how whitespace is treated while reading a token
type Mode int

const (
	// SkipAll discards whitespace before and after tokens (math mode).
	SkipAll Mode = iota
	// SkipOnce reports a whitespace run as a single WHITESPACE token (text mode).
	SkipOnce
	// NoSkip reports every whitespace byte as its own token and never skips.
	NoSkip
)

func (m Mode) String() string {
	switch m {
	case SkipAll:
		return "skip-all"
	case SkipOnce:
		return "skip-once"
	case NoSkip:
		return "no-skip"
	default:
		return "unknown"
	}
}

// singleCharTokens maps structural characters to their token types.
// Each is advanced past by the lexer.
var singleCharTokens = map[byte]TokenType{
	'&': COLUMN_SEP,
	'{': LBRACE,
	'}': RBRACE,
	'^': SUPERSCRIPT,
	'_': SUBSCRIPT,
	']': RBRACKET,
}
