package lexer

import (
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/pgfjr/tex2mml/core/invariant"
	"github.com/pgfjr/tex2mml/core/types"
)

// Error is a lexical failure at a byte offset of the input
type Error struct {
	Offset int
	Kind   types.ErrorKind
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
}

// Lexer reads TeX math tokens on demand. The engine drives it directly and
// relies on the cursor primitives for lookahead, so the lexer keeps no
// token queue of its own.
type Lexer struct {
	input  string // Complete input
	pos    int    // Current byte offset
	end    int    // Logical end of input (trailing whitespace excluded)
	logger *slog.Logger
}

// Option configures a Lexer
type Option func(*Lexer)

// WithLogger routes lexer debug records to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Lexer) {
		l.logger = logger
	}
}

// WithEnd sets the logical end of input. Bytes at or past end are never
// read.
func WithEnd(end int) Option {
	return func(l *Lexer) {
		l.end = end
	}
}

// New creates a lexer over input
func New(input string, opts ...Option) *Lexer {
	l := &Lexer{
		input: input,
		end:   len(input),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	invariant.InRange(l.end, 0, len(input), "end")
	return l
}

// Input returns the complete input.
func (l *Lexer) Input() string {
	return l.input
}

// Pos returns the current byte offset.
func (l *Lexer) Pos() int {
	return l.pos
}

// SetPos moves the cursor to pos.
func (l *Lexer) SetPos(pos int) {
	invariant.InRange(pos, 0, l.end, "pos")
	l.pos = pos
}

// End returns the logical end of input.
func (l *Lexer) End() int {
	return l.end
}

// AtEnd reports whether the cursor reached the logical end.
func (l *Lexer) AtEnd() bool {
	return l.pos >= l.end
}

// Peek returns the byte under the cursor, or 0 at end of input.
func (l *Lexer) Peek() byte {
	return l.PeekAt(0)
}

// PeekAt returns the byte n positions after the cursor, or 0 past the end.
func (l *Lexer) PeekAt(n int) byte {
	i := l.pos + n
	if i < 0 || i >= l.end {
		return 0
	}
	return l.input[i]
}

// Advance moves the cursor forward by n bytes, stopping at the end.
func (l *Lexer) Advance(n int) {
	l.pos = min(l.pos+n, l.end)
}

// SkipSpaces moves the cursor past any whitespace.
func (l *Lexer) SkipSpaces() {
	for l.pos < l.end && IsSpace(l.input[l.pos]) {
		l.pos++
	}
}

// SkipChar advances past one byte and any whitespace after it.
func (l *Lexer) SkipChar() {
	l.Advance(1)
	l.SkipSpaces()
}

// ScriptNext reports whether the cursor is on '^' or '_'.
func (l *Lexer) ScriptNext() bool {
	return IsScript(l.Peek())
}

// FollowedBy reports whether the input at the cursor starts with pattern
// and the pattern is not immediately followed by a letter. On a match the
// cursor moves past the pattern and any whitespace, except in NoSkip mode
// which only tests.
func (l *Lexer) FollowedBy(pattern string, mode Mode) bool {
	invariant.Precondition(pattern != "", "pattern must not be empty")

	stop := l.pos + len(pattern)
	if stop > l.end || l.input[l.pos:stop] != pattern {
		return false
	}
	if stop < l.end && IsLetter(l.input[stop]) {
		return false
	}

	if mode != NoSkip {
		l.pos = stop
		l.SkipSpaces()
	}
	return true
}

// Next reads the next token under mode.
//
// LETTER, DIGIT, PRIME and INLINE_MATH tokens do not advance the cursor;
// the engine consumes them. Every other token is advanced past, followed
// by whitespace skipping in SkipAll mode.
func (l *Lexer) Next(mode Mode) (Token, error) {
	if mode == SkipAll {
		l.SkipSpaces()
	}

	for l.pos < l.end {
		start := l.pos
		ch := l.input[start]

		switch {
		case IsLetter(ch):
			return Token{Type: LETTER, Text: l.input[start : start+1], Offset: start}, nil

		case IsDigit(ch):
			return Token{Type: DIGIT, Text: l.input[start : start+1], Offset: start}, nil

		case IsSpace(ch):
			switch mode {
			case SkipAll:
				l.SkipSpaces()
				continue
			case SkipOnce:
				l.SkipSpaces()
			default:
				l.pos++
			}
			return Token{Type: WHITESPACE, Text: " ", Offset: start}, nil

		case ch == '\\':
			return l.lexControl(start, mode)

		case ch == '$':
			return Token{Type: INLINE_MATH, Text: "$", Offset: start, Next: l.PeekAt(1)}, nil

		case ch == '\'':
			return Token{Type: PRIME, Text: "'", Offset: start, Next: l.PeekAt(1)}, nil
		}

		if tt, ok := singleCharTokens[ch]; ok {
			l.pos++
			tok := Token{Type: tt, Text: l.input[start:l.pos], Offset: start, Next: l.Peek()}
			l.skipAfter(mode)
			return tok, nil
		}

		// Any other punctuation, or a whole UTF-8 sequence
		size := 1
		if ch >= utf8.RuneSelf {
			_, size = utf8.DecodeRuneInString(l.input[start:l.end])
		}
		l.pos += size
		tok := Token{Type: SYMBOL, Text: l.input[start:l.pos], Offset: start, Next: l.Peek()}
		l.skipAfter(mode)
		return tok, nil
	}

	return Token{Type: EOF, Offset: l.pos}, nil
}

// Tokenize reads tokens under mode until end of input. The engine normally
// consumes letters, digits, primes and '$' itself; Tokenize advances past
// them so the whole input can be listed.
func (l *Lexer) Tokenize(mode Mode) ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.Next(mode)
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		switch tok.Type {
		case EOF:
			return tokens, nil
		case LETTER, DIGIT, PRIME, INLINE_MATH:
			l.Advance(len(tok.Text))
		}
	}
}

func (l *Lexer) skipAfter(mode Mode) {
	if mode == SkipAll {
		l.SkipSpaces()
	}
}

// lexControl reads a token starting at a backslash.
func (l *Lexer) lexControl(start int, mode Mode) (Token, error) {
	l.pos++ // backslash

	if l.pos >= l.end {
		return Token{}, l.fail(start, types.KindUndefinedControlSequence)
	}

	ch := l.input[l.pos]
	switch {
	case IsLetter(ch):
		nameStart := l.pos
		for l.pos < l.end && IsLetter(l.input[l.pos]) {
			if l.pos-nameStart == MaxControlName {
				return Token{}, l.fail(start, types.KindControlNameTooLong)
			}
			l.pos++
		}
		tok := Token{
			Type:   CONTROL_NAME,
			Text:   l.input[nameStart:l.pos],
			Offset: start,
			Next:   l.Peek(),
		}
		// Spaces after a control word are never significant
		if mode != NoSkip {
			l.SkipSpaces()
		}
		return tok, nil

	case ch == '\\':
		l.pos++
		tok := Token{Type: ROW_SEP, Text: `\\`, Offset: start, Next: l.Peek()}
		l.skipAfter(mode)
		return tok, nil

	case IsEscapable(ch):
		l.pos++
		tok := Token{Type: CONTROL_SYMBOL, Text: l.input[start:l.pos], Offset: start, Next: l.Peek()}
		l.skipAfter(mode)
		return tok, nil

	default:
		return Token{}, l.fail(start, types.KindUndefinedControlSequence)
	}
}

func (l *Lexer) fail(offset int, kind types.ErrorKind) error {
	l.logger.Debug("[LEXER] error", "offset", offset, "kind", kind.String())
	return &Error{Offset: offset, Kind: kind}
}
