package lexer

// ASCII character lookup tables for fast classification (zero-allocation)
//
//	if ch < 128 && isLetter[ch] { ... }
//
// Bytes >= 128 belong to multi-byte UTF-8 sequences and are never letters,
// digits or whitespace for the purposes of TeX input.
var (
	isWhitespace [128]bool // Space, tab, carriage return, newline, form feed
	isLetter     [128]bool // a-z, A-Z
	isDigit      [128]bool // 0-9
	isEscapable  [128]bool // Characters allowed after a backslash
)

// MaxControlName is the longest control name accepted.
const MaxControlName = 32

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)

		isWhitespace[i] = ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f' || ch == '\v'
		isLetter[i] = ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
		isDigit[i] = '0' <= ch && ch <= '9'
	}

	for _, ch := range []byte("{}&^_-$#!;>:,| ") {
		isEscapable[ch] = true
	}
}

// IsLetter reports whether ch is an ASCII letter.
func IsLetter(ch byte) bool {
	return ch < 128 && isLetter[ch]
}

// IsDigit reports whether ch is an ASCII digit.
func IsDigit(ch byte) bool {
	return ch < 128 && isDigit[ch]
}

// IsSpace reports whether ch is ASCII whitespace.
func IsSpace(ch byte) bool {
	return ch < 128 && isWhitespace[ch]
}

// IsEscapable reports whether ch may follow a backslash as a control symbol.
func IsEscapable(ch byte) bool {
	return ch < 128 && isEscapable[ch]
}

// IsScript reports whether ch starts a subscript or superscript.
func IsScript(ch byte) bool {
	return ch == '^' || ch == '_'
}
