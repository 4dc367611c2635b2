package parser

import (
	"github.com/pgfjr/tex2mml/core/types"
	"github.com/pgfjr/tex2mml/runtime/lexer"
)

// precondition rejects structurally invalid input before conversion and
// returns the logical end of input with trailing whitespace removed.
//
// Brace balance is checked first over the whole input. The second pass
// finds scripts without a base or argument, misplaced separators and
// inline formulas, and malformed control sequences.
func (p *parser) precondition() (int, error) {
	input := p.input
	end := logicalEnd(input)
	if end == 0 {
		return 0, p.fail(0, types.KindNothingToConvert)
	}

	if offset, kind, ok := checkBraces(input); !ok {
		return 0, p.fail(offset, kind)
	}
	if offset, kind, ok := checkStructure(input[:end]); !ok {
		return 0, p.fail(offset, kind)
	}

	if p.config.debug >= DebugPaths {
		p.recordDebugEvent("precondition", "ok")
	}
	return end, nil
}

// logicalEnd returns the length of input without trailing whitespace. A
// space escaped by an odd run of backslashes is kept.
func logicalEnd(input string) int {
	end := len(input)
	for end > 0 && lexer.IsSpace(input[end-1]) {
		end--
	}
	if end == len(input) {
		return end
	}

	slashes := 0
	for i := end - 1; i >= 0 && input[i] == '\\'; i-- {
		slashes++
	}
	if slashes%2 == 1 {
		end++
	}
	return end
}

// checkBraces reports the first unbalanced brace. An excess '}' is
// reported where the depth first goes negative; an excess '{' at the
// earliest brace left open.
func checkBraces(input string) (int, types.ErrorKind, bool) {
	var open []int
	for i := 0; i < len(input); i++ {
		switch input[i] {
		case '\\':
			i++
		case '{':
			open = append(open, i)
		case '}':
			if len(open) == 0 {
				return i, types.KindMoreRBraceThanLBrace, false
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		return open[0], types.KindMoreLBraceThanRBrace, false
	}
	return 0, types.KindSyntax, true
}

// checkStructure scans input (already trimmed to its logical end).
func checkStructure(input string) (int, types.ErrorKind, bool) {
	n := len(input)
	at := func(i int) byte {
		if i >= n {
			return 0
		}
		return input[i]
	}
	skipChar := func(i int) int {
		i++
		for i < n && lexer.IsSpace(input[i]) {
			i++
		}
		return i
	}
	prefix := func(i int) (int, types.ErrorKind, bool) {
		if at(i) == '^' {
			return i, types.KindPrefixSuperscript, false
		}
		return i, types.KindPrefixSubscript, false
	}

	i := 0
	for i < n && lexer.IsSpace(input[i]) {
		i++
	}
	switch at(i) {
	case '^':
		return i, types.KindPrefixSuperscript, false
	case '_':
		return i, types.KindPrefixSubscript, false
	case '&':
		return i, types.KindMisplacedColumnSeparator, false
	}

	depth := 0
	for i < n {
		ch := input[i]
		switch {
		case ch == '{':
			depth++
			j := skipChar(i)
			if at(j) == '}' {
				depth--
				j = skipChar(j)
			}
			if lexer.IsScript(at(j)) {
				return prefix(j)
			}
			i = j

		case ch == '}':
			depth--
			i++

		case ch == '\\':
			next := at(i + 1)
			switch {
			case i+1 >= n, lexer.IsDigit(next):
				return i, types.KindUndefinedControlSequence, false
			case lexer.IsLetter(next):
				j := i + 1
				for j < n && lexer.IsLetter(input[j]) {
					j++
				}
				if j-i-1 > lexer.MaxControlName {
					return i, types.KindControlNameTooLong, false
				}
				i = j
			case next == '\\':
				j := skipChar(i + 1)
				if lexer.IsScript(at(j)) {
					return prefix(j)
				}
				i = j
			case lexer.IsEscapable(next):
				i += 2
			default:
				return i, types.KindUndefinedControlSequence, false
			}

		case ch == '&':
			j := skipChar(i)
			if lexer.IsScript(at(j)) {
				return prefix(j)
			}
			i = j

		case ch == '$':
			if depth == 0 {
				return i, types.KindMisplacedInlineFormula, false
			}
			j := skipChar(i)
			if lexer.IsScript(at(j)) {
				return prefix(j)
			}
			i = j

		case lexer.IsScript(ch):
			j := skipChar(i)
			switch at(j) {
			case 0, '}', '$', '&':
				return i, types.KindMissingParameter, false
			case '\\':
				if at(j+1) == '\\' {
					return i, types.KindMissingParameter, false
				}
			}
			i = j

		default:
			i++
		}
	}
	return 0, types.KindSyntax, true
}
