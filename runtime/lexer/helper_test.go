package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// tokenExpectation is the comparable part of a token
type tokenExpectation struct {
	Type   TokenType
	Text   string
	Offset int
}

// assertTokens tokenizes input under mode and compares against expected
func assertTokens(t *testing.T, input string, mode Mode, expected []tokenExpectation) {
	t.Helper()

	tokens, err := New(input).Tokenize(mode)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	actual := make([]tokenExpectation, len(tokens))
	for i, tok := range tokens {
		actual[i] = tokenExpectation{tok.Type, tok.Text, tok.Offset}
	}

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("tokens mismatch (-expected +actual):\n%s", diff)
	}
}
