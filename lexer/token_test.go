package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stagas/lexer-next/lexer"
)

func TestTokenMatches(t *testing.T) {
	tok := lexer.Token{Group: "ident", Value: "foo", Index: 3}

	tests := []struct {
		Name    string
		Group   string
		Value   []string
		Matches bool
	}{
		{Name: "group-only", Group: "ident", Matches: true},
		{Name: "group-and-value", Group: "ident", Value: []string{"foo"}, Matches: true},
		{Name: "wrong-group", Group: "number"},
		{Name: "wrong-value", Group: "ident", Value: []string{"bar"}},
		{Name: "right-value-wrong-group", Group: "number", Value: []string{"foo"}},
	}

	for _, tc := range tests {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Matches, tok.Matches(tc.Group, tc.Value...))
		})
	}
}

func TestTokenIsEOF(t *testing.T) {
	assert.True(t, lexer.Token{Group: lexer.EOFGroup}.IsEOF())
	assert.False(t, lexer.Token{Group: "ident"}.IsEOF())

	// A token whose value happens to be empty is not end of input.
	assert.False(t, lexer.Token{Group: "string", Value: ""}.IsEOF())
}
