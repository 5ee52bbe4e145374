package main

import (
	"bytes"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagas/lexer-next/lexer"
	"github.com/stagas/lexer-next/tokenizer"
)

func TestDump(t *testing.T) {
	tokenize, err := tokenizer.New([]tokenizer.Rule{
		{Group: "ident", Pattern: `[a-z]+`},
		{Group: "number", Pattern: `[0-9]+`},
	})
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, dump(logr.Discard(), tokenize, nil, "hello 1337 world", buf))

	assert.Equal(t, "0\tident\t\"hello\"\n6\tnumber\t\"1337\"\n11\tident\t\"world\"\n", buf.String())
}

func TestDumpWithFilter(t *testing.T) {
	tokenize, err := tokenizer.New([]tokenizer.Rule{
		{Group: "ident", Pattern: `[a-z]+`},
		{Group: "number", Pattern: `[0-9]+`},
	})
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	filter := func(tok lexer.Token) bool { return tok.Group == "number" }
	require.NoError(t, dump(logr.Discard(), tokenize, filter, "foo 0123 bar 456", buf))

	assert.Equal(t, "4\tnumber\t\"0123\"\n13\tnumber\t\"456\"\n", buf.String())
}
