// Package lexer provides a one-token-lookahead cursor over a lazily-produced
// token stream, intended as the lexing layer beneath hand-written
// recursive-descent parsers.
//
// A Cursor is built from a Tokenizer, which is any function producing a
// forward-only sequence of raw matches for an input string. It exposes the
// four primitives parsers compose into grammar rules (Advance, Peek, Accept,
// Expect) plus pluggable token filtering and error interception.
//
//	tokenize, _ := tokenizer.New([]tokenizer.Rule{
//		{Group: "ident", Pattern: `[a-z]+`},
//		{Group: "number", Pattern: `[0-9]+`},
//	})
//	lex := lexer.New(tokenize, "hello 1337 world")
//	lex.Advance()          // {ident "hello" 0}
//	lex.Accept("number")   // {number "1337" 6}, true
//	lex.Expect("number")   // error: expected number, received ident "world"
package lexer
