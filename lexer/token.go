package lexer

// EOFGroup is the group of the sentinel token that marks the end of input.
// The cursor always exposes a sentinel token once the underlying match
// sequence is exhausted, so group-matching calls work uniformly at the end.
const EOFGroup = "eof"

// Source is a shared back-reference to the input a token was produced from.
// One Source exists per cursor and is pointer-shared by every token it
// produces; it is never mutated after construction.
type Source struct {
	Input string
}

// Token is one immutable lexical unit.
type Token struct {
	// Group classifies the token, mirroring the named capture group that
	// matched it upstream.
	Group string

	// Value is the matched substring.
	Value string

	// Index is the byte offset of the match in the original input.
	// For the EOF sentinel it equals len(input).
	Index int

	// Source points back to the input for diagnostics. May be nil for
	// tokens constructed by hand (e.g. in tests).
	Source *Source
}

// Matches reports whether the token has the given group, and, when a value
// is passed, also that exact value.
func (t Token) Matches(group string, value ...string) bool {
	if t.Group != group {
		return false
	}
	return len(value) == 0 || t.Value == value[0]
}

// IsEOF reports whether the token is the end-of-input sentinel.
func (t Token) IsEOF() bool { return t.Group == EOFGroup }

// Match is one raw match record pulled from a tokenizer's sequence.
type Match struct {
	Group string
	Value string
	Index int
}

// MatchSequence is a forward-only, single-pass, possibly infinite source of
// raw matches. Next returns false exactly when the sequence is exhausted;
// once false it must keep returning false.
type MatchSequence interface {
	Next() (Match, bool)
}

// Tokenizer produces the raw match sequence for one input string. The cursor
// places no constraint on how matches are discovered, only on the pull
// contract above.
type Tokenizer func(input string) MatchSequence
