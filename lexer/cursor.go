package lexer

// FilterFunc decides whether a produced token is visible to the cursor.
// Tokens it rejects are discarded before they ever become the lookahead.
// The EOF sentinel is never passed through a filter.
type FilterFunc func(Token) bool

// ErrorHandler observes the error produced by a failed Expect before Expect
// returns it. Handlers may collect, log, or panic; they cannot change the
// Expect return value.
type ErrorHandler func(*UnexpectedTokenError)

// Cursor is a one-token-lookahead reader over a filtered, converted view of
// a raw match sequence. It is not safe for concurrent use: Advance and
// Filter mutate the lookahead state without locking, since the intended
// caller is a single recursive-descent parser.
type Cursor struct {
	src *Source
	seq MatchSequence

	// current is the lookahead token; it always satisfies the active filter
	// or is the EOF sentinel.
	current Token

	// previous is the last token consumed by Advance; the zero Token until
	// the first Advance.
	previous Token

	filter  FilterFunc
	onError ErrorHandler

	// exhausted latches once the sequence reports no more matches, so the
	// cursor never pulls from it again.
	exhausted bool
}

// New returns a cursor over tokenize(input), already positioned on the first
// token (or the EOF sentinel when the input yields none). Exactly one pull
// cycle happens here, none later than needed: one token is materialized per
// Advance.
func New(tokenize Tokenizer, input string) *Cursor {
	c := &Cursor{
		src: &Source{Input: input},
		seq: tokenize(input),
	}
	c.current = c.next()
	return c
}

// NewFactory closes over a tokenizer and returns a constructor of cursors,
// one per input string. Cursors are single-use: one immutable input each.
func NewFactory(tokenize Tokenizer) func(input string) *Cursor {
	return func(input string) *Cursor {
		return New(tokenize, input)
	}
}

// next pulls raw matches until one converts to a token the active filter
// accepts, or the sequence is exhausted. The sequence is consumed strictly
// once, forward-only.
func (c *Cursor) next() Token {
	for {
		if c.exhausted {
			return c.eof()
		}
		m, ok := c.seq.Next()
		if !ok {
			c.exhausted = true
			return c.eof()
		}
		tok := Token{Group: m.Group, Value: m.Value, Index: m.Index, Source: c.src}
		if c.filter == nil || c.filter(tok) {
			return tok
		}
	}
}

func (c *Cursor) eof() Token {
	return Token{Group: EOFGroup, Index: len(c.src.Input), Source: c.src}
}

// Advance consumes the lookahead: it shifts the current token into previous,
// pulls the next visible token, and returns the token the cursor was sitting
// on. It never fails; at end of input it keeps returning the EOF sentinel.
func (c *Cursor) Advance() Token {
	tok := c.current
	c.previous = tok
	c.current = c.next()
	return tok
}

// Peek returns the current lookahead without side effects. Successive calls
// return the identical token until the next Advance.
func (c *Cursor) Peek() Token { return c.current }

// PeekMatch returns the lookahead and true when it matches the given group
// (and value, if passed); otherwise the zero Token and false. No side
// effects either way.
func (c *Cursor) PeekMatch(group string, value ...string) (Token, bool) {
	if c.current.Matches(group, value...) {
		return c.current, true
	}
	return Token{}, false
}

// Previous returns the last token consumed by Advance, or the zero Token if
// nothing has been consumed yet.
func (c *Cursor) Previous() Token { return c.previous }

// Accept consumes and returns the lookahead when it matches the given group
// (and value, if passed), performing exactly one Advance. On a mismatch the
// cursor is left untouched and ok is false. This is the building block for
// optional grammar productions.
func (c *Cursor) Accept(group string, value ...string) (Token, bool) {
	if !c.current.Matches(group, value...) {
		return Token{}, false
	}
	return c.Advance(), true
}

// Expect behaves like Accept but treats a mismatch as an error: it builds an
// UnexpectedTokenError from the expectation and the current token, passes it
// to the installed handler (if any), and returns it. Expect succeeds exactly
// when Accept would, and returns the same token.
func (c *Cursor) Expect(group string, value ...string) (Token, error) {
	if tok, ok := c.Accept(group, value...); ok {
		return tok, nil
	}
	err := &UnexpectedTokenError{
		ExpectedGroup: group,
		Received:      c.current,
	}
	if len(value) > 0 {
		err.ExpectedValue = value[0]
		err.ValueExpected = true
	}
	if c.onError != nil {
		c.onError(err)
	}
	return Token{}, err
}

// OnError installs the handler invoked by future Expect failures. A nil
// handler removes any installed one. Errors already returned are unaffected.
func (c *Cursor) OnError(fn ErrorHandler) { c.onError = fn }

// Filter installs the predicate applied to future pulls. A nil predicate
// restores the accept-everything default. If the existing lookahead no
// longer satisfies the new predicate, the cursor immediately pulls until it
// holds a token that does, or the EOF sentinel. "Current satisfies the
// active filter" therefore holds the moment Filter returns.
func (c *Cursor) Filter(fn FilterFunc) {
	c.filter = fn
	if fn == nil || c.current.IsEOF() || fn(c.current) {
		return
	}
	c.current = c.next()
}
