package lexer

import "fmt"

// UnexpectedTokenError is the only error kind the cursor produces. It is
// returned by a failed Expect and carries both sides of the mismatch.
type UnexpectedTokenError struct {
	ExpectedGroup string

	// ExpectedValue is only meaningful when ValueExpected is true, since an
	// empty string is a legal expected value.
	ExpectedValue string
	ValueExpected bool

	// Received is the token the cursor was positioned on, possibly the EOF
	// sentinel.
	Received Token
}

func (e *UnexpectedTokenError) Error() string {
	expected := e.ExpectedGroup
	if e.ValueExpected {
		expected = fmt.Sprintf("%s %q", e.ExpectedGroup, e.ExpectedValue)
	}
	return fmt.Sprintf(
		"Unexpected token: %s\nexpected: %s\nbut received: %s %q\nat position: %d",
		e.Received.Value, expected, e.Received.Group, e.Received.Value, e.Received.Index)
}
