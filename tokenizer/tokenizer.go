// Package tokenizer implements a regexp-based raw-match scanner satisfying
// the lexer's Tokenizer contract. Each rule becomes a named capture group in
// a single alternation; earlier rules win when several match at the same
// offset, and input claimed by no rule is skipped.
package tokenizer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/stagas/lexer-next/lexer"
)

var (
	ErrNoRules        = errors.New("at least one rule is required")
	ErrBadGroupName   = errors.New("group name must be a valid capture group identifier")
	ErrDuplicateGroup = errors.New("duplicate group name")
	ErrBadPattern     = errors.New("pattern does not compile")
)

// groupName constrains rule groups to what the regexp package accepts in
// (?P<name>...).
var groupName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Rule pairs a token group with the pattern that matches it.
type Rule struct {
	Group   string
	Pattern string
}

// New compiles the rules into a tokenizer. The rules are combined into one
// alternation, so precedence follows declaration order: at equal offsets the
// first declared rule matches.
func New(rules []Rule) (lexer.Tokenizer, error) {
	if len(rules) == 0 {
		return nil, ErrNoRules
	}

	seen := map[string]struct{}{}
	alts := make([]string, 0, len(rules))
	for _, r := range rules {
		if !groupName.MatchString(r.Group) {
			return nil, fmt.Errorf("%w: %q", ErrBadGroupName, r.Group)
		}
		if _, ok := seen[r.Group]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateGroup, r.Group)
		}
		seen[r.Group] = struct{}{}

		if _, err := regexp.Compile(r.Pattern); err != nil {
			return nil, fmt.Errorf("%w: rule %q: %v", ErrBadPattern, r.Group, err)
		}
		alts = append(alts, fmt.Sprintf("(?P<%s>%s)", r.Group, r.Pattern))
	}

	// Patterns that compile alone can still clash when combined, e.g. a
	// pattern containing a named group that collides with a rule group.
	re, err := regexp.Compile(strings.Join(alts, "|"))
	if err != nil {
		return nil, fmt.Errorf("%w: combined rule set: %v", ErrBadPattern, err)
	}

	return func(input string) lexer.MatchSequence {
		return &scanner{re: re, names: re.SubexpNames(), input: input}
	}, nil
}

// scanner walks one input string forward, reporting the leftmost match at or
// after the previous match's end. It is single-pass: once exhausted it stays
// exhausted.
type scanner struct {
	re    *regexp.Regexp
	names []string
	input string
	pos   int
	done  bool
}

func (s *scanner) Next() (lexer.Match, bool) {
	if s.done || s.pos > len(s.input) {
		s.done = true
		return lexer.Match{}, false
	}

	idx := s.re.FindStringSubmatchIndex(s.input[s.pos:])
	if idx == nil {
		s.done = true
		return lexer.Match{}, false
	}

	start, end := s.pos+idx[0], s.pos+idx[1]
	m := lexer.Match{Value: s.input[start:end], Index: start}

	// The matched alternative is the first named group with a position. The
	// rule's own group opens before any groups nested in its pattern, so it
	// is found first.
	for i, name := range s.names {
		if i == 0 || name == "" || idx[2*i] < 0 {
			continue
		}
		m.Group = name
		break
	}

	if end == start {
		// Zero-width match: move one byte so the scan terminates.
		s.pos = start + 1
	} else {
		s.pos = end
	}
	return m, true
}
