// Package rulefile loads token rule sets from YAML for the lexdump CLI.
package rulefile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/stagas/lexer-next/lexer"
	"github.com/stagas/lexer-next/tokenizer"
)

var (
	ErrNoRules      = errors.New("rule file declares no rules")
	ErrEmptyRule    = errors.New("rule is missing a group or pattern")
	ErrUnknownGroup = errors.New("skip references an undeclared group")
)

// File is a parsed rule set.
//
//	rules:
//	  - group: ident
//	    pattern: "[a-z]+"
//	  - group: space
//	    pattern: "\\s+"
//	skip: [space]
type File struct {
	Rules []tokenizer.Rule `yaml:"rules"`
	Skip  []string         `yaml:"skip"`
}

// Load reads and parses the rule file at path.
func Load(path string) (*File, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(buf)
}

// Parse parses a rule set and validates it: at least one rule, no empty
// groups or patterns, and every skip entry naming a declared group.
func Parse(buf []byte) (*File, error) {
	f := &File{}
	if err := yaml.UnmarshalStrict(buf, f); err != nil {
		return nil, fmt.Errorf("parsing rule file: %w", err)
	}
	if len(f.Rules) == 0 {
		return nil, ErrNoRules
	}

	groups := map[string]struct{}{}
	for _, r := range f.Rules {
		if r.Group == "" || r.Pattern == "" {
			return nil, fmt.Errorf("%w: %+v", ErrEmptyRule, r)
		}
		groups[r.Group] = struct{}{}
	}
	for _, g := range f.Skip {
		if _, ok := groups[g]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, g)
		}
	}
	return f, nil
}

// SkipFilter returns a cursor filter that hides the skipped groups. The
// cursor never applies filters to its EOF sentinel, so skipping every group
// still terminates.
func (f *File) SkipFilter() lexer.FilterFunc {
	if len(f.Skip) == 0 {
		return nil
	}
	skip := map[string]struct{}{}
	for _, g := range f.Skip {
		skip[g] = struct{}{}
	}
	return func(t lexer.Token) bool {
		_, hidden := skip[t.Group]
		return !hidden
	}
}
