package trigger

import (
	"fmt"
	"regexp"
)

// Alias matches against outgoing player input. Unlike a Trigger, it
// never carries raw or anti-patterns and never fires on partial lines.
type Alias struct {
	Name    string
	Enabled bool
	Action  Action

	patterns []*regexp.Regexp
}

// NewAlias compiles patterns and builds an Alias.
func NewAlias(name string, patterns []string, action Action, enabled bool) (*Alias, error) {
	p, err := compileAll(patterns)
	if err != nil {
		return nil, fmt.Errorf("alias %q: pattern: %w", name, err)
	}
	return &Alias{Name: name, Enabled: enabled, Action: action, patterns: p}, nil
}
