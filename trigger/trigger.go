package trigger

import (
	"fmt"
	"regexp"
)

// Trigger matches against incoming server output. A Trigger whose
// FiresOnPartialLines is set also fires against partial (prompt) lines
// in addition to complete ones.
type Trigger struct {
	Name                string
	Enabled             bool
	FiresOnPartialLines bool
	Action              Action

	patterns     []*regexp.Regexp
	rawPatterns  []*regexp.Regexp
	antiPatterns []*regexp.Regexp
}

// NewTrigger compiles patterns, rawPatterns, and antiPatterns and builds
// a Trigger. Compilation happens eagerly so a malformed pattern is
// reported at definition time rather than surfacing later as a silent
// non-match during dispatch.
func NewTrigger(name string, patterns, rawPatterns, antiPatterns []string, action Action, firesOnPartialLines, enabled bool) (*Trigger, error) {
	p, err := compileAll(patterns)
	if err != nil {
		return nil, fmt.Errorf("trigger %q: pattern: %w", name, err)
	}
	rp, err := compileAll(rawPatterns)
	if err != nil {
		return nil, fmt.Errorf("trigger %q: raw pattern: %w", name, err)
	}
	ap, err := compileAll(antiPatterns)
	if err != nil {
		return nil, fmt.Errorf("trigger %q: anti-pattern: %w", name, err)
	}
	return &Trigger{
		Name:                name,
		Enabled:             enabled,
		FiresOnPartialLines: firesOnPartialLines,
		Action:              action,
		patterns:            p,
		rawPatterns:         rp,
		antiPatterns:        ap,
	}, nil
}

func compileAll(sources []string) ([]*regexp.Regexp, error) {
	if len(sources) == 0 {
		return nil, nil
	}
	out := make([]*regexp.Regexp, len(sources))
	for i, src := range sources {
		re, err := regexp.Compile(src)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", src, err)
		}
		out[i] = re
	}
	return out, nil
}
