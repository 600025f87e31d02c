package trigger

import (
	"errors"

	"smudgy/styledline"
)

// ErrDepthLimitReached guards against a self-triggering alias or script
// recursing forever through the outgoing pipeline.
var ErrDepthLimitReached = errors.New("trigger: outgoing recursion depth limit reached")

// maxOutgoingDepth is the recursion bound spec'd for process_outgoing_line.
const maxOutgoingDepth = 100

// ScriptRunner executes a script action on behalf of the Manager. A
// Manager never talks to a script engine directly — it is handed one
// through this interface so the trigger package stays independent of
// scripting, import-cycle-free, and testable without a real engine.
type ScriptRunner interface {
	// EvalJavascript runs a whole compiled script. ok is false if the
	// script produced no string return value to re-enter.
	EvalJavascript(id ScriptID, captures []Capture, depth int) (result string, ok bool, err error)
	// CallJavascriptFunction invokes a previously registered function.
	CallJavascriptFunction(id FunctionID, captures []Capture, depth int) (result string, ok bool, err error)
}

// Manager holds the triggers and aliases for one session, keyed uniquely
// by name (a second insert with the same name replaces the first), and
// the aggregate pattern sets used to dispatch against them.
type Manager struct {
	triggers      []*Trigger
	triggerByName map[string]int
	aliases       []*Alias
	aliasByName   map[string]int
	hotkeys       map[string]*Hotkey

	// dirty forces a lazy rebuild of the trigger-side pattern sets on the
	// next incoming-line dispatch. Alias patterns rebuild eagerly instead,
	// since aliases are mutated far less often than they are dispatched.
	dirty bool

	triggerPatterns          *patternSet
	triggerRawPatterns       *patternSet
	promptTriggerPatterns    *patternSet
	promptTriggerRawPatterns *patternSet
	aliasPatterns            *patternSet
}

// NewManager builds an empty Manager.
func NewManager() *Manager {
	return &Manager{
		triggerByName: make(map[string]int),
		aliasByName:   make(map[string]int),
		hotkeys:       make(map[string]*Hotkey),
	}
}

// AddTrigger inserts t, replacing any existing trigger with the same
// name, and marks the trigger pattern sets dirty for lazy rebuild.
func (m *Manager) AddTrigger(t *Trigger) {
	if idx, ok := m.triggerByName[t.Name]; ok {
		m.triggers[idx] = t
	} else {
		m.triggerByName[t.Name] = len(m.triggers)
		m.triggers = append(m.triggers, t)
	}
	m.dirty = true
}

// EnableTrigger flips a trigger's enabled flag in place. Disabled
// triggers stay in the pattern set (cheaper than a rebuild) and are
// simply skipped at dispatch time.
func (m *Manager) EnableTrigger(name string, enabled bool) bool {
	idx, ok := m.triggerByName[name]
	if !ok {
		return false
	}
	m.triggers[idx].Enabled = enabled
	return true
}

// AddAlias inserts a, replacing any existing alias with the same name,
// and eagerly rebuilds the alias pattern set.
func (m *Manager) AddAlias(a *Alias) error {
	if idx, ok := m.aliasByName[a.Name]; ok {
		m.aliases[idx] = a
	} else {
		m.aliasByName[a.Name] = len(m.aliases)
		m.aliases = append(m.aliases, a)
	}
	return m.rebuildAliasPatterns()
}

// EnableAlias flips an alias's enabled flag in place.
func (m *Manager) EnableAlias(name string, enabled bool) bool {
	idx, ok := m.aliasByName[name]
	if !ok {
		return false
	}
	m.aliases[idx].Enabled = enabled
	return true
}

// AddHotkey inserts or replaces a hotkey by name.
func (m *Manager) AddHotkey(h *Hotkey) {
	m.hotkeys[h.Name] = h
}

// Hotkey looks up a hotkey by name.
func (m *Manager) Hotkey(name string) (*Hotkey, bool) {
	h, ok := m.hotkeys[name]
	return h, ok
}

func (m *Manager) rebuildAliasPatterns() error {
	entries := make([]patternSetEntry, 0, len(m.aliases))
	for i, a := range m.aliases {
		if len(a.patterns) > 0 {
			entries = append(entries, patternSetEntry{ownerIndex: i, patterns: a.patterns})
		}
	}
	ps, err := newPatternSet(entries)
	if err != nil {
		return err
	}
	m.aliasPatterns = ps
	return nil
}

func (m *Manager) rebuildTriggerPatterns() error {
	var tp, trp, ptp, ptrp []patternSetEntry
	for i, t := range m.triggers {
		if len(t.patterns) > 0 {
			tp = append(tp, patternSetEntry{ownerIndex: i, patterns: t.patterns})
		}
		if len(t.rawPatterns) > 0 {
			trp = append(trp, patternSetEntry{ownerIndex: i, patterns: t.rawPatterns})
		}
		if t.FiresOnPartialLines {
			if len(t.patterns) > 0 {
				ptp = append(ptp, patternSetEntry{ownerIndex: i, patterns: t.patterns})
			}
			if len(t.rawPatterns) > 0 {
				ptrp = append(ptrp, patternSetEntry{ownerIndex: i, patterns: t.rawPatterns})
			}
		}
	}

	var err error
	if m.triggerPatterns, err = newPatternSet(tp); err != nil {
		return err
	}
	if m.triggerRawPatterns, err = newPatternSet(trp); err != nil {
		return err
	}
	if m.promptTriggerPatterns, err = newPatternSet(ptp); err != nil {
		return err
	}
	if m.promptTriggerRawPatterns, err = newPatternSet(ptrp); err != nil {
		return err
	}
	m.dirty = false
	return nil
}

// Firing records one trigger/alias/hotkey match that was acted on, for
// callers that want to log or surface what fired.
type Firing struct {
	TriggerName string
	AliasName   string
	Captures    []Capture
	Depth       int
}

// DispatchIncoming runs the complete-line trigger dispatch described in
// spec §4.D: rebuild if dirty, match raw then decoded text, group by
// trigger, skip disabled/anti-matched triggers, and run each survivor's
// action at depth 0.
func (m *Manager) DispatchIncoming(line styledline.StyledLine, runner ScriptRunner) ([]string, []Firing, error) {
	return m.dispatchLine(line, false, runner)
}

// DispatchPartial is DispatchIncoming's equivalent for a not-yet-
// terminated (prompt) line, using the prompt-only pattern sets.
func (m *Manager) DispatchPartial(line styledline.StyledLine, runner ScriptRunner) ([]string, []Firing, error) {
	return m.dispatchLine(line, true, runner)
}

func (m *Manager) dispatchLine(line styledline.StyledLine, prompt bool, runner ScriptRunner) ([]string, []Firing, error) {
	if m.dirty {
		if err := m.rebuildTriggerPatterns(); err != nil {
			return nil, nil, err
		}
	}

	decodedSet, rawSet := m.triggerPatterns, m.triggerRawPatterns
	if prompt {
		decodedSet, rawSet = m.promptTriggerPatterns, m.promptTriggerRawPatterns
	}

	var hits []hit
	if line.Raw != nil {
		hits = append(hits, rawSet.match(*line.Raw)...)
	}
	hits = append(hits, decodedSet.match(line.Text)...)

	byOwner, owners := firstHitByOwner(hits)

	var sent []string
	var firings []Firing
	for _, ownerIdx := range owners {
		t := m.triggers[ownerIdx]
		if !t.Enabled {
			continue
		}
		if anyMatch(t.antiPatterns, line.Text) {
			continue
		}
		h := byOwner[ownerIdx]
		captures := buildCaptures(h)

		out, err := m.runAction(t.Action, captures, 0, runner)
		if err != nil {
			return sent, firings, err
		}
		sent = append(sent, out...)
		firings = append(firings, Firing{TriggerName: t.Name, Captures: captures, Depth: 0})
	}
	return sent, firings, nil
}

// ProcessOutgoing is process_outgoing_line: match text against the alias
// set and, if nothing matches, send it verbatim. depth is the recursion
// depth this call is entering at.
func (m *Manager) ProcessOutgoing(text string, depth int, runner ScriptRunner) ([]string, error) {
	if depth > maxOutgoingDepth {
		return nil, ErrDepthLimitReached
	}

	hits := m.aliasPatterns.match(text)
	if len(hits) == 0 {
		return []string{text}, nil
	}

	byOwner, owners := firstHitByOwner(hits)

	var sent []string
	for _, ownerIdx := range owners {
		a := m.aliases[ownerIdx]
		if !a.Enabled {
			continue
		}
		h := byOwner[ownerIdx]
		captures := buildCaptures(h)

		out, err := m.runAction(a.Action, captures, depth, runner)
		if err != nil {
			return sent, err
		}
		sent = append(sent, out...)
	}
	return sent, nil
}

// runAction executes a single matched rule's action, recursively
// re-entering any textual output (SendSimple's substituted template or a
// script's string return value) through ProcessOutgoing at depth+1.
func (m *Manager) runAction(action Action, captures []Capture, depth int, runner ScriptRunner) ([]string, error) {
	switch action.Kind {
	case ActionNoop:
		return nil, nil

	case ActionSendRaw:
		return []string{action.Text}, nil

	case ActionSendSimple:
		resolved := substituteCaptures(action.Text, captures)
		return m.processEachPiece(resolved, depth, runner)

	case ActionEvalJavascript:
		if runner == nil {
			return nil, errNoScriptRunner
		}
		result, ok, err := runner.EvalJavascript(action.ScriptID, captures, depth)
		if err != nil || !ok {
			return nil, err
		}
		return m.processEachPiece(result, depth, runner)

	case ActionCallJavascriptFunction:
		if runner == nil {
			return nil, errNoScriptRunner
		}
		result, ok, err := runner.CallJavascriptFunction(action.FunctionID, captures, depth)
		if err != nil || !ok {
			return nil, err
		}
		return m.processEachPiece(result, depth, runner)

	default:
		return nil, nil
	}
}

// FireHotkey runs a named hotkey's action at depth 0, the same way a
// matched trigger or alias does. It reports (nil, false, nil) for an
// unknown or disabled hotkey rather than an error, since a hotkey firing
// with nothing bound is a routine UI event, not a failure.
func (m *Manager) FireHotkey(name string, runner ScriptRunner) (sent []string, ok bool, err error) {
	h, exists := m.hotkeys[name]
	if !exists || !h.Enabled {
		return nil, false, nil
	}
	sent, err = m.runAction(h.Action, nil, 0, runner)
	return sent, true, err
}

func (m *Manager) processEachPiece(resolved string, depth int, runner ScriptRunner) ([]string, error) {
	var out []string
	for _, piece := range splitOutgoingText(resolved) {
		sent, err := m.ProcessOutgoing(piece, depth+1, runner)
		if err != nil {
			return out, err
		}
		out = append(out, sent...)
	}
	return out, nil
}

var errNoScriptRunner = errors.New("trigger: action requires a script runner but none was supplied")
