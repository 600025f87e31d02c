package trigger

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"smudgy/styledline"
)

func plainLine(text string) styledline.StyledLine {
	return styledline.New(text, nil)
}

type nullRunner struct{}

func (nullRunner) EvalJavascript(ScriptID, []Capture, int) (string, bool, error)         { return "", false, nil }
func (nullRunner) CallJavascriptFunction(FunctionID, []Capture, int) (string, bool, error) { return "", false, nil }

func TestTriggerFiresOnMatchingLine(t *testing.T) {
	m := NewManager()
	tr, err := NewTrigger("kill", []string{`\bdies\b`}, nil, nil, SendRaw("loot corpse"), false, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.AddTrigger(tr)

	sent, firings, err := m.DispatchIncoming(plainLine("the goblin dies"), nullRunner{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(firings) != 1 || firings[0].TriggerName != "kill" {
		t.Fatalf("expected kill trigger to fire, got %v", firings)
	}
	if len(sent) != 1 || sent[0] != "loot corpse" {
		t.Fatalf("unexpected sent output %v", sent)
	}
}

func TestAntiPatternSuppressesTrigger(t *testing.T) {
	m := NewManager()
	tr, err := NewTrigger("kill", []string{`\bdies\b`}, nil, []string{"practice dummy"}, SendRaw("loot corpse"), false, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.AddTrigger(tr)

	_, firings, err := m.DispatchIncoming(plainLine("the practice dummy dies"), nullRunner{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(firings) != 0 {
		t.Fatalf("expected anti-pattern to suppress the trigger, got %v", firings)
	}
}

func TestDisabledTriggerDoesNotFire(t *testing.T) {
	m := NewManager()
	tr, err := NewTrigger("kill", []string{`dies`}, nil, nil, SendRaw("loot"), false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.AddTrigger(tr)

	_, firings, err := m.DispatchIncoming(plainLine("the goblin dies"), nullRunner{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(firings) != 0 {
		t.Fatalf("expected disabled trigger not to fire, got %v", firings)
	}
}

func TestPromptTriggerFiresOnBothCompleteAndPartialLines(t *testing.T) {
	m := NewManager()
	tr, err := NewTrigger("prompt-hp", []string{`^HP: \d+>`}, nil, nil, SendRaw("noop"), true, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.AddTrigger(tr)

	_, completeFirings, err := m.DispatchIncoming(plainLine("HP: 100>"), nullRunner{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(completeFirings) != 1 {
		t.Fatalf("a prompt trigger must still fire on a complete line, got %v", completeFirings)
	}

	_, partialFirings, err := m.DispatchPartial(plainLine("HP: 100>"), nullRunner{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(partialFirings) != 1 {
		t.Fatalf("expected the prompt trigger to fire on a partial line too, got %v", partialFirings)
	}
}

func TestNonPromptTriggerDoesNotFireOnPartialLine(t *testing.T) {
	m := NewManager()
	tr, err := NewTrigger("normal", []string{`hello`}, nil, nil, SendRaw("noop"), false, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.AddTrigger(tr)

	_, firings, err := m.DispatchPartial(plainLine("hello"), nullRunner{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(firings) != 0 {
		t.Fatalf("a non-prompt trigger must not fire on a partial line, got %v", firings)
	}
}

func TestAliasExpandsWithCaptureSubstitution(t *testing.T) {
	m := NewManager()
	alias, err := NewAlias("gt", []string{`^gt (?P<target>\w+)$`}, SendSimple("get $target from corpse"), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.AddAlias(alias); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sent, err := m.ProcessOutgoing("gt sword", 0, nullRunner{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sent) != 1 || sent[0] != "get sword from corpse" {
		t.Fatalf("unexpected sent output %v", sent)
	}
}

func TestUnmatchedOutgoingTextPassesThroughVerbatim(t *testing.T) {
	m := NewManager()
	alias, err := NewAlias("n", []string{`^n$`}, SendRaw("north"), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.AddAlias(alias); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sent, err := m.ProcessOutgoing("say hello", 0, nullRunner{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sent) != 1 || sent[0] != "say hello" {
		t.Fatalf("expected unmatched text to pass through verbatim, got %v", sent)
	}
}

func TestDisabledAliasDoesNotFire(t *testing.T) {
	m := NewManager()
	alias, err := NewAlias("n", []string{`^n$`}, SendRaw("north"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.AddAlias(alias); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sent, err := m.ProcessOutgoing("n", 0, nullRunner{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sent) != 0 {
		t.Fatalf("expected a disabled alias not to produce output, got %v", sent)
	}
}

func TestSendSimpleRecursesThroughAliasesOnSplitPieces(t *testing.T) {
	m := NewManager()
	combo, err := NewAlias("cast", []string{`^cast$`}, SendSimple("prep;swing"), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	swing, err := NewAlias("swing", []string{`^swing$`}, SendRaw("swing sword"), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, a := range []*Alias{combo, swing} {
		if err := m.AddAlias(a); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	sent, err := m.ProcessOutgoing("cast", 0, nullRunner{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"prep", "swing sword"}
	if len(sent) != len(want) {
		t.Fatalf("unexpected sent output %v", sent)
	}
	for i := range want {
		if sent[i] != want[i] {
			t.Fatalf("unexpected sent output %v", sent)
		}
	}
}

type loopingRunner struct{}

func (loopingRunner) EvalJavascript(ScriptID, []Capture, int) (string, bool, error) {
	return "go", true, nil
}
func (loopingRunner) CallJavascriptFunction(FunctionID, []Capture, int) (string, bool, error) {
	return "", false, nil
}

func TestDepthLimitStopsSelfTriggeringAlias(t *testing.T) {
	m := NewManager()
	a, err := NewAlias("go", []string{`^go$`}, EvalJavascript(ScriptID("loop")), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.AddAlias(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = m.ProcessOutgoing("go", 0, loopingRunner{})
	if !errors.Is(err, ErrDepthLimitReached) {
		t.Fatalf("expected depth limit error, got %v", err)
	}
}

func TestReplacingByNameOverwritesPreviousDefinition(t *testing.T) {
	m := NewManager()
	first, _ := NewTrigger("hp", []string{`first`}, nil, nil, SendRaw("a"), false, true)
	second, _ := NewTrigger("hp", []string{`second`}, nil, nil, SendRaw("b"), false, true)
	m.AddTrigger(first)
	m.AddTrigger(second)

	if len(m.triggers) != 1 {
		t.Fatalf("expected replacement to keep a single trigger, got %d", len(m.triggers))
	}

	_, firings, err := m.DispatchIncoming(plainLine("second"), nullRunner{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(firings) != 1 {
		t.Fatalf("expected the replacement trigger's pattern to be active, got %v", firings)
	}
}

func TestRawPatternMatchesAgainstOriginBytes(t *testing.T) {
	m := NewManager()
	tr, err := NewTrigger("ansi-red", nil, []string{`\x1b\[31m`}, nil, SendRaw("noticed-red"), false, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.AddTrigger(tr)

	line := styledline.NewWithRaw("alert", nil, []byte("\x1b[31malert"))
	_, firings, err := m.DispatchIncoming(line, nullRunner{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(firings) != 1 {
		t.Fatalf("expected the raw-pattern trigger to fire, got %v", firings)
	}
}

func TestCaptureOrdering(t *testing.T) {
	h := hit{re: regexp.MustCompile(`(\w+) (?P<second>\w+)`), subject: "alpha beta"}
	caps := buildCaptures(h)
	if len(caps) != 3 {
		t.Fatalf("expected 3 captures, got %d: %v", len(caps), caps)
	}
	if caps[0].Key != "$0" || caps[0].Value != "alpha beta" {
		t.Fatalf("unexpected whole-match capture %v", caps[0])
	}
	if caps[1].Key != "$1" || caps[1].Value != "alpha" {
		t.Fatalf("unexpected positional capture %v", caps[1])
	}
	if caps[2].Key != "second" || caps[2].Value != "beta" {
		t.Fatalf("unexpected named capture %v", caps[2])
	}
}

func TestSplitOutgoingTextOnSemicolonAndNewline(t *testing.T) {
	pieces := splitOutgoingText("a;b\nc")
	if strings.Join(pieces, "|") != "a|b|c" {
		t.Fatalf("unexpected split %v", pieces)
	}
}
