package trigger

// Modifier is one held keyboard modifier.
type Modifier int

const (
	ModCtrl Modifier = iota
	ModAlt
	ModShift
	ModSuper
)

// Hotkey binds a logical or physical key, optionally chorded with
// modifiers, to an Action.
type Hotkey struct {
	Name      string
	Key       string
	Modifiers map[Modifier]struct{}
	Action    Action
	Enabled   bool
}

// NewHotkey builds a Hotkey from a set of modifiers.
func NewHotkey(name, key string, modifiers []Modifier, action Action, enabled bool) *Hotkey {
	set := make(map[Modifier]struct{}, len(modifiers))
	for _, m := range modifiers {
		set[m] = struct{}{}
	}
	return &Hotkey{Name: name, Key: key, Modifiers: set, Action: action, Enabled: enabled}
}

// HasModifier reports whether m is part of the hotkey's chord.
func (h *Hotkey) HasModifier(m Modifier) bool {
	_, ok := h.Modifiers[m]
	return ok
}
