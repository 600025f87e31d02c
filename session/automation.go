/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package session

import (
	"fmt"
	"strings"

	"smudgy/config"
	"smudgy/trigger"
)

// loadAutomations reads every persisted alias/trigger/hotkey definition
// for this session's server and installs it into s.manager, compiling
// JS/TS scripts through s.engine as it goes. A single malformed
// definition is logged and skipped rather than aborting the whole load,
// matching the "broken entries don't brick the server" convention
// config.ListServers/ListProfiles already establish.
func (s *Session) loadAutomations() error {
	aliases, err := config.LoadAliases(s.serverName)
	if err != nil {
		return fmt.Errorf("load aliases: %w", err)
	}
	for name, def := range aliases {
		action, err := s.compileAction(def.Language, def.Script)
		if err != nil {
			logErrorf("session: alias %q: %v", name, err)
			continue
		}
		a, err := trigger.NewAlias(name, def.Patterns, action, def.Enabled)
		if err != nil {
			logErrorf("session: alias %q: %v", name, err)
			continue
		}
		if err := s.manager.AddAlias(a); err != nil {
			logErrorf("session: alias %q: %v", name, err)
		}
	}

	triggers, err := config.LoadTriggers(s.serverName)
	if err != nil {
		return fmt.Errorf("load triggers: %w", err)
	}
	for name, def := range triggers {
		action, err := s.compileAction(def.Language, def.Script)
		if err != nil {
			logErrorf("session: trigger %q: %v", name, err)
			continue
		}
		t, err := trigger.NewTrigger(name, def.Patterns, def.RawPatterns, def.AntiPatterns, action, def.FiresOnPartialLines, def.Enabled)
		if err != nil {
			logErrorf("session: trigger %q: %v", name, err)
			continue
		}
		s.manager.AddTrigger(t)
	}

	hotkeys, err := config.LoadHotkeys(s.serverName)
	if err != nil {
		return fmt.Errorf("load hotkeys: %w", err)
	}
	for name, def := range hotkeys {
		action, err := s.compileAction(def.Language, def.Script)
		if err != nil {
			logErrorf("session: hotkey %q: %v", name, err)
			continue
		}
		key, mods := parseHotkeyKey(def.Key)
		s.manager.AddHotkey(trigger.NewHotkey(name, key, mods, action, def.Enabled))
		if s.ui != nil {
			s.ui <- UIEvent{Kind: UIRegisterHotkey, HotkeyName: name}
		}
	}

	return nil
}

// compileAction turns one definition's (language, script) pair into the
// Action its trigger/alias/hotkey should run. Plaintext compiles to a
// SendSimple capture-substitution template; JS/TS compile through the
// script engine into a recoverable ScriptID.
func (s *Session) compileAction(language config.Language, script string) (trigger.Action, error) {
	switch language {
	case config.LanguageJS:
		id, err := s.engine.AddScript(script)
		if err != nil {
			return trigger.Noop, err
		}
		return trigger.EvalJavascript(id), nil
	case config.LanguageTS:
		id, err := s.engine.CompileTypeScript(script)
		if err != nil {
			return trigger.Noop, err
		}
		return trigger.EvalJavascript(id), nil
	default:
		return trigger.SendSimple(script), nil
	}
}

// parseHotkeyKey splits a "ctrl+alt+f1"-style key definition into its
// base key and modifier set, matching the chorded-key strings bubbletea
// key messages are conventionally described with.
func parseHotkeyKey(def string) (string, []trigger.Modifier) {
	parts := strings.Split(def, "+")
	if len(parts) == 0 {
		return def, nil
	}
	var mods []trigger.Modifier
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "ctrl":
			mods = append(mods, trigger.ModCtrl)
		case "alt":
			mods = append(mods, trigger.ModAlt)
		case "shift":
			mods = append(mods, trigger.ModShift)
		case "super", "cmd", "meta":
			mods = append(mods, trigger.ModSuper)
		}
	}
	return strings.TrimSpace(parts[len(parts)-1]), mods
}
