/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package trigger implements the trigger/alias/hotkey pattern-dispatch
// engine: named, regex-matched rules whose actions forward text to the
// server, substitute capture templates, or invoke scripts, with bounded
// recursive re-entry of any textual output through the outgoing pipeline.
package trigger

import (
	"sort"
	"strings"
)

// ScriptID and FunctionID are opaque handles into a script engine's
// compiled-script and exposed-function tables. The trigger package never
// interprets them; it only carries them through to a ScriptRunner.
type ScriptID string
type FunctionID string

// ActionKind discriminates the Action tagged union.
type ActionKind int

const (
	ActionNoop ActionKind = iota
	ActionSendRaw
	ActionSendSimple
	ActionEvalJavascript
	ActionCallJavascriptFunction
)

// Action is what a matched Trigger, Alias, or Hotkey does.
type Action struct {
	Kind       ActionKind
	Text       string // SendRaw's literal text, or SendSimple's template
	ScriptID   ScriptID
	FunctionID FunctionID
}

// Noop does nothing.
var Noop = Action{Kind: ActionNoop}

// SendRaw forwards text verbatim to the transmit side.
func SendRaw(text string) Action { return Action{Kind: ActionSendRaw, Text: text} }

// SendSimple substitutes captures into template, splits the result on
// ';' or '\n', and recursively re-enters each piece through the outgoing
// pipeline.
func SendSimple(template string) Action { return Action{Kind: ActionSendSimple, Text: template} }

// EvalJavascript runs a whole compiled script; its string return value
// (if any) is recursively re-entered the same way as SendSimple's result.
func EvalJavascript(id ScriptID) Action { return Action{Kind: ActionEvalJavascript, ScriptID: id} }

// CallJavascriptFunction invokes a previously registered script function.
func CallJavascriptFunction(id FunctionID) Action {
	return Action{Kind: ActionCallJavascriptFunction, FunctionID: id}
}

// Capture is one `(name-or-"$i", value)` pair from a pattern match:
// "$0" is the whole match, "$1".."$k" are positional groups, and named
// groups keep their own name as the key.
type Capture struct {
	Key   string
	Value string
}

// substituteCaptures replaces every capture key occurring in template
// with its value. A named group's key is matched in template with a
// leading '$' ("target" replaces "$target"). Keys are replaced
// longest-first so "$1" does not accidentally swallow part of a
// "$10"-shaped key.
func substituteCaptures(template string, captures []Capture) string {
	if len(captures) == 0 {
		return template
	}
	ordered := append([]Capture(nil), captures...)
	sort.Slice(ordered, func(i, j int) bool { return len(ordered[i].Key) > len(ordered[j].Key) })

	result := template
	for _, c := range ordered {
		key := c.Key
		if !strings.HasPrefix(key, "$") {
			key = "$" + key
		}
		result = strings.ReplaceAll(result, key, c.Value)
	}
	return result
}

// splitOutgoingText splits a script or template result on ';' or '\n'
// ahead of recursive re-entry, dropping empty pieces.
func splitOutgoingText(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '\n' })
}
