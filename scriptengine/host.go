/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package scriptengine

import (
	"smudgy/styledline"
	"smudgy/trigger"
)

// Host is the session-facing surface an Engine calls into from JS host
// ops. A session implements Host; scriptengine never imports the session
// package, so the dependency only runs one way.
//
// Every method here corresponds 1:1 to a host op in §4.F's minimum
// surface. Ops run on the same goroutine as the session loop (goja has
// no isolate thread of its own the way the embedded-V8 original does),
// so these calls are ordinary synchronous method calls rather than a
// channel send — a script calling smudgy.send() re-enters the trigger
// manager's outgoing pipeline before the op returns.
type Host interface {
	// Echo writes text to the session's buffer without sending it to
	// the server or passing it through the alias pipeline.
	Echo(text string)
	// Send forwards text through the alias pipeline, same as if the
	// player had typed it.
	Send(text string)
	// SendRaw forwards text to the server verbatim, bypassing aliases.
	SendRaw(text string)

	// CurrentSessionID is this script engine's owning session.
	CurrentSessionID() int
	// SessionIDs lists every session currently registered.
	SessionIDs() []int
	// SessionCharacter reports the profile name/subtext of a session,
	// or ok=false if the session id is unknown.
	SessionCharacter(id int) (name, subtext string, ok bool)

	// AddAlias registers a plaintext-scripted alias.
	AddAlias(name string, patterns []string, script string) error
	// AddTrigger registers a plaintext-scripted trigger.
	AddTrigger(name string, patterns, rawPatterns, antiPatterns []string, script string, prompt, enabled bool) error
	// AddJavascriptFunctionAlias registers an alias whose action invokes
	// a captured JS function by id.
	AddJavascriptFunctionAlias(name string, patterns []string, fn trigger.FunctionID) error
	// AddJavascriptFunctionTrigger registers a trigger whose action
	// invokes a captured JS function by id.
	AddJavascriptFunctionTrigger(name string, patterns, rawPatterns, antiPatterns []string, fn trigger.FunctionID, prompt, enabled bool) error
	// SetAliasEnabled flips a named alias's enabled flag.
	SetAliasEnabled(name string, enabled bool)
	// SetTriggerEnabled flips a named trigger's enabled flag.
	SetTriggerEnabled(name string, enabled bool)

	// MutateCurrentLine enqueues a line operation against whatever line
	// is "current" — valid only while a trigger firing is in progress.
	MutateCurrentLine(op styledline.LineOperation)
}

// NullHost is a Host that silently drops every call. Useful for
// constructing an Engine before a session is wired up, and in tests that
// only exercise script compilation.
type NullHost struct{}

func (NullHost) Echo(string)    {}
func (NullHost) Send(string)    {}
func (NullHost) SendRaw(string) {}

func (NullHost) CurrentSessionID() int { return 0 }
func (NullHost) SessionIDs() []int     { return nil }
func (NullHost) SessionCharacter(int) (string, string, bool) { return "", "", false }

func (NullHost) AddAlias(string, []string, string) error { return nil }
func (NullHost) AddTrigger(string, []string, []string, []string, string, bool, bool) error {
	return nil
}
func (NullHost) AddJavascriptFunctionAlias(string, []string, trigger.FunctionID) error { return nil }
func (NullHost) AddJavascriptFunctionTrigger(string, []string, []string, []string, trigger.FunctionID, bool, bool) error {
	return nil
}
func (NullHost) SetAliasEnabled(string, bool)   {}
func (NullHost) SetTriggerEnabled(string, bool) {}

func (NullHost) MutateCurrentLine(styledline.LineOperation) {}
