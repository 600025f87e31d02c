/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package session is one connected (or connecting) MUD session: it owns
// a trigger.Manager, a scriptengine.Engine, an optional mapcache.Mapper,
// and the connection.Handle for whichever connection.Run task is
// currently live, and runs a single cooperative event loop that is the
// only goroutine allowed to touch any of them (matching SPEC_FULL.md's
// single-writer-per-session model).
package session

// ActionKind discriminates the Action tagged union a caller (the UI, a
// hotkey binding, or another session) sends to ask a Session to do
// something. Unlike the original's single RuntimeAction enum carrying
// both control actions and raw connection events, here control actions
// and connection.Events travel on two separate channels (see Session.Run)
// since Go gives each its own natural producer; Action only needs to
// carry what a caller can actually originate.
type ActionKind int

const (
	// ActionSend forwards Text through the alias pipeline, as if the
	// player had typed it.
	ActionSend ActionKind = iota
	// ActionSendRaw forwards Text to the server verbatim, split on '\n',
	// bypassing aliases entirely.
	ActionSendRaw
	// ActionEcho displays Text without sending it anywhere.
	ActionEcho
	// ActionConnect dials Host:Port, replacing any existing connection.
	ActionConnect
	// ActionReload discards and reloads the script engine, trigger
	// manager, and automation definitions from disk.
	ActionReload
	// ActionExecHotkey fires the hotkey named HotkeyName.
	ActionExecHotkey
	// ActionShutdown ends the session's event loop.
	ActionShutdown
)

// Action is one message sent to a Session's action channel.
type Action struct {
	Kind          ActionKind
	Text          string
	Host          string
	Port          int
	SendOnConnect string
	HotkeyName    string
}

// Send builds an ActionSend.
func Send(text string) Action { return Action{Kind: ActionSend, Text: text} }

// SendRaw builds an ActionSendRaw.
func SendRaw(text string) Action { return Action{Kind: ActionSendRaw, Text: text} }

// Echo builds an ActionEcho.
func Echo(text string) Action { return Action{Kind: ActionEcho, Text: text} }

// Connect builds an ActionConnect.
func Connect(host string, port int, sendOnConnect string) Action {
	return Action{Kind: ActionConnect, Host: host, Port: port, SendOnConnect: sendOnConnect}
}

// Reload builds an ActionReload.
func Reload() Action { return Action{Kind: ActionReload} }

// ExecHotkey builds an ActionExecHotkey.
func ExecHotkey(name string) Action { return Action{Kind: ActionExecHotkey, HotkeyName: name} }

// Shutdown builds an ActionShutdown.
func Shutdown() Action { return Action{Kind: ActionShutdown} }
