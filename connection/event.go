/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package connection runs a single session's TCP connection task: it
// dials the server, feeds the byte stream through a vt.Processor, and
// exposes a write handle back to the caller, all communicated through an
// Event channel so this package never has to import the session package
// that consumes it.
package connection

import "smudgy/styledline"

// EventKind discriminates the Event tagged union a connection task emits.
type EventKind int

const (
	// EventEcho carries a host-authored status line ("Connecting to...",
	// "Connection failed", "Connection lost") for the caller to surface.
	EventEcho EventKind = iota
	// EventConnected carries the write Handle the caller should hold onto
	// (and eventually discard) to send outbound bytes.
	EventConnected
	// EventDisconnected signals the task's read/write loop has ended.
	EventDisconnected
	// EventIncomingLine carries one complete (newline-terminated) line.
	EventIncomingLine
	// EventIncomingPartialLine carries a not-yet-terminated prompt line.
	EventIncomingPartialLine
	// EventRequestRepaint asks the caller to repaint its view.
	EventRequestRepaint
)

// Event is one message emitted by a connection task.
type Event struct {
	Kind   EventKind
	Text   string
	Handle *Handle
	Line   styledline.StyledLine
}
