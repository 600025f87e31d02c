/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package session

import (
	"context"
	"fmt"
	"strings"

	"smudgy/connection"
	"smudgy/styledline"
	"smudgy/trigger"
)

// Run is the session's single cooperative event loop: it is the only
// goroutine that ever touches s.manager, s.engine, or s.handle. It
// selects between connection.Events (from whichever connection.Run task
// is currently live) and Actions (from whatever callers hold
// s.Actions()), and returns once ctx is cancelled or an ActionShutdown is
// received.
//
// The original's two-channel priority select (a normal queue and an
// out-of-band one a running script could feed without deadlocking a
// busy deno event loop) collapses to this single select: scriptengine
// ops call back into the Host synchronously rather than posting to a
// channel, so there is no producer left that could ever deadlock against
// this loop the way the embedded-V8 original's could.
func (s *Session) Run(ctx context.Context) {
	defer s.teardown()
	defer unregisterSession(s.id)

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-s.connEvents:
			s.handleConnectionEvent(ev)
		case act := <-s.actions:
			if !s.handleAction(ctx, act) {
				return
			}
		}
	}
}

func (s *Session) handleConnectionEvent(ev connection.Event) {
	switch ev.Kind {
	case connection.EventEcho:
		s.echoLine(ev.Text)
	case connection.EventConnected:
		s.handle = ev.Handle
		if s.ui != nil {
			s.ui <- UIEvent{Kind: UIConnected}
		}
	case connection.EventDisconnected:
		s.handle = nil
		if s.ui != nil {
			s.ui <- UIEvent{Kind: UIDisconnected}
		}
	case connection.EventIncomingLine:
		s.handleIncomingLine(ev.Line)
	case connection.EventIncomingPartialLine:
		s.handleIncomingPartialLine(ev.Line)
	case connection.EventRequestRepaint:
		// Every mutation already emits its own UIEvent; a bare repaint
		// request has nothing further to add.
	}
}

func (s *Session) handleAction(ctx context.Context, act Action) bool {
	switch act.Kind {
	case ActionSend:
		s.processOutgoing(act.Text)
	case ActionSendRaw:
		s.sendRawText(act.Text)
	case ActionEcho:
		s.echoLine(act.Text)
	case ActionConnect:
		s.connect(ctx, act.Host, act.Port, act.SendOnConnect)
	case ActionReload:
		s.reload()
	case ActionExecHotkey:
		s.execHotkey(act.HotkeyName)
	case ActionShutdown:
		return false
	}
	return true
}

// handleIncomingLine dispatches a complete line through the trigger
// manager, transmits anything a firing trigger produced, and (unless a
// script gagged it) displays the line after any script-applied
// mutations — mirroring RuntimeAction::HandleIncomingLine plus the line
// operations the original threads through run_script's caller.
func (s *Session) handleIncomingLine(line styledline.StyledLine) {
	s.currentLine = line
	s.currentLineGagged = false

	sent, _, err := s.manager.DispatchIncoming(line, s.engine)
	if err != nil {
		s.warnLine(fmt.Sprintf("Error processing line: %v", err))
	}
	for _, out := range sent {
		s.transmitLine(out)
	}

	if !s.currentLineGagged {
		s.emitLine(s.currentLine, false)
	}
	s.currentLine = styledline.StyledLine{}
}

// handleIncomingPartialLine is handleIncomingLine's counterpart for a
// not-yet-terminated (prompt) line.
func (s *Session) handleIncomingPartialLine(line styledline.StyledLine) {
	s.currentLine = line
	s.currentLineGagged = false

	sent, _, err := s.manager.DispatchPartial(line, s.engine)
	if err != nil {
		s.warnLine(fmt.Sprintf("Error processing partial line: %v", err))
	}
	for _, out := range sent {
		s.transmitLine(out)
	}

	if !s.currentLineGagged {
		s.emitLine(s.currentLine, true)
	}
	s.currentLine = styledline.StyledLine{}
}

// processOutgoing runs text through the alias pipeline and transmits
// whatever it resolves to, same as ProcessOutgoing(text, 0, s.engine)
// called directly by a player typing a command.
func (s *Session) processOutgoing(text string) {
	sent, err := s.manager.ProcessOutgoing(text, 0, s.engine)
	if err != nil {
		s.warnLine(fmt.Sprintf("Error processing command: %v", err))
		return
	}
	for _, out := range sent {
		s.transmitLine(out)
	}
}

// sendRawText bypasses the alias pipeline entirely: each '\n'-delimited
// piece is transmitted and displayed verbatim.
func (s *Session) sendRawText(text string) {
	for _, line := range strings.Split(text, "\n") {
		s.transmitLine(line)
	}
}

// transmitLine writes line to the live connection (if any) with a
// trailing CRLF and displays it with the command-input styling,
// mirroring send_line_as_command_input.
func (s *Session) transmitLine(line string) {
	if s.handle != nil {
		s.handle.Send([]byte(line + "\r\n"))
	}
	s.emitLine(styledline.FromOutput(line), false)
}

func (s *Session) echoLine(text string) { s.emitLine(styledline.FromEcho(text), false) }
func (s *Session) warnLine(text string) { s.emitLine(styledline.FromWarn(text), false) }

func (s *Session) emitLine(line styledline.StyledLine, partial bool) {
	if s.ui != nil {
		s.ui <- UIEvent{Kind: UIAppendLine, Line: line, Partial: partial}
	}
}

// connect tears down any existing connection and dials host:port,
// forwarding every Event onto s.connEvents for this same loop to handle.
func (s *Session) connect(ctx context.Context, host string, port int, sendOnConnect string) {
	if s.cancelConn != nil {
		s.cancelConn()
	}
	connCtx, cancel := context.WithCancel(ctx)
	s.cancelConn = cancel

	onConnect := func(h *connection.Handle) {
		if sendOnConnect != "" {
			h.Send([]byte(sendOnConnect + "\r\n"))
		}
	}
	go connection.Run(connCtx, host, port, s.connEvents, onConnect)
}

// reload discards the script engine's compiled-script/function caches
// and modules, then rebuilds the trigger manager from a fresh read of
// every persisted automation definition — mirroring RuntimeAction::Reload,
// which replaces both the rustyscript runtime's script tables and the
// trigger::Manager wholesale.
func (s *Session) reload() {
	if err := s.engine.Reload(); err != nil {
		s.warnLine(fmt.Sprintf("Failed to reload: %v", err))
		return
	}

	if s.ui != nil {
		s.ui <- UIEvent{Kind: UIClearHotkeys}
	}

	previous := s.manager
	s.manager = trigger.NewManager()
	if err := s.loadAutomations(); err != nil {
		s.warnLine(fmt.Sprintf("Failed to reload automations: %v", err))
		s.manager = previous
		return
	}
	s.echoLine("Reloading...")
}

// execHotkey fires a named hotkey's action, transmitting whatever it
// resolves to exactly like a matched trigger or alias would.
func (s *Session) execHotkey(name string) {
	sent, ok, err := s.manager.FireHotkey(name, s.engine)
	if err != nil {
		s.warnLine(fmt.Sprintf("Error running hotkey %q: %v", name, err))
		return
	}
	if !ok {
		return
	}
	for _, out := range sent {
		s.transmitLine(out)
	}
}

// teardown cancels any live connection task. The trigger manager, script
// engine, and mapper need no explicit teardown of their own; the mapper
// in particular is owned by whatever constructed it (it may outlive this
// session if shared), so Run never calls Mapper.Close.
func (s *Session) teardown() {
	if s.cancelConn != nil {
		s.cancelConn()
	}
}
