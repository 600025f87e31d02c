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

	"smudgy/clilog"
	"smudgy/connection"
	"smudgy/mapcache"
	"smudgy/scriptengine"
	"smudgy/styledline"
	"smudgy/trigger"
)

func logInfof(format string, args ...any) {
	if clilog.Writer != nil {
		clilog.Writer.Infof(format, args...)
	}
}

func logErrorf(format string, args ...any) {
	if clilog.Writer != nil {
		clilog.Writer.Errorf(format, args...)
	}
}

// Session is one connected (or connecting) MUD session.
type Session struct {
	id          int
	serverName  string
	profileName string
	caption     string

	manager *trigger.Manager
	engine  *scriptengine.Engine
	mapper  *mapcache.Mapper

	actions    chan Action
	connEvents chan connection.Event
	ui         chan<- UIEvent

	handle     *connection.Handle
	cancelConn context.CancelFunc

	// currentLine/currentLineGagged are valid only while a trigger firing
	// is in progress on this goroutine; MutateCurrentLine (called
	// synchronously, re-entrantly, from inside script execution) edits
	// them directly, the way the original threads an &mut StyledLine
	// through run_script's caller instead of round-tripping through a
	// channel.
	currentLine       styledline.StyledLine
	currentLineGagged bool
}

// New builds a Session for serverName/profileName, wires up its trigger
// manager and script engine (passing the Session itself as the engine's
// Host), loads persisted automation definitions, and registers the
// session so other sessions' scripts can see it via smudgy.getSessions().
// mapper may be nil: the session then simply has no map support, and its
// script engine's smudgy.mapper.* ops report ErrMapperNotEnabled. ui may
// be nil for a headless session (e.g. a test, or a script-only worker).
func New(serverName, profileName, caption string, mapper *mapcache.Mapper, ui chan<- UIEvent) (*Session, error) {
	s := &Session{
		serverName:  serverName,
		profileName: profileName,
		caption:     caption,
		manager:     trigger.NewManager(),
		mapper:      mapper,
		actions:     make(chan Action, 64),
		connEvents:  make(chan connection.Event, 64),
		ui:          ui,
	}

	engine, err := scriptengine.New(serverName, s, mapper)
	if err != nil {
		return nil, fmt.Errorf("session: construct script engine: %w", err)
	}
	s.engine = engine

	if err := s.loadAutomations(); err != nil {
		return nil, fmt.Errorf("session: load automations: %w", err)
	}

	s.id = registerSession(s)

	if s.ui != nil {
		s.ui <- UIEvent{Kind: UIRuntimeReady}
	}

	return s, nil
}

// ID is this session's registry id, the same value scripts see from
// smudgy.getCurrentSession() when running on this session's engine.
func (s *Session) ID() int { return s.id }

// Actions returns the channel Action values are sent on to direct this
// session; the caller (a UI, a hotkey dispatcher, cobra command) owns
// sending, Session.Run owns receiving.
func (s *Session) Actions() chan<- Action { return s.actions }

var _ scriptengine.Host = (*Session)(nil)

// Echo implements scriptengine.Host.
func (s *Session) Echo(text string) { s.echoLine(text) }

// Send implements scriptengine.Host.
func (s *Session) Send(text string) { s.processOutgoing(text) }

// SendRaw implements scriptengine.Host.
func (s *Session) SendRaw(text string) { s.sendRawText(text) }

// CurrentSessionID implements scriptengine.Host.
func (s *Session) CurrentSessionID() int { return s.id }

// SessionIDs implements scriptengine.Host.
func (s *Session) SessionIDs() []int { return sessionIDs() }

// SessionCharacter implements scriptengine.Host.
func (s *Session) SessionCharacter(id int) (name, subtext string, ok bool) {
	target, found := lookupSession(id)
	if !found {
		return "", "", false
	}
	return target.caption, target.serverName, true
}

// AddAlias implements scriptengine.Host.
func (s *Session) AddAlias(name string, patterns []string, script string) error {
	action := trigger.SendSimple(script)
	a, err := trigger.NewAlias(name, patterns, action, true)
	if err != nil {
		return err
	}
	return s.manager.AddAlias(a)
}

// AddTrigger implements scriptengine.Host.
func (s *Session) AddTrigger(name string, patterns, rawPatterns, antiPatterns []string, script string, prompt, enabled bool) error {
	action := trigger.SendSimple(script)
	t, err := trigger.NewTrigger(name, patterns, rawPatterns, antiPatterns, action, prompt, enabled)
	if err != nil {
		return err
	}
	s.manager.AddTrigger(t)
	return nil
}

// AddJavascriptFunctionAlias implements scriptengine.Host.
func (s *Session) AddJavascriptFunctionAlias(name string, patterns []string, fn trigger.FunctionID) error {
	a, err := trigger.NewAlias(name, patterns, trigger.CallJavascriptFunction(fn), true)
	if err != nil {
		return err
	}
	return s.manager.AddAlias(a)
}

// AddJavascriptFunctionTrigger implements scriptengine.Host.
func (s *Session) AddJavascriptFunctionTrigger(name string, patterns, rawPatterns, antiPatterns []string, fn trigger.FunctionID, prompt, enabled bool) error {
	t, err := trigger.NewTrigger(name, patterns, rawPatterns, antiPatterns, trigger.CallJavascriptFunction(fn), prompt, enabled)
	if err != nil {
		return err
	}
	s.manager.AddTrigger(t)
	return nil
}

// SetAliasEnabled implements scriptengine.Host.
func (s *Session) SetAliasEnabled(name string, enabled bool) { s.manager.EnableAlias(name, enabled) }

// SetTriggerEnabled implements scriptengine.Host.
func (s *Session) SetTriggerEnabled(name string, enabled bool) {
	s.manager.EnableTrigger(name, enabled)
}

// MutateCurrentLine implements scriptengine.Host.
func (s *Session) MutateCurrentLine(op styledline.LineOperation) {
	line, gagged := styledline.Apply(s.currentLine, op)
	s.currentLine = line
	if gagged {
		s.currentLineGagged = true
	}
}
