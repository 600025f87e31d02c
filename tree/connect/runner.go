/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package connect

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"smudgy/busywait"
	"smudgy/config"
	"smudgy/session"
	"smudgy/stylesheet"
)

// runSession connects to serverName/profileName and blocks until the
// session ends, printing decoded lines to out and sending each line read
// from in as a command. color controls whether printed lines carry ANSI
// styling. spin shows a spinner while the initial connection attempt is
// outstanding; only meaningful when no other bubbletea program (i.e.
// Mother) already owns the terminal.
func runSession(out io.Writer, in io.Reader, serverName, profileName string, color, spin bool) error {
	if serverName == "" {
		return fmt.Errorf("connect: --server is required")
	}
	if profileName == "" {
		profileName = "default"
	}

	serverCfg, err := config.LoadServerConfig(serverName)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	profileCfg, err := config.LoadProfileConfig(serverName, profileName)
	if err != nil {
		profileCfg = config.ProfileConfig{}
	}

	ui := make(chan session.UIEvent, 64)
	sess, err := session.New(serverName, profileName, profileCfg.Caption, nil, ui)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		sess.Run(ctx)
		close(done)
	}()

	sess.Actions() <- session.Connect(serverCfg.Host, serverCfg.Port, profileCfg.SendOnConnect)

	var pending []session.UIEvent
	if spin {
		pending = waitForConnectOutcome(ui, done)
	}

	go pumpStdin(in, sess)

	for _, ev := range pending {
		printEvent(out, ev, color)
	}

	for {
		select {
		case ev := <-ui:
			printEvent(out, ev, color)
		case <-done:
			drainRemaining(out, ui, color)
			return nil
		}
	}
}

// waitForConnectOutcome shows a spinner until the session reports the
// outcome of its initial connection attempt (or the session ends first),
// buffering any UIEvents observed in the meantime so the caller can
// replay them once the spinner has released the terminal.
func waitForConnectOutcome(ui <-chan session.UIEvent, done <-chan struct{}) []session.UIEvent {
	var seen []session.UIEvent
	p := busywait.CobraNew()
	settled := make(chan struct{})
	go func() {
		defer close(settled)
		for {
			select {
			case ev := <-ui:
				seen = append(seen, ev)
				if ev.Kind == session.UIConnected || ev.Kind == session.UIDisconnected {
					p.Quit()
					return
				}
			case <-done:
				p.Quit()
				return
			}
		}
	}()
	p.Run()
	<-settled
	return seen
}

func printEvent(out io.Writer, ev session.UIEvent, color bool) {
	switch ev.Kind {
	case session.UIAppendLine:
		fmt.Fprintln(out, stylesheet.RenderLine(ev.Line, color))
	case session.UIConnected:
		fmt.Fprintln(out, "-- connected --")
	case session.UIDisconnected:
		fmt.Fprintln(out, "-- disconnected --")
	}
}

// drainRemaining flushes any UIEvents the session emitted before Run
// returned (e.g. a final UIDisconnected) that raced the done close.
func drainRemaining(out io.Writer, ui <-chan session.UIEvent, color bool) {
	for {
		select {
		case ev := <-ui:
			printEvent(out, ev, color)
		default:
			return
		}
	}
}

// pumpStdin forwards each line read from in as an ActionSend, then
// signals shutdown on EOF so runSession's select unblocks.
func pumpStdin(in io.Reader, sess *session.Session) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		sess.Actions() <- session.Send(scanner.Text())
	}
	sess.Actions() <- session.Shutdown()
}
