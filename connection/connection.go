/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package connection

import (
	"context"
	"fmt"
	"net"

	"smudgy/clilog"
	"smudgy/vt"
)

// readBufferSize is the bounded inner read buffer spec'd for the
// connection task's socket loop.
const readBufferSize = 64 * 1024

// writeQueueDepth bounds how many outbound writes can be pending before
// Handle.Send blocks.
const writeQueueDepth = 16

type readResult struct {
	data []byte
	err  error
}

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

// Run dials host:port and, on success, runs the connection task's
// read/write loop until disconnected (via ctx cancellation, a read
// error, or a write error), emitting Events throughout. onConnect, if
// non-nil, is invoked once immediately after EventConnected is emitted
// (e.g. to send a profile's send-on-connect text).
//
// Run blocks until the task has fully torn down; callers run it in its
// own goroutine.
func Run(ctx context.Context, host string, port int, events chan<- Event, onConnect func(*Handle)) {
	addr := fmt.Sprintf("%s:%d", host, port)

	events <- Event{Kind: EventEcho, Text: fmt.Sprintf("Connecting to %s...", addr)}
	logInfof("connection: dialing %v", addr)

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		logErrorf("connection: dial %v failed: %v", addr, err)
		events <- Event{Kind: EventEcho, Text: "Connection failed"}
		return
	}

	if tcpConn, ok := conn.(*net.TCPConn); ok {
		_ = tcpConn.SetNoDelay(true)
	}

	writes := make(chan []byte, writeQueueDepth)
	done := make(chan struct{})
	handle := &Handle{writes: writes, done: done}

	events <- Event{Kind: EventConnected, Handle: handle}
	logInfof("connection: connected to %v", addr)
	if onConnect != nil {
		onConnect(handle)
	}

	runLoop(ctx, conn, writes, done, events)

	logInfof("connection: disconnected from %v", addr)
	events <- Event{Kind: EventDisconnected}
	events <- Event{Kind: EventEcho, Text: "Connection lost"}
}

func runLoop(ctx context.Context, conn net.Conn, writes <-chan []byte, done chan<- struct{}, events chan<- Event) {
	defer close(done)
	defer conn.Close()

	reads := make(chan readResult)
	go readLoop(conn, reads)

	proc := vt.New(&eventSink{events: events})

	for {
		select {
		case res := <-reads:
			if res.err != nil || len(res.data) == 0 {
				return
			}
			for _, b := range res.data {
				proc.Feed(b)
			}
			proc.NotifyEndOfBuffer()

		case data := <-writes:
			if _, err := conn.Write(data); err != nil {
				return
			}

		case <-ctx.Done():
			return
		}
	}
}

func readLoop(conn net.Conn, reads chan<- readResult) {
	buf := make([]byte, readBufferSize)
	for {
		n, err := conn.Read(buf)
		var data []byte
		if n > 0 {
			data = append([]byte(nil), buf[:n]...)
		}
		reads <- readResult{data: data, err: err}
		if err != nil {
			return
		}
	}
}
