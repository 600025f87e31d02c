/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package termbuf holds a session's scrollback: a fixed-capacity ring of
// StyledLines, forward/reverse iteration, absolute-line-number addressed
// mutation for triggers/aliases, and a prefix-based recent-word lookup
// used for tab completion.
package termbuf

import (
	"errors"
	"sort"
	"strings"

	"smudgy/styledline"
)

// DefaultCapacity is the ring's default line count.
const DefaultCapacity = 10000

// ErrLineNotAvailable is returned by PerformLineOperation when the
// requested absolute line number has already scrolled out of the buffer,
// or never existed.
var ErrLineNotAvailable = errors.New("termbuf: line not available")

type entry struct {
	line   styledline.StyledLine
	gagged bool
	open   bool // true if created by ExtendLine and may still receive more text
}

// Buffer is a fixed-capacity ring of lines. The zero value is not usable;
// construct with New.
type Buffer struct {
	capacity       int
	data           []entry
	head           int // index of the oldest entry
	count          int
	lastLineNumber uint64
}

// New builds a Buffer holding at most capacity lines. capacity <= 0 falls
// back to DefaultCapacity.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{capacity: capacity, data: make([]entry, capacity)}
}

// Len returns the number of lines currently retained.
func (b *Buffer) Len() int { return b.count }

// LastLineNumber returns the absolute number of the most recently
// committed or extended line. It is monotonically non-decreasing and
// survives eviction.
func (b *Buffer) LastLineNumber() uint64 { return b.lastLineNumber }

func (b *Buffer) slot(i int) int { return (b.head + i) % b.capacity }

func (b *Buffer) push(e entry) {
	if b.count < b.capacity {
		b.data[b.slot(b.count)] = e
		b.count++
		return
	}
	b.data[b.head] = e
	b.head = (b.head + 1) % b.capacity
}

// PushLine commits l as a brand new, closed line and increments
// LastLineNumber.
func (b *Buffer) PushLine(l styledline.StyledLine) {
	b.push(entry{line: l})
	b.lastLineNumber++
}

// ExtendLine appends l onto the current tail if it is still open
// (uncommitted); otherwise it starts a new open tail, incrementing
// LastLineNumber.
func (b *Buffer) ExtendLine(l styledline.StyledLine) {
	if b.count > 0 {
		tail := b.slot(b.count - 1)
		if b.data[tail].open {
			b.data[tail].line = b.data[tail].line.Append(l)
			return
		}
	}
	b.push(entry{line: l, open: true})
	b.lastLineNumber++
}

// offset returns the absolute line number of the slot just before the
// oldest retained entry — perform_line_operation's translation anchor.
func (b *Buffer) offset() uint64 {
	return b.lastLineNumber - uint64(b.count)
}

// localIndex translates an absolute line number to a 0-based index into
// the currently retained window, or ok=false if it has scrolled out or
// never existed.
func (b *Buffer) localIndex(absoluteLineNumber uint64) (idx int, ok bool) {
	off := b.offset()
	if absoluteLineNumber <= off {
		return 0, false
	}
	i := absoluteLineNumber - off - 1
	if i >= uint64(b.count) {
		return 0, false
	}
	return int(i), true
}

// PerformLineOperation applies op to the line at absoluteLineNumber. A
// Gag operation marks the line gagged rather than removing it from the
// buffer outright (so iteration can still skip it while preserving line
// numbering).
func (b *Buffer) PerformLineOperation(absoluteLineNumber uint64, op styledline.LineOperation) error {
	i, ok := b.localIndex(absoluteLineNumber)
	if !ok {
		return ErrLineNotAvailable
	}
	slot := b.slot(i)
	newLine, gagged := styledline.Apply(b.data[slot].line, op)
	b.data[slot].line = newLine
	if gagged {
		b.data[slot].gagged = true
	}
	return nil
}

// Line returns the line and gagged flag at absoluteLineNumber.
func (b *Buffer) Line(absoluteLineNumber uint64) (styledline.StyledLine, bool, bool) {
	i, ok := b.localIndex(absoluteLineNumber)
	if !ok {
		return styledline.StyledLine{}, false, false
	}
	e := b.data[b.slot(i)]
	return e.line, e.gagged, true
}

// Forward calls fn for each retained line, oldest first, stopping early
// if fn returns false.
func (b *Buffer) Forward(fn func(line styledline.StyledLine, gagged bool) bool) {
	for i := 0; i < b.count; i++ {
		e := b.data[b.slot(i)]
		if !fn(e.line, e.gagged) {
			return
		}
	}
}

// Reverse calls fn for each retained line, newest first, stopping early
// if fn returns false.
func (b *Buffer) Reverse(fn func(line styledline.StyledLine, gagged bool) bool) {
	for i := b.count - 1; i >= 0; i-- {
		e := b.data[b.slot(i)]
		if !fn(e.line, e.gagged) {
			return
		}
	}
}

// ReverseNumbered calls fn for each retained line, newest first, along
// with its reconstructed absolute line number.
func (b *Buffer) ReverseNumbered(fn func(absoluteLineNumber uint64, line styledline.StyledLine, gagged bool) bool) {
	off := b.offset()
	for i := b.count - 1; i >= 0; i-- {
		e := b.data[b.slot(i)]
		if !fn(off+uint64(i)+1, e.line, e.gagged) {
			return
		}
	}
}

// ExtractText concatenates the text of the lines spanning
// [fromLineNumber, toLineNumber] (inclusive, absolute numbers), joined
// with "\n". Lines that have scrolled out of the window are skipped.
func (b *Buffer) ExtractText(fromLineNumber, toLineNumber uint64) string {
	if toLineNumber < fromLineNumber {
		fromLineNumber, toLineNumber = toLineNumber, fromLineNumber
	}
	var sb strings.Builder
	first := true
	for n := fromLineNumber; n <= toLineNumber; n++ {
		line, _, ok := b.Line(n)
		if !ok {
			continue
		}
		if !first {
			sb.WriteByte('\n')
		}
		sb.WriteString(line.Text)
		first = false
	}
	return sb.String()
}
