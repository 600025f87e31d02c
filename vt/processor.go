package vt

import (
	"unicode/utf8"

	"smudgy/styledline"
)

// inputBufferCapacity is the pre-sizing hint for the pending text/raw
// buffers (spec §4.B "Buffers are pre-sized").
const inputBufferCapacity = 1024

// parseState is the outer byte-stream state: Ground (printing), Escape
// (saw ESC), or CSI (accumulating a "ESC [ ... final-byte" sequence).
type parseState int

const (
	stateGround parseState = iota
	stateEscape
	stateCSI
)

// Processor is the byte-oriented VT/ANSI state machine described in spec
// §4.B. It is not safe for concurrent use; a session's connection task
// feeds it bytes from a single reading goroutine.
type Processor struct {
	cursorStyle styledline.Style
	state       parseState

	text []rune
	raw  []byte
	utf8 []byte // partially-accumulated multi-byte rune
	spans []styledline.Span

	csiParams  []csiParam
	csiHasNum  bool
	csiNum     int64

	sink Sink
}

// Sink receives the events a Processor emits while decoding a byte stream.
type Sink interface {
	// HandleIncomingLine is called once per completed (newline-terminated) line.
	HandleIncomingLine(line styledline.StyledLine)
	// HandleIncomingPartialLine is called for a non-empty, not-yet-terminated
	// line flushed at end-of-buffer (a prompt).
	HandleIncomingPartialLine(line styledline.StyledLine)
	// RequestRepaint is called once per end-of-buffer notification.
	RequestRepaint()
}

// New builds a Processor starting in the default cursor style (White,
// non-bold foreground, default background) that reports to sink.
func New(sink Sink) *Processor {
	return &Processor{
		cursorStyle: styledline.DefaultStyle,
		text:        make([]rune, 0, inputBufferCapacity),
		raw:         make([]byte, 0, inputBufferCapacity),
		sink:        sink,
	}
}

// changeStyle closes a span for the text accumulated under the current
// style and begins tracking new_style as the cursor style.
func (p *Processor) changeStyle(newStyle styledline.Style) {
	begin := 0
	if n := len(p.spans); n > 0 {
		begin = p.spans[n-1].End
	}
	if end := len(p.text); end > begin {
		p.spans = append(p.spans, styledline.Span{Begin: begin, End: end, Style: p.cursorStyle})
	}
	p.cursorStyle = newStyle
}

// drainPendingLine closes the final span and builds a StyledLine from the
// currently accumulated text/spans/raw, clearing the processor's buffers.
func (p *Processor) drainPendingLine() styledline.StyledLine {
	p.changeStyle(p.cursorStyle)
	text := string(p.text)
	line := styledline.NewWithRaw(text, p.spans, p.raw)

	p.text = p.text[:0]
	p.raw = p.raw[:0]
	p.spans = nil
	return line
}

// shrink periodically trims the pending buffers back down to their
// pre-sizing hint after a line is emitted (spec §4.B).
func (p *Processor) shrink() {
	if cap(p.text) > inputBufferCapacity*4 {
		p.text = make([]rune, 0, inputBufferCapacity)
	}
	if cap(p.raw) > inputBufferCapacity*4 {
		p.raw = make([]byte, 0, inputBufferCapacity)
	}
}

func (p *Processor) commitLine() {
	line := p.drainPendingLine()
	p.sink.HandleIncomingLine(line)
	p.shrink()
}

// NotifyEndOfBuffer flushes any pending partial line (a prompt) and
// requests a repaint. Called once per socket read completion.
func (p *Processor) NotifyEndOfBuffer() {
	if len(p.text) > 0 {
		line := p.drainPendingLine()
		p.sink.HandleIncomingPartialLine(line)
		p.shrink()
	}
	p.sink.RequestRepaint()
}

// Feed processes a single incoming byte: the raw recorder records it
// unless it is '\n' or '\r', then it is run through the VT parser.
func (p *Processor) Feed(b byte) {
	if b != '\n' && b != '\r' {
		p.raw = append(p.raw, b)
	}
	p.parseByte(b)
}

func (p *Processor) parseByte(b byte) {
	switch p.state {
	case stateGround:
		p.groundByte(b)
	case stateEscape:
		p.escapeByte(b)
	case stateCSI:
		p.csiByte(b)
	}
}

func (p *Processor) groundByte(b byte) {
	switch {
	case b == 0x1B: // ESC
		p.state = stateEscape
	case b == '\n':
		p.commitLine()
	case b == '\r':
		// ignored (c0 control, not newline)
	case b < 0x20:
		// other C0 controls: execute_c0_or_c1, ignored unless '\n'
	case b < 0x80:
		p.text = append(p.text, rune(b))
	default:
		p.feedUTF8Continuation(b)
	}
}

// feedUTF8Continuation accumulates multi-byte UTF-8 sequences byte by
// byte, appending the decoded rune once complete. Invalid sequences are
// replaced with utf8.RuneError and advance by one byte, matching the
// byte/UTF-8-level contract (no locale-aware shaping).
func (p *Processor) feedUTF8Continuation(b byte) {
	p.utf8 = append(p.utf8, b)
	r, size := utf8.DecodeRune(p.utf8)
	if r == utf8.RuneError && size <= 1 {
		if !utf8.FullRune(p.utf8) {
			return // wait for more continuation bytes
		}
		p.text = append(p.text, utf8.RuneError)
		p.utf8 = p.utf8[:0]
		return
	}
	if size == len(p.utf8) {
		p.text = append(p.text, r)
		p.utf8 = p.utf8[:0]
	}
}

func (p *Processor) escapeByte(b byte) {
	if b == '[' {
		p.state = stateCSI
		p.csiParams = p.csiParams[:0]
		p.csiHasNum = false
		p.csiNum = 0
		return
	}
	// other escape dispatches (esc_dispatch) are ignored
	p.state = stateGround
}

func (p *Processor) csiByte(b byte) {
	switch {
	case b >= '0' && b <= '9':
		p.csiNum = p.csiNum*10 + int64(b-'0')
		p.csiHasNum = true
	case b == ';':
		if p.csiHasNum {
			p.csiParams = append(p.csiParams, intParam(p.csiNum))
			p.csiNum = 0
			p.csiHasNum = false
		}
		p.csiParams = append(p.csiParams, byteParam(';'))
	case b >= 0x40 && b <= 0x7E:
		if p.csiHasNum {
			p.csiParams = append(p.csiParams, intParam(p.csiNum))
		}
		p.dispatchCSI(b)
		p.state = stateGround
	default:
		// intermediate bytes (0x20-0x3F besides digits/';') are ignored
	}
}

func (p *Processor) dispatchCSI(final byte) {
	if final == 'm' {
		newStyle := processSGR(p.cursorStyle, p.csiParams)
		p.changeStyle(newStyle)
	}
	// other CSI dispatches are ignored
}
