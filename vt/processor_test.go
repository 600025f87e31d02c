package vt

import (
	"testing"

	"smudgy/styledline"
)

type recordingSink struct {
	lines        []styledline.StyledLine
	partialLines []styledline.StyledLine
	repaints     int
}

func (r *recordingSink) HandleIncomingLine(line styledline.StyledLine) {
	r.lines = append(r.lines, line)
}

func (r *recordingSink) HandleIncomingPartialLine(line styledline.StyledLine) {
	r.partialLines = append(r.partialLines, line)
}

func (r *recordingSink) RequestRepaint() {
	r.repaints++
}

func feed(p *Processor, s string) {
	for i := 0; i < len(s); i++ {
		p.Feed(s[i])
	}
}

func TestAnsiColoringProducesOneLineWithExpectedSpans(t *testing.T) {
	sink := &recordingSink{}
	p := New(sink)

	feed(p, "\x1b[31mhello \x1b[1;32mworld\n")

	if len(sink.lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(sink.lines))
	}
	line := sink.lines[0]
	if line.Text != "hello world" {
		t.Fatalf("unexpected text %q", line.Text)
	}
	if len(line.Spans) != 2 {
		t.Fatalf("expected 2 spans, got %d: %v", len(line.Spans), line.Spans)
	}

	first := line.Spans[0]
	if first.Begin != 0 || first.End != 6 {
		t.Fatalf("unexpected first span range %v", first)
	}
	if first.Style.Fg.Kind != styledline.KindAnsi || first.Style.Fg.Ansi != styledline.Red || first.Style.Fg.Bold {
		t.Fatalf("unexpected first span style %v", first.Style)
	}

	second := line.Spans[1]
	if second.Begin != 6 || second.End != 11 {
		t.Fatalf("unexpected second span range %v", second)
	}
	if second.Style.Fg.Kind != styledline.KindAnsi || second.Style.Fg.Ansi != styledline.Green || !second.Style.Fg.Bold {
		t.Fatalf("unexpected second span style %v", second.Style)
	}

	if line.Raw == nil || *line.Raw != "\x1b[31mhello \x1b[1;32mworld" {
		t.Fatalf("unexpected raw origin %v", line.Raw)
	}
}

func TestPalette256ColorCodeProducesExpectedRGB(t *testing.T) {
	sink := &recordingSink{}
	p := New(sink)

	feed(p, "\x1b[38;5;196mX\n")

	if len(sink.lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(sink.lines))
	}
	line := sink.lines[0]
	if line.Text != "X" {
		t.Fatalf("unexpected text %q", line.Text)
	}
	if len(line.Spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(line.Spans))
	}
	fg := line.Spans[0].Style.Fg
	if fg.Kind != styledline.KindRGB {
		t.Fatalf("expected RGB color, got %v", fg)
	}
	// 196 is in the 6x6x6 cube: v=180, r=5 g=0 b=0 -> r=round(5*255/6)=213.
	if fg.R != 213 || fg.G != 0 || fg.B != 0 {
		t.Fatalf("unexpected RGB %d,%d,%d", fg.R, fg.G, fg.B)
	}
}

func TestMalformedSGRLeavesStylePreviouslyEstablished(t *testing.T) {
	sink := &recordingSink{}
	p := New(sink)

	feed(p, "\x1b[31mred\x1b[38;9mstill-red\n")

	if len(sink.lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(sink.lines))
	}
	line := sink.lines[0]
	if line.Text != "redstill-red" {
		t.Fatalf("unexpected text %q", line.Text)
	}
	for _, s := range line.Spans {
		if s.Style.Fg.Kind != styledline.KindAnsi || s.Style.Fg.Ansi != styledline.Red {
			t.Fatalf("malformed SGR should not have changed the style: %v", s)
		}
	}
}

func TestPartialLineFlushedAtEndOfBuffer(t *testing.T) {
	sink := &recordingSink{}
	p := New(sink)

	feed(p, "prompt> ")
	p.NotifyEndOfBuffer()

	if len(sink.partialLines) != 1 {
		t.Fatalf("expected 1 partial line, got %d", len(sink.partialLines))
	}
	if sink.partialLines[0].Text != "prompt> " {
		t.Fatalf("unexpected partial text %q", sink.partialLines[0].Text)
	}
	if sink.repaints != 1 {
		t.Fatalf("expected 1 repaint, got %d", sink.repaints)
	}
	if len(sink.lines) != 0 {
		t.Fatalf("partial flush must not emit a complete line")
	}
}

func TestEndOfBufferWithNoPendingTextStillRepaintsButEmitsNoPartial(t *testing.T) {
	sink := &recordingSink{}
	p := New(sink)

	feed(p, "line one\n")
	p.NotifyEndOfBuffer()

	if len(sink.partialLines) != 0 {
		t.Fatalf("expected no partial line after a clean newline, got %d", len(sink.partialLines))
	}
	if sink.repaints != 1 {
		t.Fatalf("expected 1 repaint, got %d", sink.repaints)
	}
}

func TestCarriageReturnIsNotRecordedInRaw(t *testing.T) {
	sink := &recordingSink{}
	p := New(sink)

	feed(p, "abc\r\n")

	line := sink.lines[0]
	if line.Text != "abc" {
		t.Fatalf("unexpected text %q", line.Text)
	}
	if line.Raw == nil || *line.Raw != "abc" {
		t.Fatalf("raw must exclude the carriage return, got %v", line.Raw)
	}
}

func TestMultiByteUTF8Decoding(t *testing.T) {
	sink := &recordingSink{}
	p := New(sink)

	feed(p, "caf\xc3\xa9\n") // "café"

	if len(sink.lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(sink.lines))
	}
	if sink.lines[0].Text != "café" {
		t.Fatalf("unexpected text %q", sink.lines[0].Text)
	}
}
