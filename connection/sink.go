package connection

import "smudgy/styledline"

// eventSink adapts an Event channel to vt.Sink, so the VT processor
// feeding a connection task's read loop never has to know about Event
// itself.
type eventSink struct {
	events chan<- Event
}

func (s *eventSink) HandleIncomingLine(line styledline.StyledLine) {
	s.events <- Event{Kind: EventIncomingLine, Line: line}
}

func (s *eventSink) HandleIncomingPartialLine(line styledline.StyledLine) {
	s.events <- Event{Kind: EventIncomingPartialLine, Line: line}
}

func (s *eventSink) RequestRepaint() {
	s.events <- Event{Kind: EventRequestRepaint}
}
