package styledline

// OpKind discriminates the LineOperation tagged union scripts use to
// mutate a line that is "current" during trigger firing (spec §3, §4.F).
type OpKind int

const (
	OpInsert OpKind = iota
	OpReplace
	OpHighlight
	OpRemove
	OpGag
)

// LineOperation is a scripted mutation request against a single line.
// Insert/Replace/Highlight/Remove all clamp their indices to [0,len] and
// are total (Apply never fails). Replace inherits its style from the
// first existing span covering the edited region rather than taking one
// explicitly.
type LineOperation struct {
	Kind  OpKind
	Str   string
	Begin int
	End   int
	Style Style
}

// Apply performs op against line, returning the new line and whether the
// line should now be considered gagged (discarded from display, though
// the host may still retain a gagged marker for it).
func Apply(line StyledLine, op LineOperation) (StyledLine, bool) {
	switch op.Kind {
	case OpInsert:
		return line.Insert(op.Str, op.Begin, op.End, op.Style), false
	case OpReplace:
		style := styleAt(line, op.Begin)
		return line.Insert(op.Str, op.Begin, op.End, style), false
	case OpHighlight:
		return line.Highlight(op.Begin, op.End, op.Style), false
	case OpRemove:
		return line.Remove(op.Begin, op.End), false
	case OpGag:
		return line, true
	default:
		return line, false
	}
}

// styleAt returns the style of the first existing span touching begin,
// falling back to DefaultStyle if the line has no spans there (e.g. an
// empty line).
func styleAt(line StyledLine, begin int) Style {
	for _, s := range line.Spans {
		if s.Begin <= begin && begin < s.End {
			return s.Style
		}
	}
	if len(line.Spans) > 0 {
		return line.Spans[0].Style
	}
	return DefaultStyle
}
