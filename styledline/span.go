package styledline

// Style pairs a foreground and background Color.
type Style struct {
	Fg Color
	Bg Color
}

// DefaultStyle is the cursor style a VT processor starts in and resets to on SGR 0.
var DefaultStyle = Style{Fg: DefaultForeground, Bg: DefaultBackgroundColor}

// Span is a half-open, style-tagged range over a StyledLine's text.
// Invariant (enforced by every edit in this package): for a given line,
// spans are ordered by Begin, non-overlapping, and their union covers
// [0, len(text)) except for the empty-line placeholder span.
type Span struct {
	Begin int
	End   int
	Style Style
}
