package styledline

// StyledLine is an immutable line of decoded text plus its style spans.
// Raw is the pre-decoded byte stream the line was assembled from; it is
// retained only for lines produced by the VT processor (so raw-pattern
// triggers can match escape-bearing text). Synthesized lines (echo/warn/
// output) carry a nil Raw.
//
// Equality (Equal) is defined over Raw only, per spec §3: two decoded
// lines that read the same but trace back to different raw origins are
// considered distinct.
type StyledLine struct {
	Text  string
	Spans []Span
	Raw   *string
}

// New builds a StyledLine with no raw origin (a synthesized line).
func New(text string, spans []Span) StyledLine {
	return StyledLine{Text: text, Spans: append([]Span(nil), spans...)}
}

// NewWithRaw builds a StyledLine carrying a copy of its originating bytes.
func NewWithRaw(text string, spans []Span, raw []byte) StyledLine {
	r := string(raw)
	return StyledLine{Text: text, Spans: append([]Span(nil), spans...), Raw: &r}
}

// FromEcho builds a one-span echoed line (user-visible, never raw-backed).
func FromEcho(text string) StyledLine {
	return fromSentinel(text, EchoColor)
}

// FromWarn builds a one-span warning line (user-visible, never raw-backed).
func FromWarn(text string) StyledLine {
	return fromSentinel(text, WarnColor)
}

// FromOutput builds a one-span host-output line (user-visible, never raw-backed).
func FromOutput(text string) StyledLine {
	return fromSentinel(text, OutputColor)
}

func fromSentinel(text string, fg Color) StyledLine {
	return StyledLine{
		Text: text,
		Spans: []Span{{
			Begin: 0,
			End:   len(text),
			Style: Style{Fg: fg, Bg: DefaultBackgroundColor},
		}},
	}
}

// Equal implements the Raw-only equality spec'd in §3.
func (l StyledLine) Equal(other StyledLine) bool {
	if (l.Raw == nil) != (other.Raw == nil) {
		return false
	}
	if l.Raw == nil {
		return true
	}
	return *l.Raw == *other.Raw
}

func clampRange(textLen, begin, end int) (int, int) {
	if begin > textLen {
		begin = textLen
	}
	if begin < 0 {
		begin = 0
	}
	max := textLen
	if begin > max {
		max = begin
	}
	if end > max {
		end = max
	}
	if end < begin {
		end = begin
	}
	return begin, end
}

// Insert replaces text[begin:end) with str, styled with style, clamping
// begin/end to [0, len(Text)]. Existing spans that fall entirely before
// begin are kept as-is; spans entirely after end are shifted by the
// length delta; spans straddling the edited region are clipped to their
// surviving fragment(s); spans fully inside [begin,end) are dropped. The
// new span is appended only if str is non-empty (an empty insert commits
// no span, preserving the insert("",a,a,s) ≡ L identity).
func (l StyledLine) Insert(str string, begin, end int, style Style) StyledLine {
	begin, end = clampRange(len(l.Text), begin, end)
	if str == "" && begin == end {
		return l.clone()
	}

	newText := l.Text[:begin] + str + l.Text[end:]
	insertLen := len(str)
	shift := insertLen - (end - begin)

	newSpans := make([]Span, 0, len(l.Spans)+1)
	for _, span := range l.Spans {
		switch {
		case span.End <= begin:
			newSpans = append(newSpans, span)
		case span.Begin >= end:
			newSpans = append(newSpans, Span{Begin: span.Begin + shift, End: span.End + shift, Style: span.Style})
		case span.Begin < begin && span.End > end:
			newSpans = append(newSpans,
				Span{Begin: span.Begin, End: begin, Style: span.Style},
				Span{Begin: begin + insertLen, End: span.End + shift, Style: span.Style},
			)
		case span.Begin < begin && span.End > begin:
			newSpans = append(newSpans, Span{Begin: span.Begin, End: begin, Style: span.Style})
		case span.Begin < end && span.End > end:
			newSpans = append(newSpans, Span{Begin: begin + insertLen, End: span.End + shift, Style: span.Style})
		}
		// spans fully within [begin,end) are dropped
	}

	if str != "" {
		newSpans = append(newSpans, Span{Begin: begin, End: begin + insertLen, Style: style})
	}

	sortSpans(newSpans)

	return StyledLine{Text: newText, Spans: newSpans, Raw: l.Raw}
}

// Highlight overlays style on [begin,end) without changing text, splitting
// or dropping existing spans that overlap the region. An empty range is
// an identity operation (returns an equivalent copy of l).
func (l StyledLine) Highlight(begin, end int, style Style) StyledLine {
	begin, end = clampRange(len(l.Text), begin, end)
	if begin >= end {
		return l.clone()
	}

	newSpans := make([]Span, 0, len(l.Spans)+1)
	for _, span := range l.Spans {
		switch {
		case span.End <= begin:
			newSpans = append(newSpans, span)
		case span.Begin >= end:
			newSpans = append(newSpans, span)
		case span.Begin < begin && span.End > begin && span.End <= end:
			newSpans = append(newSpans, Span{Begin: span.Begin, End: begin, Style: span.Style})
		case span.Begin >= begin && span.Begin < end && span.End > end:
			newSpans = append(newSpans, Span{Begin: end, End: span.End, Style: span.Style})
		case span.Begin < begin && span.End > end:
			newSpans = append(newSpans,
				Span{Begin: span.Begin, End: begin, Style: span.Style},
				Span{Begin: end, End: span.End, Style: span.Style},
			)
		}
		// spans fully inside [begin,end) are replaced by the highlight span
	}

	newSpans = append(newSpans, Span{Begin: begin, End: end, Style: style})
	sortSpans(newSpans)

	return StyledLine{Text: l.Text, Spans: newSpans, Raw: l.Raw}
}

// Remove deletes text[begin:end) and left-shifts spans accordingly. An
// empty range is an identity operation.
func (l StyledLine) Remove(begin, end int) StyledLine {
	begin, end = clampRange(len(l.Text), begin, end)
	shift := end - begin

	newSpans := make([]Span, 0, len(l.Spans))
	for _, span := range l.Spans {
		switch {
		case span.Begin >= begin && span.End <= end:
			// fully contained: drop
		case span.Begin >= end:
			newSpans = append(newSpans, Span{Begin: span.Begin - shift, End: span.End - shift, Style: span.Style})
		case span.End <= begin:
			newSpans = append(newSpans, span)
		case span.Begin < begin && span.End > end:
			newSpans = append(newSpans, Span{Begin: span.Begin, End: span.End - shift, Style: span.Style})
		case span.Begin < begin && span.End > begin:
			newSpans = append(newSpans, Span{Begin: span.Begin, End: begin, Style: span.Style})
		case span.Begin < end && span.End > end:
			newSpans = append(newSpans, Span{Begin: begin, End: span.End - shift, Style: span.Style})
		default:
			newSpans = append(newSpans, span)
		}
	}

	return StyledLine{
		Text:  l.Text[:begin] + l.Text[end:],
		Spans: newSpans,
		Raw:   l.Raw,
	}
}

// Append concatenates other onto l: text is concatenated, other's spans
// are shifted by len(l.Text), and raw is the concatenation of both raws
// (or whichever side carries one).
func (l StyledLine) Append(other StyledLine) StyledLine {
	shift := len(l.Text)
	spans := make([]Span, 0, len(l.Spans)+len(other.Spans))
	spans = append(spans, l.Spans...)
	for _, s := range other.Spans {
		spans = append(spans, Span{Begin: s.Begin + shift, End: s.End + shift, Style: s.Style})
	}

	var raw *string
	switch {
	case l.Raw != nil && other.Raw != nil:
		combined := *l.Raw + *other.Raw
		raw = &combined
	case l.Raw != nil:
		combined := *l.Raw
		raw = &combined
	case other.Raw != nil:
		combined := *other.Raw
		raw = &combined
	}

	return StyledLine{Text: l.Text + other.Text, Spans: spans, Raw: raw}
}

func (l StyledLine) clone() StyledLine {
	return StyledLine{Text: l.Text, Spans: append([]Span(nil), l.Spans...), Raw: l.Raw}
}

func sortSpans(spans []Span) {
	// insertion sort: span counts per line are small (single digits to
	// low dozens), and keeping the sort stable on Begin avoids importing
	// sort for what is, in practice, a near-sorted slice.
	for i := 1; i < len(spans); i++ {
		for j := i; j > 0 && spans[j].Begin < spans[j-1].Begin; j-- {
			spans[j], spans[j-1] = spans[j-1], spans[j]
		}
	}
}
