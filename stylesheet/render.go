/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package stylesheet

import (
	"fmt"

	"smudgy/styledline"

	"github.com/charmbracelet/lipgloss"
)

// colorStyle converts one styledline.Color into a lipgloss.Color, applying
// the sentinel logical colors (echo/warn/output/default-background) the way
// this CLI front end has chosen to render them. Kept separate from the
// engine's own Color tag so a future GUI host can supply its own mapping.
func colorStyle(c styledline.Color) (lipgloss.Color, bool) {
	switch c.Kind {
	case styledline.KindAnsi:
		idx := int(c.Ansi)
		if c.Bold {
			idx += 8
		}
		return lipgloss.Color(fmt.Sprintf("%d", idx)), true
	case styledline.KindRGB:
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)), true
	case styledline.KindEcho:
		return SecondaryColor, true
	case styledline.KindOutput:
		return AccentColor2, true
	case styledline.KindWarn:
		return ErrorColor, true
	case styledline.KindDefaultBackground:
		return "", false
	default:
		return "", false
	}
}

// RenderLine renders a decoded styledline.StyledLine as a string suitable
// for printing to a terminal. When color is false (--no-color, or stdout is
// not a tty), the line's bare text is returned untouched.
func RenderLine(line styledline.StyledLine, color bool) string {
	if !color || len(line.Spans) == 0 {
		return line.Text
	}

	var out string
	for _, sp := range line.Spans {
		if sp.Begin < 0 || sp.End > len(line.Text) || sp.Begin >= sp.End {
			continue
		}
		segment := line.Text[sp.Begin:sp.End]
		sty := lipgloss.NewStyle()
		if fg, ok := colorStyle(sp.Style.Fg); ok {
			sty = sty.Foreground(fg)
		}
		if bg, ok := colorStyle(sp.Style.Bg); ok {
			sty = sty.Background(bg)
		}
		if sp.Style.Fg.Kind == styledline.KindAnsi && sp.Style.Fg.Bold {
			sty = sty.Bold(true)
		}
		out += sty.Render(segment)
	}
	return out
}
