/*************************************************************************
 * Copyright 2025 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package stylesheet

import "github.com/charmbracelet/lipgloss"

// Sheet is a complete, swappable set of styles and glyphs Mother and the
// action models render through, rather than reaching for the package-level
// style vars in styles.go directly. Cur holds whichever Sheet is active;
// swapping it (classic() vs NoColor()) is how --no-color takes effect
// without threading a Sheet through every call site.
type Sheet struct {
	Nav    lipgloss.Style
	Action lipgloss.Style

	ErrorText    lipgloss.Style
	ExampleText  lipgloss.Style
	DisabledText lipgloss.Style
	PrimaryText  lipgloss.Style
	SecondaryText lipgloss.Style

	promptGlyph func() string
	indexGlyph  func() string
	plain       func(string) string
}

// Pip returns the glyph used to mark the currently-selected row in a list
// or menu (a bullet for colored sheets, a plain '#' for NoColor).
func (s Sheet) Pip() string { return s.indexGlyph() }

// Prompt returns the glyph prefixing Mother's top-level prompt.
func (s Sheet) Prompt() string { return s.promptGlyph() }

// NewSheet builds a Sheet around the given prompt glyph, index glyph, and
// plain-text passthrough, for themes (like NoColor) that do not want to
// hand-build every style field.
func NewSheet(promptGlyph, indexGlyph func() string, plain func(string) string) Sheet {
	return Sheet{
		Nav:           lipgloss.NewStyle(),
		Action:        lipgloss.NewStyle(),
		ErrorText:     lipgloss.NewStyle(),
		ExampleText:   lipgloss.NewStyle(),
		DisabledText:  lipgloss.NewStyle(),
		PrimaryText:   lipgloss.NewStyle(),
		SecondaryText: lipgloss.NewStyle(),
		promptGlyph:   promptGlyph,
		indexGlyph:    indexGlyph,
		plain:         plain,
	}
}

// Palette is the small set of colors a themed Sheet is generated from.
type Palette struct {
	PrimaryColor   lipgloss.Color
	SecondaryColor lipgloss.Color
	TertiaryColor  lipgloss.Color
	AccentColor1   lipgloss.Color
	AccentColor2   lipgloss.Color
}

// GenerateSheet expands a Palette into a full Sheet, coloring each field
// consistently: nav text takes the secondary color, action text the
// tertiary color, errors are always ErrorColor (independent of the
// palette), and examples/accents take AccentColor2.
func (p Palette) GenerateSheet() Sheet {
	return Sheet{
		Nav:           lipgloss.NewStyle().Foreground(p.SecondaryColor),
		Action:        lipgloss.NewStyle().Foreground(p.TertiaryColor),
		ErrorText:     lipgloss.NewStyle().Foreground(ErrorColor),
		ExampleText:   lipgloss.NewStyle().Foreground(p.AccentColor2),
		DisabledText:  lipgloss.NewStyle().Faint(true),
		PrimaryText:   lipgloss.NewStyle().Foreground(p.PrimaryColor),
		SecondaryText: lipgloss.NewStyle().Foreground(p.SecondaryColor),
		promptGlyph:   func() string { return "»" },
		indexGlyph:    func() string { return "●" },
		plain:         func(s string) string { return s },
	}
}

// Cur is the sheet actively in use. Set once at startup via SetSheet.
var Cur Sheet = classic()

// SetSheet installs sheet as Cur; called once, from root command setup,
// after --no-color is known.
func SetSheet(sheet Sheet) { Cur = sheet }

func classic() Sheet {
	return Palette{
		PrimaryColor:   PrimaryColor,
		SecondaryColor: SecondaryColor,
		TertiaryColor:  TertiaryColor,
		AccentColor1:   AccentColor1,
		AccentColor2:   AccentColor2,
	}.GenerateSheet()
}

// NoColor returns a sheet with no colors or special characters, for maximal compatibility.
func NoColor() Sheet {
	return NewSheet(
		func() string { return ">" },
		func() string { return "#" },
		func(s string) string { return s },
	)
}
