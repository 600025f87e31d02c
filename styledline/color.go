/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package styledline holds the immutable text+span representation of a
// single terminal line and the pure edit operations scripts use to mutate
// it. Rendering a Color to concrete RGB is left to the host UI; this
// package only ever stores the tag.
package styledline

// AnsiColor is one of the eight base ANSI colors.
type AnsiColor int

const (
	Black AnsiColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// ColorKind discriminates the Color tagged union.
type ColorKind int

const (
	// KindAnsi is one of the eight base colors, optionally bold.
	KindAnsi ColorKind = iota
	// KindRGB is a literal 24-bit truecolor value.
	KindRGB
	// KindEcho is the sentinel color for host-authored echo lines.
	KindEcho
	// KindOutput is the sentinel color for host-authored output lines.
	KindOutput
	// KindWarn is the sentinel color for host-authored warning lines.
	KindWarn
	// KindDefaultBackground is the sentinel color for "no explicit background set".
	KindDefaultBackground
)

// Color is a tagged union mirroring spec §3: either a named ANSI color
// (optionally bold), a literal RGB triple, or one of the logical sentinel
// colors the host assigns a concrete rendering to.
type Color struct {
	Kind  ColorKind
	Ansi  AnsiColor
	Bold  bool
	R     uint8
	G     uint8
	B     uint8
}

// NewAnsiColor builds an Ansi-tagged Color.
func NewAnsiColor(c AnsiColor, bold bool) Color {
	return Color{Kind: KindAnsi, Ansi: c, Bold: bold}
}

// NewRGBColor builds an Rgb-tagged Color.
func NewRGBColor(r, g, b uint8) Color {
	return Color{Kind: KindRGB, R: r, G: g, B: b}
}

// Sentinel logical colors.
var (
	EchoColor              = Color{Kind: KindEcho}
	OutputColor            = Color{Kind: KindOutput}
	WarnColor              = Color{Kind: KindWarn}
	DefaultBackgroundColor = Color{Kind: KindDefaultBackground}
)

// DefaultForeground is the style's reset-state foreground: White, non-bold.
var DefaultForeground = NewAnsiColor(White, false)
