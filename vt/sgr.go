/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package vt implements the byte-oriented VT/ANSI state machine that turns
// a raw incoming byte stream into styled lines: a CSI SGR sub-state
// machine tracks the cursor style and a span recorder closes a span every
// time that style changes.
package vt

import (
	"math"

	"smudgy/styledline"
)

// sgrState is the CSI "m" sub-state-machine described in spec §4.B. Any
// malformed input drops into sgrInvalid and the whole SGR sequence
// returns the *initial* style unchanged.
type sgrState int

const (
	sgrReady sgrState = iota
	sgrFgReceived
	sgrFgAwaitMode
	sgrFgMode2
	sgrFgMode2Red
	sgrFgMode2ReceivedRed
	sgrFgMode2Green
	sgrFgMode2ReceivedGreen
	sgrFgMode2Blue
	sgrFgMode5
	sgrFgMode5Number
	sgrInvalid
)

// csiParam mirrors vtparse's CsiParam: either an integer parameter or a
// literal separator byte (';').
type csiParam struct {
	isInt bool
	n     int64
	b     byte
}

func intParam(n int64) csiParam { return csiParam{isInt: true, n: n} }
func byteParam(b byte) csiParam { return csiParam{b: b} }

// processSGR runs the params of a single CSI "m" dispatch against
// initialStyle and returns the resulting style. On any malformed
// sequence it returns initialStyle unchanged (spec §4.B, §8 SGR
// resilience invariant).
func processSGR(initialStyle styledline.Style, params []csiParam) styledline.Style {
	state := sgrReady
	style := initialStyle
	var r, g uint8

	for _, p := range params {
		if state == sgrInvalid {
			break
		}
		switch state {
		case sgrReady:
			if !p.isInt {
				continue
			}
			switch {
			case p.n == 0:
				style = styledline.Style{Fg: styledline.NewAnsiColor(styledline.White, false), Bg: styledline.DefaultBackgroundColor}
			case p.n == 1:
				if style.Fg.Kind == styledline.KindAnsi {
					style.Fg.Bold = true
				}
			case p.n >= 30 && p.n <= 37:
				bold := style.Fg.Kind == styledline.KindAnsi && style.Fg.Bold
				style.Fg = styledline.NewAnsiColor(styledline.AnsiColor(p.n-30), bold)
			case p.n >= 90 && p.n <= 97:
				style.Fg = styledline.NewAnsiColor(styledline.AnsiColor(p.n-90), true)
			case p.n == 38:
				state = sgrFgReceived
			default:
				state = sgrInvalid
			}
		case sgrFgReceived:
			if !p.isInt && p.b == ';' {
				state = sgrFgAwaitMode
			} else {
				state = sgrInvalid
			}
		case sgrFgAwaitMode:
			if p.isInt && p.n == 2 {
				state = sgrFgMode2
			} else if p.isInt && p.n == 5 {
				state = sgrFgMode5
			} else {
				state = sgrInvalid
			}
		case sgrFgMode2:
			if !p.isInt && p.b == ';' {
				state = sgrFgMode2Red
			} else {
				state = sgrInvalid
			}
		case sgrFgMode2Red:
			if p.isInt {
				r = uint8(p.n)
				state = sgrFgMode2ReceivedRed
			} else {
				state = sgrInvalid
			}
		case sgrFgMode2ReceivedRed:
			if !p.isInt && p.b == ';' {
				state = sgrFgMode2Green
			} else {
				state = sgrInvalid
			}
		case sgrFgMode2Green:
			if p.isInt {
				g = uint8(p.n)
				state = sgrFgMode2ReceivedGreen
			} else {
				state = sgrInvalid
			}
		case sgrFgMode2ReceivedGreen:
			if !p.isInt && p.b == ';' {
				state = sgrFgMode2Blue
			} else {
				state = sgrInvalid
			}
		case sgrFgMode2Blue:
			if p.isInt {
				style.Fg = styledline.NewRGBColor(r, g, uint8(p.n))
				state = sgrReady
			} else {
				state = sgrInvalid
			}
		case sgrFgMode5:
			if !p.isInt && p.b == ';' {
				state = sgrFgMode5Number
			} else {
				state = sgrInvalid
			}
		case sgrFgMode5Number:
			if p.isInt {
				style.Fg = palette256(int(p.n))
				state = sgrReady
			} else {
				state = sgrInvalid
			}
		}
	}

	if state == sgrReady {
		return style
	}
	return initialStyle
}

// palette256 translates an xterm 256-color palette index to a Color,
// matching the cube/greyramp arithmetic spec'd in §4.B exactly.
func palette256(n int) styledline.Color {
	switch {
	case n >= 16 && n <= 231:
		v := n - 16
		r := v / 36
		g := (v - r*36) / 6
		b := v - r*36 - g*6
		const mul = 255.0 / 6.0
		return styledline.NewRGBColor(
			uint8(math.Round(float64(r)*mul)),
			uint8(math.Round(float64(g)*mul)),
			uint8(math.Round(float64(b)*mul)),
		)
	case n >= 232 && n <= 255:
		const step = 255.0 / 23.0
		val := uint8(math.Round(step * float64(n-232)))
		return styledline.NewRGBColor(val, val, val)
	case n >= 0 && n <= 7:
		return styledline.NewAnsiColor(styledline.AnsiColor(n), false)
	case n >= 8 && n <= 15:
		return styledline.NewAnsiColor(styledline.AnsiColor(n-8), true)
	default:
		return styledline.NewAnsiColor(styledline.White, false)
	}
}
