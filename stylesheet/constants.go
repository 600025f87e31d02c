/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package stylesheet

// Other constants we can use to enforce a consistent style across all states of the program

const (
	TIWidth         = 60
	TIPromptPrefix  = "> " // text *input* prefix, Mother's top-level prompt
	TAPromptPrefix  = "" // text *area* prefix
	UpSigil         = "↑"
	DownSigil       = "↓"
	UpDownSigils    = UpSigil + "/" + DownSigil
	LeftSigil       = "←"
	RightSigil      = "→"
	LeftRightSigils = LeftSigil + "/" + RightSigil
	Indent          = "  "
)
