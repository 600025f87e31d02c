/*************************************************************************
 * Copyright 2025 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package ft

import "github.com/spf13/pflag"

// flagDescriptor bundles a persistent flag's name, default, and usage text
// so every caller registers it identically instead of restating the triple
// ad hoc each time.
type flagDescriptor struct {
	name    string
	dfault  bool
	usage   string
}

// Name returns the flag's bare name, suitable for Flags().GetBool(...) or
// prefixing with "--" to build a command line.
func (f flagDescriptor) Name() string { return f.name }

// Register adds this flag to fs as a persistent bool flag.
func (f flagDescriptor) Register(fs *pflag.FlagSet) {
	fs.Bool(f.name, f.dfault, f.usage)
}

// NoInteractive disables Mother even when no script/action tokens were
// given, dropping straight into cobra's own usage/help output instead.
var NoInteractive = flagDescriptor{
	name:  "no-interactive",
	usage: "disallow spawning an interactive shell; print usage and exit instead.",
}

// NoColor disables all lipgloss styling, mirroring the NO_COLOR convention
// (https://no-color.org) that isNoColor also checks against the environment.
var NoColor = flagDescriptor{
	name:  "no-color",
	usage: "disable colorized output.",
}
