/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package uniques contains global constants and functions that must be referenced across multiple packages
// but cannot belong to any.
// ! Uniques imports only these local packages: utilities/cfgdir, stylesheet, stylesheet/flagtext and action.
// Those packages must not import uniques, to prevent import cycles.
package uniques

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"smudgy/utilities/cfgdir"
	ft "smudgy/stylesheet/flagtext"
)

// Version is the running build's reported version string.
const Version string = "v0.1"

// FetchWindowSize queries the controlling terminal for its current dimensions.
// Generally useful as an onStart command, as Mother does not maintain a set of dimensions of her own.
func FetchWindowSize() tea.Msg {
	w, h, _ := term.GetSize(os.Stdin.Fd())
	return tea.WindowSizeMsg{Width: w, Height: h}
}

// AttachPersistentFlags populates all persistent flags and attaches them to the given command.
// This subroutine should ONLY be used by Mother when building the root command or by test suites that omit Mother.
func AttachPersistentFlags(cmd *cobra.Command) {
	ft.NoInteractive.Register(cmd.PersistentFlags())
	ft.NoColor.Register(cmd.PersistentFlags())

	cmd.PersistentFlags().String("server", "", "name of the server config to operate against.")
	cmd.PersistentFlags().String("profile", "default", "name of the character profile to operate as.")
	cmd.PersistentFlags().StringP("passfile", "p", "", "path to a file containing a login line; the flag is accepted but no command reads it or sends its contents.")
	cmd.PersistentFlags().StringP("log", "l", cfgdir.DefaultStdLogPath, "log location for developer logs.\n")
	cmd.PersistentFlags().String("loglevel", "INFO", "log level for developer logs (-l).\n"+
		"Possible values: 'OFF', 'DEBUG', 'INFO', 'WARN', 'ERROR', 'CRITICAL', 'FATAL'.\n")
}
