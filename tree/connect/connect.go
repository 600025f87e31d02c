/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

/*
Package connect is the headless line-mode front end: it drives a
session.Session from stdin/stdout instead of a terminal UI, so the
runtime is exercisable end-to-end without a GUI. Lines typed on stdin are
sent as commands; decoded, colorized lines arriving from the session are
printed to stdout until the connection drops or stdin hits EOF.
*/
package connect

import (
	"fmt"

	"smudgy/action"
	ft "smudgy/stylesheet/flagtext"
	"smudgy/stylesheet"
	"smudgy/utilities/treeutils"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	use   = "connect"
	short = "connect to a saved server and run its session from this terminal"
	long  = "connect establishes a session against a saved server/profile pair and runs it " +
		"headlessly: stdin lines are sent as commands, and decoded, colorized output is printed " +
		"to stdout until the connection ends or stdin is closed."
)

func NewConnectAction() action.Pair {
	cmd := treeutils.GenerateAction(use, short, long, nil, run,
		treeutils.GenerateActionOptions{Example: "--server myserver --profile default"})
	cmd.Flags().String("server", "", "name of the server to connect to")
	cmd.Flags().String("profile", "default", "name of the profile to connect as")

	ca := &connectAction{cmd: cmd}
	return action.Pair{Action: cmd, Model: ca}
}

func run(c *cobra.Command, _ []string) {
	server, _ := c.Flags().GetString("server")
	profile, _ := c.Flags().GetString("profile")
	noColor, _ := c.Flags().GetBool(ft.NoColor.Name())
	noInteractive, _ := c.Flags().GetBool(ft.NoInteractive.Name())
	if err := runSession(c.OutOrStdout(), c.InOrStdin(), server, profile, !noColor, !noInteractive); err != nil {
		fmt.Fprintln(c.ErrOrStderr(), err)
	}
}

// connectAction satisfies action.Model so Mother can hand control to this
// command interactively; Update runs the same blocking stdin/stdout loop
// cobra-mode Run does; it deliberately bypasses bubbletea rendering since
// this action's entire purpose is to be a plain line-mode terminal, not a
// tea.Model view.
type connectAction struct {
	cmd     *cobra.Command
	server  string
	profile string
	done    bool
}

var _ action.Model = &connectAction{}

func (ca *connectAction) Update(tea.Msg) tea.Cmd {
	ca.done = true
	noColor, _ := ca.cmd.Flags().GetBool(ft.NoColor.Name())
	// spin=false: Mother already owns the terminal via its own bubbletea
	// program, so this path skips busywait's spinner.
	err := runSession(ca.cmd.OutOrStdout(), ca.cmd.InOrStdin(), ca.server, ca.profile, !noColor, false)
	if err != nil {
		return tea.Println(stylesheet.Cur.ErrorText.Render(err.Error()))
	}
	return tea.Quit
}

func (*connectAction) View() string { return "" }

func (ca *connectAction) Done() bool { return ca.done }

func (ca *connectAction) Reset() error {
	ca.done = false
	return nil
}

func (ca *connectAction) SetArgs(_ *pflag.FlagSet, tokens []string) (invalid string, onStart tea.Cmd, err error) {
	fs := pflag.NewFlagSet(use, pflag.ContinueOnError)
	fs.StringVar(&ca.server, "server", "", "name of the server to connect to")
	fs.StringVar(&ca.profile, "profile", "default", "name of the profile to connect as")
	if err := fs.Parse(tokens); err != nil {
		return "", nil, err
	}
	if ca.server == "" {
		return "--server is required", nil, nil
	}
	return "", nil, nil
}
