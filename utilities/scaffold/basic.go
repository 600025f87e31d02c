/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

/*
Package scaffold contains boilerplate for generating new actions from
skeletons, so every server/profile/alias/trigger/hotkey verb does not need
a bespoke action.Model. The bare scaffold package (this file) covers the
simplest shape: an action that does its thing once and returns a string to
be printed, plus a generic list action (list.go) built on weave.

Implementations look like:

	func DeleteAction() action.Pair {
		return scaffold.NewBasicAction("delete", "delete a server", long,
			func(_ *cobra.Command, fs *pflag.FlagSet) (string, tea.Cmd) {
				name, _ := fs.GetString("name")
				if err := config.DeleteServer(name); err != nil {
					return err.Error(), nil
				}
				return "deleted server " + name, nil
			}, scaffold.BasicOptions{})
	}
*/
package scaffold

import (
	"fmt"

	"smudgy/action"
	"smudgy/utilities/treeutils"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ActFunc is the driver code for a basic action. It runs exactly once per
// invocation, interactive or not.
//
// ! Do not use cmd.Flags(); its state is undefined once handed off to
// Mother. Use fs instead.
type ActFunc func(cmd *cobra.Command, fs *pflag.FlagSet) (string, tea.Cmd)

// BasicOptions modifies a basic action's generated command.
type BasicOptions struct {
	// AddtlFlagFunc, if !nil, defines additional flags bolted onto the
	// standard (empty) flagset of a basic action.
	AddtlFlagFunc func() pflag.FlagSet
	Aliases       []string
	// CmdMods is applied last, after all other options; it can freely
	// override anything set above it.
	CmdMods func(*cobra.Command)
	// ValidateArgs is called, if !nil, after flags are parsed and before
	// act runs.
	ValidateArgs func(*pflag.FlagSet) (invalid string, err error)
}

// NewBasicAction builds a cobra.Command/action.Model pair that runs act
// exactly once, printing its returned string, and returns its tea.Cmd to
// Mother when run interactively (discarded under plain Cobra).
func NewBasicAction(use, short, long string, act ActFunc, options BasicOptions) action.Pair {
	if use == "" {
		panic("use cannot be empty")
	} else if short == "" {
		panic("short cannot be empty")
	} else if act == nil {
		panic("act func cannot be nil")
	}

	cmd := treeutils.GenerateAction(use, short, long, options.Aliases,
		func(c *cobra.Command, _ []string) {
			if options.ValidateArgs != nil {
				if inv, err := options.ValidateArgs(c.Flags()); err != nil {
					fmt.Fprintf(c.ErrOrStderr(), "%v\n", err)
					return
				} else if inv != "" {
					fmt.Fprintf(c.ErrOrStderr(), "invalid arguments: %v\n", inv)
					return
				}
			}
			s, _ := act(c, c.Flags())
			fmt.Fprintf(c.OutOrStdout(), "%v\n", s)
		})

	if options.AddtlFlagFunc != nil {
		f := options.AddtlFlagFunc()
		cmd.Flags().AddFlagSet(&f)
	}

	if options.CmdMods != nil {
		options.CmdMods(cmd)
	}

	ba := &basicAction{cmd: cmd, options: options, fn: act}
	return action.Pair{Action: cmd, Model: ba}
}

//#region interactive mode (model) implementation

type basicAction struct {
	done bool
	fs   pflag.FlagSet

	cmd     *cobra.Command
	options BasicOptions
	fn      ActFunc
}

var _ action.Model = &basicAction{}

func (ba *basicAction) Update(msg tea.Msg) tea.Cmd {
	ba.done = true
	s, cmd := ba.fn(ba.cmd, &ba.fs)
	if cmd != nil {
		return tea.Sequence(tea.Println(s), cmd)
	}
	return tea.Println(s)
}

func (*basicAction) View() string { return "" }

func (ba *basicAction) Done() bool { return ba.done }

func (ba *basicAction) Reset() error {
	ba.done = false
	ba.fs = pflag.FlagSet{}
	return nil
}

func (ba *basicAction) SetArgs(fs *pflag.FlagSet, tokens []string) (invalid string, onStart tea.Cmd, err error) {
	if ba.cmd.Args != nil {
		if err := ba.cmd.Args(ba.cmd, tokens); err != nil {
			return err.Error(), nil, nil
		}
	}

	if ba.options.AddtlFlagFunc != nil {
		ba.fs = ba.options.AddtlFlagFunc()
		if err := ba.fs.Parse(tokens); err != nil {
			return "", nil, err
		}
		if ba.options.ValidateArgs != nil {
			if inv, err := ba.options.ValidateArgs(&ba.fs); err != nil {
				return "", nil, err
			} else if inv != "" {
				return inv, nil, nil
			}
		}
	}

	return "", nil, nil
}

//#endregion interactive mode (model) implementation
