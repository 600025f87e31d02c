/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package triggers is the triggers nav: list, add, and delete the
// pattern-matched reactions saved under a server.
package triggers

import (
	"fmt"
	"strings"

	"smudgy/action"
	"smudgy/config"
	ft "smudgy/stylesheet/flagtext"
	"smudgy/utilities/scaffold"
	"smudgy/utilities/treeutils"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	use   = "triggers"
	short = "list, add, or delete a server's saved triggers"
	long  = "A trigger runs a script against incoming lines matching its patterns (and none of " +
		"its anti-patterns), optionally against partial (prompt) lines."
)

func NewTriggersNav() *cobra.Command {
	return treeutils.GenerateNav(use, short, long, []string{"trigger"}, nil,
		[]action.Pair{newListAction(), newAddAction(), newDeleteAction()})
}

type triggerRow struct {
	Name                string
	Patterns            string
	RawPatterns         string
	AntiPatterns        string
	Script              string
	Language            string
	Prompt              bool
	Enabled             bool
	FiresOnPartialLines bool
}

func serverFlag() pflag.FlagSet {
	fs := pflag.FlagSet{}
	fs.String("server", "", "name of the server the trigger belongs to")
	return fs
}

func listTriggers(fs *pflag.FlagSet) ([]triggerRow, error) {
	server, _ := fs.GetString("server")
	if server == "" {
		return nil, fmt.Errorf("--server is required")
	}
	defs, err := config.LoadTriggers(server)
	if err != nil {
		return nil, err
	}
	rows := make([]triggerRow, 0, len(defs))
	for name, def := range defs {
		rows = append(rows, triggerRow{
			Name:                name,
			Patterns:            strings.Join(def.Patterns, ", "),
			RawPatterns:         strings.Join(def.RawPatterns, ", "),
			AntiPatterns:        strings.Join(def.AntiPatterns, ", "),
			Script:              def.Script,
			Language:            string(def.Language),
			Prompt:              def.Prompt,
			Enabled:             def.Enabled,
			FiresOnPartialLines: def.FiresOnPartialLines,
		})
	}
	return rows, nil
}

func newListAction() action.Pair {
	return scaffold.NewListAction("list a server's saved triggers", long, triggerRow{}, listTriggers,
		scaffold.ListOptions{AddtlFlagFunc: serverFlag})
}

func addFlags() pflag.FlagSet {
	fs := serverFlag()
	fs.String(ft.Name.Name, "", ft.Usage.Name("trigger"))
	fs.StringSlice("patterns", nil, "comma-separated list of decoded-line patterns that fire this trigger")
	fs.StringSlice("raw-patterns", nil, "comma-separated list of raw (escape-bearing) patterns")
	fs.StringSlice("anti-patterns", nil, "comma-separated list of patterns that suppress a firing match")
	fs.String(ft.Name.Script, "", "script body run when the trigger fires")
	fs.String("language", string(config.LanguagePlaintext), "script language: Plaintext, JS, or TS")
	fs.Bool("prompt", false, "fire against partial (prompt) lines in addition to complete lines")
	fs.Bool("enabled", true, "whether the trigger is active")
	return fs
}

func newAddAction() action.Pair {
	return scaffold.NewBasicAction("add", "add a trigger", long,
		func(_ *cobra.Command, fs *pflag.FlagSet) (string, tea.Cmd) {
			server, _ := fs.GetString("server")
			name, _ := fs.GetString(ft.Name.Name)
			patterns, _ := fs.GetStringSlice("patterns")
			rawPatterns, _ := fs.GetStringSlice("raw-patterns")
			antiPatterns, _ := fs.GetStringSlice("anti-patterns")
			script, _ := fs.GetString(ft.Name.Script)
			language, _ := fs.GetString("language")
			prompt, _ := fs.GetBool("prompt")
			enabled, _ := fs.GetBool("enabled")

			def := config.TriggerDefinition{
				Patterns:            patterns,
				RawPatterns:         rawPatterns,
				AntiPatterns:        antiPatterns,
				Script:              script,
				Language:            config.Language(language),
				Prompt:              prompt,
				Enabled:             enabled,
				FiresOnPartialLines: prompt,
			}
			if err := config.SaveTriggers(server, name, map[string]config.TriggerDefinition{name: def}); err != nil {
				return err.Error(), nil
			}
			return fmt.Sprintf("saved trigger %q on server %q", name, server), nil
		}, scaffold.BasicOptions{AddtlFlagFunc: addFlags})
}

func newDeleteAction() action.Pair {
	return scaffold.NewBasicAction("delete", "delete a trigger", long,
		func(_ *cobra.Command, fs *pflag.FlagSet) (string, tea.Cmd) {
			server, _ := fs.GetString("server")
			name, _ := fs.GetString(ft.Name.Name)
			if err := config.DeleteTrigger(server, name); err != nil {
				return err.Error(), nil
			}
			return fmt.Sprintf("deleted trigger %q on server %q", name, server), nil
		}, scaffold.BasicOptions{AddtlFlagFunc: func() pflag.FlagSet {
			fs := serverFlag()
			fs.String(ft.Name.Name, "", ft.Usage.Name("trigger"))
			return fs
		}})
}
