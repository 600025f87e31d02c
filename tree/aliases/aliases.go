/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package aliases is the aliases nav: list, add, and delete the
// pattern-triggered command substitutions saved under a server.
package aliases

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
	use   = "aliases"
	short = "list, add, or delete a server's saved aliases"
	long  = "An alias rewrites player input matching one of its patterns into a script, run " +
		"through the alias pipeline before anything reaches the wire."
)

func NewAliasesNav() *cobra.Command {
	return treeutils.GenerateNav(use, short, long, []string{"alias"}, nil,
		[]action.Pair{newListAction(), newAddAction(), newDeleteAction()})
}

type aliasRow struct {
	Name     string
	Patterns string
	Script   string
	Language string
	Enabled  bool
}

func serverFlag() pflag.FlagSet {
	fs := pflag.FlagSet{}
	fs.String("server", "", "name of the server the alias belongs to")
	return fs
}

func listAliases(fs *pflag.FlagSet) ([]aliasRow, error) {
	server, _ := fs.GetString("server")
	if server == "" {
		return nil, fmt.Errorf("--server is required")
	}
	defs, err := config.LoadAliases(server)
	if err != nil {
		return nil, err
	}
	rows := make([]aliasRow, 0, len(defs))
	for name, def := range defs {
		rows = append(rows, aliasRow{
			Name:     name,
			Patterns: strings.Join(def.Patterns, ", "),
			Script:   def.Script,
			Language: string(def.Language),
			Enabled:  def.Enabled,
		})
	}
	return rows, nil
}

func newListAction() action.Pair {
	return scaffold.NewListAction("list a server's saved aliases", long, aliasRow{}, listAliases,
		scaffold.ListOptions{AddtlFlagFunc: serverFlag})
}

func addFlags() pflag.FlagSet {
	fs := serverFlag()
	fs.String(ft.Name.Name, "", ft.Usage.Name("alias"))
	fs.StringSlice("patterns", nil, "comma-separated list of patterns that fire this alias")
	fs.String(ft.Name.Script, "", "script body run when the alias fires")
	fs.String("language", string(config.LanguagePlaintext), "script language: Plaintext, JS, or TS")
	fs.Bool("enabled", true, "whether the alias is active")
	return fs
}

func newAddAction() action.Pair {
	return scaffold.NewBasicAction("add", "add an alias", long,
		func(_ *cobra.Command, fs *pflag.FlagSet) (string, tea.Cmd) {
			server, _ := fs.GetString("server")
			name, _ := fs.GetString(ft.Name.Name)
			patterns, _ := fs.GetStringSlice("patterns")
			script, _ := fs.GetString(ft.Name.Script)
			language, _ := fs.GetString("language")
			enabled, _ := fs.GetBool("enabled")

			def := config.AliasDefinition{
				Patterns: patterns,
				Script:   script,
				Language: config.Language(language),
				Enabled:  enabled,
			}
			if err := config.SaveAliases(server, name, map[string]config.AliasDefinition{name: def}); err != nil {
				return err.Error(), nil
			}
			return fmt.Sprintf("saved alias %q on server %q", name, server), nil
		}, scaffold.BasicOptions{AddtlFlagFunc: addFlags})
}

func newDeleteAction() action.Pair {
	return scaffold.NewBasicAction("delete", "delete an alias", long,
		func(_ *cobra.Command, fs *pflag.FlagSet) (string, tea.Cmd) {
			server, _ := fs.GetString("server")
			name, _ := fs.GetString(ft.Name.Name)
			if err := config.DeleteAlias(server, name); err != nil {
				return err.Error(), nil
			}
			return fmt.Sprintf("deleted alias %q on server %q", name, server), nil
		}, scaffold.BasicOptions{AddtlFlagFunc: func() pflag.FlagSet {
			fs := serverFlag()
			fs.String(ft.Name.Name, "", ft.Usage.Name("alias"))
			return fs
		}})
}
