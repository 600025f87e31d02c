/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package hotkeys is the hotkeys nav: list, add, and delete the
// key-bound scripts saved under a server.
package hotkeys

import (
	"fmt"

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
	use   = "hotkeys"
	short = "list, add, or delete a server's saved hotkeys"
	long  = "A hotkey runs a script when the host UI reports its bound key was pressed, " +
		"registered with the view via UIRegisterHotkey."
)

func NewHotkeysNav() *cobra.Command {
	return treeutils.GenerateNav(use, short, long, []string{"hotkey"}, nil,
		[]action.Pair{newListAction(), newAddAction(), newDeleteAction()})
}

type hotkeyRow struct {
	Name     string
	Key      string
	Script   string
	Language string
	Enabled  bool
}

func serverFlag() pflag.FlagSet {
	fs := pflag.FlagSet{}
	fs.String("server", "", "name of the server the hotkey belongs to")
	return fs
}

func listHotkeys(fs *pflag.FlagSet) ([]hotkeyRow, error) {
	server, _ := fs.GetString("server")
	if server == "" {
		return nil, fmt.Errorf("--server is required")
	}
	defs, err := config.LoadHotkeys(server)
	if err != nil {
		return nil, err
	}
	rows := make([]hotkeyRow, 0, len(defs))
	for name, def := range defs {
		rows = append(rows, hotkeyRow{
			Name:     name,
			Key:      def.Key,
			Script:   def.Script,
			Language: string(def.Language),
			Enabled:  def.Enabled,
		})
	}
	return rows, nil
}

func newListAction() action.Pair {
	return scaffold.NewListAction("list a server's saved hotkeys", long, hotkeyRow{}, listHotkeys,
		scaffold.ListOptions{AddtlFlagFunc: serverFlag})
}

func addFlags() pflag.FlagSet {
	fs := serverFlag()
	fs.String(ft.Name.Name, "", ft.Usage.Name("hotkey"))
	fs.String("key", "", "key binding this hotkey fires on (view-defined encoding, e.g. \"f1\")")
	fs.String(ft.Name.Script, "", "script body run when the hotkey fires")
	fs.String("language", string(config.LanguagePlaintext), "script language: Plaintext, JS, or TS")
	fs.Bool("enabled", true, "whether the hotkey is active")
	return fs
}

func newAddAction() action.Pair {
	return scaffold.NewBasicAction("add", "add a hotkey", long,
		func(_ *cobra.Command, fs *pflag.FlagSet) (string, tea.Cmd) {
			server, _ := fs.GetString("server")
			name, _ := fs.GetString(ft.Name.Name)
			key, _ := fs.GetString("key")
			script, _ := fs.GetString(ft.Name.Script)
			language, _ := fs.GetString("language")
			enabled, _ := fs.GetBool("enabled")

			def := config.HotkeyDefinition{
				Key:      key,
				Script:   script,
				Language: config.Language(language),
				Enabled:  enabled,
			}
			if err := config.SaveHotkeys(server, name, map[string]config.HotkeyDefinition{name: def}); err != nil {
				return err.Error(), nil
			}
			return fmt.Sprintf("saved hotkey %q on server %q", name, server), nil
		}, scaffold.BasicOptions{AddtlFlagFunc: addFlags})
}

func newDeleteAction() action.Pair {
	return scaffold.NewBasicAction("delete", "delete a hotkey", long,
		func(_ *cobra.Command, fs *pflag.FlagSet) (string, tea.Cmd) {
			server, _ := fs.GetString("server")
			name, _ := fs.GetString(ft.Name.Name)
			if err := config.DeleteHotkey(server, name); err != nil {
				return err.Error(), nil
			}
			return fmt.Sprintf("deleted hotkey %q on server %q", name, server), nil
		}, scaffold.BasicOptions{AddtlFlagFunc: func() pflag.FlagSet {
			fs := serverFlag()
			fs.String(ft.Name.Name, "", ft.Usage.Name("hotkey"))
			return fs
		}})
}
