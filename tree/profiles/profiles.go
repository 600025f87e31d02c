/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package profiles is the profiles nav: list, add, and delete the
// per-character profiles saved under a server.
package profiles

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
	use   = "profiles"
	short = "list, add, or delete a server's saved profiles"
	long  = "A profile is a named character identity (caption, send-on-connect line) kept " +
		"under a server."
)

func NewProfilesNav() *cobra.Command {
	return treeutils.GenerateNav(use, short, long, []string{"profile"}, nil,
		[]action.Pair{newListAction(), newAddAction(), newDeleteAction()})
}

type profileRow struct {
	Name          string
	Caption       string
	SendOnConnect string
}

func serverFlag() pflag.FlagSet {
	fs := pflag.FlagSet{}
	fs.String("server", "", "name of the server the profile belongs to")
	return fs
}

func listProfiles(fs *pflag.FlagSet) ([]profileRow, error) {
	server, _ := fs.GetString("server")
	if server == "" {
		return nil, fmt.Errorf("--server is required")
	}
	names, err := config.ListProfiles(server)
	if err != nil {
		return nil, err
	}
	rows := make([]profileRow, 0, len(names))
	for _, name := range names {
		cfg, err := config.LoadProfileConfig(server, name)
		if err != nil {
			continue
		}
		rows = append(rows, profileRow{Name: name, Caption: cfg.Caption, SendOnConnect: cfg.SendOnConnect})
	}
	return rows, nil
}

func newListAction() action.Pair {
	return scaffold.NewListAction("list a server's saved profiles", long, profileRow{}, listProfiles,
		scaffold.ListOptions{AddtlFlagFunc: serverFlag})
}

func addFlags() pflag.FlagSet {
	fs := serverFlag()
	fs.String(ft.Name.Name, "", ft.Usage.Name("profile"))
	fs.String("caption", "", "display caption for this profile")
	fs.String("send-on-connect", "", "line sent automatically once the server connects")
	return fs
}

func newAddAction() action.Pair {
	return scaffold.NewBasicAction("add", "add a profile", long,
		func(_ *cobra.Command, fs *pflag.FlagSet) (string, tea.Cmd) {
			server, _ := fs.GetString("server")
			name, _ := fs.GetString(ft.Name.Name)
			caption, _ := fs.GetString("caption")
			sendOnConnect, _ := fs.GetString("send-on-connect")
			cfg := config.ProfileConfig{Caption: caption, SendOnConnect: sendOnConnect}
			if err := config.SaveProfileConfig(server, name, cfg); err != nil {
				return err.Error(), nil
			}
			return fmt.Sprintf("saved profile %q on server %q", name, server), nil
		}, scaffold.BasicOptions{AddtlFlagFunc: addFlags})
}

func newDeleteAction() action.Pair {
	return scaffold.NewBasicAction("delete", "delete a profile", long,
		func(_ *cobra.Command, fs *pflag.FlagSet) (string, tea.Cmd) {
			server, _ := fs.GetString("server")
			name, _ := fs.GetString(ft.Name.Name)
			if err := config.DeleteProfile(server, name); err != nil {
				return err.Error(), nil
			}
			return fmt.Sprintf("deleted profile %q on server %q", name, server), nil
		}, scaffold.BasicOptions{AddtlFlagFunc: func() pflag.FlagSet {
			fs := serverFlag()
			fs.String(ft.Name.Name, "", ft.Usage.Name("profile"))
			return fs
		}})
}
