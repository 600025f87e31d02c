/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package servers is the servers nav: list, add, and delete the saved
// host/port pairs a session can connect against.
package servers

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
	use   = "servers"
	short = "list, add, or delete saved servers"
	long  = "A server is a saved host/port pair, identified by name, that a profile connects " +
		"against."
)

func NewServersNav() *cobra.Command {
	return treeutils.GenerateNav(use, short, long, []string{"server"}, nil,
		[]action.Pair{newListAction(), newAddAction(), newDeleteAction()})
}

type serverRow struct {
	Name string
	Host string
	Port int
}

func listServers(*pflag.FlagSet) ([]serverRow, error) {
	names, err := config.ListServers()
	if err != nil {
		return nil, err
	}
	rows := make([]serverRow, 0, len(names))
	for _, name := range names {
		cfg, err := config.LoadServerConfig(name)
		if err != nil {
			continue
		}
		rows = append(rows, serverRow{Name: name, Host: cfg.Host, Port: cfg.Port})
	}
	return rows, nil
}

func newListAction() action.Pair {
	return scaffold.NewListAction("list saved servers", long, serverRow{}, listServers, scaffold.ListOptions{})
}

func addFlags() pflag.FlagSet {
	fs := pflag.FlagSet{}
	fs.String(ft.Name.Name, "", ft.Usage.Name("server"))
	fs.String("host", "", "hostname or IP address of the server")
	fs.Int("port", 0, "TCP port of the server")
	return fs
}

func newAddAction() action.Pair {
	return scaffold.NewBasicAction("add", "add a server", long,
		func(_ *cobra.Command, fs *pflag.FlagSet) (string, tea.Cmd) {
			name, _ := fs.GetString(ft.Name.Name)
			host, _ := fs.GetString("host")
			port, _ := fs.GetInt("port")
			if err := config.SaveServerConfig(name, config.ServerConfig{Host: host, Port: port}); err != nil {
				return err.Error(), nil
			}
			return fmt.Sprintf("saved server %q (%s:%d)", name, host, port), nil
		}, scaffold.BasicOptions{AddtlFlagFunc: addFlags})
}

func newDeleteAction() action.Pair {
	return scaffold.NewBasicAction("delete", "delete a server", long,
		func(_ *cobra.Command, fs *pflag.FlagSet) (string, tea.Cmd) {
			name, _ := fs.GetString(ft.Name.Name)
			if err := config.DeleteServer(name); err != nil {
				return err.Error(), nil
			}
			return "deleted server " + name, nil
		}, scaffold.BasicOptions{AddtlFlagFunc: func() pflag.FlagSet {
			fs := pflag.FlagSet{}
			fs.String(ft.Name.Name, "", ft.Usage.Name("server"))
			return fs
		}})
}
