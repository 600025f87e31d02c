/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"smudgy/utilities/cfgdir"
)

// DeleteServer removes a server's entire directory (its config, profiles,
// and every persisted alias/trigger/hotkey/module).
func DeleteServer(server string) error {
	dir, err := cfgdir.ServerDir(server)
	if err != nil {
		return fmt.Errorf("config: resolve server dir: %w", err)
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("config: delete server %q: %w", server, err)
	}
	return nil
}

// DeleteProfile removes one server's profile directory.
func DeleteProfile(server, profile string) error {
	dir, err := cfgdir.ProfileDir(server, profile)
	if err != nil {
		return fmt.Errorf("config: resolve profile dir: %w", err)
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("config: delete profile %q: %w", profile, err)
	}
	return nil
}

// DeleteAlias removes one <server>/aliases/<name>.json file.
func DeleteAlias(server, name string) error { return deleteDefinition(server, "aliases", name) }

// DeleteTrigger removes one <server>/triggers/<name>.json file.
func DeleteTrigger(server, name string) error { return deleteDefinition(server, "triggers", name) }

// DeleteHotkey removes one <server>/hotkeys/<name>.json file.
func DeleteHotkey(server, name string) error { return deleteDefinition(server, "hotkeys", name) }

func deleteDefinition(server, subdir, name string) error {
	serverDir, err := cfgdir.ServerDir(server)
	if err != nil {
		return fmt.Errorf("config: resolve server dir: %w", err)
	}
	path := filepath.Join(serverDir, subdir, name+".json")
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("config: %s %q does not exist", subdir, name)
		}
		return fmt.Errorf("config: delete %s %q: %w", subdir, name, err)
	}
	return nil
}
