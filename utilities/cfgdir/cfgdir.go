/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package cfgdir determines and holds paths for smudgy's per-server home
// directory.
package cfgdir

import (
	"os"
	"path"
)

const stdLogName string = "dev.log"

// all persistent data is stored in $os.UserConfigDir/smudgy/
// or local to the instantiation, if that fails
var ( // set by init
	smudgyHome        string
	DefaultStdLogPath string
)

// on startup, identify and cache the home directory
func init() {
	const cfgSubFolder = "smudgy"
	cd, err := os.UserConfigDir()
	if err != nil {
		cd = "."
	}
	smudgyHome = path.Join(cd, cfgSubFolder)

	// ensure directory's existence
	if err := os.MkdirAll(smudgyHome, 0700); err != nil {
		pe := err.(*os.PathError)
		if pe.Err != os.ErrExist {
			panic("failed to ensure smudgy home directory '" + smudgyHome + "': " + err.Error())
		}
	}

	DefaultStdLogPath = path.Join(smudgyHome, stdLogName)
}

// SmudgyHome returns the root directory under which every server's
// directory (server.json, profiles/, aliases/, triggers/, hotkeys/,
// modules/, localstorage/) lives.
func SmudgyHome() string {
	return smudgyHome
}

// ServerDir returns <smudgy_home>/<server>, creating it if necessary.
func ServerDir(server string) (string, error) {
	dir := path.Join(smudgyHome, server)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}

// ProfileDir returns <smudgy_home>/<server>/profiles/<profile>, creating it
// if necessary.
func ProfileDir(server, profile string) (string, error) {
	serverDir, err := ServerDir(server)
	if err != nil {
		return "", err
	}
	dir := path.Join(serverDir, "profiles", profile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}
