/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"smudgy/utilities/cfgdir"
)

// ProfileConfig is the contents of
// <smudgy_home>/<server>/profiles/<profile>/profile.json.
type ProfileConfig struct {
	Caption       string `json:"caption"`
	SendOnConnect string `json:"send_on_connect"`
}

// LoadProfileConfig reads profile.json for the named server/profile pair.
func LoadProfileConfig(server, profile string) (ProfileConfig, error) {
	var cfg ProfileConfig
	dir, err := cfgdir.ProfileDir(server, profile)
	if err != nil {
		return cfg, fmt.Errorf("config: resolve profile dir: %w", err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "profile.json"))
	if err != nil {
		return cfg, fmt.Errorf("config: read profile.json: %w", err)
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse profile.json: %w", err)
	}
	return cfg, nil
}

// SaveProfileConfig writes profile.json for the named server/profile pair.
func SaveProfileConfig(server, profile string, cfg ProfileConfig) error {
	if !ValidName(profile) {
		return ErrInvalidName
	}
	dir, err := cfgdir.ProfileDir(server, profile)
	if err != nil {
		return fmt.Errorf("config: resolve profile dir: %w", err)
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("config: marshal profile.json: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "profile.json"), b, 0600); err != nil {
		return fmt.Errorf("config: write profile.json: %w", err)
	}
	return nil
}

// ListProfiles enumerates every subdirectory of a server's profiles/
// directory with a valid profile.json.
func ListProfiles(server string) ([]string, error) {
	serverDir, err := cfgdir.ServerDir(server)
	if err != nil {
		return nil, fmt.Errorf("config: resolve server dir: %w", err)
	}
	entries, err := os.ReadDir(filepath.Join(serverDir, "profiles"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: read profiles dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := LoadProfileConfig(server, e.Name()); err != nil {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
