/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package config implements the on-disk JSON schema for a server's
// persisted state: its connection settings, profiles, and automation
// definitions (aliases/triggers/hotkeys). It is a data-contract layer —
// marshal/unmarshal helpers only; deciding when to load, watch, or
// hot-reload these files is a host concern.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"smudgy/utilities/cfgdir"
)

// ErrInvalidName is returned when a server/profile/alias/trigger/hotkey
// name contains characters outside [A-Za-z0-9_-].
var ErrInvalidName = errors.New("config: name may only contain alphanumerics, '_', and '-'")

// ErrInvalidPort is returned when a ServerConfig's Port is out of the
// valid TCP port range.
var ErrInvalidPort = errors.New("config: port must be between 1 and 65535")

var validNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidName reports whether name is a legal server/profile/automation name.
func ValidName(name string) bool {
	return name != "" && validNamePattern.MatchString(name)
}

// ServerConfig is the contents of <smudgy_home>/<server>/server.json.
type ServerConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// Validate checks ServerConfig's fields against §6's constraints.
func (c ServerConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("config: host cannot be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return ErrInvalidPort
	}
	return nil
}

// LoadServerConfig reads and validates server.json for the named server.
func LoadServerConfig(server string) (ServerConfig, error) {
	var cfg ServerConfig
	dir, err := cfgdir.ServerDir(server)
	if err != nil {
		return cfg, fmt.Errorf("config: resolve server dir: %w", err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "server.json"))
	if err != nil {
		return cfg, fmt.Errorf("config: read server.json: %w", err)
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse server.json: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: validate server.json: %w", err)
	}
	return cfg, nil
}

// SaveServerConfig validates and writes server.json for the named server.
func SaveServerConfig(server string, cfg ServerConfig) error {
	if !ValidName(server) {
		return ErrInvalidName
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	dir, err := cfgdir.ServerDir(server)
	if err != nil {
		return fmt.Errorf("config: resolve server dir: %w", err)
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("config: marshal server.json: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "server.json"), b, 0600); err != nil {
		return fmt.Errorf("config: write server.json: %w", err)
	}
	return nil
}

// ListServers enumerates every subdirectory of smudgy home with a valid
// server.json, skipping (not failing on) individually broken entries.
func ListServers() ([]string, error) {
	entries, err := os.ReadDir(cfgdir.SmudgyHome())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: read smudgy home: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := LoadServerConfig(e.Name()); err != nil {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
