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
	"fmt"
	"os"
	"path/filepath"

	"smudgy/utilities/cfgdir"
)

// Language discriminates how an automation definition's script body is
// interpreted.
type Language string

const (
	LanguagePlaintext Language = "Plaintext"
	LanguageJS        Language = "JS"
	LanguageTS        Language = "TS"
)

// AliasDefinition is one entry of <server>/aliases/*.json.
type AliasDefinition struct {
	Patterns []string `json:"patterns"`
	Script   string   `json:"script,omitempty"`
	Package  string   `json:"package,omitempty"`
	Language Language `json:"language"`
	Enabled  bool     `json:"enabled"`
}

// TriggerDefinition is one entry of <server>/triggers/*.json.
type TriggerDefinition struct {
	Patterns            []string `json:"patterns,omitempty"`
	RawPatterns         []string `json:"rawPatterns,omitempty"`
	AntiPatterns        []string `json:"antiPatterns,omitempty"`
	Script              string   `json:"script,omitempty"`
	Package             string   `json:"package,omitempty"`
	Language            Language `json:"language"`
	Prompt              bool     `json:"prompt"`
	Enabled             bool     `json:"enabled"`
	FiresOnPartialLines bool     `json:"firesOnPartialLines"`
}

// HotkeyDefinition is one entry of <server>/hotkeys/*.json.
type HotkeyDefinition struct {
	Key      string   `json:"key"`
	Script   string   `json:"script,omitempty"`
	Package  string   `json:"package,omitempty"`
	Language Language `json:"language"`
	Enabled  bool     `json:"enabled"`
}

// LoadAliases reads every *.json file under <server>/aliases/ into a
// map keyed by file basename (sans extension).
func LoadAliases(server string) (map[string]AliasDefinition, error) {
	m := map[string]AliasDefinition{}
	if err := loadDefinitions(server, "aliases", &m); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadTriggers reads every *.json file under <server>/triggers/ into a
// map keyed by file basename (sans extension).
func LoadTriggers(server string) (map[string]TriggerDefinition, error) {
	m := map[string]TriggerDefinition{}
	if err := loadDefinitions(server, "triggers", &m); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadHotkeys reads every *.json file under <server>/hotkeys/ into a
// map keyed by file basename (sans extension).
func LoadHotkeys(server string) (map[string]HotkeyDefinition, error) {
	m := map[string]HotkeyDefinition{}
	if err := loadDefinitions(server, "hotkeys", &m); err != nil {
		return nil, err
	}
	return m, nil
}

// loadDefinitions scans <server>/<subdir>/*.json, unmarshalling each file
// as a map<name, T> and merging the results into out (a *map[string]T).
func loadDefinitions(server, subdir string, out any) error {
	serverDir, err := cfgdir.ServerDir(server)
	if err != nil {
		return fmt.Errorf("config: resolve server dir: %w", err)
	}
	dir := filepath.Join(serverDir, subdir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config: read %s dir: %w", subdir, err)
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return fmt.Errorf("config: read %s: %w", e.Name(), err)
		}
		if err := mergeInto(out, b); err != nil {
			return fmt.Errorf("config: parse %s: %w", e.Name(), err)
		}
	}
	return nil
}

func mergeInto(out any, b []byte) error {
	switch m := out.(type) {
	case *map[string]AliasDefinition:
		var part map[string]AliasDefinition
		if err := json.Unmarshal(b, &part); err != nil {
			return err
		}
		for k, v := range part {
			(*m)[k] = v
		}
	case *map[string]TriggerDefinition:
		var part map[string]TriggerDefinition
		if err := json.Unmarshal(b, &part); err != nil {
			return err
		}
		for k, v := range part {
			(*m)[k] = v
		}
	case *map[string]HotkeyDefinition:
		var part map[string]HotkeyDefinition
		if err := json.Unmarshal(b, &part); err != nil {
			return err
		}
		for k, v := range part {
			(*m)[k] = v
		}
	default:
		return fmt.Errorf("config: unsupported definition map type %T", out)
	}
	return nil
}

// SaveAliases writes m to <server>/aliases/<file>.json, replacing its contents.
func SaveAliases(server, file string, m map[string]AliasDefinition) error {
	return saveDefinitions(server, "aliases", file, m)
}

// SaveTriggers writes m to <server>/triggers/<file>.json, replacing its contents.
func SaveTriggers(server, file string, m map[string]TriggerDefinition) error {
	return saveDefinitions(server, "triggers", file, m)
}

// SaveHotkeys writes m to <server>/hotkeys/<file>.json, replacing its contents.
func SaveHotkeys(server, file string, m map[string]HotkeyDefinition) error {
	return saveDefinitions(server, "hotkeys", file, m)
}

func saveDefinitions(server, subdir, file string, m any) error {
	serverDir, err := cfgdir.ServerDir(server)
	if err != nil {
		return fmt.Errorf("config: resolve server dir: %w", err)
	}
	dir := filepath.Join(serverDir, subdir)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("config: create %s dir: %w", subdir, err)
	}
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("config: marshal %s: %w", subdir, err)
	}
	if filepath.Ext(file) != ".json" {
		file += ".json"
	}
	if err := os.WriteFile(filepath.Join(dir, file), b, 0600); err != nil {
		return fmt.Errorf("config: write %s/%s: %w", subdir, file, err)
	}
	return nil
}

// ListModules returns the paths of every *.js/*.ts file under
// <server>/modules/, for the runtime's synthetic-entrypoint import scan.
func ListModules(server string) ([]string, error) {
	serverDir, err := cfgdir.ServerDir(server)
	if err != nil {
		return nil, fmt.Errorf("config: resolve server dir: %w", err)
	}
	dir := filepath.Join(serverDir, "modules")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: read modules dir: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".js", ".ts":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return paths, nil
}
