package config_test

import (
	"testing"

	"smudgy/config"
	"smudgy/utilities/cfgdir"
)

func TestServerConfigSaveAndLoadRoundTrips(t *testing.T) {
	server := "configtest-roundtrip-server"
	cfg := config.ServerConfig{Host: "mud.example.com", Port: 4000}
	if err := config.SaveServerConfig(server, cfg); err != nil {
		t.Fatalf("SaveServerConfig() error = %v", err)
	}

	got, err := config.LoadServerConfig(server)
	if err != nil {
		t.Fatalf("LoadServerConfig() error = %v", err)
	}
	if got != cfg {
		t.Fatalf("got %+v, want %+v", got, cfg)
	}
}

func TestServerConfigRejectsInvalidPort(t *testing.T) {
	cfg := config.ServerConfig{Host: "mud.example.com", Port: 0}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for port 0")
	}
	cfg.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for port 70000")
	}
}

func TestServerConfigRejectsEmptyHost(t *testing.T) {
	cfg := config.ServerConfig{Host: "", Port: 23}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for an empty host")
	}
}

func TestSaveServerConfigRejectsInvalidName(t *testing.T) {
	cfg := config.ServerConfig{Host: "mud.example.com", Port: 23}
	if err := config.SaveServerConfig("bad name!", cfg); err != config.ErrInvalidName {
		t.Fatalf("got error %v, want %v", err, config.ErrInvalidName)
	}
}

func TestValidName(t *testing.T) {
	cases := map[string]bool{
		"aardwolf": true,
		"my-mud_1": true,
		"":         false,
		"bad name": false,
		"bad/name": false,
	}
	for name, want := range cases {
		if got := config.ValidName(name); got != want {
			t.Errorf("ValidName(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestProfileConfigSaveAndLoadRoundTrips(t *testing.T) {
	server := "configtest-profile-server"
	profile := "default"
	cfg := config.ProfileConfig{Caption: "Main character", SendOnConnect: "look"}
	if err := config.SaveProfileConfig(server, profile, cfg); err != nil {
		t.Fatalf("SaveProfileConfig() error = %v", err)
	}

	got, err := config.LoadProfileConfig(server, profile)
	if err != nil {
		t.Fatalf("LoadProfileConfig() error = %v", err)
	}
	if got != cfg {
		t.Fatalf("got %+v, want %+v", got, cfg)
	}
}

func TestListProfilesReturnsOnlyValidSubdirectories(t *testing.T) {
	server := "configtest-listprofiles-server"
	if err := config.SaveProfileConfig(server, "alice", config.ProfileConfig{Caption: "Alice"}); err != nil {
		t.Fatalf("SaveProfileConfig() error = %v", err)
	}
	if err := config.SaveProfileConfig(server, "bob", config.ProfileConfig{Caption: "Bob"}); err != nil {
		t.Fatalf("SaveProfileConfig() error = %v", err)
	}

	names, err := config.ListProfiles(server)
	if err != nil {
		t.Fatalf("ListProfiles() error = %v", err)
	}
	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	if !found["alice"] || !found["bob"] {
		t.Fatalf("expected alice and bob in %v", names)
	}
}

func TestSaveAndLoadAliasesRoundTrips(t *testing.T) {
	server := "configtest-aliases-server"
	m := map[string]config.AliasDefinition{
		"unop": {
			Patterns: []string{"^unop (.+)$"},
			Script:   "unlock $1;open $1",
			Language: config.LanguagePlaintext,
			Enabled:  true,
		},
	}
	if err := config.SaveAliases(server, "general", m); err != nil {
		t.Fatalf("SaveAliases() error = %v", err)
	}

	loaded, err := config.LoadAliases(server)
	if err != nil {
		t.Fatalf("LoadAliases() error = %v", err)
	}
	got, ok := loaded["unop"]
	if !ok {
		t.Fatal("expected alias 'unop' to be loaded")
	}
	if got.Script != m["unop"].Script || !got.Enabled {
		t.Fatalf("got %+v, want %+v", got, m["unop"])
	}
}

func TestSaveAndLoadTriggersRoundTrips(t *testing.T) {
	server := "configtest-triggers-server"
	m := map[string]config.TriggerDefinition{
		"kill": {
			Patterns:     []string{`\bdies\b`},
			AntiPatterns: []string{"practice dummy"},
			Language:     config.LanguagePlaintext,
			Enabled:      true,
		},
	}
	if err := config.SaveTriggers(server, "combat", m); err != nil {
		t.Fatalf("SaveTriggers() error = %v", err)
	}

	loaded, err := config.LoadTriggers(server)
	if err != nil {
		t.Fatalf("LoadTriggers() error = %v", err)
	}
	got, ok := loaded["kill"]
	if !ok {
		t.Fatal("expected trigger 'kill' to be loaded")
	}
	if len(got.AntiPatterns) != 1 || got.AntiPatterns[0] != "practice dummy" {
		t.Fatalf("got %+v", got)
	}
}

func TestSaveAndLoadHotkeysRoundTrips(t *testing.T) {
	server := "configtest-hotkeys-server"
	m := map[string]config.HotkeyDefinition{
		"quicklook": {
			Key:      "F1",
			Script:   "look",
			Language: config.LanguagePlaintext,
			Enabled:  true,
		},
	}
	if err := config.SaveHotkeys(server, "default", m); err != nil {
		t.Fatalf("SaveHotkeys() error = %v", err)
	}

	loaded, err := config.LoadHotkeys(server)
	if err != nil {
		t.Fatalf("LoadHotkeys() error = %v", err)
	}
	if loaded["quicklook"].Key != "F1" {
		t.Fatalf("got %+v", loaded["quicklook"])
	}
}

func TestLoadAliasesMergesMultipleFiles(t *testing.T) {
	server := "configtest-merge-server"
	if err := config.SaveAliases(server, "a", map[string]config.AliasDefinition{
		"one": {Patterns: []string{"^one$"}, Language: config.LanguagePlaintext, Enabled: true},
	}); err != nil {
		t.Fatalf("SaveAliases() error = %v", err)
	}
	if err := config.SaveAliases(server, "b", map[string]config.AliasDefinition{
		"two": {Patterns: []string{"^two$"}, Language: config.LanguagePlaintext, Enabled: true},
	}); err != nil {
		t.Fatalf("SaveAliases() error = %v", err)
	}

	loaded, err := config.LoadAliases(server)
	if err != nil {
		t.Fatalf("LoadAliases() error = %v", err)
	}
	if _, ok := loaded["one"]; !ok {
		t.Fatal("expected 'one' from file a.json")
	}
	if _, ok := loaded["two"]; !ok {
		t.Fatal("expected 'two' from file b.json")
	}
}

func TestListModulesWithoutModulesReturnsNil(t *testing.T) {
	server := "configtest-modules-server"
	if _, err := cfgdir.ServerDir(server); err != nil {
		t.Fatalf("ServerDir() error = %v", err)
	}

	modules, err := config.ListModules(server)
	if err != nil {
		t.Fatalf("ListModules() error = %v", err)
	}
	if modules != nil {
		t.Fatalf("expected nil modules list for an empty modules dir, got %v", modules)
	}
}
