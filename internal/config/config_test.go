package config

import (
	"path/filepath"
	"testing"
)

func setupTestXDG(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmpDir, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(tmpDir, "cache"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmpDir, "state"))
	return tmpDir
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	setupTestXDG(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Study.DefaultDeck != "hiragana" {
		t.Errorf("DefaultDeck = %q, want hiragana", cfg.Study.DefaultDeck)
	}
	if cfg.Study.DrillSize != 20 {
		t.Errorf("DrillSize = %d, want 20", cfg.Study.DrillSize)
	}
	if cfg.Study.TimedSecs != 60 {
		t.Errorf("TimedSecs = %d, want 60", cfg.Study.TimedSecs)
	}
	if cfg.Theme.Default != "ink" {
		t.Errorf("Theme.Default = %q, want ink", cfg.Theme.Default)
	}
	if Initialized() {
		t.Error("Initialized should be false before first Save")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	setupTestXDG(t)

	cfg := &Config{}
	cfg.User.Name = "Hana"
	cfg.Study.DefaultDeck = "vocab"
	cfg.Study.DrillSize = 10
	cfg.Theme.Default = "sakura"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Initialized() {
		t.Error("Initialized should be true after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.User.Name != "Hana" {
		t.Errorf("User.Name = %q", got.User.Name)
	}
	if got.Study.DefaultDeck != "vocab" {
		t.Errorf("DefaultDeck = %q", got.Study.DefaultDeck)
	}
	if got.Study.DrillSize != 10 {
		t.Errorf("DrillSize = %d", got.Study.DrillSize)
	}
	// Unset int fields pick up their defaults on load.
	if got.Study.TimedSecs != 60 {
		t.Errorf("TimedSecs = %d, want 60 via defaults", got.Study.TimedSecs)
	}
}

func TestSchemaKeys_GetSetUnset(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	for _, name := range ValidKeyNames() {
		entry, ok := LookupKey(name)
		if !ok {
			t.Fatalf("LookupKey(%q) failed for a name ValidKeyNames returned", name)
		}
		if entry.Get(cfg) != entry.DefaultStr {
			t.Errorf("%s: default Get = %q, want %q", name, entry.Get(cfg), entry.DefaultStr)
		}
	}

	entry, _ := LookupKey("study.drill_size")
	if err := entry.Set(cfg, "15"); err != nil {
		t.Fatalf("Set(15): %v", err)
	}
	if cfg.Study.DrillSize != 15 {
		t.Errorf("DrillSize = %d after Set", cfg.Study.DrillSize)
	}
	if err := entry.Set(cfg, "zero"); err == nil {
		t.Error("Set(zero) should fail for an int key")
	}
	entry.Unset(cfg)
	if cfg.Study.DrillSize != 20 {
		t.Errorf("DrillSize = %d after Unset, want 20", cfg.Study.DrillSize)
	}
}

func TestStudyTipsKey(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	entry, ok := LookupKey("study.tips")
	if !ok {
		t.Fatal("study.tips key missing from schema")
	}
	if entry.Type != KeyTypeBool {
		t.Errorf("study.tips type = %q, want bool", entry.Type)
	}

	if !cfg.Study.TipsEnabled() {
		t.Error("tips should default to on")
	}
	if entry.Get(cfg) != "true" {
		t.Errorf("default Get = %q, want true", entry.Get(cfg))
	}

	if err := entry.Set(cfg, "off"); err != nil {
		t.Fatalf("Set(off): %v", err)
	}
	if cfg.Study.TipsEnabled() {
		t.Error("TipsEnabled = true after Set(off)")
	}
	if entry.Get(cfg) != "false" {
		t.Errorf("Get = %q after Set(off), want false", entry.Get(cfg))
	}

	if err := entry.Set(cfg, "maybe"); err == nil {
		t.Error("Set(maybe) should fail for a bool key")
	}

	entry.Unset(cfg)
	if !cfg.Study.TipsEnabled() {
		t.Error("Unset should restore the on default")
	}
}

func TestSaveLoad_TipsFlagRoundTrips(t *testing.T) {
	setupTestXDG(t)

	cfg := &Config{}
	cfg.Study.Tips = BoolPtr(false)
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Study.TipsEnabled() {
		t.Error("explicit tips=false lost on round trip")
	}
}

func TestParseBoolValue(t *testing.T) {
	for _, v := range []string{"true", "1", "yes", "ON"} {
		got, err := ParseBoolValue(v)
		if err != nil || !got {
			t.Errorf("ParseBoolValue(%q) = %v, %v; want true, nil", v, got, err)
		}
	}
	for _, v := range []string{"false", "0", "no", "off"} {
		got, err := ParseBoolValue(v)
		if err != nil || got {
			t.Errorf("ParseBoolValue(%q) = %v, %v; want false, nil", v, got, err)
		}
	}
	if _, err := ParseBoolValue("maybe"); err == nil {
		t.Error("ParseBoolValue(maybe) should fail")
	}
}

func TestParseIntValue(t *testing.T) {
	if n, err := ParseIntValue(" 42 "); err != nil || n != 42 {
		t.Errorf("ParseIntValue(42) = %d, %v", n, err)
	}
	if _, err := ParseIntValue("0"); err == nil {
		t.Error("ParseIntValue(0) should fail, values must be positive")
	}
	if _, err := ParseIntValue("abc"); err == nil {
		t.Error("ParseIntValue(abc) should fail")
	}
}
