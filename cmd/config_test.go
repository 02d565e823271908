package cmd

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/renshuapp/renshu/internal/config"
)

// cmdTestEnv points all XDG paths at a temp dir so commands never touch the
// real config or database.
func cmdTestEnv(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir+"/config")
	t.Setenv("XDG_DATA_HOME", tmpDir+"/data")
	t.Setenv("XDG_CACHE_HOME", tmpDir+"/cache")
	t.Setenv("XDG_STATE_HOME", tmpDir+"/state")
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w
	defer func() {
		os.Stdout = old
		r.Close()
	}()

	fn()

	w.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("io.Copy: %v", err)
	}
	return buf.String()
}

func TestRunConfigGet_KnownKey(t *testing.T) {
	cmdTestEnv(t)

	cfg := &config.Config{}
	cfg.Study.DefaultDeck = "katakana"
	if err := config.Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out := captureStdout(t, func() {
		if err := runConfigGet(nil, []string{"study.default_deck"}); err != nil {
			t.Errorf("runConfigGet: %v", err)
		}
	})

	if !strings.Contains(out, "katakana") {
		t.Fatalf("expected 'katakana' in output, got: %q", out)
	}
}

func TestRunConfigGet_UnknownKey(t *testing.T) {
	cmdTestEnv(t)

	err := runConfigGet(nil, []string{"not.a.real.key"})
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "unknown config key") {
		t.Errorf("expected 'unknown config key' in error, got: %v", err)
	}
	// Error should include the list of valid keys.
	if !strings.Contains(err.Error(), "user.name") {
		t.Errorf("expected valid key hint in error, got: %v", err)
	}
}

func TestRunConfigSet_RoundTrips(t *testing.T) {
	cmdTestEnv(t)

	captureStdout(t, func() {
		if err := runConfigSet(nil, []string{"user.name", "Aiko"}); err != nil {
			t.Fatalf("runConfigSet: %v", err)
		}
	})

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.User.Name != "Aiko" {
		t.Errorf("User.Name = %q, want Aiko", cfg.User.Name)
	}
}

func TestRunConfigSet_ValidatesDeck(t *testing.T) {
	cmdTestEnv(t)

	err := runConfigSet(nil, []string{"study.default_deck", "klingon"})
	if err == nil {
		t.Fatal("expected error for unknown deck")
	}
	if !strings.Contains(err.Error(), "unknown deck") {
		t.Errorf("expected deck validation error, got: %v", err)
	}
}

func TestRunConfigSet_ValidatesInt(t *testing.T) {
	cmdTestEnv(t)

	if err := runConfigSet(nil, []string{"study.drill_size", "lots"}); err == nil {
		t.Fatal("expected error for non-integer drill size")
	}
	if err := runConfigSet(nil, []string{"study.drill_size", "-3"}); err == nil {
		t.Fatal("expected error for negative drill size")
	}
}

func TestRunConfigUnset_RestoresDefault(t *testing.T) {
	cmdTestEnv(t)

	captureStdout(t, func() {
		if err := runConfigSet(nil, []string{"study.timed_secs", "90"}); err != nil {
			t.Fatalf("runConfigSet: %v", err)
		}
		if err := runConfigUnset(nil, []string{"study.timed_secs"}); err != nil {
			t.Fatalf("runConfigUnset: %v", err)
		}
	})

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Study.TimedSecs != 60 {
		t.Errorf("TimedSecs = %d after unset, want 60", cfg.Study.TimedSecs)
	}
}

func TestRunConfigList_ShowsAllKeys(t *testing.T) {
	cmdTestEnv(t)

	out := captureStdout(t, func() {
		if err := runConfigList(nil, nil); err != nil {
			t.Fatalf("runConfigList: %v", err)
		}
	})

	for _, key := range config.ValidKeyNames() {
		if !strings.Contains(out, key) {
			t.Errorf("config list output missing key %q", key)
		}
	}
}
