package cmd

import (
	"strings"
	"testing"

	"github.com/renshuapp/renshu/internal/prefs"
)

func TestRunThemeSet_Builtin(t *testing.T) {
	cmdTestEnv(t)

	captureStdout(t, func() {
		if err := runThemeSet(nil, []string{"matcha"}); err != nil {
			t.Fatalf("runThemeSet: %v", err)
		}
	})

	a, err := openApp()
	if err != nil {
		t.Fatalf("openApp: %v", err)
	}
	defer a.Close()

	active, err := a.prefs.ActiveTheme("")
	if err != nil {
		t.Fatalf("ActiveTheme: %v", err)
	}
	if active != "matcha" {
		t.Errorf("active theme = %q, want matcha", active)
	}
}

func TestRunThemeSet_AliasResolvesBeforeSaving(t *testing.T) {
	cmdTestEnv(t)

	captureStdout(t, func() {
		if err := runThemeSet(nil, []string{"cherry"}); err != nil {
			t.Fatalf("runThemeSet: %v", err)
		}
	})

	a, err := openApp()
	if err != nil {
		t.Fatalf("openApp: %v", err)
	}
	defer a.Close()

	active, _ := a.prefs.ActiveTheme("")
	if active != "sakura" {
		t.Errorf("active theme = %q, want sakura (resolved from cherry)", active)
	}
}

func TestRunThemeSet_UnknownIsNoOp(t *testing.T) {
	cmdTestEnv(t)

	captureStdout(t, func() {
		if err := runThemeSet(nil, []string{"matcha"}); err != nil {
			t.Fatalf("runThemeSet: %v", err)
		}
		// Unknown id warns but does not error, and the previous choice stays.
		if err := runThemeSet(nil, []string{"nope"}); err != nil {
			t.Fatalf("runThemeSet(unknown): %v", err)
		}
	})

	a, err := openApp()
	if err != nil {
		t.Fatalf("openApp: %v", err)
	}
	defer a.Close()

	active, _ := a.prefs.ActiveTheme("")
	if active != "matcha" {
		t.Errorf("active theme = %q after failed set, want matcha", active)
	}
}

func TestRunThemeSet_PremiumLockedWithoutKey(t *testing.T) {
	cmdTestEnv(t)

	captureStdout(t, func() {
		if err := runThemeSet(nil, []string{"glass-dark"}); err != nil {
			t.Fatalf("runThemeSet: %v", err)
		}
	})

	a, err := openApp()
	if err != nil {
		t.Fatalf("openApp: %v", err)
	}
	defer a.Close()

	active, _ := a.prefs.ActiveTheme("")
	if active == "glass-dark" {
		t.Error("locked premium theme must not become active")
	}
}

func TestRunThemeSet_PremiumUnlocked(t *testing.T) {
	cmdTestEnv(t)

	// Simulate a completed activation.
	a, err := openApp()
	if err != nil {
		t.Fatalf("openApp: %v", err)
	}
	if err := a.prefs.SetBool(prefs.KeyPremiumUnlocked, true); err != nil {
		t.Fatalf("SetBool: %v", err)
	}
	a.Close()

	captureStdout(t, func() {
		if err := runThemeSet(nil, []string{"glass-dark"}); err != nil {
			t.Fatalf("runThemeSet: %v", err)
		}
	})

	a, err = openApp()
	if err != nil {
		t.Fatalf("openApp: %v", err)
	}
	defer a.Close()

	active, _ := a.prefs.ActiveTheme("")
	if active != "glass-dark" {
		t.Errorf("active theme = %q, want glass-dark", active)
	}
	glass, _ := a.prefs.GetBool(prefs.KeyGlassMode, false)
	if !glass {
		t.Error("glass mode pref should be set after applying a glass theme")
	}
}

func TestRunThemeAddThenList(t *testing.T) {
	cmdTestEnv(t)

	themeAddBg, themeAddMain, themeAddSecondary = "#101018", "#cc6688", "#6688cc"
	themeAddLight, themeAddWallpaper = false, ""

	var created string
	out := captureStdout(t, func() {
		if err := runThemeAdd(nil, []string{"dusk"}); err != nil {
			t.Fatalf("runThemeAdd: %v", err)
		}
	})
	for _, f := range strings.Fields(out) {
		if strings.HasPrefix(f, "custom-") {
			created = f
			break
		}
	}
	if created == "" {
		t.Fatalf("no custom theme id in output: %q", out)
	}

	listOut := captureStdout(t, func() {
		if err := runThemeList(nil, nil); err != nil {
			t.Fatalf("runThemeList: %v", err)
		}
	})
	if !strings.Contains(listOut, created) {
		t.Errorf("theme list missing %q", created)
	}

	captureStdout(t, func() {
		if err := runThemeRemove(nil, []string{created}); err != nil {
			t.Fatalf("runThemeRemove: %v", err)
		}
	})
	listOut = captureStdout(t, func() {
		if err := runThemeList(nil, nil); err != nil {
			t.Fatalf("runThemeList: %v", err)
		}
	})
	if strings.Contains(listOut, created) {
		t.Errorf("removed theme %q still listed", created)
	}
}
