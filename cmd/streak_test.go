package cmd

import (
	"strings"
	"testing"
	"time"
)

func TestRunStreak_ShowsRecentSessions(t *testing.T) {
	cmdTestEnv(t)

	a, err := openApp()
	if err != nil {
		t.Fatalf("openApp: %v", err)
	}
	if _, err := a.visits.RecordSession("vocab", "drill", 10, 8, 2*time.Minute, time.Now()); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}
	a.Close()

	out := captureStdout(t, func() {
		if err := runStreak(nil, nil); err != nil {
			t.Fatalf("runStreak: %v", err)
		}
	})

	if !strings.Contains(out, "This week") {
		t.Errorf("expected recent-sessions block, got %q", out)
	}
	if !strings.Contains(out, "vocab") {
		t.Errorf("expected session deck in output, got %q", out)
	}
	if !strings.Contains(out, "8/10") {
		t.Errorf("expected session score 8/10 in output, got %q", out)
	}
}

func TestRunStreak_NoSessionsNoBlock(t *testing.T) {
	cmdTestEnv(t)

	out := captureStdout(t, func() {
		if err := runStreak(nil, nil); err != nil {
			t.Fatalf("runStreak: %v", err)
		}
	})

	if strings.Contains(out, "This week") {
		t.Errorf("recent-sessions block should be absent with no sessions, got %q", out)
	}
}
