package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renshuapp/renshu/internal/deck"
)

func testModel(t *testing.T) *ChallengeModel {
	t.Helper()
	d, err := deck.ByID("hiragana")
	if err != nil {
		t.Fatal(err)
	}
	return NewChallengeModel(d, time.Minute, 42)
}

func typeString(m *ChallengeModel, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestChallenge_CorrectAnswerScores(t *testing.T) {
	m := testModel(t)
	answer := m.cards[0].Answer

	typeString(m, answer)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.answered != 1 || m.correct != 1 {
		t.Errorf("answered=%d correct=%d, want 1/1", m.answered, m.correct)
	}
	if m.index != 1 {
		t.Errorf("index = %d, want 1 (advanced to next card)", m.index)
	}
	if m.input != "" {
		t.Errorf("input = %q, want cleared", m.input)
	}
}

func TestChallenge_WrongAnswerShowsMiss(t *testing.T) {
	m := testModel(t)

	typeString(m, "zzz")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.answered != 1 || m.correct != 0 {
		t.Errorf("answered=%d correct=%d, want 1/0", m.answered, m.correct)
	}
	if m.lastMiss == "" {
		t.Error("no miss feedback after a wrong answer")
	}
}

func TestChallenge_EmptySubmitIgnored(t *testing.T) {
	m := testModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.answered != 0 {
		t.Errorf("answered = %d after empty submit, want 0", m.answered)
	}
}

func TestChallenge_Backspace(t *testing.T) {
	m := testModel(t)
	typeString(m, "ka")
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.input != "k" {
		t.Errorf("input = %q after backspace, want k", m.input)
	}
}

func TestChallenge_EscCancels(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !m.canceled || !m.done {
		t.Error("esc did not cancel the challenge")
	}
	if cmd == nil {
		t.Error("esc should return tea.Quit")
	}
}

func TestChallenge_TimeUpQuits(t *testing.T) {
	m := testModel(t)
	m.start = time.Now().Add(-2 * time.Minute) // clock already expired
	_, cmd := m.Update(challengeTickMsg(time.Now()))
	if !m.done {
		t.Error("expired clock did not end the challenge")
	}
	if m.canceled {
		t.Error("time-up should not count as canceled")
	}
	if cmd == nil {
		t.Error("time-up should return tea.Quit")
	}
	if m.elapsed != m.duration {
		t.Errorf("elapsed = %v, want clamped to %v", m.elapsed, m.duration)
	}
}

func TestChallenge_WrapsDeck(t *testing.T) {
	m := testModel(t)
	m.index = len(m.cards) - 1
	typeString(m, "x")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.index != 0 {
		t.Errorf("index = %d after last card, want 0 (wrap)", m.index)
	}
}
