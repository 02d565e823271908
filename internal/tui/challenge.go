// Package tui holds the Bubbletea models for interactive study modes.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renshuapp/renshu/internal/deck"
	"github.com/renshuapp/renshu/internal/ui"
)

// ChallengeResult is returned when the timed challenge ends.
type ChallengeResult struct {
	Answered int
	Correct  int
	Elapsed  time.Duration
	Canceled bool // true if user quit before the clock ran out
}

// ChallengeModel is a full-screen timed drill: answer as many prompts as
// possible before the countdown reaches zero.
type ChallengeModel struct {
	deck     *deck.Deck
	cards    []deck.Card
	index    int
	input    string
	answered int
	correct  int
	lastMiss string // feedback for the previous wrong answer

	duration time.Duration
	start    time.Time
	elapsed  time.Duration

	width    int
	height   int
	done     bool
	canceled bool
}

type challengeTickMsg time.Time

// NewChallengeModel creates a timed challenge over d lasting duration.
// seed controls the prompt order.
func NewChallengeModel(d *deck.Deck, duration time.Duration, seed int64) *ChallengeModel {
	// Draw generously; nobody answers faster than 2 prompts a second.
	budget := int(duration.Seconds())*2 + 10
	return &ChallengeModel{
		deck:     d,
		cards:    d.Shuffled(budget, seed),
		duration: duration,
		start:    time.Now(),
		width:    80,
		height:   24,
	}
}

// RunChallenge launches the full-screen timed challenge TUI.
func RunChallenge(d *deck.Deck, duration time.Duration) (ChallengeResult, error) {
	m := NewChallengeModel(d, duration, time.Now().UnixNano())
	prog := tea.NewProgram(m, tea.WithAltScreen())
	result, err := prog.Run()
	if err != nil {
		return ChallengeResult{}, fmt.Errorf("challenge tui: %w", err)
	}
	final := result.(*ChallengeModel)
	return ChallengeResult{
		Answered: final.answered,
		Correct:  final.correct,
		Elapsed:  final.elapsed,
		Canceled: final.canceled,
	}, nil
}

func challengeTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return challengeTickMsg(t)
	})
}

func (m *ChallengeModel) Init() tea.Cmd {
	return challengeTick()
}

func (m *ChallengeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case challengeTickMsg:
		m.elapsed = time.Since(m.start).Round(time.Second)
		if m.elapsed >= m.duration {
			m.elapsed = m.duration
			m.done = true
			return m, tea.Quit
		}
		return m, challengeTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.elapsed = time.Since(m.start).Round(time.Second)
			m.canceled = true
			m.done = true
			return m, tea.Quit
		case "enter":
			m.submit()
			return m, nil
		case "backspace":
			if len(m.input) > 0 {
				runes := []rune(m.input)
				m.input = string(runes[:len(runes)-1])
			}
			return m, nil
		default:
			if msg.Type == tea.KeyRunes {
				m.input += string(msg.Runes)
			}
			return m, nil
		}
	}
	return m, nil
}

// submit grades the current input and advances to the next prompt.
// Empty input is ignored so a stray enter doesn't burn a card.
func (m *ChallengeModel) submit() {
	if strings.TrimSpace(m.input) == "" {
		return
	}
	card := m.cards[m.index]
	m.answered++
	if card.Check(m.input) {
		m.correct++
		m.lastMiss = ""
	} else {
		m.lastMiss = fmt.Sprintf("%s → %s", card.Prompt, card.Answer)
	}
	m.input = ""
	m.index++
	if m.index >= len(m.cards) {
		m.index = 0
	}
}

func (m *ChallengeModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	remaining := m.duration - m.elapsed
	if remaining < 0 {
		remaining = 0
	}

	center := lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center)

	contentLines := 12
	topPad := (m.height - contentLines) / 2
	if topPad < 0 {
		topPad = 0
	}
	b.WriteString(strings.Repeat("\n", topPad))

	title := center.Bold(true).Render(fmt.Sprintf("%s %s Challenge", ui.IconStudy, m.deck.Name))
	b.WriteString(title + "\n\n")

	clock := center.Render(ui.Accent.Render(fmt.Sprintf("%d:%02d",
		int(remaining.Minutes()), int(remaining.Seconds())%60)))
	b.WriteString(clock + "\n\n")

	prompt := center.Render(ui.Title.Render(m.cards[m.index].Prompt))
	b.WriteString(prompt + "\n\n")

	b.WriteString(center.Render(ui.ValueStyle.Render("> "+m.input+"▌")) + "\n\n")

	score := fmt.Sprintf("%d/%d correct", m.correct, m.answered)
	b.WriteString(center.Render(ui.Muted.Render(score)) + "\n")

	if m.lastMiss != "" {
		b.WriteString(center.Render(ui.Warning.Render(m.lastMiss)) + "\n")
	}

	b.WriteString("\n" + center.Render(ui.Muted.Render("enter to answer  ·  esc to quit")) + "\n")
	return b.String()
}
