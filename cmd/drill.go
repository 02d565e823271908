package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/renshuapp/renshu/internal/config"
	"github.com/renshuapp/renshu/internal/deck"
	"github.com/renshuapp/renshu/internal/tui"
	"github.com/renshuapp/renshu/internal/ui"
)

var (
	drillTimed int
	drillSize  int
)

var drillCmd = &cobra.Command{
	Use:   "drill [deck]",
	Short: "Run a study drill (hiragana, katakana, vocab)",
	Long: `Drill a deck: read the glyph, type the romaji (or meaning for vocab).

A plain drill asks a fixed number of prompts. With --timed, a full-screen
countdown challenge runs instead: answer as many as you can before the clock
hits zero. Finishing either records today's visit for your streak.

Examples:
  renshu drill
  renshu drill katakana
  renshu drill vocab --timed 60`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDrill,
}

func init() {
	drillCmd.Flags().IntVar(&drillTimed, "timed", 0, "Run a timed challenge of N seconds")
	drillCmd.Flags().IntVar(&drillSize, "size", 0, "Prompts per drill (default from config)")
}

func runDrill(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	deckID := cfg.Study.DefaultDeck
	if len(args) > 0 {
		deckID = args[0]
	}
	d, err := deck.ByID(deckID)
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if drillTimed > 0 {
		return runTimedChallenge(a, d, time.Duration(drillTimed)*time.Second)
	}

	size := cfg.Study.DrillSize
	if drillSize > 0 {
		size = drillSize
	}
	return runPlainDrill(a, d, size)
}

// runPlainDrill asks size prompts on stdin/stdout, then records the session.
func runPlainDrill(a *app, d *deck.Deck, size int) error {
	ui.Header(fmt.Sprintf("%s %s drill — %d prompts", ui.IconStudy, d.Name, size))
	fmt.Println(ui.Muted.Render("  type your answer and press enter; blank to give up a card"))
	fmt.Println()

	cards := d.Shuffled(size, time.Now().UnixNano())
	reader := bufio.NewReader(os.Stdin)
	start := time.Now()

	var answered, correct int
	for i, card := range cards {
		fmt.Printf("  %2d/%d  %s  ", i+1, size, ui.Title.Render(card.Prompt))
		line, err := reader.ReadString('\n')
		if err != nil {
			// EOF mid-drill: score only the prompts actually answered.
			break
		}
		answered++
		answer := strings.TrimSpace(line)
		if card.Check(answer) {
			correct++
			fmt.Println(ui.Success.Render("      " + ui.IconOk))
		} else {
			fmt.Println(ui.Warning.Render(fmt.Sprintf("      %s %s", ui.IconError, card.Answer)))
		}
	}

	elapsed := time.Since(start)
	return finishSession(a, d.ID, "drill", answered, correct, elapsed)
}

// runTimedChallenge runs the full-screen countdown TUI.
func runTimedChallenge(a *app, d *deck.Deck, duration time.Duration) error {
	if !ui.IsStdoutTTY() {
		return fmt.Errorf("timed challenges need a terminal — run without --timed")
	}

	result, err := tui.RunChallenge(d, duration)
	if err != nil {
		return err
	}
	if result.Canceled && result.Answered == 0 {
		ui.Inf("challenge canceled — nothing recorded")
		return nil
	}
	return finishSession(a, d.ID, "timed", result.Answered, result.Correct, result.Elapsed)
}

// finishSession records the session and visit, then prints the score line.
func finishSession(a *app, deckID, mode string, answered, correct int, elapsed time.Duration) error {
	now := time.Now()
	if _, err := a.visits.RecordSession(deckID, mode, answered, correct, elapsed, now); err != nil {
		return err
	}

	fmt.Println()
	ui.Ok(fmt.Sprintf("%d/%d correct in %s", correct, answered, elapsed.Round(time.Second)))

	sum, err := a.visits.GetStreak(now)
	if err != nil {
		return err
	}
	if sum.Current > 1 {
		ui.Inf(fmt.Sprintf("%s %d-day streak — keep it going!", ui.IconStreak, sum.Current))
	} else if sum.Current == 1 {
		ui.Inf(fmt.Sprintf("%s day one of a new streak", ui.IconStreak))
	}
	return nil
}
