package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/renshuapp/renshu/internal/ui"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record today's visit manually",
	Long: `Mark today as a study day without running a drill — for study done
away from the terminal. Repeat logs on the same day are deduplicated.`,
	RunE: runLog,
}

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show current and longest study streaks",
	RunE:  runStreak,
}

func runLog(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	now := time.Now()
	if err := a.visits.RecordVisit(now); err != nil {
		return err
	}

	sum, err := a.visits.GetStreak(now)
	if err != nil {
		return err
	}
	ui.Ok(fmt.Sprintf("visit logged for %s", now.UTC().Format("2006-01-02")))
	if sum.Current > 0 {
		ui.Inf(fmt.Sprintf("%s %d-day streak", ui.IconStreak, sum.Current))
	}
	return nil
}

func runStreak(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	now := time.Now()
	sum, err := a.visits.GetStreak(now)
	if err != nil {
		return fmt.Errorf("computing streak: %w", err)
	}

	ui.Header(ui.IconStreak + " Study streak")
	ui.Kv("Current", fmt.Sprintf("%d days", sum.Current))
	ui.Kv("Longest", fmt.Sprintf("%d days", sum.Longest))
	ui.Kv("Total", fmt.Sprintf("%d study days", sum.Total))

	recent, err := a.visits.SessionsSince(now.UTC().AddDate(0, 0, -7))
	if err != nil {
		return fmt.Errorf("loading recent sessions: %w", err)
	}
	if len(recent) > 0 {
		fmt.Println()
		ui.Puts(ui.Subtitle.Render("  This week"))
		for _, sess := range recent {
			ui.Puts(fmt.Sprintf("  %s %-10s %-6s %d/%d",
				ui.IconDot, sess.Deck, sess.Mode, sess.Correct, sess.Answered))
		}
	}

	if sum.Current == 0 && sum.Total > 0 {
		ui.Tip("`renshu drill` to start a new streak today.")
	}
	return nil
}
