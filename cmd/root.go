package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/renshuapp/renshu/internal/config"
	"github.com/renshuapp/renshu/internal/prefs"
	"github.com/renshuapp/renshu/internal/store"
	"github.com/renshuapp/renshu/internal/theme"
	"github.com/renshuapp/renshu/internal/tips"
	"github.com/renshuapp/renshu/internal/ui"
	"github.com/renshuapp/renshu/internal/visit"
)

var rootCmd = &cobra.Command{
	Use:   "renshu",
	Short: "Your daily Japanese study companion",
	Long:  `renshu — kana and vocabulary drills, streaks, and a study calendar. All local, all yours.`,
	RunE:  runDashboard,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Err(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(calCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(premiumCmd)
	rootCmd.AddCommand(guideCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// app bundles the open store and the services every command needs.
type app struct {
	db       *store.DB
	visits   *visit.Store
	prefs    *prefs.Store
	registry *theme.Registry
	themes   *theme.Service
	applier  *ui.Applier
}

// openApp opens the database, wires the theming service to the custom-theme
// registry, and applies the active theme so all output renders in it.
func openApp() (*app, error) {
	db, err := store.Open()
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	a := &app{
		db:      db,
		visits:  visit.NewStore(db.Conn()),
		prefs:   prefs.NewStore(db.Conn()),
		applier: ui.NewApplier(),
	}

	a.registry = theme.NewRegistry(db.Conn())
	a.themes = theme.NewService(a.registry, a.prefs, a.applier)
	a.registry.OnChange(a.themes.Invalidate)

	// The premium flag in prefs is the cheap startup check; the encrypted
	// license file is the proof, verified at activation time.
	unlocked, err := a.prefs.GetBool(prefs.KeyPremiumUnlocked, false)
	if err != nil {
		db.Close()
		return nil, err
	}
	a.themes.SetPremiumUnlocked(unlocked)

	a.applyActiveTheme()
	return a, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

// applyActiveTheme applies the saved theme preference. An unknown or locked
// theme is logged and skipped — output falls back to the default palette.
func (a *app) applyActiveTheme() {
	cfg, err := config.Load()
	if err != nil {
		return
	}

	id, err := a.prefs.ActiveTheme(cfg.Theme.Default)
	if err != nil {
		return
	}

	if err := a.themes.Apply(id); err != nil {
		switch {
		case errors.Is(err, theme.ErrNotFound):
			ui.Warn(fmt.Sprintf("theme %q no longer exists — using defaults", id))
		case errors.Is(err, theme.ErrPremiumLocked):
			ui.Warn(fmt.Sprintf("theme %q is premium and locked — using defaults", id))
		}
	}
}

// runDashboard shows the at-a-glance status when you just type `renshu`.
func runDashboard(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if !config.Initialized() {
		fmt.Println(ui.Greet(""))
		fmt.Println()
		fmt.Println("  Looks like this is your first time. Let's set things up!")
		fmt.Println()
		fmt.Printf("  Run %s to get started.\n", ui.Accent.Render("renshu init"))
		fmt.Println()
		return nil
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	fmt.Println(ui.Greet(cfg.User.Name))
	fmt.Println()

	now := time.Now()
	sum, err := a.visits.GetStreak(now)
	if err != nil {
		return fmt.Errorf("computing streak: %w", err)
	}

	streakLine := fmt.Sprintf("%d days", sum.Current)
	if sum.Current > 0 {
		streakLine = ui.Accent.Render(fmt.Sprintf("%s %d days", ui.IconStreak, sum.Current))
	}
	ui.Kv(ui.IconStudy+" Streak", streakLine)

	sessions, err := a.visits.SessionCount()
	if err != nil {
		return fmt.Errorf("counting sessions: %w", err)
	}
	ui.Kv("  Sessions", fmt.Sprintf("%d total", sessions))
	ui.Kv("  📅 Today", now.Format("Monday, January 2"))

	// This week at a glance.
	visits, err := a.visits.VisitSet()
	if err != nil {
		return fmt.Errorf("loading visits: %w", err)
	}
	grid := visit.Grid(visits, visit.PeriodWeek, now)
	ui.Kv("  This week", renderWeekRow(grid))

	if sum.Current == 0 && sum.Total > 0 {
		ui.Tip("`renshu drill` to restart your streak today.")
	} else if cfg.Study.TipsEnabled() {
		ui.Tip(tips.Daily(now))
	}

	fmt.Println()
	return nil
}

// renderWeekRow renders a single week column as a horizontal Mon..Sun strip.
func renderWeekRow(grid [][]visit.Cell) string {
	if len(grid) == 0 {
		return ""
	}
	out := ""
	for _, cell := range grid[len(grid)-1] {
		out += renderCell(cell) + " "
	}
	return out
}

func renderCell(cell visit.Cell) string {
	switch {
	case cell.Date == "":
		return " "
	case cell.Future:
		return ui.CellFuture.Render("·")
	case cell.Visited:
		return ui.CellVisited.Render("■")
	default:
		return ui.CellEmpty.Render("□")
	}
}
