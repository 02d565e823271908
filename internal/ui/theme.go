package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/renshuapp/renshu/internal/theme"
)

// Semantic styles. Defaults match the "ink" palette; Applier.SetVars rebuilds
// them when a theme is applied, so every command renders through whatever the
// user picked.
var (
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Success    lipgloss.Style
	Error      lipgloss.Style
	Warning    lipgloss.Style
	Info       lipgloss.Style
	Muted      lipgloss.Style
	Accent     lipgloss.Style
	Card       lipgloss.Style
	KeyStyle   lipgloss.Style
	ValueStyle lipgloss.Style

	// Grid cell styles for the contribution calendar.
	CellVisited lipgloss.Style
	CellEmpty   lipgloss.Style
	CellFuture  lipgloss.Style
)

func init() {
	rebuildStyles(theme.Vars{
		Background:      "#16161e",
		Main:            "#7aa2f7",
		Secondary:       "#bb9af7",
		MainAccent:      "#9ebcf9",
		SecondaryAccent: "#d0b8f9",
		Card:            "#1f1f2b",
		Border:          "#2c2c3d",
		Text:            "#f2f2f2",
		TextMuted:       "#8a8a99",
	})
}

// rebuildStyles maps the nine presentation variables onto the lipgloss
// palette. This is the terminal's version of writing CSS custom properties
// to the document root.
func rebuildStyles(v theme.Vars) {
	Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(v.Main))
	Subtitle = lipgloss.NewStyle().Foreground(lipgloss.Color(v.Secondary))
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color(v.MainAccent))
	Error = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0115f"))
	Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffbf00"))
	Info = lipgloss.NewStyle().Foreground(lipgloss.Color(v.SecondaryAccent))
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color(v.TextMuted))
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(v.MainAccent)).Bold(true)
	Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(v.Border)).
		Background(lipgloss.Color(v.Card)).
		Padding(0, 1)
	KeyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(v.Secondary)).Bold(true)
	ValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(v.Text))

	CellVisited = lipgloss.NewStyle().Foreground(lipgloss.Color(v.MainAccent))
	CellEmpty = lipgloss.NewStyle().Foreground(lipgloss.Color(v.Border))
	CellFuture = lipgloss.NewStyle().Foreground(lipgloss.Color(v.TextMuted))
}

// Applier writes resolved theme state to the terminal. It satisfies
// theme.Applier: variables become the lipgloss palette, and the wallpaper
// becomes the terminal background via termenv (the closest a terminal gets
// to a body background image — the image ref itself is kept for display).
type Applier struct {
	out       *termenv.Output
	vars      theme.Vars
	wallpaper string
}

// NewApplier creates an applier targeting stdout.
func NewApplier() *Applier {
	return &Applier{out: termenv.NewOutput(os.Stdout)}
}

// SetVars rebuilds the style palette and tints the terminal background.
func (a *Applier) SetVars(v theme.Vars) {
	a.vars = v
	rebuildStyles(v)
	if IsStdoutTTY() {
		a.out.SetBackgroundColor(termenv.RGBColor(v.Background))
	}
}

// SetWallpaper records the active wallpaper image reference.
func (a *Applier) SetWallpaper(imageRef string) {
	a.wallpaper = imageRef
}

// ClearWallpaper removes the active wallpaper.
func (a *Applier) ClearWallpaper() {
	a.wallpaper = ""
}

// Wallpaper returns the active wallpaper image reference, empty when none.
func (a *Applier) Wallpaper() string {
	return a.wallpaper
}

// Vars returns the last applied variable set.
func (a *Applier) Vars() theme.Vars {
	return a.vars
}

// Swatch renders a small colored block for a hex color, for theme previews.
func Swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
}

// Icon constants — consistent emoji language.
const (
	IconTorii  = "⛩ "
	IconStreak = "🔥"
	IconStudy  = "📖"
	IconTheme  = "🎨"
	IconStar   = "⭐"
	IconLock   = "🔒"
	IconWarn   = "⚠️ "
	IconError  = "✗ "
	IconOk     = "✓ "
	IconDot    = "·"
)
