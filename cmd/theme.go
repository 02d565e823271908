package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renshuapp/renshu/internal/config"
	"github.com/renshuapp/renshu/internal/theme"
	"github.com/renshuapp/renshu/internal/ui"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "List, apply, and manage color themes",
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	RunE:  runThemeList,
}

var themeSetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Apply a theme and make it the active one",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeSet,
}

var themeShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a theme's full derived palette (defaults to the active theme)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runThemeShow,
}

var (
	themeAddBg        string
	themeAddMain      string
	themeAddSecondary string
	themeAddLight     bool
	themeAddWallpaper string
)

var themeAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a custom theme from a base palette",
	Long: `Create a custom theme. You supply only the base palette (background, main,
secondary); cards, borders, accents, and text colors are derived from it.`,
	Args: cobra.ExactArgs(1),
	RunE: runThemeAdd,
}

var themeRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a custom theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeRemove,
}

var themeWallpaperCmd = &cobra.Command{
	Use:   "wallpaper",
	Short: "Manage custom wallpapers (premium)",
}

var themeWallpaperAddCmd = &cobra.Command{
	Use:   "add <name> <image-path>",
	Short: "Register a wallpaper image; a matching glass theme appears in the list",
	Args:  cobra.ExactArgs(2),
	RunE:  runWallpaperAdd,
}

var themeWallpaperRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a custom wallpaper and its theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runWallpaperRemove,
}

var themeGlassCmd = &cobra.Command{
	Use:       "glass on|off",
	Short:     "Toggle the premium glass look",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE:      runThemeGlass,
}

func init() {
	themeAddCmd.Flags().StringVar(&themeAddBg, "bg", "", "Background color (hex, e.g. #1a1b26)")
	themeAddCmd.Flags().StringVar(&themeAddMain, "main", "", "Main accent color (hex)")
	themeAddCmd.Flags().StringVar(&themeAddSecondary, "secondary", "", "Secondary accent color (hex)")
	themeAddCmd.Flags().BoolVar(&themeAddLight, "light", false, "Mark the theme as light (derived surfaces darken instead of lighten)")
	themeAddCmd.Flags().StringVar(&themeAddWallpaper, "wallpaper", "", "Wallpaper id to pair with the theme")
	_ = themeAddCmd.MarkFlagRequired("bg")
	_ = themeAddCmd.MarkFlagRequired("main")
	_ = themeAddCmd.MarkFlagRequired("secondary")

	themeWallpaperCmd.AddCommand(themeWallpaperAddCmd)
	themeWallpaperCmd.AddCommand(themeWallpaperRemoveCmd)

	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeAddCmd)
	themeCmd.AddCommand(themeRemoveCmd)
	themeCmd.AddCommand(themeWallpaperCmd)
	themeCmd.AddCommand(themeGlassCmd)
}

func runThemeList(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	themes, err := a.themes.All()
	if err != nil {
		return err
	}
	active, _ := a.prefs.ActiveTheme("")

	ui.Header(ui.IconTheme + " Themes")
	for _, th := range themes {
		marker := "  "
		if th.ID == active {
			marker = ui.Accent.Render("● ")
		}
		line := fmt.Sprintf("%s%-14s %s %s %s  %s",
			marker, th.ID,
			ui.Swatch(th.Background), ui.Swatch(th.Main), ui.Swatch(th.Secondary),
			ui.Muted.Render(th.Name))
		if theme.IsPremium(th.ID) {
			line += " " + ui.Warning.Render(ui.IconLock)
		}
		ui.Puts(line)
	}
	fmt.Println()
	ui.Tip("`renshu theme set <id>` to switch. " + ui.IconLock + " themes need `renshu premium activate`.")
	return nil
}

func runThemeSet(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.themes.Apply(args[0]); err != nil {
		switch {
		case errors.Is(err, theme.ErrNotFound):
			ui.Warn(err.Error())
			ui.Tip("`renshu theme list` to see what's available.")
			return nil
		case errors.Is(err, theme.ErrPremiumLocked):
			ui.Warn(err.Error())
			return nil
		}
		return err
	}
	ui.Ok("theme set to " + theme.ResolveAlias(args[0]))
	return nil
}

func runThemeShow(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	var id string
	if len(args) == 1 {
		id = args[0]
	} else if id, err = a.prefs.ActiveTheme("ink"); err != nil {
		id = "ink"
	}

	th, err := a.themes.Get(id)
	if err != nil {
		if errors.Is(err, theme.ErrNotFound) {
			ui.Warn(err.Error())
			return nil
		}
		return err
	}

	ui.Header(ui.IconTheme + " " + th.Name)
	swatchKv := func(label, hex string) {
		ui.Kv("  "+label, ui.Swatch(hex)+" "+hex)
	}
	swatchKv("Background", th.Background)
	swatchKv("Main", th.Main)
	swatchKv("Secondary", th.Secondary)
	swatchKv("Card", th.Card)
	swatchKv("Border", th.Border)
	swatchKv("Main acc.", th.MainAccent)
	swatchKv("Sec. acc.", th.SecondaryAccent)
	if th.WallpaperID != "" {
		ui.Kv("  Wallpaper", th.WallpaperID)
	}
	if theme.IsPremium(th.ID) {
		ui.Kv("  Premium", "yes "+ui.IconLock)
	}
	fmt.Println()
	return nil
}

func runThemeAdd(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := a.registry.AddTheme(theme.Template{
		Name:        args[0],
		Background:  themeAddBg,
		Main:        themeAddMain,
		Secondary:   themeAddSecondary,
		Light:       themeAddLight,
		WallpaperID: themeAddWallpaper,
	})
	if err != nil {
		return err
	}
	ui.Ok("created theme " + id)
	ui.Tip("`renshu theme set " + id + "` to try it.")
	return nil
}

func runThemeRemove(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.registry.RemoveTheme(args[0]); err != nil {
		return err
	}
	ui.Ok("removed theme " + args[0])
	return nil
}

func runWallpaperAdd(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := a.registry.AddWallpaper(args[0], args[1])
	if err != nil {
		return err
	}
	ui.Ok("registered wallpaper, theme id " + id)
	ui.Tip("`renshu theme set " + id + "` — wallpaper themes are premium " + ui.IconLock)
	return nil
}

func runWallpaperRemove(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.registry.RemoveWallpaper(args[0]); err != nil {
		return err
	}
	ui.Ok("removed wallpaper " + args[0])
	return nil
}

// runThemeGlass switches between the glass overlay and the plain default.
// "on" applies the glass variant matching the active theme's brightness.
func runThemeGlass(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	switch args[0] {
	case "on":
		id := "glass-dark"
		if active, err := a.prefs.ActiveTheme(""); err == nil && active != "" {
			if th, err := a.themes.Get(active); err == nil && th.Light {
				id = "glass-light"
			}
		}
		if err := a.themes.Apply(id); err != nil {
			if errors.Is(err, theme.ErrPremiumLocked) {
				ui.Warn(err.Error())
				return nil
			}
			return err
		}
		ui.Ok("glass mode on (" + id + ")")
	case "off":
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := a.themes.Apply(cfg.Theme.Default); err != nil {
			return err
		}
		ui.Ok("glass mode off, back to " + cfg.Theme.Default)
	default:
		return fmt.Errorf("expected on or off, got %q", args[0])
	}
	return nil
}
