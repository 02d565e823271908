// Package theme derives full terminal color themes from small base palettes
// and manages the merged registry of built-in and user-created themes.
package theme

import "strings"

// BaseTheme is an author-defined minimal palette. Everything else (card,
// border, accents, text) is derived from it.
type BaseTheme struct {
	ID          string
	Name        string
	Background  string // hex, e.g. "#1a1b26"
	Main        string
	Secondary   string
	WallpaperID string // empty when the theme has no wallpaper
	Light       bool   // light themes darken derived surfaces; dark ones lighten
}

// Builtins are the themes shipped with renshu. Load-time constants; the
// service derives and caches their full color sets on first use.
var Builtins = []BaseTheme{
	{ID: "ink", Name: "Ink", Background: "#16161e", Main: "#7aa2f7", Secondary: "#bb9af7"},
	{ID: "sakura", Name: "Sakura", Background: "#fdf3f5", Main: "#d5577f", Secondary: "#8a63a8", Light: true},
	{ID: "matcha", Name: "Matcha", Background: "#1c2420", Main: "#8bc34a", Secondary: "#4db6ac"},
	{ID: "yuki", Name: "Yuki", Background: "#f4f7fa", Main: "#3a6ea5", Secondary: "#5e8d87", Light: true},
	{ID: "tsuki", Name: "Tsuki", Background: "#0f1021", Main: "#c6a664", Secondary: "#7f8fa6"},
	{ID: "glass-dark", Name: "Glass (Dark)", Background: "#10121a", Main: "#9fb8e8", Secondary: "#c9a7e0", WallpaperID: "night-sky"},
	{ID: "glass-light", Name: "Glass (Light)", Background: "#eef1f6", Main: "#5b77aa", Secondary: "#9a7bb8", WallpaperID: "paper", Light: true},
}

// BuiltinWallpapers maps built-in wallpaper ids to their image references.
var BuiltinWallpapers = map[string]string{
	"night-sky": "wallpapers/night-sky.png",
	"paper":     "wallpapers/paper.png",
}

// aliases maps deprecated or renamed theme ids to their current id.
// Resolved before any lookup so old saved preferences keep working.
var aliases = map[string]string{
	"dark":      "ink",
	"light":     "yuki",
	"cherry":    "sakura",
	"glass":     "glass-dark",
	"midnight":  "tsuki",
	"green-tea": "matcha",
}

// premiumIDs is the static set of premium (glass) theme ids.
var premiumIDs = map[string]bool{
	"glass-dark":  true,
	"glass-light": true,
}

// WallpaperPrefix is the reserved id prefix for custom-wallpaper themes.
// Any id carrying it is treated as premium.
const WallpaperPrefix = "wp-"

// ResolveAlias maps deprecated theme identifiers to their current identifier.
// Unknown ids pass through unchanged.
func ResolveAlias(id string) string {
	if current, ok := aliases[id]; ok {
		return current
	}
	return id
}

// IsPremium reports whether id belongs to the static premium set or carries
// the reserved custom-wallpaper prefix.
func IsPremium(id string) bool {
	return premiumIDs[id] || strings.HasPrefix(id, WallpaperPrefix)
}
