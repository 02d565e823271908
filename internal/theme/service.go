package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when a theme id is absent from the resolved map
// after alias resolution.
var ErrNotFound = errors.New("theme not found")

// ErrPremiumLocked is returned when a premium theme is applied without an
// activated premium key.
var ErrPremiumLocked = errors.New("premium theme locked")

// Vars is the full set of presentation variables a theme resolves to.
// The applier writes these to the terminal the way a web renderer would
// write CSS custom properties to the document root.
type Vars struct {
	Background      string
	Main            string
	Secondary       string
	MainAccent      string
	SecondaryAccent string
	Card            string
	Border          string
	Text            string
	TextMuted       string
}

// Applier receives resolved presentation state. The terminal implementation
// lives in internal/ui; tests inject a recording fake.
type Applier interface {
	SetVars(v Vars)
	SetWallpaper(imageRef string)
	ClearWallpaper()
}

// Template is a user-created theme template as stored in the registry.
type Template struct {
	ID          string
	Name        string
	Background  string
	Main        string
	Secondary   string
	WallpaperID string
	Light       bool
}

// Wallpaper is a user-created wallpaper descriptor.
type Wallpaper struct {
	ID       string
	Name     string
	ImageRef string
}

// Source provides the user-created theme and wallpaper collections.
type Source interface {
	Themes() ([]Template, error)
	Wallpapers() ([]Wallpaper, error)
}

// Prefs persists presentation preferences.
type Prefs interface {
	SetGlassMode(on bool) error
	SetActiveTheme(id string) error
}

// Service owns the theme lookup cache. It merges built-in themes with custom
// themes and wallpapers from the source, rebuilding lazily after Invalidate.
//
// Single-writer discipline: the service is driven from one goroutine (command
// handlers and the source's change callback), so no locking is needed.
type Service struct {
	source  Source
	prefs   Prefs
	applier Applier

	themes    map[string]Theme
	customIDs map[string]bool // custom entries currently in the map
	dirty     bool
	unlocked  bool // premium key activated
}

// NewService creates a theme service. The cache is built on first use.
func NewService(source Source, prefs Prefs, applier Applier) *Service {
	return &Service{
		source:  source,
		prefs:   prefs,
		applier: applier,
		dirty:   true,
	}
}

// SetPremiumUnlocked marks premium themes as available for Apply.
func (s *Service) SetPremiumUnlocked(unlocked bool) {
	s.unlocked = unlocked
}

// Invalidate marks the cache stale. Wire this to the registry's change
// notification so mutations to custom collections are picked up before the
// next lookup.
func (s *Service) Invalidate() {
	s.dirty = true
}

// Get returns the theme for id after alias resolution.
func (s *Service) Get(id string) (Theme, error) {
	if err := s.rebuild(); err != nil {
		return Theme{}, err
	}
	th, ok := s.themes[ResolveAlias(id)]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return th, nil
}

// All returns every known theme sorted by id, builtins and customs merged.
func (s *Service) All() ([]Theme, error) {
	if err := s.rebuild(); err != nil {
		return nil, err
	}
	out := make([]Theme, 0, len(s.themes))
	for _, th := range s.themes {
		out = append(out, th)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Apply resolves id and writes the theme's presentation variables through the
// applier. Premium themes use the fixed glass overlay variables instead of
// their derived colors and require an activated premium key.
//
// On ErrNotFound the applier is never touched, so the previous visual state
// persists. Callers log and continue.
func (s *Service) Apply(id string) error {
	th, err := s.Get(id)
	if err != nil {
		return err
	}

	glass := IsPremium(th.ID)
	if glass && !s.unlocked {
		return fmt.Errorf("%w: %q — run `renshu premium activate` first", ErrPremiumLocked, th.ID)
	}

	var vars Vars
	if glass {
		vars = glassVars(th)
	} else {
		vars = varsFor(th)
	}
	s.applier.SetVars(vars)

	if ref := s.wallpaperRef(th.WallpaperID); ref != "" {
		s.applier.SetWallpaper(ref)
	} else {
		s.applier.ClearWallpaper()
	}

	if err := s.prefs.SetGlassMode(glass); err != nil {
		return fmt.Errorf("saving glass mode: %w", err)
	}
	if err := s.prefs.SetActiveTheme(th.ID); err != nil {
		return fmt.Errorf("saving active theme: %w", err)
	}
	return nil
}

// rebuild repopulates the cache when dirty. Built-in themes are derived once
// and reused; custom entries are re-fetched, and entries whose id is no longer
// present in the source are removed rather than left dangling.
func (s *Service) rebuild() error {
	if s.themes == nil {
		s.themes = make(map[string]Theme, len(Builtins))
		for _, base := range Builtins {
			s.themes[base.ID] = New(base)
		}
		s.customIDs = make(map[string]bool)
	}
	if !s.dirty {
		return nil
	}

	customs, err := s.source.Themes()
	if err != nil {
		return fmt.Errorf("loading custom themes: %w", err)
	}
	wallpapers, err := s.source.Wallpapers()
	if err != nil {
		return fmt.Errorf("loading custom wallpapers: %w", err)
	}

	seen := make(map[string]bool, len(customs)+len(wallpapers))
	for _, tpl := range customs {
		th := FromTemplate(tpl)
		s.themes[th.ID] = th
		seen[th.ID] = true
	}
	for _, wp := range wallpapers {
		th := fromWallpaper(wp)
		s.themes[th.ID] = th
		seen[th.ID] = true
	}

	// Actively drop custom entries that vanished from the source store.
	for id := range s.customIDs {
		if !seen[id] {
			delete(s.themes, id)
		}
	}
	s.customIDs = seen
	s.dirty = false
	return nil
}

// FromTemplate converts a stored custom template into a full Theme.
// The mapping is explicit and total: every Template field lands in the Theme,
// and the derived colors come from the same transform builtins use.
func FromTemplate(tpl Template) Theme {
	base := BaseTheme{
		ID:          tpl.ID,
		Name:        tpl.Name,
		Background:  tpl.Background,
		Main:        tpl.Main,
		Secondary:   tpl.Secondary,
		WallpaperID: tpl.WallpaperID,
		Light:       tpl.Light,
	}
	return New(base)
}

// fromWallpaper wraps a custom wallpaper in a theme entry. Wallpaper themes
// ride on the glass overlay palette, so the base here only seeds text colors.
func fromWallpaper(wp Wallpaper) Theme {
	base := BaseTheme{
		ID:          wp.ID,
		Name:        wp.Name,
		Background:  "#10121a",
		Main:        "#9fb8e8",
		Secondary:   "#c9a7e0",
		WallpaperID: wp.ID,
	}
	return New(base)
}

// wallpaperRef resolves a wallpaper id to its image reference, checking
// builtins first, then the custom collection. Empty when id is empty or
// unknown.
func (s *Service) wallpaperRef(id string) string {
	if id == "" {
		return ""
	}
	if ref, ok := BuiltinWallpapers[id]; ok {
		return ref
	}
	if strings.HasPrefix(id, WallpaperPrefix) {
		wallpapers, err := s.source.Wallpapers()
		if err != nil {
			return ""
		}
		for _, wp := range wallpapers {
			if wp.ID == id {
				return wp.ImageRef
			}
		}
	}
	return ""
}

// varsFor assembles the nine presentation variables from a derived theme.
func varsFor(th Theme) Vars {
	text, muted := textColors(th.Background, th.Light)
	return Vars{
		Background:      th.Background,
		Main:            th.Main,
		Secondary:       th.Secondary,
		MainAccent:      th.MainAccent,
		SecondaryAccent: th.SecondaryAccent,
		Card:            th.Card,
		Border:          th.Border,
		Text:            text,
		TextMuted:       muted,
	}
}

// glassVars returns the fixed translucent-overlay variables used by premium
// themes. The overlay colors are constant regardless of the base palette;
// only background, main, and secondary shine through.
func glassVars(th Theme) Vars {
	text, muted := textColors(th.Background, th.Light)
	return Vars{
		Background:      th.Background,
		Main:            th.Main,
		Secondary:       th.Secondary,
		MainAccent:      th.Main,
		SecondaryAccent: th.Secondary,
		Card:            glassCard,
		Border:          glassBorder,
		Text:            text,
		TextMuted:       muted,
	}
}

// Fixed glass overlay colors. Terminals have no alpha channel, so these are
// the pre-composited equivalents of the translucent overlays.
const (
	glassCard   = "#2a2d3a"
	glassBorder = "#3d4254"
)
