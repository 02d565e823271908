package theme

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Registry is the sqlite-backed store for user-created themes and wallpapers.
// It implements Source and notifies subscribers after every mutation so the
// service can invalidate its cache.
type Registry struct {
	db        *sql.DB
	listeners []func()
}

// NewRegistry creates a registry backed by db.
func NewRegistry(db *sql.DB) *Registry {
	return &Registry{db: db}
}

// OnChange registers a callback invoked after any mutation to the custom
// theme or wallpaper collections.
func (r *Registry) OnChange(fn func()) {
	r.listeners = append(r.listeners, fn)
}

func (r *Registry) notify() {
	for _, fn := range r.listeners {
		fn()
	}
}

// Themes returns all custom theme templates ordered by creation time.
func (r *Registry) Themes() ([]Template, error) {
	rows, err := r.db.Query(
		`SELECT id, name, background, main, secondary, light, wallpaper_id
		 FROM custom_themes ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []Template
	for rows.Next() {
		var tpl Template
		var lightInt int
		if err := rows.Scan(&tpl.ID, &tpl.Name, &tpl.Background, &tpl.Main, &tpl.Secondary, &lightInt, &tpl.WallpaperID); err != nil {
			return nil, err
		}
		tpl.Light = lightInt == 1
		templates = append(templates, tpl)
	}
	return templates, rows.Err()
}

// Wallpapers returns all custom wallpaper descriptors ordered by creation time.
func (r *Registry) Wallpapers() ([]Wallpaper, error) {
	rows, err := r.db.Query(
		`SELECT id, name, image_ref FROM custom_wallpapers ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wallpapers []Wallpaper
	for rows.Next() {
		var wp Wallpaper
		if err := rows.Scan(&wp.ID, &wp.Name, &wp.ImageRef); err != nil {
			return nil, err
		}
		wallpapers = append(wallpapers, wp)
	}
	return wallpapers, rows.Err()
}

// AddTheme stores a custom theme template and returns its generated id.
// The id carries a "custom-" prefix so it can never collide with builtins.
func (r *Registry) AddTheme(tpl Template) (string, error) {
	if err := validateTemplate(tpl); err != nil {
		return "", err
	}

	id := "custom-" + shortID()
	light := 0
	if tpl.Light {
		light = 1
	}
	_, err := r.db.Exec(
		`INSERT INTO custom_themes (id, name, background, main, secondary, light, wallpaper_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, tpl.Name, tpl.Background, tpl.Main, tpl.Secondary, light, tpl.WallpaperID,
	)
	if err != nil {
		return "", fmt.Errorf("adding custom theme: %w", err)
	}
	r.notify()
	return id, nil
}

// RemoveTheme deletes a custom theme by id.
func (r *Registry) RemoveTheme(id string) error {
	res, err := r.db.Exec(`DELETE FROM custom_themes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("removing custom theme: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("custom theme %q not found", id)
	}
	r.notify()
	return nil
}

// AddWallpaper stores a custom wallpaper and returns its generated id.
// The id carries the reserved wallpaper prefix, which also marks it premium.
func (r *Registry) AddWallpaper(name, imageRef string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("wallpaper name is required")
	}
	if strings.TrimSpace(imageRef) == "" {
		return "", fmt.Errorf("wallpaper image reference is required")
	}

	id := WallpaperPrefix + shortID()
	_, err := r.db.Exec(
		`INSERT INTO custom_wallpapers (id, name, image_ref) VALUES (?, ?, ?)`,
		id, name, imageRef,
	)
	if err != nil {
		return "", fmt.Errorf("adding custom wallpaper: %w", err)
	}
	r.notify()
	return id, nil
}

// RemoveWallpaper deletes a custom wallpaper by id.
func (r *Registry) RemoveWallpaper(id string) error {
	res, err := r.db.Exec(`DELETE FROM custom_wallpapers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("removing custom wallpaper: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("custom wallpaper %q not found", id)
	}
	r.notify()
	return nil
}

// validateTemplate checks that a template's required fields are present and
// its colors parse. Derivation tolerates bad hex, but rejecting it here gives
// the user an error at creation time instead of a silently flat theme.
func validateTemplate(tpl Template) error {
	if strings.TrimSpace(tpl.Name) == "" {
		return fmt.Errorf("theme name is required")
	}
	for _, c := range []struct{ field, hex string }{
		{"background", tpl.Background},
		{"main", tpl.Main},
		{"secondary", tpl.Secondary},
	} {
		if !validHex(c.hex) {
			return fmt.Errorf("invalid %s color %q — expected #rrggbb", c.field, c.hex)
		}
	}
	return nil
}

func validHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

func shortID() string {
	return uuid.NewString()[:8]
}
