// Package tips provides actionable tips for renshu feature discovery.
package tips

import "time"

// all is the full tip pool covering all major renshu features.
var all = []string{
	"`renshu drill` to run a quick kana drill with your default deck.",
	"`renshu drill vocab --timed 60` for a sixty-second vocabulary sprint.",
	"`renshu log` to record a study day you did away from the terminal.",
	"`renshu streak` to see your current and longest study streaks.",
	"`renshu cal --period year` for the full GitHub-style study calendar.",
	"`renshu theme list` to browse themes — previews included.",
	"`renshu theme set sakura` for a light cherry-blossom palette.",
	"`renshu theme add` to build your own theme from three colors.",
	"`renshu theme glass on` for translucent premium surfaces.",
	"`renshu config set study.drill_size 30` for longer drills.",
	"`renshu guide` for the kana charts and a streak primer.",
	"Study one minute every day — the streak counts days, not hours.",
	"Your streak survives until the end of tomorrow. Don't panic at midnight.",
	"`renshu config set user.name <name>` to get greeted properly.",
}

// All returns all tips in the pool.
func All() []string {
	return all
}

// Daily returns a deterministic tip for the given day.
// The same tip is returned all day; it changes each day.
func Daily(t time.Time) string {
	return all[t.YearDay()%len(all)]
}
