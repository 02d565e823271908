// Package visit tracks daily study visits: one record per calendar day,
// streak computation, and calendar-grid layout for the contribution view.
//
// Dates are canonical ISO "YYYY-MM-DD" strings throughout, which makes
// lexicographic order equal calendar order.
package visit

import (
	"time"
)

// DateFormat is the canonical visit date layout.
const DateFormat = "2006-01-02"

// Summary holds derived streak values. It is recomputed on every query and
// never persisted.
type Summary struct {
	Current int
	Longest int
	Total   int
}

// ComputeStreak calculates current streak, longest streak, and total unique
// visit days from a list of visit dates (in "YYYY-MM-DD" format, sorted
// descending, deduplicated).
//
// A streak is consecutive calendar days with >= 1 visit. The current streak
// is not broken if the user visited yesterday but not yet today (grace period).
// Dates after now never count toward either streak.
//
// now is used as the reference for "today" / "yesterday".
func ComputeStreak(dates []string, now time.Time) Summary {
	if len(dates) == 0 {
		return Summary{}
	}

	utcNow := now.UTC()
	today := utcNow.Format(DateFormat)
	yesterday := utcNow.AddDate(0, 0, -1).Format(DateFormat)

	// Future dates can appear in imported histories; drop them up front so
	// they count toward nothing.
	past := make([]string, 0, len(dates))
	for _, d := range dates {
		if d <= today {
			past = append(past, d)
		}
	}
	total := len(past)
	if total == 0 {
		return Summary{}
	}

	// Current streak: starting from the most recent date, which must be today
	// or yesterday for the streak to be active.
	var current int
	if past[0] == today || past[0] == yesterday {
		current = 1
		for i := 1; i < len(past); i++ {
			prev, _ := time.Parse(DateFormat, past[i-1])
			curr, _ := time.Parse(DateFormat, past[i])
			if prev.AddDate(0, 0, -1).Format(DateFormat) == curr.Format(DateFormat) {
				current++
			} else {
				break
			}
		}
	}

	// Longest streak: scan all dates in ascending order.
	asc := make([]string, len(past))
	for i, d := range past {
		asc[len(past)-1-i] = d
	}

	longest := 1
	run := 1
	for i := 1; i < len(asc); i++ {
		prev, _ := time.Parse(DateFormat, asc[i-1])
		curr, _ := time.Parse(DateFormat, asc[i])
		if curr.AddDate(0, 0, -1).Format(DateFormat) == prev.Format(DateFormat) {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}

	if current > longest {
		longest = current
	}

	return Summary{Current: current, Longest: longest, Total: total}
}

// GetStreak retrieves visit dates from the store and computes the summary.
func (s *Store) GetStreak(now time.Time) (Summary, error) {
	dates, err := s.VisitDatesDesc()
	if err != nil {
		return Summary{}, err
	}
	return ComputeStreak(dates, now), nil
}
