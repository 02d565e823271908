package visit

import "time"

// Period selects the calendar window for the contribution grid.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Cell is one day in a rendered calendar grid.
type Cell struct {
	Date    string
	Visited bool
	Future  bool
}

// DaysInPeriod returns the calendar days of the window containing now,
// in ascending order. Weeks start on Monday.
//
//   - week:  Monday through Sunday of the current week
//   - month: first through last day of the current month
//   - year:  Jan 1 through Dec 31 of the current year
func DaysInPeriod(period Period, now time.Time) []time.Time {
	day := midnight(now)

	var start, end time.Time
	switch period {
	case PeriodWeek:
		start = startOfWeek(day)
		end = start.AddDate(0, 0, 6)
	case PeriodMonth:
		start = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		end = start.AddDate(0, 1, -1)
	case PeriodYear:
		start = time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, day.Location())
		end = time.Date(day.Year(), time.December, 31, 0, 0, 0, 0, day.Location())
	default:
		return nil
	}

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Grid buckets the period's days into week columns: column per ISO week,
// Monday = row 0 through Sunday = row 6. Rows with no day in the window
// (a month starting mid-week) hold zero-value cells with empty dates.
//
// Cells dated strictly after now are marked Future and are never marked
// Visited, regardless of the input set.
func Grid(visits map[string]bool, period Period, now time.Time) [][]Cell {
	days := DaysInPeriod(period, now)
	if len(days) == 0 {
		return nil
	}

	today := midnight(now)

	var grid [][]Cell
	var col []Cell
	for _, d := range days {
		row := weekdayRow(d)
		if row == 0 || col == nil {
			if col != nil {
				grid = append(grid, col)
			}
			col = make([]Cell, 7)
		}
		future := d.After(today)
		col[row] = Cell{
			Date:    d.Format(DateFormat),
			Visited: !future && visits[d.Format(DateFormat)],
			Future:  future,
		}
	}
	if col != nil {
		grid = append(grid, col)
	}
	return grid
}

// startOfWeek returns the Monday at 00:00:00 of the week containing t.
func startOfWeek(t time.Time) time.Time {
	monday := t.AddDate(0, 0, -weekdayRow(t))
	return midnight(monday)
}

// weekdayRow maps a date to its grid row: Monday 0 ... Sunday 6.
func weekdayRow(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 6 // Sunday
	}
	return wd - 1
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
