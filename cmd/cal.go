package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/renshuapp/renshu/internal/ui"
	"github.com/renshuapp/renshu/internal/visit"
)

// periodValue is a pflag.Value so --period rejects bad input at parse time.
type periodValue visit.Period

var _ pflag.Value = (*periodValue)(nil)

func (p *periodValue) String() string { return string(*p) }
func (p *periodValue) Type() string   { return "period" }

func (p *periodValue) Set(s string) error {
	switch visit.Period(s) {
	case visit.PeriodWeek, visit.PeriodMonth, visit.PeriodYear:
		*p = periodValue(s)
		return nil
	}
	return fmt.Errorf("unknown period %q, expected week, month, or year", s)
}

var calPeriod = periodValue(visit.PeriodMonth)

var calCmd = &cobra.Command{
	Use:   "cal",
	Short: "Show the study calendar (GitHub-style grid)",
	Long: `Render your study history as a contribution grid: one column per week,
Monday at the top. Filled cells are study days; dots are days still to come.`,
	RunE: runCal,
}

func init() {
	calCmd.Flags().VarP(&calPeriod, "period", "p", "Window to render: week, month, or year")
}

// dayLabels are the row labels; only alternate rows are labeled, like GitHub.
var dayLabels = [7]string{"Mon", "", "Wed", "", "Fri", "", "Sun"}

func runCal(_ *cobra.Command, _ []string) error {
	period := visit.Period(calPeriod)

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	visits, err := a.visits.VisitSet()
	if err != nil {
		return fmt.Errorf("loading visits: %w", err)
	}

	now := time.Now()
	grid := visit.Grid(visits, period, now)

	ui.Header(fmt.Sprintf("📅 Study calendar — %s", period))
	fmt.Println(renderGrid(grid))

	sum, err := a.visits.GetStreak(now)
	if err != nil {
		return err
	}
	fmt.Println(ui.Muted.Render(fmt.Sprintf("  %d study days  %s  %d-day streak",
		sum.Total, ui.IconDot, sum.Current)))
	return nil
}

// renderGrid draws week columns left to right, Monday row first.
func renderGrid(grid [][]visit.Cell) string {
	var b strings.Builder
	for row := 0; row < 7; row++ {
		b.WriteString(ui.Muted.Render(fmt.Sprintf("  %-4s", dayLabels[row])))
		for _, col := range grid {
			b.WriteString(renderCell(col[row]) + " ")
		}
		b.WriteString("\n")
	}
	return b.String()
}
