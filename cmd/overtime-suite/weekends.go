package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/overtime-suite/internal/calendar"
	"github.com/username/overtime-suite/internal/config"
	"github.com/username/overtime-suite/internal/report"
	"github.com/username/overtime-suite/pkg/dateutil"
)

func weekendsCmd() *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "weekends [YYYY-MM]",
		Short: "Show days in month and Friday/Saturday count",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			y, m, err := resolveMonth(args, year, month)
			if err != nil {
				return err
			}

			cal := calendar.NewWeekendCalendar(logger)
			info, err := cal.GetMonthInfo(y, m)
			if err != nil {
				return err
			}

			if cfg.Output.Format != config.FormatText {
				return report.Encode(out, cfg.Output.Format, map[string]int{
					"year":          info.Year,
					"month":         int(info.Month),
					"days_in_month": info.DaysInMonth,
					"weekend_count": info.WeekendCount,
					"work_days":     info.WorkDays,
				})
			}

			return report.Render(out, report.Table{
				Title: fmt.Sprintf("%s %d", info.Month, info.Year),
				Rows: []report.Row{
					{Label: "Days in month", Value: fmt.Sprint(info.DaysInMonth)},
					{Label: "Weekend days (Fri + Sat)", Value: fmt.Sprint(info.WeekendCount)},
					{Label: "Weekdays (Sun-Thu)", Value: fmt.Sprint(info.WorkDays)},
				},
			})
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year (default: current)")
	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (default: current)")

	return cmd
}

// resolveMonth prefers a positional YYYY-MM, then flags, then today.
func resolveMonth(args []string, year, month int) (int, time.Month, error) {
	if len(args) == 1 {
		y, m, err := dateutil.ParseMonth(args[0])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid month %q (expected YYYY-MM): %w", args[0], err)
		}
		return y, m, nil
	}

	current := dateutil.StartOfMonth(dateutil.Today())
	y, m := current.Year(), current.Month()
	if year != 0 {
		y = year
	}
	if month != 0 {
		m = time.Month(month)
	}
	return y, m, nil
}
