package input

import (
	"fmt"
	"time"

	"github.com/username/overtime-suite/internal/calendar"
	"github.com/username/overtime-suite/internal/overtime"
	"go.uber.org/zap"
)

// SyncWeekendDays overwrites p.WeekendDays with the calendar weekend count
// for p's month unless the manual override is on.
func SyncWeekendDays(cal calendar.Calendar, p *overtime.RegularParams, logger *zap.Logger) error {
	if p.ManualWeekend {
		return nil
	}

	info, err := cal.GetMonthInfo(p.Year, time.Month(p.Month))
	if err != nil {
		return fmt.Errorf("failed to look up month %d-%02d: %w", p.Year, p.Month, err)
	}

	if p.WeekendDays != float64(info.WeekendCount) {
		logger.Debug("Weekend days synced from calendar",
			zap.Int("year", p.Year),
			zap.Int("month", p.Month),
			zap.Float64("previous", p.WeekendDays),
			zap.Int("weekend_days", info.WeekendCount))
	}
	p.WeekendDays = float64(info.WeekendCount)

	return nil
}
