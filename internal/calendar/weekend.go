package calendar

import (
	"fmt"
	"time"

	"github.com/username/overtime-suite/pkg/dateutil"
	"go.uber.org/zap"
)

// CountWeekends returns the number of days in the month and how many of
// them fall on Friday or Saturday. Month is 1-indexed; out-of-range values
// are normalized by date arithmetic rather than rejected.
func CountWeekends(year, month int) (daysInMonth, weekendCount int) {
	daysInMonth = dateutil.DaysInMonth(year, time.Month(month))
	for d := 1; d <= daysInMonth; d++ {
		if dateutil.IsWeekend(dateutil.Date(year, time.Month(month), d)) {
			weekendCount++
		}
	}
	return daysInMonth, weekendCount
}

// WeekendCalendar implements Calendar with a fixed Friday/Saturday weekend
type WeekendCalendar struct {
	logger *zap.Logger
}

// NewWeekendCalendar creates a new WeekendCalendar instance
func NewWeekendCalendar(logger *zap.Logger) *WeekendCalendar {
	return &WeekendCalendar{logger: logger}
}

// GetMonthInfo returns calendar info for the entire month
func (c *WeekendCalendar) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}

	daysInMonth, weekendCount := CountWeekends(year, int(month))

	info := &MonthInfo{
		Year:         year,
		Month:        month,
		DaysInMonth:  daysInMonth,
		WorkDays:     daysInMonth - weekendCount,
		WeekendCount: weekendCount,
		Days:         make([]DayInfo, 0, daysInMonth),
	}

	for d := 1; d <= daysInMonth; d++ {
		info.Days = append(info.Days, dayInfo(dateutil.Date(year, month, d)))
	}

	c.logger.Debug("Month composition computed",
		zap.Int("year", year),
		zap.Int("month", int(month)),
		zap.Int("days", daysInMonth),
		zap.Int("weekend_days", weekendCount))

	return info, nil
}

// GetDayInfo returns detailed info for a specific day
func (c *WeekendCalendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	monthInfo, err := c.GetMonthInfo(date.Year(), date.Month())
	if err != nil {
		return nil, err
	}

	for _, day := range monthInfo.Days {
		if dateutil.IsSameDay(day.Date, date) {
			return &day, nil
		}
	}

	return nil, fmt.Errorf("day not found in calendar: %s", date.Format("2006-01-02"))
}

func dayInfo(date time.Time) DayInfo {
	if dateutil.IsWeekday(date) {
		return DayInfo{Date: date, Type: DayTypeWorkday, IsWorkday: true}
	}
	return DayInfo{Date: date, Type: DayTypeWeekend}
}
