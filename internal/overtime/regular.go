package overtime

import "github.com/username/overtime-suite/internal/calendar"

// ComputeRegular calculates overtime for a regular calendar month.
//
// Monthly baselines are converted to per-day rates over the full calendar
// month and prorated over the active period, so a shorter period carries a
// proportionally smaller baseline.
func ComputeRegular(p RegularParams) RegularResult {
	daysInMonth, weekendCount := calendar.CountWeekends(p.Year, p.Month)
	monthDays := float64(daysInMonth)

	periodDays := monthDays
	if p.ActiveDays > 0 {
		periodDays = p.ActiveDays
	}
	periodDays = clampDays(periodDays, monthDays)

	weekendDays := float64(weekendCount)
	if p.ManualWeekend {
		weekendDays = p.WeekendDays
	}
	comp := split(periodDays, weekendDays)

	b := Baseline{
		AssistantDailyRate:   perDay(p.AssistantMonthlyBaseline, monthDays),
		CoordinatorDailyRate: perDay(p.CoordinatorMonthlyBaseline, monthDays),
	}
	b.Total = p.NonCoordinatorCount() * b.AssistantDailyRate * periodDays
	if p.IncludeCoordinator {
		b.Total += b.CoordinatorDailyRate * periodDays
	}
	b = deductVacation(b, p.Roster, p.Vacation)

	req := requiredHours(p.Coverage, comp)

	return RegularResult{
		DaysInMonth:  daysInMonth,
		WeekendCount: weekendCount,
		Composition:  comp,
		Baseline:     b,
		Required:     req,
		Assessment:   assess(req.Total, b.Effective, periodWording),
	}
}
