package overtime

// ComputeRamadan calculates overtime for a Ramadan-only period.
//
// The supplied monthly baselines are taken as each person's total for the
// whole period and are not prorated. Vacation days are still converted at
// baseline ÷ TotalDays per day.
func ComputeRamadan(p RamadanParams) RamadanResult {
	comp := split(p.TotalDays, p.WeekendDays)

	b := Baseline{
		AssistantDailyRate:   perDay(p.AssistantMonthlyBaseline, p.TotalDays),
		CoordinatorDailyRate: perDay(p.CoordinatorMonthlyBaseline, p.TotalDays),
	}
	b.Total = p.NonCoordinatorCount() * p.AssistantMonthlyBaseline
	if p.IncludeCoordinator {
		b.Total += p.CoordinatorMonthlyBaseline
	}
	b = deductVacation(b, p.Roster, p.Vacation)

	req := requiredHours(p.Coverage, comp)

	return RamadanResult{
		Composition: comp,
		Baseline:    b,
		Required:    req,
		Assessment:  assess(req.Total, b.Effective, periodWording),
	}
}
