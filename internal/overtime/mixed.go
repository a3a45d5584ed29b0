package overtime

// ComputeMixed calculates overtime for a period split into a Ramadan and a
// non-Ramadan segment. Each segment is evaluated on its own per-day
// baselines; the combined figures are plain sums of the segment figures.
func ComputeMixed(p MixedParams) MixedResult {
	ram := computeSegment(p.Roster, p.Ramadan)
	non := computeSegment(p.Roster, p.NonRamadan)

	res := MixedResult{
		Ramadan:          ram,
		NonRamadan:       non,
		CombinedBaseline: ram.Effective + non.Effective,
		CombinedRequired: ram.Required.Total + non.Required.Total,
	}
	res.Assessment = assess(res.CombinedRequired, res.CombinedBaseline, mixedWording)
	return res
}

func computeSegment(r Roster, s SegmentParams) SegmentResult {
	comp := split(s.Days, s.WeekendDays)

	b := Baseline{
		AssistantDailyRate:   s.AssistantDailyBaseline,
		CoordinatorDailyRate: s.CoordinatorDailyBaseline,
	}
	b.Total = r.NonCoordinatorCount() * s.AssistantDailyBaseline * s.Days
	if r.IncludeCoordinator {
		b.Total += s.CoordinatorDailyBaseline * s.Days
	}
	b = deductVacation(b, r, s.Vacation)

	req := requiredHours(s.Coverage, comp)

	return SegmentResult{
		Composition: comp,
		Baseline:    b,
		Required:    req,
		Overtime:    req.Total - b.Effective,
	}
}
