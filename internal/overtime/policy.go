package overtime

import "math"

// Descriptor is the qualitative reading of an overtime figure.
type Descriptor string

const (
	NetOvertime     Descriptor = "Net overtime required"
	UnderBaseline   Descriptor = "Under baseline capacity"
	CloseToBaseline Descriptor = "Close to baseline load"

	MixedNetOvertime     Descriptor = "Net overtime for mixed period"
	MixedUnderBaseline   Descriptor = "Under combined baseline capacity"
	MixedCloseToBaseline Descriptor = "Close to combined baseline load"
)

// DescriptorThreshold is the overtime magnitude, in hours, beyond which a
// period is no longer considered close to baseline.
const DescriptorThreshold = 5.0

// wording selects the descriptor texts for a regime.
type wording struct {
	over, under, close Descriptor
}

var (
	periodWording = wording{NetOvertime, UnderBaseline, CloseToBaseline}
	mixedWording  = wording{MixedNetOvertime, MixedUnderBaseline, MixedCloseToBaseline}
)

func (w wording) describe(overtime float64) Descriptor {
	switch {
	case overtime > DescriptorThreshold:
		return w.over
	case overtime < -DescriptorThreshold:
		return w.under
	default:
		return w.close
	}
}

// Describe returns the single-period descriptor for a rounded overtime figure.
func Describe(overtime float64) Descriptor {
	return periodWording.describe(overtime)
}

// DescribeMixed returns the mixed-period descriptor for a rounded overtime figure.
func DescribeMixed(overtime float64) Descriptor {
	return mixedWording.describe(overtime)
}

// RoundTenths rounds to one decimal place, halves away from zero.
func RoundTenths(v float64) float64 {
	return math.Round(v*10) / 10
}

// LoadRatio is required ÷ baseline, or 0 when the baseline is zero.
func LoadRatio(required, baseline float64) float64 {
	if baseline == 0 {
		return 0
	}
	return required / baseline
}

// perDay divides a period figure by its length, or returns 0 for an empty period.
func perDay(total, days float64) float64 {
	if days == 0 {
		return 0
	}
	return total / days
}

// clampDays bounds a day count to [0, limit].
func clampDays(days, limit float64) float64 {
	return max(0, min(days, limit))
}

// split derives the weekday/weekend composition of a period whose weekend
// count may be out of range.
func split(periodDays, weekendDays float64) Composition {
	weekend := clampDays(weekendDays, periodDays)
	return Composition{
		PeriodDays:  periodDays,
		WeekendDays: weekend,
		Weekdays:    max(periodDays-weekend, 0),
	}
}

// deductVacation fills the vacation and effective figures of b.
// Coordinator leave only counts when the coordinator is on the roster.
func deductVacation(b Baseline, r Roster, v Vacation) Baseline {
	b.AssistantVacationHours = v.AssistantDays * b.AssistantDailyRate
	if r.IncludeCoordinator {
		b.CoordinatorVacationHours = v.CoordinatorDays * b.CoordinatorDailyRate
	}
	b.Effective = b.Total - (b.AssistantVacationHours + b.CoordinatorVacationHours)
	return b
}

// requiredHours computes the hours needed to meet the coverage pattern.
func requiredHours(c Coverage, comp Composition) Required {
	dayShift := comp.Weekdays*c.AssistantsPerWeekday*c.DayShiftHours +
		comp.WeekendDays*c.AssistantsPerWeekendDay*c.DayShiftHours
	oncall := c.OncallCount * c.OncallHours
	return Required{
		DayShiftHours: dayShift,
		OncallHours:   oncall,
		Total:         dayShift + oncall,
	}
}

// assess compares required hours against an effective baseline.
func assess(required, baseline float64, w wording) Assessment {
	overtime := RoundTenths(required - baseline)
	return Assessment{
		Overtime:   overtime,
		Descriptor: w.describe(overtime),
		LoadRatio:  LoadRatio(required, baseline),
	}
}
