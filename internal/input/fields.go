package input

import (
	"fmt"

	"github.com/username/overtime-suite/internal/overtime"
)

// Field is one editable numeric form field. Fallback is substituted when
// the text does not parse. Integer fields are truncated.
type Field[T any] struct {
	Key      string
	Usage    string
	Fallback float64
	Integer  bool
	Get      func(p *T) float64
	Set      func(p *T, v float64)
}

// Parse converts text with the field's fallback.
func (f Field[T]) Parse(text string) float64 {
	if f.Integer {
		return float64(ParseInt(text, int(f.Fallback)))
	}
	return ParseNumber(text, f.Fallback)
}

// Apply parses text into the field named key.
func Apply[T any](fields []Field[T], p *T, key, text string) error {
	for _, f := range fields {
		if f.Key == key {
			f.Set(p, f.Parse(text))
			return nil
		}
	}
	return fmt.Errorf("unknown field: %s", key)
}

func numberField[T any](key, usage string, ref func(p *T) *float64) Field[T] {
	return Field[T]{
		Key:   key,
		Usage: usage,
		Get:   func(p *T) float64 { return *ref(p) },
		Set:   func(p *T, v float64) { *ref(p) = v },
	}
}

func rosterFields[T any](roster func(p *T) *overtime.Roster) []Field[T] {
	return []Field[T]{
		numberField("assistants", "# assistant consultants (incl. coordinator)", func(p *T) *float64 { return &roster(p).TotalAssistants }),
	}
}

func vacationFields[T any](prefix, scope string, vac func(p *T) *overtime.Vacation) []Field[T] {
	return []Field[T]{
		numberField(prefix+"vacation-assistant-days", "Total vacation days - assistants"+scope, func(p *T) *float64 { return &vac(p).AssistantDays }),
		numberField(prefix+"vacation-coordinator-days", "Vacation days - coordinator"+scope, func(p *T) *float64 { return &vac(p).CoordinatorDays }),
	}
}

func coverageFields[T any](prefix, scope string, cov func(p *T) *overtime.Coverage) []Field[T] {
	return []Field[T]{
		numberField(prefix+"assist-weekday", "Assistants per weekday (Sun-Thu)"+scope, func(p *T) *float64 { return &cov(p).AssistantsPerWeekday }),
		numberField(prefix+"assist-weekend", "Assistants per weekend day (Fri/Sat)"+scope, func(p *T) *float64 { return &cov(p).AssistantsPerWeekendDay }),
		numberField(prefix+"day-hours", "Hours per day shift"+scope, func(p *T) *float64 { return &cov(p).DayShiftHours }),
		numberField(prefix+"oncall-hours", "Hours per on-call"+scope, func(p *T) *float64 { return &cov(p).OncallHours }),
		numberField(prefix+"oncall-count", "Number of on-calls in this period"+scope, func(p *T) *float64 { return &cov(p).OncallCount }),
	}
}

// RegularFields are the numeric fields of the regular-month form.
var RegularFields = concat(
	[]Field[overtime.RegularParams]{
		{
			Key:      "month",
			Usage:    "Month (1-12)",
			Fallback: 1,
			Integer:  true,
			Get:      func(p *overtime.RegularParams) float64 { return float64(p.Month) },
			Set:      func(p *overtime.RegularParams, v float64) { p.Month = int(v) },
		},
		{
			Key:      "year",
			Usage:    "Year",
			Fallback: 2025,
			Integer:  true,
			Get:      func(p *overtime.RegularParams) float64 { return float64(p.Year) },
			Set:      func(p *overtime.RegularParams, v float64) { p.Year = int(v) },
		},
		numberField("active-days", "Active days in this period (blank or 0 for the full month)", func(p *overtime.RegularParams) *float64 { return &p.ActiveDays }),
		numberField("weekend-days", "Weekend days (Fri + Sat) in this period, used with --manual-weekend", func(p *overtime.RegularParams) *float64 { return &p.WeekendDays }),
		numberField("base-assist-month", "Assistant baseline hours / month", func(p *overtime.RegularParams) *float64 { return &p.AssistantMonthlyBaseline }),
		numberField("base-coord-month", "Coordinator baseline hours / month", func(p *overtime.RegularParams) *float64 { return &p.CoordinatorMonthlyBaseline }),
	},
	rosterFields(func(p *overtime.RegularParams) *overtime.Roster { return &p.Roster }),
	vacationFields("", "", func(p *overtime.RegularParams) *overtime.Vacation { return &p.Vacation }),
	coverageFields("", "", func(p *overtime.RegularParams) *overtime.Coverage { return &p.Coverage }),
)

// RamadanFields are the numeric fields of the Ramadan form.
var RamadanFields = concat(
	[]Field[overtime.RamadanParams]{
		numberField("total-days", "Total Ramadan days in this month", func(p *overtime.RamadanParams) *float64 { return &p.TotalDays }),
		numberField("weekend-days", "Ramadan weekend days (Fri + Sat)", func(p *overtime.RamadanParams) *float64 { return &p.WeekendDays }),
		numberField("base-assist-month", "Ramadan baseline hours / assistant (month)", func(p *overtime.RamadanParams) *float64 { return &p.AssistantMonthlyBaseline }),
		numberField("base-coord-month", "Ramadan baseline hours / coordinator (month)", func(p *overtime.RamadanParams) *float64 { return &p.CoordinatorMonthlyBaseline }),
	},
	rosterFields(func(p *overtime.RamadanParams) *overtime.Roster { return &p.Roster }),
	vacationFields("", "", func(p *overtime.RamadanParams) *overtime.Vacation { return &p.Vacation }),
	coverageFields("", "", func(p *overtime.RamadanParams) *overtime.Coverage { return &p.Coverage }),
)

// MixedFields are the numeric fields of the mixed-period form. Segment
// fields carry a "ram-" or "non-" prefix.
var MixedFields = concat(
	rosterFields(func(p *overtime.MixedParams) *overtime.Roster { return &p.Roster }),
	segmentFields("ram-", " (Ramadan)", func(p *overtime.MixedParams) *overtime.SegmentParams { return &p.Ramadan }),
	segmentFields("non-", " (non-Ramadan)", func(p *overtime.MixedParams) *overtime.SegmentParams { return &p.NonRamadan }),
)

func segmentFields(prefix, scope string, seg func(p *overtime.MixedParams) *overtime.SegmentParams) []Field[overtime.MixedParams] {
	fields := []Field[overtime.MixedParams]{
		numberField(prefix+"days", "Days in segment"+scope, func(p *overtime.MixedParams) *float64 { return &seg(p).Days }),
		numberField(prefix+"weekend-days", "Weekend days (Fri + Sat)"+scope, func(p *overtime.MixedParams) *float64 { return &seg(p).WeekendDays }),
		numberField(prefix+"base-assist-day", "Assistant baseline hours / day"+scope, func(p *overtime.MixedParams) *float64 { return &seg(p).AssistantDailyBaseline }),
		numberField(prefix+"base-coord-day", "Coordinator baseline hours / day"+scope, func(p *overtime.MixedParams) *float64 { return &seg(p).CoordinatorDailyBaseline }),
	}
	fields = append(fields, vacationFields(prefix, scope, func(p *overtime.MixedParams) *overtime.Vacation { return &seg(p).Vacation })...)
	return append(fields, coverageFields(prefix, scope, func(p *overtime.MixedParams) *overtime.Coverage { return &seg(p).Coverage })...)
}

func concat[T any](groups ...[]Field[T]) []Field[T] {
	var out []Field[T]
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
