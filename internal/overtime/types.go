package overtime

import "math"

// Roster describes the group being scheduled.
type Roster struct {
	TotalAssistants    float64 `json:"total_assistants" yaml:"total_assistants" mapstructure:"total_assistants"`
	IncludeCoordinator bool    `json:"include_coordinator" yaml:"include_coordinator" mapstructure:"include_coordinator"`
}

// NonCoordinatorCount returns the headcount available for weekday and
// weekend coverage. The coordinator, when included, is one of the
// TotalAssistants and is excluded here.
func (r Roster) NonCoordinatorCount() float64 {
	if r.IncludeCoordinator {
		return max(r.TotalAssistants-1, 0)
	}
	return r.TotalAssistants
}

// Vacation holds leave days taken during the period.
type Vacation struct {
	AssistantDays   float64 `json:"vacation_assistant_days" yaml:"vacation_assistant_days" mapstructure:"vacation_assistant_days"`
	CoordinatorDays float64 `json:"vacation_coordinator_days" yaml:"vacation_coordinator_days" mapstructure:"vacation_coordinator_days"`
}

// Coverage is the staffing pattern that must be met.
type Coverage struct {
	AssistantsPerWeekday    float64 `json:"assistants_per_weekday" yaml:"assistants_per_weekday" mapstructure:"assistants_per_weekday"`
	AssistantsPerWeekendDay float64 `json:"assistants_per_weekend_day" yaml:"assistants_per_weekend_day" mapstructure:"assistants_per_weekend_day"`
	DayShiftHours           float64 `json:"day_shift_hours" yaml:"day_shift_hours" mapstructure:"day_shift_hours"`
	OncallHours             float64 `json:"oncall_hours" yaml:"oncall_hours" mapstructure:"oncall_hours"`
	OncallCount             float64 `json:"oncall_count" yaml:"oncall_count" mapstructure:"oncall_count"`
}

// RegularParams are the inputs for a regular Gregorian month.
type RegularParams struct {
	Year  int `json:"year" yaml:"year" mapstructure:"year"`
	Month int `json:"month" yaml:"month" mapstructure:"month"` // 1-12

	// ActiveDays restricts the calculation to a shorter period; 0 means the full month.
	ActiveDays float64 `json:"active_days" yaml:"active_days" mapstructure:"active_days"`

	// WeekendDays is only read when ManualWeekend is set. Otherwise the
	// calendar count is used.
	WeekendDays   float64 `json:"weekend_days" yaml:"weekend_days" mapstructure:"weekend_days"`
	ManualWeekend bool    `json:"manual_weekend" yaml:"manual_weekend" mapstructure:"manual_weekend"`

	Roster                     `yaml:",inline" mapstructure:",squash"`
	AssistantMonthlyBaseline   float64 `json:"assistant_monthly_baseline" yaml:"assistant_monthly_baseline" mapstructure:"assistant_monthly_baseline"`
	CoordinatorMonthlyBaseline float64 `json:"coordinator_monthly_baseline" yaml:"coordinator_monthly_baseline" mapstructure:"coordinator_monthly_baseline"`
	Vacation                   `yaml:",inline" mapstructure:",squash"`
	Coverage                   `yaml:",inline" mapstructure:",squash"`
}

// RamadanParams are the inputs for a Ramadan-only period. The monthly
// baselines already cover the whole Ramadan period for one person.
type RamadanParams struct {
	TotalDays   float64 `json:"total_days" yaml:"total_days" mapstructure:"total_days"`
	WeekendDays float64 `json:"weekend_days" yaml:"weekend_days" mapstructure:"weekend_days"`

	Roster                     `yaml:",inline" mapstructure:",squash"`
	AssistantMonthlyBaseline   float64 `json:"assistant_monthly_baseline" yaml:"assistant_monthly_baseline" mapstructure:"assistant_monthly_baseline"`
	CoordinatorMonthlyBaseline float64 `json:"coordinator_monthly_baseline" yaml:"coordinator_monthly_baseline" mapstructure:"coordinator_monthly_baseline"`
	Vacation                   `yaml:",inline" mapstructure:",squash"`
	Coverage                   `yaml:",inline" mapstructure:",squash"`
}

// SegmentParams describe one side of a mixed period using per-day baselines.
type SegmentParams struct {
	Days                     float64 `json:"days" yaml:"days" mapstructure:"days"`
	WeekendDays              float64 `json:"weekend_days" yaml:"weekend_days" mapstructure:"weekend_days"`
	AssistantDailyBaseline   float64 `json:"assistant_daily_baseline" yaml:"assistant_daily_baseline" mapstructure:"assistant_daily_baseline"`
	CoordinatorDailyBaseline float64 `json:"coordinator_daily_baseline" yaml:"coordinator_daily_baseline" mapstructure:"coordinator_daily_baseline"`
	Vacation                 `yaml:",inline" mapstructure:",squash"`
	Coverage                 `yaml:",inline" mapstructure:",squash"`
}

// MixedParams split a period into a Ramadan and a non-Ramadan segment
// staffed by the same roster.
type MixedParams struct {
	Roster     `yaml:",inline" mapstructure:",squash"`
	Ramadan    SegmentParams `json:"ramadan" yaml:"ramadan" mapstructure:"ramadan"`
	NonRamadan SegmentParams `json:"non_ramadan" yaml:"non_ramadan" mapstructure:"non_ramadan"`
}

// Composition is the weekday/weekend split of a period.
type Composition struct {
	PeriodDays  float64 `json:"period_days" yaml:"period_days"`
	WeekendDays float64 `json:"weekend_days" yaml:"weekend_days"`
	Weekdays    float64 `json:"weekdays" yaml:"weekdays"`
}

// Baseline holds contracted hours before and after vacation.
// Effective may be negative under heavy leave.
type Baseline struct {
	AssistantDailyRate       float64 `json:"assistant_daily_rate" yaml:"assistant_daily_rate"`
	CoordinatorDailyRate     float64 `json:"coordinator_daily_rate" yaml:"coordinator_daily_rate"`
	Total                    float64 `json:"baseline_total" yaml:"baseline_total"`
	AssistantVacationHours   float64 `json:"vacation_assistant_hours" yaml:"vacation_assistant_hours"`
	CoordinatorVacationHours float64 `json:"vacation_coordinator_hours" yaml:"vacation_coordinator_hours"`
	Effective                float64 `json:"effective_baseline" yaml:"effective_baseline"`
}

// VacationHours returns the total deduction.
func (b Baseline) VacationHours() float64 {
	return b.AssistantVacationHours + b.CoordinatorVacationHours
}

// Required holds the hours needed to staff the period.
type Required struct {
	DayShiftHours float64 `json:"day_shift_hours" yaml:"day_shift_hours"`
	OncallHours   float64 `json:"oncall_hours" yaml:"oncall_hours"`
	Total         float64 `json:"required_total" yaml:"required_total"`
}

// Assessment compares required hours with the effective baseline.
type Assessment struct {
	Overtime   float64    `json:"overtime" yaml:"overtime"` // rounded to one decimal
	Descriptor Descriptor `json:"descriptor" yaml:"descriptor"`
	LoadRatio  float64    `json:"load_ratio" yaml:"load_ratio"`
}

// RegularResult is the output of ComputeRegular.
type RegularResult struct {
	DaysInMonth  int `json:"days_in_month" yaml:"days_in_month"`
	WeekendCount int `json:"calendar_weekend_count" yaml:"calendar_weekend_count"`

	Composition `yaml:",inline"`
	Baseline    `yaml:",inline"`
	Required    `yaml:",inline"`
	Assessment  `yaml:",inline"`
}

// RamadanResult is the output of ComputeRamadan.
type RamadanResult struct {
	Composition `yaml:",inline"`
	Baseline    `yaml:",inline"`
	Required    `yaml:",inline"`
	Assessment  `yaml:",inline"`
}

// SegmentResult is one side of a mixed period. Overtime is not rounded.
type SegmentResult struct {
	Composition `yaml:",inline"`
	Baseline    `yaml:",inline"`
	Required    `yaml:",inline"`
	Overtime    float64 `json:"overtime" yaml:"overtime"`
}

// MixedResult is the output of ComputeMixed.
type MixedResult struct {
	Ramadan          SegmentResult `json:"ramadan" yaml:"ramadan"`
	NonRamadan       SegmentResult `json:"non_ramadan" yaml:"non_ramadan"`
	CombinedBaseline float64       `json:"combined_baseline" yaml:"combined_baseline"`
	CombinedRequired float64       `json:"combined_required" yaml:"combined_required"`
	Assessment       `yaml:",inline"`
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (c Composition) finite() bool {
	return finite(c.PeriodDays, c.WeekendDays, c.Weekdays)
}

func (b Baseline) finite() bool {
	return finite(b.AssistantDailyRate, b.CoordinatorDailyRate, b.Total,
		b.AssistantVacationHours, b.CoordinatorVacationHours, b.Effective)
}

func (r Required) finite() bool {
	return finite(r.DayShiftHours, r.OncallHours, r.Total)
}

func (a Assessment) finite() bool {
	return finite(a.Overtime, a.LoadRatio)
}

// Finite reports whether every figure fits in a float64. Inputs near the
// float64 limit can overflow to ±Inf or NaN.
func (r RegularResult) Finite() bool {
	return r.Composition.finite() && r.Baseline.finite() && r.Required.finite() && r.Assessment.finite()
}

// Finite reports whether every figure fits in a float64.
func (r RamadanResult) Finite() bool {
	return r.Composition.finite() && r.Baseline.finite() && r.Required.finite() && r.Assessment.finite()
}

// Finite reports whether every figure fits in a float64.
func (r SegmentResult) Finite() bool {
	return r.Composition.finite() && r.Baseline.finite() && r.Required.finite() && finite(r.Overtime)
}

// Finite reports whether every figure fits in a float64.
func (r MixedResult) Finite() bool {
	return r.Ramadan.Finite() && r.NonRamadan.Finite() &&
		finite(r.CombinedBaseline, r.CombinedRequired) && r.Assessment.finite()
}
