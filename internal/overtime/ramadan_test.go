package overtime

import "testing"

func ramadanParams() RamadanParams {
	return RamadanParams{
		TotalDays:                  30,
		WeekendDays:                8,
		Roster:                     Roster{TotalAssistants: 13, IncludeCoordinator: true},
		AssistantMonthlyBaseline:   144,
		CoordinatorMonthlyBaseline: 129,
		Coverage: Coverage{
			AssistantsPerWeekday:    6,
			AssistantsPerWeekendDay: 4,
			DayShiftHours:           6,
			OncallHours:             18,
		},
	}
}

func TestComputeRamadan_Defaults(t *testing.T) {
	res := ComputeRamadan(ramadanParams())

	if res.PeriodDays != 30 || res.WeekendDays != 8 || res.Weekdays != 22 {
		t.Errorf("Composition = %+v, want 30 days, 8 weekend, 22 weekdays", res.Composition)
	}
	if !almostEqual(res.AssistantDailyRate, 4.8) {
		t.Errorf("AssistantDailyRate = %v, want 4.8", res.AssistantDailyRate)
	}
	if !almostEqual(res.CoordinatorDailyRate, 4.3) {
		t.Errorf("CoordinatorDailyRate = %v, want 4.3", res.CoordinatorDailyRate)
	}
	if res.Baseline.Total != 12*144+129 {
		t.Errorf("Baseline.Total = %v, want %v", res.Baseline.Total, 12*144+129)
	}
	if res.Required.Total != 984 {
		t.Errorf("Required.Total = %v, want 984", res.Required.Total)
	}
	if res.Overtime != -873 {
		t.Errorf("Overtime = %v, want -873", res.Overtime)
	}
	if res.Descriptor != UnderBaseline {
		t.Errorf("Descriptor = %q, want %q", res.Descriptor, UnderBaseline)
	}
}

func TestComputeRamadan_BaselineNotProrated(t *testing.T) {
	short := ramadanParams()
	short.TotalDays = 10
	short.WeekendDays = 3

	res := ComputeRamadan(short)

	// The monthly figure is the per-person total for the whole period,
	// whatever its length.
	if res.Baseline.Total != 12*144+129 {
		t.Errorf("Baseline.Total = %v, want %v", res.Baseline.Total, 12*144+129)
	}
	// Vacation is still converted at baseline ÷ TotalDays.
	if !almostEqual(res.AssistantDailyRate, 14.4) {
		t.Errorf("AssistantDailyRate = %v, want 14.4", res.AssistantDailyRate)
	}
}

func TestComputeRamadan_Vacation(t *testing.T) {
	p := ramadanParams()
	p.Vacation = Vacation{AssistantDays: 10, CoordinatorDays: 2}

	res := ComputeRamadan(p)

	if !almostEqual(res.AssistantVacationHours, 48) {
		t.Errorf("AssistantVacationHours = %v, want 48", res.AssistantVacationHours)
	}
	if !almostEqual(res.CoordinatorVacationHours, 8.6) {
		t.Errorf("CoordinatorVacationHours = %v, want 8.6", res.CoordinatorVacationHours)
	}
	if !almostEqual(res.Effective, 1800.4) {
		t.Errorf("Effective = %v, want 1800.4", res.Effective)
	}
	if !almostEqual(res.Overtime, -816.4) {
		t.Errorf("Overtime = %v, want -816.4", res.Overtime)
	}
}

func TestComputeRamadan_WeekendClamped(t *testing.T) {
	p := ramadanParams()
	p.TotalDays = 6
	p.WeekendDays = 8

	res := ComputeRamadan(p)

	if res.WeekendDays != 6 || res.Weekdays != 0 {
		t.Errorf("Composition = %+v, want weekend 6 and weekdays 0", res.Composition)
	}
}

func TestComputeRamadan_ZeroDays(t *testing.T) {
	p := ramadanParams()
	p.TotalDays = 0
	p.Vacation = Vacation{AssistantDays: 3, CoordinatorDays: 3}

	res := ComputeRamadan(p)

	if res.AssistantDailyRate != 0 || res.CoordinatorDailyRate != 0 {
		t.Errorf("daily rates = (%v, %v), want (0, 0)", res.AssistantDailyRate, res.CoordinatorDailyRate)
	}
	if res.VacationHours() != 0 {
		t.Errorf("VacationHours() = %v, want 0", res.VacationHours())
	}
	if res.WeekendDays != 0 || res.Weekdays != 0 {
		t.Errorf("Composition = %+v, want empty", res.Composition)
	}
	if res.Required.Total != 0 {
		t.Errorf("Required.Total = %v, want 0", res.Required.Total)
	}
}

func TestComputeRamadan_NetOvertime(t *testing.T) {
	p := ramadanParams()
	p.TotalAssistants = 5
	p.OncallCount = 30

	res := ComputeRamadan(p)

	// 4*144 + 129 = 705 baseline; 984 + 540 = 1524 required
	if res.Overtime != 819 {
		t.Errorf("Overtime = %v, want 819", res.Overtime)
	}
	if res.Descriptor != NetOvertime {
		t.Errorf("Descriptor = %q, want %q", res.Descriptor, NetOvertime)
	}
	if !almostEqual(res.LoadRatio, 1524.0/705) {
		t.Errorf("LoadRatio = %v, want %v", res.LoadRatio, 1524.0/705)
	}
}
