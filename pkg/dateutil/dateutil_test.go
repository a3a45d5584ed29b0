package dateutil

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.UTC)
	expected := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	result := StartOfDay(input)

	if !result.Equal(expected) {
		t.Errorf("StartOfDay(%v) = %v, want %v", input, result, expected)
	}
}

func TestStartOfMonth(t *testing.T) {
	input := time.Date(2025, 11, 19, 8, 0, 0, 0, time.UTC)
	expected := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)

	if result := StartOfMonth(input); !result.Equal(expected) {
		t.Errorf("StartOfMonth(%v) = %v, want %v", input, result, expected)
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  int
	}{
		{"February leap year", 2024, time.February, 29},
		{"February non-leap year", 2025, time.February, 28},
		{"February century non-leap", 1900, time.February, 28},
		{"February 400-year leap", 2000, time.February, 29},
		{"November", 2025, time.November, 30},
		{"December", 2025, time.December, 31},
		{"Month 13 normalizes to January", 2025, 13, 31},
		{"Month 0 normalizes to previous December", 2025, 0, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysInMonth(tt.year, tt.month); got != tt.want {
				t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  bool
	}{
		{"Friday is weekend", time.Date(2025, 11, 7, 0, 0, 0, 0, time.UTC), true},
		{"Saturday is weekend", time.Date(2025, 11, 8, 0, 0, 0, 0, time.UTC), true},
		{"Sunday is not weekend", time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC), false},
		{"Thursday is not weekend", time.Date(2025, 11, 6, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsWeekend(tt.input)

			if result != tt.want {
				t.Errorf("IsWeekend(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), result, tt.want)
			}
			if IsWeekday(tt.input) == tt.want {
				t.Errorf("IsWeekday(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), !tt.want, !tt.want)
			}
		})
	}
}

func TestIsSameDay(t *testing.T) {
	tests := []struct {
		name  string
		date1 time.Time
		date2 time.Time
		want  bool
	}{
		{
			"Same date different time",
			time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 15, 20, 0, 0, 0, time.UTC),
			true,
		},
		{
			"Different date",
			time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsSameDay(tt.date1, tt.date2)

			if result != tt.want {
				t.Errorf("IsSameDay(%v, %v) = %v, want %v",
					tt.date1, tt.date2, result, tt.want)
			}
		})
	}
}

func TestParseMonth(t *testing.T) {
	year, month, err := ParseMonth("2025-11")
	if err != nil {
		t.Fatalf("ParseMonth() error = %v", err)
	}
	if year != 2025 || month != time.November {
		t.Errorf("ParseMonth(2025-11) = (%d, %d), want (2025, 11)", year, month)
	}

	if _, _, err := ParseMonth("11/2025"); err == nil {
		t.Error("ParseMonth(11/2025) expected error, got nil")
	}
}
