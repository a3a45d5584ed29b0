package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/username/overtime-suite/internal/overtime"
	"gopkg.in/yaml.v3"
)

// Row is one labelled result line.
type Row struct {
	Label string
	Value string
	Unit  string
}

// Table is a titled list of rows.
type Table struct {
	Title string
	Rows  []Row
}

func hours(label string, v float64) Row {
	return Row{Label: label, Value: Fixed(v, 1), Unit: "h"}
}

func composition(c overtime.Composition) string {
	return fmt.Sprintf("%s wk · %s we", Fixed(c.Weekdays, 1), Fixed(c.WeekendDays, 1))
}

func load(a overtime.Assessment) Row {
	return Row{Label: "Load vs effective baseline", Value: Ratio(a.LoadRatio) + " · " + string(a.Descriptor)}
}

// RegularTable renders a regular-month result.
func RegularTable(r overtime.RegularResult) Table {
	return Table{
		Title: "Regular Month Overtime",
		Rows: []Row{
			{Label: "Calendar days", Value: fmt.Sprintf("%d", r.DaysInMonth), Unit: "days"},
			{Label: "Fridays/Saturdays in month", Value: fmt.Sprintf("%d", r.WeekendCount), Unit: "days"},
			{Label: "Days used in calculation", Value: Fixed(r.PeriodDays, 1), Unit: "days"},
			{Label: "Weekdays vs weekends", Value: composition(r.Composition)},
			hours("Baseline hours (before vacation)", r.Baseline.Total),
			hours("Vacation hours - assistants", r.AssistantVacationHours),
			hours("Vacation hours - coordinator", r.CoordinatorVacationHours),
			hours("Effective baseline after vacation", r.Effective),
			hours("Required hours - day shifts", r.DayShiftHours),
			hours("Required hours - on-calls", r.OncallHours),
			hours("Total required hours", r.Required.Total),
			{Label: "Group overtime (regular)", Value: Signed(r.Overtime), Unit: "h"},
			load(r.Assessment),
		},
	}
}

// RamadanTable renders a Ramadan result.
func RamadanTable(r overtime.RamadanResult) Table {
	return Table{
		Title: "Ramadan Overtime",
		Rows: []Row{
			{Label: "Ramadan days", Value: Fixed(r.PeriodDays, 1), Unit: "days"},
			{Label: "Weekdays vs weekends", Value: composition(r.Composition)},
			{Label: "Baseline per day (assistant)", Value: Fixed(r.AssistantDailyRate, 2), Unit: "h"},
			{Label: "Baseline per day (coordinator)", Value: Fixed(r.CoordinatorDailyRate, 2), Unit: "h"},
			hours("Baseline hours (before vacation)", r.Baseline.Total),
			hours("Vacation hours - assistants", r.AssistantVacationHours),
			hours("Vacation hours - coordinator", r.CoordinatorVacationHours),
			hours("Effective baseline after vacation", r.Effective),
			hours("Required hours - day shifts", r.DayShiftHours),
			hours("Required hours - on-calls", r.OncallHours),
			hours("Total required hours", r.Required.Total),
			{Label: "Group overtime (Ramadan)", Value: Signed(r.Overtime), Unit: "h"},
			load(r.Assessment),
		},
	}
}

// MixedTable renders a mixed-period result.
func MixedTable(r overtime.MixedResult) Table {
	segment := func(s overtime.SegmentResult) string {
		return fmt.Sprintf("%s days (%s)", Fixed(s.PeriodDays, 1), composition(s.Composition))
	}
	return Table{
		Title: "Mixed Period Overtime",
		Rows: []Row{
			{Label: "Ramadan days", Value: segment(r.Ramadan)},
			hours("Ramadan vacation hours", r.Ramadan.VacationHours()),
			hours("Ramadan effective baseline", r.Ramadan.Effective),
			hours("Ramadan required hours", r.Ramadan.Required.Total),
			{Label: "Ramadan overtime", Value: Signed(r.Ramadan.Overtime), Unit: "h"},
			{Label: "Non-Ramadan days", Value: segment(r.NonRamadan)},
			hours("Non-Ramadan vacation hours", r.NonRamadan.VacationHours()),
			hours("Non-Ramadan effective baseline", r.NonRamadan.Effective),
			hours("Non-Ramadan required hours", r.NonRamadan.Required.Total),
			{Label: "Non-Ramadan overtime", Value: Signed(r.NonRamadan.Overtime), Unit: "h"},
			hours("Combined effective baseline", r.CombinedBaseline),
			hours("Combined required hours", r.CombinedRequired),
			{Label: "Total overtime (mixed period)", Value: Signed(r.Overtime), Unit: "h"},
			{Label: "Load vs combined baseline", Value: Ratio(r.LoadRatio) + " · " + string(r.Descriptor)},
		},
	}
}

// Render writes t as aligned text.
func Render(w io.Writer, t Table) error {
	width := 0
	for _, row := range t.Rows {
		width = max(width, len(row.Label))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", t.Title)
	b.WriteString(strings.Repeat("═", 55) + "\n")
	for _, row := range t.Rows {
		fmt.Fprintf(&b, "  %-*s  %s", width, row.Label, row.Value)
		if row.Unit != "" {
			fmt.Fprintf(&b, " %s", row.Unit)
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// ErrNonFinite is returned when a result holds ±Inf or NaN, which JSON
// cannot represent.
var ErrNonFinite = errors.New("result overflows float64, reduce the inputs")

// Encode writes v as JSON or YAML.
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		if f, ok := v.(interface{ Finite() bool }); ok && !f.Finite() {
			return ErrNonFinite
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	return nil
}
