package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/username/overtime-suite/internal/config"
	"github.com/username/overtime-suite/internal/input"
	"github.com/username/overtime-suite/internal/overtime"
	"github.com/username/overtime-suite/internal/report"
	"go.uber.org/zap"
)

func setupCLI(t *testing.T, format string) *bytes.Buffer {
	t.Helper()
	cfg = config.Default()
	cfg.Output.Format = format
	logger = zap.NewNop()
	buf := &bytes.Buffer{}
	prev := out
	out = buf
	t.Cleanup(func() { out = prev })
	return buf
}

func TestResolveMonth(t *testing.T) {
	today := time.Now()

	tests := []struct {
		name      string
		args      []string
		year      int
		month     int
		wantYear  int
		wantMonth time.Month
		wantErr   bool
	}{
		{"Positional", []string{"2025-11"}, 0, 0, 2025, time.November, false},
		{"Positional wins over flags", []string{"2024-02"}, 2030, 5, 2024, time.February, false},
		{"Flags", nil, 2026, 3, 2026, time.March, false},
		{"Year only", nil, 2026, 0, 2026, today.Month(), false},
		{"Invalid positional", []string{"11/2025"}, 0, 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, m, err := resolveMonth(tt.args, tt.year, tt.month)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveMonth() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if y != tt.wantYear || m != tt.wantMonth {
				t.Errorf("resolveMonth() = %d-%v, want %d-%v", y, m, tt.wantYear, tt.wantMonth)
			}
		})
	}
}

func TestApplyFlags_OnlyChanged(t *testing.T) {
	setupCLI(t, config.FormatText)

	cmd := regularCmd()
	if err := cmd.ParseFlags([]string{"--month", "2", "--assistants", "abc"}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	params := cfg.Regular
	if err := applyFlags(cmd, input.RegularFields, &params); err != nil {
		t.Fatalf("applyFlags() error = %v", err)
	}

	if params.Month != 2 {
		t.Errorf("Month = %d, want 2", params.Month)
	}
	// unparsable text falls back to zero
	if params.TotalAssistants != 0 {
		t.Errorf("TotalAssistants = %v, want 0", params.TotalAssistants)
	}
	if params.Year != cfg.Regular.Year {
		t.Errorf("Year = %d, want config default %d", params.Year, cfg.Regular.Year)
	}
	if params.AssistantMonthlyBaseline != cfg.Regular.AssistantMonthlyBaseline {
		t.Errorf("AssistantMonthlyBaseline = %v, want %v", params.AssistantMonthlyBaseline, cfg.Regular.AssistantMonthlyBaseline)
	}
}

func TestRegularCmd_Text(t *testing.T) {
	buf := setupCLI(t, config.FormatText)

	cmd := regularCmd()
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got := buf.String()
	for _, want := range []string{"-812.0", string(overtime.UnderBaseline)} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRegularCmd_ManualWeekendJSON(t *testing.T) {
	buf := setupCLI(t, config.FormatJSON)

	cmd := regularCmd()
	cmd.SetArgs([]string{"--manual-weekend", "--weekend-days", "8"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var res overtime.RegularResult
	if err := json.Unmarshal(buf.Bytes(), &res); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if res.Overtime != -794.0 {
		t.Errorf("Overtime = %v, want -794", res.Overtime)
	}
	if res.WeekendDays != 8 {
		t.Errorf("WeekendDays = %v, want 8", res.WeekendDays)
	}
}

func TestRegularCmd_InvalidMonth(t *testing.T) {
	setupCLI(t, config.FormatText)

	cmd := regularCmd()
	cmd.SetArgs([]string{"--month", "13"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err == nil {
		t.Error("Execute() expected error for month 13")
	}
}

func TestMixedCmd_WithoutCoordinator(t *testing.T) {
	buf := setupCLI(t, config.FormatJSON)

	cmd := mixedCmd()
	cmd.SetArgs([]string{"--include-coordinator=false"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var res overtime.MixedResult
	if err := json.Unmarshal(buf.Bytes(), &res); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	params := config.Default().Mixed
	params.IncludeCoordinator = false
	want := overtime.ComputeMixed(params)
	if res.CombinedBaseline != want.CombinedBaseline || res.Overtime != want.Overtime {
		t.Errorf("mixed without coordinator = %v / %v, want %v / %v",
			res.CombinedBaseline, res.Overtime, want.CombinedBaseline, want.Overtime)
	}
	if res.Ramadan.CoordinatorVacationHours != 0 || res.NonRamadan.CoordinatorVacationHours != 0 {
		t.Errorf("coordinator vacation counted without coordinator: %+v / %+v", res.Ramadan.Baseline, res.NonRamadan.Baseline)
	}
}

func TestWeekendsCmd(t *testing.T) {
	buf := setupCLI(t, config.FormatJSON)

	cmd := weekendsCmd()
	cmd.SetArgs([]string{"2025-11"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var got map[string]int
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got["days_in_month"] != 30 || got["weekend_count"] != 9 {
		t.Errorf("weekends 2025-11 = %v, want 30 days / 9 weekend", got)
	}
}

func TestRamadanCmd_Overflow(t *testing.T) {
	buf := setupCLI(t, config.FormatText)

	cmd := ramadanCmd()
	cmd.SetArgs([]string{"--assistants", "1e308", "--base-assist-month", "1e308"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(buf.String(), "-∞") {
		t.Errorf("output missing -∞ overtime:\n%s", buf.String())
	}

	buf = setupCLI(t, config.FormatJSON)
	cmd = ramadanCmd()
	cmd.SetArgs([]string{"--assistants", "1e308", "--base-assist-month", "1e308"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	if err := cmd.Execute(); !errors.Is(err, report.ErrNonFinite) {
		t.Errorf("Execute() error = %v, want ErrNonFinite", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.env")
	if err := os.WriteFile(valid, []byte("OVERTIME_TEST_DOTENV=loaded\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	broken := filepath.Join(dir, "broken.env")
	if err := os.WriteFile(broken, []byte("OVERTIME_TEST_BROKEN=\"unterminated\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("OVERTIME_TEST_DOTENV") })

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"Missing file", filepath.Join(dir, "absent.env"), false},
		{"Valid file", valid, false},
		{"Malformed file", broken, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := loadDotEnv(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("loadDotEnv(%s) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
		})
	}

	if got := os.Getenv("OVERTIME_TEST_DOTENV"); got != "loaded" {
		t.Errorf("OVERTIME_TEST_DOTENV = %q, want loaded", got)
	}
}
