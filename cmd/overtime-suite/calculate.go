package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/username/overtime-suite/internal/calendar"
	"github.com/username/overtime-suite/internal/config"
	"github.com/username/overtime-suite/internal/input"
	"github.com/username/overtime-suite/internal/overtime"
	"github.com/username/overtime-suite/internal/report"
	"go.uber.org/zap"
)

func regularCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regular",
		Short: "Overtime for a regular Gregorian month",
		Long:  "Use calendar month defaults or enter a shorter active period. Weekend days follow the calendar unless --manual-weekend is set.",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := cfg.Regular
			if err := applyFlags(cmd, input.RegularFields, &params); err != nil {
				return err
			}
			if err := applyRoster(cmd, &params.Roster); err != nil {
				return err
			}
			if cmd.Flags().Changed("manual-weekend") {
				params.ManualWeekend, _ = cmd.Flags().GetBool("manual-weekend")
			}

			if err := config.ValidateRegular(params); err != nil {
				return fmt.Errorf("invalid input: %w", err)
			}
			cal := calendar.NewWeekendCalendar(logger)
			if err := input.SyncWeekendDays(cal, &params, logger); err != nil {
				return err
			}

			res := overtime.ComputeRegular(params)
			logAssessment("regular", res.Assessment)

			return emit(report.RegularTable(res), res)
		},
	}

	bindFields(cmd, input.RegularFields)
	bindRoster(cmd)
	cmd.Flags().Bool("manual-weekend", false, "Use --weekend-days instead of the calendar weekend count")

	return cmd
}

func ramadanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ramadan",
		Short: "Overtime for a Ramadan-only period",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := cfg.Ramadan
			if err := applyFlags(cmd, input.RamadanFields, &params); err != nil {
				return err
			}
			if err := applyRoster(cmd, &params.Roster); err != nil {
				return err
			}

			res := overtime.ComputeRamadan(params)
			logAssessment("ramadan", res.Assessment)

			return emit(report.RamadanTable(res), res)
		},
	}

	bindFields(cmd, input.RamadanFields)
	bindRoster(cmd)

	return cmd
}

func mixedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mixed",
		Short: "Overtime for a period split into Ramadan and non-Ramadan segments",
		Long:  "One group covers both segments. Enter baselines per day and coverage patterns; segment flags are prefixed ram- and non-.",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := cfg.Mixed
			if err := applyFlags(cmd, input.MixedFields, &params); err != nil {
				return err
			}
			if err := applyRoster(cmd, &params.Roster); err != nil {
				return err
			}

			res := overtime.ComputeMixed(params)
			logAssessment("mixed", res.Assessment)

			return emit(report.MixedTable(res), res)
		},
	}

	bindFields(cmd, input.MixedFields)
	bindRoster(cmd)

	return cmd
}

// bindFields registers one string flag per form field. Flags start empty
// because defaults come from the config, which loads after flag parsing.
func bindFields[T any](cmd *cobra.Command, fields []input.Field[T]) {
	for _, f := range fields {
		usage := f.Usage
		if f.Fallback != 0 {
			usage += " (unparsable input means " + strconv.FormatFloat(f.Fallback, 'f', -1, 64) + ")"
		}
		cmd.Flags().String(f.Key, "", usage)
	}
}

func applyFlags[T any](cmd *cobra.Command, fields []input.Field[T], params *T) error {
	for _, f := range fields {
		if !cmd.Flags().Changed(f.Key) {
			continue
		}
		text, err := cmd.Flags().GetString(f.Key)
		if err != nil {
			return err
		}
		if err := input.Apply(fields, params, f.Key, text); err != nil {
			return err
		}
		logger.Debug("Field overridden",
			zap.String("field", f.Key),
			zap.String("text", text),
			zap.Float64("value", f.Get(params)))
	}
	return nil
}

func bindRoster(cmd *cobra.Command) {
	cmd.Flags().Bool("include-coordinator", true, "Schedule coordinator included in the roster")
}

func applyRoster(cmd *cobra.Command, r *overtime.Roster) error {
	if !cmd.Flags().Changed("include-coordinator") {
		return nil
	}
	include, err := cmd.Flags().GetBool("include-coordinator")
	if err != nil {
		return err
	}
	r.IncludeCoordinator = include
	return nil
}

func emit(table report.Table, result any) error {
	if cfg.Output.Format == config.FormatText {
		return report.Render(out, table)
	}
	return report.Encode(out, cfg.Output.Format, result)
}

func logAssessment(regime string, a overtime.Assessment) {
	logger.Info("Overtime computed",
		zap.String("regime", regime),
		zap.Float64("overtime", a.Overtime),
		zap.Float64("load_ratio", a.LoadRatio),
		zap.String("descriptor", string(a.Descriptor)))
}
