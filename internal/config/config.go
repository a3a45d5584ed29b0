package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/username/overtime-suite/internal/overtime"
)

// Config represents application configuration
type Config struct {
	Regular overtime.RegularParams `mapstructure:"regular"`
	Ramadan overtime.RamadanParams `mapstructure:"ramadan"`
	Mixed   overtime.MixedParams   `mapstructure:"mixed"`
	Logging LoggingConfig          `mapstructure:"logging"`
	Server  ServerConfig           `mapstructure:"server"`
	Output  OutputConfig           `mapstructure:"output"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"` // empty logs to console
	Level string `mapstructure:"level"`
}

// ServerConfig represents HTTP front configuration
type ServerConfig struct {
	Addr           string   `mapstructure:"addr"`
	RatePerMinute  int      `mapstructure:"rate_per_minute"`
	Burst          int      `mapstructure:"burst"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// OutputConfig represents result rendering configuration
type OutputConfig struct {
	Format string `mapstructure:"format"` // text, json or yaml
}

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Load loads configuration from file. A missing config file is not an
// error when no explicit path was given; defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.overtime-suite")
		v.AddConfigPath("/etc/overtime-suite")
	}

	// OVERTIME_SERVER_ADDR overrides server.addr
	v.SetEnvPrefix("overtime")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Default returns the built-in configuration without reading any file
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	// Defaults are static and always decode.
	_ = v.Unmarshal(&config)
	return &config
}

// setDefaults registers the start-screen values of every form
func setDefaults(v *viper.Viper) {
	v.SetDefault("regular.year", 2025)
	v.SetDefault("regular.month", 11)
	v.SetDefault("regular.active_days", 0)
	v.SetDefault("regular.weekend_days", 8)
	v.SetDefault("regular.manual_weekend", false)
	v.SetDefault("regular.total_assistants", 13)
	v.SetDefault("regular.include_coordinator", true)
	v.SetDefault("regular.assistant_monthly_baseline", 176)
	v.SetDefault("regular.coordinator_monthly_baseline", 158)
	v.SetDefault("regular.assistants_per_weekday", 6)
	v.SetDefault("regular.assistants_per_weekend_day", 4)
	v.SetDefault("regular.day_shift_hours", 9)
	v.SetDefault("regular.oncall_hours", 16)

	v.SetDefault("ramadan.total_days", 30)
	v.SetDefault("ramadan.weekend_days", 8)
	v.SetDefault("ramadan.total_assistants", 13)
	v.SetDefault("ramadan.include_coordinator", true)
	v.SetDefault("ramadan.assistant_monthly_baseline", 144)
	v.SetDefault("ramadan.coordinator_monthly_baseline", 129)
	v.SetDefault("ramadan.assistants_per_weekday", 6)
	v.SetDefault("ramadan.assistants_per_weekend_day", 4)
	v.SetDefault("ramadan.day_shift_hours", 6)
	v.SetDefault("ramadan.oncall_hours", 18)

	v.SetDefault("mixed.total_assistants", 13)
	v.SetDefault("mixed.include_coordinator", true)
	v.SetDefault("mixed.ramadan.days", 10)
	v.SetDefault("mixed.ramadan.weekend_days", 4)
	v.SetDefault("mixed.ramadan.assistant_daily_baseline", 4.8)
	v.SetDefault("mixed.ramadan.coordinator_daily_baseline", 4.3)
	v.SetDefault("mixed.ramadan.assistants_per_weekday", 6)
	v.SetDefault("mixed.ramadan.assistants_per_weekend_day", 4)
	v.SetDefault("mixed.ramadan.day_shift_hours", 6)
	v.SetDefault("mixed.ramadan.oncall_hours", 18)
	v.SetDefault("mixed.non_ramadan.days", 20)
	v.SetDefault("mixed.non_ramadan.weekend_days", 4)
	v.SetDefault("mixed.non_ramadan.assistant_daily_baseline", 5.9)
	v.SetDefault("mixed.non_ramadan.coordinator_daily_baseline", 5.3)
	v.SetDefault("mixed.non_ramadan.assistants_per_weekday", 6)
	v.SetDefault("mixed.non_ramadan.assistants_per_weekend_day", 4)
	v.SetDefault("mixed.non_ramadan.day_shift_hours", 9)
	v.SetDefault("mixed.non_ramadan.oncall_hours", 16)

	v.SetDefault("logging.level", "info")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.rate_per_minute", 120)
	v.SetDefault("server.burst", 20)
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("output.format", FormatText)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := ValidateRegular(c.Regular); err != nil {
		return fmt.Errorf("regular.%w", err)
	}
	if err := validateRoster(c.Ramadan.Roster); err != nil {
		return fmt.Errorf("ramadan.%w", err)
	}
	if c.Ramadan.TotalDays < 0 {
		return fmt.Errorf("ramadan.total_days must not be negative")
	}
	if err := validateRoster(c.Mixed.Roster); err != nil {
		return fmt.Errorf("mixed.%w", err)
	}
	if c.Mixed.Ramadan.Days < 0 || c.Mixed.NonRamadan.Days < 0 {
		return fmt.Errorf("mixed segment days must not be negative")
	}

	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("output.format must be 'text', 'json' or 'yaml', got '%s'", c.Output.Format)
	}

	if c.Server.RatePerMinute <= 0 {
		return fmt.Errorf("server.rate_per_minute must be positive")
	}
	if c.Server.Burst <= 0 {
		return fmt.Errorf("server.burst must be positive")
	}

	return nil
}

// ValidateRegular checks the fields the calendar lookup depends on
func ValidateRegular(p overtime.RegularParams) error {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %d", p.Month)
	}
	return validateRoster(p.Roster)
}

func validateRoster(r overtime.Roster) error {
	if r.TotalAssistants < 0 {
		return fmt.Errorf("total_assistants must not be negative")
	}
	return nil
}
