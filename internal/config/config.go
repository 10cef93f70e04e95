// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/javiermolinar/calpick/internal/calendar"
	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/disabled"
	"github.com/javiermolinar/calpick/internal/format"
	"github.com/javiermolinar/calpick/internal/log"
)

// MaxCalendarCount bounds how many months are shown side by side.
const MaxCalendarCount = 12

// Config holds the application configuration.
type Config struct {
	Picker PickerConfig `toml:"picker" yaml:"picker"`
	UI     UIConfig     `toml:"ui" yaml:"ui"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// PickerConfig holds the calendar and navigation settings.
type PickerConfig struct {
	Locale         string `toml:"locale" yaml:"locale"`                       // BCP 47 tag, e.g. "en-US"
	Min            string `toml:"min" yaml:"min"`                             // YYYY-MM-DD
	Max            string `toml:"max" yaml:"max"`                             // YYYY-MM-DD
	DisabledDays   string `toml:"disabled_days" yaml:"disabled_days"`         // e.g. "0,6"
	DisabledDates  string `toml:"disabled_dates" yaml:"disabled_dates"`       // e.g. "2020-12-25,2021-01-01"
	DisabledICS    string `toml:"disabled_ics" yaml:"disabled_ics"`           // path to an .ics blackout calendar
	FirstDayOfWeek int    `toml:"first_day_of_week" yaml:"first_day_of_week"` // 0 = Sunday
	ShowWeekNumber bool   `toml:"show_week_number" yaml:"show_week_number"`
	WeekLabel      string `toml:"week_label" yaml:"week_label"`
	WeekNumberType string `toml:"week_number_type" yaml:"week_number_type"`
	CalendarCount  int    `toml:"calendar_count" yaml:"calendar_count"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme" yaml:"theme"` // "mocha", "macchiato", "frappe", "latte"
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"` // "debug", "info", "error"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Picker: PickerConfig{
			Locale:         format.DefaultLocale,
			Min:            dateutil.FormatDate(dateutil.DefaultMin),
			Max:            dateutil.FormatDate(dateutil.DefaultMax),
			FirstDayOfWeek: int(time.Sunday),
			WeekLabel:      "Wk",
			WeekNumberType: string(calendar.FirstFourDayWeek),
			CalendarCount:  1,
		},
		UI: UIConfig{
			Theme: "frappe",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "calpick", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Picker.DisabledICS = expandPath(cfg.Picker.DisabledICS)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	log.Debug("config loaded", "path", path)
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	strs := []struct {
		env string
		dst *string
	}{
		{"CALPICK_LOCALE", &cfg.Picker.Locale},
		{"CALPICK_MIN", &cfg.Picker.Min},
		{"CALPICK_MAX", &cfg.Picker.Max},
		{"CALPICK_DISABLED_DAYS", &cfg.Picker.DisabledDays},
		{"CALPICK_DISABLED_DATES", &cfg.Picker.DisabledDates},
		{"CALPICK_DISABLED_ICS", &cfg.Picker.DisabledICS},
		{"CALPICK_WEEK_LABEL", &cfg.Picker.WeekLabel},
		{"CALPICK_WEEK_NUMBER_TYPE", &cfg.Picker.WeekNumberType},
		{"CALPICK_UI_THEME", &cfg.UI.Theme},
		{"CALPICK_LOG_LEVEL", &cfg.Log.Level},
	}
	for _, s := range strs {
		if v := os.Getenv(s.env); v != "" {
			*s.dst = v
		}
	}

	ints := []struct {
		env string
		dst *int
	}{
		{"CALPICK_FIRST_DAY_OF_WEEK", &cfg.Picker.FirstDayOfWeek},
		{"CALPICK_CALENDAR_COUNT", &cfg.Picker.CalendarCount},
	}
	for _, i := range ints {
		if v := os.Getenv(i.env); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s must be an integer, got %q", i.env, v)
			}
			*i.dst = n
		}
	}

	if v := os.Getenv("CALPICK_SHOW_WEEK_NUMBER"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CALPICK_SHOW_WEEK_NUMBER must be a boolean, got %q", v)
		}
		cfg.Picker.ShowWeekNumber = b
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := format.New(c.Picker.Locale); err != nil {
		return err
	}
	if _, err := c.Range(); err != nil {
		return err
	}
	if c.Picker.FirstDayOfWeek < 0 || c.Picker.FirstDayOfWeek > 6 {
		return fmt.Errorf("first_day_of_week must be between 0 and 6, got %d", c.Picker.FirstDayOfWeek)
	}
	if _, err := calendar.ParseWeekNumberType(c.Picker.WeekNumberType); err != nil {
		return err
	}
	if c.Picker.CalendarCount < 1 || c.Picker.CalendarCount > MaxCalendarCount {
		return fmt.Errorf("calendar_count must be between 1 and %d, got %d", MaxCalendarCount, c.Picker.CalendarCount)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.UI.Theme == "" {
		return errors.New("theme must be set")
	}
	return nil
}

// Range returns the configured [min, max] range.
func (c *Config) Range() (dateutil.DateRange, error) {
	return dateutil.ParseDateRange(c.Picker.Min, c.Picker.Max)
}

// Disabled resolves the disabled days and dates. Malformed entries are dropped.
func (c *Config) Disabled() disabled.State {
	return disabled.Resolve(c.Picker.DisabledDays, c.Picker.DisabledDates)
}

// FirstDayOfWeek returns the configured first column of the grid.
func (c *Config) FirstDayOfWeek() time.Weekday {
	return time.Weekday(c.Picker.FirstDayOfWeek)
}

// WeekNumberType returns the configured week numbering, defaulting when unset.
func (c *Config) WeekNumberType() calendar.WeekNumberType {
	t, err := calendar.ParseWeekNumberType(c.Picker.WeekNumberType)
	if err != nil {
		return calendar.FirstFourDayWeek
	}
	return t
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path. Paths ending in
// .yaml or .yml are written as YAML, everything else as TOML.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = toml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
