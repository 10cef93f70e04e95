package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/calpick/internal/calendar"
	"github.com/javiermolinar/calpick/internal/config"
	"github.com/javiermolinar/calpick/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  calpick config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				path = config.DefaultConfigPath()
			}
			return runConfigInteractive(cmd.OutOrStdout(), bufio.NewReader(cmd.InOrStdin()), path)
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "Config file (.toml, .yaml or .yml)")
	return cmd
}

// promptAttempts bounds re-prompting for a valid choice.
const promptAttempts = 3

func runConfigInteractive(w io.Writer, reader *bufio.Reader, configPath string) error {
	fmt.Fprintf(w, "Config file: %s\n\n", configPath)

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, fileErr := os.Stat(configPath)
	if os.IsNotExist(fileErr) {
		fmt.Fprintln(w, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(w, "Created %s\n\n", configPath)
	}

	printConfig(w, cfg)

	if !promptYesNo(w, reader, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Picker.Locale = promptValue(w, reader, "Locale (BCP 47)", cfg.Picker.Locale)
	cfg.Picker.Min = promptValue(w, reader, "Min date (YYYY-MM-DD)", cfg.Picker.Min)
	cfg.Picker.Max = promptValue(w, reader, "Max date (YYYY-MM-DD)", cfg.Picker.Max)
	cfg.Picker.DisabledDays = promptValue(w, reader, "Disabled weekdays (0=Sun, comma-separated)", cfg.Picker.DisabledDays)
	cfg.Picker.DisabledDates = promptValue(w, reader, "Disabled dates (comma-separated)", cfg.Picker.DisabledDates)
	cfg.Picker.DisabledICS = promptValue(w, reader, "Blackout .ics file (empty to disable)", cfg.Picker.DisabledICS)
	cfg.Picker.FirstDayOfWeek = promptInt(w, reader, "First day of week (0=Sun)", cfg.Picker.FirstDayOfWeek)
	cfg.Picker.ShowWeekNumber = promptBool(w, reader, "Show week numbers", cfg.Picker.ShowWeekNumber)
	cfg.Picker.WeekNumberType = promptWeekNumberType(w, reader, cfg.Picker.WeekNumberType)
	cfg.Picker.CalendarCount = promptInt(w, reader, "Months shown", cfg.Picker.CalendarCount)
	cfg.UI.Theme = promptTheme(w, reader, cfg.UI.Theme)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(w, "\nConfiguration saved!")
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	p := cfg.Picker
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[picker]")
	fmt.Fprintf(w, "  locale            = %s\n", p.Locale)
	fmt.Fprintf(w, "  min               = %s\n", p.Min)
	fmt.Fprintf(w, "  max               = %s\n", p.Max)
	fmt.Fprintf(w, "  disabled_days     = %s\n", p.DisabledDays)
	fmt.Fprintf(w, "  disabled_dates    = %s\n", p.DisabledDates)
	if p.DisabledICS != "" {
		fmt.Fprintf(w, "  disabled_ics      = %s\n", p.DisabledICS)
	}
	fmt.Fprintf(w, "  first_day_of_week = %d\n", p.FirstDayOfWeek)
	fmt.Fprintf(w, "  show_week_number  = %t\n", p.ShowWeekNumber)
	fmt.Fprintf(w, "  week_number_type  = %s\n", p.WeekNumberType)
	fmt.Fprintf(w, "  calendar_count    = %d\n", p.CalendarCount)
	fmt.Fprintln(w, "\n[ui]")
	fmt.Fprintf(w, "  theme             = %s\n", cfg.UI.Theme)
	fmt.Fprintln(w, "\n[log]")
	fmt.Fprintf(w, "  level             = %s\n", cfg.Log.Level)
}

func promptYesNo(w io.Writer, reader *bufio.Reader, question string) bool {
	fmt.Fprintf(w, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(w io.Writer, reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Fprintf(w, "  %s: ", label)
	} else {
		fmt.Fprintf(w, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(w io.Writer, reader *bufio.Reader, label string, current int) int {
	for i := 0; i < promptAttempts; i++ {
		value := promptValue(w, reader, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(w, "  Invalid number %q\n", value)
	}
	return current
}

func promptBool(w io.Writer, reader *bufio.Reader, label string, current bool) bool {
	for i := 0; i < promptAttempts; i++ {
		value := promptValue(w, reader, label+" (true/false)", strconv.FormatBool(current))
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
		fmt.Fprintf(w, "  Invalid value %q\n", value)
	}
	return current
}

func promptWeekNumberType(w io.Writer, reader *bufio.Reader, current string) string {
	names := make([]string, 0, 3)
	for _, t := range calendar.WeekNumberTypes() {
		names = append(names, string(t))
	}
	options := strings.Join(names, ", ")
	label := fmt.Sprintf("Week number type (%s)", options)
	for i := 0; i < promptAttempts; i++ {
		value := promptValue(w, reader, label, current)
		if _, err := calendar.ParseWeekNumberType(value); err == nil {
			return value
		}
		fmt.Fprintf(w, "  Invalid week number type %q. Available: %s\n", value, options)
	}
	return current
}

func promptTheme(w io.Writer, reader *bufio.Reader, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for i := 0; i < promptAttempts; i++ {
		value := strings.ToLower(promptValue(w, reader, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(w, "  Invalid theme %q. Available: %s\n", value, options)
	}
	return current
}
