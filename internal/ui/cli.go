package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/calpick/internal/config"
	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/disabled"
	"github.com/javiermolinar/calpick/internal/ics"
	"github.com/javiermolinar/calpick/internal/log"
	"github.com/javiermolinar/calpick/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
	now    func() time.Time
}

// pickerFlags are the range and layout overrides shared by commands.
type pickerFlags struct {
	date    string
	min     string
	max     string
	count   int
	noColor bool
}

func (f *pickerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.date, "date", "", "Initial date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.min, "min", "", "Earliest selectable date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.max, "max", "", "Latest selectable date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&f.count, "count", 0, "Number of months to show")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "Disable colored output")
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg, now: time.Now}

	var flags pickerFlags
	a.root = &cobra.Command{
		Use:   "calpick",
		Short: "Pick a date from the terminal",
		Long: `calpick opens a keyboard-driven calendar and prints the picked date.

Days outside [min, max], disabled weekdays, disabled dates and days covered
by an ICS blackout calendar cannot be picked.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setupLogging()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPicker(cmd.OutOrStdout(), flags)
		},
	}
	flags.register(a.root)

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes "+tui.DebugLogPath+")")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.calCmd())
	a.root.AddCommand(a.nextCmd())

	return a
}

func (a *App) setupLogging() error {
	if a.debug {
		log.SetLevel(log.LevelDebug)
		return nil
	}
	level, err := log.ParseLevel(a.config.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	log.SetLevel(level)
	return nil
}

func (a *App) runPicker(out io.Writer, flags pickerFlags) error {
	cfg, initial, err := a.resolve(flags)
	if err != nil {
		return err
	}
	if flags.noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	res, err := tui.RunWithDebug(cfg, a.debug, tui.WithInitialDate(initial), tui.WithClock(a.now))
	if err != nil {
		return fmt.Errorf("running picker: %w", err)
	}
	if !res.Committed {
		log.Debug("picker closed without a date")
		return nil
	}
	_, err = fmt.Fprintln(out, dateutil.FormatDate(res.Date))
	return err
}

// resolve applies command-line overrides to a copy of the config.
func (a *App) resolve(flags pickerFlags) (*config.Config, time.Time, error) {
	cfg := *a.config
	if flags.min != "" {
		cfg.Picker.Min = flags.min
	}
	if flags.max != "" {
		cfg.Picker.Max = flags.max
	}
	if flags.count != 0 {
		cfg.Picker.CalendarCount = flags.count
	}
	if err := cfg.Validate(); err != nil {
		return nil, time.Time{}, fmt.Errorf("invalid options: %w", err)
	}

	var initial time.Time
	if flags.date != "" {
		t, err := dateutil.ParseDate(flags.date)
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("parsing --date: %w", err)
		}
		initial = t
	}
	return &cfg, initial, nil
}

// disabledState merges the configured disabled dates with the ICS blackout
// calendar. A calendar that fails to load is logged and skipped.
func disabledState(cfg *config.Config, r dateutil.DateRange) disabled.State {
	state := cfg.Disabled()
	if cfg.Picker.DisabledICS == "" {
		return state
	}
	dates, err := ics.LoadDisabled(cfg.Picker.DisabledICS, r)
	if err != nil {
		log.Error("ics blackout skipped", err, "path", cfg.Picker.DisabledICS)
		return state
	}
	return state.WithDates(dates)
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "calpick %s (commit: %s)\n", Version, Commit)
		},
	}
}

// SetArgs overrides the command-line arguments, for tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// SetOutput redirects command output, for tests.
func (a *App) SetOutput(w io.Writer) {
	a.root.SetOut(w)
	a.root.SetErr(w)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
