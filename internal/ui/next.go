package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/calpick/internal/config"
	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/log"
	"github.com/javiermolinar/calpick/internal/navigate"
)

func (a *App) nextCmd() *cobra.Command {
	var focused, selected, keyName string
	var alt bool
	var flags pickerFlags

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Compute the next focused date for a key press",
		Long: `Run one navigation step without opening the picker.

Keys: ArrowUp, ArrowDown, ArrowLeft, ArrowRight, PageUp, PageDown, Home, End,
Enter, Space (short forms such as up, pgdn and space are accepted). With
--alt, PageUp and PageDown move by a year.

Example:
  calpick next --focused 2020-01-31 --key PageDown`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.noColor {
				DisableColor()
			}
			cfg, _, err := a.resolve(flags)
			if err != nil {
				return err
			}
			f, err := parseDateFlag("--focused", focused, dateutil.Today(a.now))
			if err != nil {
				return err
			}
			s, err := parseDateFlag("--selected", selected, time.Time{})
			if err != nil {
				return err
			}
			command := navigate.Command{Key: navigate.ParseKey(keyName), Secondary: alt}
			return printNext(cmd.OutOrStdout(), cfg, f, s, command)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&focused, "focused", "", "Focused date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&selected, "selected", "", "Date whose month is on display (default --focused)")
	cmd.Flags().StringVar(&keyName, "key", "", "Key to apply")
	cmd.Flags().BoolVar(&alt, "alt", false, "Hold the secondary modifier")
	return cmd
}

func parseDateFlag(name, value string, fallback time.Time) (time.Time, error) {
	t, err := dateutil.ParseDateOr(value, fallback)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", name, err)
	}
	return t, nil
}

func printNext(w io.Writer, cfg *config.Config, focused, selected time.Time, cmd navigate.Command) error {
	r, err := cfg.Range()
	if err != nil {
		return fmt.Errorf("invalid range: %w", err)
	}
	if cmd.Key == navigate.KeyNone {
		log.Debug("unrecognized key, focus unchanged")
	}
	f := navigate.Next(navigate.Input{
		Focused:  focused,
		Selected: selected,
		Command:  cmd,
		Disabled: disabledState(cfg, r),
		Range:    r,
	})

	state := formatOK("selectable")
	if !f.Selectable {
		state = formatDisabled("unselectable")
	}
	line := fmt.Sprintf("%s %s", dateutil.FormatDate(f.Date), state)
	if f.Commit {
		line += " " + formatHeader("commit")
	}
	_, err = fmt.Fprintln(w, line)
	return err
}
