// Package input parses text typed into the TUI prompt.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/javiermolinar/calpick/internal/dateutil"
)

// ErrEmptyInput is returned for a blank prompt.
var ErrEmptyInput = errors.New("empty input")

// GoToHint is shown as the prompt placeholder.
const GoToHint = "YYYY-MM-DD, today, +3d, -2w, +1m, +1y"

// ParseGoTo resolves prompt input to a date. It accepts an ISO date,
// "today", or a signed offset from base with a d/w/m/y unit.
func ParseGoTo(s string, base, today time.Time) (time.Time, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return time.Time{}, ErrEmptyInput
	}
	if s == "today" || s == "t" {
		return dateutil.ToUTC(today), nil
	}
	if s[0] != '+' && s[0] != '-' {
		return dateutil.ParseDate(s)
	}
	if len(s) < 3 {
		return time.Time{}, fmt.Errorf("invalid offset %q", s)
	}

	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid offset %q: %w", s, err)
	}
	base = dateutil.ToUTC(base)
	switch s[len(s)-1] {
	case 'd':
		return dateutil.AddDays(base, n), nil
	case 'w':
		return dateutil.AddDays(base, 7*n), nil
	case 'm':
		return dateutil.AddMonths(base, n), nil
	case 'y':
		return dateutil.AddYears(base, n), nil
	default:
		return time.Time{}, fmt.Errorf("invalid offset unit in %q", s)
	}
}
