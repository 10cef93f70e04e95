// Package navigate computes the next focused date of a date picker in
// response to keyboard commands.
package navigate

import (
	"strings"
	"time"

	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/disabled"
)

// Key is a logical navigation key.
type Key int

const (
	KeyNone Key = iota
	ArrowUp
	ArrowDown
	ArrowLeft
	ArrowRight
	PageUp
	PageDown
	Home
	End
	Enter
	Space
	Tab
)

var keyNames = [...]string{
	KeyNone:    "None",
	ArrowUp:    "ArrowUp",
	ArrowDown:  "ArrowDown",
	ArrowLeft:  "ArrowLeft",
	ArrowRight: "ArrowRight",
	PageUp:     "PageUp",
	PageDown:   "PageDown",
	Home:       "Home",
	End:        "End",
	Enter:      "Enter",
	Space:      "Space",
	Tab:        "Tab",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return keyNames[KeyNone]
	}
	return keyNames[k]
}

// aliases maps lower-cased key names to keys. It covers DOM key names,
// legacy DOM names and the short forms accepted on the command line.
var aliases = map[string]Key{
	"arrowup":    ArrowUp,
	"up":         ArrowUp,
	"arrowdown":  ArrowDown,
	"down":       ArrowDown,
	"arrowleft":  ArrowLeft,
	"left":       ArrowLeft,
	"arrowright": ArrowRight,
	"right":      ArrowRight,
	"pageup":     PageUp,
	"pgup":       PageUp,
	"pagedown":   PageDown,
	"pgdown":     PageDown,
	"pgdn":       PageDown,
	"home":       Home,
	"end":        End,
	"enter":      Enter,
	"space":      Space,
	"spacebar":   Space,
	" ":          Space,
	"tab":        Tab,
}

// ParseKey decodes a key name such as "ArrowUp", "PageDown" or " ".
// Unknown names decode to KeyNone, which never moves focus.
func ParseKey(name string) Key {
	if name == " " {
		return Space
	}
	if k, ok := aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k
	}
	return KeyNone
}

// towardMin reports keys that cannot move past min.
func (k Key) towardMin() bool {
	switch k {
	case ArrowUp, ArrowLeft, PageUp, Home:
		return true
	}
	return false
}

// towardMax reports keys that cannot move past max.
func (k Key) towardMax() bool {
	switch k {
	case ArrowDown, ArrowRight, PageDown, End:
		return true
	}
	return false
}

// searchForward reports whether a disabled candidate is resolved by scanning
// later days. Keys without a direction scan forward.
func (k Key) searchForward() bool {
	switch k {
	case ArrowDown, ArrowLeft, PageDown, End:
		return false
	}
	return true
}

// Command is a key plus the secondary modifier (Alt) that turns month
// paging into year paging.
type Command struct {
	Key       Key
	Secondary bool
}

func (c Command) String() string {
	if c.Secondary {
		return "alt+" + c.Key.String()
	}
	return c.Key.String()
}

// Commits reports whether the command confirms the focused date.
func (c Command) Commits() bool {
	return c.Key == Enter || c.Key == Space
}

// apply returns the raw candidate for the command, before range and
// disabled checks.
func (c Command) apply(t time.Time) time.Time {
	switch c.Key {
	case ArrowUp:
		return dateutil.AddDays(t, -7)
	case ArrowDown:
		return dateutil.AddDays(t, 7)
	case ArrowLeft:
		return dateutil.AddDays(t, -1)
	case ArrowRight:
		return dateutil.AddDays(t, 1)
	case PageUp:
		if c.Secondary {
			return dateutil.AddYears(t, -1)
		}
		return dateutil.AddMonths(t, -1)
	case PageDown:
		if c.Secondary {
			return dateutil.AddYears(t, 1)
		}
		return dateutil.AddMonths(t, 1)
	case Home:
		return dateutil.FirstOfMonth(t)
	case End:
		return dateutil.LastOfMonth(t)
	default:
		return t
	}
}

// Input is everything Next needs to move focus.
type Input struct {
	Focused  time.Time
	Selected time.Time // its month is the one on display; zero means Focused
	Command  Command
	Disabled disabled.State
	Range    dateutil.DateRange
}

// Focus is the outcome of a navigation step.
type Focus struct {
	Date       time.Time
	Selectable bool // false when no selectable date exists in the range
	Commit     bool // the caller should commit Date as the selection
}

// Next computes the focused date after in.Command.
//
// When the displayed month differs from the focused one, focus jumps to the
// first selectable day of the displayed month and Enter or Space does not
// commit. Otherwise the key moves the focus and disabled or out-of-range
// candidates are resolved by scanning day by day, reversing at the range boundaries. The scan always terminates; if
// nothing in the range is selectable the boundary is returned with
// Selectable set to false.
func Next(in Input) Focus {
	focused := dateutil.ToUTC(in.Focused)
	selected := focused
	if !in.Selected.IsZero() {
		selected = dateutil.ToUTC(in.Selected)
	}
	cmd := in.Command
	r := in.Range
	commit := cmd.Commits()

	if r.Inverted() {
		return Focus{Date: focused, Commit: commit}
	}

	var candidate time.Time
	switch {
	case !dateutil.SameMonth(focused, selected):
		// Focus has not reached the displayed month yet, so nothing commits.
		candidate = dateutil.FirstOfMonth(selected)
		commit = false
	case r.IsMin(focused) && cmd.Key.towardMin(), r.IsMax(focused) && cmd.Key.towardMax():
		return Focus{
			Date:       focused,
			Selectable: !in.Disabled.Disabled(focused),
			Commit:     commit,
		}
	default:
		candidate = cmd.apply(focused)
	}

	date, ok := selectable(candidate, cmd.Key.searchForward(), r, in.Disabled)
	return Focus{Date: date, Selectable: ok, Commit: commit}
}

// selectable scans from t for the nearest selectable date.
func selectable(t time.Time, forward bool, r dateutil.DateRange, d disabled.State) (time.Time, bool) {
	var hitMin, hitMax bool
	clamp := func() {
		switch {
		case t.Before(r.Min):
			t, hitMin, forward = r.Min, true, true
		case t.After(r.Max):
			t, hitMax, forward = r.Max, true, false
		}
	}

	clamp()
	if d.Days.Full() {
		return t, false
	}
	for d.Disabled(t) {
		if hitMin && hitMax {
			return t, false
		}
		if forward {
			t = dateutil.AddDays(t, 1)
		} else {
			t = dateutil.AddDays(t, -1)
		}
		clamp()
	}
	return t, true
}
