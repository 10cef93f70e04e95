package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PlaceBox renders content in a lipgloss.Place box with background fill.
func PlaceBox(w, h int, hAlign, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(
		w,
		h,
		hAlign,
		vAlign,
		content,
		lipgloss.WithWhitespaceBackground(bg),
	)
	return PadLinesWithBackground(placed, w, h, bg)
}

// PadLinesWithBackground pads content to width/height with a background color.
// Lines wider than width are cut.
func PadLinesWithBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	paddingStyle := lipgloss.NewStyle().Background(bg)
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = ansi.Cut(line, 0, width)
			continue
		}
		lines[i] = line + paddingStyle.Render(strings.Repeat(" ", width-lineWidth))
	}
	return strings.Join(lines, "\n")
}

// JoinColumns lays out blocks side by side separated by gap columns of bg.
// It stops adding blocks once the next one would overflow width and reports
// how many blocks were placed.
func JoinColumns(blocks []string, width, gap int, bg lipgloss.Color) (string, int) {
	if len(blocks) == 0 {
		return "", 0
	}
	spacer := lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", gap))
	parts := make([]string, 0, len(blocks)*2)
	used := 0
	placed := 0
	for _, b := range blocks {
		w := lipgloss.Width(b)
		need := w
		if placed > 0 {
			need += gap
		}
		if placed > 0 && width > 0 && used+need > width {
			break
		}
		if placed > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, b)
		used += need
		placed++
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...), placed
}

// Window returns the indexes [start, end) of n items centered on center so
// that at most size items are shown.
func Window(n, center, size int) (int, int) {
	if size <= 0 || n <= 0 {
		return 0, 0
	}
	if size >= n {
		return 0, n
	}
	start := center - size/2
	if start < 0 {
		start = 0
	}
	if start+size > n {
		start = n - size
	}
	return start, start + size
}
