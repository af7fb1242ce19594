package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// centerOverlay draws fg in the middle of a width x height canvas holding bg.
func centerOverlay(bg, fg string, width, height int) string {
	x := max(0, (width-lipgloss.Width(fg))/2)
	y := max(0, (height-lipgloss.Height(fg))/2)
	return composite(bg, fg, x, y, width, height)
}

// composite draws fg over bg with its top-left corner at column x, row y.
// bg is padded to height rows; fg rows outside the canvas are dropped.
func composite(bg, fg string, x, y, width, height int) string {
	rows := strings.Split(bg, "\n")
	for len(rows) < height {
		rows = append(rows, "")
	}
	fgWidth := lipgloss.Width(fg)
	for i, seg := range strings.Split(fg, "\n") {
		row := y + i
		if row < 0 || row >= height {
			continue
		}
		rows[row] = splice(rows[row], fillTo(seg, fgWidth), x, width)
	}
	return strings.Join(rows, "\n")
}

// splice replaces the cells of line from column x onward with seg, keeping
// whatever of line lies to the right of it.
func splice(line, seg string, x, width int) string {
	line = fillTo(line, max(width, x))
	head := fillTo(ansi.Truncate(line, x, ""), x)
	tail := ansi.TruncateLeft(line, x+ansi.StringWidth(seg), "")
	return head + seg + tail
}

func fillTo(s string, width int) string {
	if gap := width - ansi.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// truncate shortens s to width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
