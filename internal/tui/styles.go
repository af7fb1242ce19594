package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset the comparison screens use.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
	colorPrice   = colorPeach
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	subtleStyle   = lipgloss.NewStyle().Foreground(colorSubtext0)
	disabledStyle = lipgloss.NewStyle().Foreground(colorOverlay0)
	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorSubtext0)
	priceStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorPrice)
	checkStyle    = lipgloss.NewStyle().Foreground(colorSuccess)
	crossStyle    = lipgloss.NewStyle().Foreground(colorError)
	tagStyle      = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0).Padding(0, 1)
	buttonStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorBase).Background(colorBlue).Padding(0, 1)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorMauve)
	footerStyle   = lipgloss.NewStyle().Foreground(colorSubtext0)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)
	focusedCardStyle = cardStyle.BorderForeground(colorFocus)
	addSlotStyle     = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(colorOverlay0).
				Padding(0, 1).
				Foreground(colorSubtext0)
	focusedAddSlotStyle = addSlotStyle.BorderForeground(colorFocus).Foreground(colorText)
	modalStyle          = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorAccent).
				Padding(0, 1)
)

func noticeStyle(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorBase).Background(color).Padding(0, 1)
}
