package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette.
const (
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorRed      lipgloss.Color = "#f38ba8"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface2 lipgloss.Color = "#585b70"
)

var (
	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)
	activeColumnStyle = columnStyle.BorderForeground(colorLavender)

	headerStyle   = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	itemStyle     = lipgloss.NewStyle().Foreground(colorText)
	cursorStyle   = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface2)
	matchStyle    = lipgloss.NewStyle().Foreground(colorYellow)
	focusStyle    = lipgloss.NewStyle().Foreground(colorPeach).Bold(true).Underline(true)
	draggingStyle = lipgloss.NewStyle().Foreground(colorLavender).Italic(true)
	emptyStyle    = lipgloss.NewStyle().Foreground(colorOverlay1)
	statusStyle   = lipgloss.NewStyle().Foreground(colorOverlay1)
	errorStyle    = lipgloss.NewStyle().Foreground(colorRed)
)
