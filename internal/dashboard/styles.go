package dashboard

import "github.com/charmbracelet/lipgloss"

// ANSI color codes, so the palette follows the terminal theme.
const (
	ColorSuccess   lipgloss.Color = "2" // Green
	ColorError     lipgloss.Color = "1" // Red
	ColorWarning   lipgloss.Color = "3" // Yellow
	ColorInfo      lipgloss.Color = "6" // Cyan
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorAccent    lipgloss.Color = "5" // Magenta
	ColorMuted     lipgloss.Color = "8" // Gray
)

// Layout breakpoints
const (
	BreakpointCompact = 80
	HeightMinimal     = 16
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorInfo)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Underline(true).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(16)

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Padding(0, 1)

	unselectedStyle = lipgloss.NewStyle().
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	warningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	footerStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)

// ShowFooter reports whether the terminal is tall enough for the key help.
func ShowFooter(height int) bool {
	return height == 0 || height >= HeightMinimal
}
