package style

import "github.com/charmbracelet/lipgloss"

// Browser palette.
var (
	Text    = lipgloss.Color("#cdd6f4")
	Subtext = lipgloss.Color("#a6adc8")
	Overlay = lipgloss.Color("#6c7086")
	Surface = lipgloss.Color("#313244")

	Mauve    = lipgloss.Color("#cba6f7")
	Peach    = lipgloss.Color("#fab387")
	Sapphire = lipgloss.Color("#74c7ec")

	AccentColor = Mauve
	BorderColor = Surface
)
