// Package style composes the lipgloss styles used by the CLI and the browser.
package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/tvdbx/tvdbx/color"
)

// New returns an empty style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg renders text in the foreground color c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

// Tag renders text as a padded block.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(fg).Background(bg).Padding(0, 1).Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }

	Title      = Tag(color.New("230"), color.New("62"))
	ErrorTitle = Tag(color.New("230"), color.Red)
)

// Rating renders a 0-10 community rating colored by its value.
// Unknown ratings render as a faint dash.
func Rating(rating float64) string {
	switch {
	case rating < 0:
		return Faint("-")
	case rating >= 8:
		return Fg(color.Green)(fmt.Sprintf("%.1f", rating))
	case rating >= 6:
		return Fg(color.Yellow)(fmt.Sprintf("%.1f", rating))
	default:
		return Fg(color.Red)(fmt.Sprintf("%.1f", rating))
	}
}
