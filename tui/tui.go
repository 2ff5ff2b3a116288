// Package tui browses extracted series details in the terminal.
package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tvdbx/tvdbx/details"
)

// Options configures the browser.
type Options struct {
	Details *details.SeriesDetails
}

// Run opens the browser on the seasons of options.Details.
func Run(options *Options) error {
	if options.Details == nil || options.Details.Series() == nil {
		return errors.New("nothing to browse")
	}

	_, err := tea.NewProgram(newBubble(options), tea.WithAltScreen()).Run()
	return err
}
