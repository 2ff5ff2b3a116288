package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tvdbx/tvdbx/color"
	"github.com/tvdbx/tvdbx/icon"
	"github.com/tvdbx/tvdbx/style"
	"github.com/tvdbx/tvdbx/util"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	switch b.state {
	case seasonsState:
		return listExtraPaddingStyle.Render(b.seasonsC.View())
	case episodesState:
		return listExtraPaddingStyle.Render(b.episodesC.View())
	case episodeState:
		return b.viewEpisode()
	case errorState:
		return b.viewError()
	default:
		return "Unknown state"
	}
}

func (b *statefulBubble) viewEpisode() string {
	e := b.selectedEpisode
	heading := style.New().Bold(true).Foreground(style.Sapphire).Render

	lines := []string{
		style.Title(e.Code()),
		"",
		style.Bold(e.Name) + " " + style.Rating(e.Rating),
	}

	row := func(name, value string) {
		if value != "" {
			lines = append(lines, fmt.Sprintf("%s %s", heading(fmt.Sprintf("%-8s", name)), value))
		}
	}

	lines = append(lines, "")
	if e.Aired() {
		row("Aired", e.FirstAired.Format("2006-01-02"))
	}
	row("Director", e.Director)
	row("Writer", e.Writer)
	row("Guests", e.GuestStars)

	if e.Overview != "" {
		width := b.wrapWidth
		if b.width > 0 {
			width = util.Min(width, b.width)
		}
		lines = append(lines, "", util.Wrap(e.Overview, width))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(color.Red).Bold(true)
	errorMsg := util.Wrap(errorStyle.Render(b.lastError.Error()), b.width)

	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	l := strings.Join(lines, "\n")
	if addHelp {
		if h := strings.Count(l, "\n") + 1; b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
