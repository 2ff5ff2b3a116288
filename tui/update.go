package tui

import (
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tvdbx/tvdbx/model"
)

func (b *statefulBubble) Init() tea.Cmd {
	return nil
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
		return b, nil
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		if bubblesKey.Matches(msg, b.keymap.back) && !b.filtering() {
			b.previousState()
			return b, nil
		}
	}

	switch b.state {
	case seasonsState:
		return b.updateSeasons(msg)
	case episodesState:
		return b.updateEpisodes(msg)
	case episodeState:
		return b.updateEpisode(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

func (b *statefulBubble) filtering() bool {
	switch b.state {
	case seasonsState:
		return b.seasonsC.FilterState() != list.Unfiltered
	case episodesState:
		return b.episodesC.FilterState() != list.Unfiltered
	default:
		return false
	}
}

func (b *statefulBubble) updateSeasons(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && b.seasonsC.FilterState() != list.Filtering {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if item, ok := b.seasonsC.SelectedItem().(*listItem); ok {
				b.selectSeason(item.internal.(*season))
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.openURL):
			b.openArtwork()
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.seasonsC, cmd = b.seasonsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateEpisodes(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && b.episodesC.FilterState() != list.Filtering {
		if bubblesKey.Matches(msg, b.keymap.confirm) {
			if item, ok := b.episodesC.SelectedItem().(*listItem); ok {
				b.selectEpisode(item.internal.(*model.Episode))
			}
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.episodesC, cmd = b.episodesC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateEpisode(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.openURL):
			b.openArtwork()
		}
	}

	return b, nil
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.quit) {
		return b, tea.Quit
	}

	return b, nil
}
