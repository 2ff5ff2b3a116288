package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/tvdbx/tvdbx/color"
	"github.com/tvdbx/tvdbx/style"
)

type statefulKeymap struct {
	state state

	quit, forceQuit,
	confirm,
	openURL,
	back,
	filter,
	up, down, left, right,
	top, bottom,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

// bind creates a binding whose help shows the first key.
func bind(description string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], description))
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit:      bind("quit", "q"),
		forceQuit: bind("quit", "ctrl+c", "ctrl+d"),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp(style.Fg(color.Orange)("enter"), style.Fg(color.Orange)("open")),
		),
		openURL:  bind("open artwork", "o"),
		back:     bind("back", "esc"),
		filter:   bind("filter", "/"),
		up:       bind("up", "up", "k"),
		down:     bind("down", "down", "j"),
		left:     bind("previous page", "left", "h"),
		right:    bind("next page", "right", "l"),
		top:      bind("top", "g", "home"),
		bottom:   bind("bottom", "G", "end"),
		showHelp: bind("help", "?"),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case seasonsState:
		return to2(h(k.confirm, k.openURL))
	case episodesState:
		return h(k.confirm, k.back), h(k.confirm, k.filter, k.back)
	case episodeState:
		return to2(h(k.openURL, k.back, k.quit))
	case errorState:
		return to2(h(k.back, k.quit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

func (k *statefulKeymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:             k.up,
		CursorDown:           k.down,
		NextPage:             k.right,
		PrevPage:             k.left,
		GoToStart:            k.top,
		GoToEnd:              k.bottom,
		Filter:               k.filter,
		ClearFilter:          k.back,
		CancelWhileFiltering: k.back,
		AcceptWhileFiltering: k.confirm,
		ShowFullHelp:         k.showHelp,
		CloseFullHelp:        k.showHelp,
		Quit:                 k.quit,
		ForceQuit:            k.forceQuit,
	}
}
