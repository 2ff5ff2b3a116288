package tui

import (
	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/tvdbx/tvdbx/key"
	"github.com/tvdbx/tvdbx/model"
	"github.com/tvdbx/tvdbx/open"
	"github.com/tvdbx/tvdbx/style"
	"github.com/tvdbx/tvdbx/util"
)

type statefulBubble struct {
	state         state
	statesHistory []state

	keymap *statefulKeymap

	seasonsC  list.Model
	episodesC list.Model
	helpC     help.Model

	series          *model.Series
	selectedEpisode *model.Episode
	lastError       error

	// artwork opens a banner path, replaced in tests.
	artwork func(path string) error

	width, height int
	wrapWidth     int

	options *Options
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	b.statesHistory = append(b.statesHistory, b.state)
	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if len(b.statesHistory) > 0 {
		last := len(b.statesHistory) - 1
		s := b.statesHistory[last]
		b.statesHistory = b.statesHistory[:last]
		b.setState(s)
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	b.seasonsC.SetSize(listWidth, listHeight)
	b.seasonsC.Help.Width = listWidth

	b.episodesC.SetSize(listWidth, listHeight)
	b.episodesC.Help.Width = listWidth

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

func newBubble(options *Options) *statefulBubble {
	bubble := statefulBubble{
		keymap:    newStatefulKeymap(),
		series:    options.Details.Series(),
		wrapWidth: viper.GetInt(key.CliWrapWidth),
		options:   options,
		artwork: func(path string) error {
			return open.Artwork(nil, path)
		},
	}

	makeList := func(title string, titleColor lipgloss.Color) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(style.Text)
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.NoItems = paddingStyle
		listC.Styles.Title = lipgloss.NewStyle().Foreground(style.Surface).Background(titleColor).Padding(0, 1)

		return listC
	}

	bubble.helpC = help.New()

	bubble.seasonsC = makeList(bubble.series.Name, style.Mauve)
	bubble.seasonsC.SetStatusBarItemName("season", "seasons")
	bubble.seasonsC.SetItems(lo.Map(bubble.series.Seasons(), func(n int, _ int) list.Item {
		return &listItem{internal: &season{number: n, episodes: bubble.series.Season(n)}}
	}))

	bubble.episodesC = makeList("Episodes", style.Peach)
	bubble.episodesC.SetStatusBarItemName("episode", "episodes")

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.setState(seasonsState)

	return &bubble
}

func (b *statefulBubble) selectSeason(s *season) {
	b.episodesC.Title = (&listItem{internal: s}).Title()
	b.episodesC.ResetSelected()
	b.episodesC.ResetFilter()
	b.episodesC.SetItems(lo.Map(s.episodes, func(e *model.Episode, _ int) list.Item {
		return &listItem{internal: e}
	}))
	b.newState(episodesState)
}

func (b *statefulBubble) selectEpisode(e *model.Episode) {
	b.selectedEpisode = e
	b.newState(episodeState)
}

// openArtwork opens the poster of the series or, on the episode screen, the
// episode thumbnail.
func (b *statefulBubble) openArtwork() {
	path := b.series.Poster
	if b.state == episodeState && b.selectedEpisode != nil && b.selectedEpisode.PictureFilename != "" {
		path = b.selectedEpisode.PictureFilename
	}

	if path == "" {
		return
	}

	if err := b.artwork(path); err != nil {
		b.raiseError(err)
	}
}
