package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tvdbx/tvdbx/details"
	"github.com/tvdbx/tvdbx/filesystem"
)

const bundle = "/bundles/castle"

func install() *details.SeriesDetails {
	filesystem.SetMemMapFs()
	fixtures := filepath.Join("..", "details", "testdata", "castle")
	lo.Must0(filesystem.API().MkdirAll(bundle, os.ModePerm))
	for _, entry := range lo.Must(os.ReadDir(fixtures)) {
		data := lo.Must(os.ReadFile(filepath.Join(fixtures, entry.Name())))
		lo.Must0(filesystem.API().WriteFile(filepath.Join(bundle, entry.Name()), data, os.ModePerm))
	}
	return lo.Must(details.New(bundle, "en"))
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	o     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}}
)

func TestRun(t *testing.T) {
	Convey("Browsing nothing fails", t, func() {
		So(Run(&Options{}), ShouldNotBeNil)
	})
}

func TestBubble(t *testing.T) {
	Convey("Given a browser over extracted details", t, func() {
		d := install()
		b := newBubble(&Options{Details: d})

		var opened []string
		b.artwork = func(path string) error {
			opened = append(opened, path)
			return nil
		}

		Convey("It starts on the seasons", func() {
			So(b.state, ShouldEqual, seasonsState)
			So(b.seasonsC.Items(), ShouldHaveLength, 7)
			So(b.seasonsC.SelectedItem().(*listItem).Title(), ShouldEqual, "Specials")
		})

		Convey("Confirming a season lists its episodes", func() {
			b.Update(enter)
			So(b.state, ShouldEqual, episodesState)
			So(b.episodesC.Items(), ShouldHaveLength, 5)
			So(b.episodesC.Title, ShouldEqual, "Specials")

			Convey("Confirming an episode shows it", func() {
				b.Update(enter)
				So(b.state, ShouldEqual, episodeState)
				So(b.selectedEpisode, ShouldEqual, d.Series().Season(0)[0])
				So(b.View(), ShouldContainSubstring, b.selectedEpisode.Name)

				Convey("Its thumbnail can be opened", func() {
					b.Update(o)
					So(opened, ShouldResemble, []string{b.selectedEpisode.PictureFilename})
				})

				Convey("Going back returns to the seasons", func() {
					b.Update(esc)
					So(b.state, ShouldEqual, episodesState)
					b.Update(esc)
					So(b.state, ShouldEqual, seasonsState)
				})
			})
		})

		Convey("The series poster can be opened", func() {
			b.Update(o)
			So(opened, ShouldResemble, []string{"posters/83462-12.jpg"})
		})

		Convey("A failure to open artwork is shown", func() {
			b.artwork = func(string) error { return errors.New("no browser") }
			b.Update(o)
			So(b.state, ShouldEqual, errorState)
			So(b.View(), ShouldContainSubstring, "no browser")

			b.Update(esc)
			So(b.state, ShouldEqual, seasonsState)
		})
	})
}
