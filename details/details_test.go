package details

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tvdbx/tvdbx/filesystem"
	"github.com/tvdbx/tvdbx/model"
)

const bundle = "/bundles/castle"

func init() {
	filesystem.SetMemMapFs()
}

// install copies the fixture bundle into the in-memory filesystem.
func install() {
	filesystem.SetMemMapFs()
	lo.Must0(filesystem.API().MkdirAll(bundle, os.ModePerm))
	entries := lo.Must(os.ReadDir(filepath.Join("testdata", "castle")))
	for _, entry := range entries {
		data := lo.Must(os.ReadFile(filepath.Join("testdata", "castle", entry.Name())))
		lo.Must0(filesystem.API().WriteFile(filepath.Join(bundle, entry.Name()), data, os.ModePerm))
	}
}

func TestNew(t *testing.T) {
	Convey("Given an extracted bundle", t, func() {
		install()

		Convey("A missing directory is reported", func() {
			_, err := New("/some/directory", "en")
			So(errors.Is(err, ErrDirectoryNotFound), ShouldBeTrue)
			So(errors.Is(err, fs.ErrNotExist), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, `"/some/directory" could not be found`)
		})

		Convey("An empty language is rejected", func() {
			_, err := New(bundle, "")
			So(err, ShouldEqual, ErrEmptyLanguage)
			So(errors.Is(err, model.ErrInvalidArgument), ShouldBeTrue)
		})

		Convey("A language without a document fails", func() {
			_, err := New(bundle, "de")
			So(errors.Is(err, fs.ErrNotExist), ShouldBeTrue)
		})

		Convey("A malformed document fails", func() {
			lo.Must0(filesystem.API().WriteFile(filepath.Join(bundle, "fr.xml"), []byte("<Data><Series>"), os.ModePerm))
			_, err := New(bundle, "fr")
			So(err, ShouldNotBeNil)
		})

		Convey("A complete bundle opens", func() {
			details, err := New(bundle, "en")
			So(err, ShouldBeNil)
			So(details.Language(), ShouldEqual, "en")
			So(details.Dir(), ShouldEqual, bundle)
			So(details.Actors(), ShouldNotBeNil)
			So(details.Banners(), ShouldNotBeNil)
			So(details.Series(), ShouldNotBeNil)
		})
	})
}

func TestRecords(t *testing.T) {
	Convey("Given the Castle bundle", t, func() {
		install()
		details := lo.Must(New(bundle, "en"))

		Convey("Every actor is read", func() {
			actors := details.Actors()
			So(actors, ShouldHaveLength, 9)
			So(actors[0].Name, ShouldEqual, "Nathan Fillion")
			So(actors[0].Role, ShouldEqual, "Richard Castle")
		})

		Convey("Every banner is read", func() {
			banners := details.Banners()
			So(banners, ShouldHaveLength, 125)
			So(banners[0].Type, ShouldEqual, model.BannerFanart)
			So(banners[0].Rating, ShouldEqual, -1.0)
			So(banners[124].Type, ShouldEqual, model.BannerSeries)

			poster, ok := details.Banner(model.BannerPoster).Get()
			So(ok, ShouldBeTrue)
			So(poster.BannerPath, ShouldEqual, "posters/83462-1.jpg")
			So(details.Banner(model.BannerUnknown).IsAbsent(), ShouldBeTrue)
		})

		Convey("The series is read with its episodes", func() {
			series := details.Series()
			So(series.ID, ShouldEqual, 83462)
			So(series.Name, ShouldEqual, "Castle (2009)")
			So(series.Episodes, ShouldHaveLength, 121)
			So(series.HasEpisodes, ShouldBeTrue)
			So(series.Seasons(), ShouldResemble, []int{0, 1, 2, 3, 4, 5, 6})
			So(series.Season(2), ShouldHaveLength, 24)
			So(series.Episodes[0].Special(), ShouldBeTrue)
			So(series.Episodes[5].Code(), ShouldEqual, "S01E01")
			So(series.Episodes[5].GuestStars, ShouldEqual, "Guest One, Guest Two")
		})

		Convey("The cast is shared with the series", func() {
			series := details.Series()
			So(series.ActorCollection, ShouldHaveLength, 9)
			So(series.ActorCollection[0], ShouldPointTo, details.Actors()[0])
		})

		Convey("Records are built once", func() {
			So(details.Series(), ShouldPointTo, details.Series())
			So(details.Actors()[0], ShouldPointTo, details.Actors()[0])
			So(details.Banners()[0], ShouldPointTo, details.Banners()[0])
		})

		Convey("Reading records does not touch the disk again", func() {
			_ = details.Series()
			lo.Must0(filesystem.API().RemoveAll(bundle))
			So(details.Banners(), ShouldHaveLength, 125)
		})
	})
}

func TestClose(t *testing.T) {
	Convey("Given opened details", t, func() {
		install()
		details := lo.Must(New(bundle, "en"))
		So(details.Actors(), ShouldHaveLength, 9)

		Convey("Close drops every record", func() {
			So(details.Close(), ShouldBeNil)
			So(details.Actors(), ShouldBeEmpty)
			So(details.Banners(), ShouldBeEmpty)
			So(details.Series().Episodes, ShouldBeEmpty)
		})

		Convey("Closing nil details fails", func() {
			var nothing *SeriesDetails
			So(nothing.Close(), ShouldNotBeNil)
		})
	})
}
