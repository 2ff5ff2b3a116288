package cmd

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tvdbx/tvdbx/config"
	"github.com/tvdbx/tvdbx/key"
	"github.com/tvdbx/tvdbx/model"
)

func TestMask(t *testing.T) {
	Convey("Given API keys", t, func() {
		Convey("All but the last four characters are hidden", func() {
			So(mask("0123456789ABCDEF"), ShouldEqual, "************CDEF")
		})

		Convey("Short keys are hidden entirely", func() {
			So(mask("abc"), ShouldEqual, "***")
			So(mask(""), ShouldEqual, "")
		})
	})
}

func TestCapabilities(t *testing.T) {
	Convey("Given a mirror serving xml and zip bundles", t, func() {
		m := model.NewMirror()
		m.SetTypeMask(model.MaskXML | model.MaskZip)

		Convey("Missing capabilities are dashed", func() {
			So(capabilities(m), ShouldEqual, "[xml - zip]")
		})
	})
}

func TestOrdered(t *testing.T) {
	Convey("Given mirrors in discovery order", t, func() {
		mirrors := make([]*model.Mirror, 3)
		for i, id := range []int{1, 3, 2} {
			mirrors[i] = model.NewMirror()
			mirrors[i].ID = id
		}

		Convey("The listing is sorted by descending ID", func() {
			sorted := ordered(mirrors)
			So([]int{sorted[0].ID, sorted[1].ID, sorted[2].ID}, ShouldResemble, []int{3, 2, 1})
		})

		Convey("Discovery order is left untouched", func() {
			ordered(mirrors)
			So(mirrors[0].ID, ShouldEqual, 1)
			So(mirrors[1].ID, ShouldEqual, 3)
		})
	})
}

func TestCastList(t *testing.T) {
	Convey("Given a cast in document order", t, func() {
		cast := make([]*model.Actor, 3)
		for i, name := range []string{"Seamus Dever", "Nathan Fillion", "Stana Katic"} {
			cast[i] = model.NewActor()
			cast[i].Name = name
		}
		cast[0].SortOrder = 2
		cast[1].SortOrder = 3
		cast[1].Role = "Richard Castle"
		cast[2].SortOrder = 3

		listing := castList(cast)

		Convey("Actors are listed by billing order keeping ties in document order", func() {
			fillion := strings.Index(listing, "Nathan Fillion")
			katic := strings.Index(listing, "Stana Katic")
			dever := strings.Index(listing, "Seamus Dever")
			So(fillion, ShouldBeGreaterThanOrEqualTo, 0)
			So(fillion, ShouldBeLessThan, katic)
			So(katic, ShouldBeLessThan, dever)
		})

		Convey("Roles are shown", func() {
			So(listing, ShouldContainSubstring, "Richard Castle")
		})

		Convey("The input is not reordered", func() {
			So(cast[0].Name, ShouldEqual, "Seamus Dever")
		})
	})

	Convey("An empty cast says so", t, func() {
		So(castList(nil), ShouldContainSubstring, "No cast listed")
	})
}

func TestClosestTo(t *testing.T) {
	Convey("Given search results", t, func() {
		series := make([]*model.Series, 3)
		for i, name := range []string{"Castle (2009)", "Castle", "Castlevania"} {
			series[i] = model.NewSeries()
			series[i].Name = name
		}

		Convey("The name closest to the query is picked ignoring case", func() {
			So(closestTo("CASTLE")(series), ShouldEqual, series[1])
		})

		Convey("Nothing is picked from nothing", func() {
			So(closestTo("castle")(nil), ShouldBeNil)
		})
	})
}

func TestParseValue(t *testing.T) {
	Convey("Given registered fields", t, func() {
		Convey("Integers are parsed", func() {
			v, err := parseValue(config.Default[key.SearchLimit], []string{"5"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 5)

			_, err = parseValue(config.Default[key.SearchLimit], []string{"five"})
			So(err, ShouldNotBeNil)
		})

		Convey("Booleans are parsed", func() {
			v, err := parseValue(config.Default[key.CliColored], []string{"false"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, false)
		})

		Convey("Strings join their words", func() {
			v, err := parseValue(config.Default[key.NetworkUserAgent], []string{"my", "agent"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "my agent")
		})

		Convey("A value is required", func() {
			_, err := parseValue(config.Default[key.APILanguage], nil)
			So(err, ShouldNotBeNil)
		})
	})
}
