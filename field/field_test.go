package field

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNumbers(t *testing.T) {
	Convey("Integers", t, func() {
		So(Int("42").MustGet(), ShouldEqual, 42)
		So(Int(" -1 ").MustGet(), ShouldEqual, -1)
		So(Int("+7").MustGet(), ShouldEqual, 7)
		So(Int("").IsPresent(), ShouldBeFalse)
		So(Int("3X5801").IsPresent(), ShouldBeFalse)
		So(Int("1.5").IsPresent(), ShouldBeFalse)
		So(Int64("1278363452").MustGet(), ShouldEqual, int64(1278363452))
	})

	Convey("Decimals ignore the host locale", t, func() {
		So(Float("7.8").MustGet(), ShouldEqual, 7.8)
		So(Float("1,234.5").MustGet(), ShouldEqual, 1234.5)
		So(Float("60").MustGet(), ShouldEqual, 60.0)
		So(Float(".5").MustGet(), ShouldEqual, 0.5)
		So(Float("7,8").MustGet(), ShouldEqual, 78.0)

		for _, bad := range []string{"", "NaN", "Inf", "1e3", "abc", "1.2.3"} {
			So(Float(bad).IsPresent(), ShouldBeFalse)
		}
	})
}

func TestText(t *testing.T) {
	Convey("Only non-empty text applies", t, func() {
		So(Text("Castle").MustGet(), ShouldEqual, "Castle")
		So(Text("").IsPresent(), ShouldBeFalse)
	})
}

func TestDate(t *testing.T) {
	Convey("Dates", t, func() {
		Convey("A calendar date is midnight UTC", func() {
			So(Date("2006-05-21").MustGet().Equal(time.Date(2006, 5, 21, 0, 0, 0, 0, time.UTC)), ShouldBeTrue)
		})

		Convey("A timestamp keeps its time of day", func() {
			So(Date("2009-03-09 04:05:06").MustGet().Equal(time.Date(2009, 3, 9, 4, 5, 6, 0, time.UTC)), ShouldBeTrue)
		})

		Convey("Empty and garbage text do not apply", func() {
			So(Date("").IsPresent(), ShouldBeFalse)
			So(Date("   ").IsPresent(), ShouldBeFalse)
			So(Date("not a date").IsPresent(), ShouldBeFalse)
		})
	})
}

func TestFlags(t *testing.T) {
	Convey("Integer flags", t, func() {
		So(Flag("1"), ShouldBeTrue)
		So(Flag("5"), ShouldBeTrue)
		So(Flag("0"), ShouldBeFalse)
		So(Flag("-1"), ShouldBeFalse)
		So(Flag(""), ShouldBeFalse)
		So(Flag("yes"), ShouldBeFalse)
	})

	Convey("Boolean literals", t, func() {
		So(Bool("true").MustGet(), ShouldBeTrue)
		So(Bool(" FALSE ").MustGet(), ShouldBeFalse)
		So(Bool("1").IsPresent(), ShouldBeFalse)
	})
}

func TestList(t *testing.T) {
	Convey("Pipe lists", t, func() {
		So(List("A|B|C"), ShouldEqual, "A, B, C")
		So(List("|A|B|"), ShouldEqual, "A, B")
		So(List("|Drama|"), ShouldEqual, "Drama")
		So(List("A| B |"), ShouldEqual, "A, B")
		So(List("Nathan Fillion"), ShouldEqual, "Nathan Fillion")
		So(List(""), ShouldEqual, "")
		So(List("|"), ShouldEqual, "")
	})

	Convey("Empty entries between separators are dropped", t, func() {
		So(List("A||B"), ShouldEqual, "A, B")
		So(List("|A| |B|"), ShouldEqual, "A, B")
	})
}
