package model

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

const castle = `<Series>
  <id>83462</id>
  <Actors>|Nathan Fillion|Stana Katic|Molly C. Quinn|Jon Huertas|Seamus Dever|Susan Sullivan|Tamala Jones|Penny Johnson|Ruben Santiago-Hudson|</Actors>
  <Airs_DayOfWeek>Monday</Airs_DayOfWeek>
  <Airs_Time>10:00 PM</Airs_Time>
  <ContentRating>TV-PG</ContentRating>
  <FirstAired>2009-03-09</FirstAired>
  <Genre>|Comedy|Crime|Drama|</Genre>
  <IMDB_ID>tt1219024</IMDB_ID>
  <Language>en</Language>
  <Network>ABC</Network>
  <NetworkID></NetworkID>
  <Overview>After a serial killer imitates the plots of his novels, successful mystery novelist Richard "Rick" Castle receives permission from the Mayor of New York City to tag along with an NYPD homicide investigation team for research purposes.</Overview>
  <Rating>9.0</Rating>
  <RatingCount>338</RatingCount>
  <Runtime>60</Runtime>
  <SeriesID>70667</SeriesID>
  <SeriesName>Castle (2009)</SeriesName>
  <Status>Continuing</Status>
  <added>2008-10-21 14:22:36</added>
  <addedBy>35021</addedBy>
  <banner>graphical/83462-g4.jpg</banner>
  <fanart>fanart/original/83462-18.jpg</fanart>
  <lastupdated>1315627810</lastupdated>
  <poster>posters/83462-12.jpg</poster>
  <tms_wanted>1</tms_wanted>
  <zap2it_id>EP01085673</zap2it_id>
</Series>`

func episodeOf(season, number int) *Episode {
	e := NewEpisode()
	e.SeasonNumber = season
	e.Number = number
	return e
}

func TestSeries(t *testing.T) {
	Convey("Given the Castle series record", t, func() {
		series := NewSeries()
		So(series.Deserialize(parse(castle)), ShouldBeNil)

		Convey("Identity fields are mapped", func() {
			So(series.ID, ShouldEqual, 83462)
			So(series.Name, ShouldEqual, "Castle (2009)")
			So(series.SeriesID, ShouldEqual, 70667)
			So(series.ImdbID, ShouldEqual, "tt1219024")
			So(series.Zap2ItID, ShouldEqual, "EP01085673")
			So(series.Language, ShouldEqual, "en")
		})

		Convey("Broadcast fields are mapped", func() {
			So(series.Network, ShouldEqual, "ABC")
			So(series.NetworkID, ShouldEqual, -1)
			So(series.AirsDayOfWeek, ShouldEqual, "Monday")
			So(series.AirsTime, ShouldEqual, "10:00 PM")
			So(series.ContentRating, ShouldEqual, "TV-PG")
			So(series.Status, ShouldEqual, "Continuing")
			So(series.Runtime, ShouldEqual, 60.0)
			So(series.Rating, ShouldEqual, 9.0)
			So(series.RatingCount, ShouldEqual, 338)
			So(series.FirstAired.Equal(time.Date(2009, 3, 9, 0, 0, 0, 0, time.UTC)), ShouldBeTrue)
			So(series.Aired(), ShouldBeTrue)
		})

		Convey("Bookkeeping fields are mapped", func() {
			So(series.AddedDate.Equal(time.Date(2008, 10, 21, 14, 22, 36, 0, time.UTC)), ShouldBeTrue)
			So(series.AddedByUserID, ShouldEqual, 35021)
			So(series.LastUpdated, ShouldEqual, int64(1315627810))
			So(series.TmsWanted, ShouldBeTrue)
			So(series.Banner, ShouldEqual, "graphical/83462-g4.jpg")
			So(series.FanArt, ShouldEqual, "fanart/original/83462-18.jpg")
			So(series.Poster, ShouldEqual, "posters/83462-12.jpg")
		})

		Convey("Pipe lists are normalized", func() {
			So(series.Genre, ShouldEqual, "Comedy, Crime, Drama")
			So(series.GenreList(), ShouldResemble, []string{"Comedy", "Crime", "Drama"})
			So(series.ActorList(), ShouldHaveLength, 9)
			So(series.ActorList()[0], ShouldEqual, "Nathan Fillion")
		})

		Convey("A series without episodes reports none", func() {
			So(series.HasEpisodes, ShouldBeFalse)
			So(series.Seasons(), ShouldBeEmpty)
		})
	})

	Convey("A nil node is rejected", t, func() {
		So(NewSeries().Deserialize(nil), ShouldEqual, ErrNilNode)
	})
}

func TestSeriesEpisodes(t *testing.T) {
	Convey("Given a series", t, func() {
		series := NewSeries()
		changes := watch(&series.Observable)

		Convey("Adding nil fails and leaves the series untouched", func() {
			So(series.AddEpisode(nil), ShouldEqual, ErrNilEpisode)
			So(series.Episodes, ShouldBeEmpty)
			So(changes.fields, ShouldBeEmpty)
		})

		Convey("Adding episodes keeps insertion order", func() {
			for _, e := range []*Episode{episodeOf(2, 1), episodeOf(1, 1), episodeOf(1, 2), episodeOf(0, 1)} {
				So(series.AddEpisode(e), ShouldBeNil)
			}

			So(series.Episodes, ShouldHaveLength, 4)
			So(series.Episodes[0].Code(), ShouldEqual, "S02E01")
			So(series.HasEpisodes, ShouldBeTrue)
			So(changes.fields[:2], ShouldResemble, []string{"Episodes", "HasEpisodes"})

			Convey("Seasons are distinct and ascending", func() {
				So(series.Seasons(), ShouldResemble, []int{0, 1, 2})
			})

			Convey("A season keeps document order", func() {
				season := series.Season(1)
				So(season, ShouldHaveLength, 2)
				So(season[0].Number, ShouldEqual, 1)
				So(season[1].Number, ShouldEqual, 2)
				So(series.Season(7), ShouldBeEmpty)
			})

			Convey("Deserializing keeps HasEpisodes in sync", func() {
				So(series.Deserialize(parse(castle)), ShouldBeNil)
				So(series.HasEpisodes, ShouldBeTrue)
			})
		})
	})
}

func TestSeriesActorCollection(t *testing.T) {
	Convey("Given a series and a cast", t, func() {
		series := NewSeries()
		changes := watch(&series.Observable)
		cast := []*Actor{NewActor(), NewActor()}

		series.SetActorCollection(cast)
		So(series.ActorCollection, ShouldHaveLength, 2)
		So(series.ActorCollection[0], ShouldPointTo, cast[0])
		So(changes.fields, ShouldResemble, []string{"ActorCollection"})

		Convey("Setting the same cast again is silent", func() {
			series.SetActorCollection(cast)
			So(changes.fields, ShouldHaveLength, 1)
		})
	})
}

func TestSeriesIdempotence(t *testing.T) {
	Convey("Deserializing the same record twice notifies once", t, func() {
		series := NewSeries()
		So(series.Deserialize(parse(castle)), ShouldBeNil)

		changes := watch(&series.Observable)
		So(series.Deserialize(parse(castle)), ShouldBeNil)
		So(changes.fields, ShouldBeEmpty)
	})

	Convey("Given a series that owns episodes before it is deserialized", t, func() {
		series := NewSeries()
		first, second := NewEpisode(), NewEpisode()
		So(first.Deserialize(parse(pilot)), ShouldBeNil)
		So(second.Deserialize(parse(pilot)), ShouldBeNil)
		So(series.AddEpisode(first), ShouldBeNil)
		So(series.AddEpisode(second), ShouldBeNil)
		So(series.Deserialize(parse(castle)), ShouldBeNil)

		Convey("A second pass over the pipe lists is silent", func() {
			changes := watch(&series.Observable)
			So(series.Deserialize(parse(castle)), ShouldBeNil)
			So(changes.fields, ShouldBeEmpty)
			So(series.HasEpisodes, ShouldBeTrue)
			So(series.Episodes, ShouldHaveLength, 2)
			So(series.Genre, ShouldEqual, "Comedy, Crime, Drama")
		})
	})
}
