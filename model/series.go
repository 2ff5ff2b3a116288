package model

import (
	"time"

	"github.com/samber/lo"
	"github.com/tvdbx/tvdbx/document"
	"golang.org/x/exp/slices"
)

// Series is the <Series> record of a bundle or search response, together
// with the episodes it owns and the actors it shares with its SeriesDetails.
type Series struct {
	Element

	SeriesID      int     `json:"seriesId"`
	Network       string  `json:"network,omitempty"`
	NetworkID     int     `json:"networkId"`
	Genre         string  `json:"genre,omitempty"`
	Actors        string  `json:"actors,omitempty" jsonschema:"description=Comma separated cast list."`
	ContentRating string  `json:"contentRating,omitempty"`
	Rating        float64 `json:"rating"`
	RatingCount   int     `json:"ratingCount"`
	Runtime       float64 `json:"runtime" jsonschema:"description=Episode runtime in minutes."`
	Status        string  `json:"status,omitempty"`

	AirsDayOfWeek string `json:"airsDayOfWeek,omitempty"`
	AirsTime      string `json:"airsTime,omitempty"`

	Banner string `json:"banner,omitempty"`
	FanArt string `json:"fanart,omitempty"`
	Poster string `json:"poster,omitempty"`

	Zap2ItID      string    `json:"zap2itId,omitempty"`
	AddedDate     time.Time `json:"added"`
	AddedByUserID int       `json:"addedBy"`
	LastUpdated   int64     `json:"lastUpdated"`
	TmsWanted     bool      `json:"tmsWanted"`

	HasEpisodes     bool       `json:"hasEpisodes"`
	Episodes        []*Episode `json:"episodes,omitempty"`
	ActorCollection []*Actor   `json:"actorCollection,omitempty"`
}

var seriesBindings = elementBindings[*Series]().with(map[string]binding[*Series]{
	"SeriesName":     textField("Name", func(s *Series) *string { return &s.Name }),
	"SeriesID":       intField("SeriesID", func(s *Series) *int { return &s.SeriesID }),
	"Network":        textField("Network", func(s *Series) *string { return &s.Network }),
	"NetworkID":      intField("NetworkID", func(s *Series) *int { return &s.NetworkID }),
	"Genre":          listField("Genre", func(s *Series) *string { return &s.Genre }),
	"Actors":         listField("Actors", func(s *Series) *string { return &s.Actors }),
	"ContentRating":  textField("ContentRating", func(s *Series) *string { return &s.ContentRating }),
	"Rating":         floatField("Rating", func(s *Series) *float64 { return &s.Rating }),
	"RatingCount":    intField("RatingCount", func(s *Series) *int { return &s.RatingCount }),
	"Runtime":        floatField("Runtime", func(s *Series) *float64 { return &s.Runtime }),
	"Status":         textField("Status", func(s *Series) *string { return &s.Status }),
	"Airs_DayOfWeek": textField("AirsDayOfWeek", func(s *Series) *string { return &s.AirsDayOfWeek }),
	"Airs_Time":      textField("AirsTime", func(s *Series) *string { return &s.AirsTime }),
	"banner":         textField("Banner", func(s *Series) *string { return &s.Banner }),
	"fanart":         textField("FanArt", func(s *Series) *string { return &s.FanArt }),
	"poster":         textField("Poster", func(s *Series) *string { return &s.Poster }),
	"zap2it_id":      textField("Zap2ItID", func(s *Series) *string { return &s.Zap2ItID }),
	"added":          dateField("AddedDate", func(s *Series) *time.Time { return &s.AddedDate }),
	"addedBy":        intField("AddedByUserID", func(s *Series) *int { return &s.AddedByUserID }),
	"lastupdated":    int64Field("LastUpdated", func(s *Series) *int64 { return &s.LastUpdated }),
	"tms_wanted":     flagField("TmsWanted", func(s *Series) *bool { return &s.TmsWanted }),
})

// NewSeries returns a series holding the absent sentinels and no episodes.
func NewSeries() *Series {
	return &Series{
		Element:       Element{ID: -1},
		SeriesID:      -1,
		NetworkID:     -1,
		Rating:        -1,
		RatingCount:   -1,
		Runtime:       -1,
		AddedByUserID: -1,
		LastUpdated:   -1,
	}
}

// Deserialize populates s from a <Series> node. Episodes are not part of the
// node; they are added by the aggregator.
func (s *Series) Deserialize(node *document.Node) error {
	if err := seriesBindings.deserialize(s, node); err != nil {
		return err
	}

	assign(&s.Observable, "HasEpisodes", &s.HasEpisodes, len(s.Episodes) > 0)

	return nil
}

// AddEpisode appends e to the owned episodes, keeping insertion order.
func (s *Series) AddEpisode(e *Episode) error {
	if e == nil {
		return ErrNilEpisode
	}

	s.Episodes = append(s.Episodes, e)
	s.notify("Episodes")
	assign(&s.Observable, "HasEpisodes", &s.HasEpisodes, true)

	return nil
}

// SetActorCollection shares actors with the series. The slice is not copied.
func (s *Series) SetActorCollection(actors []*Actor) {
	if slices.Equal(s.ActorCollection, actors) {
		return
	}
	s.ActorCollection = actors
	s.notify("ActorCollection")
}

// Seasons returns the distinct season numbers in ascending order.
func (s *Series) Seasons() []int {
	seasons := lo.Uniq(lo.Map(s.Episodes, func(e *Episode, _ int) int {
		return e.SeasonNumber
	}))
	slices.Sort(seasons)
	return seasons
}

// Season returns the episodes of one season in document order.
func (s *Series) Season(number int) []*Episode {
	return lo.Filter(s.Episodes, func(e *Episode, _ int) bool {
		return e.SeasonNumber == number
	})
}

// GenreList splits the normalized genre text.
func (s *Series) GenreList() []string {
	return splitList(s.Genre)
}

// ActorList splits the normalized actor text.
func (s *Series) ActorList() []string {
	return splitList(s.Actors)
}
