package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/mo"
	"github.com/tvdbx/tvdbx/document"
	"github.com/tvdbx/tvdbx/field"
)

// Episode is one <Episode> of a series bundle.
type Episode struct {
	Element

	Number       int `json:"number" jsonschema:"description=Episode number within the aired season."`
	SeasonNumber int `json:"seasonNumber"`

	DVDEpisodeNumber float64 `json:"dvdEpisodeNumber"`
	DVDSeason        int     `json:"dvdSeason"`
	DVDChapter       int     `json:"dvdChapter"`
	DVDDiscID        int     `json:"dvdDiscId"`

	CombinedEpisodeNumber float64 `json:"combinedEpisodeNumber"`
	CombinedSeason        int     `json:"combinedSeason"`

	AbsoluteNumber int `json:"absoluteNumber"`

	AirsAfterSeason   int `json:"airsAfterSeason" jsonschema:"description=For specials: the season this episode airs after."`
	AirsBeforeSeason  int `json:"airsBeforeSeason"`
	AirsBeforeEpisode int `json:"airsBeforeEpisode"`

	Director   string `json:"director,omitempty"`
	Writer     string `json:"writer,omitempty"`
	GuestStars string `json:"guestStars,omitempty"`

	ProductionCode int     `json:"productionCode"`
	EpImageFlag    int     `json:"epImageFlag"`
	Rating         float64 `json:"rating"`
	RatingCount    int     `json:"ratingCount"`

	PictureFilename string `json:"filename,omitempty"`
	ThumbAdded      int    `json:"thumbAdded"`
	ThumbHeight     int    `json:"thumbHeight"`
	ThumbWidth      int    `json:"thumbWidth"`

	LastUpdated int64 `json:"lastUpdated"`
	SeasonID    int   `json:"seasonId"`
	SeriesID    int   `json:"seriesId"`

	TmsExport       bool      `json:"tmsExport"`
	TmsReviewBlurry bool      `json:"tmsReviewBlurry"`
	TmsReviewDark   bool      `json:"tmsReviewDark"`
	TmsReviewUnsure bool      `json:"tmsReviewUnsure"`
	TmsReviewByID   int       `json:"tmsReviewBy"`
	TmsReviewDate   time.Time `json:"tmsReviewDate"`
	TmsReviewLogoID int       `json:"tmsReviewLogo"`
	TmsReviewOther  int       `json:"tmsReviewOther"`
}

var episodeBindings = elementBindings[*Episode]().with(map[string]binding[*Episode]{
	"EpisodeName":   textField("Name", func(e *Episode) *string { return &e.Name }),
	"EpisodeNumber": intField("Number", func(e *Episode) *int { return &e.Number }),
	"SeasonNumber":  intField("SeasonNumber", func(e *Episode) *int { return &e.SeasonNumber }),

	"DVD_episodenumber": floatField("DVDEpisodeNumber", func(e *Episode) *float64 { return &e.DVDEpisodeNumber }),
	"DVD_season":        intField("DVDSeason", func(e *Episode) *int { return &e.DVDSeason }),
	"DVD_chapter":       intField("DVDChapter", func(e *Episode) *int { return &e.DVDChapter }),
	"DVD_discid":        intField("DVDDiscID", func(e *Episode) *int { return &e.DVDDiscID }),

	"Combined_episodenumber": floatField("CombinedEpisodeNumber", func(e *Episode) *float64 { return &e.CombinedEpisodeNumber }),
	"Combined_season":        intField("CombinedSeason", func(e *Episode) *int { return &e.CombinedSeason }),
	"absolute_number":        intField("AbsoluteNumber", func(e *Episode) *int { return &e.AbsoluteNumber }),

	"Director":   textField("Director", func(e *Episode) *string { return &e.Director }),
	"Writer":     listField("Writer", func(e *Episode) *string { return &e.Writer }),
	"GuestStars": listField("GuestStars", func(e *Episode) *string { return &e.GuestStars }),

	"ProductionCode": intField("ProductionCode", func(e *Episode) *int { return &e.ProductionCode }),
	"EpImgFlag":      intField("EpImageFlag", func(e *Episode) *int { return &e.EpImageFlag }),
	"Rating":         floatField("Rating", func(e *Episode) *float64 { return &e.Rating }),
	"RatingCount":    intField("RatingCount", func(e *Episode) *int { return &e.RatingCount }),

	"filename":     textField("PictureFilename", func(e *Episode) *string { return &e.PictureFilename }),
	"thumb_added":  intField("ThumbAdded", func(e *Episode) *int { return &e.ThumbAdded }),
	"thumb_height": intField("ThumbHeight", func(e *Episode) *int { return &e.ThumbHeight }),
	"thumb_width":  intField("ThumbWidth", func(e *Episode) *int { return &e.ThumbWidth }),

	"lastupdated": int64Field("LastUpdated", func(e *Episode) *int64 { return &e.LastUpdated }),
	"seasonid":    intField("SeasonID", func(e *Episode) *int { return &e.SeasonID }),
	"seriesid":    intField("SeriesID", func(e *Episode) *int { return &e.SeriesID }),

	"tms_export":        flagField("TmsExport", func(e *Episode) *bool { return &e.TmsExport }),
	"tms_review_blurry": flagField("TmsReviewBlurry", func(e *Episode) *bool { return &e.TmsReviewBlurry }),
	"tms_review_dark":   flagField("TmsReviewDark", func(e *Episode) *bool { return &e.TmsReviewDark }),
	"tms_review_unsure": flagField("TmsReviewUnsure", func(e *Episode) *bool { return &e.TmsReviewUnsure }),
	"tms_review_by":     intField("TmsReviewByID", func(e *Episode) *int { return &e.TmsReviewByID }),
	"tms_review_date":   dateField("TmsReviewDate", func(e *Episode) *time.Time { return &e.TmsReviewDate }),
	"tms_review_logo":   intField("TmsReviewLogoID", func(e *Episode) *int { return &e.TmsReviewLogoID }),
	"tms_review_other":  intField("TmsReviewOther", func(e *Episode) *int { return &e.TmsReviewOther }),
})

// NewEpisode returns an episode holding the absent sentinels.
func NewEpisode() *Episode {
	return &Episode{
		Element:               Element{ID: -1},
		Number:                -1,
		SeasonNumber:          -1,
		DVDEpisodeNumber:      -1,
		DVDSeason:             -1,
		DVDChapter:            -1,
		DVDDiscID:             -1,
		CombinedEpisodeNumber: -1,
		CombinedSeason:        -1,
		AbsoluteNumber:        -1,
		AirsAfterSeason:       -1,
		AirsBeforeSeason:      -1,
		AirsBeforeEpisode:     -1,
		ProductionCode:        -1,
		EpImageFlag:           -1,
		Rating:                -1,
		RatingCount:           -1,
		ThumbAdded:            -1,
		ThumbHeight:           -1,
		ThumbWidth:            -1,
		LastUpdated:           -1,
		SeasonID:              -1,
		SeriesID:              -1,
		TmsReviewByID:         -1,
		TmsReviewLogoID:       -1,
		TmsReviewOther:        -1,
	}
}

// scheduling names the airing hint elements in the order they are folded.
var scheduling = []string{"airsafter_season", "airsbefore_season", "airsbefore_episode"}

func (e *Episode) hints() []*int {
	return []*int{&e.AirsAfterSeason, &e.AirsBeforeSeason, &e.AirsBeforeEpisode}
}

// Deserialize populates e from an <Episode> node.
//
// The service reports "no scheduling hint" for specials as three zeros in
// some API versions; that case is folded back to the -1 sentinel before
// anything is assigned.
func (e *Episode) Deserialize(node *document.Node) error {
	if err := episodeBindings.deserialize(e, node); err != nil {
		return err
	}

	raw := make([]mo.Option[int], len(scheduling))
	for _, child := range node.Children {
		for i, name := range scheduling {
			if strings.EqualFold(child.Name, name) {
				raw[i] = field.Int(child.Text)
			}
		}
	}

	hints := e.hints()
	folded := true
	for i, value := range raw {
		if value.OrElse(*hints[i]) != 0 {
			folded = false
		}
	}

	names := []string{"AirsAfterSeason", "AirsBeforeSeason", "AirsBeforeEpisode"}
	for i, value := range raw {
		switch {
		case folded:
			assign(&e.Observable, names[i], hints[i], -1)
		case value.IsPresent():
			assign(&e.Observable, names[i], hints[i], value.MustGet())
		}
	}

	return nil
}

// Special reports whether the episode belongs to the specials season.
func (e *Episode) Special() bool {
	return e.SeasonNumber == 0
}

// Code formats the aired numbering as S01E02. Unknown parts print as ??.
func (e *Episode) Code() string {
	part := func(n int) string {
		if n < 0 {
			return "??"
		}
		return fmt.Sprintf("%02d", n)
	}
	return "S" + part(e.SeasonNumber) + "E" + part(e.Number)
}
