package model

import (
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/tvdbx/tvdbx/document"
)

// BannerType is the kind of artwork a banner describes.
type BannerType int

const (
	BannerFanart BannerType = iota
	BannerPoster
	BannerSeason
	BannerSeries
	BannerUnknown
)

var bannerTypeNames = map[BannerType]string{
	BannerFanart:  "fanart",
	BannerPoster:  "poster",
	BannerSeason:  "season",
	BannerSeries:  "series",
	BannerUnknown: "unknown",
}

// ParseBannerType matches text against the known types ignoring case.
// Anything else is BannerUnknown.
func ParseBannerType(text string) BannerType {
	text = strings.TrimSpace(text)
	for t, name := range bannerTypeNames {
		if strings.EqualFold(name, text) {
			return t
		}
	}
	return BannerUnknown
}

func (t BannerType) String() string {
	if name, ok := bannerTypeNames[t]; ok {
		return name
	}
	return bannerTypeNames[BannerUnknown]
}

// MarshalText implements encoding.TextMarshaler.
func (t BannerType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *BannerType) UnmarshalText(text []byte) error {
	*t = ParseBannerType(string(text))
	return nil
}

// JSONSchema describes the textual form of BannerType.
func (BannerType) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "string",
		Enum: []any{"fanart", "poster", "season", "series", "unknown"},
	}
}

// Banner is an artwork descriptor from banners.xml.
type Banner struct {
	Observable `json:"-"`

	ID            int        `json:"id"`
	BannerPath    string     `json:"path" jsonschema:"description=Path relative to <mirror>/banners/."`
	Type          BannerType `json:"type"`
	Dimension     string     `json:"dimension,omitempty" jsonschema:"description=Resolution for fanart and posters or the subtype for season and series banners."`
	Color         string     `json:"colors,omitempty" jsonschema:"description=Artist picked colors as |r,g,b|r,g,b|r,g,b|."`
	Language      string     `json:"language,omitempty"`
	Rating        float64    `json:"rating"`
	RatingCount   int        `json:"ratingCount"`
	SeriesName    bool       `json:"seriesName" jsonschema:"description=Whether the series name is part of the artwork."`
	ThumbnailPath string     `json:"thumbnail,omitempty"`
	VignettePath  string     `json:"vignette,omitempty"`
	Season        int        `json:"season"`
}

var bannerBindings = newBindings(map[string]binding[*Banner]{
	"id":         intField("ID", func(b *Banner) *int { return &b.ID }),
	"BannerPath": textField("BannerPath", func(b *Banner) *string { return &b.BannerPath }),
	"BannerType": func(b *Banner, text string) {
		assign(&b.Observable, "Type", &b.Type, ParseBannerType(text))
	},
	"BannerType2":   textField("Dimension", func(b *Banner) *string { return &b.Dimension }),
	"Colors":        textField("Color", func(b *Banner) *string { return &b.Color }),
	"Language":      textField("Language", func(b *Banner) *string { return &b.Language }),
	"Rating":        floatField("Rating", func(b *Banner) *float64 { return &b.Rating }),
	"RatingCount":   intField("RatingCount", func(b *Banner) *int { return &b.RatingCount }),
	"SeriesName":    boolField("SeriesName", func(b *Banner) *bool { return &b.SeriesName }),
	"ThumbnailPath": textField("ThumbnailPath", func(b *Banner) *string { return &b.ThumbnailPath }),
	"VignettePath":  textField("VignettePath", func(b *Banner) *string { return &b.VignettePath }),
	"Season":        intField("Season", func(b *Banner) *int { return &b.Season }),
})

// NewBanner returns a banner holding the absent sentinels.
func NewBanner() *Banner {
	return &Banner{
		ID:          -1,
		Type:        BannerUnknown,
		Rating:      -1,
		RatingCount: -1,
		Season:      -1,
	}
}

// Deserialize populates b from a <Banner> node.
func (b *Banner) Deserialize(node *document.Node) error {
	return bannerBindings.deserialize(b, node)
}
