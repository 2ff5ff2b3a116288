package inline

import (
	"encoding/json"
	"io"

	"github.com/tvdbx/tvdbx/details"
	"github.com/tvdbx/tvdbx/model"
)

// Details is the content of a downloaded series bundle.
type Details struct {
	// Series carries its episodes and cast.
	Series  *model.Series   `json:"series"`
	Banners []*model.Banner `json:"banners"`
}

// Output is the envelope every --json command prints.
type Output struct {
	Query     string            `json:"query,omitempty"`
	Mirrors   []*model.Mirror   `json:"mirrors,omitempty"`
	Languages []*model.Language `json:"languages,omitempty"`
	Series    []*model.Series   `json:"series,omitempty"`
	Details   []*Details        `json:"details,omitempty"`
}

// DetailsOf flattens bundle details for output.
func DetailsOf(d *details.SeriesDetails) *Details {
	return &Details{
		Series:  d.Series(),
		Banners: d.Banners(),
	}
}

// Write encodes output to out followed by a newline.
func Write(out io.Writer, output *Output) error {
	data, err := json.Marshal(output)
	if err != nil {
		return err
	}

	_, err = out.Write(append(data, '\n'))
	return err
}
