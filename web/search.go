package web

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/lo"
	"github.com/tvdbx/tvdbx/model"
)

// SeriesByName searches series by name, keeping only those in language.
func (c *Client) SeriesByName(ctx context.Context, name, language string, mirror *model.Mirror) ([]*model.Series, error) {
	if name == "" || language == "" || mirror == nil {
		return nil, nil
	}

	query := url.Values{}
	query.Set("seriesname", name)
	query.Set("language", language)

	series, err := c.search(ctx, fmt.Sprintf("%s/api/GetSeries.php?%s", mirror.Address, query.Encode()))
	if err != nil || series == nil {
		return nil, err
	}

	return lo.Filter(series, func(s *model.Series, _ int) bool {
		return strings.EqualFold(s.Language, language)
	}), nil
}

// SeriesByRemoteID looks a series up by its IMDb or zap2it id. Exactly one
// of the two must be given.
func (c *Client) SeriesByRemoteID(ctx context.Context, imdbID, zap2itID, language string, mirror *model.Mirror) ([]*model.Series, error) {
	if (imdbID == "") == (zap2itID == "") || language == "" || mirror == nil {
		return nil, nil
	}

	address := fmt.Sprintf(
		"%s/api/GetSeriesByRemoteID.php?imdbid=%s&language=%s&zap2it=%s",
		mirror.Address,
		url.QueryEscape(imdbID),
		url.QueryEscape(language),
		url.QueryEscape(zap2itID),
	)

	return c.search(ctx, address)
}

func (c *Client) search(ctx context.Context, address string) ([]*model.Series, error) {
	container, err := c.fetch(ctx, address)
	if err != nil || container == nil {
		return nil, err
	}

	return records(container, model.NewSeries)
}
