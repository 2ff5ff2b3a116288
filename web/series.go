package web

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tvdbx/tvdbx/archive"
	"github.com/tvdbx/tvdbx/constant"
	"github.com/tvdbx/tvdbx/details"
	"github.com/tvdbx/tvdbx/filesystem"
	"github.com/tvdbx/tvdbx/log"
	"github.com/tvdbx/tvdbx/model"
)

// FullSeries downloads the bundle of series id in language, stores it as
// loaded.zip in the file directory and extracts it beside it.
// The returned details read the extracted documents.
func (c *Client) FullSeries(ctx context.Context, id int, language string, mirror *model.Mirror) (*details.SeriesDetails, error) {
	if id == 0 || language == "" || mirror == nil {
		return nil, nil
	}

	address := fmt.Sprintf("%s/api/%s/series/%d/all/%s.zip", mirror.Address, c.apiKey, id, language)
	log.Infof("requesting %s", c.redact(address))

	data, err := c.download(ctx, address)
	if err != nil {
		log.Warnf("request %s failed: %s", c.redact(address), err)
		return nil, nil
	}

	if err := filesystem.API().MkdirAll(c.fileDirectory, os.ModePerm); err != nil {
		return nil, err
	}

	if err := filesystem.API().WriteFile(c.BundlePath(), data, 0o644); err != nil {
		return nil, fmt.Errorf("store bundle: %w", err)
	}

	if err := archive.Extract(data, c.ExtractionPath()); err != nil {
		return nil, err
	}

	return details.New(c.ExtractionPath(), language)
}

// BundlePath is where the last downloaded bundle is stored.
func (c *Client) BundlePath() string {
	return filepath.Join(c.fileDirectory, constant.BundleFile)
}

// ExtractionPath is where the last downloaded bundle is extracted.
func (c *Client) ExtractionPath() string {
	return filepath.Join(c.fileDirectory, constant.ExtractionFolder)
}
