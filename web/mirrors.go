package web

import (
	"context"
	"fmt"

	"github.com/tvdbx/tvdbx/document"
	"github.com/tvdbx/tvdbx/model"
)

// Mirrors downloads the mirror list from the service root. The first mirror
// serving xml, banners and zips becomes the default mirror.
func (c *Client) Mirrors(ctx context.Context) ([]*model.Mirror, error) {
	url := fmt.Sprintf("%s/api/%s/mirrors.xml", c.rootURL, c.apiKey)

	data, err := c.download(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOffline, err)
	}

	doc, err := document.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("mirrors: %w", err)
	}

	mirrors, err := records(doc.Container(), model.NewMirror)
	if err != nil {
		return nil, err
	}

	for _, mirror := range mirrors {
		if mirror.Complete() {
			c.defaultMirror.CompareAndSwap(nil, mirror)
			break
		}
	}

	return mirrors, nil
}

// DefaultMirror returns the mirror picked by the last Mirrors call, or nil.
func (c *Client) DefaultMirror() *model.Mirror {
	return c.defaultMirror.Load()
}

// mirror returns the default mirror, discovering it first when unknown.
func (c *Client) mirror(ctx context.Context) (*model.Mirror, error) {
	if mirror := c.DefaultMirror(); mirror != nil {
		return mirror, nil
	}

	if _, err := c.Mirrors(ctx); err != nil {
		return nil, err
	}

	return c.DefaultMirror(), nil
}
