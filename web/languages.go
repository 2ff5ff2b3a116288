package web

import (
	"context"
	"fmt"

	"github.com/tvdbx/tvdbx/model"
)

// Languages lists the languages served by mirror, sorted by name.
func (c *Client) Languages(ctx context.Context, mirror *model.Mirror) ([]*model.Language, error) {
	if mirror == nil {
		return nil, nil
	}

	container, err := c.fetch(ctx, fmt.Sprintf("%s/api/%s/languages.xml", mirror.Address, c.apiKey))
	if err != nil || container == nil {
		return nil, err
	}

	languages, err := records(container, model.NewLanguage)
	if err != nil {
		return nil, err
	}

	model.SortLanguages(languages)
	return languages, nil
}

// DefaultLanguages lists the languages of the default mirror, discovering
// mirrors first when needed.
func (c *Client) DefaultLanguages(ctx context.Context) ([]*model.Language, error) {
	mirror, err := c.mirror(ctx)
	if err != nil {
		return nil, err
	}

	return c.Languages(ctx, mirror)
}
