// Package inline implements the non-interactive, scriptable search mode.
package inline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/tvdbx/tvdbx/log"
	"github.com/tvdbx/tvdbx/model"
)

// Run searches for options.Query, picks series and prints them.
// With Full set, the bundle of each picked series is downloaded and its
// episodes are listed.
func Run(ctx context.Context, options *Options) error {
	if options.Client == nil {
		return errors.New("no client configured")
	}
	if options.Out == nil {
		options.Out = os.Stdout
	}

	series, err := options.Client.SeriesByName(ctx, options.Query, options.Language, options.Mirror)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	selected := series
	if picker, ok := options.SeriesPicker.Get(); ok {
		selected = nil
		if choice := picker(series); choice != nil {
			selected = []*model.Series{choice}
		}
	}

	if options.Limit > 0 && len(selected) > options.Limit {
		selected = selected[:options.Limit]
	}

	output := &Output{Query: options.Query, Series: selected}
	if output.Series == nil {
		output.Series = []*model.Series{}
	}

	if options.Full {
		for _, s := range selected {
			d, err := prepareSeries(ctx, s, options)
			if err != nil {
				return err
			}
			if d != nil {
				output.Details = append(output.Details, d)
			}
		}
	}

	if options.Json {
		return Write(options.Out, output)
	}

	if !options.Full {
		for _, s := range selected {
			fmt.Fprintf(options.Out, "%d\t%s\n", s.ID, s.Name)
		}
		return nil
	}

	for _, d := range output.Details {
		for _, e := range d.Series.Episodes {
			fmt.Fprintf(options.Out, "%s\t%s\n", e.Code(), e.Name)
		}
	}

	return nil
}

func prepareSeries(ctx context.Context, series *model.Series, options *Options) (*Details, error) {
	bundle, err := options.Client.FullSeries(ctx, series.ID, options.Language, options.Mirror)
	if err != nil {
		return nil, err
	}
	if bundle == nil {
		log.Warnf("no bundle for series %d", series.ID)
		return nil, nil
	}

	d := DetailsOf(bundle)

	if filter, ok := options.EpisodesFilter.Get(); ok {
		episodes, err := filter(d.Series.Episodes)
		if err != nil {
			return nil, err
		}
		d.Series.Episodes = episodes
	}

	return d, nil
}
