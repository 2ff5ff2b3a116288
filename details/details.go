// Package details assembles the records of an extracted series bundle.
package details

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/afero"
	"github.com/tvdbx/tvdbx/constant"
	"github.com/tvdbx/tvdbx/document"
	"github.com/tvdbx/tvdbx/filesystem"
	"github.com/tvdbx/tvdbx/model"
)

var (
	// ErrDirectoryNotFound is returned by New for a directory that does not exist.
	ErrDirectoryNotFound = fmt.Errorf("directory %w", fs.ErrNotExist)

	// ErrEmptyLanguage is returned by New when no language is given.
	ErrEmptyLanguage = fmt.Errorf("%w: language must not be empty", model.ErrInvalidArgument)
)

// SeriesDetails is the content of one extracted bundle: the cast, the
// artwork and the series with its episodes in one language.
//
// Records are built on first access and kept until Close. Accessors are not
// synchronized.
type SeriesDetails struct {
	dir      string
	language string

	actorsDoc   *document.Document
	bannersDoc  *document.Document
	languageDoc *document.Document

	actors  mo.Option[[]*model.Actor]
	banners mo.Option[[]*model.Banner]
	series  mo.Option[*model.Series]
}

// New opens actors.xml, banners.xml and <language>.xml in dir.
// The documents are parsed here; records are not built until asked for.
func New(dir, language string) (*SeriesDetails, error) {
	exists, err := afero.DirExists(filesystem.API(), dir)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %q could not be found", ErrDirectoryNotFound, dir)
	}

	if language == "" {
		return nil, ErrEmptyLanguage
	}

	d := &SeriesDetails{dir: dir, language: language}

	for _, f := range []struct {
		doc  **document.Document
		name string
	}{
		{&d.actorsDoc, constant.ActorsFile},
		{&d.bannersDoc, constant.BannersFile},
		{&d.languageDoc, constant.SeriesFile(language)},
	} {
		doc, err := document.Open(filepath.Join(dir, f.name))
		if err != nil {
			return nil, err
		}
		*f.doc = doc
	}

	return d, nil
}

// Dir returns the bundle directory.
func (d *SeriesDetails) Dir() string {
	return d.dir
}

// Language returns the language abbreviation the series was read in.
func (d *SeriesDetails) Language() string {
	return d.language
}

// Actors returns one actor per <Actor> in actors.xml, in document order.
func (d *SeriesDetails) Actors() []*model.Actor {
	if actors, ok := d.actors.Get(); ok {
		return actors
	}

	actors := collect(d.actorsDoc, "Actor", model.NewActor)
	d.actors = mo.Some(actors)
	return actors
}

// Banners returns one banner per <Banner> in banners.xml, in document order.
func (d *SeriesDetails) Banners() []*model.Banner {
	if banners, ok := d.banners.Get(); ok {
		return banners
	}

	banners := collect(d.bannersDoc, "Banner", model.NewBanner)
	d.banners = mo.Some(banners)
	return banners
}

// Series returns the series of the language document with all its episodes.
// The cast from Actors is attached before the document is read.
func (d *SeriesDetails) Series() *model.Series {
	if series, ok := d.series.Get(); ok {
		return series
	}

	series := model.NewSeries()
	if actors := d.Actors(); len(actors) > 0 {
		series.SetActorCollection(actors)
	}

	for _, node := range children(d.languageDoc) {
		switch {
		case node.Is("Episode"):
			episode := model.NewEpisode()
			if episode.Deserialize(node) == nil {
				_ = series.AddEpisode(episode)
			}
		case node.Is("Series"):
			_ = series.Deserialize(node)
		}
	}

	d.series = mo.Some(series)
	return series
}

// Banner returns the first banner of the given type, if any.
func (d *SeriesDetails) Banner(t model.BannerType) mo.Option[*model.Banner] {
	banner, ok := lo.Find(d.Banners(), func(b *model.Banner) bool {
		return b.Type == t
	})
	if !ok {
		return mo.None[*model.Banner]()
	}
	return mo.Some(banner)
}

// Close releases the documents and every record built from them.
// Accessors called afterwards build empty records.
func (d *SeriesDetails) Close() error {
	if d == nil {
		return errors.New("details: close of nil SeriesDetails")
	}

	d.actorsDoc, d.bannersDoc, d.languageDoc = nil, nil, nil
	d.actors = mo.None[[]*model.Actor]()
	d.banners = mo.None[[]*model.Banner]()
	d.series = mo.None[*model.Series]()
	return nil
}

type deserializer interface {
	Deserialize(node *document.Node) error
}

func children(doc *document.Document) []*document.Node {
	if container := doc.Container(); container != nil {
		return container.Children
	}
	return nil
}

func collect[R deserializer](doc *document.Document, name string, create func() R) []R {
	records := make([]R, 0)
	for _, node := range children(doc) {
		if !node.Is(name) {
			continue
		}

		record := create()
		if record.Deserialize(node) == nil {
			records = append(records, record)
		}
	}
	return records
}
