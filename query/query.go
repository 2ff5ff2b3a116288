// Package query keeps the search history used for suggestions and shell completion.
package query

import (
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/tvdbx/tvdbx/filesystem"
	"github.com/tvdbx/tvdbx/key"
	"github.com/tvdbx/tvdbx/where"
	"golang.org/x/exp/slices"
)

type queryRecord struct {
	Rank     int       `json:"rank"`
	Query    string    `json:"query"`
	LastUsed time.Time `json:"lastUsed"`
}

type history = map[string]*queryRecord

var (
	cacher     *gache.Cache[history]
	cacherOnce sync.Once

	suggestions = make(map[string][]*queryRecord)
)

func store() *gache.Cache[history] {
	cacherOnce.Do(func() {
		cacher = gache.New[history](&gache.Options{
			Path:       where.Queries(),
			FileSystem: &filesystem.GacheFs{},
		})
	})
	return cacher
}

func load() history {
	cached, expired, err := store().Get()
	if expired || err != nil || cached == nil {
		return make(history)
	}
	return cached
}

// Remember records a search query or raises its rank by weight.
func Remember(q string, weight int) error {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	cached := load()
	if record, ok := cached[q]; ok {
		record.Rank += weight
		record.LastUsed = time.Now()
	} else {
		cached[q] = &queryRecord{Rank: weight, Query: q, LastUsed: time.Now()}
	}

	clear(suggestions)
	return store().Set(cached)
}

// Forget removes every recorded query.
func Forget() error {
	clear(suggestions)
	return store().Set(make(history))
}

// Suggest returns the best ranked past query matching q.
func Suggest(q string) mo.Option[string] {
	matches := SuggestMany(q)
	if len(matches) == 0 {
		return mo.None[string]()
	}
	return mo.Some(matches[0])
}

// SuggestMany returns the past queries matching q, highest rank first and
// most recent first among equals.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)
	records, ok := suggestions[q]
	if !ok {
		for _, record := range load() {
			if fuzzy.Match(q, record.Query) {
				records = append(records, record)
			}
		}

		slices.SortFunc(records, func(a, b *queryRecord) int {
			if a.Rank != b.Rank {
				return b.Rank - a.Rank
			}
			return b.LastUsed.Compare(a.LastUsed)
		})

		suggestions[q] = records
	}

	return lo.Map(records, func(r *queryRecord, _ int) string {
		return r.Query
	})
}

var spaces = regexp.MustCompile(`\s+`)

func sanitize(q string) string {
	return spaces.ReplaceAllString(strings.TrimSpace(strings.ToLower(q)), " ")
}
