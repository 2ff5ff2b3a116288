package inline

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tvdbx/tvdbx/model"
	"github.com/tvdbx/tvdbx/util"
	"github.com/tvdbx/tvdbx/web"
)

type (
	SeriesPicker   func([]*model.Series) *model.Series
	EpisodesFilter func([]*model.Episode) ([]*model.Episode, error)
)

type Options struct {
	Out      io.Writer
	Client   *web.Client
	Mirror   *model.Mirror
	Language string
	Json     bool
	Query    string
	// Limit caps the number of listed series. Zero lists all of them.
	Limit int
	// Full downloads the bundle of every picked series.
	Full           bool
	SeriesPicker   mo.Option[SeriesPicker]
	EpisodesFilter mo.Option[EpisodesFilter]
}

func ParseSeriesPicker(kind, value string) (SeriesPicker, error) {
	switch kind {
	case "first":
		return func(series []*model.Series) *model.Series {
			if len(series) == 0 {
				return nil
			}
			return series[0]
		}, nil
	case "last":
		return func(series []*model.Series) *model.Series {
			if len(series) == 0 {
				return nil
			}
			return series[len(series)-1]
		}, nil
	case "exact":
		return func(series []*model.Series) *model.Series {
			for _, s := range series {
				if strings.EqualFold(s.Name, value) {
					return s
				}
			}
			return nil
		}, nil
	default:
		idx, err := strconv.ParseUint(kind, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("unknown series picker: %s", kind)
		}
		return func(series []*model.Series) *model.Series {
			if len(series) == 0 {
				return nil
			}
			return series[util.Min(idx, uint64(len(series)-1))]
		}, nil
	}
}

var episodeCode = regexp.MustCompile(`(?i)^s(?P<season>\d+)(e(?P<episode>\d+))?$`)

// ParseEpisodesFilter parses an episode selector:
// "first", "last", "all", "1-5", "@text@", "5", "S02" or "S02E05".
func ParseEpisodesFilter(description string) (EpisodesFilter, error) {
	switch description {
	case "first":
		return func(episodes []*model.Episode) ([]*model.Episode, error) {
			if len(episodes) == 0 {
				return episodes, nil
			}
			return episodes[:1], nil
		}, nil
	case "last":
		return func(episodes []*model.Episode) ([]*model.Episode, error) {
			if len(episodes) == 0 {
				return episodes, nil
			}
			return episodes[len(episodes)-1:], nil
		}, nil
	case "all":
		return func(episodes []*model.Episode) ([]*model.Episode, error) {
			return episodes, nil
		}, nil
	}

	// Season or single episode: "S02", "S02E05"
	if episodeCode.MatchString(description) {
		groups := util.ReGroups(episodeCode, description)
		season, _ := strconv.Atoi(groups["season"])
		number, hasNumber := -1, groups["episode"] != ""
		if hasNumber {
			number, _ = strconv.Atoi(groups["episode"])
		}
		return func(episodes []*model.Episode) ([]*model.Episode, error) {
			return lo.Filter(episodes, func(e *model.Episode, _ int) bool {
				return e.SeasonNumber == season && (!hasNumber || e.Number == number)
			}), nil
		}, nil
	}

	// Range: "1-5"
	if parts := strings.Split(description, "-"); len(parts) == 2 {
		from, err1 := strconv.ParseUint(parts[0], 10, 16)
		to, err2 := strconv.ParseUint(parts[1], 10, 16)
		if err1 == nil && err2 == nil {
			return func(episodes []*model.Episode) ([]*model.Episode, error) {
				start := util.Min(from, uint64(len(episodes)))
				end := util.Min(to+1, uint64(len(episodes)))
				if start > end {
					return []*model.Episode{}, nil
				}
				return episodes[start:end], nil
			}, nil
		}
	}

	// Substring: "@text@"
	if len(description) > 1 && strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") {
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(episodes []*model.Episode) ([]*model.Episode, error) {
			return lo.Filter(episodes, func(e *model.Episode, _ int) bool {
				return strings.Contains(strings.ToLower(e.Name), sub)
			}), nil
		}, nil
	}

	// Single index: "5"
	if idx, err := strconv.ParseUint(description, 10, 16); err == nil {
		return func(episodes []*model.Episode) ([]*model.Episode, error) {
			if uint64(len(episodes)) <= idx {
				return []*model.Episode{}, nil
			}
			return []*model.Episode{episodes[idx]}, nil
		}, nil
	}

	return nil, fmt.Errorf("invalid episode filter: %s", description)
}
