package tui

import (
	"fmt"
	"strings"

	"github.com/tvdbx/tvdbx/model"
	"github.com/tvdbx/tvdbx/style"
	"github.com/tvdbx/tvdbx/util"
)

type season struct {
	number   int
	episodes []*model.Episode
}

type listItem struct {
	internal any
}

func (t *listItem) Title() string {
	switch e := t.internal.(type) {
	case *season:
		if e.number == 0 {
			return "Specials"
		}
		return fmt.Sprintf("Season %d", e.number)
	case *model.Episode:
		return fmt.Sprintf("%s %s", style.Faint(e.Code()), e.Name)
	default:
		return t.FilterValue()
	}
}

func (t *listItem) Description() string {
	switch e := t.internal.(type) {
	case *season:
		description := util.Quantify(len(e.episodes), "episode", "episodes")
		if first := e.episodes[0]; first.Aired() {
			description += " • " + first.FirstAired.Format("2006")
		}
		return description
	case *model.Episode:
		var parts []string
		if e.Aired() {
			parts = append(parts, e.FirstAired.Format("2006-01-02"))
		}
		if e.Rating >= 0 {
			parts = append(parts, "★ "+style.Rating(e.Rating))
		}
		return strings.Join(parts, " • ")
	default:
		return ""
	}
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *season:
		return fmt.Sprintf("season %d", e.number)
	case *model.Episode:
		return e.Code() + " " + e.Name
	case string:
		return e
	default:
		return ""
	}
}
