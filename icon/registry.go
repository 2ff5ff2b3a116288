package icon

import (
	"github.com/tvdbx/tvdbx/color"
	"github.com/tvdbx/tvdbx/style"
)

// Icon identifies a symbol of the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Search
	Mark
	Link
	Series
	Episode
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "🎉",
		nerd:    style.Fg(color.Green)(""),
		plain:   style.Fg(color.Green)("✓"),
		squares: style.Fg(color.Green)("■"),
	},
	Fail: {
		emoji:   "💀",
		nerd:    style.Fg(color.Red)("ﮊ"),
		plain:   style.Fg(color.Red)("✖"),
		squares: style.Fg(color.Red)("■"),
	},
	Progress: {
		emoji:   "⏳",
		nerd:    style.Fg(color.Blue)(""),
		plain:   style.Fg(color.Blue)("…"),
		squares: style.Fg(color.Blue)("□"),
	},
	Search: {
		emoji:   "🔍",
		nerd:    style.Fg(color.Purple)(""),
		plain:   style.Fg(color.Purple)("?"),
		squares: style.Fg(color.Purple)("▣"),
	},
	Mark: {
		emoji:   "📌",
		nerd:    style.Fg(color.Yellow)(""),
		plain:   style.Fg(color.Yellow)("*"),
		squares: style.Fg(color.Yellow)("▪"),
	},
	Link: {
		emoji:   "🔗",
		nerd:    style.Fg(color.Cyan)(""),
		plain:   style.Fg(color.Cyan)("->"),
		squares: style.Fg(color.Cyan)("▫"),
	},
	Series: {
		emoji:   "📺",
		nerd:    "",
		plain:   "#",
		squares: "▤",
	},
	Episode: {
		emoji:   "🎬",
		nerd:    "",
		plain:   ">",
		squares: "▸",
	},
}
