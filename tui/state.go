package tui

type state int

const (
	seasonsState state = iota
	episodesState
	episodeState
	errorState
)
