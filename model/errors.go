package model

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument classifies calls made with a missing required argument.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	// ErrNilNode is returned by every Deserialize when given no node.
	ErrNilNode = fmt.Errorf("%w: provided node must not be nil", ErrInvalidArgument)

	// ErrNilEpisode is returned by Series.AddEpisode when given no episode.
	ErrNilEpisode = fmt.Errorf("%w: episode to add must not be nil", ErrInvalidArgument)
)
