package model

import (
	"strings"
	"time"

	"github.com/tvdbx/tvdbx/field"
)

// Element holds the fields shared by Series and Episode.
type Element struct {
	Observable `json:"-"`

	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Overview   string    `json:"overview,omitempty"`
	Language   string    `json:"language,omitempty"`
	ImdbID     string    `json:"imdbId,omitempty"`
	FirstAired time.Time `json:"firstAired" jsonschema:"description=Zero time when unknown."`
}

type elementRecord interface {
	record
	element() *Element
}

func (e *Element) element() *Element {
	return e
}

// Aired reports whether FirstAired is known.
func (e *Element) Aired() bool {
	return !e.FirstAired.IsZero()
}

// elementBindings maps the elements common to series and episodes. The name
// element differs between the two and is bound by each record.
func elementBindings[R elementRecord]() bindings[R] {
	return newBindings(map[string]binding[R]{
		"id":         intField("ID", func(r R) *int { return &r.element().ID }),
		"Overview":   textField("Overview", func(r R) *string { return &r.element().Overview }),
		"Language":   textField("Language", func(r R) *string { return &r.element().Language }),
		"IMDB_ID":    textField("ImdbID", func(r R) *string { return &r.element().ImdbID }),
		"FirstAired": dateField("FirstAired", func(r R) *time.Time { return &r.element().FirstAired }),
	})
}

func splitList(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, field.ListSeparator)
}
