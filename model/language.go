package model

import (
	"strings"

	"github.com/tvdbx/tvdbx/document"
	"golang.org/x/exp/slices"
)

// Language is an entry of languages.xml.
type Language struct {
	Observable `json:"-"`

	ID           int    `json:"id"`
	Name         string `json:"name" jsonschema:"description=Native name of the language."`
	Abbreviation string `json:"abbreviation" jsonschema:"description=Code used in requests and bundle names."`
}

var languageBindings = newBindings(map[string]binding[*Language]{
	"id":           intField("ID", func(l *Language) *int { return &l.ID }),
	"name":         textField("Name", func(l *Language) *string { return &l.Name }),
	"abbreviation": textField("Abbreviation", func(l *Language) *string { return &l.Abbreviation }),
})

// NewLanguage returns a language holding the absent sentinels.
func NewLanguage() *Language {
	return &Language{ID: -1}
}

// Deserialize populates l from a <Language> node.
func (l *Language) Deserialize(node *document.Node) error {
	return languageBindings.deserialize(l, node)
}

// CompareLanguages orders languages by name.
func CompareLanguages(a, b *Language) int {
	return strings.Compare(a.Name, b.Name)
}

// SortLanguages sorts languages in place by name.
func SortLanguages(languages []*Language) {
	slices.SortStableFunc(languages, CompareLanguages)
}
