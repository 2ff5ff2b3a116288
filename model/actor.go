package model

import (
	"cmp"
	"fmt"

	"github.com/tvdbx/tvdbx/document"
	"golang.org/x/exp/slices"
)

// Actor is one cast member listed in actors.xml.
type Actor struct {
	Observable `json:"-"`

	ID        int    `json:"id" jsonschema:"description=Actor ID on thetvdb.com."`
	ImagePath string `json:"image,omitempty" jsonschema:"description=Banner path of the actor picture."`
	Name      string `json:"name"`
	Role      string `json:"role,omitempty"`
	SortOrder int    `json:"sortOrder" jsonschema:"description=Billing position. Higher values come first."`
}

var actorBindings = newBindings(map[string]binding[*Actor]{
	"id":        intField("ID", func(a *Actor) *int { return &a.ID }),
	"Image":     textField("ImagePath", func(a *Actor) *string { return &a.ImagePath }),
	"Name":      textField("Name", func(a *Actor) *string { return &a.Name }),
	"Role":      textField("Role", func(a *Actor) *string { return &a.Role }),
	"SortOrder": intField("SortOrder", func(a *Actor) *int { return &a.SortOrder }),
})

// NewActor returns an actor holding the absent sentinels.
func NewActor() *Actor {
	return &Actor{ID: -1, SortOrder: -1}
}

// Deserialize populates a from an <Actor> node.
func (a *Actor) Deserialize(node *document.Node) error {
	return actorBindings.deserialize(a, node)
}

func (a *Actor) String() string {
	if a.Role == "" {
		return a.Name
	}
	return fmt.Sprintf("%s as %s", a.Name, a.Role)
}

// CompareActors orders actors by descending SortOrder.
func CompareActors(a, b *Actor) int {
	return cmp.Compare(b.SortOrder, a.SortOrder)
}

// SortActors sorts actors in place by descending SortOrder, keeping document
// order among equals.
func SortActors(actors []*Actor) {
	slices.SortStableFunc(actors, CompareActors)
}
