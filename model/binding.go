package model

import (
	"strings"
	"time"

	"github.com/tvdbx/tvdbx/document"
	"github.com/tvdbx/tvdbx/field"
)

type record interface {
	observable() *Observable
}

// binding assigns the text of one element to a field of r.
type binding[R record] func(r R, text string)

// bindings maps lowercased element names to their assignment.
type bindings[R record] map[string]binding[R]

func newBindings[R record](entries map[string]binding[R]) bindings[R] {
	b := make(bindings[R], len(entries))
	for name, set := range entries {
		b[strings.ToLower(name)] = set
	}
	return b
}

// with returns a copy of b extended by extra.
func (b bindings[R]) with(extra map[string]binding[R]) bindings[R] {
	merged := make(bindings[R], len(b)+len(extra))
	for name, set := range b {
		merged[name] = set
	}
	for name, set := range newBindings(extra) {
		merged[name] = set
	}
	return merged
}

// apply assigns text through the binding for element name and reports
// whether the name is known.
func (b bindings[R]) apply(r R, name, text string) bool {
	set, ok := b[strings.ToLower(name)]
	if ok {
		set(r, text)
	}
	return ok
}

func (b bindings[R]) deserialize(r R, node *document.Node) error {
	if node == nil {
		return ErrNilNode
	}

	for _, child := range node.Children {
		b.apply(r, child.Name, child.Text)
	}

	return nil
}

func intField[R record](name string, ptr func(R) *int) binding[R] {
	return func(r R, text string) {
		if v, ok := field.Int(text).Get(); ok {
			assign(r.observable(), name, ptr(r), v)
		}
	}
}

func int64Field[R record](name string, ptr func(R) *int64) binding[R] {
	return func(r R, text string) {
		if v, ok := field.Int64(text).Get(); ok {
			assign(r.observable(), name, ptr(r), v)
		}
	}
}

func floatField[R record](name string, ptr func(R) *float64) binding[R] {
	return func(r R, text string) {
		if v, ok := field.Float(text).Get(); ok {
			assign(r.observable(), name, ptr(r), v)
		}
	}
}

func textField[R record](name string, ptr func(R) *string) binding[R] {
	return func(r R, text string) {
		if v, ok := field.Text(text).Get(); ok {
			assignText(r.observable(), name, ptr(r), v)
		}
	}
}

func dateField[R record](name string, ptr func(R) *time.Time) binding[R] {
	return func(r R, text string) {
		if v, ok := field.Date(text).Get(); ok {
			assignTime(r.observable(), name, ptr(r), v)
		}
	}
}

func flagField[R record](name string, ptr func(R) *bool) binding[R] {
	return func(r R, text string) {
		assign(r.observable(), name, ptr(r), field.Flag(text))
	}
}

func boolField[R record](name string, ptr func(R) *bool) binding[R] {
	return func(r R, text string) {
		if v, ok := field.Bool(text).Get(); ok {
			assign(r.observable(), name, ptr(r), v)
		}
	}
}

// listField stores a pipe list in its normalized form.
func listField[R record](name string, ptr func(R) *string) binding[R] {
	return func(r R, text string) {
		if v, ok := field.Text(field.List(text)).Get(); ok {
			assignText(r.observable(), name, ptr(r), v)
		}
	}
}
