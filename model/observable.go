package model

import (
	"strings"
	"time"
)

// ChangeFunc receives the Go name of a field whose stored value changed.
type ChangeFunc func(field string)

// Observable is embedded by every record and broadcasts field changes to
// registered observers. The zero value has none.
type Observable struct {
	observers []ChangeFunc
}

// OnChange registers fn. Observers run synchronously, in registration order,
// once per field whose value actually changed.
func (o *Observable) OnChange(fn ChangeFunc) {
	if fn != nil {
		o.observers = append(o.observers, fn)
	}
}

func (o *Observable) observable() *Observable {
	return o
}

func (o *Observable) notify(field string) {
	for _, fn := range o.observers {
		fn(field)
	}
}

func assign[T comparable](o *Observable, name string, dst *T, value T) {
	if *dst == value {
		return
	}
	*dst = value
	o.notify(name)
}

// assignText treats values differing only in case as equal.
func assignText(o *Observable, name string, dst *string, value string) {
	if strings.EqualFold(*dst, value) {
		return
	}
	*dst = value
	o.notify(name)
}

func assignTime(o *Observable, name string, dst *time.Time, value time.Time) {
	if dst.Equal(value) {
		return
	}
	*dst = value
	o.notify(name)
}
