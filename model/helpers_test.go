package model

import (
	"github.com/samber/lo"
	"github.com/tvdbx/tvdbx/document"
)

// parse returns the root element of an XML snippet.
func parse(xml string) *document.Node {
	return lo.Must(document.ParseBytes([]byte(xml))).Container()
}

// recorder collects change notifications.
type recorder struct {
	fields []string
}

func (r *recorder) record(field string) {
	r.fields = append(r.fields, field)
}

func watch(o *Observable) *recorder {
	r := &recorder{}
	o.OnChange(r.record)
	return r
}
