package model

import (
	"cmp"

	"github.com/tvdbx/tvdbx/document"
	"github.com/tvdbx/tvdbx/field"
	"golang.org/x/exp/slices"
)

// Capability bits of a mirror typemask.
const (
	MaskXML = 1 << iota
	MaskBanner
	MaskZip

	MaskAll = MaskXML | MaskBanner | MaskZip
)

// Mirror is a service endpoint and the content it serves.
type Mirror struct {
	Observable `json:"-"`

	ID                 int    `json:"id"`
	Address            string `json:"address" jsonschema:"description=Base URL requests are sent to."`
	ContainsXMLFile    bool   `json:"xml"`
	ContainsBannerFile bool   `json:"banner"`
	ContainsZipFile    bool   `json:"zip"`
}

var mirrorBindings = newBindings(map[string]binding[*Mirror]{
	"id":         intField("ID", func(m *Mirror) *int { return &m.ID }),
	"mirrorpath": textField("Address", func(m *Mirror) *string { return &m.Address }),
	"typemask": func(m *Mirror, text string) {
		if mask, ok := field.Int(text).Get(); ok {
			m.SetTypeMask(mask)
		}
	},
})

// NewMirror returns a mirror holding the absent sentinels.
func NewMirror() *Mirror {
	return &Mirror{ID: -1}
}

// Deserialize populates m from a <Mirror> node.
func (m *Mirror) Deserialize(node *document.Node) error {
	return mirrorBindings.deserialize(m, node)
}

// SetTypeMask decodes the capability flags from mask.
func (m *Mirror) SetTypeMask(mask int) {
	assign(&m.Observable, "ContainsXMLFile", &m.ContainsXMLFile, mask&MaskXML != 0)
	assign(&m.Observable, "ContainsBannerFile", &m.ContainsBannerFile, mask&MaskBanner != 0)
	assign(&m.Observable, "ContainsZipFile", &m.ContainsZipFile, mask&MaskZip != 0)
}

// TypeMask encodes the capability flags.
func (m *Mirror) TypeMask() (mask int) {
	if m.ContainsXMLFile {
		mask |= MaskXML
	}
	if m.ContainsBannerFile {
		mask |= MaskBanner
	}
	if m.ContainsZipFile {
		mask |= MaskZip
	}
	return
}

// Complete reports whether the mirror serves xml, banners and zip bundles.
func (m *Mirror) Complete() bool {
	return m.TypeMask() == MaskAll
}

// CompareMirrors orders mirrors by descending ID.
func CompareMirrors(a, b *Mirror) int {
	return cmp.Compare(b.ID, a.ID)
}

// SortMirrors sorts mirrors in place by descending ID.
func SortMirrors(mirrors []*Mirror) {
	slices.SortStableFunc(mirrors, CompareMirrors)
}
