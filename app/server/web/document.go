package web

import (
	"html/template"
	"maps"
	"slices"
	"strings"
)

// pageDocument is the root element of the page being rendered or of the page
// that posted a toggle. It records attributes and CSS custom properties.
type pageDocument struct {
	attrs map[string]string
	props map[string]string
}

func newPageDocument() *pageDocument {
	return &pageDocument{attrs: map[string]string{}, props: map[string]string{}}
}

func (d *pageDocument) Attr(name string) string { return d.attrs[name] }

func (d *pageDocument) SetAttr(name, value string) { d.attrs[name] = value }

func (d *pageDocument) SetProperty(name, value string) { d.props[name] = value }

func (d *pageDocument) property(name string) string { return d.props[name] }

// style renders the custom properties as an inline style declaration list.
func (d *pageDocument) style() template.CSS {
	keys := slices.Sorted(maps.Keys(d.props))
	decls := make([]string, 0, len(keys))
	for _, k := range keys {
		decls = append(decls, k+": "+d.props[k])
	}
	return template.CSS(strings.Join(decls, "; ")) //nolint:gosec // values are fixed per color mode
}
