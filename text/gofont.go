package text

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Family names registered by NewGoCollection.
const (
	FamilyGo       = "Go"
	FamilyGoBold   = "Go Bold"
	FamilyGoItalic = "Go Italic"
	FamilyGoMono   = "Go Mono"
)

// NewGoCollection returns a collection holding the Go font family, with
// FamilyGo as the fallback.
func NewGoCollection(opts ...SourceOption) *Collection {
	c := NewCollection()
	for _, f := range []struct {
		family string
		data   []byte
	}{
		{FamilyGo, goregular.TTF},
		{FamilyGoBold, gobold.TTF},
		{FamilyGoItalic, goitalic.TTF},
		{FamilyGoMono, gomono.TTF},
	} {
		src, err := NewFontSource(f.data, opts...)
		if err != nil {
			panic("text: bundled Go font failed to parse: " + err.Error())
		}
		c.Add(f.family, src)
	}
	c.SetFallback(FamilyGo)
	return c
}
