// Package backend selects the glyph measurement primitive used by engines.
//
// A measurement backend turns a font collection into a metrics.Measurer.
// The software backends ("shaping" and "bounds") are registered on import;
// the terminal and vector backends register themselves when their packages
// are imported:
//
//	import (
//		_ "github.com/gogpu/textflow/backend/term"
//		_ "github.com/gogpu/textflow/backend/vector"
//	)
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	b, err := backend.InitDefault()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
//	m, err := b.NewMeasurer(text.NewGoCollection())
//	if err != nil {
//		log.Fatal(err)
//	}
//	e := textflow.NewEngine(metrics.NewCache(m))
package backend
