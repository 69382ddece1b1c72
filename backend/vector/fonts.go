package vector

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"sync"

	"github.com/tdewolff/canvas"

	"github.com/gogpu/textflow/cache"
	"github.com/gogpu/textflow/text"
)

const (
	mmPerPx = 25.4 / 96
	pxPerMm = 96 / 25.4
)

// Fonts loads collection sources into canvas font families and caches
// faces per source and size. Fonts is safe for concurrent use.
type Fonts struct {
	col    *text.Collection
	logger *slog.Logger

	mu       sync.Mutex
	families map[*text.FontSource]*canvas.FontFamily
	faces    *cache.ShardedCache[faceKey, *canvas.FontFace]
}

type faceKey struct {
	src  *text.FontSource
	size float64
}

func hashFaceKey(k faceKey) uint64 {
	return cache.StringHasher(k.src.Name()) ^ math.Float64bits(k.size)
}

// NewFonts returns a loader over col. A nil collection selects the Go
// fonts.
func NewFonts(col *text.Collection) *Fonts {
	if col == nil {
		col = text.NewGoCollection()
	}
	return &Fonts{
		col:      col,
		logger:   slog.New(slog.DiscardHandler),
		families: make(map[*text.FontSource]*canvas.FontFamily),
		faces:    cache.NewSharded[faceKey, *canvas.FontFace](0, hashFaceKey),
	}
}

// SetLogger sets the logger that receives font resolution warnings.
// A nil logger is ignored.
func (f *Fonts) SetLogger(l *slog.Logger) {
	if l != nil {
		f.logger = l
	}
}

// Face returns the black face for desc.
func (f *Fonts) Face(desc string) (*canvas.FontFace, error) {
	src, spec, err := f.col.Source(desc)
	if err != nil {
		return nil, err
	}

	var loadErr error
	face := f.faces.GetOrCreate(faceKey{src: src, size: spec.Size}, func() *canvas.FontFace {
		family, err := f.family(src)
		if err != nil {
			loadErr = err
			return nil
		}
		return family.Face(spec.Points(), color.Black, canvas.FontRegular, canvas.FontNormal)
	})
	if loadErr != nil {
		f.faces.Delete(faceKey{src: src, size: spec.Size})
		return nil, loadErr
	}
	if face == nil {
		return nil, fmt.Errorf("vector: font %q failed to load earlier", desc)
	}
	return face, nil
}

func (f *Fonts) family(src *text.FontSource) (*canvas.FontFamily, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if family, ok := f.families[src]; ok {
		return family, nil
	}
	family := canvas.NewFontFamily(src.Name())
	if err := family.LoadFont(src.Data(), 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("vector: load %s: %w", src.Name(), err)
	}
	f.families[src] = family
	return family, nil
}
