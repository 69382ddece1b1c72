package metrics

import (
	"sync"

	"github.com/gogpu/textflow/cache"
)

const (
	// DefaultCircumfix brackets measured text. A narrow glyph with ink on
	// the baseline and cap height works best.
	DefaultCircumfix = "|"

	// DefaultProbe is measured once per font to find line ascent and descent
	// when the engine has no explicit line height.
	DefaultProbe = " !\"#$%&'()*+,-./0123456789:;<=>?@" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"
)

// Option configures a Cache.
type Option func(*config)

type config struct {
	capacity  int
	circumfix string
	probe     string
}

func defaultConfig() config {
	return config{
		capacity:  cache.DefaultCapacity,
		circumfix: DefaultCircumfix,
		probe:     DefaultProbe,
	}
}

// WithCapacity sets how many fonts each cache shard keeps before evicting
// the least recently used one.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// WithCircumfix replaces the bracketing character used to recover blank
// widths. Empty values are ignored.
func WithCircumfix(s string) Option {
	return func(c *config) {
		if s != "" {
			c.circumfix = s
		}
	}
}

// WithProbe replaces the sample string measured for line metrics.
// Empty values are ignored.
func WithProbe(s string) Option {
	return func(c *config) {
		if s != "" {
			c.probe = s
		}
	}
}

// Cache corrects and memoizes measurements made through a Measurer.
//
// Per-font state (circumfix width, space width, probed line metrics) is
// computed at most once per font and shared by all users of the Cache.
// Cache is safe for concurrent use.
type Cache struct {
	m     Measurer
	cfg   config
	fonts *cache.ShardedCache[string, *fontEntry]
}

// fontEntry holds lazily computed per-font values. Each value is guarded by
// its own sync.Once so readers never observe a half-initialized entry.
type fontEntry struct {
	circumfixOnce  sync.Once
	circumfixWidth float64

	spaceOnce  sync.Once
	spaceWidth float64

	lineOnce sync.Once
	line     Extents
}

// NewCache wraps m.
func NewCache(m Measurer, opts ...Option) *Cache {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Cache{
		m:     m,
		cfg:   cfg,
		fonts: cache.NewSharded[string, *fontEntry](cfg.capacity, cache.StringHasher),
	}
}

// Measurer returns the wrapped primitive.
func (c *Cache) Measurer() Measurer {
	return c.m
}

func (c *Cache) entry(font string) *fontEntry {
	return c.fonts.GetOrCreate(font, func() *fontEntry { return &fontEntry{} })
}

// Measure returns the extents of text in font with leading and trailing
// blanks counted. Ascent and descent are those of the bracketed string.
// The empty string measures as zero without calling the primitive.
func (c *Cache) Measure(text, font string) Extents {
	if text == "" {
		return Extents{}
	}
	e := c.entry(font)
	e.circumfixOnce.Do(func() {
		pair := c.cfg.circumfix + c.cfg.circumfix
		e.circumfixWidth = c.m.Measure(pair, font).Width
	})

	raw := c.m.Measure(c.cfg.circumfix+text+c.cfg.circumfix, font)
	w := raw.Width - e.circumfixWidth
	if w < 0 {
		w = 0
	}
	return Extents{Width: w, Ascent: raw.Ascent, Descent: raw.Descent}
}

// Width is shorthand for Measure(text, font).Width.
func (c *Cache) Width(text, font string) float64 {
	return c.Measure(text, font).Width
}

// TabUnit returns the corrected width of a single space in font. Tab
// stops are multiples of it.
func (c *Cache) TabUnit(font string) float64 {
	e := c.entry(font)
	e.spaceOnce.Do(func() {
		e.spaceWidth = c.Measure(" ", font).Width
	})
	return e.spaceWidth
}

// TabWidth returns the pixel distance between tab stops for a tab width of
// n spaces.
func (c *Cache) TabWidth(font string, n float64) float64 {
	if n <= 0 {
		return 0
	}
	return c.TabUnit(font) * n
}

// LineMetrics returns the ascent and descent of the probe string in font.
func (c *Cache) LineMetrics(font string) Extents {
	e := c.entry(font)
	e.lineOnce.Do(func() {
		m := c.m.Measure(c.cfg.probe, font)
		e.line = Extents{Width: m.Width, Ascent: m.Ascent, Descent: m.Descent}
	})
	return e.line
}

// Forget drops the cached state for font, for example after the font
// behind a descriptor was replaced.
func (c *Cache) Forget(font string) {
	c.fonts.Delete(font)
}

// Stats reports hit and miss counts of the per-font table.
func (c *Cache) Stats() cache.Stats {
	return c.fonts.Stats()
}
