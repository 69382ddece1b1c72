package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/textflow"
	"github.com/gogpu/textflow/surface"
)

// config holds every setting of a run. Zero values mean "default"; flags
// override values read from the TOML file.
type config struct {
	Font        string            `toml:"font"`
	MaxWidth    float64           `toml:"max_width"`
	Wrap        string            `toml:"wrap"`
	TabWidth    float64           `toml:"tab_width"`
	Align       string            `toml:"align"`
	LineHeight  float64           `toml:"line_height"`
	LineSpacing float64           `toml:"line_spacing"`
	Measurer    string            `toml:"measurer"`
	Format      string            `toml:"format"`
	Output      string            `toml:"output"`
	Padding     int               `toml:"padding"`
	Fonts       map[string]string `toml:"fonts"` // family -> TTF/OTF path
}

func defaultConfig() config {
	return config{
		Font:        textflow.DefaultFont,
		MaxWidth:    -1,
		Wrap:        "normal",
		TabWidth:    textflow.DefaultTabWidth,
		Align:       "start",
		LineHeight:  -1,
		LineSpacing: -1,
		Padding:     4,
	}
}

// loadConfig merges the TOML file at path into cfg. Unknown keys are an
// error. Font paths are resolved relative to the file.
func loadConfig(path string, cfg *config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for family, p := range cfg.Fonts {
		if !filepath.IsAbs(p) {
			cfg.Fonts[family] = filepath.Join(dir, p)
		}
	}
	return nil
}

func (c config) wrapMode() (textflow.WrapMode, error) {
	switch strings.ToLower(c.Wrap) {
	case "", "normal":
		return textflow.WrapNormal, nil
	case "shrink":
		return textflow.WrapShrink, nil
	default:
		return 0, fmt.Errorf("unknown wrap mode %q (want normal or shrink)", c.Wrap)
	}
}

func (c config) alignRatio() (float64, error) {
	switch strings.ToLower(c.Align) {
	case "", "start", "left":
		return textflow.AlignStart, nil
	case "center":
		return textflow.AlignCenter, nil
	case "end", "right":
		return textflow.AlignEnd, nil
	default:
		return 0, fmt.Errorf("unknown alignment %q (want start, center or end)", c.Align)
	}
}

func (c config) maxWidth() float64 {
	if c.MaxWidth < 0 {
		return textflow.Unbounded
	}
	return c.MaxWidth
}

// format returns the output format: explicit, or the one registered for
// the output file extension, or "png".
func (c config) format() string {
	if c.Format != "" {
		return strings.ToLower(c.Format)
	}
	if name, ok := surface.FormatForPath(c.Output); ok {
		return name
	}
	return "png"
}
