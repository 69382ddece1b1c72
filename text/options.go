package text

import (
	"log/slog"

	"golang.org/x/image/font"
)

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	hinting font.Hinting
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		hinting: font.HintingNone,
	}
}

// WithHinting sets the hinting used by faces created from the source.
// Unhinted faces give fractional advances, which keep widths additive.
func WithHinting(h font.Hinting) SourceOption {
	return func(c *sourceConfig) {
		c.hinting = h
	}
}

// MeasurerOption configures BoundsMeasurer and ShapingMeasurer.
type MeasurerOption func(*measurerConfig)

type measurerConfig struct {
	logger   *slog.Logger
	language string
}

func defaultMeasurerConfig() measurerConfig {
	return measurerConfig{
		logger:   slog.New(slog.DiscardHandler),
		language: "en",
	}
}

// WithLogger sets the logger that receives font resolution warnings.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) MeasurerOption {
	return func(c *measurerConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithLanguage sets the language tag passed to the shaper (e.g. "en", "tr").
// BoundsMeasurer ignores it.
func WithLanguage(lang string) MeasurerOption {
	return func(c *measurerConfig) {
		c.language = lang
	}
}
