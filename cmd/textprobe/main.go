// Command textprobe lays out a text file with the textflow engine, prints
// the resulting lines and optionally renders them.
//
// Usage:
//
//	textprobe [flags] [file]
//
// The text is read from file, or from standard input when no file is
// given. Settings may also come from a TOML file (-config); flags
// override it.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/textflow"
	"github.com/gogpu/textflow/backend"
	_ "github.com/gogpu/textflow/backend/term"
	_ "github.com/gogpu/textflow/backend/vector"
	"github.com/gogpu/textflow/metrics"
	"github.com/gogpu/textflow/surface"
	"github.com/gogpu/textflow/text"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("textprobe: %v", err)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("textprobe", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := defaultConfig()
	var (
		configPath  = fs.String("config", "", "TOML settings file")
		font        = fs.String("font", def.Font, "font descriptor, e.g. \"14px Go Mono\"")
		maxWidth    = fs.Float64("width", def.MaxWidth, "wrap width in pixels (negative: no wrapping)")
		wrap        = fs.String("wrap", def.Wrap, "wrap mode: normal or shrink")
		tabWidth    = fs.Float64("tab", def.TabWidth, "tab width in spaces")
		align       = fs.String("align", def.Align, "alignment: start, center or end")
		lineHeight  = fs.Float64("line-height", def.LineHeight, "line height in pixels (negative: from font)")
		lineSpacing = fs.Float64("line-spacing", def.LineSpacing, "line spacing in pixels (negative: auto)")
		measurer    = fs.String("measurer", "", "measurement backend ("+fmt.Sprint(backend.Available())+")")
		format      = fs.String("format", "", "output format ("+fmt.Sprint(surface.Formats())+")")
		output      = fs.String("o", "", "output file")
		padding     = fs.Int("padding", def.Padding, "margin around the text in pixels")
		verbose     = fs.Bool("v", false, "log engine activity to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := def
	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "font":
			cfg.Font = *font
		case "width":
			cfg.MaxWidth = *maxWidth
		case "wrap":
			cfg.Wrap = *wrap
		case "tab":
			cfg.TabWidth = *tabWidth
		case "align":
			cfg.Align = *align
		case "line-height":
			cfg.LineHeight = *lineHeight
		case "line-spacing":
			cfg.LineSpacing = *lineSpacing
		case "measurer":
			cfg.Measurer = *measurer
		case "format":
			cfg.Format = *format
		case "o":
			cfg.Output = *output
		case "padding":
			cfg.Padding = *padding
		}
	})

	var logger *slog.Logger
	if *verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		textflow.SetLogger(logger)
		defer textflow.SetLogger(nil)
	}

	src, err := readInput(fs.Args(), stdin)
	if err != nil {
		return err
	}

	fonts := text.NewGoCollection()
	for family, path := range cfg.Fonts {
		if err := fonts.AddFile(family, path); err != nil {
			return fmt.Errorf("loading font %s: %w", family, err)
		}
	}

	e, err := newEngine(cfg, fonts, src)
	if err != nil {
		return err
	}
	printLines(stdout, e)

	if cfg.Output == "" {
		return nil
	}
	return render(cfg, fonts, e)
}

func readInput(args []string, stdin io.Reader) (string, error) {
	switch len(args) {
	case 0:
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	case 1:
		b, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("expected at most one input file, got %d", len(args))
	}
}

func newEngine(cfg config, fonts *text.Collection, src string) (*textflow.Engine, error) {
	if _, err := metrics.ParseFont(cfg.Font); err != nil {
		return nil, err
	}
	mode, err := cfg.wrapMode()
	if err != nil {
		return nil, err
	}
	align, err := cfg.alignRatio()
	if err != nil {
		return nil, err
	}

	var b backend.MeasureBackend
	if cfg.Measurer == "" {
		b, err = backend.InitDefault()
	} else {
		b, err = backend.InitByName(cfg.Measurer)
	}
	if err != nil {
		return nil, fmt.Errorf("measurer %q: %w", cfg.Measurer, err)
	}
	defer b.Close()

	m, err := b.NewMeasurer(fonts)
	if err != nil {
		return nil, fmt.Errorf("measurer %s: %w", b.Name(), err)
	}

	return textflow.NewEngine(metrics.NewCache(m),
		textflow.WithText(src),
		textflow.WithFont(cfg.Font),
		textflow.WithMaxWidth(cfg.maxWidth()),
		textflow.WithWrapMode(mode),
		textflow.WithTabWidth(cfg.TabWidth),
		textflow.WithAlign(align),
		textflow.WithLineHeight(cfg.LineHeight),
		textflow.WithLineSpacing(cfg.LineSpacing),
	), nil
}

func printLines(w io.Writer, e *textflow.Engine) {
	text := e.Text()
	for i, line := range e.Lines() {
		fmt.Fprintf(w, "%3d [%d,%d) %7.2f %q\n", i, line.Start(), line.End(), line.Width(), text[line.Start():line.End()])
	}
	fmt.Fprintf(w, "lines=%d width=%.2f height=%.2f\n", e.LineCount(), e.Width(), e.Height())
}

func render(cfg config, fonts *text.Collection, e *textflow.Engine) error {
	pad := max(cfg.Padding, 0)
	opts := surface.Options{
		Width:      int(math.Ceil(e.Width())) + 2*pad,
		Height:     int(math.Ceil(e.Height())) + 2*pad,
		Background: color.White,
		Fonts:      fonts,
	}
	cv, err := surface.NewCanvasByName(cfg.format(), opts)
	if err != nil {
		return err
	}
	e.Paint(cv, color.Black, float64(pad), float64(pad))

	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	if err := cv.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
