package text

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	ot "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFontSource(t *testing.T) {
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	if got := src.Name(); got != "Go" {
		t.Errorf("Name() = %q, want %q", got, "Go")
	}
	if len(src.Data()) != len(goregular.TTF) {
		t.Errorf("Data() length = %d, want %d", len(src.Data()), len(goregular.TTF))
	}
}

func TestNewFontSource_Errors(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFontSource([]byte("not a font")); err == nil {
		t.Error("NewFontSource(garbage) succeeded, want error")
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	src, err := NewFontSourceFromFile(path)
	if err != nil {
		t.Fatalf("NewFontSourceFromFile: %v", err)
	}
	if src.Name() != "Go" {
		t.Errorf("Name() = %q", src.Name())
	}

	if _, err := NewFontSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("missing file succeeded, want error")
	}
}

func TestFontSource_NewFace(t *testing.T) {
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}

	face, err := src.NewFace(32)
	if err != nil {
		t.Fatalf("NewFace: %v", err)
	}
	defer face.Close()

	m := face.Metrics()
	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Errorf("Metrics() = %+v, want positive ascent and descent", m)
	}
	// Ascent of a 32px face is below its em size.
	if a := fixedToFloat64(m.Ascent); a > 32 {
		t.Errorf("ascent = %v, want <= 32", a)
	}
}

func TestFontSourceShapingFont(t *testing.T) {
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	fonts := make([]*ot.Font, 4)
	for i := range fonts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f, err := src.shapingFont()
			if err != nil {
				t.Errorf("shapingFont: %v", err)
			}
			fonts[i] = f
		}()
	}
	wg.Wait()

	for i, f := range fonts {
		if f == nil || f != fonts[0] {
			t.Errorf("shapingFont()[%d] = %p, want one shared parse %p", i, f, fonts[0])
		}
	}
}
