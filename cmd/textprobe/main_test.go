package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/textflow"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "probe.toml")
	data := `
font = "12px Go Mono"
max_width = 120
wrap = "shrink"
align = "center"

[fonts]
Custom = "fonts/custom.ttf"
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := defaultConfig()
	if err := loadConfig(path, &cfg); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Font != "12px Go Mono" || cfg.MaxWidth != 120 {
		t.Errorf("font/width = %q/%v", cfg.Font, cfg.MaxWidth)
	}
	if mode, _ := cfg.wrapMode(); mode != textflow.WrapShrink {
		t.Errorf("wrapMode = %v, want shrink", mode)
	}
	if a, _ := cfg.alignRatio(); a != textflow.AlignCenter {
		t.Errorf("alignRatio = %v, want 0.5", a)
	}
	if cfg.TabWidth != textflow.DefaultTabWidth {
		t.Errorf("TabWidth = %v, want default kept", cfg.TabWidth)
	}
	if want := filepath.Join(dir, "fonts", "custom.ttf"); cfg.Fonts["Custom"] != want {
		t.Errorf("font path = %q, want %q", cfg.Fonts["Custom"], want)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("colour = \"red\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := defaultConfig()
	if err := loadConfig(path, &cfg); err == nil {
		t.Error("unknown key accepted")
	}
	if err := loadConfig(filepath.Join(dir, "missing.toml"), &cfg); err == nil {
		t.Error("missing file accepted")
	}
}

func TestConfigValues(t *testing.T) {
	cfg := defaultConfig()
	if w := cfg.maxWidth(); w != textflow.Unbounded {
		t.Errorf("default maxWidth = %v, want unbounded", w)
	}

	cfg.Wrap = "diagonal"
	if _, err := cfg.wrapMode(); err == nil {
		t.Error("unknown wrap mode accepted")
	}
	cfg.Align = "justify"
	if _, err := cfg.alignRatio(); err == nil {
		t.Error("unknown alignment accepted")
	}

	tests := []struct {
		format, output, want string
	}{
		{"", "out.png", "png"},
		{"", "out.PDF", "pdf"},
		{"", "out.txt", "term"},
		{"", "out.log", "commands"},
		{"", "out", "png"},
		{"PDF", "out.png", "pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			c := config{Format: tt.format, Output: tt.output}
			if got := c.format(); got != tt.want {
				t.Errorf("format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunPrintsLines(t *testing.T) {
	var out, errOut bytes.Buffer
	args := []string{"-measurer", "term", "-width", "4"}
	if err := run(args, strings.NewReader("ab cd\tx"), &out, &errOut); err != nil {
		t.Fatalf("run: %v (stderr %s)", err, errOut.String())
	}

	got := out.String()
	for _, want := range []string{
		`  0 [0,3)    3.00 "ab "`,
		`  1 [3,6)    4.00 "cd\t"`,
		`  2 [6,7)    1.00 "x"`,
		"lines=3 width=4.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunConfigOverriddenByFlags(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "probe.toml")
	if err := os.WriteFile(cfgPath, []byte("measurer = \"term\"\nmax_width = 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	in := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(in, []byte("ab cd"), 0o600); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	if err := run([]string{"-config", cfgPath, "-width", "-1", in}, nil, &out, &errOut); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "lines=1 ") {
		t.Errorf("flag did not override config width:\n%s", out.String())
	}
}

func TestRunWritesOutput(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name, prefix string
	}{
		{"out.png", "\x89PNG"},
		{"out.pdf", "%PDF"},
		{"out.txt", "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			var out, errOut bytes.Buffer
			args := []string{"-o", path}
			if tt.name == "out.txt" {
				args = append(args, "-measurer", "term", "-padding", "0")
			}
			if err := run(args, strings.NewReader("hello"), &out, &errOut); err != nil {
				t.Fatalf("run: %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.HasPrefix(data, []byte(tt.prefix)) {
				t.Errorf("output starts with %q, want %q", data[:min(len(data), 8)], tt.prefix)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad measurer", []string{"-measurer", "laser"}},
		{"bad wrap", []string{"-wrap", "zigzag"}},
		{"bad font", []string{"-font", "Go"}},
		{"bad format", []string{"-format", "svg", "-o", "x.svg"}},
		{"two inputs", []string{"a.txt", "b.txt"}},
		{"unknown flag", []string{"-frobnicate"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			if tt.name == "bad format" {
				tt.args[3] = filepath.Join(t.TempDir(), "x.svg")
			}
			if err := run(tt.args, strings.NewReader("x"), &out, &errOut); err == nil {
				t.Error("run succeeded")
			}
		})
	}
}
