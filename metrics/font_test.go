package metrics_test

import (
	"errors"
	"testing"

	"github.com/gogpu/textflow/metrics"
)

func TestParseFont(t *testing.T) {
	tests := []struct {
		desc    string
		want    metrics.FontSpec
		wantErr bool
	}{
		{"16px Go", metrics.FontSpec{Size: 16, Family: "Go"}, false},
		{"13.5px Go Mono", metrics.FontSpec{Size: 13.5, Family: "Go Mono"}, false},
		{`12pt "Noto Sans"`, metrics.FontSpec{Size: 16, Family: "Noto Sans"}, false},
		{"  10px  Go  ", metrics.FontSpec{Size: 10, Family: "Go"}, false},
		{"16px", metrics.FontSpec{}, true},
		{"16em Go", metrics.FontSpec{}, true},
		{"px Go", metrics.FontSpec{}, true},
		{"-3px Go", metrics.FontSpec{}, true},
		{`16px ""`, metrics.FontSpec{}, true},
		{"", metrics.FontSpec{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got, err := metrics.ParseFont(tt.desc)
			if tt.wantErr {
				if !errors.Is(err, metrics.ErrInvalidFont) {
					t.Errorf("ParseFont(%q) error = %v, want ErrInvalidFont", tt.desc, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFont(%q) unexpected error: %v", tt.desc, err)
			}
			if got != tt.want {
				t.Errorf("ParseFont(%q) = %+v, want %+v", tt.desc, got, tt.want)
			}
		})
	}
}

func TestFontSpecString(t *testing.T) {
	spec := metrics.FontSpec{Size: 13.5, Family: "Go Mono"}
	if got := spec.String(); got != "13.5px Go Mono" {
		t.Errorf("String() = %q", got)
	}
	if got := (metrics.FontSpec{Size: 16}).Points(); got != 12 {
		t.Errorf("Points() = %v, want 12", got)
	}
}
