package cli

import (
	"reflect"
	"testing"

	"github.com/connectoviz/connectoviz/pkg/errors"
	"github.com/connectoviz/connectoviz/pkg/palette"
)

func TestParseGroupColors(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []string
		want    map[string]string // group → hex
		wantErr errors.Code
	}{
		{
			name: "Empty",
		},
		{
			name:  "Pairs",
			pairs: []string{"frontal=red", "occipital=#1f77b4"},
			want:  map[string]string{"frontal": "#ff0000", "occipital": "#1f77b4"},
		},
		{
			name:    "MissingEquals",
			pairs:   []string{"frontal"},
			wantErr: errors.ErrCodeInvalidInput,
		},
		{
			name:    "EmptyGroup",
			pairs:   []string{"=red"},
			wantErr: errors.ErrCodeInvalidInput,
		},
		{
			name:    "BadColor",
			pairs:   []string{"frontal=notacolor"},
			wantErr: errors.ErrCodeInvalidColor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseGroupColors(tt.pairs)
			if tt.wantErr != "" {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want code %s", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if tt.want == nil {
				if got != nil {
					t.Fatalf("got %v, want nil", got)
				}
				return
			}
			hexes := make(map[string]string, len(got))
			for g, c := range got {
				hexes[g] = c.Hex()
			}
			if !reflect.DeepEqual(hexes, tt.want) {
				t.Errorf("parsed = %v, want %v", hexes, tt.want)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		base   string
		format string
		multi  bool
		want   string
	}{
		{"out", "svg", false, "out.svg"},
		{"out.svg", "svg", false, "out.svg"},
		{"out", "svg", true, "out.svg"},
		{"out.svg", "png", true, "out.svg.png"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.base, tt.format, tt.multi); got != tt.want {
			t.Errorf("outputPath(%q, %q, %v) = %q, want %q", tt.base, tt.format, tt.multi, got, tt.want)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Palette != palette.Default {
		t.Errorf("Palette = %q, want %q", cfg.Palette, palette.Default)
	}
	if cfg.Format != "svg" {
		t.Errorf("Format = %q, want svg", cfg.Format)
	}
	if cfg.Size != 800 {
		t.Errorf("Size = %d, want 800", cfg.Size)
	}
}
