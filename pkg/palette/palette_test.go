package palette

import (
	stderrors "errors"
	"reflect"
	"strings"
	"testing"

	"github.com/connectoviz/connectoviz/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantHex string
		wantErr bool
	}{
		{"Named", "red", "#ff0000", false},
		{"NamedCase", " Blue ", "#0000ff", false},
		{"Hex", "#1f77b4", "#1f77b4", false},
		{"Unknown", "not-a-color", "", true},
		{"Empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidColor) {
					t.Errorf("error code = %q, want INVALID_COLOR", errors.GetCode(err))
				}
				return
			}
			if c.Hex() != tt.wantHex {
				t.Errorf("Hex() = %q, want %q", c.Hex(), tt.wantHex)
			}
		})
	}
}

func TestDefaultIsTwentyColorPalette(t *testing.T) {
	if Default != "tab20" {
		t.Fatalf("Default = %q, want tab20", Default)
	}
	if got := len(categorical["tab20"]); got != 20 {
		t.Errorf("tab20 has %d colors, want 20", got)
	}
}

func TestSample(t *testing.T) {
	t.Run("CategoricalDistinct", func(t *testing.T) {
		colors, err := Sample("tab20", 5)
		if err != nil {
			t.Fatal(err)
		}
		if len(colors) != 5 {
			t.Fatalf("got %d colors, want 5", len(colors))
		}
		seen := map[string]bool{}
		for _, c := range colors {
			if seen[c.Hex()] {
				t.Errorf("duplicate color %s in 5-of-20 sample", c.Hex())
			}
			seen[c.Hex()] = true
		}
	})

	t.Run("SequentialEndpoints", func(t *testing.T) {
		colors, err := Sample("viridis", 3)
		if err != nil {
			t.Fatal(err)
		}
		if colors[0].Hex() != "#440154" {
			t.Errorf("first = %s, want #440154", colors[0].Hex())
		}
		if colors[2].Hex() != "#fde725" {
			t.Errorf("last = %s, want #fde725", colors[2].Hex())
		}
	})

	t.Run("SingleSample", func(t *testing.T) {
		colors, err := Sample("tab10", 1)
		if err != nil {
			t.Fatal(err)
		}
		if colors[0].Hex() != "#1f77b4" {
			t.Errorf("single sample = %s, want first palette entry", colors[0].Hex())
		}
	})

	t.Run("UnknownPalette", func(t *testing.T) {
		_, err := Sample("nope", 3)
		if !errors.Is(err, errors.ErrCodeInvalidPalette) {
			t.Errorf("error = %v, want INVALID_PALETTE", err)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		a, _ := Sample("viridis", 7)
		b, _ := Sample("viridis", 7)
		if !reflect.DeepEqual(a, b) {
			t.Error("repeated sampling differs")
		}
	})
}

func TestResolve(t *testing.T) {
	red := MustParse("red")
	blue := MustParse("blue")

	t.Run("NoGroups", func(t *testing.T) {
		colors, err := Resolve(nil, nil, Default, 3)
		if err != nil {
			t.Fatal(err)
		}
		for i, c := range colors {
			if c != DefaultNodeColor {
				t.Errorf("colors[%d] = %s, want default", i, c.Hex())
			}
		}
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := Resolve([]string{"a", "b"}, nil, Default, 3)
		if !errors.Is(err, errors.ErrCodeShapeMismatch) {
			t.Errorf("error = %v, want SHAPE_MISMATCH", err)
		}
	})

	t.Run("MissingExplicitColor", func(t *testing.T) {
		_, err := Resolve([]string{"a", "b", "a"}, map[string]Color{"a": red}, Default, 3)
		var missing *errors.MissingGroupColorError
		if !stderrors.As(err, &missing) {
			t.Fatalf("error = %T, want MissingGroupColorError", err)
		}
		if !reflect.DeepEqual(missing.Missing, []string{"b"}) {
			t.Errorf("Missing = %v, want [b]", missing.Missing)
		}
		if !strings.Contains(err.Error(), "b") {
			t.Errorf("error message %q should mention b", err.Error())
		}
	})

	t.Run("ExplicitMapping", func(t *testing.T) {
		colors, err := Resolve([]string{"a", "b", "a"}, map[string]Color{"a": red, "b": blue}, Default, 3)
		if err != nil {
			t.Fatal(err)
		}
		want := []Color{red, blue, red}
		if !reflect.DeepEqual(colors, want) {
			t.Errorf("colors = %v, want [red blue red]", hexes(colors))
		}
	})

	t.Run("ImplicitDeterministic", func(t *testing.T) {
		// Same distinct set in different node order must give the same
		// group→color assignment.
		a, err := Resolve([]string{"x", "y", "x"}, nil, "tab10", 3)
		if err != nil {
			t.Fatal(err)
		}
		b, err := Resolve([]string{"y", "x", "y"}, nil, "tab10", 3)
		if err != nil {
			t.Fatal(err)
		}
		if a[0] != b[1] {
			t.Error("group x colored differently across calls")
		}
		if a[1] != b[0] {
			t.Error("group y colored differently across calls")
		}
	})
}

func hexes(colors []Color) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = c.Hex()
	}
	return out
}
