package colorwizard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshrandall8478/color-wizard/internal/color"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Result
		ok    bool
	}{
		{"hex with hash", "#FF5733", Result{Color: color.Color{R: 255, G: 87, B: 51}, Hex: "#FF5733"}, true},
		{"hex lowercase", "#ff5733", Result{Color: color.Color{R: 255, G: 87, B: 51}, Hex: "#FF5733"}, true},
		{"hex bare", "a1b2c3", Result{Color: color.Color{R: 161, G: 178, B: 195}, Hex: "#A1B2C3"}, true},
		{"short hex", "F08", Result{Color: color.Color{R: 255, G: 0, B: 136}, Hex: "#FF0088"}, true},
		{"css name", "coral", Result{Color: color.Color{R: 255, G: 127, B: 80}, Hex: "#FF7F50"}, true},
		{"css name mixed case", "Coral", Result{Color: color.Color{R: 255, G: 127, B: 80}, Hex: "#FF7F50"}, true},
		{"base color", "red", Result{Color: color.Color{R: 255, G: 0, B: 0}, Hex: "#FF0000"}, true},
		{"vague phrase", "dark red", Result{Color: color.Color{R: 127, G: 0, B: 0}, Hex: "#7F0000"}, true},
		{"vague uppercase", "DARK RED", Result{Color: color.Color{R: 127, G: 0, B: 0}, Hex: "#7F0000"}, true},
		{"pastel pink", "pastel pink", Result{Color: color.Color{R: 255, G: 255, B: 255}, Hex: "#FFFFFF"}, true},
		{"unrecognized", "banana-republic", Result{}, false},
		{"empty", "", Result{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.input)
			if ok != tt.ok {
				t.Fatalf("Resolve(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveShortHexEquivalence(t *testing.T) {
	short, ok := Resolve("F08")
	if !ok {
		t.Fatal("Resolve(F08) did not match")
	}
	long, ok := Resolve("FF0088")
	if !ok {
		t.Fatal("Resolve(FF0088) did not match")
	}
	if short != long {
		t.Errorf("Resolve(F08) = %+v, Resolve(FF0088) = %+v; want equal", short, long)
	}
}

func TestRoleLabel(t *testing.T) {
	if got, want := RoleLabel("#ff5733"), "FF5733"; got != want {
		t.Errorf("RoleLabel(#ff5733) = %q, want %q", got, want)
	}
}

func TestNewPipelineWithPalette(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palette.hcl")
	src := `
colors {
  brand = "#123456"
  coral = "#000001"
}
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	pal, err := LoadPalette(path)
	if err != nil {
		t.Fatalf("LoadPalette() error: %v", err)
	}

	pipe := NewPipeline(pal)

	res, ok := pipe.Resolve("brand")
	if !ok {
		t.Fatal("Resolve(brand) did not match")
	}
	if want := "#123456"; res.Hex != want {
		t.Errorf("Resolve(brand).Hex = %q, want %q", res.Hex, want)
	}

	// Palette entries shadow CSS names.
	res, ok = pipe.Resolve("coral")
	if !ok {
		t.Fatal("Resolve(coral) did not match")
	}
	if want := "#000001"; res.Hex != want {
		t.Errorf("Resolve(coral).Hex = %q, want %q", res.Hex, want)
	}

	// CSS names still work for everything else.
	res, ok = pipe.Resolve("salmon")
	if !ok {
		t.Fatal("Resolve(salmon) did not match")
	}
	if want := "#FA8072"; res.Hex != want {
		t.Errorf("Resolve(salmon).Hex = %q, want %q", res.Hex, want)
	}
}

func TestNewPipelineNilPalette(t *testing.T) {
	pipe := NewPipeline(nil)
	res, ok := pipe.Resolve("coral")
	if !ok {
		t.Fatal("Resolve(coral) did not match")
	}
	if want := "#FF7F50"; res.Hex != want {
		t.Errorf("Resolve(coral).Hex = %q, want %q", res.Hex, want)
	}
}
