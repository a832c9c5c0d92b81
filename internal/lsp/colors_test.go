package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/joshrandall8478/color-wizard/internal/color"
)

func TestColorToLSP(t *testing.T) {
	got := colorToLSP(color.Color{R: 255, G: 0, B: 127})
	if got.Red != 1.0 || got.Green != 0.0 || got.Alpha != 1.0 {
		t.Errorf("colorToLSP() = %+v, want red=1 green=0 alpha=1", got)
	}
	want := float32(127) / 255.0
	if got.Blue != want {
		t.Errorf("colorToLSP() blue = %v, want %v", got.Blue, want)
	}
}

func TestDocumentColors(t *testing.T) {
	content := "colors {\n  brand = \"#ff5733\"\n  accent = \"dark red\"\n}\n"
	result := Analyze("test.hcl", content, testPipeline())

	infos := documentColors(result)
	if len(infos) != 2 {
		t.Fatalf("documentColors() returned %d items, want 2", len(infos))
	}
}

func TestDocumentColorsNilResult(t *testing.T) {
	infos := documentColors(nil)
	if infos == nil || len(infos) != 0 {
		t.Errorf("documentColors(nil) = %v, want empty slice", infos)
	}
}

func TestColorPresentationQuotedValue(t *testing.T) {
	content := "colors {\n  brand = \"dark red\"\n}\n"
	params := &protocol.ColorPresentationParams{
		Color: protocol.Color{Red: 1, Green: 0, Blue: 0, Alpha: 1},
		Range: protocol.Range{
			Start: protocol.Position{Line: 1, Character: 10},
			End:   protocol.Position{Line: 1, Character: 20},
		},
	}

	presentations := colorPresentation(content, params)
	if len(presentations) != 1 {
		t.Fatalf("colorPresentation() returned %d items, want 1", len(presentations))
	}
	p := presentations[0]
	if p.Label != "#ff0000" {
		t.Errorf("label = %q, want %q", p.Label, "#ff0000")
	}
	if p.TextEdit == nil || p.TextEdit.NewText != `"#ff0000"` {
		t.Errorf("text edit = %+v, want quoted hex literal", p.TextEdit)
	}
}

func TestColorPresentationReference(t *testing.T) {
	content := "aliases {\n  danger = colors.brand\n}\n"
	params := &protocol.ColorPresentationParams{
		Color: protocol.Color{Red: 1, Green: 0, Blue: 0, Alpha: 1},
		Range: protocol.Range{
			Start: protocol.Position{Line: 1, Character: 11},
			End:   protocol.Position{Line: 1, Character: 23},
		},
	}

	presentations := colorPresentation(content, params)
	if len(presentations) != 0 {
		t.Errorf("colorPresentation() on a reference returned %d items, want 0", len(presentations))
	}
}
