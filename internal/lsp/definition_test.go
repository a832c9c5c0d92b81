package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestRefAtCursor(t *testing.T) {
	tests := []struct {
		name string
		line string
		char uint32
		want string
	}{
		{"on entry name", "  danger = colors.brand", 20, "colors.brand"},
		{"on prefix", "  danger = colors.brand", 12, "colors.brand"},
		{"on the dot", "  danger = colors.brand", 17, "colors.brand"},
		{"block keyword only", "colors {", 2, ""},
		{"on equals sign", "  danger = colors.brand", 9, ""},
		{"nested path rejected", "  x = colors.a.b", 9, ""},
		{"past end of line", "abc", 10, ""},
		{"empty line", "", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := refAtCursor(tt.line, tt.char); got != tt.want {
				t.Errorf("refAtCursor(%q, %d) = %q, want %q", tt.line, tt.char, got, tt.want)
			}
		})
	}
}

func TestDefinitionReference(t *testing.T) {
	content := `colors {
  brand = "#ff5733"
}

aliases {
  danger = colors.brand
}
`
	result := Analyze("test.hcl", content, testPipeline())

	defRange, ok := result.Definitions["colors.brand"]
	if !ok {
		t.Fatal("expected colors.brand in definitions table")
	}

	// Line 5 is "  danger = colors.brand"; the reference starts at
	// character 11.
	uri := "file:///test.hcl"
	loc := definition(result, content, uri, protocol.Position{Line: 5, Character: 15})
	if loc == nil {
		t.Fatal("expected a definition location for colors.brand")
	}
	if loc.URI != protocol.DocumentUri(uri) {
		t.Errorf("URI = %q, want %q", loc.URI, uri)
	}
	if loc.Range != defRange {
		t.Errorf("Range = %v, want %v", loc.Range, defRange)
	}
}

func TestDefinitionOnHexLiteral(t *testing.T) {
	content := "colors {\n  brand = \"#ff5733\"\n}\n"
	result := Analyze("test.hcl", content, testPipeline())

	loc := definition(result, content, "file:///test.hcl", protocol.Position{Line: 1, Character: 13})
	if loc != nil {
		t.Errorf("definition() on a hex literal = %+v, want nil", loc)
	}
}

func TestDefinitionOnBlockKeyword(t *testing.T) {
	content := "colors {\n  brand = \"#ff5733\"\n}\n"
	result := Analyze("test.hcl", content, testPipeline())

	loc := definition(result, content, "file:///test.hcl", protocol.Position{Line: 0, Character: 2})
	if loc != nil {
		t.Errorf("definition() on the block keyword = %+v, want nil", loc)
	}
}

func TestDefinitionUnknownReference(t *testing.T) {
	content := "colors {\n  brand = \"#ff5733\"\n}\n\naliases {\n  bad = colors.missing\n}\n"
	result := Analyze("test.hcl", content, testPipeline())

	loc := definition(result, content, "file:///test.hcl", protocol.Position{Line: 5, Character: 14})
	if loc != nil {
		t.Errorf("definition() on an unknown reference = %+v, want nil", loc)
	}
}

func TestDefinitionNilResult(t *testing.T) {
	loc := definition(nil, "", "file:///test.hcl", protocol.Position{})
	if loc != nil {
		t.Errorf("definition(nil result) = %+v, want nil", loc)
	}
}
