package format

import (
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "basic formatting",
			input:    `colors{brand="#ff5733"accent="dark red"}`,
			expected: `colors { brand = "#ff5733" accent = "dark red" }`,
		},
		{
			name: "already formatted stays same",
			input: `colors {
  brand = "#ff5733"
}
`,
			expected: `colors {
  brand = "#ff5733"
}
`,
		},
		{
			name:     "extra whitespace normalized",
			input:    `colors   {   brand   =   "#ff5733"   }`,
			expected: `colors { brand = "#ff5733" }`,
		},
		{
			name:     "empty content",
			input:    "",
			expected: "",
		},
		{
			name: "multiple blocks",
			input: `colors{brand="#ff5733"}
aliases{danger=colors.brand}`,
			expected: `colors { brand = "#ff5733" }
aliases { danger = colors.brand }`,
		},
		{
			name:     "multiple blank lines collapsed to one",
			input:    "colors { brand = \"#ff5733\" }\n\n\n\naliases { danger = colors.brand }",
			expected: "colors { brand = \"#ff5733\" }\n\naliases { danger = colors.brand }",
		},
		{
			name:     "single blank line preserved",
			input:    "colors { brand = \"#ff5733\" }\n\naliases { danger = colors.brand }",
			expected: "colors { brand = \"#ff5733\" }\n\naliases { danger = colors.brand }",
		},
		{
			name:     "blank line after opening brace removed",
			input:    "colors {\n\n  brand = \"#ff5733\"\n}",
			expected: "colors {\n  brand = \"#ff5733\"\n}",
		},
		{
			name:     "blank line before closing brace removed",
			input:    "colors {\n  brand = \"#ff5733\"\n\n}",
			expected: "colors {\n  brand = \"#ff5733\"\n}",
		},
		{
			name:     "blank lines after and before braces both removed",
			input:    "colors {\n\n  brand = \"#ff5733\"\n\n}",
			expected: "colors {\n  brand = \"#ff5733\"\n}",
		},
		{
			name: "attribute values aligned",
			input: `colors {
  brand = "#ff5733"
  accent_color = "dark red"
}
`,
			expected: `colors {
  brand        = "#ff5733"
  accent_color = "dark red"
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Format(tt.input)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}

			// Normalize line endings for comparison
			result = strings.TrimSuffix(result, "\n")
			expected := strings.TrimSuffix(tt.expected, "\n")

			if result != expected {
				t.Errorf("Format() = %q, want %q", result, expected)
			}
		})
	}
}

func TestFormatInvalidHCL(t *testing.T) {
	input := `colors { brand = "#ff5733"`
	if _, err := Format(input); err != nil {
		t.Errorf("Format() on incomplete HCL should not error, got: %v", err)
	}
}
