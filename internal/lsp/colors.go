package lsp

import (
	"fmt"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/joshrandall8478/color-wizard/internal/color"
)

// colorToLSP converts an internal color.Color (uint8 RGB) to a protocol.Color (float32 0.0-1.0).
func colorToLSP(c color.Color) protocol.Color {
	return protocol.Color{
		Red:   float32(c.R) / 255.0,
		Green: float32(c.G) / 255.0,
		Blue:  float32(c.B) / 255.0,
		Alpha: 1.0,
	}
}

// documentColors converts the analysis result's color locations into LSP ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// colorPresentation produces color presentation options for a given color and range.
// Quoted values (hex codes, names, descriptions) get a TextEdit replacing them with
// a quoted hex literal. colors.<name> references return an empty slice so the picker
// never replaces a reference with a literal.
func colorPresentation(content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	c := color.Color{
		R: uint8(params.Color.Red * 255),
		G: uint8(params.Color.Green * 255),
		B: uint8(params.Color.Blue * 255),
	}
	hexStr := c.Hex()

	text := extractText(content, params.Range)

	if strings.HasPrefix(text, "colors.") {
		return []protocol.ColorPresentation{}
	}

	if strings.HasPrefix(text, "\"") {
		newText := fmt.Sprintf("%q", hexStr)
		return []protocol.ColorPresentation{
			{
				Label: hexStr,
				TextEdit: &protocol.TextEdit{
					Range:   params.Range,
					NewText: newText,
				},
			},
		}
	}

	return []protocol.ColorPresentation{}
}

// textDocumentDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	uri := string(params.TextDocument.URI)
	result := s.getResult(uri)
	return documentColors(result), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	uri := string(params.TextDocument.URI)
	content, ok := s.docs.Get(uri)
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(content, params), nil
}
