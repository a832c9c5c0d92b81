package lsp

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/joshrandall8478/color-wizard/internal/format"
)

// fullDocumentRange returns a range spanning the entire document content.
func fullDocumentRange(content string) protocol.Range {
	lines := strings.Split(content, "\n")
	last := len(lines) - 1
	return protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: uint32(last), Character: uint32(len(lines[last]))},
	}
}

// textDocumentFormatting handles textDocument/formatting requests by
// replacing the whole document with its canonical form.
func (s *Server) textDocumentFormatting(_ *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	uri := string(params.TextDocument.URI)

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	formatted, err := format.Format(content)
	if err != nil {
		return nil, err
	}
	if formatted == content {
		return []protocol.TextEdit{}, nil
	}

	return []protocol.TextEdit{
		{
			Range:   fullDocumentRange(content),
			NewText: formatted,
		},
	}, nil
}
