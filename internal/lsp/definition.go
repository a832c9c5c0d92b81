package lsp

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// refAtCursor returns the colors.<name> reference under the cursor, or
// "" when the cursor is not on one. The whole dotted word counts, so the
// cursor may sit on either side of the dot.
func refAtCursor(line string, character uint32) string {
	col := int(character)
	if col >= len(line) || !isIdentChar(line[col]) {
		return ""
	}

	end := col
	for end < len(line) && isIdentChar(line[end]) {
		end++
	}
	start := col
	for start > 0 && isIdentChar(line[start-1]) {
		start--
	}

	word := line[start:end]
	name, ok := strings.CutPrefix(word, "colors.")
	if !ok || name == "" || strings.Contains(name, ".") {
		return ""
	}
	return word
}

// isIdentChar returns true if the byte is a valid identifier character
// (letter, digit, underscore, or dot for dotted references).
func isIdentChar(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '_' || b == '.'
}

// definition resolves a colors.<name> reference at the cursor to the
// range where that entry is defined. Returns nil if the cursor is not on
// a reference or the entry does not exist.
func definition(result *AnalysisResult, content string, uri string, pos protocol.Position) *protocol.Location {
	if result == nil {
		return nil
	}

	lines := strings.Split(content, "\n")
	if int(pos.Line) >= len(lines) {
		return nil
	}

	ref := refAtCursor(lines[pos.Line], pos.Character)
	if ref == "" {
		return nil
	}

	defRange, ok := result.Definitions[strings.ToLower(ref)]
	if !ok {
		return nil
	}

	return &protocol.Location{
		URI:   protocol.DocumentUri(uri),
		Range: defRange,
	}
}

// textDocumentDefinition handles textDocument/definition requests.
func (s *Server) textDocumentDefinition(_ *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	uri := string(params.TextDocument.URI)

	result := s.getResult(uri)
	if result == nil {
		return nil, nil
	}

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	return definition(result, content, uri, params.Position), nil
}
