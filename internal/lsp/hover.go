package lsp

import (
	"fmt"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/joshrandall8478/color-wizard/internal/webcolor"
)

// posInRange returns true if pos is within the range [r.Start, r.End).
// The end position is exclusive.
func posInRange(pos protocol.Position, r protocol.Range) bool {
	if pos.Line < r.Start.Line || pos.Line > r.End.Line {
		return false
	}
	if pos.Line == r.Start.Line && pos.Character < r.Start.Character {
		return false
	}
	if pos.Line == r.End.Line && pos.Character >= r.End.Character {
		return false
	}
	return true
}

// extractText extracts the source text at a given LSP range from document content.
func extractText(content string, r protocol.Range) string {
	lines := strings.Split(content, "\n")

	startLine := int(r.Start.Line)
	endLine := int(r.End.Line)

	if startLine >= len(lines) {
		return ""
	}
	if endLine >= len(lines) {
		endLine = len(lines) - 1
	}

	if startLine == endLine {
		line := lines[startLine]
		startChar := min(int(r.Start.Character), len(line))
		endChar := min(int(r.End.Character), len(line))
		return line[startChar:endChar]
	}

	var parts []string
	for i := startLine; i <= endLine; i++ {
		line := lines[i]
		switch i {
		case startLine:
			parts = append(parts, line[min(int(r.Start.Character), len(line)):])
		case endLine:
			parts = append(parts, line[:min(int(r.End.Character), len(line))])
		default:
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, "\n")
}

// hover produces a Hover response for the given cursor position. The
// hover shows the source text, the resolved hex and RGB forms, and the
// closest CSS color name. Returns nil if no color is at the position.
func hover(result *AnalysisResult, content string, pos protocol.Position) *protocol.Hover {
	if result == nil {
		return nil
	}

	for _, cl := range result.Colors {
		if !posInRange(pos, cl.Range) {
			continue
		}

		sourceText := extractText(content, cl.Range)
		nearest, nearestColor := webcolor.Nearest(cl.Color)

		var md string
		if nearestColor == cl.Color {
			md = fmt.Sprintf("**%s**\n\n`%s` · `%s` · %s",
				sourceText, cl.Color.Hex(), cl.Color.RGB(), nearest)
		} else {
			md = fmt.Sprintf("**%s**\n\n`%s` · `%s` · near %s",
				sourceText, cl.Color.Hex(), cl.Color.RGB(), nearest)
		}

		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: md,
			},
			Range: &cl.Range,
		}
	}

	return nil
}

// textDocumentHover handles textDocument/hover requests.
func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	uri := string(params.TextDocument.URI)

	result := s.getResult(uri)
	if result == nil {
		return nil, nil
	}

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	return hover(result, content, params.Position), nil
}
