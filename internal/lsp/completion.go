package lsp

import (
	"sort"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/joshrandall8478/color-wizard/internal/resolver"
	"github.com/joshrandall8478/color-wizard/internal/webcolor"
)

// topLevelBlocks are the valid top-level block names in a palette file.
var topLevelBlocks = []string{"colors", "aliases"}

// complete produces completion items given an analysis result, document
// content, and cursor position. This is the core logic, decoupled from
// the LSP protocol handler for testability.
func complete(result *AnalysisResult, content string, pos protocol.Position) []protocol.CompletionItem {
	lines := strings.Split(content, "\n")
	if int(pos.Line) >= len(lines) {
		return nil
	}

	line := lines[pos.Line]
	charPos := min(int(pos.Character), len(line))
	textBeforeCursor := line[:charPos]

	// "colors." in alias values completes to defined entry names.
	if refItems := tryReferenceCompletion(result, textBeforeCursor); refItems != nil {
		return refItems
	}

	// After "=" offer everything a value can be.
	if isValuePosition(textBeforeCursor) {
		return valueCompletions()
	}

	// At brace depth zero offer block snippets.
	if atTopLevel(lines, int(pos.Line)) {
		return topLevelCompletions()
	}

	return nil
}

// tryReferenceCompletion checks whether the text before the cursor ends
// with a "colors." reference prefix and returns the defined entry names.
func tryReferenceCompletion(result *AnalysisResult, textBeforeCursor string) []protocol.CompletionItem {
	if result == nil || len(result.Definitions) == 0 {
		return nil
	}

	idx := strings.LastIndex(textBeforeCursor, "colors.")
	if idx == -1 {
		return nil
	}
	// Partial names after the dot are filtered client-side.
	if strings.ContainsAny(textBeforeCursor[idx+len("colors."):], " \t") {
		return nil
	}

	names := make([]string, 0, len(result.Definitions))
	for key := range result.Definitions {
		names = append(names, strings.TrimPrefix(key, "colors."))
	}
	sort.Strings(names)

	kind := protocol.CompletionItemKindColor
	items := make([]protocol.CompletionItem, 0, len(names))
	for _, name := range names {
		items = append(items, protocol.CompletionItem{
			Label: name,
			Kind:  &kind,
		})
	}
	return items
}

// isValuePosition returns true if the text before the cursor indicates we are
// at a value position (after an "=" sign with nothing meaningful following it).
func isValuePosition(textBeforeCursor string) bool {
	trimmed := strings.TrimSpace(textBeforeCursor)
	eqIdx := strings.LastIndex(trimmed, "=")
	if eqIdx == -1 {
		return false
	}
	afterEq := strings.TrimSpace(trimmed[eqIdx+1:])
	return afterEq == "" || afterEq == "\""
}

// valueCompletions returns completion items for a value position: every
// CSS color name with its hex value, the base color words, and the
// modifier words.
func valueCompletions() []protocol.CompletionItem {
	colorKind := protocol.CompletionItemKindColor
	keywordKind := protocol.CompletionItemKindKeyword

	var items []protocol.CompletionItem

	for _, name := range webcolor.Names() {
		c, _ := webcolor.Table{}.Lookup(name)
		hex := c.Hex()
		items = append(items, protocol.CompletionItem{
			Label:  name,
			Kind:   &colorKind,
			Detail: &hex,
		})
	}

	baseDetail := "base color"
	for _, name := range resolver.BaseColorNames() {
		items = append(items, protocol.CompletionItem{
			Label:  name,
			Kind:   &colorKind,
			Detail: &baseDetail,
		})
	}

	modifierDetail := "modifier"
	for _, name := range resolver.ModifierNames() {
		items = append(items, protocol.CompletionItem{
			Label:  name,
			Kind:   &keywordKind,
			Detail: &modifierDetail,
		})
	}

	return items
}

// atTopLevel reports whether the cursor line sits outside every block,
// judged by brace counting from the top of the file.
func atTopLevel(lines []string, cursorLine int) bool {
	depth := 0
	for i := 0; i <= cursorLine && i < len(lines); i++ {
		line := lines[i]
		depth += strings.Count(line, "{") - strings.Count(line, "}")
	}
	return depth == 0
}

// topLevelCompletions returns completion items for top-level block names.
func topLevelCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet
	kind := protocol.CompletionItemKindSnippet

	var items []protocol.CompletionItem
	for _, name := range topLevelBlocks {
		snippet := name + " {\n  $0\n}"
		items = append(items, protocol.CompletionItem{
			Label:            name,
			Kind:             &kind,
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}

	return items
}

// textDocumentCompletion is the LSP handler for textDocument/completion requests.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	uri := string(params.TextDocument.URI)

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	items := complete(s.getResult(uri), content, params.Position)
	return items, nil
}
