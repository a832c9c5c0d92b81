// Package format canonicalizes palette file source.
package format

import (
	"regexp"

	"github.com/hashicorp/hcl/v2/hclwrite"
)

var multipleBlankLines = regexp.MustCompile(`\n{3,}`)
var blankLineAfterOpenBrace = regexp.MustCompile(`\{\n\s*\n`)
var blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)

// Format returns palette file content formatted in canonical HCL style:
// hclwrite handles indentation and alignment, and blank lines are
// collapsed to at most one, with none directly inside braces.
//
// Partial or invalid HCL is formatted on a best-effort basis, so the
// formatter stays usable while the user is still typing.
func Format(content string) (string, error) {
	formatted := string(hclwrite.Format([]byte(content)))
	formatted = multipleBlankLines.ReplaceAllString(formatted, "\n\n")
	formatted = blankLineAfterOpenBrace.ReplaceAllString(formatted, "{\n")
	formatted = blankLineBeforeCloseBrace.ReplaceAllString(formatted, "\n${1}")
	return formatted, nil
}
