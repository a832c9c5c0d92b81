package lsp

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/zclconf/go-cty/cty"

	"github.com/joshrandall8478/color-wizard/internal/color"
	"github.com/joshrandall8478/color-wizard/internal/resolver"
)

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
)

// AnalysisResult holds everything produced by analyzing a palette file.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Colors      []ColorLocation
	Definitions map[string]protocol.Range // "colors.brand" -> definition range
}

// ColorLocation records a resolved color at a specific source position.
type ColorLocation struct {
	Range protocol.Range
	Color color.Color
	IsRef bool // true for colors.<name> references, false for literal descriptions
}

// hclPosToLSP converts an HCL position to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(pos.Line - 1),
		Character: uint32(pos.Column - 1),
	}
}

// hclRangeToLSP converts an HCL range to an LSP range.
func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	severity := DiagError
	if d.Severity == hcl.DiagWarning {
		severity = DiagWarning
	}

	var r protocol.Range
	if d.Subject != nil {
		r = hclRangeToLSP(*d.Subject)
	}

	msg := d.Summary
	if d.Detail != "" {
		msg = fmt.Sprintf("%s: %s", d.Summary, d.Detail)
	}

	return protocol.Diagnostic{
		Range:    r,
		Severity: &severity,
		Message:  msg,
	}
}

// Analyze parses palette file content and produces diagnostics, the
// definition table, and a color location for every value the pipeline
// can resolve. It collects all problems rather than stopping at the
// first.
func Analyze(filename, content string, pipe *resolver.Pipeline) *AnalysisResult {
	result := &AnalysisResult{
		Definitions: make(map[string]protocol.Range),
	}

	file, diags := hclsyntax.ParseConfig([]byte(content), filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		for _, d := range diags {
			result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
		}
		// Semantic analysis needs a parse tree.
		return result
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return result
	}

	colors := make(map[string]color.Color)
	sawColors := false

	// Aliases may sit above the colors block in the file. All colors
	// entries are collected first so references evaluate the same way
	// the loader's two-pass scan does.
	for _, block := range body.Blocks {
		if block.Type == "colors" {
			sawColors = true
			result.analyzeColorsBlock(block, pipe, colors)
		}
	}

	ctx := aliasEvalContext(colors)

	for _, block := range body.Blocks {
		switch block.Type {
		case "colors":
		case "aliases":
			result.analyzeAliasesBlock(block, pipe, colors, ctx)
		default:
			result.addDiag(hclRangeToLSP(block.TypeRange), DiagWarning,
				fmt.Sprintf("unknown block %q (valid: colors, aliases)", block.Type))
		}
	}

	if !sawColors {
		result.addDiag(protocol.Range{}, DiagWarning, "no colors block found")
	}

	return result
}

func (r *AnalysisResult) analyzeColorsBlock(block *hclsyntax.Block, pipe *resolver.Pipeline, colors map[string]color.Color) {
	for _, attr := range block.Body.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			for _, d := range diags {
				r.Diagnostics = append(r.Diagnostics, hclDiagToLSP(d))
			}
			continue
		}

		exprRange := hclRangeToLSP(attr.Expr.Range())

		if val.Type() != cty.String {
			r.addDiag(exprRange, DiagError,
				fmt.Sprintf("colors.%s: expected a string, got %s", attr.Name, val.Type().FriendlyName()))
			continue
		}

		res, ok := pipe.Resolve(val.AsString())
		if !ok {
			r.addDiag(exprRange, DiagError,
				fmt.Sprintf("colors.%s: %q is not a recognizable color", attr.Name, val.AsString()))
			continue
		}

		// Entry names are case-insensitive; the loader stores them
		// lowercase and rejects duplicates.
		name := strings.ToLower(attr.Name)
		if _, exists := colors[name]; exists {
			r.addDiag(hclRangeToLSP(attr.NameRange), DiagError,
				fmt.Sprintf("colors.%s: name already defined", name))
			continue
		}

		colors[name] = res.Color
		r.Definitions["colors."+name] = hclRangeToLSP(attr.NameRange)
		r.Colors = append(r.Colors, ColorLocation{
			Range: exprRange,
			Color: res.Color,
		})
	}
}

func (r *AnalysisResult) analyzeAliasesBlock(block *hclsyntax.Block, pipe *resolver.Pipeline, colors map[string]color.Color, ctx *hcl.EvalContext) {
	for _, attr := range block.Body.Attributes {
		if _, exists := colors[strings.ToLower(attr.Name)]; exists {
			r.addDiag(hclRangeToLSP(attr.NameRange), DiagError,
				fmt.Sprintf("aliases.%s: name already defined", strings.ToLower(attr.Name)))
			continue
		}

		isRef := false
		if _, ok := attr.Expr.(*hclsyntax.ScopeTraversalExpr); ok {
			isRef = true
		}

		exprRange := hclRangeToLSP(attr.Expr.Range())

		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			for _, d := range diags {
				r.Diagnostics = append(r.Diagnostics, hclDiagToLSP(d))
			}
			continue
		}

		if val.Type() != cty.String {
			r.addDiag(exprRange, DiagError,
				fmt.Sprintf("aliases.%s: expected a string, got %s", attr.Name, val.Type().FriendlyName()))
			continue
		}

		res, ok := pipe.Resolve(val.AsString())
		if !ok {
			r.addDiag(exprRange, DiagError,
				fmt.Sprintf("aliases.%s: %q is not a recognizable color", attr.Name, val.AsString()))
			continue
		}

		// Aliases claim their name too, so later duplicates are
		// flagged the way the loader rejects them. The eval context
		// was built above and is unaffected.
		colors[strings.ToLower(attr.Name)] = res.Color

		r.Colors = append(r.Colors, ColorLocation{
			Range: exprRange,
			Color: res.Color,
			IsRef: isRef,
		})
	}
}

func (r *AnalysisResult) addDiag(rng protocol.Range, severity protocol.DiagnosticSeverity, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    rng,
		Severity: &severity,
		Message:  msg,
	})
}

func aliasEvalContext(colors map[string]color.Color) *hcl.EvalContext {
	vals := make(map[string]cty.Value, len(colors))
	for name, c := range colors {
		vals[name] = cty.StringVal(c.Hex())
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"colors": cty.ObjectVal(vals),
		},
	}
}
