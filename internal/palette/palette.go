// Package palette loads user-defined color palettes from HCL files.
//
// A palette file has a colors block whose attribute values may be any
// resolvable color description, and an optional aliases block whose
// values may reference earlier entries as colors.<name>:
//
//	colors {
//	  brand  = "#ff5733"
//	  accent = "dark red"
//	}
//
//	aliases {
//	  danger = colors.brand
//	}
package palette

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/joshrandall8478/color-wizard/internal/color"
	"github.com/joshrandall8478/color-wizard/internal/resolver"
)

// Palette is a named-color table loaded from a palette file. It
// implements resolver.NameTable and is immutable after Load.
type Palette struct {
	colors map[string]color.Color
}

// Load reads and parses a palette file. Every value is resolved through
// the given pipeline, so entries may be hex codes, CSS names, or vague
// descriptions.
func Load(path string, pipe *resolver.Pipeline) (*Palette, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette file: %w", err)
	}
	return Parse(src, path, pipe)
}

// Parse parses palette file content. The filename is used in error
// positions only.
func Parse(src []byte, filename string, pipe *resolver.Pipeline) (*Palette, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing palette: %s", diags.Error())
	}

	body := file.Body.(*hclsyntax.Body)

	p := &Palette{colors: make(map[string]color.Color)}

	// First pass: the colors block, literal descriptions only.
	if err := p.parseColors(body, pipe); err != nil {
		return nil, err
	}

	// Second pass: aliases, evaluated against the colors parsed above.
	if err := p.parseAliases(body, pipe, p.evalContext()); err != nil {
		return nil, err
	}

	return p, nil
}

// Lookup resolves a palette name, case-insensitively. Entry names are
// stored lowercase, so this is a single map hit.
func (p *Palette) Lookup(name string) (color.Color, bool) {
	c, ok := p.colors[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Names returns all palette entry names in sorted order.
func (p *Palette) Names() []string {
	out := make([]string, 0, len(p.colors))
	for name := range p.colors {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of palette entries.
func (p *Palette) Len() int {
	return len(p.colors)
}

func (p *Palette) parseColors(body *hclsyntax.Body, pipe *resolver.Pipeline) error {
	for _, block := range body.Blocks {
		if block.Type != "colors" {
			continue
		}
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return fmt.Errorf("parsing colors: %s", diags.Error())
		}
		for name, attr := range attrs {
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return fmt.Errorf("evaluating colors.%s: %s", name, diags.Error())
			}
			if val.Type() != cty.String {
				return fmt.Errorf("colors.%s: expected a string, got %s", name, val.Type().FriendlyName())
			}
			res, ok := pipe.Resolve(val.AsString())
			if !ok {
				return fmt.Errorf("colors.%s: %q is not a recognizable color", name, val.AsString())
			}
			// Names are case-insensitive, stored lowercase.
			key := strings.ToLower(name)
			if _, exists := p.colors[key]; exists {
				return fmt.Errorf("colors.%s: name already defined", key)
			}
			p.colors[key] = res.Color
		}
		return nil
	}
	return fmt.Errorf("no colors block found")
}

func (p *Palette) parseAliases(body *hclsyntax.Body, pipe *resolver.Pipeline, ctx *hcl.EvalContext) error {
	for _, block := range body.Blocks {
		if block.Type != "aliases" {
			continue
		}
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return fmt.Errorf("parsing aliases: %s", diags.Error())
		}
		for name, attr := range attrs {
			val, diags := attr.Expr.Value(ctx)
			if diags.HasErrors() {
				return fmt.Errorf("evaluating aliases.%s: %s", name, diags.Error())
			}
			if val.Type() != cty.String {
				return fmt.Errorf("aliases.%s: expected a string, got %s", name, val.Type().FriendlyName())
			}
			res, ok := pipe.Resolve(val.AsString())
			if !ok {
				return fmt.Errorf("aliases.%s: %q is not a recognizable color", name, val.AsString())
			}
			key := strings.ToLower(name)
			if _, exists := p.colors[key]; exists {
				return fmt.Errorf("aliases.%s: name already defined", key)
			}
			p.colors[key] = res.Color
		}
		return nil
	}
	return nil
}

// evalContext exposes the parsed colors as colors.<name> hex strings for
// alias expressions.
func (p *Palette) evalContext() *hcl.EvalContext {
	vals := make(map[string]cty.Value, len(p.colors))
	for _, name := range p.Names() {
		vals[name] = cty.StringVal(p.colors[name].Hex())
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"colors": cty.ObjectVal(vals),
		},
	}
}
