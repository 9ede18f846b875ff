// Package gen renders Go declarations from a validated manifest. This package
// is internal and not part of the public API.
package gen

import (
	"fmt"
	"go/format"
	"strings"

	ir "github.com/blaster151/adt/internal/ir"
)

// RenderFile renders a Go source file declaring every type in the manifest
// via the dsl builders. The output is gofmt-formatted.
func RenderFile(pkg string, m ir.Manifest) ([]byte, error) {
	b := &strings.Builder{}
	fmt.Fprintf(b, "// Code generated by adt compile. DO NOT EDIT.\n\n")
	fmt.Fprintf(b, "package %s\n\n", pkg)

	b.WriteString("import (\n")
	b.WriteString("\tadt \"github.com/blaster151/adt\"\n")
	b.WriteString("\t\"github.com/blaster151/adt/dsl\"\n")
	if needsEffect(m) {
		b.WriteString("\t\"github.com/blaster151/adt/effect\"\n")
	}
	b.WriteString(")\n\n")

	for _, d := range m.Types {
		if d.IsSum() {
			renderSum(b, d)
		} else {
			renderProduct(b, d)
		}
	}

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("gen: format rendered source: %w", err)
	}
	return src, nil
}

func renderSum(b *strings.Builder, d ir.TypeDef) {
	fmt.Fprintf(b, "// %sType declares the %s sum type.\nvar %sType = dsl.Sum(%q).\n", d.Name, d.Name, d.Name, d.Name)
	for _, vr := range d.Variants {
		if len(vr.Fields) == 0 {
			fmt.Fprintf(b, "\tVariant(%q, nil).\n", vr.Name)
			continue
		}
		fmt.Fprintf(b, "\tVariant(%q, func(args ...any) adt.Fields {\n\t\treturn adt.Fields{", vr.Name)
		for i, f := range vr.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%q: args[%d]", f, i)
		}
		b.WriteString("}\n\t}).\n")
	}
	renderCommon(b, d)
}

func renderProduct(b *strings.Builder, d ir.TypeDef) {
	fmt.Fprintf(b, "// %sType declares the %s product type.\nvar %sType = dsl.Product(%q).\n", d.Name, d.Name, d.Name, d.Name)
	fmt.Fprintf(b, "\tFields(")
	for i, f := range d.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%q", f)
	}
	b.WriteString(").\n")
	renderCommon(b, d)
}

func renderCommon(b *strings.Builder, d ir.TypeDef) {
	if d.Effect != "" && d.Effect != "Pure" {
		fmt.Fprintf(b, "\tEffect(effect.Of(%q)).\n", d.Effect)
	}
	if len(d.Derive) > 0 {
		b.WriteString("\tDerive(")
		for i, name := range d.Derive {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "adt.Derive%s", name)
		}
		b.WriteString(").\n")
	}
	b.WriteString("\tMustBuild()\n\n")
}

func needsEffect(m ir.Manifest) bool {
	for _, d := range m.Types {
		if d.Effect != "" && d.Effect != "Pure" {
			return true
		}
	}
	return false
}
