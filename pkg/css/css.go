// Package css serializes a sheet into a standard CSS stylesheet.
//
// Output is deterministic: font imports first, then base rules grouped by
// region in tree order, then one @media block per band in declaration
// order. Identical sheets always produce byte-identical output, so the
// result can be cached under the sheet hash.
package css

import (
	"fmt"
	"strings"

	"github.com/urutau-nz/dash-evaluating-proximity/pkg/sheet"
)

// Render serializes the whole sheet.
func Render(s *sheet.Sheet) string {
	var b strings.Builder

	for _, f := range s.Fonts {
		fmt.Fprintf(&b, "@import url(%q);\n", f.URL)
	}
	if len(s.Fonts) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(rules(s, s.Base, ""))

	for _, band := range s.Bands {
		if len(band.Decls) == 0 {
			continue
		}
		cond := band.MediaQuery()
		if cond == "" {
			// A band over all widths is just more base rules.
			b.WriteString(rules(s, band.Decls, ""))
			continue
		}
		fmt.Fprintf(&b, "@media %s {\n", cond)
		body := strings.TrimRight(rules(s, band.Decls, "  "), "\n")
		b.WriteString(body)
		b.WriteString("\n}\n\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// rules groups decls by region, emits one rule block per region in tree
// order, and keeps each block's declarations in authored order.
func rules(s *sheet.Sheet, decls []sheet.Decl, indent string) string {
	byRegion := make(map[sheet.RegionID][]sheet.Decl)
	for _, d := range decls {
		byRegion[d.Region] = append(byRegion[d.Region], d)
	}

	var b strings.Builder
	for _, id := range s.Tree.IDs() {
		ds := byRegion[id]
		if len(ds) == 0 {
			continue
		}
		reg, _ := s.Tree.Get(id)
		fmt.Fprintf(&b, "%s%s {\n", indent, reg.Selector)
		for _, d := range ds {
			fmt.Fprintf(&b, "%s  %s: %s;\n", indent, d.Property, d.Value.CSS())
		}
		fmt.Fprintf(&b, "%s}\n\n", indent)
	}
	return b.String()
}
