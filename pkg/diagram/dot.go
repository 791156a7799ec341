// Package diagram renders the region containment tree as a Graphviz
// diagram, for documentation and for the regions CLI command.
package diagram

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/urutau-nz/dash-evaluating-proximity/pkg/sheet"
)

// Options configures tree diagram rendering.
type Options struct {
	// Selectors includes each region's CSS selector in its node label.
	Selectors bool
}

// ToDOT converts a region tree to Graphviz DOT format. The resulting DOT
// string can be rendered with [RenderSVG].
func ToDOT(t *sheet.Tree, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph regions {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, id := range t.IDs() {
		r, _ := t.Get(id)
		fmt.Fprintf(&buf, "  %q [label=%q];\n", r.ID, fmtLabel(r, opts.Selectors))
	}

	buf.WriteString("\n")
	for _, id := range t.IDs() {
		r, _ := t.Get(id)
		if r.Parent != "" {
			fmt.Fprintf(&buf, "  %q -> %q;\n", r.Parent, r.ID)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(r sheet.Region, selectors bool) string {
	if !selectors || r.Selector == string(r.ID) {
		return string(r.ID)
	}
	return string(r.ID) + "\n" + r.Selector
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
