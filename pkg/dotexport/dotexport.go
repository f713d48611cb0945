// Package dotexport renders a StructureInfo's reduced graph (and, for
// debugging, its virtual containers) as Graphviz DOT, optionally rasterized
// to SVG via goccy/go-graphviz. It is a debug/inspection collaborator, not
// part of the LAF pipeline itself.
package dotexport

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/goccy/go-graphviz"

	"github.com/abstractlayout/laf/pkg/model"
	"github.com/abstractlayout/laf/pkg/rgraph"
)

// ToDOT renders the reduced (NdPr) graph held in info as a Graphviz DOT
// digraph: one node per rgraph.Vertex, labeled with its id and row/col
// (plus the member count for a virtual container), dashed and grey-filled for virtual-container vertices to set
// them apart from ordinary primaries.
func ToDOT(info *model.StructureInfo) string {
	var buf bytes.Buffer
	buf.WriteString("digraph ReducedGraph {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, margin=\"0.15,0.08\"];\n\n")

	vertices := info.ReducedGraph.Vertices()
	sort.Slice(vertices, func(i, j int) bool { return vertices[i].ID < vertices[j].ID })

	for _, v := range vertices {
		attrs := []string{fmt.Sprintf("label=%q", vertexLabel(v))}
		if v.Kind == rgraph.KindVirtualContainer {
			attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", v.ID, joinAttrs(attrs))
	}

	buf.WriteString("\n")
	edges := info.ReducedGraph.Edges()
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func vertexLabel(v *rgraph.Vertex) string {
	if v.Kind == rgraph.KindVirtualContainer {
		return fmt.Sprintf("%s\\nrow %d col %d\\n%d members", v.ID, v.Row, v.Col, len(v.Members))
	}
	return fmt.Sprintf("%s\\nrow %d col %d", v.ID, v.Row, v.Col)
}

func joinAttrs(attrs []string) string {
	out := attrs[0]
	for _, a := range attrs[1:] {
		out += ", " + a
	}
	return out
}

// RenderSVG renders a DOT digraph (as produced by ToDOT) to SVG using an
// in-process Graphviz instance.
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
