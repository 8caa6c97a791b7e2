// Package render turns trees into Graphviz node-link diagrams.
//
// [ToDOT] produces a DOT document; [RenderSVG] and [RenderPNG] rasterize it
// through the embedded Graphviz engine. Node identifiers are assigned by
// depth-first position, so trees with repeated labels render correctly.
package render

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/treemark/treemark/pkg/errors"
	"github.com/treemark/treemark/pkg/observability"
	"github.com/treemark/treemark/pkg/tree"
)

// Options configures diagram rendering.
type Options struct {
	// Detailed includes node values in the box labels.
	// When false, only the node label is shown.
	Detailed bool
}

// ToDOT converts the tree rooted at origin to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
// A nil origin yields an empty graph.
func ToDOT(origin *tree.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	var edges bytes.Buffer
	nextID := 0
	var walk func(n *tree.Node) string
	walk = func(n *tree.Node) string {
		id := fmt.Sprintf("n%d", nextID)
		nextID++
		fmt.Fprintf(&buf, "  %s [label=%q];\n", id, fmtLabel(n, opts.Detailed))
		for c := n.Child(); c != nil; c = c.Sibling() {
			childID := walk(c)
			fmt.Fprintf(&edges, "  %s -> %s;\n", id, childID)
		}
		return id
	}
	if origin != nil {
		walk(origin)
	}

	buf.WriteString("\n")
	buf.Write(edges.Bytes())
	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n *tree.Node, detailed bool) string {
	if !detailed || !n.HasValue() {
		return n.Label()
	}
	return n.Label() + "\n" + n.Value()
}

// RenderSVG renders a DOT document to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT document to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	start := time.Now()
	observability.Render().OnRenderStart(string(format), 0)

	out, err := doRender(ctx, dot, format)
	observability.Render().OnRenderComplete(string(format), time.Since(start), err)
	return out, err
}

func doRender(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "failed to initialize graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "failed to parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "graphviz render failed")
	}
	return buf.Bytes(), nil
}
