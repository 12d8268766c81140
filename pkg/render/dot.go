// Package render exports Cayley graphs of an enumerated semigroup as
// Graphviz DOT and SVG documents.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/markuspf/libsemigroups/pkg/semigroup"
)

// Side selects which Cayley graph to export.
type Side int

const (
	// Right exports the right Cayley graph, with an edge p -> p*g for every
	// generator g.
	Right Side = iota

	// Left exports the left Cayley graph, with an edge p -> g*p.
	Left
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// edgeColors cycles over the generator letters so parallel generator actions
// stay distinguishable in small graphs.
var edgeColors = []string{
	"#1f77b4", "#d62728", "#2ca02c", "#9467bd", "#ff7f0e",
	"#8c564b", "#e377c2", "#17becf",
}

// ToDOT returns a Graphviz DOT representation of one Cayley graph of s. The
// semigroup is fully enumerated first. Nodes are labelled with their
// position and minimal word; edges are labelled with the generator letter
// and coloured per letter.
//
// The output is a complete DOT digraph that can be rendered with the
// Graphviz tools or programmatically with RenderSVG.
func ToDOT(s *semigroup.Semigroup, side Side) string {
	size := s.Size()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %sCayley {\n", side)
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, shape=circle, style=filled, fillcolor=white];\n\n")

	for p := 0; p < size; p++ {
		word := s.MinimalFactorisation(semigroup.Pos(p))
		fmt.Fprintf(&buf, "  n%d [label=%q];\n", p, fmt.Sprintf("%d\n%s", p, wordString(word)))
	}
	buf.WriteByte('\n')

	for p := 0; p < size; p++ {
		for g := 0; g < s.NrGens(); g++ {
			var q semigroup.Pos
			if side == Left {
				q = s.LeftCayley(semigroup.Pos(p), semigroup.Letter(g))
			} else {
				q = s.RightCayley(semigroup.Pos(p), semigroup.Letter(g))
			}
			color := edgeColors[g%len(edgeColors)]
			fmt.Fprintf(&buf, "  n%d -> n%d [label=\"%d\", color=%q, fontcolor=%q];\n",
				p, q, g, color, color)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders one Cayley graph of s as an SVG image.
//
// RenderSVG generates a DOT representation via ToDOT, then uses Graphviz to
// render it to SVG. The returned bytes are a complete SVG document suitable
// for embedding in HTML or saving to a file. Errors are returned if Graphviz
// cannot initialize, the DOT is malformed, or rendering fails.
func RenderSVG(ctx context.Context, s *semigroup.Semigroup, side Side) ([]byte, error) {
	dot := ToDOT(s, side)

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

// wordString formats a word as space-separated letters.
func wordString(w semigroup.Word) string {
	var b bytes.Buffer
	for i, l := range w {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", l)
	}
	return b.String()
}
