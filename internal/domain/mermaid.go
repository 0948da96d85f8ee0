package domain

import (
	"fmt"
	"strconv"
	"strings"

	m "flreduce.dev/pkg/flreduce/internal/model"
)

// MermaidGraph renders g as a Mermaid flowchart. Calls are directed,
// containment and coverage edges are undirected, and every edge carries its
// weight. Mirrored entries are written once.
func MermaidGraph(g *Graph) string {
	var b strings.Builder

	b.WriteString("graph LR\n")

	if g == nil || g.Matrix == nil {
		return b.String()
	}

	testPrefix := "passed_case"
	if g.View == m.ViewFailed {
		testPrefix = "failed_case"
	}

	layout := g.Layout
	methods := layout.Span(BlockMethods)
	statements := layout.Span(BlockStatements)
	tests := layout.Span(BlockTests)

	for i := range methods.Len {
		for j := range methods.Len {
			writeMermaidEdge(&b, g, layout.Node(BlockMethods, i), layout.Node(BlockMethods, j),
				"method_"+strconv.Itoa(i), "-->", "method_"+strconv.Itoa(j))
		}

		for j := range statements.Len {
			writeMermaidEdge(&b, g, layout.Node(BlockMethods, i), layout.Node(BlockStatements, j),
				"method_"+strconv.Itoa(i), "---", "line_"+strconv.Itoa(j))
		}
	}

	for i := range statements.Len {
		for j := range tests.Len {
			writeMermaidEdge(&b, g, layout.Node(BlockStatements, i), layout.Node(BlockTests, j),
				"line_"+strconv.Itoa(i), "---", testPrefix+"_"+strconv.Itoa(j))
		}
	}

	return b.String()
}

func writeMermaidEdge(b *strings.Builder, g *Graph, row, col int, from, arrow, to string) {
	w := g.Matrix.At(row, col)
	if w == 0 {
		return
	}

	fmt.Fprintf(b, "    %s %s|%s| %s\n", from, arrow, strconv.FormatFloat(w, 'g', 4, 64), to)
}
