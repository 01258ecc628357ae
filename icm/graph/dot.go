//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package graph

import (
	"fmt"
	"io"

	"github.com/markkurossi/text/superscript"
)

// Dot creates graphviz dot output of the resource graph. Node
// positions follow the circuit layout: gate ordinal on the x axis,
// qubit line on the y axis.
func (g *Graph) Dot(out io.Writer) {
	fmt.Fprintf(out, "graph resource\n{\n")
	fmt.Fprintf(out, "  overlap=scale;\n")
	fmt.Fprintf(out, "  node\t[fontname=\"Helvetica\", style=filled];\n")

	ids := make(map[Key]string)
	for i, k := range g.Nodes() {
		name := fmt.Sprintf("n%d", i)
		ids[k] = name

		node, _ := g.Node(k)
		label := k.Role.String() + superscript.Itoa(k.Gate)
		if node.Pins != 0 {
			label += fmt.Sprintf(" [%s]", node.Pins)
		}
		fmt.Fprintf(out, "  %s\t[label=%q, fillcolor=%s, pos=\"%g,%g!\"];\n",
			name, label, node.Color, node.X, node.Y)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(out, "  %s -- %s;\n", ids[e[0]], ids[e[1]])
	}
	fmt.Fprintf(out, "}\n")
}
