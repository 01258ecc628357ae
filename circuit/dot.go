//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"io"
)

// Dot creates graphviz dot output of the circuit.
func (c *Circuit) Dot(out io.Writer) {
	fmt.Fprintf(out, "digraph circuit\n{\n")
	fmt.Fprintf(out, "  overlap=scale;\n")
	fmt.Fprintf(out, "  node\t[fontname=\"Helvetica\"];\n")
	fmt.Fprintf(out, "  {\n    node [shape=plaintext];\n")
	for q := 0; q < c.N; q++ {
		fmt.Fprintf(out, "    q%d\t[label=\"q%d\"];\n", q, q)
	}
	fmt.Fprintf(out, "  }\n")

	fmt.Fprintf(out, "  {\n    node [shape=box];\n")
	for idx, g := range c.Gates {
		fmt.Fprintf(out, "    g%d\t[label=\"%s\"];\n", idx, g)
	}
	fmt.Fprintf(out, "  }\n")

	// Thread each qubit line through the gates referencing it.
	prev := make([]string, c.N)
	for q := 0; q < c.N; q++ {
		prev[q] = fmt.Sprintf("q%d", q)
	}
	for idx, g := range c.Gates {
		name := fmt.Sprintf("g%d", idx)
		for _, q := range g.Qubits() {
			if q < 0 || q >= c.N {
				continue
			}
			fmt.Fprintf(out, "  %s -> %s;\n", prev[q], name)
			prev[q] = name
		}
	}
	fmt.Fprintf(out, "}\n")
}
