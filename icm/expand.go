//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package icm

import (
	"github.com/markkurossi/icm/circuit"
)

// ExpandToffoli rewrites the TOFFOLI gates of a decomposed circuit
// into the canonical 15-gate Clifford+T sequence. All other gates
// pass through unchanged, preserving relative order.
func ExpandToffoli(c *circuit.Circuit) *circuit.Circuit {
	result := circuit.New(c.N)

	for _, g := range c.Gates {
		if g.Op != circuit.TOFFOLI {
			result.Add(g)
			continue
		}
		c1 := g.Controls[0]
		c2 := g.Controls[1]
		t := g.Targets[0]

		result.AddGate(circuit.SNOT, []int{t}, nil)
		result.AddGate(circuit.CNOT, []int{t}, []int{c2})
		result.Add(TGate(t, true))
		result.AddGate(circuit.CNOT, []int{t}, []int{c1})
		result.Add(TGate(t, false))
		result.AddGate(circuit.CNOT, []int{t}, []int{c2})
		result.Add(TGate(t, true))
		result.AddGate(circuit.CNOT, []int{t}, []int{c1})
		result.Add(TGate(c2, true))
		result.Add(TGate(t, false))
		result.AddGate(circuit.SNOT, []int{t}, nil)
		result.AddGate(circuit.CNOT, []int{c2}, []int{c1})
		result.Add(TGate(c2, true))
		result.AddGate(circuit.CNOT, []int{c2}, []int{c1})
		result.Add(TGate(c1, false))
		result.Add(PGate(c2, false))
	}
	return result
}

// ExpandSNOT rewrites the SNOT gates of a decomposed circuit into the
// P, V, P sequence. All other gates pass through unchanged,
// preserving relative order.
func ExpandSNOT(c *circuit.Circuit) *circuit.Circuit {
	result := circuit.New(c.N)

	for _, g := range c.Gates {
		if g.Op != circuit.SNOT {
			result.Add(g)
			continue
		}
		t := g.Targets[0]

		result.Add(PGate(t, false))
		result.Add(VGate(t, false))
		result.Add(PGate(t, false))
	}
	return result
}
