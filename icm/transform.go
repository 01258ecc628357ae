//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package icm

import (
	log "github.com/sirupsen/logrus"

	"github.com/markkurossi/icm/circuit"
)

// stage describes one teleportation rewrite pass of the ICM
// transformer. Each matched gate consumes shift new ancilla qubits.
type stage struct {
	name   Identity
	shift  int
	gadget func(t int) []circuit.Gate
}

// The transformer stages run strictly in P, V, T order. The order is
// load-bearing: each stage's insertions shift the qubit indices the
// next stage consumes.
var stages = []stage{
	{name: P, shift: 1, gadget: pGadget},
	{name: V, shift: 1, gadget: vGadget},
	{name: T, shift: 5, gadget: tGadget},
}

// pGadget teleports a P or P† gate at target t through one ancilla.
func pGadget(t int) []circuit.Gate {
	return []circuit.Gate{
		initGate("Y", t+1),
		cnotGate(t+1, t),
		measureGate("z", t),
		correctionGate("xz", t, t+1),
	}
}

// vGadget teleports a V or V† gate at target t through one ancilla.
func vGadget(t int) []circuit.Gate {
	return []circuit.Gate{
		initGate("y", t+1),
		cnotGate(t, t+1),
		measureGate("x", t),
		correctionGate("x/z", t, t+1),
	}
}

// tGadget teleports a T or T† gate at target t through five
// ancillae, six CNOTs, and a correction chain.
func tGadget(t int) []circuit.Gate {
	return []circuit.Gate{
		initGate("a", t+1),
		initGate("0", t+2),
		initGate("y", t+3),
		initGate("+", t+4),
		initGate("0", t+5),
		cnotGate(t+1, t),
		cnotGate(t+1, t+2),
		cnotGate(t+3, t+1),
		cnotGate(t+4, t+2),
		cnotGate(t+3, t+5),
		cnotGate(t+4, t+5),
		measureGate("z", t),
		correctionGate("z/x", t, t+1),
		correctionGate("x/z", t+1, t+2),
		correctionGate("x/z", t+2, t+3),
		correctionGate("z/x", t+3, t+4),
	}
}

func initGate(basis string, target int) circuit.Gate {
	return circuit.Gate{
		Op:      circuit.INIT,
		Targets: []int{target},
		Basis:   basis,
		Role:    circuit.RoleAncilla,
	}
}

func cnotGate(control, target int) circuit.Gate {
	return circuit.Gate{
		Op:       circuit.CNOT,
		Targets:  []int{target},
		Controls: []int{control},
	}
}

func measureGate(basis string, target int) circuit.Gate {
	return circuit.Gate{
		Op:      circuit.MEASURE,
		Targets: []int{target},
		Basis:   basis,
		Role:    circuit.RoleMeasurement,
	}
}

func correctionGate(basis string, control, target int) circuit.Gate {
	return circuit.Gate{
		Op:       circuit.CORRECTION,
		Targets:  []int{target},
		Controls: []int{control},
		Basis:    basis,
		Role:     circuit.RoleCorrection,
	}
}

// Transform converts the circuit into the ICM representation. The
// circuit is decomposed into the elementary basis, composite gates
// are expanded into fixed sequences, and every P, V, and T gate is
// replaced with its ancilla-teleportation gadget, renumbering qubit
// indices across the whole circuit as ancillae are inserted. The
// result is framed with an IN gate per original qubit at the start
// and an OUT gate per original qubit at the end.
func Transform(c *circuit.Circuit) (*circuit.Circuit, error) {
	decomposed, err := Decompose(c)
	if err != nil {
		return nil, err
	}
	cost := costOf(decomposed)
	total := decomposed.N + cost.Ancillae()

	expanded := ExpandSNOT(ExpandToffoli(decomposed))

	gates := make([]circuit.Gate, 0, len(expanded.Gates)+2*expanded.N)
	for i := 0; i < expanded.N; i++ {
		gates = append(gates, circuit.Gate{
			Op:      circuit.IN,
			Targets: []int{i},
			Role:    circuit.RoleInput,
		})
	}
	for _, g := range expanded.Gates {
		gates = append(gates, g.Clone())
	}
	for i := 0; i < expanded.N; i++ {
		gates = append(gates, circuit.Gate{
			Op:      circuit.OUT,
			Targets: []int{i},
			Role:    circuit.RoleOutput,
		})
	}

	for _, st := range stages {
		gates, err = runStage(gates, st)
		if err != nil {
			return nil, err
		}
	}

	return &circuit.Circuit{
		N:     total,
		Gates: gates,
	}, nil
}

// runStage performs one full forward scan over the gate list,
// replacing every matched gate with its teleportation gadget. The
// output is materialized into a new slice: emitted gates before the
// gadget shift on strictly-greater indices, unprocessed gates after
// the gadget shift on greater-or-equal indices (the matched target
// itself is repurposed by the gadget).
func runStage(in []circuit.Gate, st stage) ([]circuit.Gate, error) {
	out := make([]circuit.Gate, 0, len(in))
	rest := in

	for i := 0; i < len(rest); i++ {
		g := rest[i]
		if g.Op == circuit.CNOT || g.Op == circuit.GLOBALPHASE ||
			g.Role != circuit.RoleNone {
			out = append(out, g)
			continue
		}
		id, ok := IdentityOf(g)
		if !ok {
			return nil, &circuit.UnsupportedGateError{
				Op:    g.Op,
				Label: g.Label,
			}
		}
		if id.Base() != st.name {
			out = append(out, g)
			continue
		}
		t := g.Targets[0]
		log.Debugf("%s gadget at q%d, shift %d", st.name, t, st.shift)

		for j := range out {
			if out[j].Role.Gadget() {
				continue
			}
			shiftGate(&out[j], t, st.shift, false)
		}
		out = append(out, st.gadget(t)...)

		for j := i + 1; j < len(rest); j++ {
			shiftGate(&rest[j], t, st.shift, true)
		}
	}
	return out, nil
}

// shiftGate renumbers the gate's first target and control when they
// fall above the teleported qubit t. The inclusive form counts t
// itself; it applies to gates after the inserted gadget.
func shiftGate(g *circuit.Gate, t, shift int, inclusive bool) {
	if len(g.Targets) > 0 {
		if g.Targets[0] > t || (inclusive && g.Targets[0] == t) {
			g.Targets[0] += shift
		}
	}
	if len(g.Controls) > 0 {
		if g.Controls[0] > t || (inclusive && g.Controls[0] == t) {
			g.Controls[0] += shift
		}
	}
}
