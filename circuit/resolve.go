//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"math"
)

// resolveRule expands one composite gate into gates drawn from the
// elementary basis {RX, RZ, CNOT, SNOT, TOFFOLI}.
type resolveRule func(g Gate, out *Circuit)

// resolveRules maps composite gate functions to their fixed
// elementary expansions. Axis changes follow the usual conjugation
// identities; Pauli gates expand into a π rotation plus a global
// phase.
var resolveRules = map[Op]resolveRule{
	X: func(g Gate, out *Circuit) {
		out.AddRotation(RX, g.Targets[0], math.Pi)
		out.addGlobalPhase(math.Pi / 2)
	},
	Z: func(g Gate, out *Circuit) {
		out.AddRotation(RZ, g.Targets[0], math.Pi)
		out.addGlobalPhase(math.Pi / 2)
	},
	Y: func(g Gate, out *Circuit) {
		out.AddRotation(RZ, g.Targets[0], math.Pi)
		out.AddRotation(RX, g.Targets[0], math.Pi)
		out.addGlobalPhase(math.Pi / 2)
	},
	S: func(g Gate, out *Circuit) {
		out.AddRotation(RZ, g.Targets[0], math.Pi/2)
	},
	SDG: func(g Gate, out *Circuit) {
		out.AddRotation(RZ, g.Targets[0], -math.Pi/2)
	},
	T: func(g Gate, out *Circuit) {
		out.AddRotation(RZ, g.Targets[0], math.Pi/4)
	},
	TDG: func(g Gate, out *Circuit) {
		out.AddRotation(RZ, g.Targets[0], -math.Pi/4)
	},
	RY: func(g Gate, out *Circuit) {
		out.AddRotation(RZ, g.Targets[0], -math.Pi/2)
		out.AddRotation(RX, g.Targets[0], g.Value)
		out.AddRotation(RZ, g.Targets[0], math.Pi/2)
	},
	CZ: func(g Gate, out *Circuit) {
		out.AddGate(SNOT, []int{g.Targets[0]}, nil)
		out.AddGate(CNOT, []int{g.Targets[0]}, []int{g.Controls[0]})
		out.AddGate(SNOT, []int{g.Targets[0]}, nil)
	},
	SWAP: func(g Gate, out *Circuit) {
		a, b := g.Targets[0], g.Targets[1]
		out.AddGate(CNOT, []int{b}, []int{a})
		out.AddGate(CNOT, []int{a}, []int{b})
		out.AddGate(CNOT, []int{b}, []int{a})
	},
}

func (c *Circuit) addGlobalPhase(value float64) {
	c.Add(Gate{
		Op:    GLOBALPHASE,
		Value: value,
		Label: AngleOf(value),
	})
}

// elementary tests if the gate passes through resolution unchanged.
func elementary(g Gate) bool {
	switch g.Op {
	case RX, RZ, CNOT, SNOT, TOFFOLI, GLOBALPHASE, IN, OUT:
		return true
	default:
		return g.Role != RoleNone
	}
}

// Resolve reduces the circuit to the elementary basis {RX, RZ, CNOT,
// SNOT, TOFFOLI}. Elementary gates and role-tagged gates pass through
// unchanged; composite gates expand via fixed rules. Gates outside
// the supported vocabulary fail with UnsupportedGateError.
func (c *Circuit) Resolve() (*Circuit, error) {
	result := New(c.N)

	for _, g := range c.Gates {
		if elementary(g) {
			gate := g.Clone()
			if gate.Op.Rotation() && gate.Label == AngleNone {
				gate.Label = AngleOf(gate.Value)
			}
			result.Add(gate)
			continue
		}
		rule, ok := resolveRules[g.Op]
		if !ok {
			return nil, &UnsupportedGateError{Op: g.Op, Label: g.Label}
		}
		rule(g, result)
	}
	return result, nil
}
