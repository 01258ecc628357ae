//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package icm converts gate-level quantum circuits into the canonical
// Initialization-CNOT-Measurement (ICM) form used by fault-tolerant
// synthesis. The conversion decomposes the circuit into the
// elementary basis, expands composite gates into fixed elementary
// sequences, and replaces every non-Clifford single-qubit rotation
// with an ancilla-teleportation gadget.
//
// The transformation follows arXiv:1509.03962 [quant-ph].
package icm

import (
	"fmt"
	"math"

	"github.com/markkurossi/icm/circuit"
)

// Identity names the non-Clifford single-qubit gate identities of the
// canonical gate-identity map.
type Identity byte

// Gate identities.
const (
	P Identity = iota
	PDagger
	T
	TDagger
	V
	VDagger
)

var identityNames = map[Identity]string{
	P:       "P",
	PDagger: "P†",
	T:       "T",
	TDagger: "T†",
	V:       "V",
	VDagger: "V†",
}

func (id Identity) String() string {
	name, ok := identityNames[id]
	if ok {
		return name
	}
	return fmt.Sprintf("{Identity %d}", id)
}

// Base returns the identity with the dagger stripped.
func (id Identity) Base() Identity {
	switch id {
	case PDagger:
		return P
	case TDagger:
		return T
	case VDagger:
		return V
	default:
		return id
	}
}

type identityKey struct {
	axis  circuit.Op
	label circuit.Angle
}

// identities is the canonical gate-identity map. It is constructed
// once and never mutated; both the decomposer and the ICM transformer
// consult it. Any rotation whose (axis, angle-label) pair is absent
// is invalid input.
var identities = map[identityKey]Identity{
	{circuit.RZ, circuit.AngleHalfPi}:       P,
	{circuit.RZ, circuit.AngleNegHalfPi}:    PDagger,
	{circuit.RZ, circuit.AngleQuarterPi}:    T,
	{circuit.RZ, circuit.AngleNegQuarterPi}: TDagger,
	{circuit.RX, circuit.AngleHalfPi}:       V,
	{circuit.RX, circuit.AngleNegHalfPi}:    VDagger,
}

// IdentityOf looks up the gate in the canonical gate-identity map.
func IdentityOf(g circuit.Gate) (Identity, bool) {
	id, ok := identities[identityKey{axis: g.Op, label: g.Label}]
	return id, ok
}

// PGate returns the P gate, a π/2 rotation about Z.
func PGate(target int, dagger bool) circuit.Gate {
	return rotation(circuit.RZ, target, circuit.AngleHalfPi, dagger)
}

// TGate returns the T gate, a π/4 rotation about Z.
func TGate(target int, dagger bool) circuit.Gate {
	return rotation(circuit.RZ, target, circuit.AngleQuarterPi, dagger)
}

// VGate returns the V gate, a π/2 rotation about X.
func VGate(target int, dagger bool) circuit.Gate {
	return rotation(circuit.RX, target, circuit.AngleHalfPi, dagger)
}

func rotation(axis circuit.Op, target int, label circuit.Angle,
	dagger bool) circuit.Gate {

	if dagger {
		label = label.Neg()
	}
	return circuit.Gate{
		Op:      axis,
		Targets: []int{target},
		Value:   label.Value(),
		Label:   label,
	}
}

// Decompose reduces the circuit to the elementary gate set with
// canonical angle labels. The circuit is first resolved to the basis
// {RX, RZ, CNOT, SNOT, TOFFOLI}; any remaining π rotation is split
// into two consecutive π/2 rotations about the same axis (doubling
// the later ancilla count for that rotation). Every surviving
// rotation must be present in the canonical gate-identity map.
func Decompose(c *circuit.Circuit) (*circuit.Circuit, error) {
	resolved, err := c.Resolve()
	if err != nil {
		return nil, err
	}

	result := circuit.New(resolved.N)
	for _, g := range resolved.Gates {
		switch {
		case g.Op.Rotation() && g.Label == circuit.AnglePi:
			half := g.Clone()
			half.Value = math.Pi / 2
			half.Label = circuit.AngleHalfPi
			result.Add(half)
			result.Add(half.Clone())

		case g.Op == circuit.GLOBALPHASE, g.Op == circuit.TOFFOLI,
			g.Op == circuit.CNOT, g.Op == circuit.SNOT,
			g.Op == circuit.IN, g.Op == circuit.OUT,
			g.Role != circuit.RoleNone:
			result.Add(g)

		default:
			if _, ok := IdentityOf(g); !ok {
				return nil, &circuit.UnsupportedGateError{
					Op:    g.Op,
					Label: g.Label,
				}
			}
			result.Add(g)
		}
	}
	return result, nil
}
