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

// Op specifies gate function.
type Op byte

// Gate functions.
const (
	IN Op = iota
	OUT
	CNOT
	SNOT
	TOFFOLI
	RX
	RY
	RZ
	GLOBALPHASE
	X
	Y
	Z
	S
	SDG
	T
	TDG
	CZ
	SWAP
	INIT
	MEASURE
	CORRECTION
)

var opNames = map[Op]string{
	IN:          "IN",
	OUT:         "OUT",
	CNOT:        "CNOT",
	SNOT:        "SNOT",
	TOFFOLI:     "TOFFOLI",
	RX:          "RX",
	RY:          "RY",
	RZ:          "RZ",
	GLOBALPHASE: "GLOBALPHASE",
	X:           "X",
	Y:           "Y",
	Z:           "Z",
	S:           "S",
	SDG:         "S†",
	T:           "T",
	TDG:         "T†",
	CZ:          "CZ",
	SWAP:        "SWAP",
	INIT:        "INIT",
	MEASURE:     "MEASURE",
	CORRECTION:  "CORRECTION",
}

func (op Op) String() string {
	name, ok := opNames[op]
	if ok {
		return name
	}
	return fmt.Sprintf("{Op %d}", op)
}

// Rotation tests if the operation is a single-qubit rotation.
func (op Op) Rotation() bool {
	switch op {
	case RX, RY, RZ:
		return true
	default:
		return false
	}
}

// Role specifies the gate's role tag in an ICM circuit. The zero
// value RoleNone means the gate carries no role.
type Role byte

// Gate roles.
const (
	RoleNone Role = iota
	RoleInput
	RoleOutput
	RoleAncilla
	RoleMeasurement
	RoleCorrection
)

var roleNames = map[Role]string{
	RoleNone:        "",
	RoleInput:       "input",
	RoleOutput:      "output",
	RoleAncilla:     "ancilla",
	RoleMeasurement: "measurement",
	RoleCorrection:  "correction",
}

func (r Role) String() string {
	name, ok := roleNames[r]
	if ok {
		return name
	}
	return fmt.Sprintf("{Role %d}", r)
}

// Gadget tests if the role marks a teleportation gadget gate
// (ancilla preparation, measurement, or correction).
func (r Role) Gadget() bool {
	switch r {
	case RoleAncilla, RoleMeasurement, RoleCorrection:
		return true
	default:
		return false
	}
}

// UnsupportedGateError is returned when a gate cannot be expressed in
// the elementary basis, or when a rotation's (axis, angle-label) pair
// is not in the canonical gate-identity map.
type UnsupportedGateError struct {
	Op    Op
	Label Angle
}

func (e *UnsupportedGateError) Error() string {
	if e.Label == AngleNone {
		return fmt.Sprintf("unsupported gate %s", e.Op)
	}
	return fmt.Sprintf("unsupported gate %s(%s)", e.Op, e.Label)
}

// Gate specifies a quantum gate.
type Gate struct {
	Op       Op
	Targets  []int
	Controls []int
	Value    float64
	Label    Angle
	Basis    string
	Role     Role
}

func (g Gate) String() string {
	switch {
	case g.Op == CNOT:
		return fmt.Sprintf("CNOT %d→%d", g.Controls[0], g.Targets[0])
	case g.Op == TOFFOLI:
		return fmt.Sprintf("TOFFOLI %d,%d→%d",
			g.Controls[0], g.Controls[1], g.Targets[0])
	case g.Role == RoleAncilla:
		return fmt.Sprintf("INIT %s q%d", g.Basis, g.Targets[0])
	case g.Role == RoleMeasurement:
		return fmt.Sprintf("MEASURE %s q%d", g.Basis, g.Targets[0])
	case g.Role == RoleCorrection:
		return fmt.Sprintf("CORRECTION %s %d→%d",
			g.Basis, g.Controls[0], g.Targets[0])
	case g.Label != AngleNone:
		return fmt.Sprintf("%s(%s) q%d", g.Op, g.Label, g.Targets[0])
	case len(g.Targets) > 0:
		return fmt.Sprintf("%s q%d", g.Op, g.Targets[0])
	default:
		return g.Op.String()
	}
}

// Target returns the gate's first target qubit, or -1 if the gate has
// no targets.
func (g Gate) Target() int {
	if len(g.Targets) == 0 {
		return -1
	}
	return g.Targets[0]
}

// Control returns the gate's first control qubit, or -1 if the gate
// has no controls.
func (g Gate) Control() int {
	if len(g.Controls) == 0 {
		return -1
	}
	return g.Controls[0]
}

// Qubits returns all qubit indices the gate references.
func (g Gate) Qubits() []int {
	result := make([]int, 0, len(g.Targets)+len(g.Controls))
	result = append(result, g.Targets...)
	result = append(result, g.Controls...)
	return result
}

// Stats holds per-operation gate counts.
type Stats [CORRECTION + 1]int

func (s Stats) String() string {
	var str string
	for op := IN; op <= CORRECTION; op++ {
		if s[op] == 0 {
			continue
		}
		if len(str) > 0 {
			str += " "
		}
		str += fmt.Sprintf("%s=%d", op, s[op])
	}
	return str
}

// Count returns the total number of gates counted.
func (s Stats) Count() int {
	var sum int
	for _, count := range s {
		sum += count
	}
	return sum
}

// Circuit specifies a quantum circuit as a qubit count and an ordered
// gate sequence. Every qubit index referenced by a gate must be less
// than N.
type Circuit struct {
	N     int
	Gates []Gate
}

// New creates a new circuit with n qubits.
func New(n int) *Circuit {
	return &Circuit{
		N: n,
	}
}

// Add appends the gate to the circuit.
func (c *Circuit) Add(g Gate) {
	c.Gates = append(c.Gates, g)
}

// AddGate appends a gate with the given targets and controls.
func (c *Circuit) AddGate(op Op, targets, controls []int) {
	c.Add(Gate{
		Op:       op,
		Targets:  targets,
		Controls: controls,
	})
}

// AddRotation appends a rotation gate with the given angle. The
// canonical angle label is derived from the value.
func (c *Circuit) AddRotation(op Op, target int, value float64) {
	c.Add(Gate{
		Op:      op,
		Targets: []int{target},
		Value:   value,
		Label:   AngleOf(value),
	})
}

// Stats counts the circuit gates by operation.
func (c *Circuit) Stats() Stats {
	var stats Stats
	for _, g := range c.Gates {
		if int(g.Op) < len(stats) {
			stats[g.Op]++
		}
	}
	return stats
}

func (c *Circuit) String() string {
	return fmt.Sprintf("#qubits=%d #gates=%d (%s)",
		c.N, len(c.Gates), c.Stats())
}

// Clone returns a deep copy of the circuit.
func (c *Circuit) Clone() *Circuit {
	result := &Circuit{
		N:     c.N,
		Gates: make([]Gate, len(c.Gates)),
	}
	for i, g := range c.Gates {
		result.Gates[i] = g.Clone()
	}
	return result
}

// Clone returns a copy of the gate with unaliased index slices.
func (g Gate) Clone() Gate {
	result := g
	result.Targets = append([]int(nil), g.Targets...)
	result.Controls = append([]int(nil), g.Controls...)
	return result
}

// Dump prints a debug dump of the circuit.
func (c *Circuit) Dump(out io.Writer) {
	fmt.Fprintf(out, "circuit %s\n", c)
	for id, g := range c.Gates {
		if g.Role != RoleNone {
			fmt.Fprintf(out, "%04d\t%s\t[%s]\n", id, g, g.Role)
		} else {
			fmt.Fprintf(out, "%04d\t%s\n", id, g)
		}
	}
}
