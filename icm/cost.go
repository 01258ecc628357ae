//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package icm

import (
	"github.com/markkurossi/icm/circuit"
)

// Ancilla counts per gate kind. Each T gate requires 5 ancillae and 6
// CNOT gates, the P and V gates require 1 ancilla and 1 CNOT each,
// and each Hadamard expands to P, V, P for 3 ancillae. The Toffoli
// count is the fixed constant for its full fault-tolerant expansion
// from arXiv:1509.03962, not recomputed from the 15-gate sequence.
const (
	costP       = 1
	costV       = 1
	costT       = 5
	costSNOT    = 3
	costTOFFOLI = 42
)

// Cost maps gate kinds to the total number of ancilla qubits their
// ICM implementation requires.
type Cost map[string]int

// Ancillae returns the total ancilla count.
func (c Cost) Ancillae() int {
	var sum int
	for _, count := range c {
		sum += count
	}
	return sum
}

// AncillaCost decomposes the circuit and tallies the ancilla qubits
// the ICM rewrite would insert, without performing the rewrite. It
// returns the per-kind ancilla counts and the resulting total qubit
// count.
func AncillaCost(c *circuit.Circuit) (Cost, int, error) {
	decomposed, err := Decompose(c)
	if err != nil {
		return nil, 0, err
	}
	cost := costOf(decomposed)
	return cost, decomposed.N + cost.Ancillae(), nil
}

// costOf tallies a decomposed circuit. SNOT and TOFFOLI gates are
// counted wholesale; the fixed-gate expander must not run first.
func costOf(c *circuit.Circuit) Cost {
	cost := Cost{
		"P":       0,
		"T":       0,
		"V":       0,
		"SNOT":    0,
		"TOFFOLI": 0,
	}
	for _, g := range c.Gates {
		switch g.Op {
		case circuit.SNOT:
			cost["SNOT"] += costSNOT

		case circuit.TOFFOLI:
			cost["TOFFOLI"] += costTOFFOLI

		case circuit.RX, circuit.RZ:
			if g.Role != circuit.RoleNone {
				continue
			}
			id, ok := IdentityOf(g)
			if !ok {
				continue
			}
			switch id.Base() {
			case P:
				cost["P"] += costP
			case T:
				cost["T"] += costT
			case V:
				cost["V"] += costV
			}
		}
	}
	return cost
}
