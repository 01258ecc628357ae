//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package icm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/markkurossi/icm/circuit"
)

func TestAncillaCost(t *testing.T) {
	qc := circuit.New(5)
	qc.AddGate(circuit.TOFFOLI, []int{2}, []int{0, 1})
	qc.AddGate(circuit.SNOT, []int{3}, nil)
	qc.AddRotation(circuit.RX, 4, math.Pi)
	qc.AddGate(circuit.TOFFOLI, []int{0}, []int{1, 2})
	qc.AddGate(circuit.SNOT, []int{2}, nil)

	cost, total, err := AncillaCost(qc)
	require.NoError(t, err)

	require.Equal(t, Cost{
		"P":       0,
		"T":       0,
		"V":       2,
		"SNOT":    6,
		"TOFFOLI": 84,
	}, cost)
	require.Equal(t, 92, cost.Ancillae())
	require.Equal(t, 97, total)
}

// Composite gates are costed wholesale; the count must not reflect
// their fixed-gate expansion.
func TestAncillaCostPreExpansion(t *testing.T) {
	qc := circuit.New(1)
	qc.AddGate(circuit.SNOT, []int{0}, nil)

	cost, total, err := AncillaCost(qc)
	require.NoError(t, err)
	require.Equal(t, 3, cost["SNOT"])
	require.Equal(t, 0, cost["P"])
	require.Equal(t, 0, cost["V"])
	require.Equal(t, 4, total)
}

func TestAncillaCostUnsupported(t *testing.T) {
	qc := circuit.New(1)
	qc.AddRotation(circuit.RZ, 0, math.Pi/7)

	_, _, err := AncillaCost(qc)
	require.Error(t, err)
}
