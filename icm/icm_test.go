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

func TestDecompose(t *testing.T) {
	qc := circuit.New(5)
	qc.AddGate(circuit.TOFFOLI, []int{2}, []int{0, 1})
	qc.AddGate(circuit.SNOT, []int{3}, nil)
	qc.AddRotation(circuit.RX, 4, math.Pi)

	decomposed, err := Decompose(qc)
	require.NoError(t, err)

	require.Equal(t, circuit.TOFFOLI, decomposed.Gates[0].Op)
	require.Equal(t, circuit.SNOT, decomposed.Gates[1].Op)

	// The π rotation splits into two consecutive π/2 rotations.
	require.Equal(t, circuit.RX, decomposed.Gates[2].Op)
	require.Equal(t, circuit.AngleHalfPi, decomposed.Gates[2].Label)
	require.Equal(t, circuit.RX, decomposed.Gates[3].Op)
	require.Equal(t, circuit.AngleHalfPi, decomposed.Gates[3].Label)
	require.Len(t, decomposed.Gates, 4)

	for _, g := range decomposed.Gates {
		switch g.Op {
		case circuit.CNOT, circuit.SNOT, circuit.TOFFOLI,
			circuit.GLOBALPHASE:

		case circuit.RX, circuit.RZ:
			_, ok := IdentityOf(g)
			require.True(t, ok, "rotation %s not in identity map", g)

		default:
			t.Errorf("unexpected gate %s in decomposed circuit", g)
		}
	}
}

func TestDecomposeSplitAliasing(t *testing.T) {
	qc := circuit.New(1)
	qc.AddRotation(circuit.RX, 0, math.Pi)

	decomposed, err := Decompose(qc)
	require.NoError(t, err)
	require.Len(t, decomposed.Gates, 2)

	decomposed.Gates[0].Targets[0] = 7
	require.Equal(t, 0, decomposed.Gates[1].Targets[0])
}

func TestDecomposeUnsupported(t *testing.T) {
	qc := circuit.New(2)
	qc.AddRotation(circuit.RY, 1, math.Pi/2)
	qc.AddGate(circuit.SNOT, []int{1}, nil)
	qc.AddRotation(circuit.RZ, 1, math.Pi/2)
	qc.AddRotation(circuit.RX, 0, math.Pi/10)

	_, err := Decompose(qc)
	require.Error(t, err)
	require.ErrorAs(t, err, new(*circuit.UnsupportedGateError))
}

func TestIdentityMap(t *testing.T) {
	tests := []struct {
		gate circuit.Gate
		id   Identity
	}{
		{PGate(0, false), P},
		{PGate(0, true), PDagger},
		{TGate(0, false), T},
		{TGate(0, true), TDagger},
		{VGate(0, false), V},
		{VGate(0, true), VDagger},
	}
	for _, test := range tests {
		id, ok := IdentityOf(test.gate)
		require.True(t, ok, "gate %s", test.gate)
		require.Equal(t, test.id, id)
		require.Equal(t, test.id.Base(), id.Base().Base())
	}

	_, ok := IdentityOf(circuit.Gate{
		Op:    circuit.RX,
		Label: circuit.AngleQuarterPi,
	})
	require.False(t, ok, "RX(π/4) must not be in the identity map")
}

// The dagger constructors negate both the angle label and the
// rotation value.
func TestGateConstructors(t *testing.T) {
	g := TGate(0, true)
	require.Equal(t, circuit.AngleNegQuarterPi, g.Label)
	require.InEpsilon(t, -math.Pi/4, g.Value, 1e-12)

	g = PGate(0, false)
	require.Equal(t, circuit.AngleHalfPi, g.Label)
	require.InEpsilon(t, math.Pi/2, g.Value, 1e-12)

	g = VGate(0, true)
	require.Equal(t, circuit.AngleNegHalfPi, g.Label)
	require.InEpsilon(t, -math.Pi/2, g.Value, 1e-12)
}
