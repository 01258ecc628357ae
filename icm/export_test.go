//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package icm

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/markkurossi/icm/circuit"
)

func testCircuit(t *testing.T) *circuit.Circuit {
	qc := circuit.New(2)
	qc.AddGate(circuit.CNOT, []int{1}, []int{0})
	qc.AddGate(circuit.CNOT, []int{0}, []int{1})
	qc.AddRotation(circuit.RZ, 0, math.Pi/2)
	qc.AddGate(circuit.CNOT, []int{0}, []int{1})

	icm, err := Transform(qc)
	require.NoError(t, err)
	return icm
}

func TestFlatten(t *testing.T) {
	rec := Flatten(testCircuit(t))

	require.Equal(t, []int{0, 1, 2}, rec.Bits)
	require.Equal(t, []int{0, 2}, rec.Inputs)
	require.Equal(t, []int{1, 2}, rec.Outputs)
	require.Equal(t, []Initialization{{Bit: 1, Type: "Y"}},
		rec.Initializations)
	require.Equal(t, []Measurement{{Bit: 0, Type: "z"}}, rec.Measurements)
	require.Equal(t, []CNOTRecord{
		{Controls: []int{0}, Targets: []int{2}},
		{Controls: []int{2}, Targets: []int{0}},
		{Controls: []int{1}, Targets: []int{0}},
		{Controls: []int{2}, Targets: []int{1}},
	}, rec.Cnots)
}

func TestFlattenEmpty(t *testing.T) {
	rec := Flatten(circuit.New(0))
	require.NotNil(t, rec.Bits)
	require.NotNil(t, rec.Inputs)
	require.NotNil(t, rec.Outputs)
	require.NotNil(t, rec.Initializations)
	require.NotNil(t, rec.Measurements)
	require.NotNil(t, rec.Cnots)
}

func TestWriteJSON(t *testing.T) {
	var sb strings.Builder
	err := WriteJSON(&sb, Flatten(testCircuit(t)))
	require.NoError(t, err)

	require.JSONEq(t, `{
  "format": "icm",
  "circuit": {
    "bits": [0, 1, 2],
    "inputs": [0, 2],
    "outputs": [1, 2],
    "initializations": [{"bit": 1, "type": "Y"}],
    "measurements": [{"bit": 0, "type": "z"}],
    "cnots": [
      {"controls": [0], "targets": [2]},
      {"controls": [2], "targets": [0]},
      {"controls": [1], "targets": [0]},
      {"controls": [2], "targets": [1]}
    ]
  }
}`, sb.String())
}

func TestStaged(t *testing.T) {
	staged := Staged(testCircuit(t))

	order := map[circuit.Role]int{
		circuit.RoleInput:       0,
		circuit.RoleAncilla:     1,
		circuit.RoleNone:        2,
		circuit.RoleMeasurement: 3,
		circuit.RoleCorrection:  4,
		circuit.RoleOutput:      5,
	}
	prev := -1
	for _, g := range staged.Gates {
		stage, ok := order[g.Role]
		require.True(t, ok, "gate %s", g)
		require.GreaterOrEqual(t, stage, prev, "gate %s out of stage", g)
		prev = stage
	}
	require.Len(t, staged.Gates, len(testCircuit(t).Gates))
}
