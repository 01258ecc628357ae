//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package graph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/markkurossi/icm/circuit"
)

func TestBuildStar(t *testing.T) {
	qc := circuit.New(2)
	qc.AddGate(circuit.CNOT, []int{1}, []int{0})

	g := Build(qc)
	require.Equal(t, 4, g.NumNodes())
	require.Equal(t, 3, g.NumEdges())
	require.Equal(t, 0, g.SelfLoops())

	cleft := Key{0, "0", Cleft}
	cright := Key{0, "0", Cright}
	target := Key{0, "1", Target}
	rough := Key{0, "01", Rough}

	require.Equal(t, []Key{cleft, cright, target, rough}, g.Nodes())
	require.Equal(t, 3, g.Degree(rough))
	for _, k := range []Key{cleft, cright, target} {
		require.Equal(t, 1, g.Degree(k))
		require.Equal(t, []Key{rough}, g.Neighbors(k))

		node, ok := g.Node(k)
		require.True(t, ok)
		require.Equal(t, "red", node.Color)
	}
	node, ok := g.Node(rough)
	require.True(t, ok)
	require.Equal(t, "blue", node.Color)
}

func TestBuildPins(t *testing.T) {
	qc := circuit.New(2)
	qc.Add(circuit.Gate{
		Op:      circuit.IN,
		Targets: []int{0},
		Role:    circuit.RoleInput,
	})
	qc.Add(circuit.Gate{
		Op:      circuit.INIT,
		Targets: []int{1},
		Basis:   "Y",
		Role:    circuit.RoleAncilla,
	})
	qc.AddGate(circuit.CNOT, []int{1}, []int{0})
	qc.Add(circuit.Gate{
		Op:      circuit.MEASURE,
		Targets: []int{1},
		Basis:   "z",
		Role:    circuit.RoleMeasurement,
	})
	qc.Add(circuit.Gate{
		Op:      circuit.OUT,
		Targets: []int{0},
		Role:    circuit.RoleOutput,
	})

	g := Build(qc)

	tests := []struct {
		key  Key
		pins PinSet
	}{
		{Key{0, "0", Cleft}, PinCap},
		{Key{0, "0", Cright}, PinCap},
		{Key{0, "1", Target}, PinCap | PinInjector},
		{Key{0, "01", Rough}, 0},
	}
	for _, test := range tests {
		node, ok := g.Node(test.key)
		require.True(t, ok, "node %v", test.key)
		require.Equal(t, test.pins, node.Pins, "node %v", test.key)
	}
}

func TestBuildDeterministic(t *testing.T) {
	qc := circuit.New(3)
	qc.AddGate(circuit.CNOT, []int{1}, []int{0})
	qc.AddGate(circuit.CNOT, []int{2}, []int{1})
	qc.AddGate(circuit.CNOT, []int{0}, []int{2})

	g1 := Build(qc)
	g2 := Build(qc)
	require.Equal(t, g1.Nodes(), g2.Nodes())
	require.Equal(t, g1.Edges(), g2.Edges())
}

func TestContract(t *testing.T) {
	a := Key{0, "a", Rough}
	b := Key{1, "b", Rough}
	c := Key{2, "c", Rough}

	g := New()
	g.AddNode(a, &Node{Pins: PinCap})
	g.AddNode(b, &Node{Pins: PinInjector})
	g.AddNode(c, &Node{})
	g.AddEdge(a, b)
	g.AddEdge(b, c)

	require.True(t, g.Contract(a, b))
	require.False(t, g.Has(b))
	require.Equal(t, 2, g.NumNodes())
	require.Equal(t, 1, g.NumEdges())
	require.Equal(t, 0, g.SelfLoops())

	node, ok := g.Node(a)
	require.True(t, ok)
	require.Equal(t, PinCap|PinInjector, node.Pins)
	require.Equal(t, []Key{b}, node.Origin)

	require.False(t, g.Contract(a, b))
	require.False(t, g.Contract(a, a))
}
