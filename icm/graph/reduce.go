//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package graph

// EliminateTeleportations contracts up to k degree-1 leaf nodes into
// their sole neighbor, unioning pins. It models straightening trivial
// teleportation chains out of the resource graph. The number of
// eliminated leaves is returned.
func EliminateTeleportations(g *Graph, k int) int {
	var count int
	for _, key := range g.Nodes() {
		if count >= k {
			break
		}
		if !g.Has(key) || g.Degree(key) != 1 {
			continue
		}
		neighbor := g.Neighbors(key)[0]
		g.Contract(neighbor, key)
		count++
	}
	return count
}

// ReduceTwoLoop performs a single two-loop reduction step: among
// pin-free nodes of degree exactly 2, in discovery order, remove the
// opt1-th candidate and the opt2-th of its pin-free neighbors. With
// no eligible candidate, or an invalid opt1 or opt2, the graph is
// returned unchanged; that case is a safe no-op, not an error.
func ReduceTwoLoop(g *Graph, opt1, opt2 int) bool {
	return reduceLoop(g, 2, opt1, opt2)
}

// ReduceThreeLoop performs a single three-loop reduction step over
// pin-free nodes of degree exactly 3. See ReduceTwoLoop.
func ReduceThreeLoop(g *Graph, opt1, opt2 int) bool {
	return reduceLoop(g, 3, opt1, opt2)
}

func reduceLoop(g *Graph, degree, opt1, opt2 int) bool {
	var candidates []Key
	for _, key := range g.Nodes() {
		node, _ := g.Node(key)
		if node.Pins == 0 && g.Degree(key) == degree {
			candidates = append(candidates, key)
		}
	}
	if opt1 < 0 || opt1 >= len(candidates) {
		return false
	}
	victim := candidates[opt1]

	var neighbors []Key
	for _, nb := range g.Neighbors(victim) {
		node, _ := g.Node(nb)
		if node.Pins == 0 {
			neighbors = append(neighbors, nb)
		}
	}
	if opt2 < 0 || opt2 >= len(neighbors) {
		return false
	}

	g.Remove(victim)
	g.Remove(neighbors[opt2])
	return true
}
