//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package graph models the CNOT network of an ICM circuit as a
// resource graph of rough and boundary nodes, and implements the
// contraction and reduction passes that lower its resource cost.
package graph

import (
	"fmt"
	"strconv"

	"github.com/markkurossi/icm/circuit"
)

// Role identifies a node's position in the 3-star created per CNOT.
type Role byte

// Node roles.
const (
	Cleft Role = iota
	Cright
	Target
	Rough
)

var roleNames = map[Role]string{
	Cleft:  "cleft",
	Cright: "cright",
	Target: "target",
	Rough:  "rough",
}

func (r Role) String() string {
	name, ok := roleNames[r]
	if ok {
		return name
	}
	return fmt.Sprintf("{Role %d}", r)
}

// Boundary tests if the role marks a boundary node.
func (r Role) Boundary() bool {
	return r != Rough
}

// Key is the stable identity of a graph node: the CNOT ordinal, the
// qubit or qubit-pair label, and the node role.
type Key struct {
	Gate  int
	Label string
	Role  Role
}

func (k Key) String() string {
	return fmt.Sprintf("(%d,%s,%s)", k.Gate, k.Label, k.Role)
}

// PinSet is a set of boundary pins. The zero value means the node
// carries no pin.
type PinSet byte

// Boundary pins.
const (
	PinCap PinSet = 1 << iota
	PinInjector
)

// Has tests pin set membership.
func (p PinSet) Has(pin PinSet) bool {
	return p&pin != 0
}

func (p PinSet) String() string {
	switch {
	case p == 0:
		return ""
	case p == PinCap:
		return "cap"
	case p == PinInjector:
		return "injector"
	default:
		return "cap|injector"
	}
}

// Node holds the record for one graph node. The graph owns all
// records; contraction replaces two keyed records with one merged
// record.
type Node struct {
	Color  string
	X, Y   float64
	Pins   PinSet
	Origin []Key
}

// Graph is an undirected resource graph. Node and adjacency order is
// the deterministic encounter order of insertion.
type Graph struct {
	order []Key
	nodes map[Key]*Node
	adj   map[Key][]Key
}

// New creates an empty resource graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[Key]*Node),
		adj:   make(map[Key][]Key),
	}
}

// AddNode inserts the node record under the key.
func (g *Graph) AddNode(k Key, n *Node) {
	_, ok := g.nodes[k]
	if !ok {
		g.order = append(g.order, k)
	}
	g.nodes[k] = n
}

// AddEdge connects the two nodes. Self-loops and duplicate edges are
// ignored.
func (g *Graph) AddEdge(a, b Key) {
	if a == b {
		return
	}
	if g.connected(a, b) {
		return
	}
	g.adj[a] = append(g.adj[a], b)
	g.adj[b] = append(g.adj[b], a)
}

func (g *Graph) connected(a, b Key) bool {
	for _, nb := range g.adj[a] {
		if nb == b {
			return true
		}
	}
	return false
}

// Has tests if the key names a live node.
func (g *Graph) Has(k Key) bool {
	_, ok := g.nodes[k]
	return ok
}

// Node returns the record of the key.
func (g *Graph) Node(k Key) (*Node, bool) {
	n, ok := g.nodes[k]
	return n, ok
}

// Nodes returns the node keys in encounter order.
func (g *Graph) Nodes() []Key {
	return append([]Key(nil), g.order...)
}

// Neighbors returns the node's neighbors in encounter order.
func (g *Graph) Neighbors(k Key) []Key {
	return append([]Key(nil), g.adj[k]...)
}

// Degree returns the number of edges incident on the node.
func (g *Graph) Degree(k Key) int {
	return len(g.adj[k])
}

// NumNodes returns the node count.
func (g *Graph) NumNodes() int {
	return len(g.order)
}

// NumEdges returns the edge count.
func (g *Graph) NumEdges() int {
	var sum int
	for _, neighbors := range g.adj {
		sum += len(neighbors)
	}
	return sum / 2
}

// Edges returns the edges in encounter order of their first
// endpoint.
func (g *Graph) Edges() [][2]Key {
	var result [][2]Key
	seen := make(map[Key]bool)
	for _, a := range g.order {
		for _, b := range g.adj[a] {
			if seen[b] {
				continue
			}
			result = append(result, [2]Key{a, b})
		}
		seen[a] = true
	}
	return result
}

// Contract merges node src into node dst: dst's pin set becomes the
// union of both, src's edges are rewired to dst, and any resulting
// self-loop is dropped. It reports whether the contraction was
// performed.
func (g *Graph) Contract(dst, src Key) bool {
	if dst == src {
		return false
	}
	dn, ok := g.nodes[dst]
	if !ok {
		return false
	}
	sn, ok := g.nodes[src]
	if !ok {
		return false
	}
	dn.Pins |= sn.Pins
	dn.Origin = append(dn.Origin, src)
	dn.Origin = append(dn.Origin, sn.Origin...)

	for _, nb := range g.adj[src] {
		if nb == dst {
			continue
		}
		g.AddEdge(dst, nb)
	}
	g.Remove(src)
	return true
}

// Remove deletes the node and its incident edges.
func (g *Graph) Remove(k Key) {
	_, ok := g.nodes[k]
	if !ok {
		return
	}
	delete(g.nodes, k)
	for i, key := range g.order {
		if key == k {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	for _, nb := range g.adj[k] {
		g.adj[nb] = removeKey(g.adj[nb], k)
	}
	delete(g.adj, k)
}

func removeKey(keys []Key, k Key) []Key {
	for i, key := range keys {
		if key == k {
			return append(keys[:i], keys[i+1:]...)
		}
	}
	return keys
}

// SelfLoops counts self-loop edges. It is always zero after any
// contraction or reduction pass.
func (g *Graph) SelfLoops() int {
	var count int
	for k, neighbors := range g.adj {
		for _, nb := range neighbors {
			if nb == k {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	result := New()
	result.order = append([]Key(nil), g.order...)
	for k, n := range g.nodes {
		node := *n
		node.Origin = append([]Key(nil), n.Origin...)
		result.nodes[k] = &node
	}
	for k, neighbors := range g.adj {
		result.adj[k] = append([]Key(nil), neighbors...)
	}
	return result
}

func (g *Graph) String() string {
	return fmt.Sprintf("#nodes=%d #edges=%d", g.NumNodes(), g.NumEdges())
}

// Build constructs the resource graph from the CNOT structure of the
// circuit. Each CNOT contributes four nodes and three edges: a 3-star
// of cleft, cright, and target boundary nodes centered on the rough
// node.
func Build(c *circuit.Circuit) *Graph {
	g := New()

	var count int
	for _, gate := range c.Gates {
		if gate.Op != circuit.CNOT {
			continue
		}
		control := gate.Controls[0]
		target := gate.Targets[0]

		cleft := Key{count, strconv.Itoa(control), Cleft}
		cright := Key{count, strconv.Itoa(control), Cright}
		tgt := Key{count, strconv.Itoa(target), Target}
		rough := Key{
			Gate:  count,
			Label: strconv.Itoa(control) + strconv.Itoa(target),
			Role:  Rough,
		}

		g.AddNode(cleft, &Node{
			Color: "red",
			X:     float64(count) - 0.25,
			Y:     -float64(control),
		})
		g.AddNode(cright, &Node{
			Color: "red",
			X:     float64(count) + 0.25,
			Y:     -float64(control),
		})
		g.AddNode(tgt, &Node{
			Color: "red",
			X:     float64(count),
			Y:     -float64(target),
		})
		g.AddNode(rough, &Node{
			Color: "blue",
			X:     float64(count),
			Y:     -float64(control+target) / 2,
		})

		g.AddEdge(cleft, rough)
		g.AddEdge(cright, rough)
		g.AddEdge(tgt, rough)

		count++
	}
	classifyPins(g, c)
	return g
}
