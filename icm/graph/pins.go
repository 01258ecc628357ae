//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package graph

import (
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/markkurossi/icm/circuit"
)

// marker is one entry in a qubit line's ordered role-marker list:
// either a CNOT touch (a boundary node key) or the role of a
// non-CNOT gate on the line.
type marker struct {
	touch bool
	key   Key
	role  circuit.Role
}

// lineMarkers builds the ordered role-marker list for every qubit
// line: CNOT touches plus the roles of non-CNOT gates, in circuit
// order.
func lineMarkers(c *circuit.Circuit) [][]marker {
	lines := make([][]marker, c.N)

	var count int
	for _, g := range c.Gates {
		if g.Op == circuit.CNOT {
			control := g.Controls[0]
			target := g.Targets[0]
			lines[control] = append(lines[control],
				marker{
					touch: true,
					key:   Key{count, strconv.Itoa(control), Cleft},
				},
				marker{
					touch: true,
					key:   Key{count, strconv.Itoa(control), Cright},
				})
			lines[target] = append(lines[target], marker{
				touch: true,
				key:   Key{count, strconv.Itoa(target), Target},
			})
			count++
			continue
		}
		if g.Role != circuit.RoleNone && len(g.Targets) > 0 {
			t := g.Targets[0]
			if t < c.N {
				lines[t] = append(lines[t], marker{role: g.Role})
			}
		}
	}
	return lines
}

// pinFor maps a neighboring marker's role to the boundary pin it
// induces. CNOT touch markers carry no role and induce no pin.
func pinFor(role circuit.Role) PinSet {
	switch role {
	case circuit.RoleInput, circuit.RoleOutput,
		circuit.RoleMeasurement, circuit.RoleCorrection:
		return PinCap
	case circuit.RoleAncilla:
		return PinInjector
	default:
		return 0
	}
}

// classifyPins assigns cap and injector pins to boundary nodes from
// their immediate neighboring markers on the qubit line. An entry
// boundary (cleft, target) looks at the preceding marker, an exit
// boundary (cright, target) at the following one. A node whose
// position cannot be located on its line keeps its pins unset.
func classifyPins(g *Graph, c *circuit.Circuit) {
	lines := lineMarkers(c)

	for _, k := range g.Nodes() {
		if !k.Role.Boundary() {
			continue
		}
		line, err := strconv.Atoi(k.Label)
		if err != nil || line < 0 || line >= c.N {
			log.Warnf("pin classification: bad line label for %v", k)
			continue
		}
		pos := -1
		for i, m := range lines[line] {
			if m.touch && m.key == k {
				pos = i
				break
			}
		}
		if pos < 0 {
			log.Warnf("pin classification: %v not found on line %d",
				k, line)
			continue
		}
		node, _ := g.Node(k)
		if k.Role == Cleft || k.Role == Target {
			if pos > 0 {
				node.Pins |= pinFor(lines[line][pos-1].role)
			}
		}
		if k.Role == Cright || k.Role == Target {
			if pos+1 < len(lines[line]) {
				node.Pins |= pinFor(lines[line][pos+1].role)
			}
		}
	}
}
