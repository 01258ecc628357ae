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

// contraction schedules the nodes srcs to be merged into dst.
type contraction struct {
	dst  Key
	srcs []Key
}

// mergers computes the contraction schedule from the circuit's CNOT
// structure. On each qubit line, a target node absorbs the run of
// consecutive touches immediately following it, stopping just before
// the next cright; a cright node absorbs the single touch immediately
// following it.
func mergers(c *circuit.Circuit) (targets, crights []contraction) {
	cmat := make([][]Key, c.N)

	var idx int
	for _, g := range c.Gates {
		if g.Op != circuit.CNOT {
			continue
		}
		control := g.Controls[0]
		target := g.Targets[0]
		cmat[control] = append(cmat[control],
			Key{idx, strconv.Itoa(control), Cleft},
			Key{idx, strconv.Itoa(control), Cright})
		cmat[target] = append(cmat[target],
			Key{idx, strconv.Itoa(target), Target})
		idx++
	}

	for _, row := range cmat {
		for col, key := range row {
			switch key.Role {
			case Target:
				var srcs []Key
				for i := col; i+1 < len(row) && row[i+1].Role != Cright; i++ {
					srcs = append(srcs, row[i+1])
				}
				if len(srcs) > 0 {
					targets = append(targets, contraction{
						dst:  key,
						srcs: srcs,
					})
				}

			case Cright:
				if col+1 < len(row) {
					crights = append(crights, contraction{
						dst:  key,
						srcs: []Key{row[col+1]},
					})
				}
			}
		}
	}
	return targets, crights
}

// Merge contracts the graph along the circuit's qubit lines: target
// runs first, then cright pairs. Contraction unions the pin sets and
// drops resulting self-loops; the node count never increases. A
// scheduled node that has already been merged away is skipped.
func Merge(g *Graph, c *circuit.Circuit) {
	targets, crights := mergers(c)

	for _, m := range targets {
		for _, src := range m.srcs {
			if !g.Contract(m.dst, src) {
				log.Warnf("merge: cannot contract %v into %v", src, m.dst)
			}
		}
	}
	for _, m := range crights {
		for _, src := range m.srcs {
			if !g.Contract(m.dst, src) {
				log.Warnf("merge: cannot contract %v into %v", src, m.dst)
			}
		}
	}
}
