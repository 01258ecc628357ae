//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package icm

import (
	"encoding/json"
	"io"

	"github.com/markkurossi/icm/circuit"
)

// Initialization records an ancilla preparation in the flattened ICM
// record.
type Initialization struct {
	Bit  int    `json:"bit"`
	Type string `json:"type"`
}

// Measurement records a measurement in the flattened ICM record.
type Measurement struct {
	Bit  int    `json:"bit"`
	Type string `json:"type"`
}

// CNOTRecord records one CNOT of the flattened ICM record.
type CNOTRecord struct {
	Controls []int `json:"controls"`
	Targets  []int `json:"targets"`
}

// Record is the flattened ICM circuit consumed by external
// export and visualization tooling. The field names and nesting are a
// compatibility contract and must not change.
type Record struct {
	Bits            []int            `json:"bits"`
	Inputs          []int            `json:"inputs"`
	Outputs         []int            `json:"outputs"`
	Initializations []Initialization `json:"initializations"`
	Measurements    []Measurement    `json:"measurements"`
	Cnots           []CNOTRecord     `json:"cnots"`
}

// Document wraps the flattened record for persistence.
type Document struct {
	Format  string `json:"format"`
	Circuit Record `json:"circuit"`
}

// Flatten builds the flattened export record from an ICM circuit.
func Flatten(c *circuit.Circuit) Record {
	rec := Record{
		Bits:            []int{},
		Inputs:          []int{},
		Outputs:         []int{},
		Initializations: []Initialization{},
		Measurements:    []Measurement{},
		Cnots:           []CNOTRecord{},
	}
	for i := 0; i < c.N; i++ {
		rec.Bits = append(rec.Bits, i)
	}
	for _, g := range c.Gates {
		if g.Op == circuit.CNOT {
			rec.Cnots = append(rec.Cnots, CNOTRecord{
				Controls: []int{g.Controls[0]},
				Targets:  []int{g.Targets[0]},
			})
		}
		switch g.Role {
		case circuit.RoleAncilla:
			rec.Initializations = append(rec.Initializations,
				Initialization{
					Bit:  g.Targets[0],
					Type: g.Basis,
				})
		case circuit.RoleMeasurement:
			rec.Measurements = append(rec.Measurements, Measurement{
				Bit:  g.Targets[0],
				Type: g.Basis,
			})
		case circuit.RoleInput:
			rec.Inputs = append(rec.Inputs, g.Targets[0])
		case circuit.RoleOutput:
			rec.Outputs = append(rec.Outputs, g.Targets[0])
		}
	}
	return rec
}

// Staged rebuilds the ICM circuit with its gates grouped into stages:
// inputs, initializations, CNOT network, measurements, corrections,
// outputs. The grouped form drives rendering.
func Staged(c *circuit.Circuit) *circuit.Circuit {
	result := circuit.New(c.N)

	for _, g := range c.Gates {
		if g.Role == circuit.RoleInput {
			result.Add(g.Clone())
		}
	}
	for _, g := range c.Gates {
		if g.Role == circuit.RoleAncilla {
			result.Add(g.Clone())
		}
	}
	for _, g := range c.Gates {
		if g.Op == circuit.CNOT {
			result.Add(g.Clone())
		}
	}
	for _, g := range c.Gates {
		if g.Role == circuit.RoleMeasurement {
			result.Add(g.Clone())
		}
	}
	for _, g := range c.Gates {
		if g.Role == circuit.RoleCorrection {
			result.Add(g.Clone())
		}
	}
	for _, g := range c.Gates {
		if g.Role == circuit.RoleOutput {
			result.Add(g.Clone())
		}
	}
	return result
}

// WriteJSON writes the record to out, wrapped as an ICM format
// document.
func WriteJSON(out io.Writer, rec Record) error {
	return json.NewEncoder(out).Encode(Document{
		Format:  "icm",
		Circuit: rec,
	})
}
