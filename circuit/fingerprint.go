//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"golang.org/x/crypto/blake2b"
)

var bo = binary.BigEndian

// Fingerprint computes a BLAKE2b content digest over the circuit's
// canonical serialization. Two circuits with identical qubit counts
// and gate sequences have equal fingerprints; downstream tooling uses
// the digest to dedupe exported artifacts.
func (c *Circuit) Fingerprint() string {
	var buf []byte

	buf = bo.AppendUint32(buf, uint32(c.N))
	for _, g := range c.Gates {
		buf = append(buf, byte(g.Op), byte(g.Role), byte(g.Label))
		buf = bo.AppendUint64(buf, math.Float64bits(g.Value))
		buf = bo.AppendUint32(buf, uint32(len(g.Basis)))
		buf = append(buf, g.Basis...)
		buf = bo.AppendUint32(buf, uint32(len(g.Targets)))
		for _, t := range g.Targets {
			buf = bo.AppendUint32(buf, uint32(t))
		}
		buf = bo.AppendUint32(buf, uint32(len(g.Controls)))
		for _, ctrl := range g.Controls {
			buf = bo.AppendUint32(buf, uint32(ctrl))
		}
	}

	sum := blake2b.Sum256(buf)
	return hex.EncodeToString(sum[:])
}
