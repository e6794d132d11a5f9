// Package transcript implements the external wire format a Merkle-path
// collaborator uses to embed curve and field values produced by this core.
// The core only ever hands out byte forms (BigInt256.ToBytesBE,
// FieldElement.AsMontgomery); this package owns the framing around them.
package transcript

import (
	"encoding/binary"

	"starkcore.dev/core/field"
)

// Claim is a single Merkle authentication claim: a path length together
// with the root and leaf it connects, both carried in their raw
// Montgomery-form representation rather than the externally reduced form,
// matching what a prover's transcript actually hashes.
type Claim struct {
	PathLen uint64
	Root    field.FieldElement
	Leaf    field.FieldElement
}

// MarshalBinary serializes the claim as big-endian path length (8 bytes),
// followed by the 32-byte big-endian Montgomery-form root, followed by the
// 32-byte big-endian Montgomery-form leaf.
func (c Claim) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 8+32+32)
	binary.BigEndian.PutUint64(buf[0:8], c.PathLen)

	rootBytes := c.Root.AsMontgomery().ToBytesBE()
	copy(buf[8:40], rootBytes[:])

	leafBytes := c.Leaf.AsMontgomery().ToBytesBE()
	copy(buf[40:72], leafBytes[:])

	return buf, nil
}
