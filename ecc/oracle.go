// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"encoding/binary"

	"github.com/decred/dcrd/crypto/blake256"
	"lukechampine.com/blake3"
)

// blake256Sum is the plain 32-byte digest this package uses outside the
// Oracle: deriving the second generator H and binding a
// ConfidentialProof to its commitment. The Oracle itself, below, hashes
// with blake3.
func blake256Sum(b []byte) [32]byte {
	return blake256.Sum256(b)
}

// Oracle is the transcript / random-beacon sponge described in spec §9:
// it absorbs an arbitrary number of items and can be squeezed for 32-byte
// outputs any number of times, with each squeeze both consuming and
// extending the transcript so that ChainWorkProof's sampler can draw as
// many uniform values as rejection sampling needs from a single Oracle
// built once per proof.
//
// Absorption appends the raw bytes to the transcript without hashing
// them; each squeeze hashes the whole transcript plus a squeeze counter
// with blake3 into a 32-byte output.
type Oracle struct {
	transcript []byte
	squeezes   uint64
}

// NewOracle returns an oracle with an empty transcript.
func NewOracle() *Oracle {
	return &Oracle{}
}

// Absorb appends b to the transcript.
func (o *Oracle) Absorb(b []byte) *Oracle {
	o.transcript = append(o.transcript, b...)
	return o
}

// AbsorbHash absorbs a 32-byte hash.
func (o *Oracle) AbsorbHash(h [32]byte) *Oracle {
	return o.Absorb(h[:])
}

// AbsorbUint64 absorbs v as 8 little-endian bytes.
func (o *Oracle) AbsorbUint64(v uint64) *Oracle {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return o.Absorb(buf[:])
}

// AbsorbUint32 absorbs v as 4 little-endian bytes.
func (o *Oracle) AbsorbUint32(v uint32) *Oracle {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return o.Absorb(buf[:])
}

// AbsorbBool absorbs a single boundary byte, used by TxKernel.Hash to
// mark the end of a nested-kernel list.
func (o *Oracle) AbsorbBool(v bool) *Oracle {
	if v {
		return o.Absorb([]byte{1})
	}
	return o.Absorb([]byte{0})
}

// Squeeze derives the next 32-byte output from the transcript and then
// folds that output back into the transcript, so a second call to
// Squeeze never repeats the first. This is what lets UniformRandom call
// Squeeze once per accept/reject draw, as many times as it needs.
func (o *Oracle) Squeeze() [32]byte {
	var ctr [8]byte
	binary.LittleEndian.PutUint64(ctr[:], o.squeezes)
	o.squeezes++

	h := blake3.New(32, nil)
	h.Write(o.transcript)
	h.Write(ctr[:])

	var out [32]byte
	copy(out[:], h.Sum(nil))

	o.transcript = append(o.transcript, out[:]...)
	return out
}
