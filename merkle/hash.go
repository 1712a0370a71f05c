// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package merkle implements the pair-hashing interpreter, ordinary and
"hard" Merkle proofs, and the Merkle Mountain Range used to commit the
chain's historical state hashes (spec §4.2).
*/
package merkle

import "github.com/decred/dcrd/crypto/blake256"

// Hash is a 32-byte digest, the width used uniformly for Merkle nodes,
// kernel hashes, and kernel IDs throughout solacecore.
type Hash [32]byte

// hashPair combines a and b in that order, matching the convention used
// by Interpret below.
func hashPair(a, b Hash) Hash {
	var buf [64]byte
	copy(buf[:32], a[:])
	copy(buf[32:], b[:])
	return blake256.Sum256(buf[:])
}

// HashLeaf hashes a byte slice into a Hash with plain blake256 (no
// domain tag), used to turn serialized data (a kernel hash-lock
// preimage) into a Hash.
func HashLeaf(b []byte) Hash {
	return blake256.Sum256(b)
}

// Node is one step of a Merkle proof: a sibling hash and a side bit.
// Right=true means the sibling goes on the right of the hash being
// folded (spec §4.2).
type Node struct {
	Right bool
	Hash  Hash
}

// Interpret folds n into h in place.
func Interpret(h *Hash, n Node) {
	if n.Right {
		*h = hashPair(*h, n.Hash)
	} else {
		*h = hashPair(n.Hash, *h)
	}
}

// Proof is an ordered list of Merkle steps carrying explicit side bits.
type Proof []Node

// InterpretProof folds an entire proof into h in place.
func InterpretProof(h *Hash, p Proof) {
	for _, n := range p {
		Interpret(h, n)
	}
}

// HardProof is a Merkle proof with side bits omitted: the verifier
// derives them from the claimed tree position instead of trusting the
// prover to supply them, which is what makes it impossible to
// substitute a same-leaf-different-position block (spec §4.2).
type HardProof []Hash

// Inc increments h in place, treating it as a 256-bit big-endian
// integer. Used to step off the all-zero hash, which kernel IDs reserve
// as "no ID" (spec §4.3).
func (h *Hash) Inc() {
	for i := len(h) - 1; i >= 0; i-- {
		h[i]++
		if h[i] != 0 {
			break
		}
	}
}
