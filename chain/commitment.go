// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import "github.com/solacechain/solacecore/ecc"

// CommitmentAndMaturity is the shared base of every UTXO-like item: a
// Pedersen commitment and the height at which it may first be spent.
// The total order is lexicographic by Commitment, then Maturity
// (spec §3).
type CommitmentAndMaturity struct {
	Commitment [ecc.CompressedPointSize]byte
	Maturity   uint64
}

// Cmp returns -1, 0, or 1 as c sorts before, equal to, or after v.
func (c CommitmentAndMaturity) Cmp(v CommitmentAndMaturity) int {
	if n := cmpBytes(c.Commitment[:], v.Commitment[:]); n != 0 {
		return n
	}
	return cmpUint64(c.Maturity, v.Maturity)
}

// Input spends a prior output identified by its commitment and
// maturity.
type Input struct {
	CommitmentAndMaturity
}

// Cmp returns -1, 0, or 1 as in sorts before, equal to, or after v.
func (in *Input) Cmp(v *Input) int {
	return in.CommitmentAndMaturity.Cmp(v.CommitmentAndMaturity)
}
