// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package header implements the block header — BEAM's
Block::SystemState::Full — and its two hashes: the proof-of-work
challenge hash and the full identity hash that additionally commits to
the solution found for that challenge.
*/
package header

import (
	"math/big"

	"github.com/solacechain/solacecore/difficulty"
	"github.com/solacechain/solacecore/ecc"
	"github.com/solacechain/solacecore/merkle"
	"github.com/solacechain/solacecore/rules"
)

// PoWSolution is the externally-produced proof-of-work solution bound
// to a header: the packed difficulty the solution was found against,
// plus the solver-specific indices and nonce.
type PoWSolution struct {
	Difficulty difficulty.Difficulty
	Indices    []uint32
	Nonce      uint64
}

// Solver is the opaque external proof-of-work collaborator spec §4.5
// delegates to: given the challenge produced by HashForPoW, it reports
// whether indices/nonce constitute a valid solution.
type Solver interface {
	IsValid(challenge merkle.Hash, indices []uint32, nonce uint64) bool
}

// FakeSolver always accepts, standing in for Solver on networks with
// Rules.FakePoW set, the same bypass BEAM's Rules::FakePoW gives
// IsValidPoW on non-production networks.
type FakeSolver struct{}

// IsValid always returns true.
func (FakeSolver) IsValid(challenge merkle.Hash, indices []uint32, nonce uint64) bool {
	return true
}

// Header is a block header: enough to hash, chain, and authenticate a
// proof-of-work solution against, without any transaction content.
type Header struct {
	Height     uint64
	Prev       merkle.Hash
	Definition merkle.Hash
	ChainWork  *big.Int
	Timestamp  int64
	PoW        PoWSolution
}

// HashForPoW returns the challenge a solver must find a solution for:
// everything about the header except the solution itself.
func (h *Header) HashForPoW() merkle.Hash {
	o := ecc.NewOracle()
	o.AbsorbUint64(h.Height)
	o.AbsorbHash(h.Prev)
	o.Absorb(chainWorkBytes(h.ChainWork))
	o.AbsorbHash(h.Definition)
	o.AbsorbUint64(uint64(h.Timestamp))
	o.AbsorbUint32(h.PoW.Difficulty.Packed)
	return merkle.Hash(o.Squeeze())
}

// Hash returns the header's full identity hash: HashForPoW additionally
// bound to the solution found for it.
func (h *Header) Hash() merkle.Hash {
	hv := h.HashForPoW()
	o := ecc.NewOracle()
	o.AbsorbHash(hv)
	for _, idx := range h.PoW.Indices {
		o.AbsorbUint32(idx)
	}
	o.AbsorbUint64(h.PoW.Nonce)
	return merkle.Hash(o.Squeeze())
}

// ID returns the header's (height, Hash) identity pair.
func (h *Header) ID() (uint64, merkle.Hash) {
	return h.Height, h.Hash()
}

// IsSane reports whether h's height and genesis linkage are
// structurally well formed: height must be at least 1, and the genesis
// header (height 1) must have a zero Prev.
func (h *Header) IsSane() bool {
	if h.Height < 1 {
		return false
	}
	if h.Height == 1 && h.Prev != (merkle.Hash{}) {
		return false
	}
	if h.ChainWork == nil || h.ChainWork.Sign() < 0 {
		return false
	}
	return true
}

// IsValidPoW delegates to solver with HashForPoW as the challenge,
// unless r.FakePoW is set, in which case it accepts unconditionally.
func (h *Header) IsValidPoW(r rules.Rules, solver Solver) bool {
	if r.FakePoW {
		return true
	}
	return solver.IsValid(h.HashForPoW(), h.PoW.Indices, h.PoW.Nonce)
}

// Child returns a new Header for the successor of h: height
// incremented by one and Prev set to h's own hash, the fields a miner
// extending h would fill in before finding a solution (BEAM's
// NextPrefix).
func (h *Header) Child() Header {
	return Header{
		Height:    h.Height + 1,
		Prev:      h.Hash(),
		ChainWork: new(big.Int).Add(h.ChainWork, h.PoW.Difficulty.Raw()),
		Timestamp: h.Timestamp,
	}
}

func chainWorkBytes(cw *big.Int) []byte {
	if cw == nil {
		return make([]byte, 32)
	}
	var buf [32]byte
	cw.FillBytes(buf[:])
	return buf[:]
}
