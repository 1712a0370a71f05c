// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package chainwork implements the chain-work proof (spec §4.7): a compact
probabilistic argument that a claimed tip commits to at least a
threshold fraction of the chain's cumulative work, without transmitting
every intervening header.
*/
package chainwork

import (
	"math/big"

	"github.com/solacechain/solacecore/ecc"
	"github.com/solacechain/solacecore/merkle"
)

// maxSampleAttempts bounds the rejection-sampling loop in UniformRandom.
// A threshold of bit-length n accepts with probability at least 1/2 per
// draw, so this many attempts failing is astronomically unlikely and
// signals a malformed threshold rather than bad luck.
const maxSampleAttempts = 10000

// Sampler draws the points on the cumulative-work axis that Create and
// IsValid both sample deterministically from an oracle seeded by the tip
// hash, walking the sampled range backward from End toward LowerBound.
type Sampler struct {
	Oracle     *ecc.Oracle
	Begin, End *big.Int
	LowerBound *big.Int
}

// NewSampler returns a Sampler seeded from tipHash, covering the
// half-open work range [begin, end).
func NewSampler(tipHash merkle.Hash, begin, end *big.Int) *Sampler {
	o := ecc.NewOracle()
	o.AbsorbHash(tipHash)
	return &Sampler{
		Oracle:     o,
		Begin:      new(big.Int).Set(begin),
		End:        new(big.Int).Set(end),
		LowerBound: new(big.Int),
	}
}

// TakeFraction returns v divided by 128 (shifted right 7 bits), the
// fixed fraction of the remaining range each sample narrows into.
func TakeFraction(v *big.Int) *big.Int {
	return new(big.Int).Rsh(v, 7)
}

// FindOrderOf returns the number of bits needed to represent v (its
// position of the highest set bit, plus one), or 0 if v is zero.
func FindOrderOf(v *big.Int) uint32 {
	return uint32(v.BitLen())
}

// UniformRandom draws a value uniformly in [0, threshold) by repeatedly
// squeezing the oracle for a value of threshold's bit width and
// rejecting draws that fall outside range.
func (s *Sampler) UniformRandom(threshold *big.Int) (*big.Int, bool) {
	bits := FindOrderOf(threshold)
	if bits == 0 {
		return nil, false
	}
	for i := 0; i < maxSampleAttempts; i++ {
		buf := s.Oracle.Squeeze()
		val := new(big.Int).SetBytes(buf[:])
		val.Rsh(val, uint(256-bits))
		if val.Cmp(threshold) < 0 {
			return val, true
		}
	}
	return nil, false
}

// SamplePoint draws the next point on the work axis and narrows Begin
// toward it, reporting false once the sampled point falls below
// LowerBound or the range is exhausted.
func (s *Sampler) SamplePoint() (*big.Int, bool) {
	rng := TakeFraction(new(big.Int).Sub(s.End, s.Begin))
	if rng.Sign() == 0 {
		rng = big.NewInt(1)
	}
	allCovered := rng.Cmp(s.Begin) >= 0

	sampled, ok := s.UniformRandom(rng)
	if !ok {
		return nil, false
	}

	out := new(big.Int).Sub(s.Begin, rng)
	out.Add(out, sampled)

	if out.Cmp(s.LowerBound) < 0 || out.Cmp(s.Begin) >= 0 {
		return nil, false
	}

	if allCovered {
		s.Begin = new(big.Int)
	} else {
		s.Begin = new(big.Int).Sub(s.Begin, rng)
	}

	return out, true
}
