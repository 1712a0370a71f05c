// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainwork

import (
	"math/big"

	"github.com/solacechain/solacecore/header"
	"github.com/solacechain/solacecore/merkle"
	"github.com/solacechain/solacecore/rules"
)

// Source supplies the historical headers and Merkle proofs a
// ChainWorkProof is assembled against: the prover's own index of
// committed states. StateAt returns the header whose chain-work range
// contains d; Proof streams the hard-proof steps for height into
// builder (spec §4.7).
type Source interface {
	StateAt(d *big.Int) *header.Header
	Proof(builder merkle.IProofBuilder, height uint64) bool
}

// ChainWorkProof is a compact argument that States commits to at least
// a threshold fraction of the work between its first and last entries:
// consecutive states link directly by hash, non-consecutive ones are
// bound by a shared Merkle proof (spec §4.7).
type ChainWorkProof struct {
	States     []*header.Header
	Proof      merkle.MultiProof
	LowerBound *big.Int
	HvRootLive merkle.Hash
}

// dedupBuilder collects proof nodes for a batch of sampled heights,
// skipping any tree position already emitted for an earlier height in
// the same proof, the same sharing MultiProofBuilder gives a single Mmr.
type dedupBuilder struct {
	proof *merkle.MultiProof
	seen  map[merkle.Position]bool
}

func (b *dedupBuilder) AppendNode(n merkle.Node, pos merkle.Position) bool {
	if !b.seen[pos] {
		b.seen[pos] = true
		b.proof.Data = append(b.proof.Data, n.Hash)
	}
	return true
}

func decChainWork(h *header.Header) *big.Int {
	return new(big.Int).Sub(h.ChainWork, h.PoW.Difficulty.Raw())
}

// Create builds a chain-work proof for tip by repeatedly sampling a
// point on the cumulative-work axis, asking src for the state that
// covers it, and recording a Merkle proof linking every state that
// isn't the immediate predecessor of the one before it (spec §4.7).
func Create(src Source, tip *header.Header, r rules.Rules) *ChainWorkProof {
	cwp := &ChainWorkProof{
		States:     []*header.Header{tip},
		LowerBound: new(big.Int),
	}

	samp := NewSampler(tip.Hash(), decChainWork(tip), tip.ChainWork)
	samp.LowerBound = cwp.LowerBound

	b := &dedupBuilder{proof: &cwp.Proof, seen: make(map[merkle.Position]bool)}

	for {
		d, ok := samp.SamplePoint()
		if !ok {
			break
		}
		s := src.StateAt(d)
		if s == nil {
			break
		}

		last := cwp.States[len(cwp.States)-1]
		if s.Height+1 != last.Height {
			if !src.Proof(b, s.Height-r.HeightGenesis) {
				break
			}
		}
		cwp.States = append(cwp.States, s)

		dLo := decChainWork(s)
		if samp.Begin.Cmp(dLo) > 0 {
			samp.Begin = dLo
		}
	}

	return cwp
}

// validInternal replays the same sampling sequence IsValid's caller
// would, checking every sampled state's linkage and Merkle membership,
// and reports how much of States and Proof.Data a valid prefix consumed.
func (cwp *ChainWorkProof) validInternal(r rules.Rules) (iState, iHash int, ok bool) {
	if len(cwp.States) == 0 {
		return 0, 0, false
	}
	for _, s := range cwp.States {
		if !s.IsSane() {
			return 0, 0, false
		}
	}

	root := cwp.States[0]
	totalCount := root.Height - r.HeightGenesis
	verifier := merkle.NewMultiProofVerifier(&cwp.Proof, totalCount)

	samp := NewSampler(root.Hash(), decChainWork(root), root.ChainWork)
	if samp.Begin.Cmp(samp.End) >= 0 {
		log.Debugf("chain-work proof root has an empty sampling range")
		return 0, 0, false
	}
	samp.LowerBound = cwp.LowerBound

	dLoPrev := decChainWork(root)
	var commonRoot merkle.Hash
	haveCommonRoot := false

	iState = 1
	for {
		dSamp, ok := samp.SamplePoint()
		if !ok {
			break
		}
		if iState >= len(cwp.States) {
			log.Debugf("sampler drew more points than the proof has states for")
			return 0, 0, false
		}

		s0 := cwp.States[iState-1]
		s := cwp.States[iState]

		if dSamp.Cmp(s.ChainWork) >= 0 {
			return 0, 0, false
		}
		dLo := decChainWork(s)
		if dSamp.Cmp(dLo) < 0 {
			log.Debugf("sampled state at height %d does not cover the sampled point", s.Height)
			return 0, 0, false
		}

		hv := s.Hash()

		switch {
		case s.Height+1 == s0.Height:
			if s0.Prev != hv {
				return 0, 0, false
			}
			if s.ChainWork.Cmp(dLoPrev) != 0 {
				return 0, 0, false
			}

		default:
			if s.Height >= s0.Height {
				return 0, 0, false
			}
			if s.ChainWork.Cmp(dLoPrev) >= 0 {
				return 0, 0, false
			}
			got, ok := verifier.Process(s.Height-r.HeightGenesis, hv)
			if !ok {
				return 0, 0, false
			}
			if !haveCommonRoot {
				commonRoot, haveCommonRoot = got, true
			} else if got != commonRoot {
				return 0, 0, false
			}
		}

		dLoPrev = dLo
		if samp.Begin.Cmp(dLo) > 0 {
			samp.Begin = dLo
		}
		iState++
	}

	if haveCommonRoot {
		hvDef := commonRoot
		merkle.Interpret(&hvDef, merkle.Node{Right: true, Hash: cwp.HvRootLive})
		if hvDef != root.Definition {
			return 0, 0, false
		}
	}

	return iState, verifier.Consumed(), true
}

// IsValid reports whether cwp is a complete and internally consistent
// chain-work proof under r: every sampled state must be accounted for
// by States and every recorded proof entry must be consumed.
func (cwp *ChainWorkProof) IsValid(r rules.Rules) bool {
	iState, iHash, ok := cwp.validInternal(r)
	return ok && iState == len(cwp.States) && iHash == len(cwp.Proof.Data)
}

// Crop raises cwp's LowerBound to newLowerBound and truncates
// States/Proof.Data to the shorter prefix that remains a valid proof
// against the new bound,
// letting a prover reuse one long-lived proof to serve shorter proofs
// to clients already past some of its history (spec §4.7).
func (cwp *ChainWorkProof) Crop(newLowerBound *big.Int, r rules.Rules) bool {
	cwp.LowerBound = new(big.Int).Set(newLowerBound)
	iState, iHash, ok := cwp.validInternal(r)
	if !ok {
		return false
	}
	cwp.States = cwp.States[:iState]
	cwp.Proof.Data = cwp.Proof.Data[:iHash]
	return true
}
