// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package rules defines the single set of network-wide consensus
parameters every validator, difficulty calculation, and chain-work
proof is checked against. Unlike BEAM's g_Rules process global, Rules
here is an ordinary value threaded explicitly through the packages that
need it — the same shape as the teacher's chaincfg.Params, which dcrd
passes by pointer rather than reaching for a singleton (see DESIGN.md's
"per-context rules" Open Question).
*/
package rules

import (
	"fmt"

	"github.com/solacechain/solacecore/difficulty"
	"github.com/solacechain/solacecore/ecc"
	"github.com/solacechain/solacecore/merkle"
)

// protocolVersion is the trailing tag absorbed into every checksum,
// bumped whenever the wire or validation semantics change in a way
// that must not interoperate silently with older nodes.
const protocolVersion = uint32(4)

// Rules is the full set of consensus parameters a network agrees on.
// Every field here, plus the primitives' own context checksum, flows
// into Checksum in the fixed order spec §6 defines.
type Rules struct {
	HeightGenesis    uint64
	Coin             uint64
	CoinbaseEmission uint64

	MaturityCoinbase uint64
	MaturityStd      uint64

	MaxBodySize uint64

	FakePoW          bool
	AllowPublicUtxos bool

	DesiredRate_s             uint32
	DifficultyReviewCycle     uint32
	MaxDifficultyChange       uint32
	TimestampAheadThreshold_s uint32
	WindowForMedian           uint32

	StartDifficulty difficulty.Difficulty

	PoW_K     uint32
	PoW_N     uint32
	PoW_NBits uint32
}

// TargetReviewDt_s returns the wall-clock duration, in seconds, a full
// difficulty review cycle should take: DesiredRate_s * DifficultyReviewCycle.
func (r Rules) TargetReviewDt_s() uint32 {
	return r.DesiredRate_s * r.DifficultyReviewCycle
}

// Checksum absorbs every field above, in the order spec §6 fixes,
// through an ecc.Oracle seeded first with the primitives' own context
// checksum, so that two rule sets built against incompatible curve or
// generator choices never accidentally agree.
func (r Rules) Checksum() merkle.Hash {
	o := ecc.NewOracle()

	ctx := ecc.ContextChecksum()
	o.Absorb(ctx[:])

	o.AbsorbUint64(r.HeightGenesis)
	o.AbsorbUint64(r.Coin)
	o.AbsorbUint64(r.CoinbaseEmission)
	o.AbsorbUint64(r.MaturityCoinbase)
	o.AbsorbUint64(r.MaturityStd)
	o.AbsorbUint64(r.MaxBodySize)
	o.AbsorbBool(r.FakePoW)
	o.AbsorbBool(r.AllowPublicUtxos)
	o.AbsorbUint32(r.DesiredRate_s)
	o.AbsorbUint32(r.DifficultyReviewCycle)
	o.AbsorbUint32(r.MaxDifficultyChange)
	o.AbsorbUint32(r.TimestampAheadThreshold_s)
	o.AbsorbUint32(r.WindowForMedian)
	o.AbsorbUint32(r.StartDifficulty.Packed)
	o.AbsorbUint32(r.PoW_K)
	o.AbsorbUint32(r.PoW_N)
	o.AbsorbUint32(r.PoW_NBits)
	o.AbsorbUint32(protocolVersion)

	return merkle.Hash(o.Squeeze())
}

// VerifyChecksum reports a diagnosable error if r does not checksum to
// want, the check a node runs against a peer's advertised checksum (or
// a config file's recorded one) before trusting that the two sides
// agree on every consensus parameter.
func (r Rules) VerifyChecksum(want merkle.Hash) error {
	got := r.Checksum()
	if got == want {
		return nil
	}
	return ruleError(ErrChecksumMismatch,
		fmt.Sprintf("rules: checksum mismatch: got %x, want %x", got[:], want[:]))
}
