// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package validate

import (
	"github.com/solacechain/solacecore/amount"
	"github.com/solacechain/solacecore/ecc"
)

// IsValidTransaction checks a Context already summarized by
// ValidateAndSummarize for a standalone transaction: no coinbase value
// may appear outside block mode, and once the fee is folded in, Sigma
// must be exactly zero (spec §4.4).
func (c *Context) IsValidTransaction() bool {
	if !c.Coinbase.IsZero() {
		return false
	}
	var feePoint ecc.Point
	c.Fee.AddTo(&feePoint)
	c.Sigma = c.Sigma.Add(feePoint)
	return c.Sigma.IsZero()
}

// BodySummary is the subset of chain.BodyBase that IsValidBlock needs:
// the subsidy this block claims to mint and whether it claims to close
// emission.
type BodySummary struct {
	Subsidy        amount.Big
	SubsidyClosing bool
}

// IsValidBlock checks a Context already summarized by
// ValidateAndSummarize for a block body: the subsidy is folded into
// Sigma (negated, since it mints value rather than spending it) and
// Sigma must be exactly zero. When subsidyOpen is false, the subsidy
// is additionally bounded: a block may not carry a closing marker at
// all once emission has closed, the subsidy may not exceed
// blocksInRange*coinbaseEmission, and if blocksInRange exceeds
// maturityCoinbase, enough immature coinbase value must remain unspent
// to cover future maturity (spec §4.4).
func (c *Context) IsValidBlock(body BodySummary, subsidyOpen bool, blocksInRange, coinbaseEmission, maturityCoinbase uint64) bool {
	var subsidyPoint ecc.Point
	body.Subsidy.AddTo(&subsidyPoint)
	c.Sigma = c.Sigma.Sub(subsidyPoint)
	if !c.Sigma.IsZero() {
		return false
	}

	if subsidyOpen {
		return true
	}

	if body.SubsidyClosing {
		return false
	}

	maxSubsidy := amount.Big{}
	maxSubsidy.AddAmount(amount.Amount(blocksInRange * coinbaseEmission))
	if body.Subsidy.Cmp(maxSubsidy) > 0 {
		return false
	}

	if blocksInRange > maturityCoinbase {
		minted := amount.Big{}
		minted.AddAmount(amount.Amount(coinbaseEmission * blocksInRange))
		alreadyMinted := satSub(minted, body.Subsidy)

		required := amount.Big{}
		required.AddAmount(amount.Amount((blocksInRange - maturityCoinbase) * coinbaseEmission))
		floor := satSub(required, alreadyMinted)

		if c.Coinbase.Cmp(floor) < 0 {
			return false
		}
	}

	return true
}

// satSub returns a-b, saturating at zero rather than wrapping.
func satSub(a, b amount.Big) amount.Big {
	if a.Cmp(b) <= 0 {
		return amount.Big{}
	}
	if a.Lo >= b.Lo {
		return amount.Big{Lo: a.Lo - b.Lo, Hi: a.Hi - b.Hi}
	}
	return amount.Big{Lo: a.Lo - b.Lo, Hi: a.Hi - b.Hi - 1}
}
