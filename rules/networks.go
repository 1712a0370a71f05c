// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rules

import "github.com/solacechain/solacecore/difficulty"

// Mainnet returns the consensus parameters for solacecore's main
// network. Returned by value, the way chaincfg.MainNetParams returns a
// fresh *Params rather than exposing a mutable package-level var.
func Mainnet() Rules {
	return Rules{
		HeightGenesis:    1,
		Coin:             100_000_000,
		CoinbaseEmission: 80 * 100_000_000,

		MaturityCoinbase: 240,
		MaturityStd:      0,

		MaxBodySize: 1_000_000,

		FakePoW:          false,
		AllowPublicUtxos: false,

		DesiredRate_s:             60,
		DifficultyReviewCycle:     1440,
		MaxDifficultyChange:       2,
		TimestampAheadThreshold_s: 15 * 60,
		WindowForMedian:           25,

		StartDifficulty: difficulty.Pack(24, 0),

		PoW_K:     6,
		PoW_N:     32,
		PoW_NBits: 25,
	}
}

// Testnet returns the consensus parameters for solacecore's test
// network: a weaker starting difficulty and fake PoW so blocks can be
// produced without a real solver, matching BEAM's Rules::FakePoW bypass
// for non-production networks.
func Testnet() Rules {
	r := Mainnet()
	r.HeightGenesis = 1
	r.FakePoW = true
	r.AllowPublicUtxos = true
	r.StartDifficulty = difficulty.Pack(1, 0)
	r.MaturityCoinbase = 12
	return r
}
