// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import "github.com/solacechain/solacecore/amount"

// BodyBase is the part of a block body beyond the shared TxBase: the
// coinbase subsidy this block mints, and whether this block is the one
// that finally closes emission (spec §4.1).
type BodyBase struct {
	TxBase
	Subsidy        amount.Big
	SubsidyClosing bool
}

// Merge folds next into b in place, as when combining adjacent blocks'
// bodies into one cumulative range. It fails if both b and next already
// claim to be the closing block, since emission can close only once.
func (b *BodyBase) Merge(next BodyBase) bool {
	if b.SubsidyClosing && next.SubsidyClosing {
		return false
	}
	b.Subsidy.Add(next.Subsidy)
	b.SubsidyClosing = b.SubsidyClosing || next.SubsidyClosing
	b.Offset = b.Offset.Add(next.Offset)
	return true
}
