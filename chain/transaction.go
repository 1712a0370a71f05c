// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"sort"

	"github.com/solacechain/solacecore/merkle"
)

// Transaction is a standalone, algebraically-balanced set of spends and
// creations together with the kernels that authorize them (spec §4.1).
// KernelsIn and KernelsOut are a transaction's own split of the single
// kernel list a mined block ultimately carries: KernelsIn kernels spend
// value already committed elsewhere, KernelsOut kernels commit new
// value this transaction itself introduces.
type Transaction struct {
	TxBase
	Inputs     []*Input
	Outputs    []*Output
	KernelsIn  []*TxKernel
	KernelsOut []*TxKernel
}

// TestNoNulls panics if any element of tx's vectors is nil. A nil entry
// is a construction bug in the caller, not a consensus failure, so this
// is an assertion rather than a returned error (spec §7).
func (tx *Transaction) TestNoNulls() {
	for _, in := range tx.Inputs {
		if in == nil {
			panic("chain: nil Input in Transaction")
		}
	}
	for _, out := range tx.Outputs {
		if out == nil {
			panic("chain: nil Output in Transaction")
		}
	}
	for _, k := range tx.KernelsIn {
		if k == nil {
			panic("chain: nil kernel in Transaction.KernelsIn")
		}
	}
	for _, k := range tx.KernelsOut {
		if k == nil {
			panic("chain: nil kernel in Transaction.KernelsOut")
		}
	}
}

// Sort canonicalizes tx's vectors in place, the form every consensus
// comparison and every streaming reader assumes (spec §4.1).
func (tx *Transaction) Sort() {
	sort.Slice(tx.Inputs, func(i, j int) bool { return tx.Inputs[i].Cmp(tx.Inputs[j]) < 0 })
	sort.Slice(tx.Outputs, func(i, j int) bool { return tx.Outputs[i].Cmp(tx.Outputs[j]) < 0 })
	sort.Slice(tx.KernelsIn, func(i, j int) bool { return tx.KernelsIn[i].Cmp(tx.KernelsIn[j]) < 0 })
	sort.Slice(tx.KernelsOut, func(i, j int) bool { return tx.KernelsOut[i].Cmp(tx.KernelsOut[j]) < 0 })
}

// Cmp returns -1, 0, or 1 as tx sorts before, equal to, or after v,
// comparing overall size before element-wise content so that two
// transactions of different shape never tie (spec §4.1).
func (tx *Transaction) Cmp(v *Transaction) int {
	if n := cmpInt(len(tx.Inputs), len(v.Inputs)); n != 0 {
		return n
	}
	if n := cmpInt(len(tx.Outputs), len(v.Outputs)); n != 0 {
		return n
	}
	if n := cmpInt(len(tx.KernelsIn), len(v.KernelsIn)); n != 0 {
		return n
	}
	if n := cmpInt(len(tx.KernelsOut), len(v.KernelsOut)); n != 0 {
		return n
	}

	for i := range tx.Inputs {
		if n := tx.Inputs[i].Cmp(v.Inputs[i]); n != 0 {
			return n
		}
	}
	for i := range tx.Outputs {
		if n := tx.Outputs[i].Cmp(v.Outputs[i]); n != 0 {
			return n
		}
	}
	for i := range tx.KernelsIn {
		if n := tx.KernelsIn[i].Cmp(v.KernelsIn[i]); n != 0 {
			return n
		}
	}
	for i := range tx.KernelsOut {
		if n := tx.KernelsOut[i].Cmp(v.KernelsOut[i]); n != 0 {
			return n
		}
	}
	return 0
}

// Key returns a transaction identity suitable for mempool deduplication.
// The offset scalar is the natural key when non-zero; a transaction with
// a zero offset (legal, if contrived) instead folds every input
// commitment, output commitment, and kernel ID together by XOR, so that
// two structurally distinct zero-offset transactions essentially never
// collide (spec §4.1, BEAM's Transaction::get_Key fallback).
func (tx *Transaction) Key() merkle.Hash {
	ob := tx.Offset.Bytes()
	if ob != [32]byte{} {
		return merkle.Hash(ob)
	}

	var out merkle.Hash
	xorInto := func(h merkle.Hash) {
		for i := range out {
			out[i] ^= h[i]
		}
	}
	for _, in := range tx.Inputs {
		var h merkle.Hash
		copy(h[:], in.Commitment[:])
		xorInto(h)
	}
	for _, o := range tx.Outputs {
		var h merkle.Hash
		copy(h[:], o.Commitment[:])
		xorInto(h)
	}
	for _, k := range tx.KernelsIn {
		xorInto(k.ID(nil))
	}
	for _, k := range tx.KernelsOut {
		xorInto(k.ID(nil))
	}
	return out
}
