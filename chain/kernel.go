// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"github.com/solacechain/solacecore/amount"
	"github.com/solacechain/solacecore/ecc"
	"github.com/solacechain/solacecore/merkle"
)

// HashLock, when present on a kernel, ties the kernel's spendability to
// revealing Preimage — an atomic-swap-style commitment (spec §3).
type HashLock struct {
	Preimage [32]byte
}

// Image returns the hash-lock's image, the value bound into the kernel
// hash in place of the preimage itself.
func (hl *HashLock) Image() merkle.Hash {
	return merkle.HashLeaf(hl.Preimage[:])
}

// TxKernel is a signed assertion over a transaction's excess blinding.
// Excess is the residual curve point after inputs and outputs cancel;
// Multiplier lets a party re-sign a kernel under excess*(multiplier+1)
// so that an input kernel can consume an output kernel signed with a
// strictly higher multiplier (spec §3, glossary).
type TxKernel struct {
	Excess     ecc.Point
	Multiplier uint32
	Signature  ecc.Signature
	Fee        amount.Amount
	Height     HeightRange
	HashLock   *HashLock
	Nested     []*TxKernel
}

// Cmp returns -1, 0, or 1 as k sorts before, equal to, or after v. The
// nested kernel lists compare element-wise with the shorter list
// sorting first when one is a strict prefix of the other (spec §4.1).
func (k *TxKernel) Cmp(v *TxKernel) int {
	ke, ve := k.Excess.Bytes(), v.Excess.Bytes()
	if n := cmpBytes(ke[:], ve[:]); n != 0 {
		return n
	}
	if n := cmpUint32(k.Multiplier, v.Multiplier); n != 0 {
		return n
	}
	ks, vs := k.Signature.Bytes(), v.Signature.Bytes()
	if n := cmpBytes(ks[:], vs[:]); n != 0 {
		return n
	}
	if n := cmpUint64(uint64(k.Fee), uint64(v.Fee)); n != 0 {
		return n
	}
	if n := cmpUint64(k.Height.Min, v.Height.Min); n != 0 {
		return n
	}
	if n := cmpUint64(k.Height.Max, v.Height.Max); n != 0 {
		return n
	}

	n := len(k.Nested)
	if len(v.Nested) < n {
		n = len(v.Nested)
	}
	for i := 0; i < n; i++ {
		if c := k.Nested[i].Cmp(v.Nested[i]); c != 0 {
			return c
		}
	}
	return cmpInt(len(k.Nested), len(v.Nested))
}

// hashToID folds excess and multiplier into hv to derive a kernel's ID
// from its hash, incrementing the result by one on the reserved
// all-zero collision (spec §4.3).
func hashToID(hv merkle.Hash, excess ecc.Point, multiplier uint32) merkle.Hash {
	o := ecc.NewOracle()
	o.AbsorbHash(hv)
	eb := excess.Bytes()
	o.Absorb(eb[:])
	o.AbsorbUint32(multiplier)
	id := merkle.Hash(o.Squeeze())
	if id == (merkle.Hash{}) {
		id.Inc()
	}
	return id
}

// traverse is the shared engine behind Hash, ID, IsValid, and the
// recursive Traverse contract of spec §4.3. When verify is true it also
// checks k's signature and folds k's excess into sigma and its fee into
// fee; when false (computing a hash for an ancestor) it skips both.
// lockImage, when non-nil, stands in for HashLock.Image() so a verifier
// that already knows the image (but not the preimage) can still
// reproduce k's hash; it applies to k alone, never to k's nested
// kernels, which always derive their own image from their own
// preimage.
func (k *TxKernel) traverse(parent *TxKernel, fee *amount.Big, sigma *ecc.Point, verify bool, lockImage *merkle.Hash) (merkle.Hash, bool) {
	if parent != nil {
		if k.Multiplier != parent.Multiplier {
			return merkle.Hash{}, false
		}
		if !k.Height.Contains(parent.Height) {
			return merkle.Hash{}, false
		}
	}

	o := ecc.NewOracle()
	o.AbsorbUint64(uint64(k.Fee))
	o.AbsorbUint64(k.Height.Min)
	o.AbsorbUint64(k.Height.Max)
	o.AbsorbBool(k.HashLock != nil)
	if k.HashLock != nil {
		img := lockImage
		if img == nil {
			derived := k.HashLock.Image()
			img = &derived
		}
		o.AbsorbHash(*img)
	}

	var prev *TxKernel
	for _, child := range k.Nested {
		if prev != nil && prev.Cmp(child) >= 0 {
			return merkle.Hash{}, false
		}
		prev = child

		o.AbsorbBool(false)

		childHash, ok := child.traverse(k, fee, sigma, verify, nil)
		if !ok {
			return merkle.Hash{}, false
		}
		o.AbsorbHash(hashToID(childHash, child.Excess, child.Multiplier))
	}
	o.AbsorbBool(true)

	hv := merkle.Hash(o.Squeeze())

	if verify {
		pt := k.Excess.MulUint64(uint64(k.Multiplier) + 1)
		if !k.Signature.IsValid(pt, hv) {
			return merkle.Hash{}, false
		}
		*sigma = sigma.Add(pt)
	}

	if fee != nil {
		fee.AddAmount(k.Fee)
	}

	return hv, true
}

// Hash returns k's pre-ID kernel hash (spec §4.3). lockImage lets a
// caller who knows a hash-locked kernel's image but not its preimage
// still reproduce the hash; pass nil to derive the image from
// k.HashLock.Preimage as usual.
func (k *TxKernel) Hash(lockImage *merkle.Hash) merkle.Hash {
	hv, _ := k.traverse(nil, nil, nil, false, lockImage)
	return hv
}

// ID returns k's kernel ID: hash(Hash(), Excess, Multiplier), never the
// all-zero hash (spec §4.3). lockImage is forwarded to Hash.
func (k *TxKernel) ID(lockImage *merkle.Hash) merkle.Hash {
	return hashToID(k.Hash(lockImage), k.Excess, k.Multiplier)
}

// IsValid verifies k's signature and recursively its nested kernels,
// folding k's total fee into fee and its total excess into sigma. It
// always derives k's own lock image from its stored preimage: a
// verifier checking a live signature is expected to hold it.
func (k *TxKernel) IsValid(fee *amount.Big, sigma *ecc.Point) bool {
	_, ok := k.traverse(nil, fee, sigma, true, nil)
	return ok
}
