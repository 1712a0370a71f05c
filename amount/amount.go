// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package amount implements the 64-bit and 128-bit amount types used to
count coins, fees, and block subsidies. AmountBig mirrors BEAM's
AmountBig{Lo,Hi}: a fixed two-word pair rather than math/big, since the
hot accumulation path (one add per kernel, per output) should not
allocate.
*/
package amount

import "github.com/solacechain/solacecore/ecc"

// Amount is a single coin value, the unit everything else is denominated in.
type Amount uint64

// Big is a 128-bit unsigned amount, used to total the fees and coinbase
// outputs of a whole block, which can exceed a 64-bit Amount. Additions
// carry from Lo into Hi; an overflow of Hi wraps rather than saturating.
type Big struct {
	Lo, Hi uint64
}

// AddAmount adds a plain Amount to b, carrying into Hi on overflow.
func (b *Big) AddAmount(v Amount) {
	lo := b.Lo + uint64(v)
	if lo < uint64(v) {
		b.Hi++
	}
	b.Lo = lo
}

// Add adds x to b.
func (b *Big) Add(x Big) {
	b.AddAmount(Amount(x.Lo))
	b.Hi += x.Hi
}

// IsZero reports whether b is zero.
func (b Big) IsZero() bool {
	return b.Lo == 0 && b.Hi == 0
}

// Export serializes b big-endian into a 32-byte buffer, Lo occupying the
// low 8 bytes and Hi the next 8, matching BEAM's AmountBig::Export layout
// (the remaining high bytes are zero, since Big only has 128 significant
// bits of range).
func (b Big) Export() [32]byte {
	var out [32]byte
	putBE64(out[16:24], b.Hi)
	putBE64(out[24:32], b.Lo)
	return out
}

func putBE64(dst []byte, v uint64) {
	for i := 0; i < 8; i++ {
		dst[7-i] = byte(v >> (8 * i))
	}
}

// AddTo folds b into pt as b*H, matching BEAM's AmountBig::AddTo: when Hi is
// zero this is the ordinary Amount*H used for a single fee or coinbase
// value, and when Hi is nonzero it widens to the full 256-bit scalar export
// so a block's total subsidy can exceed 2^64 without losing precision.
func (b Big) AddTo(pt *ecc.Point) {
	if b.Hi == 0 {
		if b.Lo == 0 {
			return
		}
		*pt = pt.Add(ecc.H.MulUint64(b.Lo))
		return
	}
	s := ecc.ImportScalar(b.Export())
	*pt = pt.Add(ecc.H.Mul(s))
}

// Cmp returns -1, 0, or 1 as b is less than, equal to, or greater than x.
func (b Big) Cmp(x Big) int {
	if b.Hi != x.Hi {
		if b.Hi < x.Hi {
			return -1
		}
		return 1
	}
	if b.Lo != x.Lo {
		if b.Lo < x.Lo {
			return -1
		}
		return 1
	}
	return 0
}
