// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// CompressedPointSize is the size in bytes of a point serialized in
// compressed form.
const CompressedPointSize = 33

// Point is a point on the secp256k1 curve. The zero value is the point at
// infinity, the same value Zero returns.
type Point struct {
	p secp256k1.JacobianPoint
}

// Zero returns the point at infinity.
func Zero() Point {
	var p Point
	p.p.X.SetInt(0)
	p.p.Y.SetInt(0)
	p.p.Z.SetInt(0)
	return p
}

// IsZero reports whether p is the point at infinity.
func (p Point) IsZero() bool {
	return (p.p.X.IsZero() && p.p.Y.IsZero()) || p.p.Z.IsZero()
}

// Import parses a compressed point (the format used for Commitment and
// TxKernel.Excess) and reports whether it lies on the curve.
func Import(b [CompressedPointSize]byte) (Point, bool) {
	pub, err := secp256k1.ParsePubKey(b[:])
	if err != nil {
		return Point{}, false
	}
	var out Point
	pub.AsJacobian(&out.p)
	return out, true
}

// Bytes serializes p in compressed form.
func (p Point) Bytes() [CompressedPointSize]byte {
	q := p.p
	q.ToAffine()
	pub := secp256k1.NewPublicKey(&q.X, &q.Y)
	var out [CompressedPointSize]byte
	copy(out[:], pub.SerializeCompressed())
	return out
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	var out Point
	secp256k1.AddNonConst(&p.p, &q.p, &out.p)
	return out
}

// Negate returns -p.
func (p Point) Negate() Point {
	out := p
	out.p.Y.Negate(1).Normalize()
	return out
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return p.Add(q.Negate())
}

// Mul returns k*p.
func (p Point) Mul(k Scalar) Point {
	var out Point
	secp256k1.ScalarMultNonConst(&k.s, &p.p, &out.p)
	return out
}

// MulUint64 returns k*p for a plain integer scalar, used for the small
// kernel multiplier (excess * (multiplier+1)) and for amount*H folding.
func (p Point) MulUint64(k uint64) Point {
	var s Scalar
	s.SetUint64(k)
	return p.Mul(s)
}

// Equal reports whether p and q denote the same curve point.
func (p Point) Equal(q Point) bool {
	a, b := p, q
	a.p.ToAffine()
	b.p.ToAffine()
	if a.p.Z.IsZero() != b.p.Z.IsZero() {
		return false
	}
	if a.p.Z.IsZero() {
		return true // both at infinity
	}
	return a.p.X.Equals(&b.p.X) && a.p.Y.Equals(&b.p.Y)
}

// basePoint returns the curve's standard generator, G.
func basePoint() Point {
	var one Scalar
	one.SetUint64(1)
	var out Point
	secp256k1.ScalarBaseMultNonConst(&one.s, &out.p)
	return out
}

// hashToGenerator derives a second independent generator by hashing a
// fixed domain-separation tag to a curve point via try-and-increment on
// the x-coordinate. There is no known discrete-log relationship between
// the result and G, which is the safety property Pedersen commitments
// need from their second generator.
func hashToGenerator(tag string) Point {
	ctr := uint32(0)
	for {
		hv := blake256Sum(append([]byte(tag), leU32(ctr)...))
		var fx secp256k1.FieldVal
		if overflow := fx.SetByteSlice(hv[:]); !overflow {
			var fy secp256k1.FieldVal
			if secp256k1.DecompressY(&fx, false, &fy) {
				var out Point
				out.p.X = fx
				out.p.Y = fy
				out.p.Z.SetInt(1)
				out.p.X.Normalize()
				out.p.Y.Normalize()
				return out
			}
		}
		ctr++
	}
}

func leU32(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

// G is the curve's standard base point, used as the blinding-factor
// generator for Pedersen commitments and kernel excesses.
var G = basePoint()

// H is the second Pedersen generator, used as the value generator for
// commitments (v*H + k*G) and for folding AmountBig totals (fee, subsidy,
// coinbase) into the running commitment sum.
var H = hashToGenerator("solacecore/ecc/H")

// Commitment returns the Pedersen commitment v*H + k*G.
func Commitment(k Scalar, v uint64) Point {
	return G.Mul(k).Add(H.MulUint64(v))
}
