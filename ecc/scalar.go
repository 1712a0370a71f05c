// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"github.com/decred/dcrd/crypto/rand"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ScalarSize is the size in bytes of a scalar serialized big-endian mod
// the curve order.
const ScalarSize = 32

// Scalar is an integer modulo the secp256k1 group order.
type Scalar struct {
	s secp256k1.ModNScalar
}

// SetUint64 sets s to v and returns s.
func (s *Scalar) SetUint64(v uint64) *Scalar {
	var buf [ScalarSize]byte
	for i := 0; i < 8; i++ {
		buf[ScalarSize-1-i] = byte(v >> (8 * i))
	}
	s.s.SetByteSlice(buf[:])
	return s
}

// ImportScalar parses a scalar serialized big-endian, reducing mod the
// group order.
func ImportScalar(b [ScalarSize]byte) Scalar {
	var s Scalar
	s.s.SetByteSlice(b[:])
	return s
}

// Bytes serializes s big-endian.
func (s Scalar) Bytes() [ScalarSize]byte {
	var out [ScalarSize]byte
	b := s.s.Bytes()
	copy(out[:], b[:])
	return out
}

// IsZero reports whether s is the additive identity.
func (s Scalar) IsZero() bool {
	return s.s.IsZero()
}

// Negate returns -s.
func (s Scalar) Negate() Scalar {
	out := s
	out.s.Negate()
	return out
}

// Add returns s+t.
func (s Scalar) Add(t Scalar) Scalar {
	out := s
	out.s.Add(&t.s)
	return out
}

// Sub returns s-t.
func (s Scalar) Sub(t Scalar) Scalar {
	return s.Add(t.Negate())
}

// Mul returns s*t.
func (s Scalar) Mul(t Scalar) Scalar {
	out := s
	out.s.Mul(&t.s)
	return out
}

// RandomScalar draws a scalar from the process CSPRNG, reducing mod the
// group order on the rare overflow. Used wherever a blinding factor or
// offset needs process randomness rather than a value derived from the
// deterministic Oracle transcript.
func RandomScalar() Scalar {
	var b [ScalarSize]byte
	rand.Read(b[:])
	return ImportScalar(b)
}
