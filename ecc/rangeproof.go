// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

// RangeProof is satisfied by both concrete proof variants an Output can
// carry. Per spec §1, the real range-proof math is an external
// collaborator; both variants here are opaque-but-concrete stand-ins
// with the stated IsValid(commitment) contract.
type RangeProof interface {
	IsValid(commitment Point, oracle *Oracle) bool
}

// PublicProof reveals Value in the clear; validity proves knowledge of
// the blinding factor for that stated value by checking a signature
// against commitment - Value*H, the public point corresponding to the
// blinding scalar alone (spec §4.1).
type PublicProof struct {
	Value     uint64
	Signature Signature
}

// NewPublicProof signs oracle (already primed by the caller with
// whatever context — e.g. incubation — needs binding) under k, after
// folding v into the transcript so the signature is bound to the
// claimed value.
func NewPublicProof(k Scalar, v uint64, oracle *Oracle) PublicProof {
	oracle.AbsorbUint64(v)
	msg := oracle.Squeeze()
	return PublicProof{Value: v, Signature: Sign(k, msg)}
}

// IsValid reports whether p is a valid public proof for commitment
// under the given oracle state.
func (p PublicProof) IsValid(commitment Point, oracle *Oracle) bool {
	oracle.AbsorbUint64(p.Value)
	msg := oracle.Squeeze()
	pk := commitment.Sub(H.MulUint64(p.Value))
	return p.Signature.IsValid(pk, msg)
}

// ConfidentialProof is a structural stand-in for a real zero-knowledge
// range proof (bulletproof-style), per spec §1's "RangeProof::
// Confidential ... opaque, stated contracts" and DESIGN.md's Open
// Question entry: no library in the retrieval pack implements one, and
// none is grounded here. It proves knowledge of the blinding scalar and
// binds itself to the exact commitment bytes at creation time, but does
// NOT prove the hidden value lies in any range — callers must not treat
// IsValid returning true as a guarantee of non-negativity.
type ConfidentialProof struct {
	Digest    [32]byte
	BlindPub  Point
	Signature Signature
}

// NewConfidentialProof builds a proof for a commitment with blinding k,
// without ever absorbing the hidden value into the transcript.
func NewConfidentialProof(k Scalar, commitment Point, oracle *Oracle) ConfidentialProof {
	msg := oracle.Squeeze()
	b := commitment.Bytes()
	return ConfidentialProof{
		Digest:    blake256Sum(b[:]),
		BlindPub:  G.Mul(k),
		Signature: Sign(k, msg),
	}
}

// IsValid reports whether p is bound to commitment and carries a valid
// signature under the given oracle state.
func (p ConfidentialProof) IsValid(commitment Point, oracle *Oracle) bool {
	b := commitment.Bytes()
	if blake256Sum(b[:]) != p.Digest {
		return false
	}
	msg := oracle.Squeeze()
	return p.Signature.IsValid(p.BlindPub, msg)
}
