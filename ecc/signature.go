// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/schnorr"
)

// SignatureSize is the size in bytes of a serialized Signature.
const SignatureSize = 64

// Signature is a Schnorr signature binding a 32-byte message to the
// public point derived from the signing scalar, used for TxKernel
// excesses and for the signature embedded in RangeProof.Public and
// RangeProof.Confidential.
type Signature struct {
	sig *schnorr.Signature
}

// Sign produces a signature over msg under the private scalar sk.
func Sign(sk Scalar, msg [32]byte) Signature {
	priv := secp256k1.NewPrivateKey(&sk.s)
	sig, err := schnorr.Sign(priv, msg[:])
	if err != nil {
		// Only returned for a zero private key, which callers here never
		// produce: every blinding factor is either user-supplied entropy
		// or derived from it.
		panic(err)
	}
	return Signature{sig: sig}
}

// IsValid reports whether sig is a valid signature over msg under the
// public point pk.
func (sig Signature) IsValid(pk Point, msg [32]byte) bool {
	if sig.sig == nil {
		return false
	}
	b := pk.Bytes()
	pub, err := secp256k1.ParsePubKey(b[:])
	if err != nil {
		return false
	}
	return sig.sig.Verify(msg[:], pub)
}

// Bytes serializes sig in its fixed 64-byte R||S form.
func (sig Signature) Bytes() [SignatureSize]byte {
	var out [SignatureSize]byte
	if sig.sig == nil {
		return out
	}
	copy(out[:], sig.sig.Serialize())
	return out
}

// ImportSignature parses a signature serialized by Bytes.
func ImportSignature(b [SignatureSize]byte) (Signature, bool) {
	sig, err := schnorr.ParseSignature(b[:])
	if err != nil {
		return Signature{}, false
	}
	return Signature{sig: sig}, true
}
