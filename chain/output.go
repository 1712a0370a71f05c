// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import "github.com/solacechain/solacecore/ecc"

// Output is a new UTXO. Exactly one of Public or Confidential must be
// set; modeling it as a tagged pair of pointers (rather than two
// optional fields checked at runtime with no further structure) is the
// Go rendering of spec §9's "model as tagged variant" design note.
type Output struct {
	CommitmentAndMaturity
	Coinbase     bool
	Incubation   uint64
	Public       *ecc.PublicProof
	Confidential *ecc.ConfidentialProof
}

// Cmp returns -1, 0, or 1 as o sorts before, equal to, or after v.
func (o *Output) Cmp(v *Output) int {
	if n := o.CommitmentAndMaturity.Cmp(v.CommitmentAndMaturity); n != 0 {
		return n
	}
	if n := cmpBool(o.Coinbase, v.Coinbase); n != 0 {
		return n
	}
	if n := cmpUint64(o.Incubation, v.Incubation); n != 0 {
		return n
	}
	if n := cmpPtrPresence(o.Confidential != nil, v.Confidential != nil); n != 0 {
		return n
	}
	return cmpPtrPresence(o.Public != nil, v.Public != nil)
}

func cmpPtrPresence(a, b bool) int {
	return cmpBool(a, b)
}

// Validate reports whether o's proof is structurally valid for its
// commitment, and returns the imported commitment point for the
// caller to fold into a running sum. allowPublicUtxos mirrors
// rules.Rules.AllowPublicUtxos (spec §4.1: "non-coinbase public
// forbidden unless rules allow it").
func (o *Output) Validate(allowPublicUtxos bool) (ecc.Point, bool) {
	comm, ok := ecc.Import(o.Commitment)
	if !ok {
		return ecc.Point{}, false
	}

	oracle := ecc.NewOracle()
	oracle.AbsorbUint64(o.Incubation)

	switch {
	case o.Public != nil && o.Confidential != nil:
		return ecc.Point{}, false // exactly one, never both

	case o.Confidential != nil:
		if o.Coinbase {
			return ecc.Point{}, false // coinbase must have a visible amount
		}
		if !o.Confidential.IsValid(comm, oracle) {
			return ecc.Point{}, false
		}

	case o.Public != nil:
		if !allowPublicUtxos && !o.Coinbase {
			return ecc.Point{}, false
		}
		if !o.Public.IsValid(comm, oracle) {
			return ecc.Point{}, false
		}

	default:
		return ecc.Point{}, false
	}

	return comm, true
}

// MinMaturity computes the earliest height at which o may be spent,
// given the height it was created at and the network's standard and
// coinbase maturity periods, saturating rather than overflowing
// (spec §3).
func (o *Output) MinMaturity(creationHeight, maturityCoinbase, maturityStd uint64) uint64 {
	h := creationHeight
	if o.Coinbase {
		h = satAdd(h, maturityCoinbase)
	} else {
		h = satAdd(h, maturityStd)
	}
	return satAdd(h, o.Incubation)
}
