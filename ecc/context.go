// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

// ContextChecksum returns a fixed digest of the primitives this package
// exposes — the two generators G and H — so that rules.Rules.Checksum
// can bind a network's protocol agreement to the exact curve and
// generator choice in use, not just the numeric rule parameters.
func ContextChecksum() [32]byte {
	gb := G.Bytes()
	hb := H.Bytes()
	o := NewOracle()
	o.Absorb(gb[:])
	o.Absorb(hb[:])
	return o.Squeeze()
}
