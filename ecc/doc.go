// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package ecc provides the elliptic-curve primitives that the rest of
solacecore treats as an external collaborator: points, scalars, Pedersen
commitments, Schnorr signatures, range proofs, and the transcript oracle
used as a Fiat-Shamir random beacon.

None of the validation or proof logic elsewhere in this module inspects
curve internals directly; it only calls through the contracts defined
here, so a production deployment could swap this package for a
constant-time, audited implementation without touching anything else.
*/
package ecc
