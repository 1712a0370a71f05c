// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import "github.com/solacechain/solacecore/ecc"

// TxBase is the part common to a standalone transaction and a block
// body: the blinding offset that, together with every kernel excess and
// every input/output commitment, must sum to zero for the whole to be
// algebraically balanced (spec §4.1).
type TxBase struct {
	Offset ecc.Scalar
}
