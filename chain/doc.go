// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package chain defines the ledger objects — inputs, outputs, transaction
kernels, and the shared transaction/block body base — and their
canonical comparison ordering (spec §3, §4.1, §4.3). It does not itself
stream or summarize a transaction; see package validate for that.
*/
package chain
