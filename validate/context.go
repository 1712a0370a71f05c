// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package validate

import (
	"bytes"
	"sync/atomic"

	"github.com/solacechain/solacecore/amount"
	"github.com/solacechain/solacecore/chain"
	"github.com/solacechain/solacecore/ecc"
)

// Context is the streaming balance-check accumulator spec §4.4
// describes: a running commitment sum, fee and coinbase totals, the
// narrowing permitted height window, and the bookkeeping needed to
// shard one logical validation pass across N independent workers.
type Context struct {
	Sigma    ecc.Point
	Fee      amount.Big
	Coinbase amount.Big
	Height   chain.HeightRange

	BlockMode bool

	Verifiers     uint32
	VerifierIndex uint32
	Abort         *atomic.Bool

	elementIndex uint32
}

// NewContext returns a Context with Height reset to the unbounded
// range and Verifiers defaulted to 1 (no sharding).
func NewContext() *Context {
	c := &Context{Verifiers: 1}
	c.Height.Reset()
	return c
}

// ShouldVerify reports whether the next streamed element is this
// shard's to verify, round-robin by VerifierIndex across Verifiers
// workers, and advances the round-robin counter.
func (c *Context) ShouldVerify() bool {
	idx := c.elementIndex
	c.elementIndex++
	if c.Verifiers <= 1 {
		return true
	}
	return idx%c.Verifiers == c.VerifierIndex
}

// ShouldAbort reports whether the caller's cancellation flag has been
// set.
func (c *Context) ShouldAbort() bool {
	return c.Abort != nil && c.Abort.Load()
}

// HandleElementHeight intersects c.Height with hr in place, returning
// false once the window has narrowed to empty (no height can satisfy
// every kernel's range simultaneously).
func (c *Context) HandleElementHeight(hr chain.HeightRange) bool {
	c.Height.Intersect(hr)
	return !c.Height.IsEmpty()
}

// Merge folds next into c: sums Sigma, Fee, and Coinbase, and
// intersects the height windows. Both contexts must agree on
// BlockMode; Merge reports false otherwise, refusing to combine a
// block-mode shard with a transaction-mode one.
func (c *Context) Merge(next *Context) bool {
	if c.BlockMode != next.BlockMode {
		return false
	}
	c.Sigma = c.Sigma.Add(next.Sigma)
	c.Fee.Add(next.Fee)
	c.Coinbase.Add(next.Coinbase)
	c.Height.Intersect(next.Height)
	return true
}

// ValidateAndSummarize streams r's four cursors in the fixed order
// spec §4.4 lays out, folding every input, output, and kernel into
// c.Sigma, c.Fee, and c.Coinbase, and narrowing c.Height. It enforces
// strict ascending order within each of the four vectors and fails
// immediately on any structural or cryptographic violation. offset is
// the TxBase.Offset of the transaction or body being checked, folded
// into Sigma at the end per spec §4.4 step 7; allowPublicUtxos mirrors
// rules.Rules.AllowPublicUtxos.
func (c *Context) ValidateAndSummarize(r Reader, offset ecc.Scalar, allowPublicUtxos bool) bool {
	c.Sigma = c.Sigma.Negate()

	var prevIn *chain.Input
	for {
		if c.ShouldAbort() {
			return false
		}
		in, ok := r.NextUtxoIn()
		if !ok {
			break
		}
		if prevIn != nil && prevIn.Cmp(in) >= 0 {
			log.Debugf("input out of ascending order")
			return false
		}
		prevIn = in

		comm, ok := ecc.Import(in.Commitment)
		if !ok {
			return false
		}
		c.Sigma = c.Sigma.Add(comm)
	}

	var prevKIn *chain.TxKernel
	var pendingOut *chain.TxKernel
	havePendingOut := false
	rOut := r.Clone()
	for {
		if c.ShouldAbort() {
			return false
		}
		kIn, ok := r.NextKernelIn()
		if !ok {
			break
		}
		if prevKIn != nil && prevKIn.Cmp(kIn) >= 0 {
			return false
		}
		prevKIn = kIn

		// Locate the output kernel this input consumes. Kernels are
		// sorted by excess then by multiplier, so an output-kernel with
		// a smaller excess is simply unconsumed and gets skipped; one
		// with a larger excess means the match can never arrive. The
		// search walks rOut, a clone of r, so the output-kernel loop
		// below still validates and folds every output kernel.
		inBytes := kIn.Excess.Bytes()
		matched := false
		outOfRange := false
		for {
			if !havePendingOut {
				pendingOut, havePendingOut = rOut.NextKernelOut()
				if !havePendingOut {
					break
				}
			}
			outBytes := pendingOut.Excess.Bytes()
			switch bytes.Compare(outBytes[:], inBytes[:]) {
			case 1:
				outOfRange = true
			case -1:
				havePendingOut = false
				continue
			default:
				if pendingOut.Multiplier > kIn.Multiplier {
					matched = true
				}
				havePendingOut = false
			}
			break
		}
		if outOfRange || !matched {
			log.Debugf("input kernel has no matching output kernel at a higher multiplier")
			return false
		}

		if c.ShouldVerify() && !kIn.IsValid(nil, &c.Sigma) {
			log.Debugf("input kernel failed signature verification")
			return false
		}
	}

	c.Sigma = c.Sigma.Negate()

	var prevOut *chain.Output
	for {
		if c.ShouldAbort() {
			return false
		}
		out, ok := r.NextUtxoOut()
		if !ok {
			break
		}
		if prevOut != nil && prevOut.Cmp(out) >= 0 {
			return false
		}
		prevOut = out

		comm, ok := out.Validate(allowPublicUtxos)
		if !ok {
			return false
		}
		c.Sigma = c.Sigma.Add(comm)

		if out.Coinbase {
			if !c.BlockMode {
				return false
			}
			if out.Public != nil {
				c.Coinbase.AddAmount(amount.Amount(out.Public.Value))
			}
		}
	}

	var prevKOut *chain.TxKernel
	for {
		if c.ShouldAbort() {
			return false
		}
		kOut, ok := r.NextKernelOut()
		if !ok {
			break
		}
		if prevKOut != nil && prevKOut.Cmp(kOut) >= 0 {
			return false
		}
		prevKOut = kOut

		if c.ShouldVerify() && !kOut.IsValid(&c.Fee, &c.Sigma) {
			log.Debugf("output kernel failed signature verification")
			return false
		}
		if !c.HandleElementHeight(kOut.Height) {
			log.Debugf("output kernel narrowed the height window to empty")
			return false
		}
	}

	c.Sigma = c.Sigma.Add(ecc.G.Mul(offset))
	return true
}
