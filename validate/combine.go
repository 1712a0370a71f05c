// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package validate

import "github.com/solacechain/solacecore/chain"

// cursor tracks one reader's current item in each of the four streams
// during a k-way merge.
type cursor struct {
	r Reader

	in    *chain.Input
	hasIn bool

	out    *chain.Output
	hasOut bool

	kIn    *chain.TxKernel
	hasKIn bool

	kOut    *chain.TxKernel
	hasKOut bool
}

func newCursor(r Reader) *cursor {
	c := &cursor{r: r}
	c.in, c.hasIn = r.NextUtxoIn()
	c.out, c.hasOut = r.NextUtxoOut()
	c.kIn, c.hasKIn = r.NextKernelIn()
	c.kOut, c.hasKOut = r.NextKernelOut()
	return c
}

// Combine performs a k-way merge of readers into writer, cancelling
// matching (input, output) pairs with identical CommitmentAndMaturity
// and matching (in-kernel, out-kernel) pairs with identical Excess —
// the mechanism that merges two transactions' streams into their
// cut-through union (spec §4.8). abort, if non-nil, is polled between
// iterations for bounded-latency cancellation.
func Combine(readers []Reader, writer Writer, abort func() bool) bool {
	cursors := make([]*cursor, len(readers))
	for i, r := range readers {
		cursors[i] = newCursor(r)
	}

	for {
		if abort != nil && abort() {
			return false
		}
		ii := minInput(cursors)
		oi := minOutput(cursors)
		if ii < 0 && oi < 0 {
			break
		}

		if ii >= 0 && oi >= 0 && cursors[ii].in.CommitmentAndMaturity.Cmp(cursors[oi].out.CommitmentAndMaturity) == 0 {
			advanceIn(cursors[ii])
			advanceOut(cursors[oi])
			continue
		}

		if ii >= 0 && (oi < 0 || cursors[ii].in.CommitmentAndMaturity.Cmp(cursors[oi].out.CommitmentAndMaturity) < 0) {
			writer.WriteIn(cursors[ii].in)
			advanceIn(cursors[ii])
		} else {
			writer.WriteOut(cursors[oi].out)
			advanceOut(cursors[oi])
		}
	}

	for {
		if abort != nil && abort() {
			return false
		}
		ki := minKernelIn(cursors)
		ko := minKernelOut(cursors)
		if ki < 0 && ko < 0 {
			break
		}

		if ki >= 0 && ko >= 0 && excessEqual(cursors[ki].kIn, cursors[ko].kOut) {
			// The fix for the kernel-stream cut-through bug: advance the
			// kernel cursors that actually matched, not the UTXO cursors.
			advanceKernelIn(cursors[ki])
			advanceKernelOut(cursors[ko])
			continue
		}

		if ki >= 0 && (ko < 0 || cursors[ki].kIn.Cmp(cursors[ko].kOut) < 0) {
			writer.WriteKernelIn(cursors[ki].kIn)
			advanceKernelIn(cursors[ki])
		} else {
			writer.WriteKernelOut(cursors[ko].kOut)
			advanceKernelOut(cursors[ko])
		}
	}

	return true
}

func excessEqual(a, b *chain.TxKernel) bool {
	return a.Excess.Bytes() == b.Excess.Bytes()
}

func minInput(cursors []*cursor) int {
	best := -1
	for i, c := range cursors {
		if !c.hasIn {
			continue
		}
		if best < 0 || c.in.CommitmentAndMaturity.Cmp(cursors[best].in.CommitmentAndMaturity) < 0 {
			best = i
		}
	}
	return best
}

func minOutput(cursors []*cursor) int {
	best := -1
	for i, c := range cursors {
		if !c.hasOut {
			continue
		}
		if best < 0 || c.out.CommitmentAndMaturity.Cmp(cursors[best].out.CommitmentAndMaturity) < 0 {
			best = i
		}
	}
	return best
}

func minKernelIn(cursors []*cursor) int {
	best := -1
	for i, c := range cursors {
		if !c.hasKIn {
			continue
		}
		if best < 0 || c.kIn.Cmp(cursors[best].kIn) < 0 {
			best = i
		}
	}
	return best
}

func minKernelOut(cursors []*cursor) int {
	best := -1
	for i, c := range cursors {
		if !c.hasKOut {
			continue
		}
		if best < 0 || c.kOut.Cmp(cursors[best].kOut) < 0 {
			best = i
		}
	}
	return best
}

func advanceIn(c *cursor)         { c.in, c.hasIn = c.r.NextUtxoIn() }
func advanceOut(c *cursor)        { c.out, c.hasOut = c.r.NextUtxoOut() }
func advanceKernelIn(c *cursor)   { c.kIn, c.hasKIn = c.r.NextKernelIn() }
func advanceKernelOut(c *cursor)  { c.kOut, c.hasKOut = c.r.NextKernelOut() }
