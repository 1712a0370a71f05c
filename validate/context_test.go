// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package validate

import (
	"bytes"
	"testing"

	"github.com/solacechain/solacecore/amount"
	"github.com/solacechain/solacecore/chain"
	"github.com/solacechain/solacecore/ecc"
)

// TestShouldVerifyRoundRobin ensures a Context with Verifiers=N accepts
// exactly one out of every N elements, determined by VerifierIndex.
func TestShouldVerifyRoundRobin(t *testing.T) {
	var accepted []bool
	c := &Context{Verifiers: 3, VerifierIndex: 1}
	for i := 0; i < 9; i++ {
		accepted = append(accepted, c.ShouldVerify())
	}

	want := []bool{false, true, false, false, true, false, false, true, false}
	for i, w := range want {
		if accepted[i] != w {
			t.Fatalf("element %d: got %v, want %v", i, accepted[i], w)
		}
	}
}

// TestShouldVerifyDefaultAcceptsEverything ensures a Context with
// Verifiers<=1 (the unsharded case) verifies every element.
func TestShouldVerifyDefaultAcceptsEverything(t *testing.T) {
	c := NewContext()
	for i := 0; i < 5; i++ {
		if !c.ShouldVerify() {
			t.Fatalf("element %d: unsharded context should verify everything", i)
		}
	}
}

// TestMergeSumsAcrossShards builds a single balanced transaction and
// checks that splitting the verification effort across N shards and
// merging the results yields the same answer as verifying with one.
func TestMergeSumsAcrossShards(t *testing.T) {
	var sk ecc.Scalar
	sk.SetUint64(42)

	fee := amount.Amount(10)
	k := &chain.TxKernel{
		Excess: ecc.G.Mul(sk),
		Fee:    fee,
		Height: chain.HeightRange{Min: 0, Max: chain.MaxHeight},
	}
	k.Signature = ecc.Sign(sk, [32]byte(k.Hash(nil)))

	v := &TxVectors{KernelsOut: []*chain.TxKernel{k}}

	single := NewContext()
	single.BlockMode = false
	if !single.ValidateAndSummarize(v.NewReader(), ecc.Scalar{}, false) {
		t.Fatal("single-shard validation should succeed")
	}

	const n = 3
	merged := NewContext()
	merged.BlockMode = false
	for i := uint32(0); i < n; i++ {
		c := NewContext()
		c.Verifiers = n
		c.VerifierIndex = i
		if !c.ValidateAndSummarize(v.NewReader(), ecc.Scalar{}, false) {
			t.Fatalf("shard %d failed to validate", i)
		}
		if i == 0 {
			*merged = *c
		} else if !merged.Merge(c) {
			t.Fatalf("failed to merge shard %d", i)
		}
	}

	if !merged.Sigma.Equal(single.Sigma) {
		t.Fatal("sharded Sigma should equal single-shard Sigma")
	}
	if merged.Fee.Cmp(single.Fee) != 0 {
		t.Fatal("sharded Fee should equal single-shard Fee")
	}
}

// TestValidateAndSummarizeKernelMatchingSkipsSmallerExcess covers the
// ordered three-way comparison the kernel-in/kernel-out matching loop
// must do: an output kernel whose excess sorts strictly before the
// input kernel's is simply unconsumed and must be skipped, not treated
// as a mismatch. Without that, a legal re-sign whose matching output
// kernel isn't the first one in the stream fails to validate.
func TestValidateAndSummarizeKernelMatchingSkipsSmallerExcess(t *testing.T) {
	var skA, skB ecc.Scalar
	skA.SetUint64(1)
	skB.SetUint64(2)
	ptA, ptB := ecc.G.Mul(skA), ecc.G.Mul(skB)

	skLo, skHi, ptLo, ptHi := skA, skB, ptA, ptB
	bA, bB := ptA.Bytes(), ptB.Bytes()
	if bytes.Compare(bA[:], bB[:]) > 0 {
		skLo, skHi, ptLo, ptHi = skB, skA, ptB, ptA
	}

	hr := chain.HeightRange{Min: 0, Max: chain.MaxHeight}

	// kOutLo is never consumed by anything; it just precedes the kernel
	// an input actually re-signs, in excess order.
	kOutLo := &chain.TxKernel{Excess: ptLo, Height: hr}
	kOutLo.Signature = ecc.Sign(skLo, [32]byte(kOutLo.Hash(nil)))

	var two ecc.Scalar
	two.SetUint64(2)
	kOutHi := &chain.TxKernel{Excess: ptHi, Multiplier: 1, Height: hr}
	kOutHi.Signature = ecc.Sign(skHi.Mul(two), [32]byte(kOutHi.Hash(nil)))

	kIn := &chain.TxKernel{Excess: ptHi, Height: hr}
	kIn.Signature = ecc.Sign(skHi, [32]byte(kIn.Hash(nil)))

	v := &TxVectors{
		KernelsIn:  []*chain.TxKernel{kIn},
		KernelsOut: []*chain.TxKernel{kOutLo, kOutHi},
	}

	c := NewContext()
	if !c.ValidateAndSummarize(v.NewReader(), ecc.Scalar{}, false) {
		t.Fatal("re-signed kernel consuming the higher-excess output kernel should validate past the lower-excess, unrelated one that precedes it")
	}
}

// TestValidateAndSummarizeKernelMatchingRejectsExcessGap covers the
// other half of the same comparison: once the output-kernel cursor has
// advanced past every excess up to and including the input kernel's,
// the match can never arrive and the stream must be rejected outright.
func TestValidateAndSummarizeKernelMatchingRejectsExcessGap(t *testing.T) {
	var skA, skB ecc.Scalar
	skA.SetUint64(3)
	skB.SetUint64(4)
	ptA, ptB := ecc.G.Mul(skA), ecc.G.Mul(skB)

	skLo, ptLo, ptHi := skA, ptA, ptB
	bA, bB := ptA.Bytes(), ptB.Bytes()
	if bytes.Compare(bA[:], bB[:]) > 0 {
		skLo, ptLo, ptHi = skB, ptB, ptA
	}

	hr := chain.HeightRange{Min: 0, Max: chain.MaxHeight}

	kOutHi := &chain.TxKernel{Excess: ptHi, Height: hr}
	kOutHi.Signature = ecc.Sign(skLo, [32]byte(kOutHi.Hash(nil))) // signature content irrelevant; never reached

	kIn := &chain.TxKernel{Excess: ptLo, Height: hr}
	kIn.Signature = ecc.Sign(skLo, [32]byte(kIn.Hash(nil)))

	v := &TxVectors{
		KernelsIn:  []*chain.TxKernel{kIn},
		KernelsOut: []*chain.TxKernel{kOutHi},
	}

	c := NewContext()
	if c.ValidateAndSummarize(v.NewReader(), ecc.Scalar{}, false) {
		t.Fatal("input kernel with no output kernel at or below its excess must be rejected")
	}
}

// TestValidateAndSummarizeSingleCoinbaseBlock is scenario 1 from spec §8:
// a single coinbase output, balanced by one kernel carrying its negated
// blinding excess, should validate in block mode with subsidy_open=true.
func TestValidateAndSummarizeSingleCoinbaseBlock(t *testing.T) {
	var sk ecc.Scalar
	sk.SetUint64(7)

	const coinbaseEmission = uint64(80 * 100_000_000)

	comm := ecc.Commitment(sk, coinbaseEmission)
	oracle := ecc.NewOracle()
	oracle.AbsorbUint64(0) // matches Output.Validate priming with Incubation
	pub := ecc.NewPublicProof(sk, coinbaseEmission, oracle)

	out := &chain.Output{
		CommitmentAndMaturity: chain.CommitmentAndMaturity{Commitment: comm.Bytes()},
		Coinbase:              true,
		Public:                &pub,
	}

	// The output's blinding factor sk*G has to cancel against something;
	// a companion kernel carries the negated excess, the same way a
	// coinbase transaction's kernel absorbs its output's blinding key.
	negSK := sk.Negate()
	k := &chain.TxKernel{
		Excess: ecc.G.Mul(negSK),
		Height: chain.HeightRange{Min: 0, Max: chain.MaxHeight},
	}
	k.Signature = ecc.Sign(negSK, [32]byte(k.Hash(nil)))

	v := &TxVectors{Outputs: []*chain.Output{out}, KernelsOut: []*chain.TxKernel{k}}

	c := NewContext()
	c.BlockMode = true
	if !c.ValidateAndSummarize(v.NewReader(), ecc.Scalar{}, false) {
		t.Fatal("expected the single-coinbase block's streaming check to succeed")
	}

	body := BodySummary{}
	body.Subsidy.AddAmount(amount.Amount(coinbaseEmission))

	if !c.IsValidBlock(body, true, 1, coinbaseEmission, 240) {
		t.Fatal("expected IsValidBlock with subsidy_open=true to accept the single-coinbase block")
	}
}

// TestValidateAndSummarizeOverspendCoinbaseRejected is scenario 2 from
// spec §8: a block whose coinbase output and claimed subsidy are both one
// above the per-block emission balances cryptographically, so only the
// per-block cap applied under subsidy_open=false rejects it.
func TestValidateAndSummarizeOverspendCoinbaseRejected(t *testing.T) {
	const coinbaseEmission = uint64(80 * 100_000_000)
	const minted = coinbaseEmission + 1 // one more than a single block may mint

	var sk ecc.Scalar
	sk.SetUint64(9)

	comm := ecc.Commitment(sk, minted)
	oracle := ecc.NewOracle()
	oracle.AbsorbUint64(0)
	pub := ecc.NewPublicProof(sk, minted, oracle)

	out := &chain.Output{
		CommitmentAndMaturity: chain.CommitmentAndMaturity{Commitment: comm.Bytes()},
		Coinbase:              true,
		Public:                &pub,
	}

	negSK := sk.Negate()
	k := &chain.TxKernel{
		Excess: ecc.G.Mul(negSK),
		Height: chain.HeightRange{Min: 0, Max: chain.MaxHeight},
	}
	k.Signature = ecc.Sign(negSK, [32]byte(k.Hash(nil)))

	v := &TxVectors{Outputs: []*chain.Output{out}, KernelsOut: []*chain.TxKernel{k}}

	body := BodySummary{}
	body.Subsidy.AddAmount(amount.Amount(minted))

	c := NewContext()
	c.BlockMode = true
	if !c.ValidateAndSummarize(v.NewReader(), ecc.Scalar{}, false) {
		t.Fatal("expected the over-minting block's streaming check to still succeed")
	}

	// IsValidBlock folds the subsidy into Sigma, so each mode is checked
	// against its own copy of the summarized context.
	closed := *c

	// subsidy_open=true accepts any subsidy value the cryptographic
	// balance supports; the per-block cap only applies once emission
	// has closed.
	if !c.IsValidBlock(body, true, 1, coinbaseEmission, 240) {
		t.Fatal("expected subsidy_open=true to accept an over-minted subsidy")
	}
	if closed.IsValidBlock(body, false, 1, coinbaseEmission, 240) {
		t.Fatal("expected overspend subsidy to be rejected when subsidy_open=false")
	}
}

// TestIsValidBlockRejectsClosingMarkerOnceEmissionClosed pins spec §4.4:
// a block may not carry SubsidyClosing once emission has already
// closed (subsidyOpen=false), unconditionally, regardless of whether
// any other block has already closed it.
func TestIsValidBlockRejectsClosingMarkerOnceEmissionClosed(t *testing.T) {
	c := NewContext()
	body := BodySummary{SubsidyClosing: true}
	if c.IsValidBlock(body, false, 1, 0, 240) {
		t.Fatal("expected a closing-marker block to be rejected once subsidy_open=false")
	}
	if !c.IsValidBlock(body, true, 1, 0, 240) {
		t.Fatal("expected a closing-marker block to be accepted while subsidy_open=true")
	}
}
