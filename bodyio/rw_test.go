// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bodyio

import (
	"bytes"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/solacechain/solacecore/amount"
	"github.com/solacechain/solacecore/chain"
	"github.com/solacechain/solacecore/difficulty"
	"github.com/solacechain/solacecore/ecc"
	"github.com/solacechain/solacecore/header"
	"github.com/solacechain/solacecore/merkle"
)

func testInput(seed byte) *chain.Input {
	in := &chain.Input{}
	in.Commitment[0] = seed
	in.Maturity = uint64(seed) * 7
	return in
}

func testKernel(t *testing.T, fee amount.Amount) *chain.TxKernel {
	t.Helper()
	var sk ecc.Scalar
	sk.SetUint64(1234)
	pt := ecc.G.Mul(sk)

	k := &chain.TxKernel{
		Excess:     pt,
		Multiplier: 0,
		Fee:        fee,
		Height:     chain.HeightRange{Min: 0, Max: chain.MaxHeight},
	}
	msg := k.Hash(nil)
	k.Signature = ecc.Sign(sk, [32]byte(msg))
	return k
}

func testOutputPublic(t *testing.T, value uint64) *chain.Output {
	t.Helper()
	var sk ecc.Scalar
	sk.SetUint64(99)
	comm := ecc.Commitment(sk, value)

	out := &chain.Output{}
	out.Commitment = comm.Bytes()
	out.Incubation = 3

	oracle := ecc.NewOracle()
	oracle.AbsorbUint64(out.Incubation)
	p := ecc.NewPublicProof(sk, value, oracle)
	out.Public = &p
	return out
}

func testOutputConfidential(t *testing.T) *chain.Output {
	t.Helper()
	var sk ecc.Scalar
	sk.SetUint64(77)
	comm := ecc.Commitment(sk, 500)

	out := &chain.Output{}
	out.Commitment = comm.Bytes()
	out.Incubation = 1

	oracle := ecc.NewOracle()
	oracle.AbsorbUint64(out.Incubation)
	p := ecc.NewConfidentialProof(sk, comm, oracle)
	out.Confidential = &p
	return out
}

func TestInputRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	want := testInput(5)
	if err := writeInput(&buf, want); err != nil {
		t.Fatalf("writeInput: %v", err)
	}
	var got chain.Input
	if err := readInput(&buf, &got); err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if got.Cmp(want) != 0 {
		t.Fatalf("round-tripped input differs: got %+v, want %+v", got, *want)
	}
}

func TestOutputRoundTripPublic(t *testing.T) {
	var buf bytes.Buffer
	want := testOutputPublic(t, 1000)
	want.Coinbase = true
	if err := writeOutput(&buf, want); err != nil {
		t.Fatalf("writeOutput: %v", err)
	}
	var got chain.Output
	if err := readOutput(&buf, &got); err != nil {
		t.Fatalf("readOutput: %v", err)
	}
	if got.Cmp(want) != 0 {
		t.Fatalf("round-tripped public output differs: got %+v, want %+v", got, *want)
	}
	if got.Public == nil || got.Public.Value != want.Public.Value {
		t.Fatal("public proof value lost across round trip")
	}
}

func TestOutputRoundTripConfidential(t *testing.T) {
	var buf bytes.Buffer
	want := testOutputConfidential(t)
	if err := writeOutput(&buf, want); err != nil {
		t.Fatalf("writeOutput: %v", err)
	}
	var got chain.Output
	if err := readOutput(&buf, &got); err != nil {
		t.Fatalf("readOutput: %v", err)
	}
	if got.Confidential == nil || got.Confidential.Digest != want.Confidential.Digest {
		t.Fatal("confidential proof digest lost across round trip")
	}
}

func TestTxKernelRoundTripWithNested(t *testing.T) {
	var buf bytes.Buffer
	parent := testKernel(t, amount.Amount(10))
	child := testKernel(t, amount.Amount(20))
	parent.Nested = []*chain.TxKernel{child}

	if err := writeTxKernel(&buf, parent); err != nil {
		t.Fatalf("writeTxKernel: %v", err)
	}
	got, err := readTxKernel(&buf)
	if err != nil {
		t.Fatalf("readTxKernel: %v", err)
	}
	if got.Cmp(parent) != 0 {
		t.Fatalf("round-tripped kernel differs:\ngot:  %s\nwant: %s", spew.Sdump(got), spew.Sdump(parent))
	}
	if len(got.Nested) != 1 || got.Nested[0].Fee != child.Fee {
		t.Fatal("nested kernel lost across round trip")
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	want := &header.Header{
		Height:    42,
		Prev:      merkle.Hash{1, 2, 3},
		Definition: merkle.Hash{4, 5, 6},
		ChainWork: big.NewInt(987654321),
		Timestamp: 1700000000,
		PoW: header.PoWSolution{
			Difficulty: difficulty.Pack(16, 3),
			Indices:    []uint32{1, 2, 3, 4},
			Nonce:      0xdeadbeef,
		},
	}
	if err := writeHeader(&buf, want); err != nil {
		t.Fatalf("writeHeader: %v", err)
	}
	got, err := readHeader(&buf)
	if err != nil {
		t.Fatalf("readHeader: %v", err)
	}
	if got.Height != want.Height || got.Prev != want.Prev || got.Definition != want.Definition {
		t.Fatal("header identity fields lost across round trip")
	}
	if got.ChainWork.Cmp(want.ChainWork) != 0 {
		t.Fatalf("chain work differs: got %v, want %v", got.ChainWork, want.ChainWork)
	}
	if got.Timestamp != want.Timestamp || got.PoW.Nonce != want.PoW.Nonce {
		t.Fatal("timestamp or nonce lost across round trip")
	}
	if len(got.PoW.Indices) != len(want.PoW.Indices) {
		t.Fatal("pow indices lost across round trip")
	}
}

func TestRWWriteThenRead(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "block")

	w, err := Open(prefix, true)
	if err != nil {
		t.Fatalf("Open(write): %v", err)
	}

	checksum := merkle.Hash{9, 9, 9}
	body := chain.BodyBase{Subsidy: amount.Big{Lo: 1000}}
	if err := w.WriteHeaderPrefix(checksum, body); err != nil {
		t.Fatalf("WriteHeaderPrefix: %v", err)
	}

	h1 := &header.Header{Height: 1, ChainWork: big.NewInt(0), PoW: header.PoWSolution{Difficulty: difficulty.Pack(16, 0)}}
	h2 := h1.Child()
	if err := w.WriteBlockHeader(h1); err != nil {
		t.Fatalf("WriteBlockHeader h1: %v", err)
	}
	if err := w.WriteBlockHeader(&h2); err != nil {
		t.Fatalf("WriteBlockHeader h2: %v", err)
	}

	in := testInput(1)
	out := testOutputPublic(t, 5000)
	kin := testKernel(t, amount.Amount(1))
	kout := testKernel(t, amount.Amount(2))

	w.WriteIn(in)
	w.WriteOut(out)
	w.WriteKernelIn(kin)
	w.WriteKernelOut(kout)

	if err := w.Err(); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close(write): %v", err)
	}

	r, err := Open(prefix, false)
	if err != nil {
		t.Fatalf("Open(read): %v", err)
	}
	defer r.Close()

	gotChecksum, gotBody, err := r.ReadHeaderPrefix()
	if err != nil {
		t.Fatalf("ReadHeaderPrefix: %v", err)
	}
	if gotChecksum != checksum {
		t.Fatal("checksum lost across write/read cycle")
	}
	if gotBody.Subsidy.Lo != body.Subsidy.Lo {
		t.Fatal("body base subsidy lost across write/read cycle")
	}

	gotH1, ok, err := r.NextBlockHeader()
	if err != nil || !ok {
		t.Fatalf("NextBlockHeader h1: ok=%v err=%v", ok, err)
	}
	if gotH1.Height != h1.Height {
		t.Fatal("h1 height lost")
	}
	gotH2, ok, err := r.NextBlockHeader()
	if err != nil || !ok {
		t.Fatalf("NextBlockHeader h2: ok=%v err=%v", ok, err)
	}
	if gotH2.Height != h2.Height {
		t.Fatal("h2 height lost")
	}
	if _, ok, err := r.NextBlockHeader(); ok || err != nil {
		t.Fatalf("expected header stream exhaustion, got ok=%v err=%v", ok, err)
	}

	reader := r.NewReader()
	gotIn, ok := reader.NextUtxoIn()
	if !ok || gotIn.Cmp(in) != 0 {
		t.Fatal("input lost across write/read cycle")
	}
	if _, ok := reader.NextUtxoIn(); ok {
		t.Fatal("expected input stream exhaustion")
	}

	gotOut, ok := reader.NextUtxoOut()
	if !ok || gotOut.Cmp(out) != 0 {
		t.Fatal("output lost across write/read cycle")
	}

	gotKIn, ok := reader.NextKernelIn()
	if !ok || gotKIn.Cmp(kin) != 0 {
		t.Fatal("input kernel lost across write/read cycle")
	}

	gotKOut, ok := reader.NextKernelOut()
	if !ok || gotKOut.Cmp(kout) != 0 {
		t.Fatal("output kernel lost across write/read cycle")
	}
}

func TestReaderCloneIsIndependent(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "block")

	w, err := Open(prefix, true)
	if err != nil {
		t.Fatalf("Open(write): %v", err)
	}
	for i := byte(0); i < 3; i++ {
		w.WriteKernelIn(testKernel(t, amount.Amount(i)))
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close(write): %v", err)
	}

	r, err := Open(prefix, false)
	if err != nil {
		t.Fatalf("Open(read): %v", err)
	}
	defer r.Close()

	reader := r.NewReader()
	first, ok := reader.NextKernelIn()
	if !ok {
		t.Fatal("expected first kernel")
	}

	clone := reader.Clone()
	// Advancing the original must not move the clone, and vice versa.
	second, ok := reader.NextKernelIn()
	if !ok || second.Fee == first.Fee {
		t.Fatal("expected the original reader to advance past the clone point")
	}

	cloneSecond, ok := clone.NextKernelIn()
	if !ok {
		t.Fatal("expected the clone to independently read its own second kernel")
	}
	if cloneSecond.Fee != second.Fee {
		t.Fatalf("clone diverged from original: got fee %v, want %v", cloneSecond.Fee, second.Fee)
	}
}
