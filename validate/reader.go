// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package validate implements the streaming balance check (spec §4.4) and
the Reader/Writer iteration protocol it shares with the block-body
serializer and the cut-through merge (spec §4.8).
*/
package validate

import "github.com/solacechain/solacecore/chain"

// Reader exposes the four lazy cursors a transaction or block body is
// iterated through: inputs, outputs, input-kernels, output-kernels.
// Each Next* method returns the next item in ascending order and false
// once the cursor is exhausted.
type Reader interface {
	Reset()
	NextUtxoIn() (*chain.Input, bool)
	NextUtxoOut() (*chain.Output, bool)
	NextKernelIn() (*chain.TxKernel, bool)
	NextKernelOut() (*chain.TxKernel, bool)
	Clone() Reader
}

// Writer is the dual of Reader: it appends items to the four vectors,
// in the order the caller presents them.
type Writer interface {
	WriteIn(*chain.Input)
	WriteOut(*chain.Output)
	WriteKernelIn(*chain.TxKernel)
	WriteKernelOut(*chain.TxKernel)
}

// TxVectors is the in-memory Reader/Writer implementation: a plain
// struct of the four vectors, the shape every standalone Transaction or
// BodyBase ultimately reduces to for validation and serialization.
type TxVectors struct {
	Inputs     []*chain.Input
	Outputs    []*chain.Output
	KernelsIn  []*chain.TxKernel
	KernelsOut []*chain.TxKernel
}

// NewReader returns a fresh Reader over v's current contents.
func (v *TxVectors) NewReader() Reader {
	r := &txVectorsReader{v: v}
	r.Reset()
	return r
}

// NewWriter returns a Writer that appends to v in place.
func (v *TxVectors) NewWriter() Writer {
	return &txVectorsWriter{v: v}
}

type txVectorsReader struct {
	v                     *TxVectors
	iIn, iOut             int
	iKernelIn, iKernelOut int
}

func (r *txVectorsReader) Reset() {
	r.iIn, r.iOut, r.iKernelIn, r.iKernelOut = 0, 0, 0, 0
}

func (r *txVectorsReader) NextUtxoIn() (*chain.Input, bool) {
	if r.iIn >= len(r.v.Inputs) {
		return nil, false
	}
	in := r.v.Inputs[r.iIn]
	r.iIn++
	return in, true
}

func (r *txVectorsReader) NextUtxoOut() (*chain.Output, bool) {
	if r.iOut >= len(r.v.Outputs) {
		return nil, false
	}
	out := r.v.Outputs[r.iOut]
	r.iOut++
	return out, true
}

func (r *txVectorsReader) NextKernelIn() (*chain.TxKernel, bool) {
	if r.iKernelIn >= len(r.v.KernelsIn) {
		return nil, false
	}
	k := r.v.KernelsIn[r.iKernelIn]
	r.iKernelIn++
	return k, true
}

func (r *txVectorsReader) NextKernelOut() (*chain.TxKernel, bool) {
	if r.iKernelOut >= len(r.v.KernelsOut) {
		return nil, false
	}
	k := r.v.KernelsOut[r.iKernelOut]
	r.iKernelOut++
	return k, true
}

func (r *txVectorsReader) Clone() Reader {
	clone := *r
	return &clone
}

type txVectorsWriter struct {
	v *TxVectors
}

func (w *txVectorsWriter) WriteIn(in *chain.Input) {
	w.v.Inputs = append(w.v.Inputs, in)
}

func (w *txVectorsWriter) WriteOut(out *chain.Output) {
	w.v.Outputs = append(w.v.Outputs, out)
}

func (w *txVectorsWriter) WriteKernelIn(k *chain.TxKernel) {
	w.v.KernelsIn = append(w.v.KernelsIn, k)
}

func (w *txVectorsWriter) WriteKernelOut(k *chain.TxKernel) {
	w.v.KernelsOut = append(w.v.KernelsOut, k)
}
