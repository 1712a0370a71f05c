// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bodyio

import (
	"io"
	"os"

	"github.com/solacechain/solacecore/chain"
	"github.com/solacechain/solacecore/validate"
)

// atReader adapts a (file, offset) pair into an io.Reader that reads via
// ReadAt and advances the caller-owned offset in place, so two readers
// over the same *os.File never disturb each other's position the way a
// shared Seek cursor would — this is what makes Clone cheap.
type atReader struct {
	f   *os.File
	off *int64
}

func (a *atReader) Read(p []byte) (int, error) {
	n, err := a.f.ReadAt(p, *a.off)
	*a.off += int64(n)
	return n, err
}

// fileReader is bodyio's validate.Reader implementation: four
// independent byte offsets into the shared input/output/kernel-in/
// kernel-out files, plus a two-slot rotating buffer per flat stream so
// the pointer NextUtxoIn/NextUtxoOut last returned stays valid across
// one further call, per spec §9's "two-slot guard" design note. Kernel
// reads always allocate fresh (a kernel's Nested tree has no flat
// storage to rotate into), so no kernel buffer is needed.
type fileReader struct {
	rw *RW

	offIn, offOut, offKIn, offKOut int64

	inBuf [2]chain.Input
	inIdx int

	outBuf [2]chain.Output
	outIdx int

	err error
}

// NewReader returns a fresh Reader over rw's input/output/kernel
// streams, starting from the beginning of each. rw must have been
// opened in read mode.
func (rw *RW) NewReader() validate.Reader {
	r := &fileReader{rw: rw}
	r.Reset()
	return r
}

// Reset rewinds every cursor to the start of its stream.
func (r *fileReader) Reset() {
	r.offIn, r.offOut, r.offKIn, r.offKOut = 0, 0, 0, 0
	r.inIdx, r.outIdx = 0, 0
	r.err = nil
}

// Err reports the first I/O or decode error this reader encountered, as
// opposed to clean exhaustion (which Next* reports via its bool return
// per validate.Reader's error-free contract).
func (r *fileReader) Err() error {
	return r.err
}

func (r *fileReader) fail(stream int, err error) {
	if r.err == nil && err != io.EOF {
		r.err = &RWError{Stream: streamNames[stream], Err: err}
		log.Debugf("read from %s stream failed: %v", streamNames[stream], err)
	}
}

// NextUtxoIn decodes the next Input from the input stream.
func (r *fileReader) NextUtxoIn() (*chain.Input, bool) {
	if r.err != nil {
		return nil, false
	}
	r.inIdx ^= 1
	slot := &r.inBuf[r.inIdx]
	*slot = chain.Input{}
	if err := readInput(&atReader{f: r.rw.files[streamIn], off: &r.offIn}, slot); err != nil {
		if err != io.EOF {
			r.fail(streamIn, err)
		}
		return nil, false
	}
	return slot, true
}

// NextUtxoOut decodes the next Output from the output stream.
func (r *fileReader) NextUtxoOut() (*chain.Output, bool) {
	if r.err != nil {
		return nil, false
	}
	r.outIdx ^= 1
	slot := &r.outBuf[r.outIdx]
	*slot = chain.Output{}
	if err := readOutput(&atReader{f: r.rw.files[streamOut], off: &r.offOut}, slot); err != nil {
		if err != io.EOF {
			r.fail(streamOut, err)
		}
		return nil, false
	}
	return slot, true
}

// NextKernelIn decodes the next TxKernel from the input-kernel stream.
func (r *fileReader) NextKernelIn() (*chain.TxKernel, bool) {
	if r.err != nil {
		return nil, false
	}
	k, err := readTxKernel(&atReader{f: r.rw.files[streamKernelIn], off: &r.offKIn})
	if err != nil {
		if err != io.EOF {
			r.fail(streamKernelIn, err)
		}
		return nil, false
	}
	return k, true
}

// NextKernelOut decodes the next TxKernel from the output-kernel
// stream.
func (r *fileReader) NextKernelOut() (*chain.TxKernel, bool) {
	if r.err != nil {
		return nil, false
	}
	k, err := readTxKernel(&atReader{f: r.rw.files[streamKernelOut], off: &r.offKOut})
	if err != nil {
		if err != io.EOF {
			r.fail(streamKernelOut, err)
		}
		return nil, false
	}
	return k, true
}

// Clone returns an independent reader positioned at r's current
// offsets: advancing the clone never moves r, and vice versa, since
// both read via ReadAt against their own offset fields rather than a
// shared Seek cursor.
func (r *fileReader) Clone() validate.Reader {
	clone := &fileReader{
		rw:      r.rw,
		offIn:   r.offIn,
		offOut:  r.offOut,
		offKIn:  r.offKIn,
		offKOut: r.offKOut,
	}
	return clone
}
