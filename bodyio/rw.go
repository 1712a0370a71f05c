// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package bodyio implements the on-disk block-body container (spec §6): a
common path prefix expanding into five binary streams — inputs,
outputs, input-kernels, output-kernels, and headers — opened ATE-seeked
for sequential reading or truncated for writing, the way BEAM's
Block::BodyBase::RW wraps a set of std::fstreams. Var-int and var-bytes
framing is adapted from wire.ReadVarBytes/WriteVarBytes with the
protocol-version parameter dropped.
*/
package bodyio

import (
	"io"
	"os"

	"github.com/solacechain/solacecore/chain"
	"github.com/solacechain/solacecore/header"
	"github.com/solacechain/solacecore/merkle"
)

const (
	streamIn = iota
	streamOut
	streamKernelIn
	streamKernelOut
	streamHeader
	numStreams
)

var streamSuffixes = [numStreams]string{"ui", "uo", "ki", "ko", "hd"}
var streamNames = [numStreams]string{"inputs", "outputs", "input-kernels", "output-kernels", "headers"}

// RW is the five-stream block-body container, opened either for
// sequential writing or for reading (via NewReader, which supports the
// independent, cloneable cursors validate.Reader requires).
type RW struct {
	paths [numStreams]string
	files [numStreams]*os.File
	write bool

	// writeErr is the first error any Write* method encountered; once
	// set, further writes are no-ops. validate.Writer has no error
	// return, so a sticky field is the only place to surface it.
	writeErr error

	headerOff int64 // write-mode append offset into the header stream
}

// Open opens the five streams sharing prefix (prefix+".ui", ... ,
// prefix+".hd"), in write mode (truncating each stream) or read mode
// (ATE-seeking to confirm the stream exists, then rewinding to 0).
func Open(prefix string, write bool) (*RW, error) {
	rw := &RW{write: write}
	for i := range rw.paths {
		rw.paths[i] = prefix + "." + streamSuffixes[i]
	}

	for i := range rw.files {
		f, err := openStream(rw.paths[i], write)
		if err != nil {
			rw.closeOpened(i)
			return nil, &RWError{Stream: streamNames[i], Err: err}
		}
		rw.files[i] = f
	}
	return rw, nil
}

func openStream(path string, write bool) (*os.File, error) {
	if write {
		return os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	}
	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func (rw *RW) closeOpened(upTo int) {
	for i := 0; i < upTo; i++ {
		rw.files[i].Close()
	}
}

// Close flushes (in write mode) and closes every stream, returning the
// first error encountered, if any.
func (rw *RW) Close() error {
	var first error
	for i, f := range rw.files {
		if f == nil {
			continue
		}
		if rw.write {
			if err := f.Sync(); err != nil && first == nil {
				first = &RWError{Stream: streamNames[i], Err: err}
			}
		}
		if err := f.Close(); err != nil && first == nil {
			first = &RWError{Stream: streamNames[i], Err: err}
		}
	}
	return first
}

// Err reports the first error encountered by a Write* call, if any.
func (rw *RW) Err() error {
	return rw.writeErr
}

func (rw *RW) fail(stream int, err error) {
	if rw.writeErr == nil {
		rw.writeErr = &RWError{Stream: streamNames[stream], Err: err}
		log.Debugf("write to %s stream failed: %v", streamNames[stream], err)
	}
}

// WriteHeaderPrefix writes the rules checksum and BodyBase that open
// the header stream, ahead of the per-block header sequence.
func (rw *RW) WriteHeaderPrefix(checksum merkle.Hash, body chain.BodyBase) error {
	w := rw.files[streamHeader]
	if err := writeHash(w, checksum); err != nil {
		return &RWError{Stream: streamNames[streamHeader], Err: err}
	}
	if err := writeBodyBase(w, body); err != nil {
		return &RWError{Stream: streamNames[streamHeader], Err: err}
	}
	return nil
}

// ReadHeaderPrefix reads the rules checksum and BodyBase the header
// stream opens with. Callers must read it exactly once, before the
// first NextBlockHeader.
func (rw *RW) ReadHeaderPrefix() (merkle.Hash, chain.BodyBase, error) {
	r := rw.files[streamHeader]
	checksum, err := readHash(r)
	if err != nil {
		return merkle.Hash{}, chain.BodyBase{}, &RWError{Stream: streamNames[streamHeader], Err: err}
	}
	body, err := readBodyBase(r)
	if err != nil {
		return checksum, chain.BodyBase{}, &RWError{Stream: streamNames[streamHeader], Err: err}
	}
	return checksum, body, nil
}

// WriteBlockHeader appends h to the header stream.
func (rw *RW) WriteBlockHeader(h *header.Header) error {
	if err := writeHeader(rw.files[streamHeader], h); err != nil {
		return &RWError{Stream: streamNames[streamHeader], Err: err}
	}
	return nil
}

// NextBlockHeader reads the next header from the stream, reporting
// false with a nil error once the stream is exhausted.
func (rw *RW) NextBlockHeader() (*header.Header, bool, error) {
	h, err := readHeader(rw.files[streamHeader])
	if err == io.EOF {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &RWError{Stream: streamNames[streamHeader], Err: err}
	}
	return h, true, nil
}

// WriteIn appends in to the input stream. Satisfies validate.Writer.
func (rw *RW) WriteIn(in *chain.Input) {
	if rw.writeErr != nil {
		return
	}
	if err := writeInput(rw.files[streamIn], in); err != nil {
		rw.fail(streamIn, err)
	}
}

// WriteOut appends out to the output stream. Satisfies validate.Writer.
func (rw *RW) WriteOut(out *chain.Output) {
	if rw.writeErr != nil {
		return
	}
	if err := writeOutput(rw.files[streamOut], out); err != nil {
		rw.fail(streamOut, err)
	}
}

// WriteKernelIn appends k to the input-kernel stream. Satisfies
// validate.Writer.
func (rw *RW) WriteKernelIn(k *chain.TxKernel) {
	if rw.writeErr != nil {
		return
	}
	if err := writeTxKernel(rw.files[streamKernelIn], k); err != nil {
		rw.fail(streamKernelIn, err)
	}
}

// WriteKernelOut appends k to the output-kernel stream. Satisfies
// validate.Writer.
func (rw *RW) WriteKernelOut(k *chain.TxKernel) {
	if rw.writeErr != nil {
		return
	}
	if err := writeTxKernel(rw.files[streamKernelOut], k); err != nil {
		rw.fail(streamKernelOut, err)
	}
}
