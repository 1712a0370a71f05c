// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bodyio

import (
	"io"
	"math/big"

	"github.com/solacechain/solacecore/amount"
	"github.com/solacechain/solacecore/chain"
	"github.com/solacechain/solacecore/ecc"
	"github.com/solacechain/solacecore/header"
	"github.com/solacechain/solacecore/merkle"
)

func writeHash(w io.Writer, h merkle.Hash) error {
	_, err := w.Write(h[:])
	return err
}

func readHash(r io.Reader) (merkle.Hash, error) {
	var h merkle.Hash
	_, err := io.ReadFull(r, h[:])
	return h, err
}

// WriteHash is the exported form of writeHash, for callers outside this
// package that share this container's wire framing (e.g. chainwork's
// proof file format).
func WriteHash(w io.Writer, h merkle.Hash) error { return writeHash(w, h) }

// ReadHash is the exported dual of WriteHash.
func ReadHash(r io.Reader) (merkle.Hash, error) { return readHash(r) }

// WriteHeader is the exported form of writeHeader.
func WriteHeader(w io.Writer, h *header.Header) error { return writeHeader(w, h) }

// ReadHeader is the exported dual of WriteHeader.
func ReadHeader(r io.Reader) (*header.Header, error) { return readHeader(r) }

func writePoint(w io.Writer, p ecc.Point) error {
	b := p.Bytes()
	_, err := w.Write(b[:])
	return err
}

func readPoint(r io.Reader) (ecc.Point, error) {
	var b [ecc.CompressedPointSize]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return ecc.Point{}, err
	}
	p, ok := ecc.Import(b)
	if !ok {
		return ecc.Point{}, ErrBadPoint
	}
	return p, nil
}

func writeScalar(w io.Writer, s ecc.Scalar) error {
	b := s.Bytes()
	_, err := w.Write(b[:])
	return err
}

func readScalar(r io.Reader) (ecc.Scalar, error) {
	var b [ecc.ScalarSize]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return ecc.Scalar{}, err
	}
	return ecc.ImportScalar(b), nil
}

func writeSignature(w io.Writer, sig ecc.Signature) error {
	b := sig.Bytes()
	_, err := w.Write(b[:])
	return err
}

func readSignature(r io.Reader) (ecc.Signature, error) {
	var b [ecc.SignatureSize]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return ecc.Signature{}, err
	}
	sig, ok := ecc.ImportSignature(b)
	if !ok {
		return ecc.Signature{}, ErrBadSignature
	}
	return sig, nil
}

func writeCommitmentAndMaturity(w io.Writer, c chain.CommitmentAndMaturity) error {
	if _, err := w.Write(c.Commitment[:]); err != nil {
		return err
	}
	return writeUint64(w, c.Maturity)
}

func readCommitmentAndMaturity(r io.Reader) (chain.CommitmentAndMaturity, error) {
	var c chain.CommitmentAndMaturity
	if _, err := io.ReadFull(r, c.Commitment[:]); err != nil {
		return c, err
	}
	err := readUint64(r, &c.Maturity)
	return c, err
}

func writeHeightRange(w io.Writer, hr chain.HeightRange) error {
	if err := writeUint64(w, hr.Min); err != nil {
		return err
	}
	return writeUint64(w, hr.Max)
}

func readHeightRange(r io.Reader) (chain.HeightRange, error) {
	var hr chain.HeightRange
	if err := readUint64(r, &hr.Min); err != nil {
		return hr, err
	}
	err := readUint64(r, &hr.Max)
	return hr, err
}

// writeInput serializes in to w.
func writeInput(w io.Writer, in *chain.Input) error {
	return writeCommitmentAndMaturity(w, in.CommitmentAndMaturity)
}

// readInput decodes an Input from r into out, reusing its storage.
func readInput(r io.Reader, out *chain.Input) error {
	cam, err := readCommitmentAndMaturity(r)
	if err != nil {
		return err
	}
	out.CommitmentAndMaturity = cam
	return nil
}

const (
	proofTagPublic       = 0
	proofTagConfidential = 1
)

// writeOutput serializes out to w.
func writeOutput(w io.Writer, out *chain.Output) error {
	if err := writeCommitmentAndMaturity(w, out.CommitmentAndMaturity); err != nil {
		return err
	}
	if err := writeBool(w, out.Coinbase); err != nil {
		return err
	}
	if err := writeUint64(w, out.Incubation); err != nil {
		return err
	}

	switch {
	case out.Public != nil && out.Confidential == nil:
		if err := writeUint8(w, proofTagPublic); err != nil {
			return err
		}
		if err := writeUint64(w, out.Public.Value); err != nil {
			return err
		}
		return writeSignature(w, out.Public.Signature)

	case out.Confidential != nil && out.Public == nil:
		if err := writeUint8(w, proofTagConfidential); err != nil {
			return err
		}
		if _, err := w.Write(out.Confidential.Digest[:]); err != nil {
			return err
		}
		if err := writePoint(w, out.Confidential.BlindPub); err != nil {
			return err
		}
		return writeSignature(w, out.Confidential.Signature)

	default:
		return ErrBadProof
	}
}

// readOutput decodes an Output from r into out, reusing its storage.
func readOutput(r io.Reader, out *chain.Output) error {
	cam, err := readCommitmentAndMaturity(r)
	if err != nil {
		return err
	}
	out.CommitmentAndMaturity = cam

	if err := readBool(r, &out.Coinbase); err != nil {
		return err
	}
	if err := readUint64(r, &out.Incubation); err != nil {
		return err
	}

	var tag uint8
	if err := readUint8(r, &tag); err != nil {
		return err
	}

	switch tag {
	case proofTagPublic:
		var p ecc.PublicProof
		if err := readUint64(r, &p.Value); err != nil {
			return err
		}
		sig, err := readSignature(r)
		if err != nil {
			return err
		}
		p.Signature = sig
		out.Public, out.Confidential = &p, nil

	case proofTagConfidential:
		var p ecc.ConfidentialProof
		if _, err := io.ReadFull(r, p.Digest[:]); err != nil {
			return err
		}
		pt, err := readPoint(r)
		if err != nil {
			return err
		}
		p.BlindPub = pt
		sig, err := readSignature(r)
		if err != nil {
			return err
		}
		p.Signature = sig
		out.Confidential, out.Public = &p, nil

	default:
		return ErrBadProof
	}

	return nil
}

// writeTxKernel serializes k to w, recursing through its nested list in
// order.
func writeTxKernel(w io.Writer, k *chain.TxKernel) error {
	if err := writePoint(w, k.Excess); err != nil {
		return err
	}
	if err := writeUint32(w, k.Multiplier); err != nil {
		return err
	}
	if err := writeSignature(w, k.Signature); err != nil {
		return err
	}
	if err := writeUint64(w, uint64(k.Fee)); err != nil {
		return err
	}
	if err := writeHeightRange(w, k.Height); err != nil {
		return err
	}

	if err := writeBool(w, k.HashLock != nil); err != nil {
		return err
	}
	if k.HashLock != nil {
		if _, err := w.Write(k.HashLock.Preimage[:]); err != nil {
			return err
		}
	}

	if err := writeVarInt(w, uint64(len(k.Nested))); err != nil {
		return err
	}
	for _, child := range k.Nested {
		if err := writeTxKernel(w, child); err != nil {
			return err
		}
	}
	return nil
}

// readTxKernel decodes a TxKernel from r, allocating a fresh one (unlike
// readInput/readOutput, which reuse rotating-buffer storage): a kernel's
// Nested slice owns its own tree of pointers, so there is no flat
// storage to rotate into.
func readTxKernel(r io.Reader) (*chain.TxKernel, error) {
	k := &chain.TxKernel{}

	pt, err := readPoint(r)
	if err != nil {
		return nil, err
	}
	k.Excess = pt

	if err := readUint32(r, &k.Multiplier); err != nil {
		return nil, err
	}
	sig, err := readSignature(r)
	if err != nil {
		return nil, err
	}
	k.Signature = sig

	var fee uint64
	if err := readUint64(r, &fee); err != nil {
		return nil, err
	}
	k.Fee = amount.Amount(fee)

	hr, err := readHeightRange(r)
	if err != nil {
		return nil, err
	}
	k.Height = hr

	var hasLock bool
	if err := readBool(r, &hasLock); err != nil {
		return nil, err
	}
	if hasLock {
		hl := &chain.HashLock{}
		if _, err := io.ReadFull(r, hl.Preimage[:]); err != nil {
			return nil, err
		}
		k.HashLock = hl
	}

	n, err := readVarInt(r)
	if err != nil {
		return nil, err
	}
	if n > maxFieldBytes {
		return nil, ErrFieldTooLarge
	}
	k.Nested = make([]*chain.TxKernel, n)
	for i := range k.Nested {
		child, err := readTxKernel(r)
		if err != nil {
			return nil, err
		}
		k.Nested[i] = child
	}

	return k, nil
}

func writeAmountBig(w io.Writer, b amount.Big) error {
	if err := writeUint64(w, b.Lo); err != nil {
		return err
	}
	return writeUint64(w, b.Hi)
}

func readAmountBig(r io.Reader) (amount.Big, error) {
	var b amount.Big
	if err := readUint64(r, &b.Lo); err != nil {
		return b, err
	}
	err := readUint64(r, &b.Hi)
	return b, err
}

// writeBodyBase serializes the TxBase offset plus the subsidy fields to
// w, the prefix the header stream carries ahead of the per-block header
// sequence.
func writeBodyBase(w io.Writer, b chain.BodyBase) error {
	if err := writeScalar(w, b.Offset); err != nil {
		return err
	}
	if err := writeAmountBig(w, b.Subsidy); err != nil {
		return err
	}
	return writeBool(w, b.SubsidyClosing)
}

func readBodyBase(r io.Reader) (chain.BodyBase, error) {
	var b chain.BodyBase
	s, err := readScalar(r)
	if err != nil {
		return b, err
	}
	b.Offset = s

	subsidy, err := readAmountBig(r)
	if err != nil {
		return b, err
	}
	b.Subsidy = subsidy

	err = readBool(r, &b.SubsidyClosing)
	return b, err
}

// writeHeader serializes h to w.
func writeHeader(w io.Writer, h *header.Header) error {
	if err := writeUint64(w, h.Height); err != nil {
		return err
	}
	if err := writeHash(w, h.Prev); err != nil {
		return err
	}
	if err := writeHash(w, h.Definition); err != nil {
		return err
	}

	var cw [32]byte
	if h.ChainWork != nil {
		h.ChainWork.FillBytes(cw[:])
	}
	if _, err := w.Write(cw[:]); err != nil {
		return err
	}

	if err := writeInt64(w, h.Timestamp); err != nil {
		return err
	}
	if err := writeUint32(w, h.PoW.Difficulty.Packed); err != nil {
		return err
	}
	if err := writeVarInt(w, uint64(len(h.PoW.Indices))); err != nil {
		return err
	}
	for _, idx := range h.PoW.Indices {
		if err := writeUint32(w, idx); err != nil {
			return err
		}
	}
	return writeUint64(w, h.PoW.Nonce)
}

// readHeader decodes a Header from r.
func readHeader(r io.Reader) (*header.Header, error) {
	h := &header.Header{}

	if err := readUint64(r, &h.Height); err != nil {
		return nil, err
	}
	prev, err := readHash(r)
	if err != nil {
		return nil, err
	}
	h.Prev = prev

	def, err := readHash(r)
	if err != nil {
		return nil, err
	}
	h.Definition = def

	var cw [32]byte
	if _, err := io.ReadFull(r, cw[:]); err != nil {
		return nil, err
	}
	h.ChainWork = new(big.Int).SetBytes(cw[:])

	if err := readInt64(r, &h.Timestamp); err != nil {
		return nil, err
	}
	if err := readUint32(r, &h.PoW.Difficulty.Packed); err != nil {
		return nil, err
	}

	n, err := readVarInt(r)
	if err != nil {
		return nil, err
	}
	if n > maxFieldBytes {
		return nil, ErrFieldTooLarge
	}
	h.PoW.Indices = make([]uint32, n)
	for i := range h.PoW.Indices {
		if err := readUint32(r, &h.PoW.Indices[i]); err != nil {
			return nil, err
		}
	}

	if err := readUint64(r, &h.PoW.Nonce); err != nil {
		return nil, err
	}
	return h, nil
}
