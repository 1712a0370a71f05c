// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainwork

import (
	"bytes"
	"io"
	"math/big"

	"github.com/solacechain/solacecore/bodyio"
	"github.com/solacechain/solacecore/header"
	"github.com/solacechain/solacecore/merkle"
)

// Marshal serializes cwp for storage or transmission: a var-int count
// of States followed by each header, a var-int count of Proof.Data
// followed by each hash, then LowerBound's fixed 32-byte encoding and
// HvRootLive. Framing reuses bodyio's var-int/header wire helpers rather
// than inventing a second copy of the same idiom.
func (cwp *ChainWorkProof) Marshal() ([]byte, error) {
	var buf bytes.Buffer

	if err := bodyio.WriteVarInt(&buf, uint64(len(cwp.States))); err != nil {
		return nil, err
	}
	for _, s := range cwp.States {
		if err := bodyio.WriteHeader(&buf, s); err != nil {
			return nil, err
		}
	}

	if err := bodyio.WriteVarInt(&buf, uint64(len(cwp.Proof.Data))); err != nil {
		return nil, err
	}
	for _, h := range cwp.Proof.Data {
		if err := bodyio.WriteHash(&buf, h); err != nil {
			return nil, err
		}
	}

	var lb [32]byte
	if cwp.LowerBound != nil {
		cwp.LowerBound.FillBytes(lb[:])
	}
	if _, err := buf.Write(lb[:]); err != nil {
		return nil, err
	}
	if err := bodyio.WriteHash(&buf, cwp.HvRootLive); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes a ChainWorkProof previously produced by Marshal.
func Unmarshal(b []byte) (*ChainWorkProof, error) {
	r := bytes.NewReader(b)
	cwp := &ChainWorkProof{}

	nStates, err := bodyio.ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	cwp.States = make([]*header.Header, nStates)
	for i := range cwp.States {
		h, err := bodyio.ReadHeader(r)
		if err != nil {
			return nil, err
		}
		cwp.States[i] = h
	}

	nHashes, err := bodyio.ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	cwp.Proof.Data = make([]merkle.Hash, nHashes)
	for i := range cwp.Proof.Data {
		h, err := bodyio.ReadHash(r)
		if err != nil {
			return nil, err
		}
		cwp.Proof.Data[i] = h
	}

	var lb [32]byte
	if _, err := io.ReadFull(r, lb[:]); err != nil {
		return nil, err
	}
	cwp.LowerBound = new(big.Int).SetBytes(lb[:])

	hvRoot, err := bodyio.ReadHash(r)
	if err != nil {
		return nil, err
	}
	cwp.HvRootLive = hvRoot

	return cwp, nil
}
