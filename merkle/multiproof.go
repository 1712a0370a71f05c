// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

// MultiProof is a flat list of hashes shared across a batch of hard
// proofs for different leaves of the same MMR, with hashes common to
// more than one leaf's path emitted only once (spec §4.2). A
// MultiProofBuilder produces one; a MultiProofVerifier replays it.
type MultiProof struct {
	Data []Hash
}

// MultiProofBuilder accumulates a MultiProof for a batch of leaves of a
// single Mmr, skipping any tree position it has already emitted for an
// earlier leaf in the same batch.
type MultiProofBuilder struct {
	mmr   *Mmr
	seen  map[Position]bool
	Proof *MultiProof
}

// NewMultiProofBuilder returns a builder over mmr's current state.
// Later Add calls after mmr grows are not supported — build the whole
// batch against one snapshot of Count.
func NewMultiProofBuilder(mmr *Mmr) *MultiProofBuilder {
	return &MultiProofBuilder{mmr: mmr, seen: make(map[Position]bool), Proof: &MultiProof{}}
}

// Add appends leafIndex's proof to the batch, deduping against
// positions already emitted for earlier leaves.
func (b *MultiProofBuilder) Add(leafIndex uint64) bool {
	steps, ok := hardProofShape(leafIndex, b.mmr.Count)
	if !ok {
		return false
	}
	for _, st := range steps {
		if b.seen[st.pos] {
			continue
		}
		h, ok := b.mmr.resolveStep(st)
		if !ok {
			return false
		}
		b.seen[st.pos] = true
		b.Proof.Data = append(b.Proof.Data, h)
	}
	return true
}

// MultiProofVerifier replays a MultiProof against a batch of leaves,
// presented one at a time via Process, in the same order the builder
// added them.
type MultiProofVerifier struct {
	Proof      *MultiProof
	TotalCount uint64
	cursor     int
	cache      map[Position]Hash
}

// NewMultiProofVerifier returns a verifier for proof against a tree of
// totalCount leaves.
func NewMultiProofVerifier(proof *MultiProof, totalCount uint64) *MultiProofVerifier {
	return &MultiProofVerifier{Proof: proof, TotalCount: totalCount, cache: make(map[Position]Hash)}
}

// Process folds leafHash up to the tree root using cached or
// proof-supplied sibling hashes, advancing the shared cursor only for
// positions not already consumed by an earlier Process call in this
// batch.
func (v *MultiProofVerifier) Process(leafIndex uint64, leafHash Hash) (Hash, bool) {
	steps, ok := hardProofShape(leafIndex, v.TotalCount)
	if !ok {
		return Hash{}, false
	}

	h := leafHash
	for _, st := range steps {
		sib, cached := v.cache[st.pos]
		if !cached {
			if v.cursor >= len(v.Proof.Data) {
				return Hash{}, false
			}
			sib = v.Proof.Data[v.cursor]
			v.cursor++
			v.cache[st.pos] = sib
		}
		Interpret(&h, Node{Right: st.right, Hash: sib})
	}
	return h, true
}

// Remaining reports how many proof entries have not yet been consumed.
func (v *MultiProofVerifier) Remaining() int {
	return len(v.Proof.Data) - v.cursor
}

// Consumed reports how many proof entries have been consumed so far.
func (v *MultiProofVerifier) Consumed() int {
	return v.cursor
}
